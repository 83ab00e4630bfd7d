package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	ini "github.com/go-ini/ini"
)

// DefaultFileName is picked up from the working directory when no path is
// given explicitly.
const DefaultFileName = "hanmoa.ini"

type Config struct {
	Layout        string
	KeypairPath   string
	MergeClusters bool
	Decompose     bool
	Workers       int
	LogLevel      string
	LogFormat     string
}

type ConfigError struct {
	msg string
}

func (e ConfigError) Error() string { return e.msg }

const (
	defaultLayout    = "none"
	defaultLogLevel  = "info"
	defaultLogFormat = "pretty"
)

func Default() Config {
	return Config{
		Layout:    defaultLayout,
		LogLevel:  defaultLogLevel,
		LogFormat: defaultLogFormat,
	}
}

// Load reads an INI file on top of the defaults. A missing file yields the
// defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		return cfg, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: %w", err)
	}
	if info.IsDir() {
		return cfg, fmt.Errorf("config: %s is a directory", path)
	}

	file, err := ini.Load(filepath.Clean(path))
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}

	compose := file.Section("compose")
	cfg.Layout = compose.Key("layout").MustString(cfg.Layout)
	cfg.KeypairPath = compose.Key("keypairs").MustString(cfg.KeypairPath)
	cfg.MergeClusters = compose.Key("merge_clusters").MustBool(cfg.MergeClusters)
	cfg.Decompose = compose.Key("decompose").MustBool(cfg.Decompose)
	cfg.Workers = compose.Key("workers").MustInt(cfg.Workers)

	log := file.Section("log")
	cfg.LogLevel = log.Key("level").MustString(cfg.LogLevel)
	cfg.LogFormat = log.Key("format").MustString(cfg.LogFormat)

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Resolve loads cliPath when set, otherwise hanmoa.ini from the working
// directory if one exists. An explicit path that does not exist is an error.
func Resolve(cliPath string) (Config, error) {
	if cliPath != "" {
		if _, err := os.Stat(cliPath); err != nil {
			return Default(), ConfigError{msg: fmt.Sprintf("config file %s: %v", cliPath, err)}
		}
		return Load(cliPath)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return Default(), nil
	}
	return Load(filepath.Join(cwd, DefaultFileName))
}

func (c Config) Validate() error {
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return ConfigError{msg: fmt.Sprintf("invalid log level '%s'", c.LogLevel)}
	}
	switch strings.ToLower(c.LogFormat) {
	case "pretty", "json":
	default:
		return ConfigError{msg: fmt.Sprintf("invalid log format '%s'", c.LogFormat)}
	}
	if c.Workers < 0 {
		return ConfigError{msg: fmt.Sprintf("workers must not be negative, got %d", c.Workers)}
	}
	if c.Decompose && c.MergeClusters {
		return ConfigError{msg: "decompose and merge_clusters cannot both be enabled"}
	}
	return nil
}
