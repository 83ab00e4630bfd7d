package app

import (
	"hanmoa/internal/cli"
	"hanmoa/internal/config"
)

// Settings is the configuration file with command-line overrides applied.
type Settings struct {
	config.Config
	Classify bool
}

// ResolveSettings layers opts over cfg. String and numeric flags override
// only when set; boolean flags can only switch a feature on.
func ResolveSettings(cfg config.Config, opts cli.Options) (Settings, error) {
	if opts.LayoutName != "" {
		cfg.Layout = opts.LayoutName
	}
	if opts.KeypairPath != "" {
		cfg.KeypairPath = opts.KeypairPath
	}
	if opts.Workers > 0 {
		cfg.Workers = opts.Workers
	}
	if opts.LogLevel != "" {
		cfg.LogLevel = opts.LogLevel
	}
	if opts.LogFormat != "" {
		cfg.LogFormat = opts.LogFormat
	}
	cfg.MergeClusters = cfg.MergeClusters || opts.MergeClusters
	cfg.Decompose = cfg.Decompose || opts.Decompose

	if err := cfg.Validate(); err != nil {
		return Settings{}, err
	}
	return Settings{Config: cfg, Classify: opts.Classify}, nil
}
