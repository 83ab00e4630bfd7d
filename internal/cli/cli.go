package cli

import (
	"errors"
	"fmt"

	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
)

// EnvPrefix is prepended to upper-cased flag names to form environment
// variable names, e.g. HANMOA_LAYOUT.
const EnvPrefix = "HANMOA"

type Options struct {
	ShowHelp      bool
	ListLayouts   bool
	ConfigPath    string
	LayoutName    string
	KeypairPath   string
	MergeClusters bool
	Decompose     bool
	Classify      bool
	Workers       int
	LogLevel      string
	LogFormat     string
	Inputs        []string
}

type flagSet struct {
	fs            *ff.FlagSet
	configPath    *string
	layoutName    *string
	keypairPath   *string
	mergeClusters *bool
	decompose     *bool
	classify      *bool
	listLayouts   *bool
	workers       *int
	logLevel      *string
	logFormat     *string
}

func newFlagSet() *flagSet {
	fs := ff.NewFlagSet("hanmoa")
	return &flagSet{
		fs:            fs,
		configPath:    fs.StringLong("config", "", "path to hanmoa.ini (default: ./hanmoa.ini if present)"),
		layoutName:    fs.StringLong("layout", "", "keyboard layout applied before composing: none, dubeolsik"),
		keypairPath:   fs.StringLong("keypairs", "", "JSON file with custom key pairs merged into the layout"),
		mergeClusters: fs.BoolLong("merge-clusters", "merge adjacent consonants into final clusters before composing"),
		decompose:     fs.BoolLong("decompose", "split syllables back into jamo instead of composing"),
		classify:      fs.BoolLong("classify", "print the role and category of every input rune"),
		listLayouts:   fs.BoolLong("list-layouts", "list available layouts"),
		workers:       fs.IntLong("workers", 0, "files processed concurrently (0 = GOMAXPROCS)"),
		logLevel:      fs.StringLong("log-level", "", "debug, info, warn or error"),
		logFormat:     fs.StringLong("log-format", "", "pretty or json"),
	}
}

// Parse reads flags from args (args[0] is the program name) and from
// HANMOA_* environment variables. Remaining arguments are input files.
func Parse(args []string) (Options, error) {
	f := newFlagSet()
	var rest []string
	if len(args) > 1 {
		rest = args[1:]
	}

	if err := ff.Parse(f.fs, rest, ff.WithEnvVarPrefix(EnvPrefix)); err != nil {
		if errors.Is(err, ff.ErrHelp) {
			return Options{ShowHelp: true}, nil
		}
		return Options{}, fmt.Errorf("parsing flags: %w", err)
	}
	if *f.workers < 0 {
		return Options{}, fmt.Errorf("--workers must not be negative, got %d", *f.workers)
	}
	if *f.decompose && (*f.classify || *f.mergeClusters) {
		return Options{}, errors.New("--decompose cannot be combined with --classify or --merge-clusters")
	}

	inputs := f.fs.GetArgs()
	if len(inputs) == 0 {
		inputs = nil
	}

	return Options{
		ListLayouts:   *f.listLayouts,
		ConfigPath:    *f.configPath,
		LayoutName:    *f.layoutName,
		KeypairPath:   *f.keypairPath,
		MergeClusters: *f.mergeClusters,
		Decompose:     *f.decompose,
		Classify:      *f.classify,
		Workers:       *f.workers,
		LogLevel:      *f.logLevel,
		LogFormat:     *f.logFormat,
		Inputs:        inputs,
	}, nil
}

func Usage() string {
	f := newFlagSet()
	return fmt.Sprintf(`hanmoa - compose Hangul jamo into syllable blocks
Reads the named files (or standard input) and writes the result to standard output.

%s`, ffhelp.Flags(f.fs, "hanmoa [flags] [file ...]"))
}
