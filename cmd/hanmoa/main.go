package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"hanmoa/internal/app"
	"hanmoa/internal/cli"
	"hanmoa/internal/config"
	"hanmoa/internal/layout"
	"hanmoa/internal/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "hanmoa: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()

	opts, err := cli.Parse(os.Args)
	if err != nil {
		return err
	}

	if opts.ShowHelp {
		fmt.Println(cli.Usage())
		return nil
	}

	if opts.ListLayouts {
		for _, name := range layout.AvailableLayouts() {
			fmt.Println(name)
		}
		return nil
	}

	cfg, err := config.Resolve(opts.ConfigPath)
	if err != nil {
		return err
	}
	settings, err := app.ResolveSettings(cfg, opts)
	if err != nil {
		return err
	}

	log := logger.New(os.Stderr, settings.LogLevel, settings.LogFormat)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rt, err := app.NewRuntime(settings, log)
	if err != nil {
		return err
	}
	return rt.Run(ctx, opts.Inputs, os.Stdin, os.Stdout)
}
