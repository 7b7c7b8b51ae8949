// Package main implements the catalog demo CLI.
package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/abgdnv/gocatalog/internal/app"
	"github.com/abgdnv/gocatalog/internal/config"
	"github.com/urfave/cli/v2"
)

func main() {
	cliApp := &cli.App{
		Name:  "catalog",
		Usage: "Repository pattern demo: one service, interchangeable stores",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to the YAML configuration file",
				Value:   "config.yaml",
			},
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Override the configured log level (debug, info, warn, error)",
			},
		},
		// Running without a subcommand performs the demo sequence.
		Action: demoCommand,
		Commands: []*cli.Command{
			{
				Name:   "demo",
				Usage:  "Create and retrieve products through both store implementations",
				Action: demoCommand,
			},
			{
				Name:   "check",
				Usage:  "Exercise the repository contract against the configured backend",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "store",
						Usage: "Store backend to check (memory, simdb); overrides configuration",
					},
				},
				Action: checkCommand,
			},
		},
	}

	if err := cliApp.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func demoCommand(c *cli.Context) error {
	cfg, logger, err := setup(c)
	if err != nil {
		return err
	}
	logger.Info("Catalog demo starting...", "config", cfg.String())
	return app.RunDemo(c.Context, cfg, logger, c.App.Writer)
}

func checkCommand(c *cli.Context) error {
	cfg, logger, err := setup(c)
	if err != nil {
		return err
	}
	if backend := c.String("store"); backend != "" {
		cfg.Store.Backend = backend
	}
	logger.Info("Contract check starting...", "backend", cfg.Store.Backend)
	return app.RunCheck(c.Context, cfg, logger, c.App.Writer)
}

// setup loads the configuration and builds the structured logger shared by
// all commands.
func setup(c *cli.Context) (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, nil, fmt.Errorf("error loading configuration: %w", err)
	}
	if level := c.String("log-level"); level != "" {
		cfg.Log.Level = level
	}
	return cfg, newLogger(cfg.Log.Level), nil
}

// newLogger creates a new slog.Logger instance with the specified log level.
func newLogger(level string) *slog.Logger {
	logLevel := toLevel(level)
	loggerOpts := &slog.HandlerOptions{
		AddSource: logLevel == slog.LevelDebug,
		Level:     logLevel,
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, loggerOpts))
}

// toLevel converts a string representation of a log level to slog.Level.
func toLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
