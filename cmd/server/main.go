// Package main is the entry point for the greeter HTTP server.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/sebasr/greeter-service/internal/config"
	"github.com/sebasr/greeter-service/internal/logging"
	"github.com/sebasr/greeter-service/internal/server"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() string {
	short := commit
	if len(commit) > 7 {
		short = commit[:7]
	}

	return fmt.Sprintf("%s (%s) %s", version, short, date)
}

func flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "host", Usage: "interface to bind (overrides HOST)"},
		&cli.StringFlag{Name: "port", Usage: "port to listen on (overrides PORT)"},
		&cli.BoolFlag{Name: "debug", Usage: "enable gin debug mode (overrides APP_DEBUG)"},
		&cli.StringFlag{Name: "log-level", Usage: "log level: debug, info, warn, error (overrides LOG_LEVEL)"},
		&cli.StringFlag{Name: "log-format", Usage: "log format: json or console (overrides LOG_FORMAT)"},
	}
}

// applyFlags overrides environment configuration with explicitly set flags
func applyFlags(cfg *config.Config, cmd *cli.Command) error {
	if cmd.IsSet("host") {
		cfg.Server.Host = cmd.String("host")
	}
	if cmd.IsSet("port") {
		cfg.Server.Port = cmd.String("port")
	}
	if cmd.IsSet("debug") {
		cfg.Server.Debug = cmd.Bool("debug")
	}
	if cmd.IsSet("log-level") {
		cfg.Log.Level = cmd.String("log-level")
	}
	if cmd.IsSet("log-format") {
		cfg.Log.Format = cmd.String("log-format")
	}
	return cfg.Validate()
}

func serve(ctx context.Context, cmd *cli.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := applyFlags(cfg, cmd); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}

	logger, err := logging.New(cfg.Log, os.Stderr)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	router := server.New(&server.Dependencies{
		Config:  cfg,
		Logger:  logger,
		Version: version,
	})

	logger.Info().
		Str("version", build()).
		Str("addr", cfg.Server.Addr()).
		Bool("debug", cfg.Server.Debug).
		Msg("starting greeter service")

	return server.Run(ctx, &cfg.Server, router, logger)
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	app := &cli.Command{
		Name:    "greeter",
		Usage:   "HTTP service that greets people by name",
		Version: build(),
		Flags:   flags(),
		Action:  serve,
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Fatal().Err(err).Msg("failed to run greeter")
	}
}
