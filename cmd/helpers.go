package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/Snider/Quotebox/pkg/config"
	"github.com/Snider/Quotebox/pkg/logger"
	"github.com/Snider/Quotebox/pkg/quote"
	"github.com/Snider/Quotebox/pkg/widget"
)

type ctxKey string

const (
	loggerKey ctxKey = "logger"
	configKey ctxKey = "config"
)

// setup loads the configuration, applies flag overrides and builds the
// logger for the command being run.
func setup(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if endpoint, _ := cmd.Flags().GetString("endpoint"); endpoint != "" {
		cfg.Endpoint = endpoint
	}
	if format, _ := cmd.Flags().GetString("log-format"); format != "" {
		cfg.Log.Format = format
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	log, err := logger.NewWithFormat(cmd.ErrOrStderr(), verbose, cfg.Log.Format)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = context.WithValue(ctx, configKey, cfg)
	ctx = context.WithValue(ctx, loggerKey, log)
	cmd.SetContext(ctx)

	log.Debug("configuration loaded", "endpoint", cfg.Endpoint, "config", path)
	return nil
}

// loggerFrom returns the logger stored on the command context.
func loggerFrom(cmd *cobra.Command) *slog.Logger {
	if ctx := cmd.Context(); ctx != nil {
		if log, ok := ctx.Value(loggerKey).(*slog.Logger); ok && log != nil {
			return log
		}
	}
	return slog.New(slog.DiscardHandler)
}

// configFrom returns the configuration stored on the command context.
func configFrom(cmd *cobra.Command) *config.Config {
	if ctx := cmd.Context(); ctx != nil {
		if cfg, ok := ctx.Value(configKey).(*config.Config); ok && cfg != nil {
			return cfg
		}
	}
	return config.Default()
}

// newController builds a controller backed by the configured endpoint.
func newController(cfg *config.Config, log *slog.Logger, opts ...widget.Option) *widget.Controller {
	client := quote.NewClientWithTimeout(cfg.Endpoint, cfg.Timeout)
	opts = append([]widget.Option{widget.WithLogger(log)}, opts...)
	return widget.NewController(client, opts...)
}

// requestErr turns a failed request into the command's error.
func requestErr(err error) error {
	return fmt.Errorf("requesting a new quote: %w", err)
}
