package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Snider/Quotebox/pkg/quote"
	"github.com/Snider/Quotebox/pkg/ui"
)

// NewWatchCmd creates the watch command.
func NewWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Print a new quote at a fixed interval",
		Long: `Requests a new quote at a fixed interval and prints each one on a single
line, for logs, status panes and other non-interactive sessions.
Failed requests are logged and skipped. Stops on interrupt, or after --count
quotes when set.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := configFrom(cmd)
			log := loggerFrom(cmd)

			interval := cfg.Watch.Interval
			if cmd.Flags().Changed("interval") {
				interval, _ = cmd.Flags().GetDuration("interval")
			}
			if interval <= 0 {
				return fmt.Errorf("interval must be positive, got %s", interval)
			}
			count, _ := cmd.Flags().GetInt("count")

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			ctx, cancel := context.WithCancel(ctx)
			defer cancel()

			ctl := newController(cfg, log)
			var printed atomic.Int32
			next := func() (quote.Quote, error) {
				if err := ctx.Err(); err != nil {
					return quote.Quote{}, err
				}
				st, err := ctl.RequestNewQuote(ctx)
				if err != nil {
					return quote.Quote{}, err
				}
				if count > 0 && int(printed.Add(1)) >= count {
					cancel()
				}
				return st.Quote, nil
			}

			prompter, err := ui.NewNonInteractivePrompter(interval, next, cmd.OutOrStdout(), log)
			if err != nil {
				return err
			}
			log.Debug("watching quotes", "interval", interval, "endpoint", cfg.Endpoint)
			prompter.Start()
			<-ctx.Done()
			prompter.Stop()
			return nil
		},
	}

	cmd.Flags().Duration("interval", 0, "Time between quotes (default from config, 30s)")
	cmd.Flags().IntP("count", "n", 0, "Stop after this many quotes (0 = run until interrupted)")

	return cmd
}
