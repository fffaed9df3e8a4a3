package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Snider/Quotebox/pkg/logger"
	"github.com/Snider/Quotebox/pkg/ui/tui"
)

// runTUI starts the interactive program. Tests replace it.
var runTUI = tui.Run

// NewTUICmd creates the tui command.
func NewTUICmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Run the interactive quote widget in the terminal",
		Long: `Shows the quote widget full-screen. Press n, enter or space for a new quote,
s to show the share link and q to quit.

The screen belongs to the widget while it runs, so logs go to --log-file
when given and are dropped otherwise.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := configFrom(cmd)
			logFile, _ := cmd.Flags().GetString("log-file")
			verbose, _ := cmd.Flags().GetBool("verbose")

			log := slog.New(slog.DiscardHandler)
			if logFile != "" {
				f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
				if err != nil {
					return fmt.Errorf("opening log file: %w", err)
				}
				defer f.Close()
				if log, err = logger.NewWithFormat(f, verbose, cfg.Log.Format); err != nil {
					return err
				}
			}

			ctl := newController(cfg, log)
			return runTUI(cmd.Context(), ctl, cfg.ShareURL, log)
		},
	}

	cmd.Flags().String("log-file", "", "Write logs to this file while the widget runs")

	return cmd
}
