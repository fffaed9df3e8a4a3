package cmd

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = NewRootCmd()

// NewRootCmd creates the root command with every subcommand attached.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quotebox",
		Short: "A random quote widget for the terminal, the browser and the desktop.",
		Long: `Quotebox fetches quotes from a public quotes API and shows one at random.
Ask for another and it fetches again, avoiding an immediate repeat of the
previous pick. Each surface also offers a ready-made link for sharing.`,
		SilenceUsage:      true,
		PersistentPreRunE: setup,
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringP("config", "c", "", "Path to a TOML config file (default $QUOTEBOX_CONFIG)")
	cmd.PersistentFlags().String("endpoint", "", "Quotes API endpoint (overrides config)")
	cmd.PersistentFlags().String("log-format", "", "Log format: text or json (overrides config)")

	cmd.AddCommand(NewShowCmd())
	cmd.AddCommand(NewWatchCmd())
	cmd.AddCommand(NewTUICmd())
	cmd.AddCommand(NewServeCmd())
	cmd.AddCommand(NewCheckCmd())

	return cmd
}

// Execute runs the root command with log as the initial logger.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute(log *slog.Logger) error {
	return ExecuteContext(context.Background(), RootCmd, log)
}

// ExecuteContext runs root under ctx.
func ExecuteContext(ctx context.Context, root *cobra.Command, log *slog.Logger) error {
	return root.ExecuteContext(context.WithValue(ctx, loggerKey, log))
}
