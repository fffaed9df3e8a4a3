package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Snider/Quotebox/pkg/console"
	"github.com/Snider/Quotebox/pkg/metrics"
	"github.com/Snider/Quotebox/pkg/widget"
)

// NewServeCmd creates the serve command.
func NewServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the quote widget page over HTTP",
		Long: `Starts an HTTP server hosting the quote widget page.

Routes:
  GET  /            the widget page
  POST /new-quote   request a new quote, then redirect to the page
  GET  /api/quote   current widget state as JSON
  POST /api/quote   request a new quote, respond with JSON
  GET  /metrics     Prometheus metrics
  GET  /health      liveness

Examples:
  quotebox serve --open
  quotebox serve --port 3000`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := configFrom(cmd)
			log := loggerFrom(cmd)

			port := cfg.Serve.Port
			if cmd.Flags().Changed("port") {
				port, _ = cmd.Flags().GetString("port")
			}
			openBrowser := cfg.Serve.Open
			if cmd.Flags().Changed("open") {
				openBrowser, _ = cmd.Flags().GetBool("open")
			}

			collector := metrics.NewCollector("quotebox")
			ctl := newController(cfg, log, widget.WithObserver(collector))
			server := console.NewServer(ctl, port, log, collector)
			server.SetShareURL(cfg.ShareURL)

			fmt.Fprintf(cmd.OutOrStdout(), "Quotebox serving at %s\n", server.URL())

			if openBrowser {
				if err := console.OpenBrowser(server.URL()); err != nil {
					log.Warn("could not open browser", "err", err)
				}
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return server.Start(ctx)
		},
	}

	cmd.Flags().String("port", "8080", "Port to serve on (overrides config)")
	cmd.Flags().Bool("open", false, "Auto-open browser")

	return cmd
}
