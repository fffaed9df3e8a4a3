package cmd

import (
	"encoding/json"
	"errors"

	"github.com/spf13/cobra"

	"github.com/Snider/Quotebox/pkg/ui"
	"github.com/Snider/Quotebox/pkg/widget"
)

// NewShowCmd creates the show command.
func NewShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Request a new quote and print it",
		Long: `Requests a new quote and prints it as a card, followed by the share link.

With --count, several requests are made one after the other on the same
widget, printing the displayed quote after each.

Examples:
  quotebox show
  quotebox show --count 3 --no-share
  quotebox show --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			count, _ := cmd.Flags().GetInt("count")
			noShare, _ := cmd.Flags().GetBool("no-share")
			asJSON, _ := cmd.Flags().GetBool("json")
			width, _ := cmd.Flags().GetInt("width")

			cfg := configFrom(cmd)
			log := loggerFrom(cmd)
			ctl := newController(cfg, log)
			out := cmd.OutOrStdout()

			shareURL := cfg.ShareURL
			if noShare {
				shareURL = ""
			}

			var failed error
			for i := 0; i < count; i++ {
				var (
					st  widget.State
					err error
				)
				request := func() { st, err = ctl.RequestNewQuote(cmd.Context()) }
				if ui.IsInteractive() && !asJSON {
					ui.WithSpinner(cmd.ErrOrStderr(), "Processing...", request)
				} else {
					request()
				}
				if err != nil {
					log.Error("quote request failed", "err", err)
					failed = errors.Join(failed, err)
				}

				if asJSON {
					if err := json.NewEncoder(out).Encode(struct {
						widget.State
						ShareURL string `json:"share_url,omitempty"`
					}{st, shareURL}); err != nil {
						return err
					}
					continue
				}
				ui.PrintCard(out, st.Quote, shareURL, width)
			}

			if failed != nil {
				return requestErr(failed)
			}
			return nil
		},
	}

	cmd.Flags().IntP("count", "n", 1, "Number of requests to make")
	cmd.Flags().Bool("no-share", false, "Do not print the share link")
	cmd.Flags().Bool("json", false, "Print the widget state as JSON")
	cmd.Flags().Int("width", ui.DefaultCardWidth, "Card width in columns")

	return cmd
}
