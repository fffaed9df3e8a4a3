package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Snider/Quotebox/pkg/probe"
)

// NewCheckCmd creates the check command.
func NewCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [url]",
		Short: "Check that a served widget page exposes every region",
		Long: `Fetches a widget page and looks for the quote box and the text, author,
new-quote and share regions inside it, by their element ids.
Exits non-zero when any of them is missing.

The URL defaults to the local serve address.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := configFrom(cmd)
			url := "http://localhost:" + cfg.Serve.Port + "/"
			if len(args) == 1 {
				url = args[0]
			}

			report, err := probe.Locate(cmd.Context(), nil, url)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			ok := color.New(color.FgGreen).SprintFunc()
			bad := color.New(color.FgRed).SprintFunc()
			printRegion := func(r probe.Region, indent string) {
				mark := ok("✓")
				if !r.Found || (indent != "" && !r.InBox) {
					mark = bad("✗")
				}
				detail := r.Text
				if r.Href != "" {
					detail = r.Href
				}
				if runes := []rune(detail); len(runes) > 60 {
					detail = string(runes[:57]) + "..."
				}
				fmt.Fprintf(out, "%s%s #%s %s\n", indent, mark, r.ID, detail)
			}

			printRegion(report.Box, "")
			for _, r := range report.Regions {
				printRegion(r, "  ")
			}

			if !report.OK() {
				return fmt.Errorf("missing regions: %s", strings.Join(report.Missing(), ", "))
			}
			return nil
		},
	}

	return cmd
}
