package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"

	"github.com/Snider/Quotebox/pkg/quote"
)

// DefaultCardWidth is the card width used when the terminal width is unknown.
const DefaultCardWidth = 64

var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#d946ef")).
			Padding(1, 2)
	textStyle   = lipgloss.NewStyle().Bold(true)
	authorStyle = lipgloss.NewStyle().Italic(true).Align(lipgloss.Right)
)

// FormatCard lays out q as a bordered card of the given outer width.
func FormatCard(q quote.Quote, width int) string {
	if width <= 0 {
		width = DefaultCardWidth
	}
	inner := width - cardStyle.GetHorizontalFrameSize()
	if inner < 10 {
		inner = 10
	}
	body := lipgloss.JoinVertical(lipgloss.Left,
		textStyle.Width(inner).Render("“"+q.Text+"”"),
		"",
		authorStyle.Width(inner).Render("— "+q.Author),
	)
	return cardStyle.Render(body)
}

// PrintCard writes q as a card followed by the share link, if any.
func PrintCard(w io.Writer, q quote.Quote, shareURL string, width int) {
	fmt.Fprintln(w, FormatCard(q, width))
	if shareURL != "" {
		fmt.Fprintf(w, "%s %s\n", color.New(color.Faint).Sprint("Share:"), shareURL)
	}
}

// PrintQuote writes q on a single line in green, for logs and pipelines.
func PrintQuote(w io.Writer, q quote.Quote) {
	c := color.New(color.FgGreen)
	c.Fprintln(w, FormatLine(q))
}

// FormatLine renders q as `"text" — author` on one line.
func FormatLine(q quote.Quote) string {
	return fmt.Sprintf("%q — %s", strings.TrimSpace(q.Text), q.Author)
}
