// Package tui is the interactive terminal rendering of the quote widget.
package tui

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Snider/Quotebox/pkg/ui"
	"github.com/Snider/Quotebox/pkg/widget"
)

// Requester is the part of the widget controller the TUI drives.
type Requester interface {
	RequestNewQuote(ctx context.Context) (widget.State, error)
	Snapshot() widget.State
}

// resultMsg carries a finished request back into the update loop.
type resultMsg struct {
	state widget.State
	err   error
}

var (
	buttonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffffff")).
			Background(lipgloss.Color("#000000")).
			Padding(0, 2).
			Bold(true)
	busyStyle = buttonStyle.
			Background(lipgloss.Color("#4f46e5"))
	helpStyle  = lipgloss.NewStyle().Faint(true)
	shareStyle = lipgloss.NewStyle().Underline(true)
)

// Model is the bubbletea model for the widget.
type Model struct {
	ctx      context.Context
	ctl      Requester
	log      *slog.Logger
	shareURL string

	state     widget.State
	spinner   spinner.Model
	showShare bool
	width     int
}

// New creates a model showing the controller's current state.
func New(ctx context.Context, ctl Requester, shareURL string, log *slog.Logger) Model {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	s := spinner.New()
	s.Spinner = spinner.Dot
	return Model{
		ctx:      ctx,
		ctl:      ctl,
		log:      log,
		shareURL: shareURL,
		state:    ctl.Snapshot(),
		spinner:  s,
		width:    ui.DefaultCardWidth,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "n", "enter", " ":
			if m.state.Processing {
				return m, nil
			}
			m.state.Processing = true
			return m, tea.Batch(m.spinner.Tick, m.request())
		case "s":
			m.showShare = !m.showShare
		}
		return m, nil

	case resultMsg:
		m.state = msg.state
		if msg.err != nil && !errors.Is(msg.err, widget.ErrBusy) {
			m.log.Error("quote request failed", "err", msg.err)
		}
		return m, nil

	case spinner.TickMsg:
		if !m.state.Processing {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = min(msg.Width, 2*ui.DefaultCardWidth)
		return m, nil
	}
	return m, nil
}

func (m Model) request() tea.Cmd {
	return func() tea.Msg {
		st, err := m.ctl.RequestNewQuote(m.ctx)
		return resultMsg{state: st, err: err}
	}
}

// State returns the state the model is displaying.
func (m Model) State() widget.State {
	return m.state
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(ui.FormatCard(m.state.Quote, m.width))
	b.WriteString("\n\n")

	if m.state.Processing {
		b.WriteString(busyStyle.Render(m.spinner.View() + "Processing..."))
	} else {
		b.WriteString(buttonStyle.Render("New Quote"))
	}
	b.WriteString("  ")
	if m.showShare {
		b.WriteString(shareStyle.Render(m.shareURL))
	} else {
		b.WriteString(helpStyle.Render("[s] share"))
	}
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("n/enter: new quote • s: share link • q: quit"))
	b.WriteString("\n")
	return b.String()
}

// Run starts the interactive program and blocks until the user quits.
func Run(ctx context.Context, ctl Requester, shareURL string, log *slog.Logger) error {
	p := tea.NewProgram(New(ctx, ctl, shareURL, log), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
