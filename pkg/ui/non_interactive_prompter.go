// Package ui provides terminal rendering for the quote widget: quote cards,
// a busy spinner and a periodic quote printer for non-interactive sessions.
package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/Snider/Quotebox/pkg/quote"
)

// NonInteractivePrompter prints a fresh quote at a fixed interval, for
// sessions without a terminal (e.g., a CI log or a status pane). It can be
// started and stopped; failed requests are logged and skipped.
type NonInteractivePrompter struct {
	stopChan  chan struct{}
	done      chan struct{}
	quoteFunc func() (quote.Quote, error)
	interval  time.Duration
	out       io.Writer
	log       *slog.Logger
	started   bool
	mu        sync.Mutex
	stopOnce  sync.Once
}

// NewNonInteractivePrompter creates a prompter that calls quoteFunc every
// interval and prints the result to out. The interval must be positive.
//
// Example:
//
//	prompter, err := ui.NewNonInteractivePrompter(30*time.Second, next, os.Stdout, log)
//	if err != nil {
//		return err
//	}
//	prompter.Start()
//	// ... until shutdown ...
//	prompter.Stop()
func NewNonInteractivePrompter(interval time.Duration, quoteFunc func() (quote.Quote, error), out io.Writer, log *slog.Logger) (*NonInteractivePrompter, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("prompter interval must be positive, got %s", interval)
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &NonInteractivePrompter{
		stopChan:  make(chan struct{}),
		done:      make(chan struct{}),
		quoteFunc: quoteFunc,
		interval:  interval,
		out:       out,
		log:       log,
	}, nil
}

// Start prints one quote immediately and then one per interval until Stop
// is called. It is safe to call Start multiple times.
func (p *NonInteractivePrompter) Start() {
	p.mu.Lock()
	if p.started {
		p.mu.Unlock()
		return
	}
	p.started = true
	p.mu.Unlock()

	go func() {
		defer close(p.done)
		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()

		p.printNext()
		for {
			select {
			case <-p.stopChan:
				return
			case <-ticker.C:
				p.printNext()
			}
		}
	}()
}

func (p *NonInteractivePrompter) printNext() {
	q, err := p.quoteFunc()
	if errors.Is(err, context.Canceled) {
		p.log.Debug("quote request cancelled")
		return
	}
	if err != nil {
		p.log.Warn("could not get a new quote", "err", err)
		return
	}
	PrintQuote(p.out, q)
}

// Stop halts the prompter and waits for an in-progress print to finish.
// It is safe to call Stop multiple times, and before Start.
func (p *NonInteractivePrompter) Stop() {
	p.stopOnce.Do(func() {
		close(p.stopChan)
	})
	p.mu.Lock()
	started := p.started
	p.mu.Unlock()
	if started {
		<-p.done
	}
}

// IsInteractive checks if the current session is interactive (i.e., running in
// a terminal).
func IsInteractive() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}
