// Package widget implements the quote display controller shared by every
// rendering surface, plus the HTML rendering of the widget page.
package widget

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/Snider/Quotebox/pkg/quote"
)

// ErrBusy is returned when a request arrives while another is in flight.
// The request is ignored, not queued.
var ErrBusy = errors.New("a quote request is already in flight")

// State is a snapshot of what the widget displays.
type State struct {
	Quote      quote.Quote `json:"quote"`
	Processing bool        `json:"processing"`
	LastIndex  int         `json:"last_index"`
}

// InitialState is the state before any request.
func InitialState() State {
	return State{Quote: quote.Default()}
}

// Observer is told about every request outcome.
type Observer interface {
	ObserveFetch(outcome string, elapsed time.Duration)
	ObserveBusy()
}

// Controller owns the widget state and serialises quote requests.
type Controller struct {
	fetcher  quote.Fetcher
	intn     func(n int) int
	log      *slog.Logger
	observer Observer

	mu    sync.Mutex
	state State
}

// Option configures a Controller.
type Option func(*Controller)

// WithRandom replaces the uniform index source. intn must return a value in
// [0, n).
func WithRandom(intn func(n int) int) Option {
	return func(c *Controller) { c.intn = intn }
}

// WithLogger sets the logger used for request diagnostics.
func WithLogger(log *slog.Logger) Option {
	return func(c *Controller) { c.log = log }
}

// WithObserver registers an observer for request outcomes.
func WithObserver(o Observer) Option {
	return func(c *Controller) { c.observer = o }
}

// NewController creates a controller showing the default quote.
func NewController(fetcher quote.Fetcher, opts ...Option) *Controller {
	c := &Controller{
		fetcher: fetcher,
		intn:    rand.IntN,
		log:     slog.New(slog.DiscardHandler),
		state:   InitialState(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Snapshot returns the current state.
func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// RequestNewQuote fetches a fresh list and replaces the displayed quote.
// If a request is already in flight it returns the current state and
// ErrBusy without fetching. On any failure the displayed quote is left as
// it was. Processing is always false again once this returns.
func (c *Controller) RequestNewQuote(ctx context.Context) (State, error) {
	c.mu.Lock()
	if c.state.Processing {
		st := c.state
		c.mu.Unlock()
		if c.observer != nil {
			c.observer.ObserveBusy()
		}
		c.log.Debug("quote request ignored, busy")
		return st, ErrBusy
	}
	c.state.Processing = true
	c.mu.Unlock()

	start := time.Now()
	var err error
	defer func() {
		c.mu.Lock()
		c.state.Processing = false
		c.mu.Unlock()
		if c.observer != nil {
			c.observer.ObserveFetch(quote.Outcome(err), time.Since(start))
		}
	}()

	quotes, err := c.fetcher.Fetch(ctx)
	if err != nil {
		c.log.Debug("quote fetch failed", "err", err)
		return c.settled(), err
	}

	c.mu.Lock()
	sel, err := quote.Select(quotes, c.state.LastIndex, c.intn)
	c.state.LastIndex = sel.Index
	if err == nil {
		c.state.Quote = sel.Shown
	}
	c.mu.Unlock()

	if err != nil {
		c.log.Debug("quote selection failed", "err", err, "count", len(quotes))
		return c.settled(), err
	}
	c.log.Debug("quote selected", "count", len(quotes), "index", sel.Index, "author", sel.Shown.Author)
	return c.settled(), nil
}

// settled is the snapshot a finished request reports: Processing has not
// been cleared yet when it is taken, so it is cleared on the copy.
func (c *Controller) settled() State {
	st := c.Snapshot()
	st.Processing = false
	return st
}
