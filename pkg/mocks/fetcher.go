package mocks

import (
	"context"
	"sync/atomic"

	"github.com/Snider/Quotebox/pkg/quote"
)

// GatedFetcher is a quote.Fetcher that can hold a fetch in flight until the
// test releases it.
type GatedFetcher struct {
	Quotes []quote.Quote
	Err    error
	// Started receives once per Fetch call, when non-nil.
	Started chan struct{}
	// Release must be closed or sent on before Fetch returns, when non-nil.
	Release chan struct{}

	calls atomic.Int32
}

// Fetch implements quote.Fetcher.
func (f *GatedFetcher) Fetch(ctx context.Context) ([]quote.Quote, error) {
	f.calls.Add(1)
	if f.Started != nil {
		f.Started <- struct{}{}
	}
	if f.Release != nil {
		select {
		case <-f.Release:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if f.Err != nil {
		return nil, f.Err
	}
	return append([]quote.Quote(nil), f.Quotes...), nil
}

// Calls returns how many times Fetch has been called.
func (f *GatedFetcher) Calls() int {
	return int(f.calls.Load())
}

// FiveQuotes is a small fixture list in the shape the quotes API returns.
func FiveQuotes() []quote.Quote {
	return []quote.Quote{
		{Text: "Genius is one percent inspiration and ninety-nine percent perspiration.", Author: "Thomas Edison, type.fit"},
		{Text: "You can observe a lot just by watching.", Author: "Yogi Berra, type.fit"},
		{Text: "A house divided against itself cannot stand.", Author: "Abraham Lincoln, type.fit"},
		{Text: "Difficulties increase the nearer we get to the goal.", Author: "Johann Wolfgang von Goethe, type.fit"},
		{Text: "Fate is in your hands and no one elses", Author: "type.fit"},
	}
}
