package ui

import (
	"io"
	"time"

	"github.com/schollz/progressbar/v3"
)

// NewSpinner creates an indeterminate progress bar used as the busy
// indicator while a quote request is in flight. It clears itself when
// finished.
//
// Example:
//
//	bar := ui.NewSpinner(os.Stderr, "Processing...")
//	defer bar.Finish()
//	// ... request ...
func NewSpinner(w io.Writer, description string) *progressbar.ProgressBar {
	return progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription(description),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionSetWidth(15),
		progressbar.OptionThrottle(0),
		progressbar.OptionClearOnFinish(),
	)
}

// WithSpinner runs fn while a spinner animates on w.
func WithSpinner(w io.Writer, description string, fn func()) {
	bar := NewSpinner(w, description)
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(100 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				bar.Add(1)
			}
		}
	}()

	fn()
	close(done)
	bar.Finish()
}
