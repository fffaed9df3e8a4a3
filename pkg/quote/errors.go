package quote

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNetwork reports that the request could not be sent or no response
	// was received.
	ErrNetwork = errors.New("quotes request failed")
	// ErrParse reports a response body that is not a JSON list of quotes.
	ErrParse = errors.New("quotes response not parseable")
	// ErrInvalidShape reports a decoded list that cannot be selected from.
	ErrInvalidShape = errors.New("quotes response has invalid shape")
)

// StatusError reports a response outside the 2xx range.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("quotes endpoint returned status %d (%s)", e.StatusCode, http.StatusText(e.StatusCode))
}

func shapeError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidShape, fmt.Sprintf(format, args...))
}

// Outcome names the class of a fetch-and-select result, for logs and metrics.
func Outcome(err error) string {
	var statusErr *StatusError
	switch {
	case err == nil:
		return "ok"
	case errors.As(err, &statusErr):
		return "status"
	case errors.Is(err, ErrNetwork):
		return "network"
	case errors.Is(err, ErrParse):
		return "parse"
	case errors.Is(err, ErrInvalidShape):
		return "shape"
	default:
		return "error"
	}
}
