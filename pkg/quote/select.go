package quote

// Nudge applies the anti-repeat rule to a candidate index drawn from a list
// of length n. When the candidate equals the previous index it is moved one
// step: down if the previous index was the last element, up otherwise. The
// nudge is applied once and the result is not checked again.
func Nudge(candidate, previous, n int) int {
	if candidate != previous {
		return candidate
	}
	if previous == n-1 {
		return candidate - 1
	}
	return candidate + 1
}

// Selection is the outcome of one selection step.
type Selection struct {
	// Index is the nudged index, to be remembered for the next selection.
	Index int
	// Shown is the sanitized quote to display. It is read at the previous
	// index, so it lags one selection behind Index.
	Shown Quote
}

// Select picks the next index from quotes and the quote to display.
// intn must return a uniform value in [0, n). Lists shorter than two quotes
// are rejected with ErrInvalidShape, as is a previous index that falls
// outside quotes or points at a record without an author; in the latter
// cases the returned Selection still carries the new Index.
func Select(quotes []Quote, previous int, intn func(n int) int) (Selection, error) {
	n := len(quotes)
	if n < 2 {
		return Selection{Index: previous}, shapeError("got %d quotes, need at least 2", n)
	}

	sel := Selection{Index: Nudge(intn(n), previous, n)}
	if previous < 0 || previous >= n {
		return sel, shapeError("previous index %d outside %d quotes", previous, n)
	}
	if !quotes[previous].HasAuthor() {
		return sel, shapeError("quote %d has no author", previous)
	}
	sel.Shown = quotes[previous].Sanitized()
	return sel, nil
}
