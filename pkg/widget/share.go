package widget

// ShareURL is the static sharing intent behind the share control. It is not
// derived from the displayed quote.
const ShareURL = "https://twitter.com/intent/tweet?hashtags=quotes&related=freecodecamp&text=%22Life%20shrinks%20or%20expands%20in%20proportion%20to%20one%E2%80%99s%20courage.%22%20Anais%20Nin"

// Region identifiers exposed by every HTML rendering of the widget.
const (
	RegionBox      = "quote-box"
	RegionText     = "text"
	RegionAuthor   = "author"
	RegionNewQuote = "new-quote"
	RegionShare    = "tweet-quote"
)

// Regions lists the identifiers inside the quote box, in document order.
var Regions = []string{RegionText, RegionAuthor, RegionNewQuote, RegionShare}
