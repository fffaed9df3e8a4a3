package widget

import (
	_ "embed"
	"fmt"
	"html/template"
	"io"
)

//go:embed page.html
var pageHTML string

var pageTemplate = template.Must(template.New("page").Parse(pageHTML))

// Page is the data the widget page is rendered from.
type Page struct {
	State
	// Action is the path the new-quote control posts to.
	Action string
	// ShareURL is the target of the share control.
	ShareURL string
}

// NewPage builds a page for st with the default share link.
func NewPage(st State, action string) Page {
	return Page{State: st, Action: action, ShareURL: ShareURL}
}

// Render writes the widget page for p to w.
func Render(w io.Writer, p Page) error {
	if err := pageTemplate.Execute(w, p); err != nil {
		return fmt.Errorf("rendering widget page: %w", err)
	}
	return nil
}
