// Package probe locates the widget's addressable regions in an HTML page.
package probe

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"golang.org/x/net/html"

	"github.com/Snider/Quotebox/pkg/widget"
)

// Region is what was found for one identifier.
type Region struct {
	ID    string
	Found bool
	// InBox reports whether the element sits inside the quote box.
	InBox bool
	Tag   string
	Text  string
	Href  string
}

// Report holds the container and the regions inside it, in widget.Regions
// order.
type Report struct {
	Box     Region
	Regions []Region
}

// OK reports whether the box and every region were found inside it.
func (r Report) OK() bool {
	if !r.Box.Found {
		return false
	}
	for _, reg := range r.Regions {
		if !reg.Found || !reg.InBox {
			return false
		}
	}
	return true
}

// Missing lists the identifiers that were not found, or found outside the
// quote box.
func (r Report) Missing() []string {
	var out []string
	if !r.Box.Found {
		out = append(out, r.Box.ID)
	}
	for _, reg := range r.Regions {
		if !reg.Found || !reg.InBox {
			out = append(out, reg.ID)
		}
	}
	return out
}

// Region returns the region with the given id.
func (r Report) Region(id string) (Region, bool) {
	if id == r.Box.ID {
		return r.Box, r.Box.Found
	}
	for _, reg := range r.Regions {
		if reg.ID == id {
			return reg, reg.Found
		}
	}
	return Region{}, false
}

// Locate fetches url and parses the widget regions out of it.
func Locate(ctx context.Context, client *http.Client, url string) (Report, error) {
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Report{}, err
	}
	req.Header.Set("Accept", "text/html")

	resp, err := client.Do(req)
	if err != nil {
		return Report{}, fmt.Errorf("getting %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Report{}, fmt.Errorf("getting %s: status %d", url, resp.StatusCode)
	}
	return Parse(resp.Body)
}

// Parse walks an HTML document and collects the widget regions.
func Parse(r io.Reader) (Report, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return Report{}, fmt.Errorf("parsing HTML: %w", err)
	}

	found := make(map[string]Region)
	var f func(*html.Node, bool)
	f = func(n *html.Node, inBox bool) {
		if n.Type == html.ElementNode {
			if id := attr(n, "id"); id != "" {
				if _, seen := found[id]; !seen {
					found[id] = Region{
						ID:    id,
						Found: true,
						InBox: inBox,
						Tag:   n.Data,
						Text:  strings.Join(strings.Fields(textContent(n)), " "),
						Href:  attr(n, "href"),
					}
				}
				if id == widget.RegionBox {
					inBox = true
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			f(c, inBox)
		}
	}
	f(doc, false)

	report := Report{Box: lookup(found, widget.RegionBox)}
	for _, id := range widget.Regions {
		report.Regions = append(report.Regions, lookup(found, id))
	}
	return report, nil
}

func lookup(found map[string]Region, id string) Region {
	if reg, ok := found[id]; ok {
		return reg
	}
	return Region{ID: id}
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func textContent(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style" || n.Data == "svg") {
		return ""
	}
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		b.WriteString(textContent(c))
	}
	return b.String()
}
