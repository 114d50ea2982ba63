package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/tourcopy"
	"golang.org/x/net/html"
)

// Ensure Inspector implements tourcopy.MarkupInspector at compile time.
var _ tourcopy.MarkupInspector = (*Inspector)(nil)

// Inspector identifies the authoring conventions used in a markup blob.
// It counts paragraphs and lists along with the bold labels that open
// itinerary days and FAQ entries.
type Inspector struct{}

// NewInspector creates a new Inspector.
func NewInspector() *Inspector {
	return &Inspector{}
}

// Inspect analyzes markup. Markup that cannot be parsed reports only its
// word count.
func (i *Inspector) Inspect(markup string) tourcopy.MarkupReport {
	report := tourcopy.MarkupReport{Words: tourcopy.WordCount(markup)}
	if strings.TrimSpace(markup) == "" {
		return report
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return report
	}

	report.Paragraphs = doc.Find("p").Length()
	report.Lists = doc.Find("ul, ol").Length()

	doc.Find("strong, b").Each(func(_ int, sel *goquery.Selection) {
		if sel.ParentsFiltered("strong, b").Length() > 0 {
			return
		}
		switch {
		case opensFAQEntry(sel.Nodes[0]):
			report.FAQMarkers++
		case tourcopy.IsDayMarker(sel.Text()):
			report.DayMarkers++
		}
	})

	return report
}

// opensFAQEntry reports whether the bold span n is where a "Q<n>." entry
// begins: the first content of its paragraph, with the label as its
// leading text.
func opensFAQEntry(n *html.Node) bool {
	if n.Parent == nil || n.Parent.Type != html.ElementNode || n.Parent.Data != "p" {
		return false
	}
	for prev := n.PrevSibling; prev != nil; prev = prev.PrevSibling {
		if prev.Type != html.TextNode || strings.TrimSpace(prev.Data) != "" {
			return false
		}
	}
	first := n.FirstChild
	return first != nil && first.Type == html.TextNode && tourcopy.IsFAQMarker(first.Data)
}
