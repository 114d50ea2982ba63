// Package goquery implements markup traversal for tourcopy on top of
// github.com/PuerkitoBio/goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/tourcopy"
	"golang.org/x/net/html"
)

// Ensure Parser implements tourcopy.MarkupParser at compile time.
var _ tourcopy.MarkupParser = (*Parser)(nil)

// Parser builds element trees from editor markup.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// ParseMarkup parses markup as an HTML fragment and returns its body element.
func (p *Parser) ParseMarkup(markup string) (tourcopy.Node, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil, tourcopy.Errorf(tourcopy.EINVALID, "failed to parse markup: %v", err)
	}

	body := doc.Find("body").First()
	if body.Length() == 0 {
		return nil, tourcopy.Errorf(tourcopy.EINVALID, "markup has no body")
	}
	return node{sel: body}, nil
}

// node adapts a single-element goquery selection to tourcopy.Node.
type node struct {
	sel *goquery.Selection
}

func (n node) Tag() string {
	return goquery.NodeName(n.sel)
}

func (n node) Parent() tourcopy.Node {
	parent := n.sel.Parent()
	if parent.Length() == 0 || parent.Nodes[0].Type != html.ElementNode {
		return nil
	}
	return node{sel: parent}
}

func (n node) Children() []tourcopy.Node {
	children := n.sel.Children()
	nodes := make([]tourcopy.Node, 0, children.Length())
	children.Each(func(_ int, sel *goquery.Selection) {
		nodes = append(nodes, node{sel: sel})
	})
	return nodes
}

func (n node) NextSibling() tourcopy.Node {
	next := n.sel.Next()
	if next.Length() == 0 {
		return nil
	}
	return node{sel: next}
}

func (n node) TextContent() string {
	return n.sel.Text()
}
