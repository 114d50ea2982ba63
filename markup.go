package tourcopy

// Node is a read-only view of an element in parsed markup. Implementations
// return a nil interface, not a typed nil, when there is no node.
type Node interface {
	// Tag returns the lower-case element name.
	Tag() string

	// Parent returns the enclosing element, or nil at the root.
	Parent() Node

	// Children returns the child elements in document order.
	// Text nodes are not included.
	Children() []Node

	// NextSibling returns the next element sibling, or nil.
	NextSibling() Node

	// TextContent returns the concatenated text of the node and its
	// descendants with entities decoded.
	TextContent() string
}

// MarkupParser parses markup into an element tree.
type MarkupParser interface {
	// ParseMarkup returns the root of the tree built from markup.
	ParseMarkup(markup string) (Node, error)
}

// Descendants returns every element below n whose tag is one of tags, in
// document order.
func Descendants(n Node, tags ...string) []Node {
	var found []Node
	var walk func(Node)
	walk = func(n Node) {
		for _, child := range n.Children() {
			if hasTag(child, tags) {
				found = append(found, child)
			}
			walk(child)
		}
	}
	if n != nil {
		walk(n)
	}
	return found
}

// Closest returns n or its nearest ancestor with the given tag, or nil.
func Closest(n Node, tag string) Node {
	for ; n != nil; n = n.Parent() {
		if n.Tag() == tag {
			return n
		}
	}
	return nil
}

func hasTag(n Node, tags []string) bool {
	for _, tag := range tags {
		if n.Tag() == tag {
			return true
		}
	}
	return false
}

// MarkupReport summarizes the structure of a markup blob.
type MarkupReport struct {
	Words      int `json:"words"`
	Paragraphs int `json:"paragraphs"`
	Lists      int `json:"lists"`
	DayMarkers int `json:"dayMarkers"`
	FAQMarkers int `json:"faqMarkers"`
}

// MarkupInspector reports which authoring conventions markup follows.
type MarkupInspector interface {
	Inspect(markup string) MarkupReport
}
