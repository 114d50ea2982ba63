package mock

import "github.com/fwojciec/tourcopy"

var (
	_ tourcopy.ItineraryParser = (*ItineraryParser)(nil)
	_ tourcopy.FAQParser       = (*FAQParser)(nil)
	_ tourcopy.MarkupParser    = (*MarkupParser)(nil)
)

// ItineraryParser is a mock implementation of tourcopy.ItineraryParser.
type ItineraryParser struct {
	ParseItineraryFn func(markup string) []tourcopy.ItineraryDay
}

func (p *ItineraryParser) ParseItinerary(markup string) []tourcopy.ItineraryDay {
	return p.ParseItineraryFn(markup)
}

// FAQParser is a mock implementation of tourcopy.FAQParser.
type FAQParser struct {
	ParseFAQFn func(markup string) []tourcopy.FaqEntry
}

func (p *FAQParser) ParseFAQ(markup string) []tourcopy.FaqEntry {
	return p.ParseFAQFn(markup)
}

// MarkupParser is a mock implementation of tourcopy.MarkupParser.
type MarkupParser struct {
	ParseMarkupFn func(markup string) (tourcopy.Node, error)
}

func (p *MarkupParser) ParseMarkup(markup string) (tourcopy.Node, error) {
	return p.ParseMarkupFn(markup)
}
