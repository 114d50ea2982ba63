package goquery

import (
	"strings"

	"github.com/fwojciec/tourcopy"
)

// Ensure ItineraryParser implements tourcopy.ItineraryParser at compile time.
var _ tourcopy.ItineraryParser = (*ItineraryParser)(nil)

// ItineraryParser parses itinerary markup with goquery and extracts days
// with tourcopy.ExtractItinerary.
type ItineraryParser struct {
	parser *Parser
}

// NewItineraryParser creates a new ItineraryParser.
func NewItineraryParser() *ItineraryParser {
	return &ItineraryParser{parser: NewParser()}
}

// ParseItinerary returns the days described by markup. Markup that cannot
// be parsed yields no days.
func (p *ItineraryParser) ParseItinerary(markup string) []tourcopy.ItineraryDay {
	if strings.TrimSpace(markup) == "" {
		return nil
	}

	root, err := p.parser.ParseMarkup(markup)
	if err != nil {
		return nil
	}
	return tourcopy.ExtractItinerary(root)
}
