package tourcopy

import (
	"cmp"
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

// ItineraryDay is one day of a tour itinerary.
type ItineraryDay struct {
	DayNumber int      `json:"dayNumber"`
	Title     string   `json:"title"`
	Items     []string `json:"items"`
}

// ItineraryParser extracts itinerary days from markup.
type ItineraryParser interface {
	// ParseItinerary returns the days found in markup ordered by day
	// number. Markup without day markers yields an empty result.
	ParseItinerary(markup string) []ItineraryDay
}

// ItineraryParserFunc adapts a function to the ItineraryParser interface.
type ItineraryParserFunc func(markup string) []ItineraryDay

// ParseItinerary calls f(markup).
func (f ItineraryParserFunc) ParseItinerary(markup string) []ItineraryDay {
	return f(markup)
}

var dayMarkerRe = regexp.MustCompile(`(?i)Day\s*(\d+)[:\s]*(.*)`)

// IsDayMarker reports whether text reads as a day marker with a positive
// day number.
func IsDayMarker(text string) bool {
	_, _, ok := matchDayMarker(text)
	return ok
}

// ExtractItinerary scans the bold spans under root for day markers such as
// "Day 2: City Tour". Each day collects the items of the first list that
// follows the marker's paragraph, unless another day marker comes first.
// Days are sorted by day number; days sharing a number keep document order.
// Nested bold spans count once, through the outermost span.
func ExtractItinerary(root Node) []ItineraryDay {
	var days []ItineraryDay
	for _, span := range Descendants(root, "strong", "b") {
		if insideBold(span) {
			continue
		}
		number, title, ok := matchDayMarker(span.TextContent())
		if !ok {
			continue
		}
		days = append(days, ItineraryDay{
			DayNumber: number,
			Title:     strings.ToUpper(fmt.Sprintf("Day %d %s", number, title)),
			Items:     collectDayItems(span),
		})
	}

	slices.SortStableFunc(days, func(a, b ItineraryDay) int {
		return cmp.Compare(a.DayNumber, b.DayNumber)
	})
	return days
}

// matchDayMarker returns the day number and title of a marker. The title
// falls back to the whole text when nothing follows the number.
func matchDayMarker(text string) (int, string, bool) {
	m := dayMarkerRe.FindStringSubmatch(text)
	if m == nil {
		return 0, "", false
	}
	number, err := strconv.Atoi(m[1])
	if err != nil || number < 1 {
		return 0, "", false
	}
	title := strings.TrimSpace(m[2])
	if title == "" {
		title = strings.TrimSpace(text)
	}
	return number, title, true
}

func collectDayItems(span Node) []string {
	items := []string{}
	p := Closest(span, "p")
	if p == nil {
		return items
	}

	for sib := p.NextSibling(); sib != nil; sib = sib.NextSibling() {
		switch sib.Tag() {
		case "ul", "ol":
			for _, li := range Descendants(sib, "li") {
				if text := strings.TrimSpace(li.TextContent()); text != "" {
					items = append(items, text)
				}
			}
			return items
		case "p":
			if hasDayMarker(sib) {
				return items
			}
		}
	}
	return items
}

// insideBold reports whether n has a strong or b ancestor.
func insideBold(n Node) bool {
	for p := n.Parent(); p != nil; p = p.Parent() {
		if hasTag(p, []string{"strong", "b"}) {
			return true
		}
	}
	return false
}

func hasDayMarker(n Node) bool {
	for _, span := range Descendants(n, "strong", "b") {
		if IsDayMarker(span.TextContent()) {
			return true
		}
	}
	return false
}
