package tourcopy

import (
	"fmt"
	"strings"
)

// PageSection is one collapsible section of a product page. Exactly one
// of Markup and List is set.
type PageSection struct {
	Key    SectionKey   `json:"key"`
	Title  string       `json:"title"`
	Anchor string       `json:"anchor"`
	Markup *SectionView `json:"markup,omitempty"`
	List   *ListView    `json:"list,omitempty"`
}

// CanToggle reports whether the section offers a read more/less action.
func (s *PageSection) CanToggle() bool {
	switch {
	case s.Markup != nil:
		return s.Markup.IsTruncated
	case s.List != nil:
		return s.List.IsTruncated
	}
	return false
}

// PackageView is a package with its derived pricing and detail state.
type PackageView struct {
	TourPackage
	Key             SectionKey `json:"key"`
	HasDiscount     bool       `json:"hasDiscount"`
	DiscountPercent int        `json:"discountPercent"`
	IsExpanded      bool       `json:"isExpanded"`
}

// ItinerarySection holds the parsed itinerary of a product. An empty Days
// slice means itinerary markup was present but yielded no days.
type ItinerarySection struct {
	Days []ItineraryDay `json:"days"`
}

// ProductPage is the structured view of a product handed to a renderer.
type ProductPage struct {
	Name      string            `json:"name"`
	Sections  []PageSection     `json:"sections"`
	FAQ       *FAQView          `json:"faq,omitempty"`
	Itinerary *ItinerarySection `json:"itinerary,omitempty"`
	Packages  []PackageView     `json:"packages,omitempty"`
}

// PackageKey returns the disclosure key for the details of the i-th package.
func PackageKey(i int) SectionKey {
	return SectionKey(fmt.Sprintf("package/%d", i))
}

// PageBuilder assembles product pages from stored products.
type PageBuilder struct {
	// Disclosure defaults to NewDisclosure when nil.
	Disclosure *Disclosure

	// Itinerary parses itinerary markup. The itinerary is omitted when nil.
	Itinerary ItineraryParser

	// FAQ parses FAQ markup. ParseFAQ is used when nil.
	FAQ FAQParser
}

// Build derives the page for p using the disclosure state in session.
// Sections follow the order highlights, overview, things to carry, know
// before you book, how to reach; empty fields are skipped.
func (b *PageBuilder) Build(p *Product, session *Session) *ProductPage {
	if session == nil {
		session = NewSession()
	}
	d := b.Disclosure
	if d == nil {
		d = NewDisclosure()
	}

	page := &ProductPage{Name: p.Name}
	anchors := Anchors{}

	addMarkup := func(key SectionKey, title, markup string) {
		if strings.TrimSpace(markup) == "" {
			return
		}
		view := d.Render(key, markup, session.Sections)
		page.Sections = append(page.Sections, PageSection{Key: key, Title: title, Anchor: anchors.Next(title), Markup: &view})
	}

	addMarkup(SectionHighlights, "Highlights", p.Highlights)
	addMarkup(SectionOverview, "Overview", p.Overview)
	switch {
	case p.ThingsToCarry.Items != nil:
		view := d.RenderList(SectionCarry, p.ThingsToCarry.Items, session.Sections)
		page.Sections = append(page.Sections, PageSection{
			Key:    SectionCarry,
			Title:  "Things to Carry",
			Anchor: anchors.Next("Things to Carry"),
			List:   &view,
		})
	default:
		addMarkup(SectionCarry, "Things to Carry", p.ThingsToCarry.Markup)
	}
	addMarkup(SectionAdditionalInfo, "Know Before You Book", p.AdditionalInfo)
	addMarkup(SectionHowToReach, "How to Reach", p.HowToReach)

	if entries := b.faqEntries(p.FAQ); len(entries) > 0 {
		view := session.FAQ.View(entries)
		page.FAQ = &view
	}

	if strings.TrimSpace(p.Itineraries) != "" && b.Itinerary != nil {
		days := b.Itinerary.ParseItinerary(p.Itineraries)
		if days == nil {
			days = []ItineraryDay{}
		}
		page.Itinerary = &ItinerarySection{Days: days}
	}

	for i, pkg := range p.Packages {
		key := PackageKey(i)
		page.Packages = append(page.Packages, PackageView{
			TourPackage:     pkg,
			Key:             key,
			HasDiscount:     pkg.HasDiscount(),
			DiscountPercent: pkg.DiscountPercent(),
			IsExpanded:      session.Sections.IsExpanded(key),
		})
	}

	return page
}

func (b *PageBuilder) faqEntries(src FAQSource) []FaqEntry {
	if src.Entries != nil || b.FAQ == nil {
		return ExtractFAQ(src)
	}
	return b.FAQ.ParseFAQ(src.Markup)
}
