// Package etree writes extracted product content as XML documents.
package etree

import (
	"fmt"
	"io"
	"strconv"

	"github.com/beevik/etree"
	"github.com/fwojciec/tourcopy"
)

// Encoder writes XML documents to an output stream.
type Encoder struct {
	w io.Writer

	// Indent is the number of spaces per nesting level. Zero disables
	// indentation.
	Indent int
}

// NewEncoder returns an Encoder that writes to w with two-space indentation.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w, Indent: 2}
}

// EncodePage writes the page as a <product> document.
func (e *Encoder) EncodePage(page *tourcopy.ProductPage) error {
	doc := newDocument()
	root := doc.CreateElement("product")
	root.CreateAttr("name", page.Name)

	for _, s := range page.Sections {
		appendSection(root, s)
	}
	if page.FAQ != nil {
		faq := appendFAQ(root, page.FAQ.Entries)
		faq.CreateAttr("total", strconv.Itoa(page.FAQ.Total))
	}
	if page.Itinerary != nil {
		appendItinerary(root, page.Itinerary.Days)
	}
	if len(page.Packages) > 0 {
		pkgs := root.CreateElement("packages")
		for _, p := range page.Packages {
			appendPackage(pkgs, p)
		}
	}

	return e.write(doc)
}

// EncodeItinerary writes days as an <itinerary> document.
func (e *Encoder) EncodeItinerary(days []tourcopy.ItineraryDay) error {
	doc := newDocument()
	appendItinerary(&doc.Element, days)
	return e.write(doc)
}

// EncodeFAQ writes entries as a <faq> document.
func (e *Encoder) EncodeFAQ(entries []tourcopy.FaqEntry) error {
	doc := newDocument()
	appendFAQ(&doc.Element, entries)
	return e.write(doc)
}

func newDocument() *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	return doc
}

func (e *Encoder) write(doc *etree.Document) error {
	if e.Indent > 0 {
		doc.Indent(e.Indent)
	}
	if _, err := doc.WriteTo(e.w); err != nil {
		return fmt.Errorf("writing XML: %w", err)
	}
	return nil
}

func appendSection(parent *etree.Element, s tourcopy.PageSection) {
	el := parent.CreateElement("section")
	el.CreateAttr("key", string(s.Key))
	el.CreateAttr("title", s.Title)
	el.CreateAttr("anchor", s.Anchor)
	switch {
	case s.Markup != nil:
		el.CreateAttr("truncated", strconv.FormatBool(s.Markup.IsTruncated))
		el.CreateAttr("expanded", strconv.FormatBool(s.Markup.IsExpanded))
		el.SetText(s.Markup.VisibleMarkup)
	case s.List != nil:
		el.CreateAttr("truncated", strconv.FormatBool(s.List.IsTruncated))
		el.CreateAttr("expanded", strconv.FormatBool(s.List.IsExpanded))
		el.CreateAttr("total", strconv.Itoa(s.List.Total))
		for _, item := range s.List.Items {
			el.CreateElement("item").SetText(item)
		}
	}
}

func appendFAQ(parent *etree.Element, entries []tourcopy.FaqEntry) *etree.Element {
	faq := parent.CreateElement("faq")
	for _, entry := range entries {
		el := faq.CreateElement("entry")
		el.CreateElement("question").SetText(entry.Question)
		el.CreateElement("answer").SetText(entry.Answer)
	}
	return faq
}

func appendItinerary(parent *etree.Element, days []tourcopy.ItineraryDay) {
	itinerary := parent.CreateElement("itinerary")
	for _, day := range days {
		el := itinerary.CreateElement("day")
		el.CreateAttr("number", strconv.Itoa(day.DayNumber))
		el.CreateAttr("title", day.Title)
		for _, item := range day.Items {
			el.CreateElement("item").SetText(item)
		}
	}
}

func appendPackage(parent *etree.Element, p tourcopy.PackageView) {
	el := parent.CreateElement("package")
	el.CreateAttr("name", p.Name)
	el.CreateAttr("price", strconv.FormatInt(p.Price, 10))
	if p.HasDiscount {
		el.CreateAttr("actualPrice", strconv.FormatInt(p.ActualPrice, 10))
		el.CreateAttr("discountPercent", strconv.Itoa(p.DiscountPercent))
	}
	if p.IsPopular {
		el.CreateAttr("popular", "true")
	}
	for _, f := range p.Features {
		el.CreateElement("feature").SetText(f)
	}
}
