package tourcopy

import (
	"bytes"
	"encoding/json"
	"html"
	"regexp"
	"strings"
)

// DefaultFAQVisible is the number of FAQ entries shown while collapsed.
const DefaultFAQVisible = 5

// NoOpenEntry is returned by FAQDisclosure.OpenIndex when no entry is open.
const NoOpenEntry = -1

// FaqEntry is a single question and answer pair.
// Both fields are non-empty for entries produced by ParseFAQ.
type FaqEntry struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// FAQSource holds FAQ content as stored by the authoring tool: either a
// markup blob or a list of entries that were authored one by one.
type FAQSource struct {
	Markup  string
	Entries []FaqEntry
}

// IsZero reports whether the source carries no content.
func (s FAQSource) IsZero() bool {
	return s.Entries == nil && strings.TrimSpace(s.Markup) == ""
}

// MarshalJSON encodes the source as an array when entries are set and as
// a string otherwise.
func (s FAQSource) MarshalJSON() ([]byte, error) {
	if s.Entries != nil {
		return json.Marshal(s.Entries)
	}
	return json.Marshal(s.Markup)
}

// UnmarshalJSON accepts a markup string, an array of entries, or null.
func (s *FAQSource) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	*s = FAQSource{}
	switch {
	case len(data) == 0 || bytes.Equal(data, []byte("null")):
		return nil
	case data[0] == '"':
		return json.Unmarshal(data, &s.Markup)
	case data[0] == '[':
		s.Entries = []FaqEntry{}
		return json.Unmarshal(data, &s.Entries)
	}
	return Errorf(EINVALID, "faq must be a string or an array of entries")
}

// FAQParser extracts FAQ entries from markup.
type FAQParser interface {
	ParseFAQ(markup string) []FaqEntry
}

// FAQParserFunc adapts a function to the FAQParser interface.
type FAQParserFunc func(markup string) []FaqEntry

// ParseFAQ calls f(markup).
func (f FAQParserFunc) ParseFAQ(markup string) []FaqEntry {
	return f(markup)
}

// ExtractFAQ returns the entries of src. Structured entries are returned
// unchanged; markup is parsed with ParseFAQ.
func ExtractFAQ(src FAQSource) []FaqEntry {
	if src.Entries != nil {
		return src.Entries
	}
	return ParseFAQ(src.Markup)
}

var (
	faqMarkerRe   = regexp.MustCompile(`<p(?:\s[^>]*)?>\s*<(?:strong|b)(?:\s[^>]*)?>\s*Q\d+\.\s*`)
	faqQuestionRe = regexp.MustCompile(`^(.*?)</(?:strong|b)>`)
	faqAnswerRe   = regexp.MustCompile(`<(?:strong|b)(?:\s[^>]*)?>\s*Ans\.\s*</(?:strong|b)>(.*?)</p>`)
	faqLabelRe    = regexp.MustCompile(`^\s*Q\d+\.`)
)

// IsFAQMarker reports whether the text of a bold span opens an FAQ entry.
func IsFAQMarker(text string) bool {
	return faqLabelRe.MatchString(text)
}

// ParseFAQ extracts question and answer pairs from markup where each entry
// opens with a paragraph whose bold label reads "Q<n>." followed by the
// question, and a later bold "Ans." label precedes the answer in the same
// block. Blocks missing either part are skipped.
func ParseFAQ(markup string) []FaqEntry {
	if markup == "" {
		return nil
	}

	cleaned := strings.NewReplacer("\r", "", "\n", "").Replace(markup)
	blocks := faqMarkerRe.Split(cleaned, -1)
	if len(blocks) < 2 {
		return nil
	}

	var entries []FaqEntry
	for _, block := range blocks[1:] {
		if entry, ok := parseFAQBlock(block); ok {
			entries = append(entries, entry)
		}
	}
	return entries
}

// parseFAQBlock returns the entry held by a single Q<n>. block and whether
// both its question and answer were found.
func parseFAQBlock(block string) (FaqEntry, bool) {
	var entry FaqEntry
	if m := faqQuestionRe.FindStringSubmatch(block); m != nil {
		entry.Question = plainText(m[1])
	}
	if m := faqAnswerRe.FindStringSubmatch(block); m != nil {
		entry.Answer = plainText(m[1])
	}
	return entry, entry.Question != "" && entry.Answer != ""
}

func plainText(markup string) string {
	return strings.TrimSpace(html.UnescapeString(StripMarkup(markup)))
}

// FAQDisclosure tracks how many FAQ entries are visible and which single
// entry is open. The zero value shows DefaultFAQVisible entries with none
// open.
type FAQDisclosure struct {
	// Limit is the number of entries visible while collapsed.
	Limit int

	expanded bool
	open     int // index+1; zero means none
}

func (d *FAQDisclosure) limit() int {
	if d.Limit <= 0 {
		return DefaultFAQVisible
	}
	return d.Limit
}

// IsExpanded reports whether all entries are visible.
func (d *FAQDisclosure) IsExpanded() bool {
	return d.expanded
}

// OpenIndex returns the index of the open entry, or NoOpenEntry.
func (d *FAQDisclosure) OpenIndex() int {
	return d.open - 1
}

// Expand reveals every entry and closes the open entry.
func (d *FAQDisclosure) Expand() {
	d.expanded = true
	d.open = 0
}

// Collapse restores the limited view and closes the open entry.
func (d *FAQDisclosure) Collapse() {
	d.expanded = false
	d.open = 0
}

// ToggleEntry opens entry i, or closes it when it is already open.
func (d *FAQDisclosure) ToggleEntry(i int) {
	if i < 0 || d.open == i+1 {
		d.open = 0
		return
	}
	d.open = i + 1
}

// Visible returns the entries currently shown.
func (d *FAQDisclosure) Visible(entries []FaqEntry) []FaqEntry {
	if d.expanded || len(entries) <= d.limit() {
		return entries
	}
	return entries[:d.limit()]
}

// FAQView is the visible state of an FAQ list.
type FAQView struct {
	Entries     []FaqEntry `json:"entries"`
	Total       int        `json:"total"`
	OpenIndex   int        `json:"openIndex"`
	CanExpand   bool       `json:"canExpand"`
	CanCollapse bool       `json:"canCollapse"`
}

// View returns the visible entries along with the available actions.
func (d *FAQDisclosure) View(entries []FaqEntry) FAQView {
	overflow := len(entries) > d.limit()
	return FAQView{
		Entries:     d.Visible(entries),
		Total:       len(entries),
		OpenIndex:   d.OpenIndex(),
		CanExpand:   overflow && !d.expanded,
		CanCollapse: overflow && d.expanded,
	}
}
