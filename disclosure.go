package tourcopy

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// SectionKey names a content region that is expanded or collapsed
// independently of the others.
type SectionKey string

// Well-known product page sections.
const (
	SectionHighlights     SectionKey = "highlights"
	SectionOverview       SectionKey = "overview"
	SectionCarry          SectionKey = "carry"
	SectionAdditionalInfo SectionKey = "additionalInfo"
	SectionHowToReach     SectionKey = "howToReach"
)

// Disclosure defaults.
const (
	DefaultWordCeiling = 50
	DefaultListLimit   = 10
	Ellipsis           = "..."
)

// DisclosureState records which sections are expanded. The zero value is
// a valid, fully collapsed state.
type DisclosureState map[SectionKey]bool

// IsExpanded reports whether the section is expanded.
func (s DisclosureState) IsExpanded(key SectionKey) bool {
	return s[key]
}

// Toggle flips the expanded flag for a single section.
// Collapsed sections are removed from the map so that toggling twice
// restores the previous state exactly.
func (s *DisclosureState) Toggle(key SectionKey) {
	if *s == nil {
		*s = make(DisclosureState)
	}
	if (*s)[key] {
		delete(*s, key)
		return
	}
	(*s)[key] = true
}

// TruncatePolicy selects how collapsed markup is cut.
type TruncatePolicy int

const (
	// TruncateRaw splits the raw markup on whitespace, tags included, and
	// keeps the first ceiling tokens. A cut may land inside a tag.
	TruncateRaw TruncatePolicy = iota

	// TruncateOutsideTags counts only text words and cuts on whitespace
	// outside of tags, so no tag is ever split.
	TruncateOutsideTags
)

// String returns the config name of the policy.
func (p TruncatePolicy) String() string {
	switch p {
	case TruncateOutsideTags:
		return "outside-tags"
	default:
		return "raw"
	}
}

// ParseTruncatePolicy parses a policy name as written in config files.
func ParseTruncatePolicy(s string) (TruncatePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "raw":
		return TruncateRaw, nil
	case "outside-tags":
		return TruncateOutsideTags, nil
	}
	return TruncateRaw, Errorf(EINVALID, "unknown truncate policy %q", s)
}

// SectionView is the visible portion of a markup section.
type SectionView struct {
	Key           SectionKey `json:"key"`
	VisibleMarkup string     `json:"visibleMarkup"`
	IsTruncated   bool       `json:"isTruncated"`
	IsExpanded    bool       `json:"isExpanded"`
}

// ListView is the visible portion of a list-valued section.
type ListView struct {
	Key         SectionKey `json:"key"`
	Items       []string   `json:"items"`
	Total       int        `json:"total"`
	IsTruncated bool       `json:"isTruncated"`
	IsExpanded  bool       `json:"isExpanded"`
}

// Disclosure applies read-more/less limits to sections.
type Disclosure struct {
	// WordCeiling is the word count above which markup sections collapse.
	WordCeiling int

	// ListLimit is the number of list items shown while collapsed.
	ListLimit int

	Policy TruncatePolicy
}

// NewDisclosure returns a Disclosure with default limits.
func NewDisclosure() *Disclosure {
	return &Disclosure{
		WordCeiling: DefaultWordCeiling,
		ListLimit:   DefaultListLimit,
		Policy:      TruncateRaw,
	}
}

func (d *Disclosure) ceiling() int {
	if d.WordCeiling <= 0 {
		return DefaultWordCeiling
	}
	return d.WordCeiling
}

func (d *Disclosure) listLimit() int {
	if d.ListLimit <= 0 {
		return DefaultListLimit
	}
	return d.ListLimit
}

// Render returns the visible markup for a section. Markup over the word
// ceiling is cut and suffixed with Ellipsis unless the section is expanded.
func (d *Disclosure) Render(key SectionKey, markup string, state DisclosureState) SectionView {
	view := SectionView{
		Key:           key,
		VisibleMarkup: markup,
		IsTruncated:   WordCount(markup) > d.ceiling(),
		IsExpanded:    state.IsExpanded(key),
	}
	if !view.IsTruncated || view.IsExpanded {
		return view
	}

	switch d.Policy {
	case TruncateOutsideTags:
		view.VisibleMarkup = truncateOutsideTags(markup, d.ceiling()) + Ellipsis
	default:
		view.VisibleMarkup = truncateRaw(markup, d.ceiling()) + Ellipsis
	}
	return view
}

// RenderList returns the visible items of a list section. Only the first
// ListLimit items are shown while collapsed.
func (d *Disclosure) RenderList(key SectionKey, items []string, state DisclosureState) ListView {
	limit := d.listLimit()
	view := ListView{
		Key:         key,
		Items:       items,
		Total:       len(items),
		IsTruncated: len(items) > limit,
		IsExpanded:  state.IsExpanded(key),
	}
	if view.IsTruncated && !view.IsExpanded {
		view.Items = items[:limit]
	}
	return view
}

func truncateRaw(markup string, ceiling int) string {
	tokens := strings.Fields(markup)
	if len(tokens) > ceiling {
		tokens = tokens[:ceiling]
	}
	return strings.Join(tokens, " ")
}

// truncateOutsideTags returns markup up to the start of word ceiling+1,
// where words are counted the same way WordCount counts them.
func truncateOutsideTags(markup string, ceiling int) string {
	words := 0
	inWord := false
	for i := 0; i < len(markup); {
		if markup[i] == '<' {
			if end := strings.IndexByte(markup[i:], '>'); end > 1 {
				i += end + 1
				continue
			}
		}
		r, size := utf8.DecodeRuneInString(markup[i:])
		switch {
		case unicode.IsSpace(r):
			inWord = false
		case !inWord:
			inWord = true
			words++
			if words > ceiling {
				return strings.TrimRightFunc(markup[:i], unicode.IsSpace)
			}
		}
		i += size
	}
	return markup
}

// Session holds the disclosure state of one rendering session. It is owned
// by the caller and passed explicitly to every render.
type Session struct {
	Sections DisclosureState
	FAQ      FAQDisclosure
}

// NewSession returns a session with every section collapsed.
func NewSession() *Session {
	return &Session{
		Sections: make(DisclosureState),
	}
}
