package tourcopy

import (
	"strconv"
	"strings"
	"unicode"
)

// Anchor converts a title to a URL-safe fragment identifier: lowercase
// letters and digits, with runs of spaces and hyphens collapsed to one hyphen.
func Anchor(title string) string {
	var sb strings.Builder
	prevHyphen := false

	for _, r := range strings.ToLower(title) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			sb.WriteRune(r)
			prevHyphen = false
		case unicode.IsSpace(r) || r == '-':
			if !prevHyphen && sb.Len() > 0 {
				sb.WriteRune('-')
				prevHyphen = true
			}
		}
	}

	return strings.TrimSuffix(sb.String(), "-")
}

// Anchors issues unique anchors within one page. Repeated titles get
// numeric suffixes in order of appearance.
type Anchors map[string]int

// Next returns the anchor for title, suffixed when already issued.
func (a Anchors) Next(title string) string {
	base := Anchor(title)
	if base == "" {
		base = "section"
	}
	count, ok := a[base]
	a[base] = count + 1
	if !ok {
		return base
	}
	return base + "-" + strconv.Itoa(count)
}
