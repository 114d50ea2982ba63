package tourcopy

import (
	"regexp"
	"strings"
)

var tagRe = regexp.MustCompile(`<[^>]+>`)

// StripMarkup removes every <...> span from s. Entities are left as-is.
func StripMarkup(s string) string {
	return tagRe.ReplaceAllString(s, "")
}

// WordCount returns the number of whitespace-delimited words in markup
// after tags are removed. Empty input counts as zero words.
func WordCount(markup string) int {
	return len(strings.Fields(StripMarkup(markup)))
}
