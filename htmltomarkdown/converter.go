// Package htmltomarkdown renders editor markup as Markdown.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/strikethrough"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/tourcopy"
)

// Ensure Converter implements tourcopy.Converter at compile time.
var _ tourcopy.Converter = (*Converter)(nil)

// Converter wraps html-to-markdown to convert editor markup to Markdown.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			strikethrough.NewStrikethroughPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms markup into Markdown. Blank markup converts to an
// empty string. Truncated fragments with unclosed tags are accepted.
func (c *Converter) Convert(markup string) (string, error) {
	if strings.TrimSpace(markup) == "" {
		return "", nil
	}

	result, err := c.conv.ConvertString(markup)
	if err != nil {
		return "", tourcopy.Errorf(tourcopy.EINVALID, "converting markup: %v", err)
	}

	return strings.TrimSpace(result), nil
}
