package goquery_test

import (
	"testing"

	"github.com/fwojciec/tourcopy"
	"github.com/fwojciec/tourcopy/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Parser implements tourcopy.MarkupParser at compile time.
var _ tourcopy.MarkupParser = (*goquery.Parser)(nil)

func TestParser_ParseMarkup(t *testing.T) {
	t.Parallel()

	t.Run("returns body element for a fragment", func(t *testing.T) {
		t.Parallel()

		root, err := goquery.NewParser().ParseMarkup(`<p>One</p><ul><li>Two</li></ul>`)

		require.NoError(t, err)
		assert.Equal(t, "body", root.Tag())
		children := root.Children()
		require.Len(t, children, 2)
		assert.Equal(t, "p", children[0].Tag())
		assert.Equal(t, "ul", children[1].Tag())
	})

	t.Run("walks element siblings skipping text", func(t *testing.T) {
		t.Parallel()

		root, err := goquery.NewParser().ParseMarkup("<p>One</p>\n\ntext\n<p>Two</p>")

		require.NoError(t, err)
		first := root.Children()[0]
		next := first.NextSibling()
		require.NotNil(t, next)
		assert.Equal(t, "Two", next.TextContent())
		assert.Nil(t, next.NextSibling())
	})

	t.Run("reports parents up to the html element", func(t *testing.T) {
		t.Parallel()

		root, err := goquery.NewParser().ParseMarkup(`<p><strong>Day 1</strong></p>`)

		require.NoError(t, err)
		spans := tourcopy.Descendants(root, "strong")
		require.Len(t, spans, 1)

		p := tourcopy.Closest(spans[0], "p")
		require.NotNil(t, p)
		assert.Equal(t, "Day 1", p.TextContent())

		body := p.Parent()
		require.NotNil(t, body)
		assert.Equal(t, "body", body.Tag())

		htmlEl := body.Parent()
		require.NotNil(t, htmlEl)
		assert.Equal(t, "html", htmlEl.Tag())
		assert.Nil(t, htmlEl.Parent())
	})

	t.Run("returns nil when no ancestor matches", func(t *testing.T) {
		t.Parallel()

		root, err := goquery.NewParser().ParseMarkup(`<div><strong>x</strong></div>`)

		require.NoError(t, err)
		spans := tourcopy.Descendants(root, "strong")
		require.Len(t, spans, 1)
		assert.Nil(t, tourcopy.Closest(spans[0], "p"))
	})

	t.Run("decodes entities in text content", func(t *testing.T) {
		t.Parallel()

		root, err := goquery.NewParser().ParseMarkup(`<p>Tea &amp; snacks</p>`)

		require.NoError(t, err)
		assert.Equal(t, "Tea & snacks", root.TextContent())
	})
}

func TestDescendants(t *testing.T) {
	t.Parallel()

	root, err := goquery.NewParser().ParseMarkup(`<p><strong>a</strong><b>b</b></p><ul><li><strong>c</strong></li></ul>`)
	require.NoError(t, err)

	spans := tourcopy.Descendants(root, "strong", "b")

	require.Len(t, spans, 3)
	assert.Equal(t, "a", spans[0].TextContent())
	assert.Equal(t, "b", spans[1].TextContent())
	assert.Equal(t, "c", spans[2].TextContent())
	assert.Empty(t, tourcopy.Descendants(nil, "p"))
}
