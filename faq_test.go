package tourcopy_test

import (
	"encoding/json"
	"testing"

	"github.com/fwojciec/tourcopy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFAQ(t *testing.T) {
	t.Parallel()

	t.Run("drops blocks without an answer and keeps order", func(t *testing.T) {
		t.Parallel()

		markup := `<p><strong>Q1. What is the best season?</strong></p>
<p><strong>Ans.</strong> April to June.</p>
<p><strong>Q2. Is there network coverage?</strong></p>
<p>We are not sure.</p>
<p><strong>Q3. Are meals included?</strong></p>
<p><strong>Ans. </strong>Yes, all meals on the trek.</p>`

		entries := tourcopy.ParseFAQ(markup)

		require.Len(t, entries, 2)
		assert.Equal(t, tourcopy.FaqEntry{
			Question: "What is the best season?",
			Answer:   "April to June.",
		}, entries[0])
		assert.Equal(t, tourcopy.FaqEntry{
			Question: "Are meals included?",
			Answer:   "Yes, all meals on the trek.",
		}, entries[1])
	})

	t.Run("discards text before the first marker", func(t *testing.T) {
		t.Parallel()

		markup := `<p>Frequently asked questions</p><p><strong>Ans.</strong> stray</p>` +
			`<p><strong>Q1. Is it safe?</strong></p><p><strong>Ans.</strong> Yes.</p>`

		entries := tourcopy.ParseFAQ(markup)

		require.Len(t, entries, 1)
		assert.Equal(t, "Is it safe?", entries[0].Question)
		assert.Equal(t, "Yes.", entries[0].Answer)
	})

	t.Run("strips markup and decodes entities", func(t *testing.T) {
		t.Parallel()

		markup := `<p><strong>Q1. Do I need <em>trekking</em> shoes?</strong></p>` +
			`<p><strong>Ans.</strong> Yes &amp; <a href="/shop">rent them</a> at base.</p>`

		entries := tourcopy.ParseFAQ(markup)

		require.Len(t, entries, 1)
		assert.Equal(t, "Do I need trekking shoes?", entries[0].Question)
		assert.Equal(t, "Yes & rent them at base.", entries[0].Answer)
	})

	t.Run("removes line breaks before splitting", func(t *testing.T) {
		t.Parallel()

		markup := "<p>\n<strong>Q1. Is it cold?</strong>\n</p>\r\n<p><strong>Ans.</strong> Very\n cold.</p>"

		entries := tourcopy.ParseFAQ(markup)

		require.Len(t, entries, 1)
		assert.Equal(t, "Is it cold?", entries[0].Question)
		assert.Equal(t, "Very cold.", entries[0].Answer)
	})

	t.Run("accepts b tags and paragraph attributes", func(t *testing.T) {
		t.Parallel()

		markup := `<p style="text-align:left"><b>Q12. Any age limit?</b></p><p><b>Ans.</b> 10 to 60 years.</p>`

		entries := tourcopy.ParseFAQ(markup)

		require.Len(t, entries, 1)
		assert.Equal(t, "Any age limit?", entries[0].Question)
		assert.Equal(t, "10 to 60 years.", entries[0].Answer)
	})

	t.Run("drops blocks with an empty question", func(t *testing.T) {
		t.Parallel()

		markup := `<p><strong>Q1. </strong></p><p><strong>Ans.</strong> Orphan answer.</p>`

		assert.Empty(t, tourcopy.ParseFAQ(markup))
	})

	t.Run("returns nothing for markup without markers", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, tourcopy.ParseFAQ(""))
		assert.Empty(t, tourcopy.ParseFAQ("<p>No questions here.</p>"))
	})
}

func TestExtractFAQ(t *testing.T) {
	t.Parallel()

	t.Run("passes structured entries through unchanged", func(t *testing.T) {
		t.Parallel()

		entries := []tourcopy.FaqEntry{
			{Question: "<b>raw</b>", Answer: ""},
			{Question: "Q", Answer: "A"},
		}

		first := tourcopy.ExtractFAQ(tourcopy.FAQSource{Entries: entries})
		second := tourcopy.ExtractFAQ(tourcopy.FAQSource{Entries: first})

		assert.Equal(t, entries, first)
		assert.Equal(t, first, second)
	})

	t.Run("parses markup sources", func(t *testing.T) {
		t.Parallel()

		src := tourcopy.FAQSource{Markup: `<p><strong>Q1. Is it safe?</strong></p><p><strong>Ans.</strong> Yes.</p>`}

		entries := tourcopy.ExtractFAQ(src)

		require.Len(t, entries, 1)
		assert.Equal(t, "Is it safe?", entries[0].Question)
	})
}

func TestFAQSource_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	t.Run("decodes a markup string", func(t *testing.T) {
		t.Parallel()

		var src tourcopy.FAQSource
		require.NoError(t, json.Unmarshal([]byte(`"<p>x</p>"`), &src))

		assert.Equal(t, "<p>x</p>", src.Markup)
		assert.Nil(t, src.Entries)
	})

	t.Run("decodes an entry array", func(t *testing.T) {
		t.Parallel()

		var src tourcopy.FAQSource
		require.NoError(t, json.Unmarshal([]byte(`[{"question":"Q","answer":"A"}]`), &src))

		assert.Equal(t, []tourcopy.FaqEntry{{Question: "Q", Answer: "A"}}, src.Entries)
	})

	t.Run("decodes an empty array as structured", func(t *testing.T) {
		t.Parallel()

		var src tourcopy.FAQSource
		require.NoError(t, json.Unmarshal([]byte(`[]`), &src))

		assert.NotNil(t, src.Entries)
		assert.Empty(t, tourcopy.ExtractFAQ(src))
	})

	t.Run("decodes null as empty", func(t *testing.T) {
		t.Parallel()

		var src tourcopy.FAQSource
		require.NoError(t, json.Unmarshal([]byte(`null`), &src))

		assert.True(t, src.IsZero())
	})

	t.Run("rejects other values", func(t *testing.T) {
		t.Parallel()

		var src tourcopy.FAQSource
		err := json.Unmarshal([]byte(`42`), &src)

		require.Error(t, err)
	})

	t.Run("encodes back to the same shape", func(t *testing.T) {
		t.Parallel()

		data, err := json.Marshal(tourcopy.FAQSource{Entries: []tourcopy.FaqEntry{{Question: "Q", Answer: "A"}}})
		require.NoError(t, err)
		assert.JSONEq(t, `[{"question":"Q","answer":"A"}]`, string(data))

		data, err = json.Marshal(tourcopy.FAQSource{Markup: "<p>x</p>"})
		require.NoError(t, err)
		assert.JSONEq(t, `"<p>x</p>"`, string(data))
	})
}

func TestFAQDisclosure(t *testing.T) {
	t.Parallel()

	entries := make([]tourcopy.FaqEntry, 7)
	for i := range entries {
		entries[i] = tourcopy.FaqEntry{Question: "Q", Answer: "A"}
	}

	t.Run("shows first five entries by default", func(t *testing.T) {
		t.Parallel()

		var d tourcopy.FAQDisclosure

		view := d.View(entries)

		assert.Len(t, view.Entries, 5)
		assert.Equal(t, 7, view.Total)
		assert.True(t, view.CanExpand)
		assert.False(t, view.CanCollapse)
		assert.Equal(t, tourcopy.NoOpenEntry, view.OpenIndex)
	})

	t.Run("expand shows all and closes the open entry", func(t *testing.T) {
		t.Parallel()

		var d tourcopy.FAQDisclosure
		d.ToggleEntry(2)
		require.Equal(t, 2, d.OpenIndex())

		d.Expand()

		view := d.View(entries)
		assert.Len(t, view.Entries, 7)
		assert.True(t, view.CanCollapse)
		assert.False(t, view.CanExpand)
		assert.Equal(t, tourcopy.NoOpenEntry, view.OpenIndex)
	})

	t.Run("collapse restores five entries and closes the open entry", func(t *testing.T) {
		t.Parallel()

		var d tourcopy.FAQDisclosure
		d.Expand()
		d.ToggleEntry(6)

		d.Collapse()

		assert.Len(t, d.Visible(entries), 5)
		assert.False(t, d.IsExpanded())
		assert.Equal(t, tourcopy.NoOpenEntry, d.OpenIndex())
	})

	t.Run("toggling the open entry closes it", func(t *testing.T) {
		t.Parallel()

		var d tourcopy.FAQDisclosure
		d.ToggleEntry(1)
		d.ToggleEntry(3)
		assert.Equal(t, 3, d.OpenIndex())

		d.ToggleEntry(3)
		assert.Equal(t, tourcopy.NoOpenEntry, d.OpenIndex())
	})

	t.Run("short lists offer no actions", func(t *testing.T) {
		t.Parallel()

		var d tourcopy.FAQDisclosure

		view := d.View(entries[:5])

		assert.Len(t, view.Entries, 5)
		assert.False(t, view.CanExpand)
		assert.False(t, view.CanCollapse)
	})
}
