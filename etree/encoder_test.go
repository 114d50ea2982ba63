package etree_test

import (
	"bytes"
	"testing"

	"github.com/beevik/etree"
	"github.com/fwojciec/tourcopy"
	tcetree "github.com/fwojciec/tourcopy/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readRoot(t *testing.T, data []byte) *etree.Element {
	t.Helper()
	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(data))
	root := doc.Root()
	require.NotNil(t, root)
	return root
}

func TestEncoder_EncodeItinerary(t *testing.T) {
	t.Parallel()

	t.Run("writes days with items", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		days := []tourcopy.ItineraryDay{
			{DayNumber: 1, Title: "DAY 1 ARRIVE IN MANALI", Items: []string{"Check in", "Walk to Mall Road"}},
			{DayNumber: 2, Title: "DAY 2 JOBRA", Items: []string{}},
		}

		require.NoError(t, tcetree.NewEncoder(&buf).EncodeItinerary(days))

		assert.Contains(t, buf.String(), `<?xml version="1.0" encoding="UTF-8"?>`)
		root := readRoot(t, buf.Bytes())
		assert.Equal(t, "itinerary", root.Tag)
		dayEls := root.SelectElements("day")
		require.Len(t, dayEls, 2)
		assert.Equal(t, "1", dayEls[0].SelectAttrValue("number", ""))
		assert.Equal(t, "DAY 1 ARRIVE IN MANALI", dayEls[0].SelectAttrValue("title", ""))
		items := dayEls[0].SelectElements("item")
		require.Len(t, items, 2)
		assert.Equal(t, "Walk to Mall Road", items[1].Text())
		assert.Empty(t, dayEls[1].SelectElements("item"))
	})

	t.Run("writes an empty itinerary element for no days", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer

		require.NoError(t, tcetree.NewEncoder(&buf).EncodeItinerary(nil))

		root := readRoot(t, buf.Bytes())
		assert.Equal(t, "itinerary", root.Tag)
		assert.Empty(t, root.ChildElements())
	})
}

func TestEncoder_EncodeFAQ(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	entries := []tourcopy.FaqEntry{{Question: "Rain & snow?", Answer: "Carry a <poncho>."}}

	require.NoError(t, tcetree.NewEncoder(&buf).EncodeFAQ(entries))

	root := readRoot(t, buf.Bytes())
	assert.Equal(t, "faq", root.Tag)
	entry := root.SelectElement("entry")
	require.NotNil(t, entry)
	assert.Equal(t, "Rain & snow?", entry.SelectElement("question").Text())
	assert.Equal(t, "Carry a <poncho>.", entry.SelectElement("answer").Text())
}

func TestEncoder_EncodePage(t *testing.T) {
	t.Parallel()

	builder := &tourcopy.PageBuilder{
		Itinerary: tourcopy.ItineraryParserFunc(func(string) []tourcopy.ItineraryDay {
			return []tourcopy.ItineraryDay{{DayNumber: 1, Title: "DAY 1 ARRIVE"}}
		}),
	}
	product := &tourcopy.Product{
		Name:          "Hampta Pass",
		Overview:      "<p>Crossover trek.</p>",
		ThingsToCarry: tourcopy.CarryList{Items: []string{"Jacket"}},
		FAQ:           tourcopy.FAQSource{Entries: []tourcopy.FaqEntry{{Question: "Q", Answer: "A"}}},
		Itineraries:   "<p>itinerary</p>",
		Packages: []tourcopy.TourPackage{
			{Name: "Standard", Price: 9000, ActualPrice: 12000, Features: []string{"Meals"}},
			{Name: "Basic", Price: 7000},
		},
	}

	var buf bytes.Buffer
	enc := tcetree.NewEncoder(&buf)
	enc.Indent = 0
	require.NoError(t, enc.EncodePage(builder.Build(product, nil)))

	root := readRoot(t, buf.Bytes())
	assert.Equal(t, "product", root.Tag)
	assert.Equal(t, "Hampta Pass", root.SelectAttrValue("name", ""))

	sections := root.SelectElements("section")
	require.Len(t, sections, 2)
	assert.Equal(t, "overview", sections[0].SelectAttrValue("key", ""))
	assert.Equal(t, "<p>Crossover trek.</p>", sections[0].Text())
	assert.Equal(t, "false", sections[0].SelectAttrValue("truncated", ""))
	assert.Equal(t, "1", sections[1].SelectAttrValue("total", ""))
	assert.Equal(t, "Jacket", sections[1].SelectElement("item").Text())

	faq := root.SelectElement("faq")
	require.NotNil(t, faq)
	assert.Equal(t, "1", faq.SelectAttrValue("total", ""))

	itinerary := root.SelectElement("itinerary")
	require.NotNil(t, itinerary)
	assert.Len(t, itinerary.SelectElements("day"), 1)

	pkgs := root.SelectElement("packages").SelectElements("package")
	require.Len(t, pkgs, 2)
	assert.Equal(t, "25", pkgs[0].SelectAttrValue("discountPercent", ""))
	assert.Equal(t, "Meals", pkgs[0].SelectElement("feature").Text())
	assert.Nil(t, pkgs[1].SelectAttr("discountPercent"))
}
