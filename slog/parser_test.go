package slog_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/fwojciec/tourcopy"
	"github.com/fwojciec/tourcopy/mock"
	tcslog "github.com/fwojciec/tourcopy/slog"
	"github.com/stretchr/testify/assert"
)

func TestLoggingItineraryParser_ParseItinerary(t *testing.T) {
	t.Parallel()

	t.Run("logs markers, days and items", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		days := []tourcopy.ItineraryDay{
			{DayNumber: 1, Title: "DAY 1 ARRIVE", Items: []string{"a", "b"}},
			{DayNumber: 2, Title: "DAY 2 TREK", Items: []string{"c"}},
		}
		inner := &mock.ItineraryParser{
			ParseItineraryFn: func(string) []tourcopy.ItineraryDay { return days },
		}
		inspector := &mock.MarkupInspector{
			InspectFn: func(string) tourcopy.MarkupReport { return tourcopy.MarkupReport{DayMarkers: 2} },
		}

		parser := tcslog.NewLoggingItineraryParser(inner, inspector, logger)
		result := parser.ParseItinerary("<p>markup</p>")

		assert.Equal(t, days, result)
		output := buf.String()
		assert.Contains(t, output, "level=DEBUG")
		assert.Contains(t, output, "itinerary extraction")
		assert.Contains(t, output, "markers=2")
		assert.Contains(t, output, "days=2")
		assert.Contains(t, output, "items=3")
		assert.Contains(t, output, "duration=")
	})

	t.Run("warns when markers yield no days", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.ItineraryParser{
			ParseItineraryFn: func(string) []tourcopy.ItineraryDay { return nil },
		}
		inspector := &mock.MarkupInspector{
			InspectFn: func(string) tourcopy.MarkupReport { return tourcopy.MarkupReport{DayMarkers: 1} },
		}

		parser := tcslog.NewLoggingItineraryParser(inner, inspector, logger)
		result := parser.ParseItinerary("<p>markup</p>")

		assert.Empty(t, result)
		output := buf.String()
		assert.Contains(t, output, "level=WARN")
		assert.Contains(t, output, "days=0")
	})
}

func TestLoggingFAQParser_ParseFAQ(t *testing.T) {
	t.Parallel()

	t.Run("logs dropped blocks as a warning", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		entries := []tourcopy.FaqEntry{{Question: "Q", Answer: "A"}}
		inner := &mock.FAQParser{
			ParseFAQFn: func(string) []tourcopy.FaqEntry { return entries },
		}
		inspector := &mock.MarkupInspector{
			InspectFn: func(string) tourcopy.MarkupReport { return tourcopy.MarkupReport{FAQMarkers: 3} },
		}

		parser := tcslog.NewLoggingFAQParser(inner, inspector, logger)
		result := parser.ParseFAQ("<p>faq</p>")

		assert.Equal(t, entries, result)
		output := buf.String()
		assert.Contains(t, output, "level=WARN")
		assert.Contains(t, output, "faq extraction")
		assert.Contains(t, output, "markers=3")
		assert.Contains(t, output, "entries=1")
		assert.Contains(t, output, "dropped=2")
	})

	t.Run("logs complete extraction at debug", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		inner := &mock.FAQParser{
			ParseFAQFn: func(string) []tourcopy.FaqEntry { return []tourcopy.FaqEntry{{Question: "Q", Answer: "A"}} },
		}
		inspector := &mock.MarkupInspector{
			InspectFn: func(string) tourcopy.MarkupReport { return tourcopy.MarkupReport{FAQMarkers: 1} },
		}

		tcslog.NewLoggingFAQParser(inner, inspector, logger).ParseFAQ("<p>faq</p>")

		output := buf.String()
		assert.Contains(t, output, "level=DEBUG")
		assert.Contains(t, output, "dropped=0")
	})

	t.Run("stays quiet at info when nothing is dropped", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.FAQParser{
			ParseFAQFn: func(string) []tourcopy.FaqEntry { return []tourcopy.FaqEntry{{Question: "Q", Answer: "A"}} },
		}
		inspector := &mock.MarkupInspector{
			InspectFn: func(string) tourcopy.MarkupReport { return tourcopy.MarkupReport{FAQMarkers: 1} },
		}

		tcslog.NewLoggingFAQParser(inner, inspector, logger).ParseFAQ("<p>faq</p>")

		assert.Empty(t, buf.String())
	})
}
