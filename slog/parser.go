package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/tourcopy"
)

var (
	_ tourcopy.ItineraryParser = (*LoggingItineraryParser)(nil)
	_ tourcopy.FAQParser       = (*LoggingFAQParser)(nil)
)

// LoggingItineraryParser wraps an ItineraryParser with logging of how many
// day markers were found and how many days were extracted.
type LoggingItineraryParser struct {
	next      tourcopy.ItineraryParser
	inspector tourcopy.MarkupInspector
	logger    *slog.Logger
}

// NewLoggingItineraryParser creates a new LoggingItineraryParser.
func NewLoggingItineraryParser(next tourcopy.ItineraryParser, inspector tourcopy.MarkupInspector, logger *slog.Logger) *LoggingItineraryParser {
	return &LoggingItineraryParser{next: next, inspector: inspector, logger: logger}
}

// ParseItinerary delegates to the wrapped parser and logs the result.
func (p *LoggingItineraryParser) ParseItinerary(markup string) []tourcopy.ItineraryDay {
	begin := time.Now()
	days := p.next.ParseItinerary(markup)
	report := p.inspector.Inspect(markup)

	items := 0
	for _, d := range days {
		items += len(d.Items)
	}
	level := slog.LevelDebug
	if report.DayMarkers > len(days) {
		level = slog.LevelWarn
	}
	p.logger.Log(context.Background(), level, "itinerary extraction",
		"bytes", len(markup),
		"markers", report.DayMarkers,
		"days", len(days),
		"items", items,
		"duration", time.Since(begin),
	)
	return days
}

// LoggingFAQParser wraps a FAQParser with logging of dropped blocks.
type LoggingFAQParser struct {
	next      tourcopy.FAQParser
	inspector tourcopy.MarkupInspector
	logger    *slog.Logger
}

// NewLoggingFAQParser creates a new LoggingFAQParser.
func NewLoggingFAQParser(next tourcopy.FAQParser, inspector tourcopy.MarkupInspector, logger *slog.Logger) *LoggingFAQParser {
	return &LoggingFAQParser{next: next, inspector: inspector, logger: logger}
}

// ParseFAQ delegates to the wrapped parser and logs the result. Blocks
// without an answer are silently dropped by parsers, so the difference
// between markers and entries is logged as dropped.
func (p *LoggingFAQParser) ParseFAQ(markup string) []tourcopy.FaqEntry {
	begin := time.Now()
	entries := p.next.ParseFAQ(markup)
	report := p.inspector.Inspect(markup)

	dropped := max(report.FAQMarkers-len(entries), 0)
	level := slog.LevelDebug
	if dropped > 0 {
		level = slog.LevelWarn
	}
	p.logger.Log(context.Background(), level, "faq extraction",
		"bytes", len(markup),
		"markers", report.FAQMarkers,
		"entries", len(entries),
		"dropped", dropped,
		"duration", time.Since(begin),
	)
	return entries
}
