// Package tourcopy derives structured views from editor-authored tour
// content: read-more/less disclosure for long text sections, a day-by-day
// itinerary breakdown, and question/answer pairs from FAQ markup.
//
// This package contains domain types, interfaces and the library-agnostic
// extraction algorithms following Ben Johnson's Standard Package Layout.
// Implementations live in subdirectories named after their primary
// dependency (e.g., goquery/, sqlite/, htmltomarkdown/).
package tourcopy
