package tourcopy

import (
	"fmt"
	"strings"
)

// RenderFunc turns a markup fragment into display text.
type RenderFunc func(markup string) (string, error)

// PlainText is the default RenderFunc. It strips tags and decodes entities.
func PlainText(markup string) (string, error) {
	return plainText(markup), nil
}

// FormatPage renders a page for terminal display. Section bodies go through
// render, which defaults to PlainText. Collapsed sections carry a
// "[read more]" marker and expanded ones a "[read less]" marker.
func FormatPage(page *ProductPage, render RenderFunc) (string, error) {
	if render == nil {
		render = PlainText
	}

	parts := []string{"# " + page.Name}

	for _, s := range page.Sections {
		var body string
		switch {
		case s.Markup != nil:
			text, err := render(s.Markup.VisibleMarkup)
			if err != nil {
				return "", fmt.Errorf("section %s: %w", s.Key, err)
			}
			body = text
		case s.List != nil:
			body = bullets(s.List.Items)
		}
		if toggle := toggleLabel(&s); toggle != "" {
			body += "\n" + toggle
		}
		parts = append(parts, "## "+s.Title+"\n"+body)
	}

	if page.FAQ != nil {
		parts = append(parts, formatFAQ(page.FAQ))
	}

	if page.Itinerary != nil {
		parts = append(parts, FormatItinerary(page.Itinerary.Days))
	}

	if len(page.Packages) > 0 {
		parts = append(parts, formatPackages(page.Packages))
	}

	return strings.Join(parts, "\n\n"), nil
}

func toggleLabel(s *PageSection) string {
	if !s.CanToggle() {
		return ""
	}
	if (s.Markup != nil && s.Markup.IsExpanded) || (s.List != nil && s.List.IsExpanded) {
		return "[read less]"
	}
	return "[read more]"
}

func bullets(items []string) string {
	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = "- " + item
	}
	return strings.Join(lines, "\n")
}

func formatFAQ(v *FAQView) string {
	var sb strings.Builder
	sb.WriteString("## FAQ")
	for i, e := range v.Entries {
		if i == v.OpenIndex {
			fmt.Fprintf(&sb, "\n- %s\n  %s", e.Question, e.Answer)
			continue
		}
		fmt.Fprintf(&sb, "\n+ %s", e.Question)
	}
	switch {
	case v.CanExpand:
		fmt.Fprintf(&sb, "\n[show all %d]", v.Total)
	case v.CanCollapse:
		sb.WriteString("\n[show less]")
	}
	return sb.String()
}

// FormatItinerary renders days as a titled list of activities per day.
func FormatItinerary(days []ItineraryDay) string {
	if len(days) == 0 {
		return "## Itinerary\nNo day-wise itinerary available."
	}
	parts := []string{"## Itinerary"}
	for _, d := range days {
		block := "### " + d.Title
		if len(d.Items) > 0 {
			block += "\n" + bullets(d.Items)
		}
		parts = append(parts, block)
	}
	return strings.Join(parts, "\n")
}

func formatPackages(pkgs []PackageView) string {
	var sb strings.Builder
	sb.WriteString("## Packages")
	for _, p := range pkgs {
		fmt.Fprintf(&sb, "\n### %s\nRs. %d", p.Name, p.Price)
		if p.HasDiscount {
			fmt.Fprintf(&sb, " (was Rs. %d, %d%% off)", p.ActualPrice, p.DiscountPercent)
		}
		if p.IsPopular {
			sb.WriteString(" [popular]")
		}
		if p.IsExpanded && len(p.Features) > 0 {
			sb.WriteString("\n" + bullets(p.Features))
		}
	}
	return sb.String()
}
