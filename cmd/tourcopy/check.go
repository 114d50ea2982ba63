package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/tourcopy"
	"golang.org/x/sync/errgroup"
)

// Run executes the check command. Products are checked concurrently and
// reported in listing order.
func (c *CheckCmd) Run(deps *Dependencies) error {
	products, err := deps.Products.FindProducts(deps.Ctx, tourcopy.ProductFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", tourcopy.ErrorMessage(err))
		return err
	}

	concurrency := c.Concurrency
	if concurrency <= 0 {
		concurrency = 4
	}

	issues := make([][]string, len(products))
	g, gctx := errgroup.WithContext(deps.Ctx)
	g.SetLimit(concurrency)
	for i, p := range products {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			issues[i] = checkProduct(deps, p)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	var failed int
	for i, p := range products {
		if len(issues[i]) == 0 {
			fmt.Fprintf(deps.Stdout, "ok    %s  %s\n", p.ID, p.Name)
			continue
		}
		failed++
		fmt.Fprintf(deps.Stdout, "FAIL  %s  %s\n", p.ID, p.Name)
		for _, issue := range issues[i] {
			fmt.Fprintf(deps.Stdout, "      - %s\n", issue)
		}
	}

	if failed > 0 {
		return tourcopy.Errorf(tourcopy.EINVALID, "%d of %d products have issues", failed, len(products))
	}
	return nil
}

// checkProduct returns the content problems found in p.
func checkProduct(deps *Dependencies, p *tourcopy.Product) []string {
	var issues []string

	if err := p.Validate(); err != nil {
		issues = append(issues, tourcopy.ErrorMessage(err))
	}

	if strings.TrimSpace(p.Itineraries) != "" {
		days := deps.Itinerary.ParseItinerary(p.Itineraries)
		if len(days) == 0 {
			issues = append(issues, "itinerary has no day markers")
		}
		seen := make(map[int]bool, len(days))
		for _, d := range days {
			if seen[d.DayNumber] {
				issues = append(issues, fmt.Sprintf("day %d appears more than once", d.DayNumber))
			}
			seen[d.DayNumber] = true
			if len(d.Items) == 0 {
				issues = append(issues, fmt.Sprintf("day %d has no activities", d.DayNumber))
			}
		}
	}

	if p.FAQ.Entries == nil && strings.TrimSpace(p.FAQ.Markup) != "" {
		entries := deps.FAQ.ParseFAQ(p.FAQ.Markup)
		report := deps.Inspector.Inspect(p.FAQ.Markup)
		switch {
		case len(entries) == 0:
			issues = append(issues, "FAQ has no complete entries")
		case report.FAQMarkers > len(entries):
			issues = append(issues, fmt.Sprintf("%d FAQ questions have no answer", report.FAQMarkers-len(entries)))
		}
	}

	for _, pkg := range p.Packages {
		if pkg.ActualPrice > 0 && pkg.ActualPrice < pkg.Price {
			issues = append(issues, fmt.Sprintf("package %q list price is below its price", pkg.Name))
		}
	}

	return issues
}
