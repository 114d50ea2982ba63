package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/tourcopy"
)

// Run executes the export command. Pages are rendered collapsed as
// markdown; the output directory is only replaced when every page is saved.
func (c *ExportCmd) Run(deps *Dependencies) (err error) {
	products, err := deps.Products.FindProducts(deps.Ctx, tourcopy.ProductFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", tourcopy.ErrorMessage(err))
		return err
	}

	store := deps.Store(c.Dir)
	defer func() {
		if err != nil {
			_ = store.Abort()
			fmt.Fprintf(deps.Stderr, "error: %s\n", tourcopy.ErrorMessage(err))
		}
	}()

	anchors := tourcopy.Anchors{}
	now := time.Now()
	for _, p := range products {
		body, err := tourcopy.FormatPage(deps.Pages.Build(p, nil), deps.Converter.Convert)
		if err != nil {
			return err
		}
		page := &tourcopy.ExportedPage{
			ProductID:   p.ID,
			Name:        p.Name,
			Anchor:      anchors.Next(p.Name),
			ContentHash: p.ContentHash,
			ExportedAt:  now,
			Body:        body,
		}
		if err := store.Save(deps.Ctx, page); err != nil {
			return err
		}
	}

	if err := store.Commit(); err != nil {
		return err
	}
	fmt.Fprintf(deps.Stdout, "Exported %d products to %s\n", len(products), c.Dir)
	return nil
}
