package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/tourcopy"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	products, err := deps.Products.FindProducts(deps.Ctx, tourcopy.ProductFilter{Limit: c.Limit})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", tourcopy.ErrorMessage(err))
		return err
	}

	if len(products) == 0 {
		fmt.Fprintln(deps.Stdout, "No products found. Use 'tourcopy import' to add some.")
		return nil
	}

	for _, p := range products {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s\n", p.ID, p.Name, p.UpdatedAt.Format(time.DateOnly))
	}

	return nil
}
