package main

import (
	"fmt"

	"github.com/fwojciec/tourcopy"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return tourcopy.Errorf(tourcopy.EINVALID, "use --force to confirm deletion")
	}

	product, err := deps.Products.FindProductByID(deps.Ctx, c.ID)
	if tourcopy.ErrorCode(err) == tourcopy.ENOTFOUND {
		fmt.Fprintf(deps.Stderr, "error: product %q not found. Use 'tourcopy list' to see available products.\n", c.ID)
		return err
	}
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", tourcopy.ErrorMessage(err))
		return err
	}

	if err := deps.Products.DeleteProduct(deps.Ctx, product.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", tourcopy.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted product %q\n", product.Name)
	return nil
}
