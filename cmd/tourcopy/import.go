package main

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/fwojciec/tourcopy"
)

// Run executes the import command. Products whose content is already
// stored are skipped.
func (c *ImportCmd) Run(deps *Dependencies) error {
	var products []*tourcopy.Product
	for _, file := range c.Files {
		data, err := deps.readInput(file)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", tourcopy.ErrorMessage(err))
			return err
		}

		decoded, err := decodeProducts(data)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s: %s\n", file, tourcopy.ErrorMessage(err))
			return err
		}
		products = append(products, decoded...)
	}

	var imported, skipped int
	for i, p := range products {
		err := deps.Products.CreateProduct(deps.Ctx, p)
		switch tourcopy.ErrorCode(err) {
		case "":
			imported++
			fmt.Fprintf(deps.Stdout, "Imported %q as %s\n", p.Name, p.ID)
		case tourcopy.ECONFLICT:
			skipped++
			fmt.Fprintf(deps.Stdout, "Skipped %q: %s\n", p.Name, tourcopy.ErrorMessage(err))
		default:
			fmt.Fprintf(deps.Stderr, "error: product %d: %s\n", i+1, tourcopy.ErrorMessage(err))
			return err
		}
	}

	fmt.Fprintf(deps.Stdout, "%d imported, %d skipped\n", imported, skipped)
	return nil
}

// decodeProducts accepts a single product object or an array of them.
func decodeProducts(data []byte) ([]*tourcopy.Product, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, tourcopy.Errorf(tourcopy.EINVALID, "no products in input")
	}

	if data[0] == '[' {
		var products []*tourcopy.Product
		if err := json.Unmarshal(data, &products); err != nil {
			return nil, tourcopy.Errorf(tourcopy.EINVALID, "decoding products: %v", err)
		}
		for i, p := range products {
			if p == nil {
				return nil, tourcopy.Errorf(tourcopy.EINVALID, "product %d is null", i+1)
			}
		}
		return products, nil
	}

	if bytes.Equal(data, []byte("null")) {
		return nil, tourcopy.Errorf(tourcopy.EINVALID, "product 1 is null")
	}
	var product tourcopy.Product
	if err := json.Unmarshal(data, &product); err != nil {
		return nil, tourcopy.Errorf(tourcopy.EINVALID, "decoding product: %v", err)
	}
	return []*tourcopy.Product{&product}, nil
}
