package tourcopy

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"time"
)

// Product is a tour product as stored by the content authoring tool. All
// markup fields are editor output and are never modified by this package.
type Product struct {
	ID             string        `json:"id"`
	Name           string        `json:"name"`
	Highlights     string        `json:"productHighlights,omitempty"`
	Overview       string        `json:"productOverview,omitempty"`
	AdditionalInfo string        `json:"additionalInfo,omitempty"`
	HowToReach     string        `json:"howToReach,omitempty"`
	ThingsToCarry  CarryList     `json:"thingsToCarry"`
	FAQ            FAQSource     `json:"faq"`
	Itineraries    string        `json:"itineraries,omitempty"`
	Packages       []TourPackage `json:"packages,omitempty"`
	ContentHash    string        `json:"contentHash,omitempty"`
	CreatedAt      time.Time     `json:"createdAt"`
	UpdatedAt      time.Time     `json:"updatedAt"`
}

// Validate returns an error if the product contains invalid fields.
func (p *Product) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return Errorf(EINVALID, "product name required")
	}
	for i := range p.Packages {
		if err := p.Packages[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

// CarryList holds the "things to carry" section, authored either as a
// markup blob or as a list of plain items.
type CarryList struct {
	Markup string
	Items  []string
}

// IsZero reports whether the list carries no content.
func (c CarryList) IsZero() bool {
	return c.Items == nil && strings.TrimSpace(c.Markup) == ""
}

// Text returns the list content as a single string for word counting.
func (c CarryList) Text() string {
	if c.Items != nil {
		return strings.Join(c.Items, " ")
	}
	return c.Markup
}

// MarshalJSON encodes the list as an array when items are set and as a
// string otherwise.
func (c CarryList) MarshalJSON() ([]byte, error) {
	if c.Items != nil {
		return json.Marshal(c.Items)
	}
	return json.Marshal(c.Markup)
}

// UnmarshalJSON accepts a markup string, an array of strings, or null.
func (c *CarryList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	*c = CarryList{}
	switch {
	case len(data) == 0 || bytes.Equal(data, []byte("null")):
		return nil
	case data[0] == '"':
		return json.Unmarshal(data, &c.Markup)
	case data[0] == '[':
		c.Items = []string{}
		return json.Unmarshal(data, &c.Items)
	}
	return Errorf(EINVALID, "thingsToCarry must be a string or an array of strings")
}

// ProductService represents a service for managing products.
type ProductService interface {
	// CreateProduct creates a new product.
	CreateProduct(ctx context.Context, product *Product) error

	// FindProductByID retrieves a product by ID.
	// Returns ENOTFOUND if product does not exist.
	FindProductByID(ctx context.Context, id string) (*Product, error)

	// FindProducts retrieves products matching the filter.
	FindProducts(ctx context.Context, filter ProductFilter) ([]*Product, error)

	// UpdateProduct updates an existing product.
	// Returns ENOTFOUND if product does not exist.
	UpdateProduct(ctx context.Context, id string, upd ProductUpdate) (*Product, error)

	// DeleteProduct permanently removes a product.
	// Returns ENOTFOUND if product does not exist.
	DeleteProduct(ctx context.Context, id string) error
}

// ProductFilter represents a filter for FindProducts.
type ProductFilter struct {
	ID   *string `json:"id"`
	Name *string `json:"name"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// ProductUpdate represents fields that can be updated on a product.
type ProductUpdate struct {
	Name           *string        `json:"name"`
	Highlights     *string        `json:"productHighlights"`
	Overview       *string        `json:"productOverview"`
	AdditionalInfo *string        `json:"additionalInfo"`
	HowToReach     *string        `json:"howToReach"`
	ThingsToCarry  *CarryList     `json:"thingsToCarry"`
	FAQ            *FAQSource     `json:"faq"`
	Itineraries    *string        `json:"itineraries"`
	Packages       *[]TourPackage `json:"packages"`
}

// Apply copies the set fields of upd onto p.
func (upd ProductUpdate) Apply(p *Product) {
	if upd.Name != nil {
		p.Name = *upd.Name
	}
	if upd.Highlights != nil {
		p.Highlights = *upd.Highlights
	}
	if upd.Overview != nil {
		p.Overview = *upd.Overview
	}
	if upd.AdditionalInfo != nil {
		p.AdditionalInfo = *upd.AdditionalInfo
	}
	if upd.HowToReach != nil {
		p.HowToReach = *upd.HowToReach
	}
	if upd.ThingsToCarry != nil {
		p.ThingsToCarry = *upd.ThingsToCarry
	}
	if upd.FAQ != nil {
		p.FAQ = *upd.FAQ
	}
	if upd.Itineraries != nil {
		p.Itineraries = *upd.Itineraries
	}
	if upd.Packages != nil {
		p.Packages = *upd.Packages
	}
}
