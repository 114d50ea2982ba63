package tourcopy

import (
	"math"
	"strings"
)

// TourPackage is a bookable variant of a product with its own price.
// Prices are whole rupees per adult.
type TourPackage struct {
	Name        string   `json:"name"`
	Price       int64    `json:"price"`
	ActualPrice int64    `json:"actualPrice,omitempty"`
	IsPopular   bool     `json:"isPopular,omitempty"`
	Features    []string `json:"features,omitempty"`
}

// Validate returns an error if the package contains invalid fields.
func (p *TourPackage) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return Errorf(EINVALID, "package name required")
	}
	if p.Price < 0 || p.ActualPrice < 0 {
		return Errorf(EINVALID, "package %q has a negative price", p.Name)
	}
	return nil
}

// HasDiscount reports whether the list price is above the selling price.
func (p *TourPackage) HasDiscount() bool {
	return p.ActualPrice > 0 && p.ActualPrice > p.Price
}

// DiscountPercent returns the discount off the list price rounded to the
// nearest whole percent, or zero without a discount.
func (p *TourPackage) DiscountPercent() int {
	if !p.HasDiscount() {
		return 0
	}
	return int(math.Round(float64(p.ActualPrice-p.Price) / float64(p.ActualPrice) * 100))
}
