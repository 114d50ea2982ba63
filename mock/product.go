package mock

import (
	"context"

	"github.com/fwojciec/tourcopy"
)

var _ tourcopy.ProductService = (*ProductService)(nil)

// ProductService is a mock implementation of tourcopy.ProductService.
type ProductService struct {
	CreateProductFn   func(ctx context.Context, product *tourcopy.Product) error
	FindProductByIDFn func(ctx context.Context, id string) (*tourcopy.Product, error)
	FindProductsFn    func(ctx context.Context, filter tourcopy.ProductFilter) ([]*tourcopy.Product, error)
	UpdateProductFn   func(ctx context.Context, id string, upd tourcopy.ProductUpdate) (*tourcopy.Product, error)
	DeleteProductFn   func(ctx context.Context, id string) error
}

func (s *ProductService) CreateProduct(ctx context.Context, product *tourcopy.Product) error {
	return s.CreateProductFn(ctx, product)
}

func (s *ProductService) FindProductByID(ctx context.Context, id string) (*tourcopy.Product, error) {
	return s.FindProductByIDFn(ctx, id)
}

func (s *ProductService) FindProducts(ctx context.Context, filter tourcopy.ProductFilter) ([]*tourcopy.Product, error) {
	return s.FindProductsFn(ctx, filter)
}

func (s *ProductService) UpdateProduct(ctx context.Context, id string, upd tourcopy.ProductUpdate) (*tourcopy.Product, error) {
	return s.UpdateProductFn(ctx, id, upd)
}

func (s *ProductService) DeleteProduct(ctx context.Context, id string) error {
	return s.DeleteProductFn(ctx, id)
}
