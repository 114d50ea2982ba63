package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/tourcopy"
)

// Ensure LoggingProductService implements tourcopy.ProductService.
var _ tourcopy.ProductService = (*LoggingProductService)(nil)

// LoggingProductService wraps a ProductService with logging.
type LoggingProductService struct {
	next   tourcopy.ProductService
	logger *slog.Logger
}

// NewLoggingProductService creates a new LoggingProductService.
func NewLoggingProductService(next tourcopy.ProductService, logger *slog.Logger) *LoggingProductService {
	return &LoggingProductService{next: next, logger: logger}
}

func (s *LoggingProductService) CreateProduct(ctx context.Context, product *tourcopy.Product) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("create product",
			"id", product.ID,
			"name", product.Name,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateProduct(ctx, product)
}

func (s *LoggingProductService) FindProductByID(ctx context.Context, id string) (product *tourcopy.Product, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("find product",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindProductByID(ctx, id)
}

func (s *LoggingProductService) FindProducts(ctx context.Context, filter tourcopy.ProductFilter) (products []*tourcopy.Product, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("find products",
			"count", len(products),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindProducts(ctx, filter)
}

func (s *LoggingProductService) UpdateProduct(ctx context.Context, id string, upd tourcopy.ProductUpdate) (product *tourcopy.Product, err error) {
	defer func(begin time.Time) {
		s.logger.Info("update product",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.UpdateProduct(ctx, id, upd)
}

func (s *LoggingProductService) DeleteProduct(ctx context.Context, id string) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("delete product",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DeleteProduct(ctx, id)
}
