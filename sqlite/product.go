package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/tourcopy"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ tourcopy.ProductService = (*ProductService)(nil)

const productColumns = `id, name, highlights, overview, additional_info, how_to_reach,
	things_to_carry, faq, itineraries, packages, content_hash, created_at, updated_at`

// ProductService implements tourcopy.ProductService using SQLite.
// Union fields and packages are stored as JSON text.
type ProductService struct {
	db *DB
}

// NewProductService creates a new ProductService.
func NewProductService(db *DB) *ProductService {
	return &ProductService{db: db}
}

// productRow holds the encoded form of a product's JSON columns.
type productRow struct {
	carry    string
	faq      string
	packages string
}

func encodeProduct(p *tourcopy.Product) (productRow, error) {
	carry, err := json.Marshal(p.ThingsToCarry)
	if err != nil {
		return productRow{}, fmt.Errorf("failed to encode things_to_carry: %w", err)
	}
	faq, err := json.Marshal(p.FAQ)
	if err != nil {
		return productRow{}, fmt.Errorf("failed to encode faq: %w", err)
	}
	packages, err := json.Marshal(p.Packages)
	if err != nil {
		return productRow{}, fmt.Errorf("failed to encode packages: %w", err)
	}
	row := productRow{carry: string(carry), faq: string(faq), packages: string(packages)}
	p.ContentHash = hashContent(p.Name, p.Highlights, p.Overview, p.AdditionalInfo, p.HowToReach,
		row.carry, row.faq, p.Itineraries, row.packages)
	return row, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanProduct(s scanner) (*tourcopy.Product, error) {
	var p tourcopy.Product
	var carry, faq, packages, createdAt, updatedAt string

	if err := s.Scan(&p.ID, &p.Name, &p.Highlights, &p.Overview, &p.AdditionalInfo, &p.HowToReach,
		&carry, &faq, &p.Itineraries, &packages, &p.ContentHash, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(carry), &p.ThingsToCarry); err != nil {
		return nil, fmt.Errorf("failed to decode things_to_carry: %w", err)
	}
	if err := json.Unmarshal([]byte(faq), &p.FAQ); err != nil {
		return nil, fmt.Errorf("failed to decode faq: %w", err)
	}
	if err := json.Unmarshal([]byte(packages), &p.Packages); err != nil {
		return nil, fmt.Errorf("failed to decode packages: %w", err)
	}

	var err error
	if p.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
		return nil, err
	}
	if p.UpdatedAt, err = parseRFC3339(updatedAt, "updated_at"); err != nil {
		return nil, err
	}
	return &p, nil
}

// CreateProduct creates a new product with a generated ID. Returns
// ECONFLICT if a product with identical content is already stored.
func (s *ProductService) CreateProduct(ctx context.Context, product *tourcopy.Product) error {
	if err := product.Validate(); err != nil {
		return err
	}

	row, err := encodeProduct(product)
	if err != nil {
		return err
	}

	var existing string
	err = s.db.QueryRowContext(ctx, "SELECT id FROM products WHERE content_hash = ?", product.ContentHash).Scan(&existing)
	switch {
	case err == nil:
		return tourcopy.Errorf(tourcopy.ECONFLICT, "product %s has identical content", existing)
	case !errors.Is(err, sql.ErrNoRows):
		return err
	}

	product.ID = uuid.New().String()
	now := time.Now().UTC().Truncate(time.Second)
	product.CreatedAt = now
	product.UpdatedAt = now

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO products (`+productColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, product.ID, product.Name, product.Highlights, product.Overview, product.AdditionalInfo, product.HowToReach,
		row.carry, row.faq, product.Itineraries, row.packages, product.ContentHash,
		product.CreatedAt.Format(time.RFC3339), product.UpdatedAt.Format(time.RFC3339))

	return err
}

// FindProductByID retrieves a product by ID.
func (s *ProductService) FindProductByID(ctx context.Context, id string) (*tourcopy.Product, error) {
	product, err := scanProduct(s.db.QueryRowContext(ctx,
		`SELECT `+productColumns+` FROM products WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, tourcopy.Errorf(tourcopy.ENOTFOUND, "product not found")
	}
	if err != nil {
		return nil, err
	}
	return product, nil
}

// FindProducts retrieves products matching the filter, newest first.
func (s *ProductService) FindProducts(ctx context.Context, filter tourcopy.ProductFilter) ([]*tourcopy.Product, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + productColumns + " FROM products WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Name != nil {
		query.WriteString(" AND name = ?")
		args = append(args, *filter.Name)
	}

	query.WriteString(" ORDER BY created_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []*tourcopy.Product
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}

	return products, rows.Err()
}

// UpdateProduct applies upd to an existing product and recomputes its
// content hash.
func (s *ProductService) UpdateProduct(ctx context.Context, id string, upd tourcopy.ProductUpdate) (*tourcopy.Product, error) {
	product, err := s.FindProductByID(ctx, id)
	if err != nil {
		return nil, err
	}

	upd.Apply(product)

	if err := product.Validate(); err != nil {
		return nil, err
	}

	row, err := encodeProduct(product)
	if err != nil {
		return nil, err
	}
	product.UpdatedAt = time.Now().UTC().Truncate(time.Second)

	_, err = s.db.ExecContext(ctx, `
		UPDATE products
		SET name = ?, highlights = ?, overview = ?, additional_info = ?, how_to_reach = ?,
			things_to_carry = ?, faq = ?, itineraries = ?, packages = ?, content_hash = ?, updated_at = ?
		WHERE id = ?
	`, product.Name, product.Highlights, product.Overview, product.AdditionalInfo, product.HowToReach,
		row.carry, row.faq, product.Itineraries, row.packages, product.ContentHash,
		product.UpdatedAt.Format(time.RFC3339), id)
	if err != nil {
		return nil, err
	}

	return product, nil
}

// DeleteProduct permanently removes a product.
func (s *ProductService) DeleteProduct(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM products WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return tourcopy.Errorf(tourcopy.ENOTFOUND, "product not found")
	}

	return nil
}
