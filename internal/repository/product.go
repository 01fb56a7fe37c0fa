package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/tuanvumaihuynh/inventory-service/internal/apperr"
	"github.com/tuanvumaihuynh/inventory-service/internal/model"
	"github.com/tuanvumaihuynh/inventory-service/internal/storage/db"
)

// uniqueViolation is the SQLSTATE reported when the unique constraint on
// products.name is hit.
const uniqueViolation = "23505"

type CreateProductParams struct {
	Name              string
	Description       *string
	StockQuantity     int32
	LowStockThreshold int32
}

type UpdateProductParams struct {
	ID                int64
	Name              string
	Description       *string
	StockQuantity     int32
	LowStockThreshold int32
}

type ProductRepository interface {
	CreateProduct(ctx context.Context, params CreateProductParams) (int64, error)
	ListProducts(ctx context.Context) ([]model.Product, error)
	GetProduct(ctx context.Context, id int64) (model.Product, error)
	UpdateProduct(ctx context.Context, params UpdateProductParams) (bool, error)
	DeleteProduct(ctx context.Context, id int64) (bool, error)
	// IncreaseStock applies a single atomic relative update.
	IncreaseStock(ctx context.Context, id int64, quantity int32) (bool, error)
	// DecreaseStock applies a single atomic conditional update. It reports
	// false when the product does not exist or has less stock than quantity.
	DecreaseStock(ctx context.Context, id int64, quantity int32) (bool, error)
	ListLowStock(ctx context.Context) ([]model.Product, error)
}

type productRepository struct {
	db db.DB
}

func NewProductRepository(db db.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r productRepository) CreateProduct(ctx context.Context, params CreateProductParams) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO products (name, description, stock_quantity, low_stock_threshold)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, params.Name, params.Description, params.StockQuantity, params.LowStockThreshold).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, apperr.DuplicateProductErr
		}
		return 0, fmt.Errorf("create product: %w", err)
	}

	return id, nil
}

func (r productRepository) ListProducts(ctx context.Context) ([]model.Product, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, description, stock_quantity, low_stock_threshold, created_at, updated_at
		FROM products
		ORDER BY created_at DESC, id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	return collectProducts(rows)
}

func (r productRepository) GetProduct(ctx context.Context, id int64) (model.Product, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, name, description, stock_quantity, low_stock_threshold, created_at, updated_at
		FROM products
		WHERE id = $1
	`, id)

	product, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Product{}, apperr.ProductNotFoundErr
		}
		return model.Product{}, fmt.Errorf("get product: %w", err)
	}

	return product, nil
}

func (r productRepository) UpdateProduct(ctx context.Context, params UpdateProductParams) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE products
		SET name = $1, description = $2, stock_quantity = $3, low_stock_threshold = $4, updated_at = now()
		WHERE id = $5
	`, params.Name, params.Description, params.StockQuantity, params.LowStockThreshold, params.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return false, apperr.DuplicateProductErr
		}
		return false, fmt.Errorf("update product: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

func (r productRepository) DeleteProduct(ctx context.Context, id int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete product: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

func (r productRepository) IncreaseStock(ctx context.Context, id int64, quantity int32) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE products
		SET stock_quantity = stock_quantity + $1, updated_at = now()
		WHERE id = $2
	`, quantity, id)
	if err != nil {
		return false, fmt.Errorf("increase stock: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

func (r productRepository) DecreaseStock(ctx context.Context, id int64, quantity int32) (bool, error) {
	// The stock_quantity >= $1 guard keeps concurrent decrements from driving
	// the quantity below zero; a zero row count means either a missing product
	// or insufficient stock, which the caller disambiguates.
	tag, err := r.db.Exec(ctx, `
		UPDATE products
		SET stock_quantity = stock_quantity - $1, updated_at = now()
		WHERE id = $2 AND stock_quantity >= $1
	`, quantity, id)
	if err != nil {
		return false, fmt.Errorf("decrease stock: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

func (r productRepository) ListLowStock(ctx context.Context) ([]model.Product, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, description, stock_quantity, low_stock_threshold, created_at, updated_at
		FROM products
		WHERE stock_quantity <= low_stock_threshold
		ORDER BY stock_quantity ASC, id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list low stock products: %w", err)
	}
	defer rows.Close()

	return collectProducts(rows)
}

func scanProduct(row pgx.Row) (model.Product, error) {
	var p model.Product
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&p.StockQuantity,
		&p.LowStockThreshold,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	return p, err
}

func collectProducts(rows pgx.Rows) ([]model.Product, error) {
	products := make([]model.Product, 0)
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, product)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}

	return products, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
