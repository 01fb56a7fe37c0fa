package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/tuanvumaihuynh/inventory-service/internal/apperr"
	"github.com/tuanvumaihuynh/inventory-service/internal/model"
)

var _ ProductRepository = (*MemoryProductRepository)(nil)

// MemoryProductRepository is an in-memory ProductRepository with the same
// semantics as the Postgres implementation (unique names, conditional
// decrement, listing order). Used by tests.
type MemoryProductRepository struct {
	mu       sync.Mutex
	products map[int64]model.Product
	nextID   int64
}

func NewMemoryProductRepository() *MemoryProductRepository {
	return &MemoryProductRepository{
		products: map[int64]model.Product{},
		nextID:   1,
	}
}

func (r *MemoryProductRepository) CreateProduct(_ context.Context, params CreateProductParams) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range r.products {
		if p.Name == params.Name {
			return 0, apperr.DuplicateProductErr
		}
	}

	now := time.Now()
	id := r.nextID
	r.nextID++
	r.products[id] = model.Product{
		ID:                id,
		Name:              params.Name,
		Description:       params.Description,
		StockQuantity:     params.StockQuantity,
		LowStockThreshold: params.LowStockThreshold,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	return id, nil
}

func (r *MemoryProductRepository) ListProducts(_ context.Context) ([]model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	products := r.snapshot()
	// Newest first. IDs are monotonic, so they break created_at ties.
	sort.Slice(products, func(i, j int) bool {
		if !products[i].CreatedAt.Equal(products[j].CreatedAt) {
			return products[i].CreatedAt.After(products[j].CreatedAt)
		}
		return products[i].ID > products[j].ID
	})

	return products, nil
}

func (r *MemoryProductRepository) GetProduct(_ context.Context, id int64) (model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	product, ok := r.products[id]
	if !ok {
		return model.Product{}, apperr.ProductNotFoundErr
	}
	return product, nil
}

func (r *MemoryProductRepository) UpdateProduct(_ context.Context, params UpdateProductParams) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	product, ok := r.products[params.ID]
	if !ok {
		return false, nil
	}

	for _, p := range r.products {
		if p.ID != params.ID && p.Name == params.Name {
			return false, apperr.DuplicateProductErr
		}
	}

	product.Name = params.Name
	product.Description = params.Description
	product.StockQuantity = params.StockQuantity
	product.LowStockThreshold = params.LowStockThreshold
	product.UpdatedAt = time.Now()
	r.products[params.ID] = product

	return true, nil
}

func (r *MemoryProductRepository) DeleteProduct(_ context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[id]; !ok {
		return false, nil
	}
	delete(r.products, id)

	return true, nil
}

func (r *MemoryProductRepository) IncreaseStock(_ context.Context, id int64, quantity int32) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	product, ok := r.products[id]
	if !ok {
		return false, nil
	}

	product.StockQuantity += quantity
	product.UpdatedAt = time.Now()
	r.products[id] = product

	return true, nil
}

func (r *MemoryProductRepository) DecreaseStock(_ context.Context, id int64, quantity int32) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	product, ok := r.products[id]
	if !ok || product.StockQuantity < quantity {
		return false, nil
	}

	product.StockQuantity -= quantity
	product.UpdatedAt = time.Now()
	r.products[id] = product

	return true, nil
}

func (r *MemoryProductRepository) ListLowStock(_ context.Context) ([]model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	products := make([]model.Product, 0)
	for _, p := range r.snapshot() {
		if p.IsLowStock() {
			products = append(products, p)
		}
	}
	sort.Slice(products, func(i, j int) bool {
		if products[i].StockQuantity != products[j].StockQuantity {
			return products[i].StockQuantity < products[j].StockQuantity
		}
		return products[i].ID < products[j].ID
	})

	return products, nil
}

func (r *MemoryProductRepository) snapshot() []model.Product {
	products := make([]model.Product, 0, len(r.products))
	for _, p := range r.products {
		products = append(products, p)
	}
	return products
}
