package service

import (
	"context"
	"fmt"

	"github.com/tuanvumaihuynh/inventory-service/internal/alert"
	"github.com/tuanvumaihuynh/inventory-service/internal/apperr"
	"github.com/tuanvumaihuynh/inventory-service/internal/model"
	"github.com/tuanvumaihuynh/inventory-service/internal/repository"
)

// Defaults applied when a create request omits the numeric fields.
const (
	DefaultStockQuantity     int32 = 0
	DefaultLowStockThreshold int32 = 10
)

type CreateProductParams struct {
	Name              string
	Description       *string
	StockQuantity     *int32
	LowStockThreshold *int32
}

type UpdateProductParams struct {
	ID                int64
	Name              string
	Description       *string
	StockQuantity     int32
	LowStockThreshold int32
}

type ProductService interface {
	CreateProduct(ctx context.Context, params CreateProductParams) (model.Product, error)
	ListProducts(ctx context.Context) ([]model.Product, error)
	GetProduct(ctx context.Context, id int64) (model.Product, error)
	UpdateProduct(ctx context.Context, params UpdateProductParams) (model.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
	IncreaseStock(ctx context.Context, id int64, quantity int32) (model.Product, error)
	DecreaseStock(ctx context.Context, id int64, quantity int32) (model.Product, error)
	ListLowStock(ctx context.Context) ([]model.Product, error)
}

type productService struct {
	productRepo repository.ProductRepository
	notifier    alert.Notifier
}

func NewProductService(
	productRepo repository.ProductRepository,
	notifier alert.Notifier,
) ProductService {
	return &productService{
		productRepo: productRepo,
		notifier:    notifier,
	}
}

func (s *productService) CreateProduct(ctx context.Context, params CreateProductParams) (model.Product, error) {
	stockQuantity := DefaultStockQuantity
	if params.StockQuantity != nil {
		stockQuantity = *params.StockQuantity
	}
	lowStockThreshold := DefaultLowStockThreshold
	if params.LowStockThreshold != nil {
		lowStockThreshold = *params.LowStockThreshold
	}

	if stockQuantity < 0 {
		return model.Product{}, apperr.NegativeStockErr
	}

	id, err := s.productRepo.CreateProduct(ctx, repository.CreateProductParams{
		Name:              params.Name,
		Description:       params.Description,
		StockQuantity:     stockQuantity,
		LowStockThreshold: lowStockThreshold,
	})
	if err != nil {
		return model.Product{}, fmt.Errorf("product repository create product: %w", err)
	}

	product, err := s.productRepo.GetProduct(ctx, id)
	if err != nil {
		return model.Product{}, fmt.Errorf("product repository get product: %w", err)
	}

	return product, nil
}

func (s *productService) ListProducts(ctx context.Context) ([]model.Product, error) {
	products, err := s.productRepo.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("product repository list products: %w", err)
	}

	return products, nil
}

func (s *productService) GetProduct(ctx context.Context, id int64) (model.Product, error) {
	product, err := s.productRepo.GetProduct(ctx, id)
	if err != nil {
		return model.Product{}, fmt.Errorf("product repository get product: %w", err)
	}

	return product, nil
}

// UpdateProduct is a full replace of the four mutable fields. The existence
// check runs first so a missing product reports not found rather than a
// zero-rows-affected update.
func (s *productService) UpdateProduct(ctx context.Context, params UpdateProductParams) (model.Product, error) {
	if params.StockQuantity < 0 {
		return model.Product{}, apperr.NegativeStockErr
	}

	if _, err := s.productRepo.GetProduct(ctx, params.ID); err != nil {
		return model.Product{}, fmt.Errorf("product repository get product: %w", err)
	}

	updated, err := s.productRepo.UpdateProduct(ctx, repository.UpdateProductParams{
		ID:                params.ID,
		Name:              params.Name,
		Description:       params.Description,
		StockQuantity:     params.StockQuantity,
		LowStockThreshold: params.LowStockThreshold,
	})
	if err != nil {
		return model.Product{}, fmt.Errorf("product repository update product: %w", err)
	}
	if !updated {
		return model.Product{}, apperr.ProductNotFoundErr
	}

	product, err := s.productRepo.GetProduct(ctx, params.ID)
	if err != nil {
		return model.Product{}, fmt.Errorf("product repository get product: %w", err)
	}

	if product.IsLowStock() {
		s.notifier.NotifyLowStock(ctx, product)
	}

	return product, nil
}

func (s *productService) DeleteProduct(ctx context.Context, id int64) error {
	if _, err := s.productRepo.GetProduct(ctx, id); err != nil {
		return fmt.Errorf("product repository get product: %w", err)
	}

	deleted, err := s.productRepo.DeleteProduct(ctx, id)
	if err != nil {
		return fmt.Errorf("product repository delete product: %w", err)
	}
	if !deleted {
		return apperr.ProductNotFoundErr
	}

	return nil
}

func (s *productService) IncreaseStock(ctx context.Context, id int64, quantity int32) (model.Product, error) {
	if quantity <= 0 {
		return model.Product{}, apperr.InvalidQuantityErr
	}

	if _, err := s.productRepo.GetProduct(ctx, id); err != nil {
		return model.Product{}, fmt.Errorf("product repository get product: %w", err)
	}

	increased, err := s.productRepo.IncreaseStock(ctx, id, quantity)
	if err != nil {
		return model.Product{}, fmt.Errorf("product repository increase stock: %w", err)
	}
	if !increased {
		return model.Product{}, apperr.ProductNotFoundErr
	}

	product, err := s.productRepo.GetProduct(ctx, id)
	if err != nil {
		return model.Product{}, fmt.Errorf("product repository get product: %w", err)
	}

	return product, nil
}

func (s *productService) DecreaseStock(ctx context.Context, id int64, quantity int32) (model.Product, error) {
	if quantity <= 0 {
		return model.Product{}, apperr.InvalidQuantityErr
	}

	if _, err := s.productRepo.GetProduct(ctx, id); err != nil {
		return model.Product{}, fmt.Errorf("product repository get product: %w", err)
	}

	// The conditional update can only report zero rows for an existing product
	// when the remaining stock is short of the requested quantity.
	decreased, err := s.productRepo.DecreaseStock(ctx, id, quantity)
	if err != nil {
		return model.Product{}, fmt.Errorf("product repository decrease stock: %w", err)
	}
	if !decreased {
		return model.Product{}, apperr.InsufficientStockErr
	}

	product, err := s.productRepo.GetProduct(ctx, id)
	if err != nil {
		return model.Product{}, fmt.Errorf("product repository get product: %w", err)
	}

	if product.IsLowStock() {
		s.notifier.NotifyLowStock(ctx, product)
	}

	return product, nil
}

func (s *productService) ListLowStock(ctx context.Context) ([]model.Product, error) {
	products, err := s.productRepo.ListLowStock(ctx)
	if err != nil {
		return nil, fmt.Errorf("product repository list low stock products: %w", err)
	}

	return products, nil
}
