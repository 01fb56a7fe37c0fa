package apperr

import "github.com/tuanvumaihuynh/inventory-service/pkg/zerror"

const (
	ValidationErrorCode   = "VALIDATION_FAILED"
	ProductNotFoundCode   = "PRODUCT_NOT_FOUND"
	DuplicateProductCode  = "DUPLICATE_PRODUCT"
	NegativeStockCode     = "NEGATIVE_STOCK"
	InvalidQuantityCode   = "INVALID_QUANTITY"
	InsufficientStockCode = "INSUFFICIENT_STOCK"
)

var (
	ValidationErr = zerror.NewValidationFailed(ValidationErrorCode, "validation error")

	ProductNotFoundErr = zerror.NewNotFound(ProductNotFoundCode, "product not found")

	// DuplicateProductErr maps the unique constraint on products.name.
	DuplicateProductErr = zerror.NewBadRequest(DuplicateProductCode, "a product with this name already exists")

	NegativeStockErr     = zerror.NewBadRequest(NegativeStockCode, "stock quantity cannot be negative")
	InvalidQuantityErr   = zerror.NewBadRequest(InvalidQuantityCode, "quantity must be positive")
	InsufficientStockErr = zerror.NewBadRequest(InsufficientStockCode, "insufficient stock available")
)
