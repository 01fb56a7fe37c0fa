package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/tuanvumaihuynh/inventory-service/internal/apperr"
	"github.com/tuanvumaihuynh/inventory-service/internal/service"
	"github.com/tuanvumaihuynh/inventory-service/pkg/validator"
)

type productHandler struct {
	productSvc service.ProductService
	validator  validator.Validator
}

func newProductHandler(productSvc service.ProductService, validator validator.Validator) *productHandler {
	return &productHandler{
		productSvc: productSvc,
		validator:  validator,
	}
}

// productRequest is the body for create and update. Update is a full replace,
// so omitted numeric fields fall back to the create defaults.
type productRequest struct {
	Name              string  `json:"name" validate:"required,notblank"`
	Description       *string `json:"description"`
	StockQuantity     *int32  `json:"stock_quantity" validate:"omitempty,gte=0"`
	LowStockThreshold *int32  `json:"low_stock_threshold" validate:"omitempty,gte=0"`
}

type stockRequest struct {
	Quantity *int32 `json:"quantity" validate:"required,gt=0"`
}

func (h *productHandler) createProduct(w http.ResponseWriter, r *http.Request) error {
	var req productRequest
	if err := decodeJSON(r, &req); err != nil {
		return err
	}
	if err := h.validator.Validate(req); err != nil {
		return err
	}

	product, err := h.productSvc.CreateProduct(r.Context(), service.CreateProductParams{
		Name:              req.Name,
		Description:       req.Description,
		StockQuantity:     req.StockQuantity,
		LowStockThreshold: req.LowStockThreshold,
	})
	if err != nil {
		return fmt.Errorf("product service create product: %w", err)
	}

	return respondJSON(w, http.StatusCreated, productResponse{
		Success: true,
		Message: "Product created successfully",
		Data:    product,
	})
}

func (h *productHandler) listProducts(w http.ResponseWriter, r *http.Request) error {
	products, err := h.productSvc.ListProducts(r.Context())
	if err != nil {
		return fmt.Errorf("product service list products: %w", err)
	}

	return respondJSON(w, http.StatusOK, productListResponse{
		Success: true,
		Count:   len(products),
		Data:    products,
	})
}

func (h *productHandler) listLowStock(w http.ResponseWriter, r *http.Request) error {
	products, err := h.productSvc.ListLowStock(r.Context())
	if err != nil {
		return fmt.Errorf("product service list low stock products: %w", err)
	}

	return respondJSON(w, http.StatusOK, productListResponse{
		Success: true,
		Count:   len(products),
		Data:    products,
	})
}

func (h *productHandler) getProduct(w http.ResponseWriter, r *http.Request) error {
	id, err := productIDParam(r)
	if err != nil {
		return err
	}

	product, err := h.productSvc.GetProduct(r.Context(), id)
	if err != nil {
		return fmt.Errorf("product service get product: %w", err)
	}

	return respondJSON(w, http.StatusOK, productResponse{
		Success: true,
		Data:    product,
	})
}

func (h *productHandler) updateProduct(w http.ResponseWriter, r *http.Request) error {
	id, err := productIDParam(r)
	if err != nil {
		return err
	}

	var req productRequest
	if err := decodeJSON(r, &req); err != nil {
		return err
	}
	if err := h.validator.Validate(req); err != nil {
		return err
	}

	stockQuantity := service.DefaultStockQuantity
	if req.StockQuantity != nil {
		stockQuantity = *req.StockQuantity
	}
	lowStockThreshold := service.DefaultLowStockThreshold
	if req.LowStockThreshold != nil {
		lowStockThreshold = *req.LowStockThreshold
	}

	product, err := h.productSvc.UpdateProduct(r.Context(), service.UpdateProductParams{
		ID:                id,
		Name:              req.Name,
		Description:       req.Description,
		StockQuantity:     stockQuantity,
		LowStockThreshold: lowStockThreshold,
	})
	if err != nil {
		return fmt.Errorf("product service update product: %w", err)
	}

	return respondJSON(w, http.StatusOK, productResponse{
		Success: true,
		Message: "Product updated successfully",
		Data:    product,
	})
}

func (h *productHandler) deleteProduct(w http.ResponseWriter, r *http.Request) error {
	id, err := productIDParam(r)
	if err != nil {
		return err
	}

	if err := h.productSvc.DeleteProduct(r.Context(), id); err != nil {
		return fmt.Errorf("product service delete product: %w", err)
	}

	return respondJSON(w, http.StatusOK, messageResponse{
		Success: true,
		Message: "Product deleted successfully",
	})
}

func (h *productHandler) increaseStock(w http.ResponseWriter, r *http.Request) error {
	id, err := productIDParam(r)
	if err != nil {
		return err
	}

	var req stockRequest
	if err := decodeJSON(r, &req); err != nil {
		return err
	}
	if err := h.validator.Validate(req); err != nil {
		return err
	}

	product, err := h.productSvc.IncreaseStock(r.Context(), id, *req.Quantity)
	if err != nil {
		return fmt.Errorf("product service increase stock: %w", err)
	}

	return respondJSON(w, http.StatusOK, productResponse{
		Success: true,
		Message: "Stock increased successfully",
		Data:    product,
	})
}

func (h *productHandler) decreaseStock(w http.ResponseWriter, r *http.Request) error {
	id, err := productIDParam(r)
	if err != nil {
		return err
	}

	var req stockRequest
	if err := decodeJSON(r, &req); err != nil {
		return err
	}
	if err := h.validator.Validate(req); err != nil {
		return err
	}

	product, err := h.productSvc.DecreaseStock(r.Context(), id, *req.Quantity)
	if err != nil {
		return fmt.Errorf("product service decrease stock: %w", err)
	}

	return respondJSON(w, http.StatusOK, productResponse{
		Success: true,
		Message: "Stock decreased successfully",
		Data:    product,
	})
}

// productIDParam parses the {productID} route parameter. A non-numeric ID can
// never reference a row, so it reports not found.
func productIDParam(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "productID"), 10, 64)
	if err != nil {
		return 0, apperr.ProductNotFoundErr.WrapParent(fmt.Errorf("parse product id: %w", err))
	}
	return id, nil
}
