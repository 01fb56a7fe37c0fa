package service_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuanvumaihuynh/inventory-service/internal/apperr"
	"github.com/tuanvumaihuynh/inventory-service/internal/model"
	"github.com/tuanvumaihuynh/inventory-service/internal/repository"
	"github.com/tuanvumaihuynh/inventory-service/internal/service"
	"github.com/tuanvumaihuynh/inventory-service/pkg/ptr"
)

type recordingNotifier struct {
	mu     sync.Mutex
	alerts []model.Product
}

func (n *recordingNotifier) NotifyLowStock(_ context.Context, product model.Product) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.alerts = append(n.alerts, product)
}

func (n *recordingNotifier) Alerts() []model.Product {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]model.Product(nil), n.alerts...)
}

func newTestService(t *testing.T) (service.ProductService, *repository.MemoryProductRepository, *recordingNotifier) {
	t.Helper()
	repo := repository.NewMemoryProductRepository()
	notifier := &recordingNotifier{}
	return service.NewProductService(repo, notifier), repo, notifier
}

func TestCreateProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("Should apply defaults when numeric fields are omitted", func(t *testing.T) {
		svc, _, _ := newTestService(t)

		product, err := svc.CreateProduct(ctx, service.CreateProductParams{Name: "Widget"})
		require.NoError(t, err)

		assert.Equal(t, "Widget", product.Name)
		assert.Equal(t, int32(0), product.StockQuantity)
		assert.Equal(t, int32(10), product.LowStockThreshold)
		assert.NotZero(t, product.ID)
		assert.False(t, product.CreatedAt.IsZero())
	})

	t.Run("Should persist supplied values", func(t *testing.T) {
		svc, _, _ := newTestService(t)

		product, err := svc.CreateProduct(ctx, service.CreateProductParams{
			Name:              "Widget",
			Description:       ptr.New("a widget"),
			StockQuantity:     ptr.New(int32(100)),
			LowStockThreshold: ptr.New(int32(5)),
		})
		require.NoError(t, err)

		assert.Equal(t, int32(100), product.StockQuantity)
		assert.Equal(t, int32(5), product.LowStockThreshold)
		require.NotNil(t, product.Description)
		assert.Equal(t, "a widget", *product.Description)
	})

	t.Run("Should reject negative stock quantity", func(t *testing.T) {
		svc, _, _ := newTestService(t)

		_, err := svc.CreateProduct(ctx, service.CreateProductParams{
			Name:          "Widget",
			StockQuantity: ptr.New(int32(-1)),
		})
		require.ErrorIs(t, err, apperr.NegativeStockErr)

		products, err := svc.ListProducts(ctx)
		require.NoError(t, err)
		assert.Empty(t, products)
	})

	t.Run("Should reject duplicate names", func(t *testing.T) {
		svc, _, _ := newTestService(t)

		_, err := svc.CreateProduct(ctx, service.CreateProductParams{Name: "Widget"})
		require.NoError(t, err)

		_, err = svc.CreateProduct(ctx, service.CreateProductParams{Name: "Widget"})
		require.ErrorIs(t, err, apperr.DuplicateProductErr)
	})
}

func TestGetProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("Should report not found for unknown id", func(t *testing.T) {
		svc, _, _ := newTestService(t)

		_, err := svc.GetProduct(ctx, 9999)
		require.ErrorIs(t, err, apperr.ProductNotFoundErr)
	})
}

func TestListProducts(t *testing.T) {
	ctx := context.Background()

	t.Run("Should list newest first", func(t *testing.T) {
		svc, _, _ := newTestService(t)

		first, err := svc.CreateProduct(ctx, service.CreateProductParams{Name: "First"})
		require.NoError(t, err)
		second, err := svc.CreateProduct(ctx, service.CreateProductParams{Name: "Second"})
		require.NoError(t, err)

		products, err := svc.ListProducts(ctx)
		require.NoError(t, err)
		require.Len(t, products, 2)
		assert.Equal(t, second.ID, products[0].ID)
		assert.Equal(t, first.ID, products[1].ID)
	})
}

func TestUpdateProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("Should replace all mutable fields", func(t *testing.T) {
		svc, _, _ := newTestService(t)

		created, err := svc.CreateProduct(ctx, service.CreateProductParams{
			Name:          "Widget",
			StockQuantity: ptr.New(int32(50)),
		})
		require.NoError(t, err)

		updated, err := svc.UpdateProduct(ctx, service.UpdateProductParams{
			ID:                created.ID,
			Name:              "Widget v2",
			Description:       ptr.New("updated"),
			StockQuantity:     30,
			LowStockThreshold: 3,
		})
		require.NoError(t, err)

		assert.Equal(t, "Widget v2", updated.Name)
		assert.Equal(t, int32(30), updated.StockQuantity)
		assert.Equal(t, int32(3), updated.LowStockThreshold)
	})

	t.Run("Should reject negative stock quantity and keep stored value", func(t *testing.T) {
		svc, _, _ := newTestService(t)

		created, err := svc.CreateProduct(ctx, service.CreateProductParams{
			Name:          "Widget",
			StockQuantity: ptr.New(int32(50)),
		})
		require.NoError(t, err)

		_, err = svc.UpdateProduct(ctx, service.UpdateProductParams{
			ID:            created.ID,
			Name:          "Widget",
			StockQuantity: -5,
		})
		require.ErrorIs(t, err, apperr.NegativeStockErr)

		current, err := svc.GetProduct(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, int32(50), current.StockQuantity)
	})

	t.Run("Should report not found for unknown id", func(t *testing.T) {
		svc, _, _ := newTestService(t)

		_, err := svc.UpdateProduct(ctx, service.UpdateProductParams{ID: 9999, Name: "Widget"})
		require.ErrorIs(t, err, apperr.ProductNotFoundErr)
	})

	t.Run("Should alert when the update leaves the product low on stock", func(t *testing.T) {
		svc, _, notifier := newTestService(t)

		created, err := svc.CreateProduct(ctx, service.CreateProductParams{
			Name:          "Widget",
			StockQuantity: ptr.New(int32(50)),
		})
		require.NoError(t, err)

		_, err = svc.UpdateProduct(ctx, service.UpdateProductParams{
			ID:                created.ID,
			Name:              "Widget",
			StockQuantity:     5,
			LowStockThreshold: 10,
		})
		require.NoError(t, err)

		alerts := notifier.Alerts()
		require.Len(t, alerts, 1)
		assert.Equal(t, created.ID, alerts[0].ID)
		assert.Equal(t, int32(5), alerts[0].StockQuantity)
	})
}

func TestDeleteProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("Should delete and make subsequent gets fail", func(t *testing.T) {
		svc, _, _ := newTestService(t)

		created, err := svc.CreateProduct(ctx, service.CreateProductParams{Name: "Widget"})
		require.NoError(t, err)

		require.NoError(t, svc.DeleteProduct(ctx, created.ID))

		_, err = svc.GetProduct(ctx, created.ID)
		require.ErrorIs(t, err, apperr.ProductNotFoundErr)
	})

	t.Run("Should report not found for unknown id", func(t *testing.T) {
		svc, _, _ := newTestService(t)

		err := svc.DeleteProduct(ctx, 9999)
		require.ErrorIs(t, err, apperr.ProductNotFoundErr)
	})
}

func TestIncreaseStock(t *testing.T) {
	ctx := context.Background()

	t.Run("Should increase by exactly the quantity", func(t *testing.T) {
		svc, _, _ := newTestService(t)

		created, err := svc.CreateProduct(ctx, service.CreateProductParams{
			Name:          "Widget",
			StockQuantity: ptr.New(int32(100)),
		})
		require.NoError(t, err)

		product, err := svc.IncreaseStock(ctx, created.ID, 50)
		require.NoError(t, err)
		assert.Equal(t, int32(150), product.StockQuantity)
	})

	t.Run("Should reject non-positive quantities and keep stock unchanged", func(t *testing.T) {
		svc, _, _ := newTestService(t)

		created, err := svc.CreateProduct(ctx, service.CreateProductParams{
			Name:          "Widget",
			StockQuantity: ptr.New(int32(100)),
		})
		require.NoError(t, err)

		_, err = svc.IncreaseStock(ctx, created.ID, 0)
		require.ErrorIs(t, err, apperr.InvalidQuantityErr)

		_, err = svc.IncreaseStock(ctx, created.ID, -5)
		require.ErrorIs(t, err, apperr.InvalidQuantityErr)

		current, err := svc.GetProduct(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, int32(100), current.StockQuantity)
	})

	t.Run("Should report not found for unknown id", func(t *testing.T) {
		svc, _, _ := newTestService(t)

		_, err := svc.IncreaseStock(ctx, 9999, 10)
		require.ErrorIs(t, err, apperr.ProductNotFoundErr)
	})
}

func TestDecreaseStock(t *testing.T) {
	ctx := context.Background()

	t.Run("Should decrease by exactly the quantity", func(t *testing.T) {
		svc, _, _ := newTestService(t)

		created, err := svc.CreateProduct(ctx, service.CreateProductParams{
			Name:          "Widget",
			StockQuantity: ptr.New(int32(150)),
		})
		require.NoError(t, err)

		product, err := svc.DecreaseStock(ctx, created.ID, 30)
		require.NoError(t, err)
		assert.Equal(t, int32(120), product.StockQuantity)
	})

	t.Run("Should reject quantities above current stock and keep stock unchanged", func(t *testing.T) {
		svc, _, _ := newTestService(t)

		created, err := svc.CreateProduct(ctx, service.CreateProductParams{
			Name:          "Widget",
			StockQuantity: ptr.New(int32(120)),
		})
		require.NoError(t, err)

		_, err = svc.DecreaseStock(ctx, created.ID, 1000)
		require.ErrorIs(t, err, apperr.InsufficientStockErr)

		current, err := svc.GetProduct(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, int32(120), current.StockQuantity)
	})

	t.Run("Should reject non-positive quantities", func(t *testing.T) {
		svc, _, _ := newTestService(t)

		created, err := svc.CreateProduct(ctx, service.CreateProductParams{
			Name:          "Widget",
			StockQuantity: ptr.New(int32(120)),
		})
		require.NoError(t, err)

		_, err = svc.DecreaseStock(ctx, created.ID, 0)
		require.ErrorIs(t, err, apperr.InvalidQuantityErr)
	})

	t.Run("Should report not found for unknown id", func(t *testing.T) {
		svc, _, _ := newTestService(t)

		_, err := svc.DecreaseStock(ctx, 9999, 10)
		require.ErrorIs(t, err, apperr.ProductNotFoundErr)
	})

	t.Run("Should alert when stock drops to the threshold", func(t *testing.T) {
		svc, _, notifier := newTestService(t)

		created, err := svc.CreateProduct(ctx, service.CreateProductParams{
			Name:              "Widget",
			StockQuantity:     ptr.New(int32(12)),
			LowStockThreshold: ptr.New(int32(10)),
		})
		require.NoError(t, err)

		_, err = svc.DecreaseStock(ctx, created.ID, 2)
		require.NoError(t, err)

		alerts := notifier.Alerts()
		require.Len(t, alerts, 1)
		assert.Equal(t, int32(10), alerts[0].StockQuantity)
	})

	t.Run("Should not alert while stock stays above the threshold", func(t *testing.T) {
		svc, _, notifier := newTestService(t)

		created, err := svc.CreateProduct(ctx, service.CreateProductParams{
			Name:              "Widget",
			StockQuantity:     ptr.New(int32(100)),
			LowStockThreshold: ptr.New(int32(10)),
		})
		require.NoError(t, err)

		_, err = svc.DecreaseStock(ctx, created.ID, 30)
		require.NoError(t, err)

		assert.Empty(t, notifier.Alerts())
	})
}

func TestListLowStock(t *testing.T) {
	ctx := context.Background()

	t.Run("Should return only low stock products, ascending by quantity", func(t *testing.T) {
		svc, _, _ := newTestService(t)

		_, err := svc.CreateProduct(ctx, service.CreateProductParams{
			Name:              "Plenty",
			StockQuantity:     ptr.New(int32(100)),
			LowStockThreshold: ptr.New(int32(10)),
		})
		require.NoError(t, err)

		low, err := svc.CreateProduct(ctx, service.CreateProductParams{
			Name:              "Low",
			StockQuantity:     ptr.New(int32(5)),
			LowStockThreshold: ptr.New(int32(10)),
		})
		require.NoError(t, err)

		lower, err := svc.CreateProduct(ctx, service.CreateProductParams{
			Name:              "Lower",
			StockQuantity:     ptr.New(int32(2)),
			LowStockThreshold: ptr.New(int32(10)),
		})
		require.NoError(t, err)

		atThreshold, err := svc.CreateProduct(ctx, service.CreateProductParams{
			Name:              "AtThreshold",
			StockQuantity:     ptr.New(int32(10)),
			LowStockThreshold: ptr.New(int32(10)),
		})
		require.NoError(t, err)

		products, err := svc.ListLowStock(ctx)
		require.NoError(t, err)
		require.Len(t, products, 3)
		assert.Equal(t, lower.ID, products[0].ID)
		assert.Equal(t, low.ID, products[1].ID)
		assert.Equal(t, atThreshold.ID, products[2].ID)
	})
}
