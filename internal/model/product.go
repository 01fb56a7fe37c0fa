package model

import "time"

// Product is an inventory record. StockQuantity never goes below zero;
// a product is low on stock when StockQuantity <= LowStockThreshold.
type Product struct {
	ID                int64     `json:"id"`
	Name              string    `json:"name"`
	Description       *string   `json:"description"`
	StockQuantity     int32     `json:"stock_quantity"`
	LowStockThreshold int32     `json:"low_stock_threshold"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// IsLowStock reports whether the product is at or below its own threshold.
func (p Product) IsLowStock() bool {
	return p.StockQuantity <= p.LowStockThreshold
}
