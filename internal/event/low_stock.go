package event

// TopicLowStock carries alerts for products at or below their threshold.
const TopicLowStock = "inventory.low_stock"

type LowStockEvent struct {
	EventID           string `json:"event_id"`
	ProductID         int64  `json:"product_id"`
	Name              string `json:"name"`
	StockQuantity     int32  `json:"stock_quantity"`
	LowStockThreshold int32  `json:"low_stock_threshold"`
}
