package alert

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/google/uuid"

	"github.com/tuanvumaihuynh/inventory-service/internal/event"
	"github.com/tuanvumaihuynh/inventory-service/internal/model"
	"github.com/tuanvumaihuynh/inventory-service/internal/storage/mq"
	"github.com/tuanvumaihuynh/inventory-service/pkg/ptr"
)

// Notifier publishes low-stock alerts. Implementations must be fire-and-forget
// safe: a failed alert never fails the request that triggered it.
type Notifier interface {
	NotifyLowStock(ctx context.Context, product model.Product)
}

var (
	_ Notifier = (*KafkaNotifier)(nil)
	_ Notifier = (*NoopNotifier)(nil)
)

// KafkaNotifier publishes low-stock events to Kafka, keyed by product ID so
// alerts for the same product stay ordered.
type KafkaNotifier struct {
	logger     *slog.Logger
	mqProducer mq.Producer
}

func NewKafkaNotifier(logger *slog.Logger, mqProducer mq.Producer) *KafkaNotifier {
	return &KafkaNotifier{
		logger:     logger.With(slog.String("service", "alert")),
		mqProducer: mqProducer,
	}
}

func (n *KafkaNotifier) NotifyLowStock(ctx context.Context, product model.Product) {
	if err := n.notify(ctx, product); err != nil {
		n.logger.ErrorContext(ctx, "error publishing low stock alert",
			slog.Int64("product_id", product.ID),
			slog.Any("error", err),
		)
	}
}

func (n *KafkaNotifier) notify(ctx context.Context, product model.Product) error {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Errorf("generate uuid v7: %w", err)
	}

	ev := event.LowStockEvent{
		EventID:           id.String(),
		ProductID:         product.ID,
		Name:              product.Name,
		StockQuantity:     product.StockQuantity,
		LowStockThreshold: product.LowStockThreshold,
	}

	evBytes, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	if err := n.mqProducer.Produce(ctx, mq.ProduceMsg{
		Topic:        event.TopicLowStock,
		Headers:      mq.BuildHeaders(ctx),
		Payload:      evBytes,
		PartitionKey: ptr.New(strconv.FormatInt(product.ID, 10)),
	}); err != nil {
		return fmt.Errorf("produce message: %w", err)
	}

	return nil
}

// NoopNotifier is used when no Kafka brokers are configured.
type NoopNotifier struct{}

func NewNoopNotifier() *NoopNotifier { return &NoopNotifier{} }

func (NoopNotifier) NotifyLowStock(context.Context, model.Product) {}
