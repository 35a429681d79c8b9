package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/distrimed/order-service/internal/config"
	"github.com/distrimed/order-service/internal/entities"

	"github.com/segmentio/kafka-go"
)

// OrderCreatedEvent is the payload published after an order is persisted.
type OrderCreatedEvent struct {
	OrderNumber       string                  `json:"order_number"`
	ClientID          string                  `json:"client_id,omitempty"`
	VendorID          string                  `json:"vendor_id,omitempty"`
	Status            string                  `json:"status"`
	TotalAmount       float64                 `json:"total_amount"`
	ScheduledDelivery time.Time               `json:"scheduled_delivery"`
	AssignedTruck     string                  `json:"assigned_truck"`
	Items             []OrderCreatedEventItem `json:"items"`
	CreatedAt         time.Time               `json:"created_at"`
}

type OrderCreatedEventItem struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

// Publisher writes order lifecycle events to Kafka. Publishing is best
// effort from the caller's point of view: the order is already persisted
// when an event goes out.
type Publisher struct {
	logger *slog.Logger
	writer *kafka.Writer
}

func NewPublisher(logger *slog.Logger, cfg config.Kafka) *Publisher {
	return &Publisher{
		logger: logger.With(slog.String("publisher", "kafka")),
		writer: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Topic:        cfg.Topic,
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: cfg.BatchTimeout,
		},
	}
}

func (p *Publisher) OrderCreated(ctx context.Context, order entities.Order) error {
	event := OrderCreatedEvent{
		OrderNumber:       order.OrderNumber,
		ClientID:          order.ClientID,
		VendorID:          order.VendorID,
		Status:            string(order.Status),
		TotalAmount:       order.TotalAmount,
		ScheduledDelivery: order.ScheduledDelivery,
		AssignedTruck:     order.AssignedTruck,
		CreatedAt:         order.CreatedAt,
	}
	for _, it := range order.Items {
		event.Items = append(event.Items, OrderCreatedEventItem{ProductID: it.ProductID, Quantity: it.Quantity})
	}

	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(order.OrderNumber),
		Value: value,
	})
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
