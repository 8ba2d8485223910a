package queue

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"math/rand"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/priyanshi-bakery/storefront/internal/models"
	"github.com/priyanshi-bakery/storefront/internal/repository"
)

// Consumer reads order events and walks each order through
// pending -> processing -> completed
type Consumer struct {
	repo   repository.OrderRepository
	reader *kafka.Reader
	log    *slog.Logger

	// bake time bounds, overridable in tests
	minProcessing time.Duration
	maxProcessing time.Duration
}

// NewConsumer creates a consumer bound to the given topic and group
func NewConsumer(repo repository.OrderRepository, log *slog.Logger, topic, groupID string, brokers ...string) *Consumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  brokers,
		Topic:    topic,
		GroupID:  groupID,
		MaxBytes: 10e6, // 10MB
	})
	return &Consumer{
		repo:          repo,
		reader:        reader,
		log:           log,
		minProcessing: 5 * time.Second,
		maxProcessing: 15 * time.Second,
	}
}

// Run consumes messages until the context is cancelled
func (c *Consumer) Run(ctx context.Context) {
	for {
		if ctx.Err() != nil {
			return
		}
		c.processMessage(ctx)
	}
}

// Close closes the underlying reader
func (c *Consumer) Close() error {
	return c.reader.Close()
}

func (c *Consumer) processMessage(ctx context.Context) {
	m, err := c.reader.ReadMessage(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		c.log.Error("failed to read message", "error", err)
		return
	}

	var event OrderEvent
	if err := json.Unmarshal(m.Value, &event); err != nil {
		c.log.Error("failed to parse message", "error", err)
		return
	}

	if event.OrderID == 0 {
		c.log.Warn("received message with no order_id")
		return
	}

	c.ProcessOrder(ctx, event.OrderID)
}

// ProcessOrder marks the order as processing, simulates bake time, then
// marks it completed
func (c *Consumer) ProcessOrder(ctx context.Context, orderID int64) {
	if err := c.repo.SetStatus(ctx, orderID, models.OrderStatusProcessing); err != nil {
		c.log.Error("failed to mark order processing", "order_id", orderID, "error", err)
		return
	}

	delay := c.minProcessing
	if c.maxProcessing > c.minProcessing {
		delay += time.Duration(rand.Int63n(int64(c.maxProcessing - c.minProcessing)))
	}
	c.log.Info("processing order", "order_id", orderID, "duration", delay)

	select {
	case <-time.After(delay):
	case <-ctx.Done():
		return
	}

	if err := c.repo.SetStatus(ctx, orderID, models.OrderStatusCompleted); err != nil {
		c.log.Error("failed to mark order completed", "order_id", orderID, "error", err)
		return
	}

	c.log.Info("order processed", "order_id", orderID)
}
