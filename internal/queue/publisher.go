package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/segmentio/kafka-go"
)

// OrderEvent is the payload published for each placed order
type OrderEvent struct {
	OrderID int64 `json:"order_id"`
}

// Publisher writes order events to the order-processing topic
type Publisher struct {
	writer *kafka.Writer
}

// NewPublisher creates a publisher for the given topic
func NewPublisher(topic string, brokers ...string) *Publisher {
	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}
	return &Publisher{writer: w}
}

// Publish sends an order event keyed by order id
func (p *Publisher) Publish(ctx context.Context, orderID int64) error {
	value, err := json.Marshal(OrderEvent{OrderID: orderID})
	if err != nil {
		return fmt.Errorf("marshal order event: %w", err)
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.FormatInt(orderID, 10)),
		Value: value,
	})
	if err != nil {
		return fmt.Errorf("publish order event: %w", err)
	}

	return nil
}

// Close flushes and closes the underlying writer
func (p *Publisher) Close() error {
	return p.writer.Close()
}
