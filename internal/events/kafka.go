package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/visualart-comunicacao/sitemas-visualArt2/internal/models"
	"github.com/visualart-comunicacao/sitemas-visualArt2/internal/service"
)

// KafkaBus publishes order lifecycle events to a single topic, keyed by
// order id so one order's events stay ordered within a partition.
type KafkaBus struct {
	writer *kafka.Writer
	log    *zap.Logger
}

func NewKafkaBus(brokers []string, topic string, log *zap.Logger) *KafkaBus {
	w := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		BatchTimeout: 100 * time.Millisecond,
	}
	return &KafkaBus{writer: w, log: log}
}

func (b *KafkaBus) Close() error { return b.writer.Close() }

func (b *KafkaBus) publish(ctx context.Context, key, eventType string, payload any) error {
	value, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	err = b.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: value,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(eventType)},
		},
	})
	if err != nil {
		b.log.Error("publish event", zap.String("event_type", eventType), zap.Error(err))
	}
	return err
}

func (b *KafkaBus) PublishOrderCreated(ctx context.Context, e service.OrderCreatedEvent) error {
	eventType := "order.created"
	if e.Type == string(models.OrderTypeQuote) {
		eventType = "quote.created"
	}
	return b.publish(ctx, e.OrderID.String(), eventType, e)
}

func (b *KafkaBus) PublishQuoteConverted(ctx context.Context, e service.QuoteConvertedEvent) error {
	return b.publish(ctx, e.SaleID.String(), "quote.converted", e)
}
