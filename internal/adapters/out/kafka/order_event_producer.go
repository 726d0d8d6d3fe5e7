// Package kafka publishes order status changes to a Kafka topic.
package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"restaurant/internal/core/domain/model/order"

	"github.com/twmb/franz-go/pkg/kgo"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/propagation"
)

const tracerName = "restaurant/kafka"

type syncProducer interface {
	ProduceSync(ctx context.Context, rs ...*kgo.Record) kgo.ProduceResults
	Close()
}

// OrderStatusChangedMessage is the JSON value written for every status change.
type OrderStatusChangedMessage struct {
	EventID     string    `json:"eventId"`
	EventType   string    `json:"eventType"`
	OrderNumber int64     `json:"orderNumber"`
	From        string    `json:"from"`
	To          string    `json:"to"`
	OccurredAt  time.Time `json:"occurredAt"`
}

// OrderEventProducer implements ports.OrderEventPublisher on top of a franz-go client.
// Records are keyed by order number so one order's changes stay in one partition.
type OrderEventProducer struct {
	client syncProducer
	topic  string
}

// NewOrderEventProducer connects to brokers and produces to topic.
func NewOrderEventProducer(brokers []string, topic string) (*OrderEventProducer, error) {
	if len(brokers) == 0 {
		return nil, errors.New("kafka brokers are required")
	}
	if topic == "" {
		return nil, errors.New("kafka topic is required")
	}

	client, err := kgo.NewClient(
		kgo.SeedBrokers(brokers...),
		kgo.DefaultProduceTopic(topic),
		kgo.ProduceRequestTimeout(10*time.Second),
		kgo.RequiredAcks(kgo.AllISRAcks()),
		kgo.ClientID("restaurant-orders"),
	)
	if err != nil {
		return nil, fmt.Errorf("create kafka client: %w", err)
	}

	return newOrderEventProducer(client, topic), nil
}

func newOrderEventProducer(client syncProducer, topic string) *OrderEventProducer {
	return &OrderEventProducer{client: client, topic: topic}
}

// Publish writes all events in one synchronous produce call.
func (p *OrderEventProducer) Publish(ctx context.Context, events ...order.StatusChanged) error {
	if len(events) == 0 {
		return nil
	}

	ctx, span := otel.Tracer(tracerName).Start(ctx, "OrderEventProducer.Publish")
	defer span.End()
	span.SetAttributes(
		attribute.String("messaging.destination.name", p.topic),
		attribute.Int("messaging.batch.message_count", len(events)),
	)

	headers := traceHeaders(ctx)
	records := make([]*kgo.Record, 0, len(events))
	for _, event := range events {
		value, err := json.Marshal(toMessage(event))
		if err != nil {
			span.RecordError(err)
			return fmt.Errorf("marshal order event: %w", err)
		}

		records = append(records, &kgo.Record{
			Topic:   p.topic,
			Key:     []byte(strconv.FormatInt(event.Number.Int64(), 10)),
			Value:   value,
			Headers: headers,
		})
	}

	if err := p.client.ProduceSync(ctx, records...).FirstErr(); err != nil {
		span.RecordError(err)
		return fmt.Errorf("produce order events: %w", err)
	}
	return nil
}

func (p *OrderEventProducer) Close() {
	p.client.Close()
}

func toMessage(event order.StatusChanged) OrderStatusChangedMessage {
	return OrderStatusChangedMessage{
		EventID:     event.ID,
		EventType:   order.StatusChangedEventType,
		OrderNumber: event.Number.Int64(),
		From:        event.From.String(),
		To:          event.To.String(),
		OccurredAt:  event.OccurredAt,
	}
}

// traceHeaders carries the W3C traceparent of ctx, if any.
func traceHeaders(ctx context.Context) []kgo.RecordHeader {
	carrier := propagation.MapCarrier{}
	propagation.TraceContext{}.Inject(ctx, carrier)

	traceparent, ok := carrier["traceparent"]
	if !ok {
		return nil
	}

	return []kgo.RecordHeader{
		{Key: "traceparent", Value: []byte(traceparent)},
	}
}
