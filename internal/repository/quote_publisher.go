package repository

import (
	"context"

	"FinFlow/internal/domain/models"
	"FinFlow/internal/domain/repository"
	pkgkafka "FinFlow/pkg/kafka"
)

// KafkaPublisher implements Publisher for Kafka.
type KafkaPublisher struct {
	producer *pkgkafka.Producer
	topic    string
}

// NewKafkaPublisher creates Kafka publisher.
func NewKafkaPublisher(producer *pkgkafka.Producer, topic string) repository.Publisher {
	return &KafkaPublisher{producer: producer, topic: topic}
}

func quotePayload(q *models.Quote) map[string]interface{} {
	return map[string]interface{}{
		"symbol": q.Symbol,
		"t":      q.Timestamp.UnixMilli(),
		"c":      q.Price,
		"v":      q.Volume,
	}
}

func (p *KafkaPublisher) Publish(ctx context.Context, q *models.Quote) error {
	return p.producer.Publish(ctx, p.topic, []byte(q.Symbol), quotePayload(q))
}

func (p *KafkaPublisher) PublishBatch(ctx context.Context, quotes []*models.Quote) error {
	if len(quotes) == 0 {
		return nil
	}
	msgs := make([]pkgkafka.Message, len(quotes))
	for i, q := range quotes {
		msgs[i] = pkgkafka.Message{
			Key:   []byte(q.Symbol),
			Value: quotePayload(q),
		}
	}
	return p.producer.PublishBatch(ctx, p.topic, msgs)
}

func (p *KafkaPublisher) Close() error {
	if p.producer != nil {
		return p.producer.Close()
	}
	return nil
}

// LogPublisher adapts the Kafka producer to the logger collector's
// Publisher interface for shipping aggregated error logs.
type LogPublisher struct {
	producer *pkgkafka.Producer
}

func NewLogPublisher(producer *pkgkafka.Producer) *LogPublisher {
	return &LogPublisher{producer: producer}
}

func (p *LogPublisher) PublishMessage(ctx context.Context, topic string, payload interface{}) error {
	return p.producer.Publish(ctx, topic, nil, payload)
}
