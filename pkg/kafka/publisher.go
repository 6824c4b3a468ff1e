package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Astemirdum/seat-booking/pkg/circuit_breaker"
	"github.com/IBM/sarama"
	"github.com/pkg/errors"
)

type Publisher interface {
	Publish(ctx context.Context, key string, v any) error
	Close() error
}

// NewPublisher returns a no-op publisher when no brokers are configured.
func NewPublisher(cfg Config) (Publisher, error) {
	if !cfg.Enabled() {
		return Nop{}, nil
	}
	producer, err := NewProducer(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "kafka.NewProducer")
	}
	return NewProducerPublisher(producer, cfg.Topic), nil
}

type producerPublisher struct {
	producer sarama.SyncProducer
	topic    string
	cb       circuit_breaker.CircuitBreaker
}

func NewProducerPublisher(producer sarama.SyncProducer, topic string) *producerPublisher {
	if topic == "" {
		topic = EventsTopic
	}
	return &producerPublisher{
		producer: producer,
		topic:    topic,
		cb:       circuit_breaker.New(20, 10*time.Second, 0.5, 2),
	}
}

func (p *producerPublisher) Publish(ctx context.Context, key string, v any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(key),
		Value: sarama.ByteEncoder(data),
	}
	return p.cb.Call(func() error {
		_, _, err := p.producer.SendMessage(msg)
		return err
	})
}

func (p *producerPublisher) Close() error {
	return p.producer.Close()
}

type Nop struct{}

func (Nop) Publish(context.Context, string, any) error { return nil }
func (Nop) Close() error                               { return nil }
