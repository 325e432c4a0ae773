package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Astemirdum/bookshelf-service/bookshelf/internal/model"
	"github.com/Astemirdum/bookshelf-service/pkg/circuit_breaker"
	"github.com/IBM/sarama"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Two failed sends out of the last five open the breaker, so a dead broker
// slows down at most two mutations per cooldown.
const (
	breakerWindow    = 5
	breakerFailRatio = 0.4
	breakerCooldown  = 10 * time.Second
	breakerRecovery  = 2
)

type Publisher struct {
	producer sarama.SyncProducer
	topic    string
	cb       circuit_breaker.CircuitBreaker
	log      *zap.Logger
}

func NewPublisher(producer sarama.SyncProducer, topic string, log *zap.Logger) *Publisher {
	return &Publisher{
		producer: producer,
		topic:    topic,
		cb:       circuit_breaker.New(breakerWindow, breakerCooldown, breakerFailRatio, breakerRecovery),
		log:      log.Named("events"),
	}
}

// Publish keys the message by book id so events of one book keep their order within a partition.
func (p *Publisher) Publish(_ context.Context, event model.BookEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.Wrap(err, "marshal event")
	}
	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(event.BookID),
		Value: sarama.ByteEncoder(data),
		Headers: []sarama.RecordHeader{
			{Key: []byte("type"), Value: []byte(event.Type)},
		},
	}
	return p.cb.Call(func() error {
		partition, offset, err := p.producer.SendMessage(msg)
		if err != nil {
			return errors.Wrap(err, "SendMessage")
		}
		p.log.Debug("published",
			zap.String("type", string(event.Type)),
			zap.String("id", event.BookID),
			zap.Int32("partition", partition),
			zap.Int64("offset", offset))
		return nil
	})
}

func (p *Publisher) Close() error {
	return p.producer.Close()
}
