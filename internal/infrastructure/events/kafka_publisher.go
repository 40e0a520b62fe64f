package events

import (
	"context"
	"encoding/json"

	"gwansang/internal/domain/entities"
	"gwansang/internal/usecase/interfaces"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const flushTimeoutMs = 5000

type producer interface {
	Produce(msg *kafka.Message, deliveryChan chan kafka.Event) error
	Flush(timeoutMs int) int
	Close()
}

// KafkaPublisher writes domain events as JSON, keyed by order id, and waits
// for the broker acknowledgement.
type KafkaPublisher struct {
	producer producer
	topic    string
}

var _ interfaces.IEventPublisher = (*KafkaPublisher)(nil)

func NewKafkaPublisher(bootstrapServers, topic string) (*KafkaPublisher, error) {
	p, err := kafka.NewProducer(&kafka.ConfigMap{
		"bootstrap.servers": bootstrapServers,
		"acks":              "all",
	})
	if err != nil {
		return nil, errors.Wrap(err, "create kafka producer")
	}
	log.WithFields(log.Fields{"kafka_servers": bootstrapServers, "topic": topic}).Info("[events][kafka] producer created")
	return &KafkaPublisher{producer: p, topic: topic}, nil
}

func (p *KafkaPublisher) Publish(ctx context.Context, event entities.Event) error {
	value, err := json.Marshal(event)
	if err != nil {
		return errors.Wrap(err, "marshal event")
	}

	delivery := make(chan kafka.Event, 1)
	err = p.producer.Produce(&kafka.Message{
		TopicPartition: kafka.TopicPartition{Topic: &p.topic, Partition: kafka.PartitionAny},
		Key:            []byte(event.Key),
		Value:          value,
		Headers:        []kafka.Header{{Key: "event_type", Value: []byte(event.Type)}},
	}, delivery)
	if err != nil {
		return errors.Wrapf(err, "produce %s", event.Type)
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case ev := <-delivery:
		m, ok := ev.(*kafka.Message)
		if !ok {
			return errors.Errorf("unexpected delivery event %v", ev)
		}
		if m.TopicPartition.Error != nil {
			return errors.Wrapf(m.TopicPartition.Error, "deliver %s", event.Type)
		}
		log.WithFields(log.Fields{"type": event.Type, "key": event.Key}).Debug("[events][kafka] event delivered")
		return nil
	}
}

// Close flushes outstanding messages and releases the producer.
func (p *KafkaPublisher) Close() {
	if left := p.producer.Flush(flushTimeoutMs); left > 0 {
		log.WithField("pending", left).Warn("[events][kafka] messages left unflushed")
	}
	p.producer.Close()
}

// NoopPublisher drops events; used when no broker is configured.
type NoopPublisher struct{}

var _ interfaces.IEventPublisher = NoopPublisher{}

func (NoopPublisher) Publish(_ context.Context, event entities.Event) error {
	log.WithField("type", event.Type).Debug("[events][noop] event dropped")
	return nil
}
