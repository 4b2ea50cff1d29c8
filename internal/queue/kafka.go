package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"
)

// KafkaPublisher writes JSON payloads to Kafka, one writer per topic.
type KafkaPublisher struct {
	brokers []string
	mutex   sync.Mutex
	writers map[string]*kafka.Writer

	Attempts int
	Sleep    time.Duration
}

func NewKafkaPublisher(brokers []string) *KafkaPublisher {
	return &KafkaPublisher{
		brokers:  brokers,
		writers:  make(map[string]*kafka.Writer),
		Attempts: 5,
		Sleep:    2 * time.Second,
	}
}

func (p *KafkaPublisher) writer(topic string) *kafka.Writer {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	w, ok := p.writers[topic]
	if !ok {
		w = &kafka.Writer{
			Addr:                   kafka.TCP(p.brokers...),
			Topic:                  topic,
			Balancer:               &kafka.LeastBytes{},
			AllowAutoTopicCreation: true,
		}
		p.writers[topic] = w
	}
	return w
}

func (p *KafkaPublisher) Publish(topic string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode payload: %w", err)
	}

	msg := kafka.Message{Value: body}
	if evt, ok := payload.(interface{ Key() string }); ok {
		msg.Key = []byte(evt.Key())
	}

	w := p.writer(topic)
	ctx := context.Background()
	return RetryContext(ctx, p.Attempts, p.Sleep, func() error {
		return w.WriteMessages(ctx, msg)
	})
}

func (p *KafkaPublisher) Close() error {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	var firstErr error
	for _, w := range p.writers {
		if err := w.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
