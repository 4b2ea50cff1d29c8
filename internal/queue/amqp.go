package queue

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/streadway/amqp"
)

// AMQPPublisher publishes JSON payloads to durable RabbitMQ queues named after
// the topic.
type AMQPPublisher struct {
	mu       sync.Mutex
	conn     *amqp.Connection
	ch       *amqp.Channel
	declared map[string]bool
}

func NewAMQPPublisher(url string) (*AMQPPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("connect to queue: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open queue channel: %w", err)
	}

	return &AMQPPublisher{
		conn:     conn,
		ch:       ch,
		declared: map[string]bool{},
	}, nil
}

// DeclareQueue declares the durable queue used for topic.
func DeclareQueue(ch *amqp.Channel, topic string) (amqp.Queue, error) {
	return ch.QueueDeclare(
		topic,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,
	)
}

func (p *AMQPPublisher) Publish(topic string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode payload: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.declared[topic] {
		if _, err := DeclareQueue(p.ch, topic); err != nil {
			return fmt.Errorf("declare queue: %w", err)
		}
		p.declared[topic] = true
	}

	return p.ch.Publish(
		"",
		topic,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
}

func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.ch.Close(); err != nil {
		p.conn.Close()
		return err
	}
	return p.conn.Close()
}
