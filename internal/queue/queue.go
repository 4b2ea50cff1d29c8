package queue

import (
	"fmt"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/unclebandit/dropthatdebt-backend/internal/model"
)

// Publisher sends a payload to a topic.
type Publisher interface {
	Publish(topic string, payload any) error
}

// Queue interface
type Queue interface {
	Publisher
	Subscribe(topic string, handler func(payload any) error) error
}

// InMemoryQueue fans each published job out to the topic's subscribers and
// retries a failing subscriber a few times.
type InMemoryQueue struct {
	mu         sync.Mutex
	handlers   map[string][]func(payload any) error
	maxRetries int
	backoff    time.Duration
	wg         sync.WaitGroup
}

// NewInMemoryQueue creates a new queue
func NewInMemoryQueue() *InMemoryQueue {
	return &InMemoryQueue{
		handlers:   make(map[string][]func(payload any) error),
		maxRetries: 3,
		backoff:    500 * time.Millisecond,
	}
}

// JobPayload wraps a message payload with retry info
type JobPayload struct {
	Topic      string
	Payload    any
	RetryCount int
	MaxRetries int
}

// Publish sends a message to all subscribers
func (q *InMemoryQueue) Publish(topic string, payload any) error {
	q.mu.Lock()
	handlers := append([]func(payload any) error(nil), q.handlers[topic]...)
	q.mu.Unlock()

	if len(handlers) == 0 {
		return fmt.Errorf("no subscribers for topic %s", topic)
	}

	for _, handler := range handlers {
		job := JobPayload{
			Topic:      topic,
			Payload:    payload,
			MaxRetries: q.maxRetries,
		}
		q.wg.Add(1)
		go q.processJob(handler, job)
	}

	return nil
}

func (q *InMemoryQueue) processJob(handler func(payload any) error, job JobPayload) {
	defer q.wg.Done()
	entry := log.WithField("topic", job.Topic)

	for job.RetryCount <= job.MaxRetries {
		err := handler(job.Payload)
		if err == nil {
			entry.Debug("Job processed")
			return
		}

		job.RetryCount++
		entry.WithError(err).Warnf("Job failed (attempt %d/%d)", job.RetryCount, job.MaxRetries+1)

		if job.RetryCount > job.MaxRetries {
			entry.Errorf("Job permanently failed after %d attempts", job.RetryCount)
			return
		}

		time.Sleep(time.Duration(job.RetryCount) * q.backoff)
	}
}

// Subscribe adds a handler for a topic
func (q *InMemoryQueue) Subscribe(topic string, handler func(payload any) error) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.handlers[topic] = append(q.handlers[topic], handler)
	return nil
}

// Wait blocks until every job published so far has finished.
func (q *InMemoryQueue) Wait() {
	q.wg.Wait()
}

// StartLeadSubscriber hands every lead created event on topic to notify.
func StartLeadSubscriber(q Queue, topic string, notify func(evt model.LeadCreatedEvent) error) error {
	return q.Subscribe(topic, func(payload any) error {
		evt, ok := payload.(model.LeadCreatedEvent)
		if !ok {
			log.WithField("type", fmt.Sprintf("%T", payload)).Warn("Invalid payload type, expected LeadCreatedEvent")
			return nil
		}
		return notify(evt)
	})
}

// LogNotification is the default sales notification: one log line per lead.
func LogNotification(evt model.LeadCreatedEvent) error {
	log.WithFields(log.Fields{
		"lead_id":     evt.LeadID,
		"email":       evt.Email,
		"debt_amount": evt.DebtAmount,
		"debt_type":   evt.DebtType,
	}).Info("New lead received")
	return nil
}

// NopPublisher drops every event.
type NopPublisher struct{}

func (NopPublisher) Publish(topic string, payload any) error { return nil }
