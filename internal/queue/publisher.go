package queue

import (
	log "github.com/sirupsen/logrus"

	"github.com/unclebandit/dropthatdebt-backend/internal/config"
)

// NewPublisher picks the event backend from QUEUE_BACKEND. The returned close
// func is never nil.
func NewPublisher(cfg *config.Config) (Publisher, func() error, error) {
	noop := func() error { return nil }

	switch cfg.QueueBackend {
	case config.QueueAMQP:
		p, err := NewAMQPPublisher(cfg.AMQPURL)
		if err != nil {
			return nil, noop, err
		}
		return p, p.Close, nil
	case config.QueueKafka:
		p := NewKafkaPublisher(cfg.KafkaBrokers)
		return p, p.Close, nil
	case config.QueueNone:
		return NopPublisher{}, noop, nil
	}

	q := NewInMemoryQueue()
	if err := StartLeadSubscriber(q, cfg.LeadTopic, LogNotification); err != nil {
		return nil, noop, err
	}
	log.WithField("topic", cfg.LeadTopic).Info("Using in-memory lead event queue")
	return q, noop, nil
}
