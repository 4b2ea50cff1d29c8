package main

import (
	"encoding/json"

	log "github.com/sirupsen/logrus"
	"github.com/streadway/amqp"

	"github.com/unclebandit/dropthatdebt-backend/internal/config"
	"github.com/unclebandit/dropthatdebt-backend/internal/model"
	"github.com/unclebandit/dropthatdebt-backend/internal/queue"
	"github.com/unclebandit/dropthatdebt-backend/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	cfg.ConfigureLogging()

	// Connect to RabbitMQ
	conn, err := amqp.Dial(cfg.AMQPURL)
	if err != nil {
		log.Fatal("Failed to connect to RabbitMQ: ", err)
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		log.Fatal("Failed to open a channel: ", err)
	}
	defer ch.Close()

	q, err := queue.DeclareQueue(ch, cfg.LeadTopic)
	if err != nil {
		log.Fatal("Failed to declare queue: ", err)
	}

	msgs, err := ch.Consume(
		q.Name,
		"",
		false, // autoAck = false for reliability
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		log.Fatal("Failed to register consumer: ", err)
	}

	jobs := make(chan model.LeadCreatedEvent)
	done := make(chan error)

	worker := service.NewWorker(jobs, queue.LogNotification)
	worker.OnDone = func(evt model.LeadCreatedEvent, err error) {
		done <- err
	}

	go func() {
		defer close(jobs)
		for d := range msgs {
			evt, err := decodeDelivery(d.Body)
			if err != nil {
				log.WithError(err).Warn("Invalid job")
				d.Ack(false)
				continue
			}
			jobs <- evt
			settle(d, <-done)
		}
	}()

	log.WithField("queue", q.Name).Info("Worker running, waiting for lead events...")
	worker.Start()
}

func decodeDelivery(body []byte) (model.LeadCreatedEvent, error) {
	var evt model.LeadCreatedEvent
	err := json.Unmarshal(body, &evt)
	return evt, err
}

// settle acks a handled delivery and requeues a failed one once.
func settle(d amqp.Delivery, err error) {
	if err == nil {
		d.Ack(false)
		return
	}
	d.Nack(false, !d.Redelivered)
}
