package service

import (
	log "github.com/sirupsen/logrus"

	"github.com/unclebandit/dropthatdebt-backend/internal/model"
)

// Worker turns lead created events into sales notifications.
type Worker struct {
	JobChan    <-chan model.LeadCreatedEvent
	NotifyFunc func(evt model.LeadCreatedEvent) error
	OnDone     func(evt model.LeadCreatedEvent, err error)
}

// Constructor
func NewWorker(jobChan <-chan model.LeadCreatedEvent, notify func(evt model.LeadCreatedEvent) error) *Worker {
	return &Worker{
		JobChan:    jobChan,
		NotifyFunc: notify,
	}
}

// Start processes jobs until JobChan is closed.
func (w *Worker) Start() {
	for evt := range w.JobChan {
		err := w.NotifyFunc(evt)
		if err != nil {
			log.WithField("lead_id", evt.LeadID).WithError(err).Error("Failed to notify about lead")
		}
		if w.OnDone != nil {
			w.OnDone(evt, err)
		}
	}
}
