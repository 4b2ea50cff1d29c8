// internal/model/lead_event.go
package model

import (
	"strconv"
	"time"
)

// LeadCreatedEvent is published after a lead has been stored.
type LeadCreatedEvent struct {
	LeadID     int64     `json:"lead_id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	DebtAmount float64   `json:"debt_amount"`
	DebtType   string    `json:"debt_type"`
	CreatedAt  time.Time `json:"created_at"`
}

// Key partitions events by lead.
func (e LeadCreatedEvent) Key() string {
	return strconv.FormatInt(e.LeadID, 10)
}
