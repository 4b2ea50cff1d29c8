// internal/model/lead.go
package model

import "time"

const LeadStatusNew = "new"

type Lead struct {
	ID          int64          `db:"id" json:"id"`
	Name        string         `db:"name" json:"name"`
	Email       string         `db:"email" json:"email"`
	Phone       string         `db:"phone" json:"phone"`
	DebtAmount  float64        `db:"debt_amount" json:"debt_amount"`
	DebtType    string         `db:"debt_type" json:"debt_type"`
	QuizAnswers map[string]any `db:"-" json:"quiz_answers"`
	CreatedAt   time.Time      `db:"created_at" json:"created_at"`
	Status      string         `db:"status" json:"status"`
	Notes       *string        `db:"notes" json:"notes"`
}
