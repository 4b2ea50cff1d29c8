// internal/service/lead_service.go
package service

import (
	"context"
	"strings"

	log "github.com/sirupsen/logrus"

	appErrors "github.com/unclebandit/dropthatdebt-backend/internal/errors"
	"github.com/unclebandit/dropthatdebt-backend/internal/model"
	"github.com/unclebandit/dropthatdebt-backend/internal/queue"
	"github.com/unclebandit/dropthatdebt-backend/internal/repository"
)

const ErrNameEmailRequired = "Name and email are required"

type LeadService struct {
	LeadRepo  repository.LeadRepositoryInterface
	Publisher queue.Publisher
	Topic     string
}

// CreateLeadInput is the public form submission. Pointers tell a missing key
// apart from a zero value.
type CreateLeadInput struct {
	Name        *string        `json:"name"`
	Email       *string        `json:"email"`
	Phone       *string        `json:"phone"`
	DebtAmount  *float64       `json:"debt_amount"`
	DebtType    *string        `json:"debt_type"`
	QuizAnswers map[string]any `json:"quiz_answers"`
}

func (in CreateLeadInput) toLead() (*model.Lead, error) {
	if deref(in.Name) == "" || deref(in.Email) == "" {
		return nil, appErrors.NewValidation(ErrNameEmailRequired)
	}

	l := &model.Lead{
		Name:        *in.Name,
		Email:       *in.Email,
		Phone:       deref(in.Phone),
		DebtType:    deref(in.DebtType),
		QuizAnswers: in.QuizAnswers,
	}
	if in.DebtAmount != nil {
		l.DebtAmount = *in.DebtAmount
	}
	if l.QuizAnswers == nil {
		l.QuizAnswers = map[string]any{}
	}
	return l, nil
}

// CreateLead validates the submission, stores it and announces it. The lead
// is created even when the announcement fails.
func (s *LeadService) CreateLead(ctx context.Context, in CreateLeadInput) (int64, error) {
	lead, err := in.toLead()
	if err != nil {
		return 0, err
	}

	id, err := s.LeadRepo.Insert(ctx, lead)
	if err != nil {
		return 0, err
	}

	entry := log.WithField("lead_id", id)
	entry.Info("Lead created")

	if s.Publisher != nil {
		evt := model.LeadCreatedEvent{
			LeadID:     id,
			Name:       lead.Name,
			Email:      lead.Email,
			DebtAmount: lead.DebtAmount,
			DebtType:   lead.DebtType,
			CreatedAt:  lead.CreatedAt,
		}
		if err := s.Publisher.Publish(s.topic(), evt); err != nil {
			entry.WithError(err).Warn("Failed to publish lead created event")
		}
	}

	return id, nil
}

// ListLeads returns every stored lead, newest first.
func (s *LeadService) ListLeads(ctx context.Context) ([]model.Lead, error) {
	leads, err := s.LeadRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if leads == nil {
		leads = []model.Lead{}
	}
	return leads, nil
}

func (s *LeadService) topic() string {
	if strings.TrimSpace(s.Topic) == "" {
		return "lead_created"
	}
	return s.Topic
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
