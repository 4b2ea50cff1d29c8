package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/jmoiron/sqlx"

	appErrors "github.com/unclebandit/dropthatdebt-backend/internal/errors"
	"github.com/unclebandit/dropthatdebt-backend/internal/model"
)

type LeadRepositoryInterface interface {
	Insert(ctx context.Context, l *model.Lead) (int64, error)
	ListAll(ctx context.Context) ([]model.Lead, error)
}

type LeadRepository struct {
	DB *sqlx.DB
}

type leadRow struct {
	ID          int64           `db:"id"`
	Name        string          `db:"name"`
	Email       string          `db:"email"`
	Phone       sql.NullString  `db:"phone"`
	DebtAmount  sql.NullFloat64 `db:"debt_amount"`
	DebtType    sql.NullString  `db:"debt_type"`
	QuizAnswers sql.NullString  `db:"quiz_answers"`
	CreatedAt   dbTime          `db:"created_at"`
	Status      sql.NullString  `db:"status"`
	Notes       sql.NullString  `db:"notes"`
}

// withConn runs fn on a connection of its own and always hands it back.
func (r *LeadRepository) withConn(ctx context.Context, op string, fn func(conn *sqlx.Conn) error) error {
	if r == nil || r.DB == nil {
		return appErrors.NewStorage(op, fmt.Errorf("storage is not configured"))
	}
	conn, err := r.DB.Connx(ctx)
	if err != nil {
		return appErrors.NewStorage(op, err)
	}
	defer conn.Close()

	return fn(conn)
}

// Insert stores the lead and fills in the engine-assigned id, created_at and
// status on l.
func (r *LeadRepository) Insert(ctx context.Context, l *model.Lead) (int64, error) {
	quiz, err := encodeQuizAnswers(l.QuizAnswers)
	if err != nil {
		return 0, err
	}

	query := `
        INSERT INTO leads (name, email, phone, debt_amount, debt_type, quiz_answers)
        VALUES (?, ?, ?, ?, ?, ?)
        RETURNING id, created_at, status
    `
	err = r.withConn(ctx, "insert", func(conn *sqlx.Conn) error {
		var createdAt dbTime
		var status sql.NullString
		row := conn.QueryRowxContext(ctx, r.DB.Rebind(query), l.Name, l.Email, l.Phone, l.DebtAmount, l.DebtType, quiz)
		if err := row.Scan(&l.ID, &createdAt, &status); err != nil {
			return appErrors.NewStorage("insert", err)
		}
		l.CreatedAt = createdAt.Time
		l.Status = status.String
		return nil
	})
	if err != nil {
		return 0, err
	}
	return l.ID, nil
}

// ListAll returns every lead, newest first. There is no limit.
func (r *LeadRepository) ListAll(ctx context.Context) ([]model.Lead, error) {
	query := `
        SELECT id, name, email, phone, debt_amount, debt_type,
               quiz_answers, created_at, status, notes
        FROM leads
        ORDER BY created_at DESC, id DESC
    `
	var rows []leadRow
	err := r.withConn(ctx, "list", func(conn *sqlx.Conn) error {
		if err := conn.SelectContext(ctx, &rows, query); err != nil {
			return appErrors.NewStorage("list", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	leads := make([]model.Lead, 0, len(rows))
	for _, row := range rows {
		l, err := row.toModel()
		if err != nil {
			return nil, err
		}
		leads = append(leads, l)
	}
	return leads, nil
}

func (row leadRow) toModel() (model.Lead, error) {
	quiz, err := decodeQuizAnswers(row.QuizAnswers.String)
	if err != nil {
		return model.Lead{}, fmt.Errorf("lead %d: %w", row.ID, err)
	}

	l := model.Lead{
		ID:          row.ID,
		Name:        row.Name,
		Email:       row.Email,
		Phone:       row.Phone.String,
		DebtAmount:  row.DebtAmount.Float64,
		DebtType:    row.DebtType.String,
		QuizAnswers: quiz,
		CreatedAt:   row.CreatedAt.Time,
		Status:      row.Status.String,
	}
	if row.Notes.Valid {
		notes := row.Notes.String
		l.Notes = &notes
	}
	return l, nil
}

func encodeQuizAnswers(answers map[string]any) (string, error) {
	if answers == nil {
		answers = map[string]any{}
	}
	b, err := json.Marshal(answers)
	if err != nil {
		return "", appErrors.NewSerialization(err)
	}
	return string(b), nil
}

func decodeQuizAnswers(text string) (map[string]any, error) {
	answers := map[string]any{}
	if text == "" {
		return answers, nil
	}
	if err := json.Unmarshal([]byte(text), &answers); err != nil {
		return nil, appErrors.NewSerialization(err)
	}
	if answers == nil {
		answers = map[string]any{}
	}
	return answers, nil
}

var _ LeadRepositoryInterface = (*LeadRepository)(nil)
