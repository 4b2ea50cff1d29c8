package controller_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/unclebandit/dropthatdebt-backend/internal/controller"
	appErrors "github.com/unclebandit/dropthatdebt-backend/internal/errors"
	"github.com/unclebandit/dropthatdebt-backend/internal/handler"
	"github.com/unclebandit/dropthatdebt-backend/internal/model"
	"github.com/unclebandit/dropthatdebt-backend/internal/service"
)

// --- Mock Repositories ---

type MockLeadRepo struct {
	leads     []model.Lead
	insertErr error
	listErr   error
}

func (m *MockLeadRepo) Insert(ctx context.Context, l *model.Lead) (int64, error) {
	if m.insertErr != nil {
		return 0, m.insertErr
	}
	l.ID = int64(len(m.leads) + 1)
	l.Status = model.LeadStatusNew
	l.CreatedAt = time.Now()
	m.leads = append(m.leads, *l)
	return l.ID, nil
}

func (m *MockLeadRepo) ListAll(ctx context.Context) ([]model.Lead, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.leads, nil
}

func newController(repo *MockLeadRepo) *controller.LeadController {
	return &controller.LeadController{
		LeadService: &service.LeadService{LeadRepo: repo},
	}
}

// --- Test Functions ---

func TestCreateLeadHandler(t *testing.T) {
	repo := &MockLeadRepo{}
	ctrl := newController(repo)
	h := handler.Boundary("Error creating lead: ", ctrl.CreateLead)

	b, _ := json.Marshal(map[string]interface{}{"name": "Jane Doe", "email": "jane@example.com"})
	req := httptest.NewRequest("POST", "/api/leads", bytes.NewReader(b))
	w := httptest.NewRecorder()

	h(w, req)

	resp := w.Result()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}

	var res controller.CreateLeadResponse
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if res.Status != "success" || res.Message != "Lead created successfully" || res.LeadID != 1 {
		t.Errorf("unexpected body %+v", res)
	}
}

func TestCreateLeadHandlerValidation(t *testing.T) {
	bodies := []string{
		`{"email":"jane@example.com"}`,
		`{"name":"Jane Doe"}`,
		`{"name":"","email":"jane@example.com"}`,
		`{"name":"Jane Doe","email":null}`,
	}

	for _, body := range bodies {
		repo := &MockLeadRepo{}
		h := handler.Boundary("Error creating lead: ", newController(repo).CreateLead)

		w := httptest.NewRecorder()
		h(w, httptest.NewRequest("POST", "/api/leads", strings.NewReader(body)))

		if w.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", body, w.Code)
		}
		var res handler.ErrorResponse
		_ = json.NewDecoder(w.Body).Decode(&res)
		if res.Status != "error" || res.Message != "Name and email are required" {
			t.Errorf("%s: unexpected body %+v", body, res)
		}
		if len(repo.leads) != 0 {
			t.Errorf("%s: expected no write", body)
		}
	}
}

func TestCreateLeadHandlerMalformedJSON(t *testing.T) {
	h := handler.Boundary("Error creating lead: ", newController(&MockLeadRepo{}).CreateLead)

	w := httptest.NewRecorder()
	h(w, httptest.NewRequest("POST", "/api/leads", strings.NewReader(`{"name":`)))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	var res handler.ErrorResponse
	_ = json.NewDecoder(w.Body).Decode(&res)
	if !strings.HasPrefix(res.Message, "Error creating lead: ") {
		t.Errorf("unexpected message %q", res.Message)
	}
}

func TestCreateLeadHandlerStorageError(t *testing.T) {
	repo := &MockLeadRepo{insertErr: appErrors.NewStorage("insert", errors.New("database is locked"))}
	h := handler.Boundary("Error creating lead: ", newController(repo).CreateLead)

	w := httptest.NewRecorder()
	h(w, httptest.NewRequest("POST", "/api/leads", strings.NewReader(`{"name":"Jane","email":"jane@example.com"}`)))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	var res handler.ErrorResponse
	_ = json.NewDecoder(w.Body).Decode(&res)
	if res.Message != "Error creating lead: database is locked" {
		t.Errorf("unexpected message %q", res.Message)
	}
}

func TestListLeadsHandler(t *testing.T) {
	repo := &MockLeadRepo{}
	ctrl := newController(repo)
	for _, name := range []string{"A", "B"} {
		n, e := name, name+"@example.com"
		if _, err := ctrl.LeadService.CreateLead(context.Background(), service.CreateLeadInput{Name: &n, Email: &e}); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	w := httptest.NewRecorder()
	handler.Boundary("Error fetching leads: ", ctrl.ListLeads)(w, httptest.NewRequest("GET", "/api/leads", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var res struct {
		Status string       `json:"status"`
		Leads  []model.Lead `json:"leads"`
		Total  int          `json:"total"`
	}
	if err := json.NewDecoder(w.Body).Decode(&res); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if res.Status != "success" || res.Total != 2 || len(res.Leads) != 2 {
		t.Errorf("unexpected body %+v", res)
	}
}

func TestListLeadsHandlerEmptyIsArray(t *testing.T) {
	w := httptest.NewRecorder()
	handler.Boundary("Error fetching leads: ", newController(&MockLeadRepo{}).ListLeads)(w, httptest.NewRequest("GET", "/api/leads", nil))

	if !strings.Contains(w.Body.String(), `"leads":[]`) {
		t.Errorf("expected empty array, got %s", w.Body.String())
	}
}

func TestListLeadsHandlerError(t *testing.T) {
	repo := &MockLeadRepo{listErr: appErrors.NewStorage("list", errors.New("no such table: leads"))}

	w := httptest.NewRecorder()
	handler.Boundary("Error fetching leads: ", newController(repo).ListLeads)(w, httptest.NewRequest("GET", "/api/leads", nil))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	var res handler.ErrorResponse
	_ = json.NewDecoder(w.Body).Decode(&res)
	if res.Message != "Error fetching leads: no such table: leads" {
		t.Errorf("unexpected message %q", res.Message)
	}
}
