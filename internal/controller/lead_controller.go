// internal/controller/lead_controller.go
package controller

import (
	"encoding/json"
	"net/http"

	appErrors "github.com/unclebandit/dropthatdebt-backend/internal/errors"
	"github.com/unclebandit/dropthatdebt-backend/internal/handler"
	"github.com/unclebandit/dropthatdebt-backend/internal/model"
	"github.com/unclebandit/dropthatdebt-backend/internal/service"
)

type LeadController struct {
	LeadService *service.LeadService
}

type CreateLeadResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	LeadID  int64  `json:"lead_id"`
}

type ListLeadsResponse struct {
	Status string       `json:"status"`
	Leads  []model.Lead `json:"leads"`
	Total  int          `json:"total"`
}

func (c *LeadController) CreateLead(w http.ResponseWriter, r *http.Request) error {
	var body service.CreateLeadInput
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return appErrors.NewSerialization(err)
	}

	id, err := c.LeadService.CreateLead(r.Context(), body)
	if err != nil {
		return err
	}

	handler.WriteJSON(w, http.StatusCreated, CreateLeadResponse{
		Status:  "success",
		Message: "Lead created successfully",
		LeadID:  id,
	})
	return nil
}

func (c *LeadController) ListLeads(w http.ResponseWriter, r *http.Request) error {
	leads, err := c.LeadService.ListLeads(r.Context())
	if err != nil {
		return err
	}

	handler.WriteJSON(w, http.StatusOK, ListLeadsResponse{
		Status: "success",
		Leads:  leads,
		Total:  len(leads),
	})
	return nil
}
