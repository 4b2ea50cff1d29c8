// internal/handler/health_handler.go
package handler

import (
	"net/http"
	"time"
)

type HealthHandler struct {
	ServiceName string
	Now         func() time.Time
}

type HealthResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

func NewHealthHandler(serviceName string) *HealthHandler {
	return &HealthHandler{ServiceName: serviceName, Now: time.Now}
}

// Health never fails and has no side effects.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	now := time.Now
	if h.Now != nil {
		now = h.Now
	}
	WriteJSON(w, http.StatusOK, HealthResponse{
		Status:    "success",
		Message:   h.ServiceName + " API is running",
		Timestamp: now().Format(time.RFC3339Nano),
	})
}
