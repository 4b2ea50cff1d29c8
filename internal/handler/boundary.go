// internal/handler/boundary.go
package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	log "github.com/sirupsen/logrus"

	appErrors "github.com/unclebandit/dropthatdebt-backend/internal/errors"
)

// APIFunc is an HTTP handler that reports failure by returning an error.
type APIFunc func(w http.ResponseWriter, r *http.Request) error

type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Boundary turns every error (or panic) escaping fn into the uniform error
// body. Validation errors keep their own message and become 400; everything
// else is a 500 whose message is prefix followed by the failure text.
func Boundary(prefix string, fn APIFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := run(fn, w, r)
		if err == nil {
			return
		}

		if appErrors.IsValidation(err) {
			WriteJSON(w, http.StatusBadRequest, ErrorResponse{Status: "error", Message: err.Error()})
			return
		}

		log.WithFields(log.Fields{
			"method": r.Method,
			"path":   r.URL.Path,
		}).WithError(err).Error("Request failed")

		WriteJSON(w, http.StatusInternalServerError, ErrorResponse{
			Status:  "error",
			Message: prefix + err.Error(),
		})
	}
}

func run(fn APIFunc, w http.ResponseWriter, r *http.Request) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%v", rec)
		}
	}()
	return fn(w, r)
}

// WriteJSON writes v with the given status code.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.WithError(err).Warn("Failed to encode response")
	}
}
