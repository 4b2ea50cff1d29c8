// internal/router/router.go
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/unclebandit/dropthatdebt-backend/internal/controller"
	"github.com/unclebandit/dropthatdebt-backend/internal/handler"
)

// New wires every route behind an allow-all CORS policy.
func New(health *handler.HealthHandler, leads *controller.LeadController) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"*"},
		MaxAge:         300,
	}))

	r.Get("/", health.Health)

	r.Post("/api/leads", handler.Boundary("Error creating lead: ", leads.CreateLead))
	r.Get("/api/leads", handler.Boundary("Error fetching leads: ", leads.ListLeads))

	return r
}
