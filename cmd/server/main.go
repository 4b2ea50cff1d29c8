// cmd/server/main.go
package main

import (
	"context"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/unclebandit/dropthatdebt-backend/internal/config"
	"github.com/unclebandit/dropthatdebt-backend/internal/controller"
	"github.com/unclebandit/dropthatdebt-backend/internal/db"
	"github.com/unclebandit/dropthatdebt-backend/internal/handler"
	"github.com/unclebandit/dropthatdebt-backend/internal/queue"
	"github.com/unclebandit/dropthatdebt-backend/internal/repository"
	"github.com/unclebandit/dropthatdebt-backend/internal/router"
	"github.com/unclebandit/dropthatdebt-backend/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	cfg.ConfigureLogging()

	// Init DB
	conn, err := db.Open(cfg)
	if err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}
	defer conn.Close()

	if err := db.Init(context.Background(), conn); err != nil {
		log.Fatalf("failed to initialise schema: %v", err)
	}

	publisher, closePublisher, err := queue.NewPublisher(cfg)
	if err != nil {
		log.Fatalf("failed to start %s event publisher: %v", cfg.QueueBackend, err)
	}
	defer closePublisher()

	leadService := &service.LeadService{
		LeadRepo:  &repository.LeadRepository{DB: conn},
		Publisher: publisher,
		Topic:     cfg.LeadTopic,
	}

	leadController := &controller.LeadController{
		LeadService: leadService,
	}

	r := router.New(handler.NewHealthHandler(cfg.ServiceName), leadController)

	log.WithField("addr", cfg.Addr()).Infof("%s API listening", cfg.ServiceName)
	if err := http.ListenAndServe(cfg.Addr(), r); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
