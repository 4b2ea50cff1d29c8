//cmd/seeder/main.go
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/unclebandit/dropthatdebt-backend/internal/config"
	"github.com/unclebandit/dropthatdebt-backend/internal/db"
	"github.com/unclebandit/dropthatdebt-backend/internal/repository"
	"github.com/unclebandit/dropthatdebt-backend/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	cfg.ConfigureLogging()

	conn, err := db.Open(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	ctx := context.Background()
	if err := db.Init(ctx, conn); err != nil {
		log.Fatal(err)
	}

	f, err := os.Open(cfg.SeedFile)
	if err != nil {
		log.Fatalf("failed to read %s: %v", cfg.SeedFile, err)
	}
	defer f.Close()

	svc := &service.LeadService{LeadRepo: &repository.LeadRepository{DB: conn}}
	n, err := seed(ctx, svc, f)
	if err != nil {
		log.Fatalf("failed to seed %s: %v", cfg.SeedFile, err)
	}

	fmt.Printf("Seeded %d leads from %s\n", n, cfg.SeedFile)
}

func seed(ctx context.Context, svc *service.LeadService, r io.Reader) (int, error) {
	var inputs []service.CreateLeadInput
	if err := json.NewDecoder(r).Decode(&inputs); err != nil {
		return 0, fmt.Errorf("decode seed file: %w", err)
	}

	for i, in := range inputs {
		if _, err := svc.CreateLead(ctx, in); err != nil {
			return i, fmt.Errorf("lead #%d: %w", i+1, err)
		}
	}
	return len(inputs), nil
}
