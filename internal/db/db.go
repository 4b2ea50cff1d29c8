// internal/db/db.go
package db

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	log "github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"

	"github.com/unclebandit/dropthatdebt-backend/internal/config"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS leads (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    email TEXT NOT NULL,
    phone TEXT,
    debt_amount REAL,
    debt_type TEXT,
    quiz_answers TEXT,
    created_at TIMESTAMP DEFAULT (strftime('%Y-%m-%d %H:%M:%f', 'now')),
    status TEXT DEFAULT 'new',
    notes TEXT
)`

const postgresSchema = `
CREATE TABLE IF NOT EXISTS leads (
    id BIGSERIAL PRIMARY KEY,
    name TEXT NOT NULL,
    email TEXT NOT NULL,
    phone TEXT,
    debt_amount DOUBLE PRECISION,
    debt_type TEXT,
    quiz_answers TEXT,
    created_at TIMESTAMPTZ DEFAULT NOW(),
    status TEXT DEFAULT 'new',
    notes TEXT
)`

// Open returns a handle that does not keep idle connections around, so every
// connection taken from it is dialled for one operation and closed after.
func Open(cfg *config.Config) (*sqlx.DB, error) {
	driver, dsn, err := dataSource(cfg)
	if err != nil {
		return nil, err
	}

	conn, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s db: %w", driver, err)
	}
	conn.SetMaxIdleConns(0)

	if err := conn.Ping(); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("ping %s db: %w", driver, err)
	}

	log.WithField("driver", driver).Info("Connected to database")
	return conn, nil
}

func dataSource(cfg *config.Config) (string, string, error) {
	switch cfg.DBDriver {
	case config.DriverSQLite:
		path := strings.TrimSpace(cfg.DBPath)
		if path == "" {
			return "", "", fmt.Errorf("storage path is required")
		}
		return "sqlite", filepath.Clean(path) + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", nil
	case config.DriverPostgres:
		return "postgres", cfg.DatabaseURL, nil
	}
	return "", "", fmt.Errorf("unsupported driver %q", cfg.DBDriver)
}

// Init creates the leads table when it does not exist yet. Safe to run on
// every start.
func Init(ctx context.Context, db *sqlx.DB) error {
	schema := sqliteSchema
	if db.DriverName() == "postgres" {
		schema = postgresSchema
	}

	conn, err := db.Connx(ctx)
	if err != nil {
		return fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Close()

	if _, err := conn.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("create leads table: %w", err)
	}
	return nil
}
