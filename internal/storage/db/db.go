package db

import (
	"context"
	"fmt"
	"time"

	"github.com/alipala/mytacoai-mobile/internal/config"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"

	"github.com/jmoiron/sqlx"
)

const schema = `CREATE TABLE IF NOT EXISTS kv_store (
	key        TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	updated_at TIMESTAMP NOT NULL
)`

// InitDB opens the local state store. SQLite is the on-device default; a
// Postgres DSN is accepted for shared deployments.
func InitDB(cfg config.StorageConfig) (*sqlx.DB, error) {
	db, err := sqlx.Open(cfg.Driver, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed open db connect: %w", err)
	}

	if cfg.Driver == "sqlite3" {
		// sqlite serializes writers anyway; one connection avoids SQLITE_BUSY.
		db.SetMaxOpenConns(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed db ping: %w", err)
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed create schema: %w", err)
	}

	return db, nil
}
