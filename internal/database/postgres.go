package database

import (
	"context"
	"database/sql"
	"log"
	"time"

	"go-frameshop/internal/config"

	_ "github.com/lib/pq"
	"go.uber.org/fx"
)

// PostgresDB wraps the shared connection pool for the relational store.
type PostgresDB struct {
	DB *sql.DB
}

// NewPostgres opens the Postgres pool with lifecycle management. The handle is
// constructed once at startup and injected everywhere; nothing opens ambient
// connections at import time.
func NewPostgres(lc fx.Lifecycle, cfg *config.Config) (*PostgresDB, error) {
	db, err := sql.Open("postgres", cfg.PostgresURI)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	log.Println("Connected to Postgres!")

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			log.Println("Closing Postgres pool...")
			return db.Close()
		},
	})

	return &PostgresDB{DB: db}, nil
}
