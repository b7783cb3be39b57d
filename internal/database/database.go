// Package database manages the PostgreSQL pool behind the website store and
// applies schema migrations with goose. The migration SQL ships embedded in
// the binary.
package database

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed migrations
var embedMigrations embed.FS

const (
	// pingTimeout bounds the startup connectivity check.
	pingTimeout = 5 * time.Second

	// idleConnLifetime releases pooled connections that have sat unused.
	// Every request is a single short round-trip, so idle connections pile
	// up only after traffic bursts.
	idleConnLifetime = 5 * time.Minute
)

// Connect opens a PostgreSQL pool sized for the configured connection
// budget and verifies connectivity before returning.
func Connect(dsn string, maxConns int) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("database open: %w", err)
	}

	db.SetMaxOpenConns(maxConns)
	db.SetMaxIdleConns(maxConns)
	db.SetConnMaxIdleTime(idleConnLifetime)

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("database ping: %w", err)
	}

	slog.Info("database connected", "max_conns", maxConns)
	return db, nil
}

// Migrate brings the websites schema up to date from the embedded goose
// migration files. Safe to run on every startup; applied migrations are
// skipped.
func Migrate(db *sql.DB) error {
	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose set dialect: %w", err)
	}

	if err := goose.Up(db, "migrations"); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	slog.Info("database migrations applied")
	return nil
}
