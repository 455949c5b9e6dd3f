// Package store is the local replica of the hosted relational store:
// brands, images, styles, plans, user_credits and designs, kept in a
// SQLite file. Writes publish row-change events to the realtime hub,
// mirroring the hosted push subscription.
package store

import (
	"embed"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/forgeline/brandforge/internal/realtime"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// Store provides repository methods over the local database.
type Store struct {
	dbConn *sqlx.DB
	hub    *realtime.Hub
}

// New wraps an open database connection. The hub may be nil when no
// realtime consumers exist (one-shot CLI commands).
func New(db *sqlx.DB, hub *realtime.Hub) *Store {
	return &Store{dbConn: db, hub: hub}
}

// Close terminates the database connection.
func (s *Store) Close() error {
	if err := s.dbConn.Close(); err != nil {
		return fmt.Errorf("closing store: %w", err)
	}
	return nil
}

// Open connects to the SQLite database at path and applies all pending
// migrations. WAL mode and foreign keys are enabled; the connection
// pool is capped at one connection, which SQLite requires for safe
// concurrent writes.
func Open(path string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("sqlite", fmt.Sprintf("%s?_journal=WAL&_timeout=5000&_fk=true", path))
	if err != nil {
		return nil, fmt.Errorf("connecting to db: %w", err)
	}

	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA foreign_keys = ON;"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(string(goose.DialectSQLite3)); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting dialect for migrations: %w", err)
	}

	if err := goose.Up(db.DB, "migrations"); err != nil {
		db.Close()
		return nil, fmt.Errorf("applying migration: %w", err)
	}

	return db, nil
}

func (s *Store) publish(table string, change realtime.ChangeType, payload map[string]any) {
	if s.hub == nil {
		return
	}
	s.hub.Publish(realtime.Event{Table: table, Type: change, Payload: payload})
}
