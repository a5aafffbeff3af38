package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib" // driver: pgx
	_ "modernc.org/sqlite"             // driver: sqlite
)

type Driver string

const (
	DriverSQLite   Driver = "sqlite"
	DriverPostgres Driver = "postgres"
)

// Open opens a DB and ensures schema exists.
func Open(ctx context.Context, driver Driver, dsn string) (*sql.DB, error) {
	var drvName string
	switch driver {
	case DriverSQLite:
		drvName = "sqlite" // modernc driver
		if dsn == "" {
			dsn = "file:sandbox.db?cache=shared&mode=rwc&_pragma=busy_timeout(5000)"
		}
	case DriverPostgres:
		drvName = "pgx" // pgx stdlib driver
		if dsn == "" {
			dsn = "postgres://localhost:5432/sandbox?sslmode=disable"
		}
	default:
		return nil, fmt.Errorf("unsupported driver: %s", driver)
	}

	db, err := sql.Open(drvName, dsn)
	if err != nil {
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}

	if err := ensureSchema(ctx, db, driver); err != nil {
		return nil, err
	}
	return db, nil
}

func ensureSchema(ctx context.Context, db *sql.DB, driver Driver) error {
	var schema string
	switch driver {
	case DriverSQLite:
		schema = schemaSQLite
	case DriverPostgres:
		schema = schemaPostgres
	}
	_, err := db.ExecContext(ctx, schema)
	return err
}

const schemaSQLite = `
PRAGMA foreign_keys=ON;

CREATE TABLE IF NOT EXISTS interactions (
  id TEXT PRIMARY KEY,
  concept_id TEXT NOT NULL,
  type TEXT NOT NULL,
  definition_json TEXT NOT NULL,
  created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS attempts (
  id TEXT PRIMARY KEY,
  interaction_id TEXT NOT NULL REFERENCES interactions(id) ON DELETE CASCADE,
  concept_id TEXT NOT NULL,
  user_id TEXT NOT NULL,
  user_state_json TEXT NOT NULL,
  score REAL NOT NULL,
  passed INTEGER NOT NULL,
  attempt_count INTEGER NOT NULL,
  hints_used INTEGER NOT NULL,
  time_to_complete_ms INTEGER NOT NULL,
  rating INTEGER NOT NULL,
  feedback TEXT NOT NULL DEFAULT '',
  element_results_json TEXT NOT NULL DEFAULT 'null',
  created_at INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_attempts_interaction_user ON attempts(interaction_id, user_id);

CREATE TABLE IF NOT EXISTS users (
  username TEXT PRIMARY KEY,
  pass_hash TEXT NOT NULL,
  role TEXT NOT NULL,
  created_at INTEGER NOT NULL
);
`

const schemaPostgres = `
CREATE TABLE IF NOT EXISTS interactions (
  id TEXT PRIMARY KEY,
  concept_id TEXT NOT NULL,
  type TEXT NOT NULL,
  definition_json TEXT NOT NULL,
  created_at BIGINT NOT NULL
);

CREATE TABLE IF NOT EXISTS attempts (
  id TEXT PRIMARY KEY,
  interaction_id TEXT NOT NULL REFERENCES interactions(id) ON DELETE CASCADE,
  concept_id TEXT NOT NULL,
  user_id TEXT NOT NULL,
  user_state_json TEXT NOT NULL,
  score DOUBLE PRECISION NOT NULL,
  passed BOOLEAN NOT NULL,
  attempt_count INTEGER NOT NULL,
  hints_used INTEGER NOT NULL,
  time_to_complete_ms BIGINT NOT NULL,
  rating INTEGER NOT NULL,
  feedback TEXT NOT NULL DEFAULT '',
  element_results_json TEXT NOT NULL DEFAULT 'null',
  created_at BIGINT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_attempts_interaction_user ON attempts(interaction_id, user_id);

CREATE TABLE IF NOT EXISTS users (
  username TEXT PRIMARY KEY,
  pass_hash TEXT NOT NULL,
  role TEXT NOT NULL,
  created_at BIGINT NOT NULL
);
`
