package db

import (
	"database/sql"
	"fmt"
)

// sqliteSchema is the full SQLite schema. AUTOINCREMENT keeps IDs of
// removed rows from being handed out again.
const sqliteSchema = `
CREATE TABLE IF NOT EXISTS items (
    id         INTEGER PRIMARY KEY AUTOINCREMENT,
    item_name  TEXT NOT NULL,
    price      INTEGER,
    quantity   INTEGER,
    created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

// postgresSchema is the full PostgreSQL schema.
const postgresSchema = `
CREATE TABLE IF NOT EXISTS items (
    id         BIGSERIAL PRIMARY KEY,
    item_name  TEXT NOT NULL,
    price      INTEGER,
    quantity   INTEGER,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
`

// EnsureSchema creates all tables if they don't already exist.
func EnsureSchema(db *sql.DB, driver string) error {
	schema := sqliteSchema
	if driver == DriverPostgres {
		schema = postgresSchema
	}

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}
