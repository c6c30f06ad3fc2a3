package database

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// SQLiteSchema creates the client table. Dates are stored as ISO-8601 text.
const SQLiteSchema = `
CREATE TABLE IF NOT EXISTS tb_client (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	cpf TEXT NOT NULL,
	income NUMERIC NOT NULL DEFAULT 0,
	birth_date TEXT NOT NULL,
	children INTEGER NOT NULL DEFAULT 0 CHECK (children >= 0)
);

CREATE INDEX IF NOT EXISTS idx_tb_client_income ON tb_client(income);
`

// InMemorySQLite is the path of a private in-memory database.
const InMemorySQLite = ":memory:"

// NewSQLite opens (or creates) the SQLite database at path and applies the schema.
func NewSQLite(path string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// SQLite allows a single writer; one connection keeps transactions serialized
	// and keeps an in-memory database alive for the lifetime of the handle.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(0)

	if path != InMemorySQLite {
		if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to set busy timeout: %w", err)
	}

	if _, err := db.Exec(SQLiteSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return db, nil
}
