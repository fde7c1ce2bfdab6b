// Package testutil opens throwaway databases for repository tests.
package testutil

import (
	"testing"
	"todos/infras/postgres"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3" // sqlite3 driver
	"github.com/stretchr/testify/require"
)

// TodoSchema mirrors migrations/postgres in the sqlite dialect.
const TodoSchema = `
CREATE TABLE users (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	username TEXT NOT NULL UNIQUE,
	hashed_password TEXT NOT NULL,
	active BOOLEAN NOT NULL DEFAULT 1,
	created_at TIMESTAMP NOT NULL,
	modified_at TIMESTAMP NOT NULL
);

CREATE TABLE todos (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	title TEXT NOT NULL,
	description TEXT,
	priority INTEGER NOT NULL CHECK (priority BETWEEN 1 AND 5),
	complete BOOLEAN NOT NULL DEFAULT 0,
	owner_id INTEGER REFERENCES users (id),
	created_at TIMESTAMP NOT NULL,
	modified_at TIMESTAMP NOT NULL
);
`

// NewSQLiteConnection returns an in-memory database with schema applied,
// shared by the read and write pools. It is closed when t finishes.
func NewSQLiteConnection(t *testing.T, schema string) *postgres.Connection {
	t.Helper()

	db, err := sqlx.Open("sqlite3", ":memory:")
	require.NoError(t, err)

	// every connection to :memory: is a new database
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	_, err = db.Exec(schema)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = db.Close()
	})

	return &postgres.Connection{Read: db, Write: db}
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}
