package database

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

type DB struct {
	conn *sql.DB
	path string
}

func New(path string) (*DB, error) {
	conn, err := sql.Open("sqlite3", path+"?_foreign_keys=on&_fts5=true")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db := &DB{conn: conn, path: path}
	if err := db.initSchema(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return db, nil
}

func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) Exec(query string, args ...any) (sql.Result, error) {
	return db.conn.Exec(query, args...)
}

func (db *DB) Query(query string, args ...any) (*sql.Rows, error) {
	return db.conn.Query(query, args...)
}

func (db *DB) QueryRow(query string, args ...any) *sql.Row {
	return db.conn.QueryRow(query, args...)
}

func (db *DB) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS documents (
		id INTEGER PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		import_hash TEXT NOT NULL,
		session_hash TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS pages (
		id INTEGER PRIMARY KEY,
		document_id INTEGER NOT NULL REFERENCES documents(id) ON DELETE CASCADE,
		page_no INTEGER NOT NULL,
		content TEXT NOT NULL DEFAULT '',
		UNIQUE(document_id, page_no)
	);

	CREATE TABLE IF NOT EXISTS scores (
		document_id INTEGER PRIMARY KEY REFERENCES documents(id) ON DELETE CASCADE,
		relevance_score REAL,
		scored_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_pages_document ON pages(document_id, page_no);
	CREATE INDEX IF NOT EXISTS idx_documents_updated ON documents(updated_at DESC);

	CREATE VIRTUAL TABLE IF NOT EXISTS documents_fts USING fts5(
		name,
		content
	);
	`

	_, err := db.conn.Exec(schema)
	return err
}
