package document

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/julienpequegnot/qalam/internal/database"
)

var (
	ErrNotFound     = errors.New("document not found")
	ErrPageNotFound = errors.New("page not found")
)

type Document struct {
	ID             int64
	Name           string
	ImportHash     string
	SessionHash    string
	CreatedAt      time.Time
	UpdatedAt      time.Time
	PageCount      int
	RelevanceScore *float64
}

type Repository struct {
	db *database.DB
}

func NewRepository(db *database.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a document with its initial pages. Both hashes start
// equal; the session hash diverges on the first edit.
func (r *Repository) Create(name string, pages []string, contentHash string) (*Document, error) {
	result, err := r.db.Exec(
		`INSERT INTO documents (name, import_hash, session_hash) VALUES (?, ?, ?)`,
		name, contentHash, contentHash,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert document: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	if len(pages) == 0 {
		pages = []string{""}
	}
	for i, content := range pages {
		_, err := r.db.Exec(
			`INSERT INTO pages (document_id, page_no, content) VALUES (?, ?, ?)`,
			id, i+1, content,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to insert page %d: %w", i+1, err)
		}
	}

	if err := r.syncFTS(id); err != nil {
		return nil, err
	}

	return r.Get(id)
}

func (r *Repository) Get(id int64) (*Document, error) {
	var d Document
	var score sql.NullFloat64
	err := r.db.QueryRow(`
		SELECT d.id, d.name, d.import_hash, d.session_hash, d.created_at, d.updated_at,
		       (SELECT COUNT(*) FROM pages p WHERE p.document_id = d.id) AS page_count,
		       COALESCE(s.relevance_score, 0)
		FROM documents d
		LEFT JOIN scores s ON d.id = s.document_id
		WHERE d.id = ?
	`, id).Scan(&d.ID, &d.Name, &d.ImportHash, &d.SessionHash, &d.CreatedAt, &d.UpdatedAt, &d.PageCount, &score)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if score.Valid && score.Float64 != 0 {
		d.RelevanceScore = &score.Float64
	}
	return &d, nil
}

func (r *Repository) GetByName(name string) (*Document, error) {
	var id int64
	err := r.db.QueryRow(`SELECT id FROM documents WHERE name = ?`, name).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return r.Get(id)
}

func (r *Repository) Exists(name string) (bool, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM documents WHERE name = ?`, name).Scan(&count)
	return count > 0, err
}

func (r *Repository) List(limit, offset int) ([]Document, error) {
	rows, err := r.db.Query(`
		SELECT d.id, d.name, d.import_hash, d.session_hash, d.created_at, d.updated_at,
		       (SELECT COUNT(*) FROM pages p WHERE p.document_id = d.id) AS page_count,
		       COALESCE(s.relevance_score, 0)
		FROM documents d
		LEFT JOIN scores s ON d.id = s.document_id
		ORDER BY d.updated_at DESC, d.id DESC
		LIMIT ? OFFSET ?
	`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []Document
	for rows.Next() {
		var d Document
		var score sql.NullFloat64
		if err := rows.Scan(&d.ID, &d.Name, &d.ImportHash, &d.SessionHash, &d.CreatedAt, &d.UpdatedAt, &d.PageCount, &score); err != nil {
			return nil, err
		}
		if score.Valid && score.Float64 != 0 {
			d.RelevanceScore = &score.Float64
		}
		docs = append(docs, d)
	}
	return docs, rows.Err()
}

// Content returns the full text of a document, pages joined in order.
func (r *Repository) Content(id int64) (string, error) {
	rows, err := r.db.Query(
		`SELECT content FROM pages WHERE document_id = ? ORDER BY page_no`,
		id,
	)
	if err != nil {
		return "", err
	}
	defer rows.Close()

	var pages []string
	for rows.Next() {
		var content string
		if err := rows.Scan(&content); err != nil {
			return "", err
		}
		pages = append(pages, content)
	}
	if err := rows.Err(); err != nil {
		return "", err
	}
	if pages == nil {
		return "", ErrNotFound
	}
	return strings.Join(pages, "\n"), nil
}

// Pages returns the page contents of a document in order.
func (r *Repository) Pages(id int64) ([]string, error) {
	rows, err := r.db.Query(
		`SELECT content FROM pages WHERE document_id = ? ORDER BY page_no`,
		id,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pages []string
	for rows.Next() {
		var content string
		if err := rows.Scan(&content); err != nil {
			return nil, err
		}
		pages = append(pages, content)
	}
	return pages, rows.Err()
}

// UpdatePage replaces the content of one page and records the new
// session hash for the whole document. The import hash is never
// touched here.
func (r *Repository) UpdatePage(id int64, pageNo int, content, sessionHash string) error {
	result, err := r.db.Exec(
		`UPDATE pages SET content = ? WHERE document_id = ? AND page_no = ?`,
		content, id, pageNo,
	)
	if err != nil {
		return fmt.Errorf("failed to update page: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("document %d page %d: %w", id, pageNo, ErrPageNotFound)
	}

	_, err = r.db.Exec(
		`UPDATE documents SET session_hash = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		sessionHash, id,
	)
	if err != nil {
		return err
	}

	return r.syncFTS(id)
}

// AppendPage adds a page after the current last page.
func (r *Repository) AppendPage(id int64, content, sessionHash string) (int, error) {
	var next int
	err := r.db.QueryRow(
		`SELECT COALESCE(MAX(page_no), 0) + 1 FROM pages WHERE document_id = ?`, id,
	).Scan(&next)
	if err != nil {
		return 0, err
	}

	_, err = r.db.Exec(
		`INSERT INTO pages (document_id, page_no, content) VALUES (?, ?, ?)`,
		id, next, content,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to append page: %w", err)
	}

	_, err = r.db.Exec(
		`UPDATE documents SET session_hash = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		sessionHash, id,
	)
	if err != nil {
		return 0, err
	}

	return next, r.syncFTS(id)
}

func (r *Repository) Delete(id int64) error {
	result, err := r.db.Exec(`DELETE FROM documents WHERE id = ?`, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("document %d: %w", id, ErrNotFound)
	}

	_, err = r.db.Exec(`DELETE FROM documents_fts WHERE rowid = ?`, id)
	return err
}

// AllContents returns every document's content keyed by ID, for
// corpus building.
func (r *Repository) AllContents() (map[int64]string, error) {
	rows, err := r.db.Query(`SELECT id FROM documents ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	contents := make(map[int64]string, len(ids))
	for _, id := range ids {
		content, err := r.Content(id)
		if err != nil {
			return nil, err
		}
		contents[id] = content
	}
	return contents, nil
}

func (r *Repository) syncFTS(id int64) error {
	content, err := r.Content(id)
	if err != nil {
		return err
	}

	var name string
	if err := r.db.QueryRow(`SELECT name FROM documents WHERE id = ?`, id).Scan(&name); err != nil {
		return err
	}

	if _, err := r.db.Exec(`DELETE FROM documents_fts WHERE rowid = ?`, id); err != nil {
		return err
	}
	_, err = r.db.Exec(
		`INSERT INTO documents_fts (rowid, name, content) VALUES (?, ?, ?)`,
		id, name, content,
	)
	return err
}
