package search

import (
	"time"

	"github.com/julienpequegnot/qalam/internal/database"
)

type Result struct {
	DocumentID int64
	Name       string
	Snippet    string
	Rank       float64
	UpdatedAt  time.Time
}

type Repository struct {
	db *database.DB
}

func NewRepository(db *database.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Search(query string, limit int) ([]Result, error) {
	rows, err := r.db.Query(`
		SELECT
			d.id,
			d.name,
			snippet(documents_fts, 1, '<b>', '</b>', '...', 16) AS snippet,
			bm25(documents_fts) AS rank,
			d.updated_at
		FROM documents_fts
		JOIN documents d ON documents_fts.rowid = d.id
		WHERE documents_fts MATCH ?
		ORDER BY bm25(documents_fts)
		LIMIT ?
	`, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var sr Result
		if err := rows.Scan(&sr.DocumentID, &sr.Name, &sr.Snippet, &sr.Rank, &sr.UpdatedAt); err != nil {
			return nil, err
		}
		results = append(results, sr)
	}
	return results, rows.Err()
}

func (r *Repository) RebuildIndex() error {
	if _, err := r.db.Exec("DELETE FROM documents_fts"); err != nil {
		return err
	}

	_, err := r.db.Exec(`
		INSERT INTO documents_fts (rowid, name, content)
		SELECT d.id, d.name,
		       (SELECT COALESCE(GROUP_CONCAT(content, char(10)), '')
		        FROM (SELECT p.content FROM pages p
		              WHERE p.document_id = d.id
		              ORDER BY p.page_no))
		FROM documents d
	`)
	return err
}
