package score

import (
	"time"

	"github.com/julienpequegnot/qalam/internal/database"
)

type Score struct {
	DocumentID     int64
	RelevanceScore float64
	ScoredAt       time.Time
}

type Repository struct {
	db *database.DB
}

func NewRepository(db *database.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Upsert(documentID int64, relevance float64) error {
	_, err := r.db.Exec(`
		INSERT INTO scores (document_id, relevance_score, scored_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(document_id) DO UPDATE SET
			relevance_score = excluded.relevance_score,
			scored_at = CURRENT_TIMESTAMP
	`, documentID, relevance)
	return err
}

func (r *Repository) Get(documentID int64) (*Score, error) {
	var s Score
	err := r.db.QueryRow(`
		SELECT document_id, relevance_score, scored_at
		FROM scores WHERE document_id = ?
	`, documentID).Scan(&s.DocumentID, &s.RelevanceScore, &s.ScoredAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *Repository) GetUnscoredDocumentIDs(limit int) ([]int64, error) {
	rows, err := r.db.Query(`
		SELECT d.id FROM documents d
		LEFT JOIN scores s ON d.id = s.document_id
		WHERE s.document_id IS NULL
		ORDER BY d.id
		LIMIT ?
	`, limit)
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
	return ids, rows.Err()
}
