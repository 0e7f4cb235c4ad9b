// Package editor is the business facade of qalam: document lifecycle,
// file import, keyword search, integrity checks and relevance scoring,
// bound together over the repositories.
package editor

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/julienpequegnot/qalam/internal/config"
	"github.com/julienpequegnot/qalam/internal/database"
	"github.com/julienpequegnot/qalam/internal/document"
	"github.com/julienpequegnot/qalam/internal/importer"
	"github.com/julienpequegnot/qalam/internal/integrity"
	"github.com/julienpequegnot/qalam/internal/score"
	"github.com/julienpequegnot/qalam/internal/scorer"
	"github.com/julienpequegnot/qalam/internal/search"
)

var (
	ErrNilCorpus     = errors.New("nil corpus")
	ErrEmptyName     = errors.New("empty document name")
	ErrEmptyKeyword  = errors.New("empty search keyword")
	ErrInvalidPage   = errors.New("invalid page number")
	ErrAlreadyExists = errors.New("document already exists")
)

type Editor struct {
	cfg      *config.Config
	docs     *document.Repository
	scores   *score.Repository
	searches *search.Repository
}

func New(db *database.DB, cfg *config.Config) *Editor {
	return &Editor{
		cfg:      cfg,
		docs:     document.NewRepository(db),
		scores:   score.NewRepository(db),
		searches: search.NewRepository(db),
	}
}

// PerformTFIDF scores a candidate document against a caller-supplied
// corpus. A nil corpus is rejected outright; an empty (but non-nil)
// corpus surfaces scorer.ErrEmptyCorpus. Blank corpus entries count
// toward the document total unless the configuration says otherwise.
func (e *Editor) PerformTFIDF(corpus []string, doc string) (float64, error) {
	if corpus == nil {
		return 0, ErrNilCorpus
	}
	if !e.cfg.Scoring.CountEmptyDocuments {
		kept := make([]string, 0, len(corpus))
		for _, entry := range corpus {
			if strings.TrimSpace(entry) != "" {
				kept = append(kept, entry)
			}
		}
		corpus = kept
	}
	return scorer.NewCorpus(corpus).Score(doc)
}

// CreateFile stores a new named document. The content hash taken here
// becomes the immutable import hash.
func (e *Editor) CreateFile(name, content string) (*document.Document, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}

	exists, err := e.docs.Exists(name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%s: %w", name, ErrAlreadyExists)
	}

	return e.docs.Create(name, []string{content}, integrity.MD5(content))
}

// UpdatePage replaces one page of a document and refreshes the session
// hash from the resulting full content.
func (e *Editor) UpdatePage(id int64, pageNo int, content string) error {
	if pageNo < 1 {
		return fmt.Errorf("page %d: %w", pageNo, ErrInvalidPage)
	}

	pages, err := e.docs.Pages(id)
	if err != nil {
		return err
	}
	if len(pages) == 0 {
		return document.ErrNotFound
	}
	if pageNo > len(pages) {
		return fmt.Errorf("page %d of %d: %w", pageNo, len(pages), ErrInvalidPage)
	}

	pages[pageNo-1] = content
	sessionHash := integrity.MD5(strings.Join(pages, "\n"))
	return e.docs.UpdatePage(id, pageNo, content, sessionHash)
}

// AppendPage adds a page at the end of a document.
func (e *Editor) AppendPage(id int64, content string) (int, error) {
	pages, err := e.docs.Pages(id)
	if err != nil {
		return 0, err
	}
	if len(pages) == 0 {
		return 0, document.ErrNotFound
	}

	pages = append(pages, content)
	sessionHash := integrity.MD5(strings.Join(pages, "\n"))
	return e.docs.AppendPage(id, content, sessionHash)
}

func (e *Editor) DeleteFile(id int64) error {
	return e.docs.Delete(id)
}

// GetFile looks a document up by name and returns it with its content.
func (e *Editor) GetFile(name string) (*document.Document, string, error) {
	doc, err := e.docs.GetByName(name)
	if err != nil {
		return nil, "", err
	}
	content, err := e.docs.Content(doc.ID)
	if err != nil {
		return nil, "", err
	}
	return doc, content, nil
}

// Get looks a document up by ID and returns it with its content.
func (e *Editor) Get(id int64) (*document.Document, string, error) {
	doc, err := e.docs.Get(id)
	if err != nil {
		return nil, "", err
	}
	content, err := e.docs.Content(id)
	if err != nil {
		return nil, "", err
	}
	return doc, content, nil
}

func (e *Editor) ListFiles(limit int) ([]document.Document, error) {
	return e.docs.List(limit, 0)
}

// ImportFile reads a file from disk and stores it as a document named
// after its base file name.
func (e *Editor) ImportFile(path string) (*document.Document, error) {
	name, content, err := importer.Read(path, e.cfg.Import.Extensions)
	if err != nil {
		return nil, err
	}
	return e.CreateFile(name, content)
}

// SearchKeyword runs a full-text search. The keyword is quoted before
// it reaches the FTS engine so punctuation cannot break the query.
func (e *Editor) SearchKeyword(keyword string, limit int) ([]search.Result, error) {
	if strings.TrimSpace(keyword) == "" {
		return nil, ErrEmptyKeyword
	}
	quoted := `"` + strings.ReplaceAll(keyword, `"`, `""`) + `"`
	return e.searches.Search(quoted, limit)
}

// RankRelevance scores a stored document against the rest of the
// library and persists the result. With no other documents in the
// store the corpus is empty and scorer.ErrEmptyCorpus is returned.
func (e *Editor) RankRelevance(id int64) (float64, error) {
	candidate, err := e.docs.Content(id)
	if err != nil {
		return 0, err
	}

	contents, err := e.docs.AllContents()
	if err != nil {
		return 0, err
	}

	corpus := make([]string, 0, len(contents)-1)
	for docID, content := range contents {
		if docID == id {
			continue
		}
		if !e.cfg.Scoring.CountEmptyDocuments && strings.TrimSpace(content) == "" {
			continue
		}
		corpus = append(corpus, content)
	}

	result, err := scorer.NewCorpus(corpus).Score(candidate)
	if err != nil {
		return 0, err
	}

	if err := e.scores.Upsert(id, result); err != nil {
		return 0, err
	}
	return result, nil
}

// Related holds a similarity match against another stored document.
type Related struct {
	DocumentID int64
	Name       string
	Similarity float64
}

// RelatedDocuments returns the stored documents most similar to the
// given one by TF-IDF cosine similarity, best first.
func (e *Editor) RelatedDocuments(id int64, limit int) ([]Related, error) {
	if _, err := e.docs.Get(id); err != nil {
		return nil, err
	}

	all, err := e.docs.List(1<<30, 0)
	if err != nil {
		return nil, err
	}

	contents := make([]string, len(all))
	target := -1
	for i, d := range all {
		content, err := e.docs.Content(d.ID)
		if err != nil {
			return nil, err
		}
		contents[i] = content
		if d.ID == id {
			target = i
		}
	}
	if target < 0 {
		return nil, document.ErrNotFound
	}

	corpus := scorer.NewCorpus(contents)

	var related []Related
	for i, d := range all {
		if i == target {
			continue
		}
		related = append(related, Related{
			DocumentID: d.ID,
			Name:       d.Name,
			Similarity: corpus.Similarity(target, i),
		})
	}

	sort.Slice(related, func(i, j int) bool {
		if related[i].Similarity != related[j].Similarity {
			return related[i].Similarity > related[j].Similarity
		}
		return related[i].DocumentID < related[j].DocumentID
	})

	if limit > 0 && len(related) > limit {
		related = related[:limit]
	}
	return related, nil
}

// IntegrityReport is the result of verifying one document's hashes
// against its current content.
type IntegrityReport struct {
	DocumentID  int64
	Name        string
	ImportHash  string
	SessionHash string
	Computed    string
	Valid       bool // current content matches the session hash
	Edited      bool // session hash diverged from the import hash
	WellFormed  bool // stored hashes look like digests at all
}

// VerifyIntegrity recomputes a document's content digest and compares
// it against the stored hashes.
func (e *Editor) VerifyIntegrity(id int64) (*IntegrityReport, error) {
	doc, err := e.docs.Get(id)
	if err != nil {
		return nil, err
	}
	content, err := e.docs.Content(id)
	if err != nil {
		return nil, err
	}

	computed := integrity.MD5(content)
	return &IntegrityReport{
		DocumentID:  doc.ID,
		Name:        doc.Name,
		ImportHash:  doc.ImportHash,
		SessionHash: doc.SessionHash,
		Computed:    computed,
		Valid:       integrity.Verify(content, doc.SessionHash),
		Edited:      !strings.EqualFold(doc.ImportHash, doc.SessionHash),
		WellFormed:  integrity.WellFormed(doc.ImportHash) && integrity.WellFormed(doc.SessionHash),
	}, nil
}

// RebuildSearchIndex recreates the full-text index from stored pages.
func (e *Editor) RebuildSearchIndex() error {
	return e.searches.RebuildIndex()
}
