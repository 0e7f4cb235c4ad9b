package document

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/julienpequegnot/qalam/internal/database"
	"github.com/julienpequegnot/qalam/internal/integrity"
)

func setupTestDB(t *testing.T) *database.DB {
	t.Helper()
	tmpDir := t.TempDir()
	db, err := database.New(filepath.Join(tmpDir, "test.db"))
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	return db
}

func create(t *testing.T, repo *Repository, name, content string) *Document {
	t.Helper()
	doc, err := repo.Create(name, []string{content}, integrity.MD5(content))
	if err != nil {
		t.Fatalf("failed to create document %s: %v", name, err)
	}
	return doc
}

func TestCreateDocument(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	repo := NewRepository(db)
	doc := create(t, repo, "notes.txt", "some content")

	if doc.ID == 0 {
		t.Error("expected non-zero ID")
	}
	if doc.PageCount != 1 {
		t.Errorf("expected 1 page, got %d", doc.PageCount)
	}
	if doc.ImportHash != doc.SessionHash {
		t.Error("expected import and session hashes to match on create")
	}
}

func TestCreateEmptyDocument(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	repo := NewRepository(db)
	doc, err := repo.Create("empty.txt", nil, integrity.MD5(""))
	if err != nil {
		t.Fatalf("failed to create empty document: %v", err)
	}

	if doc.PageCount != 1 {
		t.Errorf("expected an empty first page, got %d pages", doc.PageCount)
	}

	content, err := repo.Content(doc.ID)
	if err != nil {
		t.Fatalf("failed to read content: %v", err)
	}
	if content != "" {
		t.Errorf("expected empty content, got %q", content)
	}
}

func TestGetByName(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	repo := NewRepository(db)
	create(t, repo, "first.txt", "one")
	created := create(t, repo, "second.txt", "two")

	doc, err := repo.GetByName("second.txt")
	if err != nil {
		t.Fatalf("failed to get by name: %v", err)
	}
	if doc.ID != created.ID {
		t.Errorf("expected ID %d, got %d", created.ID, doc.ID)
	}

	_, err = repo.GetByName("missing.txt")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestExists(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	repo := NewRepository(db)
	create(t, repo, "present.txt", "content")

	exists, err := repo.Exists("present.txt")
	if err != nil {
		t.Fatalf("failed to check existence: %v", err)
	}
	if !exists {
		t.Error("expected document to exist")
	}

	exists, err = repo.Exists("absent.txt")
	if err != nil {
		t.Fatalf("failed to check existence: %v", err)
	}
	if exists {
		t.Error("expected document to not exist")
	}
}

func TestListDocuments(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	repo := NewRepository(db)
	create(t, repo, "a.txt", "alpha")
	create(t, repo, "b.txt", "beta")

	docs, err := repo.List(10, 0)
	if err != nil {
		t.Fatalf("failed to list documents: %v", err)
	}
	if len(docs) != 2 {
		t.Errorf("expected 2 documents, got %d", len(docs))
	}
}

func TestUpdatePage(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	repo := NewRepository(db)
	doc := create(t, repo, "doc.txt", "original")

	newHash := integrity.MD5("edited")
	if err := repo.UpdatePage(doc.ID, 1, "edited", newHash); err != nil {
		t.Fatalf("failed to update page: %v", err)
	}

	content, err := repo.Content(doc.ID)
	if err != nil {
		t.Fatalf("failed to read content: %v", err)
	}
	if content != "edited" {
		t.Errorf("expected edited content, got %q", content)
	}

	updated, err := repo.Get(doc.ID)
	if err != nil {
		t.Fatalf("failed to get document: %v", err)
	}
	if updated.SessionHash != newHash {
		t.Error("expected session hash to change after edit")
	}
	if updated.ImportHash != doc.ImportHash {
		t.Error("import hash must not change on edit")
	}
}

func TestUpdateInvalidPage(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	repo := NewRepository(db)
	doc := create(t, repo, "doc.txt", "content")

	err := repo.UpdatePage(doc.ID, 99, "new", integrity.MD5("new"))
	if !errors.Is(err, ErrPageNotFound) {
		t.Errorf("expected ErrPageNotFound, got %v", err)
	}
}

func TestAppendPage(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	repo := NewRepository(db)
	doc := create(t, repo, "doc.txt", "page one")

	pageNo, err := repo.AppendPage(doc.ID, "page two", integrity.MD5("page one\npage two"))
	if err != nil {
		t.Fatalf("failed to append page: %v", err)
	}
	if pageNo != 2 {
		t.Errorf("expected page number 2, got %d", pageNo)
	}

	content, err := repo.Content(doc.ID)
	if err != nil {
		t.Fatalf("failed to read content: %v", err)
	}
	if content != "page one\npage two" {
		t.Errorf("unexpected content: %q", content)
	}
}

func TestDeleteDocument(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	repo := NewRepository(db)
	doc := create(t, repo, "doomed.txt", "content")

	if err := repo.Delete(doc.ID); err != nil {
		t.Fatalf("failed to delete: %v", err)
	}

	_, err := repo.Get(doc.ID)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}

	if err := repo.Delete(doc.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound deleting twice, got %v", err)
	}
}

func TestAllContents(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	repo := NewRepository(db)
	a := create(t, repo, "a.txt", "alpha words")
	b := create(t, repo, "b.txt", "beta words")

	contents, err := repo.AllContents()
	if err != nil {
		t.Fatalf("failed to read all contents: %v", err)
	}
	if len(contents) != 2 {
		t.Fatalf("expected 2 contents, got %d", len(contents))
	}
	if contents[a.ID] != "alpha words" || contents[b.ID] != "beta words" {
		t.Errorf("unexpected contents: %v", contents)
	}
}

func TestMultiPageContent(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	repo := NewRepository(db)
	doc, err := repo.Create("multi.txt", []string{"first", "second", "third"}, integrity.MD5("first\nsecond\nthird"))
	if err != nil {
		t.Fatalf("failed to create: %v", err)
	}

	if doc.PageCount != 3 {
		t.Errorf("expected 3 pages, got %d", doc.PageCount)
	}

	content, err := repo.Content(doc.ID)
	if err != nil {
		t.Fatalf("failed to read content: %v", err)
	}
	if content != "first\nsecond\nthird" {
		t.Errorf("unexpected content: %q", content)
	}
}
