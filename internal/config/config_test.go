package config

import (
	"os"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := Default()

	if !cfg.Scoring.CountEmptyDocuments {
		t.Error("expected empty documents to count by default")
	}
	if cfg.Display.ListLimit != 20 {
		t.Errorf("expected list limit 20, got %d", cfg.Display.ListLimit)
	}
	if len(cfg.Import.Extensions) == 0 {
		t.Error("expected default import extensions")
	}
}

func TestConfigDir(t *testing.T) {
	tmpDir := t.TempDir()
	os.Setenv("QALAM_HOME", tmpDir)
	defer os.Unsetenv("QALAM_HOME")

	dir := Dir()
	if dir != tmpDir {
		t.Errorf("expected %s, got %s", tmpDir, dir)
	}
}

func TestSaveAndLoad(t *testing.T) {
	tmpDir := t.TempDir()
	os.Setenv("QALAM_HOME", tmpDir)
	defer os.Unsetenv("QALAM_HOME")

	cfg := Default()
	cfg.Scoring.CountEmptyDocuments = false
	cfg.Display.ListLimit = 50

	if err := Save(cfg); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if loaded.Scoring.CountEmptyDocuments {
		t.Error("expected count_empty_documents false after reload")
	}
	if loaded.Display.ListLimit != 50 {
		t.Errorf("expected list limit 50, got %d", loaded.Display.ListLimit)
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	os.Setenv("QALAM_HOME", tmpDir)
	defer os.Unsetenv("QALAM_HOME")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.Display.ListLimit != 20 {
		t.Errorf("expected default list limit, got %d", cfg.Display.ListLimit)
	}
}
