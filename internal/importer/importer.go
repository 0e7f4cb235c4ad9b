// Package importer reads editor documents from files on disk.
package importer

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var ErrUnsupportedType = errors.New("unsupported file type")

// Extension returns the lowercased extension of a file name including
// the leading dot. Hidden files like ".gitignore" and names without a
// dot have no extension. Only the part after the last dot counts, so
// "archive.tar.gz" is ".gz".
func Extension(name string) string {
	base := filepath.Base(name)
	idx := strings.LastIndex(base, ".")
	if idx <= 0 {
		return ""
	}
	return strings.ToLower(base[idx:])
}

// Read loads a document from path. The extension must be in allowed
// (compared case-insensitively); HTML files are reduced to their text
// content, everything else is taken verbatim. The returned name is the
// base file name.
func Read(path string, allowed []string) (name, content string, err error) {
	ext := Extension(path)
	if !extensionAllowed(ext, allowed) {
		return "", "", fmt.Errorf("%s: %w", path, ErrUnsupportedType)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", fmt.Errorf("failed to read %s: %w", path, err)
	}

	content = string(data)
	if ext == ".html" || ext == ".htm" {
		content, err = extractHTML(content)
		if err != nil {
			return "", "", fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}

	return filepath.Base(path), content, nil
}

func extensionAllowed(ext string, allowed []string) bool {
	if ext == "" {
		return false
	}
	for _, a := range allowed {
		if strings.EqualFold(ext, a) {
			return true
		}
	}
	return false
}

// extractHTML reduces an HTML document to its visible text. Script and
// style bodies are removed before extraction, and whitespace runs are
// collapsed.
func extractHTML(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", err
	}

	doc.Find("script, style, noscript").Remove()

	text := doc.Find("body").Text()
	if strings.TrimSpace(text) == "" {
		text = doc.Text()
	}

	return strings.Join(strings.Fields(text), " "), nil
}
