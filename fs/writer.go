// Package fs writes exported articles to disk.
package fs

import (
	"os"
	"path/filepath"
)

// Writer saves export files into a directory with atomic update
// semantics: content lands in a temporary file first and is renamed
// into place, so a crash mid-write never leaves a truncated export.
type Writer struct {
	baseDir string
}

// NewWriter creates a Writer rooted at baseDir. The directory is
// created on first write.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// WriteExport saves content under the given filename and returns the
// written path.
func (w *Writer) WriteExport(name string, content []byte) (string, error) {
	if err := os.MkdirAll(w.baseDir, 0755); err != nil {
		return "", err
	}

	path := filepath.Join(w.baseDir, name)
	tmp := path + ".tmp"

	if err := os.WriteFile(tmp, content, 0644); err != nil {
		return "", err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return "", err
	}
	return path, nil
}
