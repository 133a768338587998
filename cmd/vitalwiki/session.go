package main

import (
	"os"
	"path/filepath"
	"strings"
)

// sessionFile persists the session token between invocations.
type sessionFile struct {
	path string
}

// Read returns the stored token, or "" when logged out.
func (f *sessionFile) Read() string {
	buf, err := os.ReadFile(f.path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(buf))
}

// Write stores a token, creating the parent directory when missing.
func (f *sessionFile) Write(token string) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0755); err != nil {
		return err
	}
	return os.WriteFile(f.path, []byte(token+"\n"), 0600)
}

// Clear removes the stored token. A missing file is not an error.
func (f *sessionFile) Clear() error {
	err := os.Remove(f.path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
