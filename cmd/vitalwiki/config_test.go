package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestLoadCategories(t *testing.T) {
	t.Parallel()

	t.Run("parses a valid file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "categories.yaml")
		writeFile(t, path, `
categories:
  - name: physics
    listing_page: "Wikipedia:Vital articles/Level/4/Physical sciences"
  - name: maths
    listing_page: "Wikipedia:Vital articles/Level/4/Mathematics"
`)

		cats, err := loadCategories(path)
		require.NoError(t, err)

		require.Len(t, cats, 2)
		assert.Equal(t, "physics", cats[0].Name)
		assert.Equal(t, "Wikipedia:Vital articles/Level/4/Mathematics", cats[1].ListingPage)
	})

	t.Run("rejects an empty file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "categories.yaml")
		writeFile(t, path, "categories: []\n")

		_, err := loadCategories(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no categories")
	})

	t.Run("rejects entries missing fields", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "categories.yaml")
		writeFile(t, path, "categories:\n  - name: physics\n")

		_, err := loadCategories(path)
		require.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := loadCategories(filepath.Join(t.TempDir(), "absent.yaml"))
		require.Error(t, err)
	})
}

func TestSessionFile(t *testing.T) {
	t.Parallel()

	t.Run("round trips a token", func(t *testing.T) {
		t.Parallel()

		f := &sessionFile{path: filepath.Join(t.TempDir(), "session")}
		require.NoError(t, f.Write("tok-1"))
		assert.Equal(t, "tok-1", f.Read())
	})

	t.Run("write creates the parent directory", func(t *testing.T) {
		t.Parallel()

		f := &sessionFile{path: filepath.Join(t.TempDir(), "data", "session")}
		require.NoError(t, f.Write("tok-1"))
		assert.Equal(t, "tok-1", f.Read())
	})

	t.Run("missing file reads as logged out", func(t *testing.T) {
		t.Parallel()

		f := &sessionFile{path: filepath.Join(t.TempDir(), "session")}
		assert.Equal(t, "", f.Read())
	})

	t.Run("clear removes the token", func(t *testing.T) {
		t.Parallel()

		f := &sessionFile{path: filepath.Join(t.TempDir(), "session")}
		require.NoError(t, f.Write("tok-1"))
		require.NoError(t, f.Clear())
		assert.Equal(t, "", f.Read())

		require.NoError(t, f.Clear())
	})
}
