package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pwalen/vitalwiki/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter_WriteExport(t *testing.T) {
	t.Parallel()

	t.Run("writes the file and returns its path", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		w := fs.NewWriter(dir)

		path, err := w.WriteExport("Transistor.txt", []byte("Transistor\n=========="))
		require.NoError(t, err)

		assert.Equal(t, filepath.Join(dir, "Transistor.txt"), path)
		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "Transistor\n==========", string(content))
	})

	t.Run("creates the directory when missing", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "exports")
		w := fs.NewWriter(dir)

		_, err := w.WriteExport("a.txt", []byte("a"))
		require.NoError(t, err)

		_, err = os.Stat(filepath.Join(dir, "a.txt"))
		assert.NoError(t, err)
	})

	t.Run("overwrite replaces content without leftovers", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		w := fs.NewWriter(dir)

		_, err := w.WriteExport("a.txt", []byte("old"))
		require.NoError(t, err)
		path, err := w.WriteExport("a.txt", []byte("new"))
		require.NoError(t, err)

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "new", string(content))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})
}
