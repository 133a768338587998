package gofpdf_test

import (
	"bytes"
	"testing"

	"github.com/pwalen/vitalwiki"
	"github.com/pwalen/vitalwiki/gofpdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_Render(t *testing.T) {
	t.Parallel()

	t.Run("produces a PDF from layout pages", func(t *testing.T) {
		t.Parallel()

		doc := &vitalwiki.Document{
			Title: "Transistor",
			Blocks: []vitalwiki.ContentBlock{
				{Kind: vitalwiki.BlockHeading2, Text: "History"},
				{Kind: vitalwiki.BlockParagraph, Text: "The first transistor was demonstrated in 1947."},
			},
			References: []vitalwiki.Reference{{Index: 1, Text: "Smith, J. (2001)."}},
		}
		pages := vitalwiki.Layout(doc, vitalwiki.DefaultLayoutConfig())

		out, err := gofpdf.NewRenderer().Render(pages)
		require.NoError(t, err)

		assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
		assert.Contains(t, string(out), "/Count 1")
	})

	t.Run("multi-page layout produces multi-page PDF", func(t *testing.T) {
		t.Parallel()

		doc := &vitalwiki.Document{Title: "Transistor"}
		for i := 0; i < 200; i++ {
			doc.Blocks = append(doc.Blocks, vitalwiki.ContentBlock{
				Kind: vitalwiki.BlockParagraph,
				Text: "A paragraph of body text that occupies one line.",
			})
		}
		pages := vitalwiki.Layout(doc, vitalwiki.DefaultLayoutConfig())
		require.Greater(t, len(pages), 1)

		out, err := gofpdf.NewRenderer().Render(pages)
		require.NoError(t, err)

		assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
	})

	t.Run("empty page list still yields a valid header", func(t *testing.T) {
		t.Parallel()

		out, err := gofpdf.NewRenderer().Render(nil)
		require.NoError(t, err)

		assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
	})
}
