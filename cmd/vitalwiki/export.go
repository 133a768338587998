package main

import (
	"fmt"
	"strings"

	"github.com/pwalen/vitalwiki"
	"github.com/pwalen/vitalwiki/fs"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	prefix := vitalwiki.WikipediaBaseURL + "/wiki/"
	path, ok := strings.CutPrefix(c.URL, prefix)
	if !ok || path == "" {
		err := vitalwiki.Errorf(vitalwiki.EINVALID, "url must point to a %s article", prefix)
		fmt.Fprintf(deps.Stderr, "error: %s\n", vitalwiki.ErrorMessage(err))
		return err
	}

	article := &vitalwiki.Article{
		Title: vitalwiki.TitleFromPath("/wiki/" + path),
		URL:   c.URL,
	}

	doc, err := deps.Articles.Fetch(deps.Ctx, article)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", vitalwiki.ErrorMessage(err))
		return err
	}

	out, err := writeExport(deps, doc, c.Format, c.Output)
	if err != nil {
		return err
	}
	fmt.Fprintf(deps.Stdout, "Saved %s\n", out)
	return nil
}

// writeExport serializes doc in the given format into dir and returns
// the written path.
func writeExport(deps *Dependencies, doc *vitalwiki.Document, format, dir string) (string, error) {
	var content []byte
	var name string
	switch format {
	case "txt":
		content, name = deps.Articles.ExportText(doc)
	case "pdf":
		var err error
		content, name, err = deps.Articles.ExportPDF(doc)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", vitalwiki.ErrorMessage(err))
			return "", err
		}
	default:
		return "", vitalwiki.Errorf(vitalwiki.EINVALID, "format must be txt or pdf")
	}

	path, err := fs.NewWriter(dir).WriteExport(name, content)
	if err != nil {
		return "", fmt.Errorf("failed to write export: %w", err)
	}
	return path, nil
}
