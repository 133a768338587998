package main

import (
	"fmt"

	"github.com/pwalen/vitalwiki"
)

// Run executes the random command.
func (c *RandomCmd) Run(deps *Dependencies) error {
	article, err := deps.Articles.Random(deps.Ctx, c.Category)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", vitalwiki.ErrorMessage(err))
		return err
	}

	if c.Format == "" {
		fmt.Fprintf(deps.Stdout, "%s\n%s\n", article.Title, article.URL)
		return nil
	}

	doc, err := deps.Articles.Fetch(deps.Ctx, article)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", vitalwiki.ErrorMessage(err))
		return err
	}

	path, err := writeExport(deps, doc, c.Format, c.Output)
	if err != nil {
		return err
	}
	fmt.Fprintf(deps.Stdout, "Saved %s\n", path)
	return nil
}
