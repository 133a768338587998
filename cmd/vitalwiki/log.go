package main

import (
	"fmt"

	"github.com/pwalen/vitalwiki"
)

// Run executes the log list command.
func (c *LogListCmd) Run(deps *Dependencies) error {
	entries, err := deps.ReadLog.Get(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", vitalwiki.ErrorMessage(err))
		return err
	}

	if len(entries) == 0 {
		fmt.Fprintln(deps.Stdout, "No articles read yet. Use 'vitalwiki random' to pick one.")
		return nil
	}

	for i, e := range entries {
		fmt.Fprintf(deps.Stdout, "%3d  %s  [%s]  %s\n", i+1, e.Date.Format("2006-01-02"), e.Category, e.Title)
	}
	return nil
}

// Run executes the log remove command.
func (c *LogRemoveCmd) Run(deps *Dependencies) error {
	entries, err := deps.ReadLog.Get(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", vitalwiki.ErrorMessage(err))
		return err
	}

	if c.Position < 1 || c.Position > len(entries) {
		err := vitalwiki.Errorf(vitalwiki.EINVALID, "position %d out of range (1-%d)", c.Position, len(entries))
		fmt.Fprintf(deps.Stderr, "error: %s\n", vitalwiki.ErrorMessage(err))
		return err
	}

	removed := entries[c.Position-1]
	entries = vitalwiki.RemoveReadLogEntry(entries, c.Position-1)
	if err := deps.ReadLog.Set(deps.Ctx, entries); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", vitalwiki.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Removed %s\n", removed.Title)
	return nil
}
