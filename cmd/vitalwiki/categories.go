package main

import "fmt"

// Run executes the categories command.
func (c *CategoriesCmd) Run(deps *Dependencies) error {
	for _, cat := range deps.Articles.Categories {
		fmt.Fprintf(deps.Stdout, "%-12s  %s\n", cat.Name, cat.ListingPage)
	}
	return nil
}
