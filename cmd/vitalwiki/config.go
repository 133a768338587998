package main

import (
	"fmt"
	"os"

	"github.com/pwalen/vitalwiki"
	"gopkg.in/yaml.v3"
)

// categoriesFile is the YAML shape of a category override file:
//
//	categories:
//	  - name: physics
//	    listing_page: Wikipedia:Vital articles/Level/4/Physical sciences
type categoriesFile struct {
	Categories []vitalwiki.Category `yaml:"categories"`
}

// loadCategories reads a category override file.
func loadCategories(path string) ([]vitalwiki.Category, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var f categoriesFile
	if err := yaml.Unmarshal(buf, &f); err != nil {
		return nil, err
	}
	if len(f.Categories) == 0 {
		return nil, fmt.Errorf("no categories defined")
	}
	for _, c := range f.Categories {
		if c.Name == "" || c.ListingPage == "" {
			return nil, fmt.Errorf("category entries need both name and listing_page")
		}
	}
	return f.Categories, nil
}
