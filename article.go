package vitalwiki

import (
	"context"
	"net/url"
	"strings"
)

// WikipediaBaseURL is the site pages live under; article paths are
// appended to it to build article URLs.
const WikipediaBaseURL = "https://en.wikipedia.org"

// Category is a topical grouping of articles backed by a single listing
// page whose links enumerate the category's members.
type Category struct {
	Name        string `yaml:"name"`
	ListingPage string `yaml:"listing_page"`
}

// DefaultCategories maps the built-in categories to their vital-article
// listing pages.
var DefaultCategories = []Category{
	{Name: "physics", ListingPage: "Wikipedia:Vital articles/Level/4/Physical sciences"},
	{Name: "technology", ListingPage: "Wikipedia:Vital articles/Level/4/Technology"},
	{Name: "economics", ListingPage: "Wikipedia:Vital articles/Level/4/Society and social sciences"},
}

// Article identifies one article picked from a category.
type Article struct {
	Title    string `json:"title"`
	URL      string `json:"url"`
	Category string `json:"category"`
}

// ArticlePage is the rendered form of one article as returned by the
// upstream content query.
type ArticlePage struct {
	// Title is the display title.
	Title string

	// HTML is the rendered article body.
	HTML string
}

// LinkSource lists the article paths linked from a listing page. The
// full listing is accumulated before returning; a mid-listing failure
// aborts the whole call rather than returning partial results.
type LinkSource interface {
	Links(ctx context.Context, listingPage string) ([]string, error)
}

// PageSource retrieves the rendered HTML and display title of one
// article.
type PageSource interface {
	Page(ctx context.Context, title string) (*ArticlePage, error)
}

// ArticlePath converts an article title to its site-relative path.
func ArticlePath(title string) string {
	return "/wiki/" + url.PathEscape(strings.ReplaceAll(title, " ", "_"))
}

// TitleFromPath recovers an article title from a site-relative path.
// Returns "" if the path is not an article path.
func TitleFromPath(path string) string {
	rest, ok := strings.CutPrefix(path, "/wiki/")
	if !ok || rest == "" {
		return ""
	}
	unescaped, err := url.PathUnescape(rest)
	if err != nil {
		unescaped = rest
	}
	return strings.ReplaceAll(unescaped, "_", " ")
}
