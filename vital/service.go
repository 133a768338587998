// Package vital orchestrates the random-article flow: category listing,
// link caching, random selection, content fetch and extraction, export,
// and read-log recording.
package vital

import (
	"context"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/pwalen/vitalwiki"
)

// Service coordinates the upstream sources, the extractor, and the
// optional read log behind the user-facing operations.
//
// All fields except ReadLog and Renderer are required. Operations run
// one at a time per user action; the link cache is the only state
// shared between calls.
type Service struct {
	Links     vitalwiki.LinkSource
	Pages     vitalwiki.PageSource
	Extractor vitalwiki.Extractor

	// Renderer is required for ExportPDF only.
	Renderer vitalwiki.Renderer

	// ReadLog, when set, records every fetched article. Recording
	// failures are non-fatal.
	ReadLog vitalwiki.ReadLog

	// Categories defaults to vitalwiki.DefaultCategories when empty.
	Categories []vitalwiki.Category

	// BaseURL defaults to vitalwiki.WikipediaBaseURL.
	BaseURL string

	// Rand, when set, replaces the global random source. Tests use this
	// for deterministic picks.
	Rand *rand.Rand

	cache LinkCache
}

// category resolves a category by name, case-insensitively.
func (s *Service) category(name string) (vitalwiki.Category, bool) {
	cats := s.Categories
	if len(cats) == 0 {
		cats = vitalwiki.DefaultCategories
	}
	for _, c := range cats {
		if strings.EqualFold(c.Name, name) {
			return c, true
		}
	}
	return vitalwiki.Category{}, false
}

func (s *Service) baseURL() string {
	if s.BaseURL != "" {
		return s.BaseURL
	}
	return vitalwiki.WikipediaBaseURL
}

func (s *Service) intN(n int) int {
	if s.Rand != nil {
		return s.Rand.IntN(n)
	}
	return rand.IntN(n)
}

// Random picks a random article from the named category. The category's
// link listing is fetched at most once per process lifetime and cached
// in memory; a listing failure is not cached.
func (s *Service) Random(ctx context.Context, categoryName string) (*vitalwiki.Article, error) {
	cat, ok := s.category(categoryName)
	if !ok {
		return nil, vitalwiki.Errorf(vitalwiki.EINVALID, "unknown category %q", categoryName)
	}

	links, err := s.cache.GetOrPopulate(cat.Name, func() ([]string, error) {
		return s.Links.Links(ctx, cat.ListingPage)
	})
	if err != nil {
		return nil, err
	}
	if len(links) == 0 {
		return nil, vitalwiki.Errorf(vitalwiki.ENOTFOUND, "no articles found for category %q", cat.Name)
	}

	path := links[s.intN(len(links))]
	return &vitalwiki.Article{
		Title:    vitalwiki.TitleFromPath(path),
		URL:      s.baseURL() + path,
		Category: cat.Name,
	}, nil
}

// Fetch retrieves and extracts the article's content, and records the
// view in the read log when one is configured. The document is built
// once per call and never cached.
func (s *Service) Fetch(ctx context.Context, article *vitalwiki.Article) (*vitalwiki.Document, error) {
	page, err := s.Pages.Page(ctx, article.Title)
	if err != nil {
		return nil, err
	}

	title := page.Title
	if title == "" {
		title = "Untitled"
	}

	doc, err := s.Extractor.Extract(title, page.HTML)
	if err != nil {
		return nil, err
	}

	s.recordView(ctx, article, title)

	return doc, nil
}

// recordView appends the article to the read log, deduplicating by URL.
// Failures are swallowed: a broken log must not block reading.
func (s *Service) recordView(ctx context.Context, article *vitalwiki.Article, title string) {
	if s.ReadLog == nil {
		return
	}
	entries, err := s.ReadLog.Get(ctx)
	if err != nil {
		return
	}
	entries = vitalwiki.AddReadLogEntry(entries, &vitalwiki.ReadLogEntry{
		Title:    title,
		URL:      article.URL,
		Category: article.Category,
		Date:     time.Now().UTC(),
	})
	_ = s.ReadLog.Set(ctx, entries)
}

// ExportText serializes the document as plain text and returns the
// content with its sanitized filename.
func (s *Service) ExportText(doc *vitalwiki.Document) ([]byte, string) {
	return []byte(vitalwiki.FormatPlainText(doc)), vitalwiki.SafeFilename(doc.Title) + ".txt"
}

// ExportPDF lays the document out and renders it, returning the PDF
// bytes with their sanitized filename.
func (s *Service) ExportPDF(doc *vitalwiki.Document) ([]byte, string, error) {
	if s.Renderer == nil {
		return nil, "", vitalwiki.Errorf(vitalwiki.EINTERNAL, "no PDF renderer configured")
	}
	pages := vitalwiki.Layout(doc, vitalwiki.DefaultLayoutConfig())
	out, err := s.Renderer.Render(pages)
	if err != nil {
		return nil, "", err
	}
	return out, vitalwiki.SafeFilename(doc.Title) + ".pdf", nil
}
