package vital_test

import (
	"context"
	"math/rand/v2"
	"testing"

	"github.com/pwalen/vitalwiki"
	"github.com/pwalen/vitalwiki/mock"
	"github.com/pwalen/vitalwiki/vital"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_Random(t *testing.T) {
	t.Parallel()

	t.Run("picks an article from the category listing", func(t *testing.T) {
		t.Parallel()

		svc := &vital.Service{
			Links: &mock.LinkSource{
				LinksFn: func(_ context.Context, listingPage string) ([]string, error) {
					assert.Equal(t, "Wikipedia:Vital articles/Level/4/Technology", listingPage)
					return []string{"/wiki/Transistor"}, nil
				},
			},
			Rand: rand.New(rand.NewPCG(1, 2)),
		}

		article, err := svc.Random(context.Background(), "technology")
		require.NoError(t, err)

		assert.Equal(t, "Transistor", article.Title)
		assert.Equal(t, "https://en.wikipedia.org/wiki/Transistor", article.URL)
		assert.Equal(t, "technology", article.Category)
	})

	t.Run("unknown category is invalid", func(t *testing.T) {
		t.Parallel()

		svc := &vital.Service{
			Links: &mock.LinkSource{
				LinksFn: func(context.Context, string) ([]string, error) {
					t.Fatal("listing must not be fetched for unknown categories")
					return nil, nil
				},
			},
		}

		_, err := svc.Random(context.Background(), "gastronomy")
		require.Error(t, err)
		assert.Equal(t, vitalwiki.EINVALID, vitalwiki.ErrorCode(err))
	})

	t.Run("listing is fetched once per category", func(t *testing.T) {
		t.Parallel()

		var calls int
		svc := &vital.Service{
			Links: &mock.LinkSource{
				LinksFn: func(context.Context, string) ([]string, error) {
					calls++
					return []string{"/wiki/Transistor", "/wiki/Radio"}, nil
				},
			},
			Rand: rand.New(rand.NewPCG(3, 4)),
		}

		ctx := context.Background()
		for i := 0; i < 5; i++ {
			_, err := svc.Random(ctx, "physics")
			require.NoError(t, err)
		}

		assert.Equal(t, 1, calls)
	})

	t.Run("listing failure is not cached", func(t *testing.T) {
		t.Parallel()

		var calls int
		svc := &vital.Service{
			Links: &mock.LinkSource{
				LinksFn: func(context.Context, string) ([]string, error) {
					calls++
					if calls == 1 {
						return nil, vitalwiki.Errorf(vitalwiki.EUNAVAILABLE, "down")
					}
					return []string{"/wiki/Transistor"}, nil
				},
			},
			Rand: rand.New(rand.NewPCG(5, 6)),
		}

		ctx := context.Background()
		_, err := svc.Random(ctx, "physics")
		require.Error(t, err)

		article, err := svc.Random(ctx, "physics")
		require.NoError(t, err)
		assert.Equal(t, "Transistor", article.Title)
		assert.Equal(t, 2, calls)
	})

	t.Run("empty listing is not found", func(t *testing.T) {
		t.Parallel()

		svc := &vital.Service{
			Links: &mock.LinkSource{
				LinksFn: func(context.Context, string) ([]string, error) {
					return nil, nil
				},
			},
		}

		_, err := svc.Random(context.Background(), "physics")
		require.Error(t, err)
		assert.Equal(t, vitalwiki.ENOTFOUND, vitalwiki.ErrorCode(err))
	})

	t.Run("custom categories override defaults", func(t *testing.T) {
		t.Parallel()

		svc := &vital.Service{
			Categories: []vitalwiki.Category{{Name: "maths", ListingPage: "Listing of maths"}},
			Links: &mock.LinkSource{
				LinksFn: func(_ context.Context, listingPage string) ([]string, error) {
					assert.Equal(t, "Listing of maths", listingPage)
					return []string{"/wiki/Topology"}, nil
				},
			},
		}

		_, err := svc.Random(context.Background(), "maths")
		require.NoError(t, err)

		_, err = svc.Random(context.Background(), "physics")
		require.Error(t, err)
		assert.Equal(t, vitalwiki.EINVALID, vitalwiki.ErrorCode(err))
	})
}

func TestService_Fetch(t *testing.T) {
	t.Parallel()

	article := &vitalwiki.Article{
		Title:    "Transistor",
		URL:      "https://en.wikipedia.org/wiki/Transistor",
		Category: "technology",
	}

	t.Run("fetches and extracts the document", func(t *testing.T) {
		t.Parallel()

		svc := &vital.Service{
			Pages: &mock.PageSource{
				PageFn: func(_ context.Context, title string) (*vitalwiki.ArticlePage, error) {
					assert.Equal(t, "Transistor", title)
					return &vitalwiki.ArticlePage{Title: "Transistor", HTML: "<p>hi</p>"}, nil
				},
			},
			Extractor: &mock.Extractor{
				ExtractFn: func(title, html string) (*vitalwiki.Document, error) {
					assert.Equal(t, "Transistor", title)
					assert.Equal(t, "<p>hi</p>", html)
					return &vitalwiki.Document{Title: title}, nil
				},
			},
		}

		doc, err := svc.Fetch(context.Background(), article)
		require.NoError(t, err)
		assert.Equal(t, "Transistor", doc.Title)
	})

	t.Run("falls back to Untitled for empty display title", func(t *testing.T) {
		t.Parallel()

		svc := &vital.Service{
			Pages: &mock.PageSource{
				PageFn: func(context.Context, string) (*vitalwiki.ArticlePage, error) {
					return &vitalwiki.ArticlePage{HTML: "<p>hi</p>"}, nil
				},
			},
			Extractor: &mock.Extractor{
				ExtractFn: func(title, html string) (*vitalwiki.Document, error) {
					return &vitalwiki.Document{Title: title}, nil
				},
			},
		}

		doc, err := svc.Fetch(context.Background(), article)
		require.NoError(t, err)
		assert.Equal(t, "Untitled", doc.Title)
	})

	t.Run("records the view in the read log", func(t *testing.T) {
		t.Parallel()

		var saved []*vitalwiki.ReadLogEntry
		svc := &vital.Service{
			Pages: &mock.PageSource{
				PageFn: func(context.Context, string) (*vitalwiki.ArticlePage, error) {
					return &vitalwiki.ArticlePage{Title: "Transistor", HTML: ""}, nil
				},
			},
			Extractor: &mock.Extractor{
				ExtractFn: func(title, html string) (*vitalwiki.Document, error) {
					return &vitalwiki.Document{Title: title}, nil
				},
			},
			ReadLog: &mock.ReadLog{
				GetFn: func(context.Context) ([]*vitalwiki.ReadLogEntry, error) {
					return []*vitalwiki.ReadLogEntry{{Title: "Cat", URL: "u1"}}, nil
				},
				SetFn: func(_ context.Context, entries []*vitalwiki.ReadLogEntry) error {
					saved = entries
					return nil
				},
			},
		}

		_, err := svc.Fetch(context.Background(), article)
		require.NoError(t, err)

		require.Len(t, saved, 2)
		assert.Equal(t, "Transistor", saved[0].Title)
		assert.Equal(t, article.URL, saved[0].URL)
		assert.Equal(t, "technology", saved[0].Category)
		assert.False(t, saved[0].Date.IsZero())
		assert.Equal(t, "Cat", saved[1].Title)
	})

	t.Run("read log failure does not block reading", func(t *testing.T) {
		t.Parallel()

		svc := &vital.Service{
			Pages: &mock.PageSource{
				PageFn: func(context.Context, string) (*vitalwiki.ArticlePage, error) {
					return &vitalwiki.ArticlePage{Title: "Transistor", HTML: ""}, nil
				},
			},
			Extractor: &mock.Extractor{
				ExtractFn: func(title, html string) (*vitalwiki.Document, error) {
					return &vitalwiki.Document{Title: title}, nil
				},
			},
			ReadLog: &mock.ReadLog{
				GetFn: func(context.Context) ([]*vitalwiki.ReadLogEntry, error) {
					return nil, vitalwiki.Errorf(vitalwiki.EUNAVAILABLE, "backend down")
				},
				SetFn: func(context.Context, []*vitalwiki.ReadLogEntry) error {
					t.Fatal("set must not be called when get fails")
					return nil
				},
			},
		}

		_, err := svc.Fetch(context.Background(), article)
		require.NoError(t, err)
	})

	t.Run("page failure propagates", func(t *testing.T) {
		t.Parallel()

		svc := &vital.Service{
			Pages: &mock.PageSource{
				PageFn: func(context.Context, string) (*vitalwiki.ArticlePage, error) {
					return nil, vitalwiki.Errorf(vitalwiki.EUNAVAILABLE, "down")
				},
			},
			Extractor: &mock.Extractor{
				ExtractFn: func(title, html string) (*vitalwiki.Document, error) {
					t.Fatal("extractor must not run on fetch failure")
					return nil, nil
				},
			},
		}

		_, err := svc.Fetch(context.Background(), article)
		require.Error(t, err)
		assert.Equal(t, vitalwiki.EUNAVAILABLE, vitalwiki.ErrorCode(err))
	})
}

func TestService_Export(t *testing.T) {
	t.Parallel()

	doc := &vitalwiki.Document{
		Title: "C++ (programming language)",
		Blocks: []vitalwiki.ContentBlock{
			{Kind: vitalwiki.BlockParagraph, Text: "A language."},
		},
	}

	t.Run("text export uses sanitized filename", func(t *testing.T) {
		t.Parallel()

		svc := &vital.Service{}

		content, name := svc.ExportText(doc)

		assert.Equal(t, "C__ _programming language_.txt", name)
		assert.Equal(t, vitalwiki.FormatPlainText(doc), string(content))
	})

	t.Run("pdf export renders the layout", func(t *testing.T) {
		t.Parallel()

		svc := &vital.Service{
			Renderer: &mock.Renderer{
				RenderFn: func(pages []vitalwiki.LayoutPage) ([]byte, error) {
					require.NotEmpty(t, pages)
					return []byte("%PDF-stub"), nil
				},
			},
		}

		content, name, err := svc.ExportPDF(doc)
		require.NoError(t, err)

		assert.Equal(t, "C__ _programming language_.pdf", name)
		assert.Equal(t, "%PDF-stub", string(content))
	})

	t.Run("pdf export without renderer fails", func(t *testing.T) {
		t.Parallel()

		svc := &vital.Service{}

		_, _, err := svc.ExportPDF(doc)
		require.Error(t, err)
	})
}
