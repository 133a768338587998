package mock

import (
	"context"

	"github.com/pwalen/vitalwiki"
)

var _ vitalwiki.PageSource = (*PageSource)(nil)

// PageSource is a mock implementation of vitalwiki.PageSource.
type PageSource struct {
	PageFn func(ctx context.Context, title string) (*vitalwiki.ArticlePage, error)
}

func (s *PageSource) Page(ctx context.Context, title string) (*vitalwiki.ArticlePage, error) {
	return s.PageFn(ctx, title)
}
