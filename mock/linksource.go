package mock

import (
	"context"

	"github.com/pwalen/vitalwiki"
)

var _ vitalwiki.LinkSource = (*LinkSource)(nil)

// LinkSource is a mock implementation of vitalwiki.LinkSource.
type LinkSource struct {
	LinksFn func(ctx context.Context, listingPage string) ([]string, error)
}

func (s *LinkSource) Links(ctx context.Context, listingPage string) ([]string, error) {
	return s.LinksFn(ctx, listingPage)
}
