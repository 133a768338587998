package mock

import "github.com/pwalen/vitalwiki"

var _ vitalwiki.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of vitalwiki.Extractor.
type Extractor struct {
	ExtractFn func(title, html string) (*vitalwiki.Document, error)
}

func (e *Extractor) Extract(title, html string) (*vitalwiki.Document, error) {
	return e.ExtractFn(title, html)
}
