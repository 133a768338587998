package mock

import "github.com/pwalen/vitalwiki"

var _ vitalwiki.Renderer = (*Renderer)(nil)

// Renderer is a mock implementation of vitalwiki.Renderer.
type Renderer struct {
	RenderFn func(pages []vitalwiki.LayoutPage) ([]byte, error)
}

func (r *Renderer) Render(pages []vitalwiki.LayoutPage) ([]byte, error) {
	return r.RenderFn(pages)
}
