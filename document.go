package vitalwiki

import "strconv"

// BlockKind identifies the kind of a content block.
type BlockKind int

// Content block kinds, in order of decreasing prominence.
const (
	BlockHeading2 BlockKind = iota + 1
	BlockHeading3
	BlockParagraph
)

// ContentBlock is one unit of extracted article structure: a section
// heading or a paragraph. Text is whitespace-collapsed and trimmed;
// blocks with empty text are dropped during extraction, never stored.
type ContentBlock struct {
	Kind BlockKind `json:"kind"`
	Text string    `json:"text"`
}

// IsHeading reports whether the block is a level-2 or level-3 heading.
func (b ContentBlock) IsHeading() bool {
	return b.Kind == BlockHeading2 || b.Kind == BlockHeading3
}

// Reference is one cleaned citation entry. Index is 1-based and assigned
// sequentially in document order regardless of numbering in the source.
type Reference struct {
	Index int    `json:"index"`
	Text  string `json:"text"`
}

// String formats the reference as it appears in exported output.
func (r Reference) String() string {
	return "[" + strconv.Itoa(r.Index) + "] " + r.Text
}

// Document is the structured form of one article, produced once per
// content fetch and immutable after construction.
//
// Blocks never contain a heading matching one of the stop-section names
// ("see also", "references", "further reading", "external links"):
// extraction terminates at the first such heading and everything after
// it is discarded.
type Document struct {
	Title      string         `json:"title"`
	Blocks     []ContentBlock `json:"blocks"`
	References []Reference    `json:"references"`
}

// Headings returns the document's heading blocks in order.
func (d *Document) Headings() []ContentBlock {
	var out []ContentBlock
	for _, b := range d.Blocks {
		if b.IsHeading() {
			out = append(out, b)
		}
	}
	return out
}

// Extractor converts an article's rendered HTML into a structured
// document. A missing or empty content container yields an empty but
// valid document, not an error.
type Extractor interface {
	Extract(title, html string) (*Document, error)
}

// Renderer turns laid-out pages into a binary document artifact.
type Renderer interface {
	Render(pages []LayoutPage) ([]byte, error)
}
