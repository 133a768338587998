package vitalwiki

import "strings"

// DrawOp is one positioned text drawing operation on a page. X and Y are
// in points from the top-left corner of the page; Y is the top of the
// text line.
type DrawOp struct {
	Text string
	X    float64
	Y    float64
	Size float64
	Bold bool
}

// LayoutPage is an ordered sequence of draw operations for one fixed-size
// page.
type LayoutPage struct {
	Ops []DrawOp
}

// LayoutConfig holds the fixed page geometry and typography constants for
// the paginator. All values are points.
type LayoutConfig struct {
	PageWidth  float64
	PageHeight float64
	Margin     float64

	TitleSize    float64
	Heading2Size float64
	Heading3Size float64
	BodySize     float64

	// LineHeight is the vertical advance for one wrapped body line.
	LineHeight float64
	// Heading2Advance and Heading3Advance are the fixed advances after a
	// heading is drawn.
	Heading2Advance float64
	Heading3Advance float64
	// ParagraphSpacing is added after the last wrapped line of a
	// paragraph or reference.
	ParagraphSpacing float64
	// TitleSpacing and TOCSpacing trail the title and the table of
	// contents respectively.
	TitleSpacing float64
	TOCSpacing   float64
	// TOCIndent is the extra indent for level-3 headings in the table of
	// contents.
	TOCIndent float64
	// ReferencesGap is the vertical gap before the References heading.
	ReferencesGap float64

	// BottomReserve is subtracted from the bottom margin line to form
	// the page-break threshold; pagination is threshold-based rather
	// than exact-fit.
	BottomReserve float64

	// CharWidthFactor approximates the average glyph width as a fraction
	// of the font size, used for font-metric-free word wrapping.
	CharWidthFactor float64
}

// DefaultLayoutConfig returns the layout constants for US Letter pages
// with one-inch margins.
func DefaultLayoutConfig() LayoutConfig {
	return LayoutConfig{
		PageWidth:  612,
		PageHeight: 792,
		Margin:     72,

		TitleSize:    22,
		Heading2Size: 14,
		Heading3Size: 12,
		BodySize:     10,

		LineHeight:       14,
		Heading2Advance:  26,
		Heading3Advance:  22,
		ParagraphSpacing: 6,
		TitleSpacing:     12,
		TOCSpacing:       12,
		TOCIndent:        18,
		ReferencesGap:    18,

		BottomReserve: 36,

		CharWidthFactor: 0.5,
	}
}

// ContentWidth returns the horizontal space available for text.
func (c LayoutConfig) ContentWidth() float64 {
	return c.PageWidth - 2*c.Margin
}

// bottomThreshold is the cursor position past which a new page starts.
func (c LayoutConfig) bottomThreshold() float64 {
	return c.PageHeight - c.Margin - c.BottomReserve
}

// maxChars returns how many characters of the given font size fit on one
// content line.
func (c LayoutConfig) maxChars(size float64) int {
	n := int(c.ContentWidth() / (size * c.CharWidthFactor))
	if n < 1 {
		n = 1
	}
	return n
}

// Layout lays the document out across fixed-size pages: title, a table
// of contents when the document has headings or references, the body
// blocks, and the references. Page breaks are triggered whenever the
// running cursor exceeds the bottom threshold before a line is drawn, so
// no draw operation is ever split across pages.
//
// An empty document still produces one valid page containing only the
// title.
func Layout(doc *Document, cfg LayoutConfig) []LayoutPage {
	l := &layouter{cfg: cfg}
	l.newPage()

	// Title, wrapped to content width at the large bold size.
	for _, line := range wrapText(doc.Title, cfg.maxChars(cfg.TitleSize)) {
		l.breakIfNeeded()
		l.draw(line, 0, cfg.TitleSize, true)
		l.y += cfg.TitleSize + 4
	}
	l.y += cfg.TitleSpacing

	headings := doc.Headings()
	if len(headings) > 0 || len(doc.References) > 0 {
		l.breakIfNeeded()
		l.draw("Table of Contents", 0, cfg.Heading2Size, true)
		l.y += cfg.Heading2Advance
		for _, h := range headings {
			indent := 0.0
			if h.Kind == BlockHeading3 {
				indent = cfg.TOCIndent
			}
			l.breakIfNeeded()
			l.draw(h.Text, indent, cfg.BodySize, false)
			l.y += cfg.LineHeight
		}
		if len(doc.References) > 0 {
			l.breakIfNeeded()
			l.draw("References", 0, cfg.BodySize, false)
			l.y += cfg.LineHeight
		}
		l.y += cfg.TOCSpacing
	}

	for _, b := range doc.Blocks {
		switch b.Kind {
		case BlockHeading2:
			l.breakIfNeeded()
			l.draw(b.Text, 0, cfg.Heading2Size, true)
			l.y += cfg.Heading2Advance
		case BlockHeading3:
			l.breakIfNeeded()
			l.draw(b.Text, 0, cfg.Heading3Size, true)
			l.y += cfg.Heading3Advance
		default:
			l.drawWrapped(b.Text)
		}
	}

	if len(doc.References) > 0 {
		l.y += cfg.ReferencesGap
		l.breakIfNeeded()
		l.draw("References", 0, cfg.Heading2Size, true)
		l.y += cfg.Heading2Advance
		for _, r := range doc.References {
			l.drawWrapped(r.String())
		}
	}

	return l.pages
}

type layouter struct {
	cfg   LayoutConfig
	pages []LayoutPage
	y     float64
}

func (l *layouter) newPage() {
	l.pages = append(l.pages, LayoutPage{})
	l.y = l.cfg.Margin
}

func (l *layouter) breakIfNeeded() {
	if l.y > l.cfg.bottomThreshold() {
		l.newPage()
	}
}

func (l *layouter) draw(text string, indent, size float64, bold bool) {
	p := &l.pages[len(l.pages)-1]
	p.Ops = append(p.Ops, DrawOp{
		Text: text,
		X:    l.cfg.Margin + indent,
		Y:    l.y,
		Size: size,
		Bold: bold,
	})
}

// drawWrapped word-wraps text at the body size and draws it line by
// line, checking the page-break threshold before each line.
func (l *layouter) drawWrapped(text string) {
	for _, line := range wrapText(text, l.cfg.maxChars(l.cfg.BodySize)) {
		l.breakIfNeeded()
		l.draw(line, 0, l.cfg.BodySize, false)
		l.y += l.cfg.LineHeight
	}
	l.y += l.cfg.ParagraphSpacing
}

// wrapText greedily wraps text into lines of at most maxChars runes,
// breaking at spaces. A single word longer than maxChars gets its own
// line rather than being split.
func wrapText(text string, maxChars int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	line := words[0]
	count := len([]rune(words[0]))
	for _, w := range words[1:] {
		wlen := len([]rune(w))
		if count+1+wlen > maxChars {
			lines = append(lines, line)
			line = w
			count = wlen
			continue
		}
		line += " " + w
		count += 1 + wlen
	}
	return append(lines, line)
}
