package vitalwiki

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxFilenameLength is the maximum length of a sanitized filename stem.
const MaxFilenameLength = 80

// FormatPlainText serializes a document into a single plain-text blob:
// a title banner (title plus an '=' underline of the same length), the
// body, and a References section when references exist.
//
// The exact spacing is part of the contract: headings get one blank
// line before them and a line break after, paragraphs are adjacent
// lines, and references are separated by blank lines.
func FormatPlainText(doc *Document) string {
	parts := make([]string, 0, len(doc.Blocks))
	for _, b := range doc.Blocks {
		if b.IsHeading() {
			parts = append(parts, "\n\n"+b.Text+"\n")
		} else {
			parts = append(parts, b.Text)
		}
	}
	body := strings.TrimSpace(strings.Join(parts, "\n"))

	sections := []string{
		doc.Title,
		strings.Repeat("=", utf8.RuneCountInString(doc.Title)),
		"",
		body,
	}

	if len(doc.References) > 0 {
		refs := make([]string, 0, len(doc.References))
		for _, r := range doc.References {
			refs = append(refs, r.String())
		}
		sections = append(sections, "", "References", "", strings.Join(refs, "\n\n"))
	}

	return strings.Join(sections, "\n")
}

// SafeFilename converts an article title into a filename stem: any rune
// outside letters, digits, space, hyphen, and underscore becomes '_',
// and the result is truncated to MaxFilenameLength runes.
func SafeFilename(title string) string {
	var b strings.Builder
	n := 0
	for _, r := range title {
		if n >= MaxFilenameLength {
			break
		}
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == ' ' || r == '-' || r == '_' {
			b.WriteRune(r)
		} else {
			b.WriteRune('_')
		}
		n++
	}
	return b.String()
}
