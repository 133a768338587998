// Package goquery implements article content extraction over a parsed
// HTML tree using CSS selectors.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/pwalen/vitalwiki"
)

// contentSelector locates the article's content container. Full article
// pages wrap the content in #mw-content-text; the parse API returns the
// .mw-parser-output div directly.
const contentSelector = "#mw-content-text, .mw-parser-output"

// excludedSelector matches elements that never contribute text, even as
// descendants of content blocks: scripts, styles, navboxes, infobox
// tables, and figures.
const excludedSelector = "script, style, nav, table, figure"

// stopHeadings are the boilerplate section names that terminate body
// collection. Everything after the first matching heading is discarded.
var stopHeadings = map[string]bool{
	"see also":        true,
	"references":      true,
	"further reading": true,
	"external links":  true,
}

// Compile-time interface verification.
var _ vitalwiki.Extractor = (*Extractor)(nil)

// Extractor converts rendered article HTML into a structured document.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract walks the content container in document order collecting h2,
// h3, and p blocks, stopping entirely at the first stop heading, and
// separately collects the cleaned citation list items as sequentially
// numbered references.
//
// A missing content container or an article with no matching elements
// yields an empty but valid document.
func (e *Extractor) Extract(title, html string) (*vitalwiki.Document, error) {
	root, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, vitalwiki.Errorf(vitalwiki.EINVALID, "parsing article HTML: %v", err)
	}

	doc := &vitalwiki.Document{Title: title}

	content := root.Find(contentSelector).First()
	if content.Length() == 0 {
		return doc, nil
	}

	content.Find(excludedSelector).Remove()

	content.Find("h2, h3, p").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		text := normalizeText(sel.Text())
		if text == "" {
			return true
		}
		switch goquery.NodeName(sel) {
		case "h2":
			if stopHeadings[strings.ToLower(text)] {
				return false
			}
			doc.Blocks = append(doc.Blocks, vitalwiki.ContentBlock{Kind: vitalwiki.BlockHeading2, Text: text})
		case "h3":
			if stopHeadings[strings.ToLower(text)] {
				return false
			}
			doc.Blocks = append(doc.Blocks, vitalwiki.ContentBlock{Kind: vitalwiki.BlockHeading3, Text: text})
		default:
			doc.Blocks = append(doc.Blocks, vitalwiki.ContentBlock{Kind: vitalwiki.BlockParagraph, Text: text})
		}
		return true
	})

	// References live after the stop heading and are collected
	// independently of body traversal.
	content.Find(`li[id^="cite_note-"]`).Each(func(_ int, sel *goquery.Selection) {
		text := vitalwiki.CleanReferenceText(normalizeText(sel.Text()))
		if text == "" {
			return
		}
		doc.References = append(doc.References, vitalwiki.Reference{
			Index: len(doc.References) + 1,
			Text:  text,
		})
	})

	return doc, nil
}

// normalizeText collapses runs of whitespace to single spaces and trims
// both ends.
func normalizeText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
