// Package vitalwiki turns Wikipedia vital articles into offline reading
// material. It picks a random article from a topical category, extracts
// the article body into a structured document (headings, paragraphs,
// numbered references), and exports it as plain text or a paginated PDF.
// An optional read log records viewed articles locally or against a thin
// remote backend when the user is authenticated.
//
// This package contains domain types, interfaces, and the pure content
// algorithms (reference cleaning, plain-text formatting, page layout),
// following Ben Johnson's Standard Package Layout. Implementations live
// in subdirectories named after their primary dependency (e.g.,
// mediawiki/, goquery/, gofpdf/, sqlite/).
package vitalwiki
