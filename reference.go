package vitalwiki

import "strings"

// cleanLookahead is how far into the remaining text a stray '>' may
// appear for a leading label run ending in whitespace to count as noise.
const cleanLookahead = 20

// CleanReferenceText strips citation backlink cruft from the raw text of
// one citation list item: the leading caret marker, "Jump up" / "a b c"
// style backlink labels, and the orphaned '>' characters left behind
// when markup tags are stripped upstream.
//
// The loop repeatedly removes a leading run of letters and spaces, but
// only when the run is followed by end-of-string, a stray '>', or
// whitespace with a '>' nearby. The '>' gate is what keeps legitimate
// reference text (author names, titles) from being eaten.
//
// A reference whose entire text is noise reduces to the empty string;
// callers must drop it rather than emit an empty reference.
func CleanReferenceText(raw string) string {
	text := strings.TrimSpace(raw)
	if strings.HasPrefix(text, "^") {
		text = strings.TrimSpace(text[1:])
	}

	for text != "" {
		i := 0
		for i < len(text) && isLabelByte(text[i]) {
			i++
		}
		if i == 0 {
			break
		}

		window := text
		if len(window) > cleanLookahead {
			window = window[:cleanLookahead]
		}
		if i == len(text) || text[i] == '>' || (isSpaceByte(text[i]) && strings.Contains(window, ">")) {
			text = strings.TrimSpace(text[i:])
			text = strings.TrimSpace(strings.TrimLeft(text, ">"))
			continue
		}
		break
	}

	return text
}

// isLabelByte reports whether b can be part of a backlink label run.
// Letters match case-insensitively so capitalized labels like "Jump up"
// are removed along with lowercase "a b c" runs.
func isLabelByte(b byte) bool {
	lower := b | 0x20
	return (lower >= 'a' && lower <= 'z') || b == ' '
}

func isSpaceByte(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}
