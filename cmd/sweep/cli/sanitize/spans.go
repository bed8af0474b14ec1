package sanitize

import (
	"regexp"
	"strings"
)

// Span is a half-open byte range [Start, End) into the original text.
// Spans are only ever computed against unmodified text; they are invalid as
// soon as the text changes.
type Span struct {
	Start int
	End   int
}

// Position is a 1-based line:column location.
type Position struct {
	Line int
	Col  int
}

// LocateSpans returns the byte ranges of every debug statement and comment
// applicable to lang, without modifying text. The match text of each span is
// exactly the statement or comment token, with no surrounding whitespace.
// Spans from different rules may overlap; they are not merged, sorted across
// rules, or deduplicated.
func LocateSpans(text, lang string) (printSpans, commentSpans []Span) {
	for _, r := range rules {
		if r.Highlight == nil || !r.appliesTo(lang) {
			continue
		}
		found := scan(r.Highlight, text)
		if r.Category == PrintStatement {
			printSpans = append(printSpans, found...)
		} else {
			commentSpans = append(commentSpans, found...)
		}
	}
	return printSpans, commentSpans
}

// scan walks text with a cursor local to this call, starting each search at
// the end of the previous match. Keeping the cursor call-local (rather than
// on a shared matcher) means repeated scans of the same text always start
// from position zero and return identical results.
func scan(re *regexp.Regexp, text string) []Span {
	var spans []Span
	cursor := 0
	for cursor <= len(text) {
		loc := re.FindStringIndex(text[cursor:])
		if loc == nil {
			break
		}
		start, end := cursor+loc[0], cursor+loc[1]
		spans = append(spans, Span{Start: start, End: end})
		if end == start {
			end++
		}
		cursor = end
	}
	return spans
}

// PositionFor maps a byte offset into text to a 1-based line:column position.
// Offsets past the end of text map to the position just after the last byte.
func PositionFor(text string, offset int) Position {
	if offset > len(text) {
		offset = len(text)
	}
	before := text[:offset]
	line := strings.Count(before, "\n") + 1
	col := offset - strings.LastIndex(before, "\n")
	return Position{Line: line, Col: col}
}
