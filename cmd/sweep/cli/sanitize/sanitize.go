// Package sanitize removes debug-output statements and comments from source
// text. It exposes two pure functions over (text, language): Sanitize, which
// returns cleaned text, and LocateSpans, which returns the byte ranges the
// same patterns would remove so a caller can preview without modifying
// anything. Patterns are line/regex based, not syntax aware: a string literal
// containing a comment-like substring is matched and stripped anyway.
package sanitize

import "regexp"

var (
	// trailingWS strips horizontal whitespace left behind at line ends.
	trailingWS = regexp.MustCompile(`(?m)[ \t]+$`)
	// blankRuns collapses 2+ blank lines down to exactly one.
	blankRuns = regexp.MustCompile(`\n{3,}`)
	// leadingBlank drops blank lines at the very top of the file, typically
	// left by content deleted there.
	leadingBlank = regexp.MustCompile(`\A(?:[ \t]*\n)+`)
	// invisible matches zero-width characters and the byte-order mark. These
	// are stripped from every file regardless of language.
	invisible = regexp.MustCompile("[\u200B\u200C\u200D\u2060\uFEFF]")
)

// Sanitize removes debug statements and comments applicable to lang from
// text and normalizes the whitespace left behind. It is total: any input and
// any language tag produce a result, a language matching no rules passes
// through with only normalization applied, and running Sanitize on its own
// output is a no-op. The output is never longer than the input.
func Sanitize(text, lang string) string {
	// Invisible characters go first: left in place they can split a token
	// the rules would otherwise match, or sit between trailing whitespace
	// and the line end and shield it from normalization.
	text = invisible.ReplaceAllString(text, "")

	// Each rule operates on the output of the previous one, in table order.
	// Removing a line comment can expose a print statement and vice versa,
	// so the order is part of the contract.
	for _, r := range rules {
		if !r.appliesTo(lang) {
			continue
		}
		text = r.Remove.ReplaceAllString(text, "")
	}

	text = trailingWS.ReplaceAllString(text, "")
	text = blankRuns.ReplaceAllString(text, "\n\n")
	return leadingBlank.ReplaceAllString(text, "")
}

// Normalize applies only the whitespace and invisible-character passes,
// without any rule-based removal. This is exactly what Sanitize does for a
// language that matches no rules.
func Normalize(text string) string {
	return Sanitize(text, "plaintext")
}
