package sanitize

import (
	"regexp"
	"slices"
)

// Category classifies what a rule removes or highlights.
type Category int

const (
	// PrintStatement is a call to a language's standard output primitive
	// (console.log, print, System.out.println, ...).
	PrintStatement Category = iota
	// LineComment is a comment running from a marker to end of line.
	LineComment
	// BlockComment is a delimited comment that may span lines.
	BlockComment
	// Docstring is a triple-quoted documentation block.
	Docstring
)

// Rule pairs a removal pattern with its highlight variant and the set of
// languages it applies to. Print-statement removal consumes the entire line
// containing the call; comment removal anchors to whole lines and consumes
// the trailing newline where safe. Highlight patterns are unanchored so a
// span covers only the statement or comment token itself.
//
// Highlight is nil for rules that exist purely as removal machinery (e.g. the
// trailing-comment variants) whose matches are already reported by a sibling
// rule.
type Rule struct {
	Category  Category
	Remove    *regexp.Regexp
	Highlight *regexp.Regexp
	Languages []string // nil means the rule applies to every language
}

func (r Rule) appliesTo(lang string) bool {
	if r.Languages == nil {
		return true
	}
	return slices.Contains(r.Languages, lang)
}

// rules is the ordered rule table. Order is part of the contract: print
// statements are removed before line comments, line comments before block
// comments, and docstrings last. Removing a comment can expose (or swallow)
// a print statement, so each rule operates on the output of the previous one.
var rules = []Rule{
	// Print statements. Removal takes the entire line containing the call:
	// a debug call buried after code, behind a comment marker, or after an
	// inline block comment drags its whole line out with it.
	{
		Category:  PrintStatement,
		Remove:    regexp.MustCompile(`(?m)^.*\bconsole\.(log|warn|error|info|debug|trace|table)\s*\(.*\).*\r?\n?`),
		Highlight: regexp.MustCompile(`\bconsole\.(log|warn|error|info|debug|trace|table)\s*\([^\n]*?\)(?:[ \t]*;)?`),
		Languages: []string{"javascript", "typescript"},
	},
	{
		Category:  PrintStatement,
		Remove:    regexp.MustCompile(`(?m)^.*\bprint\s*\(.*\).*\r?\n?`),
		Highlight: regexp.MustCompile(`\bprint\s*\([^\n]*?\)`),
		Languages: []string{"python"},
	},
	{
		Category:  PrintStatement,
		Remove:    regexp.MustCompile(`(?m)^.*\bSystem\.(out|err)\.print(ln)?\s*\(.*\)[ \t]*;.*\r?\n?`),
		Highlight: regexp.MustCompile(`\bSystem\.(out|err)\.print(ln)?\s*\([^\n]*?\)[ \t]*;`),
		Languages: []string{"java"},
	},
	{
		Category:  PrintStatement,
		Remove:    regexp.MustCompile(`(?m)^.*\bf?printf\s*\(.*\)[ \t]*;.*\r?\n?`),
		Highlight: regexp.MustCompile(`\bf?printf\s*\([^\n]*?\)[ \t]*;`),
		Languages: []string{"c", "cpp"},
	},
	{
		Category:  PrintStatement,
		Remove:    regexp.MustCompile(`(?m)^.*\b(std::)?cout\s*<<.*;.*\r?\n?`),
		Highlight: regexp.MustCompile(`\b(std::)?cout\s*<<[^\n]*?;`),
		Languages: []string{"cpp"},
	},
	{
		Category:  PrintStatement,
		Remove:    regexp.MustCompile(`(?m)^.*\b(echo\b[^;\n]*|var_dump\s*\(.*\)|print_r\s*\(.*\))[ \t]*;.*\r?\n?`),
		Highlight: regexp.MustCompile(`\b(echo\b[^;\n]*|var_dump\s*\([^\n]*?\)|print_r\s*\([^\n]*?\))[ \t]*;`),
		Languages: []string{"php"},
	},
	// Bare `p` needs an argument-like continuation (identifier, literal,
	// symbol, variable sigil, or parenthesis) so identifiers named p survive
	// in `p = 5` or `p + 1`; puts/pp/print are debug calls even bare.
	{
		Category:  PrintStatement,
		Remove:    regexp.MustCompile(`(?m)^.*\b(?:(?:puts|pp|print)\b|p(?:[ \t]+["':@$(\[\w]|\()).*\r?\n?`),
		Highlight: regexp.MustCompile(`\b(?:(?:puts|pp|print)\b(?:[ \t][^\n]*[^ \t])?|p(?:\([^\n]*?\)|[ \t]+["':@$(\[\w](?:[^\n]*[^ \t])?))`),
		Languages: []string{"ruby"},
	},

	// Line comments. Whole-line comments consume their newline; trailing
	// comments strip only from the marker to end of line so the code before
	// them survives.
	{
		Category:  LineComment,
		Remove:    regexp.MustCompile(`(?m)^[ \t]*//[^\n]*\n?`),
		Highlight: regexp.MustCompile(`//(?:[^\n]*[^ \t\n])?`),
		Languages: []string{"javascript", "typescript", "java", "c", "cpp", "php"},
	},
	{
		Category:  LineComment,
		Remove:    regexp.MustCompile(`(?m)[ \t]*//[^\n]*`),
		Languages: []string{"javascript", "typescript", "java", "c", "cpp", "php"},
	},
	{
		Category:  LineComment,
		Remove:    regexp.MustCompile(`(?m)^[ \t]*#[^\n]*\n?`),
		Highlight: regexp.MustCompile(`#(?:[^\n]*[^ \t\n])?`),
		Languages: []string{"python", "ruby", "php"},
	},
	{
		Category:  LineComment,
		Remove:    regexp.MustCompile(`(?m)[ \t]*#[^\n]*`),
		Languages: []string{"python", "ruby", "php"},
	},

	// Block comments. An unterminated comment matches to end of text; that is
	// accepted over-matching, never an error.
	{
		Category:  BlockComment,
		Remove:    regexp.MustCompile(`(?m)^[ \t]*/\*(?s:.*?)(?:\*/[ \t]*\n?|\z)`),
		Highlight: regexp.MustCompile(`/\*(?s:.*?)(?:\*/|\z)`),
		Languages: []string{"javascript", "typescript", "java", "c", "cpp", "php"},
	},
	{
		Category:  BlockComment,
		Remove:    regexp.MustCompile(`[ \t]*/\*(?s:.*?)(?:\*/|\z)`),
		Languages: []string{"javascript", "typescript", "java", "c", "cpp", "php"},
	},
	{
		Category:  BlockComment,
		Remove:    regexp.MustCompile(`(?m)^=begin\b(?s:.*?)(?:^=end\b[^\n]*\n?|\z)`),
		Highlight: regexp.MustCompile(`(?m)^=begin\b(?s:.*?)(?:^=end\b|\z)`),
		Languages: []string{"ruby"},
	},

	// Docstrings go last: unbalanced triple quotes swallow everything to end
	// of text, so earlier rules get first pick.
	{
		Category:  Docstring,
		Remove:    regexp.MustCompile(`(?m)^[ \t]*("""(?s:.*?)(?:"""[ \t]*\n?|\z)|'''(?s:.*?)(?:'''[ \t]*\n?|\z))`),
		Highlight: regexp.MustCompile(`"""(?s:.*?)(?:"""|\z)|'''(?s:.*?)(?:'''|\z)`),
		Languages: []string{"python"},
	},
}
