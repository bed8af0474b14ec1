package sanitize

import (
	"path/filepath"
	"strings"
)

// PlainText is the language tag for files whose extension is not recognized.
// It matches no rules, so cleaning such a file only normalizes whitespace.
const PlainText = "plaintext"

var languageByExt = map[string]string{
	".js":   "javascript",
	".jsx":  "javascript",
	".ts":   "typescript",
	".tsx":  "typescript",
	".py":   "python",
	".java": "java",
	".cpp":  "cpp",
	".c":    "c",
	".php":  "php",
	".rb":   "ruby",
}

// LanguageForPath derives a language tag from a file path's extension.
// Unrecognized extensions return PlainText.
func LanguageForPath(path string) string {
	if lang, ok := languageByExt[strings.ToLower(filepath.Ext(path))]; ok {
		return lang
	}
	return PlainText
}
