package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"sweep.dev/cli/cmd/sweep/cli/sanitize"

	"github.com/spf13/cobra"
)

func newPreviewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview <files...>",
		Short: "Show what clean would remove, without changing anything",
		Long: `List every debug statement and comment that 'sweep clean' would remove,
as file:line:col ranges. Files are never modified.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(cmd.OutOrStdout(), args)
		},
	}

	return cmd
}

func runPreview(w io.Writer, paths []string) error {
	if len(paths) == 0 {
		return errors.New("no files given: sweep preview <files...>")
	}

	total := 0
	for _, path := range paths {
		data, err := os.ReadFile(path) //nolint:gosec // paths come from the user
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}

		text := string(data)
		lang := sanitize.LanguageForPath(path)
		printSpans, commentSpans := sanitize.LocateSpans(text, lang)

		printSpanList(w, path, text, "print", printSpans)
		printSpanList(w, path, text, "comment", commentSpans)
		total += len(printSpans) + len(commentSpans)
	}

	if total == 0 {
		fmt.Fprintln(w, "Nothing to remove.")
	}
	return nil
}

func printSpanList(w io.Writer, path, text, category string, spans []sanitize.Span) {
	for _, s := range spans {
		start := sanitize.PositionFor(text, s.Start)
		end := sanitize.PositionFor(text, s.End)
		fmt.Fprintf(w, "%s:%d:%d-%d:%d\t%s\t%s\n",
			path, start.Line, start.Col, end.Line, end.Col, category, firstLine(text[s.Start:s.End]))
	}
}

// firstLine returns the first line of a string.
func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
