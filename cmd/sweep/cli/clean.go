package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"sweep.dev/cli/cmd/sweep/cli/gitrepo"
	"sweep.dev/cli/cmd/sweep/cli/logging"
	"sweep.dev/cli/cmd/sweep/cli/sanitize"
	"sweep.dev/cli/cmd/sweep/cli/secrets"
	"sweep.dev/cli/cmd/sweep/cli/telemetry"
	"sweep.dev/cli/cmd/sweep/cli/undo"

	"github.com/charmbracelet/huh"
	git "github.com/go-git/go-git/v5"
	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

type cleanOptions struct {
	Staged bool
	Write  bool
	Add    bool
	Scan   bool
	Quiet  bool
}

func newCleanCmd() *cobra.Command {
	var opts cleanOptions

	cmd := &cobra.Command{
		Use:   "clean [files...]",
		Short: "Remove debug statements and comments",
		Long: `Remove debug-output statements and comments from source files.

Without --write, shows a diff of what would change and, on a terminal,
asks for confirmation before applying. With --write, applies directly.

Files can be given as arguments, or taken from the git staging area
with --staged. With --add, cleaned files are re-staged; this is how the
pre-commit hook keeps the index consistent.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClean(cmd.Context(), cmd.OutOrStdout(), args, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.Staged, "staged", false, "Clean files staged in git instead of explicit paths")
	cmd.Flags().BoolVar(&opts.Write, "write", false, "Apply changes without asking")
	cmd.Flags().BoolVar(&opts.Add, "add", false, "Re-stage cleaned files (only with --staged)")
	cmd.Flags().BoolVar(&opts.Scan, "scan", false, "Warn when removed text contains a secret")
	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "Suppress per-file output")

	return cmd
}

// cleanResult is the outcome of sanitizing one file, before anything is
// written back.
type cleanResult struct {
	Path     string // as given or staged; used for display and git add
	Language string
	Original string
	Cleaned  string

	ioPath string // absolute filesystem location for read/write
}

func (r cleanResult) Changed() bool {
	return r.Cleaned != r.Original
}

func runClean(ctx context.Context, w io.Writer, args []string, opts cleanOptions) error {
	ctx = logging.WithComponent(ctx, "clean")

	settings := GetSettings()
	tel := telemetry.New(settings.Telemetry)
	defer tel.Close()

	files := args
	var repo *git.Repository
	var worktreeRoot string

	if opts.Staged {
		var err error
		repo, err = gitrepo.OpenRepository()
		if err != nil {
			return fmt.Errorf("not in a git repository: %w", err)
		}
		worktreeRoot, err = gitrepo.WorktreeRoot(repo)
		if err != nil {
			return err
		}
		staged, err := gitrepo.StagedFiles(repo)
		if err != nil {
			return err
		}
		// Skip files sweep has no rules for; normalizing arbitrary staged
		// content would create noise in the index.
		files = nil
		for _, path := range staged {
			if sanitize.LanguageForPath(path) != sanitize.PlainText {
				files = append(files, path)
			}
		}
	}

	if len(files) == 0 {
		fmt.Fprintln(w, "No files to clean.")
		return nil
	}

	results, err := cleanFiles(ctx, files, worktreeRoot)
	if err != nil {
		return err
	}

	var changed []cleanResult
	for _, r := range results {
		if r.Changed() {
			changed = append(changed, r)
		}
	}

	if len(changed) == 0 {
		fmt.Fprintln(w, "Nothing to clean.")
		return nil
	}

	if opts.Scan || settings.ScanRemovedText {
		warnRemovedSecrets(w, changed)
	}

	if !opts.Write {
		printDiffs(w, changed)
		apply, err := confirmApply(len(changed))
		if err != nil {
			return err
		}
		if !apply {
			fmt.Fprintln(w, "No changes applied. Run with --write to apply.")
			return nil
		}
	}

	if err := applyResults(w, changed, repo, opts); err != nil {
		return err
	}

	tel.Capture("clean", map[string]any{
		"files":   len(results),
		"changed": len(changed),
		"staged":  opts.Staged,
	})

	return nil
}

// cleanFiles sanitizes every file without writing anything back. Paths are
// resolved against base when it is non-empty (the staged case, where git
// reports worktree-relative paths).
func cleanFiles(ctx context.Context, paths []string, base string) ([]cleanResult, error) {
	results := make([]cleanResult, 0, len(paths))
	for _, path := range paths {
		result, err := cleanFile(path, base)
		if err != nil {
			return nil, err
		}
		logging.Debug(logging.WithFile(ctx, path), "sanitized file",
			"language", result.Language,
			"bytes_removed", len(result.Original)-len(result.Cleaned))
		results = append(results, result)
	}
	return results, nil
}

func cleanFile(path, base string) (cleanResult, error) {
	ioPath := path
	if base != "" {
		ioPath = filepath.Join(base, path)
	}
	if abs, err := filepath.Abs(ioPath); err == nil {
		ioPath = abs
	}

	data, err := os.ReadFile(ioPath) //nolint:gosec // paths come from the user or git status
	if err != nil {
		return cleanResult{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	lang := sanitize.LanguageForPath(path)
	original := string(data)

	return cleanResult{
		Path:     path,
		Language: lang,
		Original: original,
		Cleaned:  sanitize.Sanitize(original, lang),
		ioPath:   ioPath,
	}, nil
}

// applyResults captures the undo record, writes cleaned files, and re-stages
// them when requested.
func applyResults(w io.Writer, changed []cleanResult, repo *git.Repository, opts cleanOptions) error {
	// Capture the one-slot undo record before touching anything. Failure to
	// record is a warning, not a reason to skip the clean.
	if gitDir, err := gitrepo.GetGitDir(); err == nil {
		rec := undo.Record{SavedAt: time.Now().UTC(), Files: make(map[string]string, len(changed))}
		for _, r := range changed {
			rec.Files[r.ioPath] = r.Original
		}
		if err := undo.Save(gitDir, rec); err != nil {
			fmt.Fprintf(w, "Warning: failed to save undo record: %v\n", err)
		}
	}

	var failed []string
	written := 0
	for _, r := range changed {
		if err := os.WriteFile(r.ioPath, []byte(r.Cleaned), 0o644); err != nil { //nolint:gosec // source files keep standard permissions
			failed = append(failed, r.Path)
			continue
		}
		written++

		if opts.Add && repo != nil {
			if err := gitrepo.AddPath(repo, r.Path); err != nil {
				fmt.Fprintf(w, "Warning: %v\n", err)
			}
		}

		if !opts.Quiet {
			fmt.Fprintf(w, "Cleaned %s\n", r.Path)
		}
	}

	if !opts.Quiet {
		fmt.Fprintf(w, "\nCleaned %d of %d files. Run 'sweep undo' to restore.\n", written, len(changed))
	}

	if len(failed) > 0 {
		return fmt.Errorf("failed to write %d files: %s", len(failed), strings.Join(failed, ", "))
	}
	return nil
}

func printDiffs(w io.Writer, changed []cleanResult) {
	dmp := diffmatchpatch.New()
	for _, r := range changed {
		fmt.Fprintf(w, "--- %s (%s)\n", r.Path, r.Language)
		diffs := dmp.DiffMain(r.Original, r.Cleaned, false)
		diffs = dmp.DiffCleanupSemantic(diffs)
		fmt.Fprintln(w, dmp.DiffPrettyText(diffs))
	}
}

// confirmApply asks the user whether to apply the previewed changes. On a
// non-terminal stdin it declines without prompting, so scripted runs must
// pass --write explicitly.
func confirmApply(fileCount int) (bool, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return false, nil
	}

	var confirmed bool
	form := NewAccessibleForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Apply changes to %d file(s)?", fileCount)).
				Value(&confirmed),
		),
	)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return false, fmt.Errorf("failed to get confirmation: %w", err)
	}

	return confirmed, nil
}

// warnRemovedSecrets scans the fragments scheduled for deletion. Debug prints
// are a common place for credentials to leak; removing one silently would
// hide that it was ever committed.
func warnRemovedSecrets(w io.Writer, changed []cleanResult) {
	scanner, err := secrets.NewScanner()
	if err != nil {
		fmt.Fprintf(w, "Warning: secret scan unavailable: %v\n", err)
		return
	}

	for _, r := range changed {
		for _, f := range scanner.Scan(removedText(r)) {
			fmt.Fprintf(w, "Warning: %s: removed text matches rule %s (%s)\n", r.Path, f.RuleID, f.Description)
		}
	}
}

// removedText joins the tokens the highlight pass locates in the original
// text. These are exactly the fragments the clean pass deletes.
func removedText(r cleanResult) string {
	printSpans, commentSpans := sanitize.LocateSpans(r.Original, r.Language)

	var b strings.Builder
	for _, s := range printSpans {
		b.WriteString(r.Original[s.Start:s.End])
		b.WriteByte('\n')
	}
	for _, s := range commentSpans {
		b.WriteString(r.Original[s.Start:s.End])
		b.WriteByte('\n')
	}
	return b.String()
}
