package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"sweep.dev/cli/cmd/sweep/cli/gitrepo"
	"sweep.dev/cli/cmd/sweep/cli/undo"

	"github.com/spf13/cobra"
)

func newUndoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "undo",
		Short: "Restore files from the last clean",
		Long: `Restore every file modified by the most recent 'sweep clean' to its
previous content.

Only the last clean is recorded: running clean again overwrites the
record, and undoing clears it.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runUndo(cmd.OutOrStdout())
		},
	}

	return cmd
}

func runUndo(w io.Writer) error {
	gitDir, err := gitrepo.GetGitDir()
	if err != nil {
		return err
	}

	rec, err := undo.Load(gitDir)
	if errors.Is(err, undo.ErrNoRecord) {
		fmt.Fprintln(w, "Nothing to undo.")
		return nil
	}
	if err != nil {
		return err
	}

	paths := make([]string, 0, len(rec.Files))
	for path := range rec.Files {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	var failed []string
	for _, path := range paths {
		if err := os.WriteFile(path, []byte(rec.Files[path]), 0o644); err != nil { //nolint:gosec // restoring user source files
			failed = append(failed, path)
			continue
		}
		fmt.Fprintf(w, "Restored %s\n", path)
	}

	// The slot is cleared even if some files failed; a second undo against
	// stale content would do more harm than good.
	if err := undo.Clear(gitDir); err != nil {
		return err
	}

	if len(failed) > 0 {
		return fmt.Errorf("failed to restore %d files", len(failed))
	}

	fmt.Fprintf(w, "\nRestored %d files.\n", len(paths))
	return nil
}
