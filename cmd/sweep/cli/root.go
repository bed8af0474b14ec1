// Package cli implements the sweep command line interface.
package cli

import (
	"os"
	"strings"

	"sweep.dev/cli/cmd/sweep/cli/logging"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// NewRootCmd builds the root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Remove debug statements and comments from source files",
		Long: `sweep removes debug-output statements (console.log, print, ...) and
comments from source files - one at a time, in bulk against the git
staging area, or automatically via an installed pre-commit hook.`,
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			logging.Setup(verbose)
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	cmd.SetGlobalNormalizationFunc(normalizeFlags)

	cmd.AddCommand(
		newCleanCmd(),
		newPreviewCmd(),
		newUndoCmd(),
		newHooksCmd(),
	)

	return cmd
}

// normalizeFlags accepts snake_case spellings of flags for compatibility
// with older hook scripts.
func normalizeFlags(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
}
