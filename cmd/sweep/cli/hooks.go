package cli

import (
	"fmt"
	"io"

	"sweep.dev/cli/cmd/sweep/cli/gitrepo"

	"github.com/spf13/cobra"
)

func newHooksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hooks",
		Short: "Manage the sweep pre-commit hook",
		Long: `Install, inspect, or remove the git pre-commit hook that cleans staged
files before every commit.`,
	}

	cmd.AddCommand(newHooksInstallCmd(), newHooksUninstallCmd(), newHooksStatusCmd())

	return cmd
}

func newHooksInstallCmd() *cobra.Command {
	var silent bool

	cmd := &cobra.Command{
		Use:   "install",
		Short: "Install the pre-commit hook",
		RunE: func(_ *cobra.Command, _ []string) error {
			return gitrepo.InstallPreCommitHook(silent)
		},
	}

	cmd.Flags().BoolVar(&silent, "silent", false, "Suppress output")

	return cmd
}

func newHooksUninstallCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "uninstall",
		Short: "Remove the pre-commit hook",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := gitrepo.UninstallHook(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Removed pre-commit hook.")
			return nil
		},
	}
}

func newHooksStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show whether the pre-commit hook is installed and current",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runHooksStatus(cmd.OutOrStdout())
		},
	}
}

func runHooksStatus(w io.Writer) error {
	version, ok := gitrepo.InstalledHookVersion()
	if !ok {
		fmt.Fprintln(w, "Pre-commit hook: not installed")
		fmt.Fprintln(w, "Run 'sweep hooks install' to install it.")
		return nil
	}

	if gitrepo.IsHookOutdated() {
		fmt.Fprintf(w, "Pre-commit hook: installed (%s, outdated - current is %s)\n", version, gitrepo.HookVersion)
		fmt.Fprintln(w, "Run 'sweep hooks install' to update it.")
		return nil
	}

	fmt.Fprintf(w, "Pre-commit hook: installed (%s, up to date)\n", version)
	return nil
}
