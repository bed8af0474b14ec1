package gitrepo

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"

	"golang.org/x/mod/semver"
)

// Hook marker used to identify the sweep pre-commit hook. The version stamp
// lets `sweep hooks status` detect hooks written by older releases.
const (
	hookMarker  = "sweep pre-commit hook"
	HookVersion = "v1.1.0"
)

var hookVersionPattern = regexp.MustCompile(`v\d+\.\d+\.\d+`)

// GetGitDir returns the actual git directory path by delegating to git
// itself. This handles both regular repositories and worktrees, and inherits
// git's security validation for gitdir references.
func GetGitDir() (string, error) {
	return getGitDirInPath(".")
}

func getGitDirInPath(dir string) (string, error) {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "git", "rev-parse", "--git-dir")
	cmd.Dir = dir
	output, err := cmd.Output()
	if err != nil {
		return "", errors.New("not a git repository")
	}

	gitDir := strings.TrimSpace(string(output))

	// git rev-parse --git-dir returns relative paths from the working
	// directory, so make it absolute if it isn't already.
	if !filepath.IsAbs(gitDir) {
		gitDir = filepath.Join(dir, gitDir)
	}

	return filepath.Clean(gitDir), nil
}

// InstallPreCommitHook writes a pre-commit hook that cleans staged files and
// re-stages them before every commit. If silent is true, no output is
// printed.
func InstallPreCommitHook(silent bool) error {
	gitDir, err := GetGitDir()
	if err != nil {
		return err
	}

	hooksDir := filepath.Join(gitDir, "hooks")
	if err := os.MkdirAll(hooksDir, 0o755); err != nil { //nolint:gosec // Git hooks require executable permissions
		return fmt.Errorf("failed to create hooks directory: %w", err)
	}

	hookPath := filepath.Join(hooksDir, "pre-commit")
	hookContent := fmt.Sprintf(`#!/bin/sh
# %s %s
sweep clean --staged --write --add --quiet || exit 1
`, hookMarker, HookVersion)

	// Git hooks must be executable.
	if err := os.WriteFile(hookPath, []byte(hookContent), 0o755); err != nil { //nolint:gosec // Git hooks require executable permissions
		return fmt.Errorf("failed to write hook file %s: %w", hookPath, err)
	}

	if !silent {
		fmt.Println("✓ Installed pre-commit hook (cleans staged files before each commit)")
	}

	return nil
}

// IsHookInstalled reports whether the sweep pre-commit hook is present.
func IsHookInstalled() bool {
	_, ok := InstalledHookVersion()
	return ok
}

// InstalledHookVersion returns the version stamp of the installed hook, if a
// sweep hook is installed at all.
func InstalledHookVersion() (string, bool) {
	gitDir, err := GetGitDir()
	if err != nil {
		return "", false
	}

	data, err := os.ReadFile(filepath.Join(gitDir, "hooks", "pre-commit")) //nolint:gosec // Path is constructed from constants
	if err != nil {
		return "", false
	}
	content := string(data)
	if !strings.Contains(content, hookMarker) {
		return "", false
	}

	version := hookVersionPattern.FindString(content)
	if version == "" {
		// Marker present but no parseable stamp; treat as an ancient hook.
		version = "v0.0.0"
	}
	return version, true
}

// IsHookOutdated reports whether the installed hook was written by an older
// release than this binary.
func IsHookOutdated() bool {
	installed, ok := InstalledHookVersion()
	if !ok {
		return false
	}
	return semver.Compare(installed, HookVersion) < 0
}

// UninstallHook removes the pre-commit hook, but only if sweep installed it.
func UninstallHook() error {
	gitDir, err := GetGitDir()
	if err != nil {
		return err
	}

	hookPath := filepath.Join(gitDir, "hooks", "pre-commit")
	data, err := os.ReadFile(hookPath) //nolint:gosec // Path is constructed from constants
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read hook file: %w", err)
	}

	if !strings.Contains(string(data), hookMarker) {
		return errors.New("pre-commit hook was not installed by sweep; refusing to remove it")
	}

	if err := os.Remove(hookPath); err != nil {
		return fmt.Errorf("failed to remove hook file: %w", err)
	}
	return nil
}
