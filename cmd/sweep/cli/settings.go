package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"sweep.dev/cli/cmd/sweep/cli/gitrepo"

	"github.com/joho/godotenv"
)

const settingsFile = ".sweep/settings.json"

// Settings configure default behavior for all commands. They live in
// .sweep/settings.json at the worktree root; a missing or malformed file
// means defaults.
type Settings struct {
	// Telemetry opts in to anonymous usage events.
	Telemetry bool `json:"telemetry"`
	// ScanRemovedText runs the secret scan on every clean, as if --scan
	// were always set.
	ScanRemovedText bool `json:"scan_removed_text"`
}

var loadEnvOnce sync.Once

// GetSettings loads settings from the repository root. Works correctly from
// any subdirectory within the repository. A .env file at the root is loaded
// into the environment first so it can carry keys like SWEEP_POSTHOG_KEY.
func GetSettings() *Settings {
	root := "."
	if repo, err := gitrepo.OpenRepository(); err == nil {
		if r, err := gitrepo.WorktreeRoot(repo); err == nil {
			root = r
		}
	}

	loadEnvOnce.Do(func() {
		_ = godotenv.Load(filepath.Join(root, ".env"))
	})

	return loadSettingsAt(filepath.Join(root, settingsFile))
}

func loadSettingsAt(path string) *Settings {
	settings := &Settings{}
	data, err := os.ReadFile(path) //nolint:gosec // path is derived from the worktree root
	if err != nil {
		return settings
	}
	if err := json.Unmarshal(data, settings); err != nil {
		return &Settings{}
	}
	return settings
}
