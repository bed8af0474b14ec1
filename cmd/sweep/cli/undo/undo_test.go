package undo

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveLoadClear(t *testing.T) {
	gitDir := t.TempDir()

	rec := Record{
		SavedAt: time.Now().UTC().Truncate(time.Second),
		Files: map[string]string{
			"a.js": "console.log(1);\n",
			"b.py": "print(2)\n",
		},
	}

	require.NoError(t, Save(gitDir, rec))

	loaded, err := Load(gitDir)
	require.NoError(t, err)
	assert.Equal(t, rec.Files, loaded.Files)
	assert.True(t, rec.SavedAt.Equal(loaded.SavedAt))

	require.NoError(t, Clear(gitDir))

	_, err = Load(gitDir)
	assert.True(t, errors.Is(err, ErrNoRecord))
}

func TestLoad_NoRecord(t *testing.T) {
	_, err := Load(t.TempDir())

	assert.True(t, errors.Is(err, ErrNoRecord))
}

func TestSave_OverwritesPrevious(t *testing.T) {
	gitDir := t.TempDir()

	require.NoError(t, Save(gitDir, Record{Files: map[string]string{"old.js": "old"}}))
	require.NoError(t, Save(gitDir, Record{Files: map[string]string{"new.js": "new"}}))

	loaded, err := Load(gitDir)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"new.js": "new"}, loaded.Files)
}

func TestClear_Empty(t *testing.T) {
	assert.NoError(t, Clear(t.TempDir()))
}
