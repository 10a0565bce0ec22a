// Package testutil provides helpers and recording mocks for herfiles
// tests. Filesystem-backed tests run against the afero memory FS
// through the types.FS seam.
package testutil

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/herfiles/herfiles/pkg/paths"
	"github.com/herfiles/herfiles/pkg/types"
)

// TestEnv builds a fully-populated Env rooted at the given home
// directory, with the same well-known relative locations production
// resolution produces.
func TestEnv(home string) *paths.Env {
	return &paths.Env{
		Home:                 home,
		ManagedDir:           filepath.Join(home, ".herfiles"),
		SnapshotDefault:      filepath.Join(home, "dotfiles"),
		ShellProfilePath:     filepath.Join(home, ".config", "powershell", "Microsoft.PowerShell_profile.ps1"),
		PromptThemePath:      filepath.Join(home, ".config", "oh-my-posh", "theme.toml"),
		EditorUserDir:        filepath.Join(home, ".config", "Code", "User"),
		EditorSettingsPath:   filepath.Join(home, ".config", "Code", "User", "settings.json"),
		EditorExtensionsJSON: filepath.Join(home, ".vscode", "extensions", "extensions.json"),
		FontsDir:             filepath.Join(home, ".local", "share", "fonts"),
	}
}

// WriteFile writes content at path, creating parents, failing the test
// on error.
func WriteFile(t *testing.T, fsys types.FS, path, content string) {
	t.Helper()
	require.NoError(t, fsys.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, fsys.WriteFile(path, []byte(content), 0644))
}

// ReadFile reads path, failing the test on error.
func ReadFile(t *testing.T, fsys types.FS, path string) string {
	t.Helper()
	data, err := fsys.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}
