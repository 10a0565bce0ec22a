package paths

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEnvResolvesHome(t *testing.T) {
	t.Setenv("HOME", "/home/testuser")

	env, err := NewEnv()
	require.NoError(t, err)

	assert.Equal(t, "/home/testuser", env.Home)
	assert.Equal(t, filepath.Join("/home/testuser", ManagedDirName), env.ManagedDir)
	assert.Equal(t, filepath.Join("/home/testuser", DefaultSnapshotDir), env.SnapshotDefault)
}

func TestNewEnvSnapshotRootOverride(t *testing.T) {
	t.Setenv("HOME", "/home/testuser")
	t.Setenv(EnvSnapshotRoot, "~/backup/dotfiles")

	env, err := NewEnv()
	require.NoError(t, err)

	assert.Equal(t, "/home/testuser/backup/dotfiles", env.SnapshotDefault)
}

func TestNewEnvPoshThemeOverride(t *testing.T) {
	t.Setenv("HOME", "/home/testuser")
	t.Setenv(EnvPoshTheme, "/opt/themes/work.toml")

	env, err := NewEnv()
	require.NoError(t, err)

	assert.Equal(t, "/opt/themes/work.toml", env.PromptThemePath)
}

func TestManagedAssetsDir(t *testing.T) {
	env := &Env{ManagedDir: "/home/alice/.herfiles"}
	assert.Equal(t, filepath.Join("/home/alice/.herfiles", CustomAssetsDir), env.ManagedAssetsDir())
}

func TestExpandHome(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"~", "/home/alice"},
		{"~/dotfiles", "/home/alice/dotfiles"},
		{"/absolute/path", "/absolute/path"},
		{"relative/path", "relative/path"},
		{"~user/path", "~user/path"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, expandHome("/home/alice", tt.input))
		})
	}
}
