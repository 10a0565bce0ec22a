// Package paths resolves every filesystem location herfiles cares about
// into a single immutable Env value, built once at startup and threaded
// into each component. No component reads environment variables after
// construction.
package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/herfiles/herfiles/pkg/errors"
)

// Environment variable names
const (
	// EnvSnapshotRoot overrides the default snapshot directory
	EnvSnapshotRoot = "HERFILES_SNAPSHOT_ROOT"

	// EnvPoshTheme is oh-my-posh's own pointer to the active theme file
	EnvPoshTheme = "POSH_THEME"
)

// Well-known names inside the home directory and the snapshot.
// These are NOT user-configurable: they must stay consistent across
// machines for a snapshot to be portable.
const (
	// ManagedDirName is the home-relative directory herfiles owns
	// outright; assets and fonts with no other canonical live-system
	// location are installed here.
	ManagedDirName = ".herfiles"

	// DefaultSnapshotDir is the default snapshot directory name
	DefaultSnapshotDir = "dotfiles"

	// CustomAssetsDir is the managed subdirectory for editor assets
	CustomAssetsDir = "CustomAssets"
)

// Env holds every resolved path for a run. Read-only after construction.
type Env struct {
	// Home is the user's home directory
	Home string

	// ManagedDir is Home/.herfiles
	ManagedDir string

	// SnapshotDefault is the default snapshot root used when the caller
	// does not pass one explicitly
	SnapshotDefault string

	// ShellProfilePath is the live PowerShell profile
	ShellProfilePath string

	// PromptThemePath is the live oh-my-posh theme
	PromptThemePath string

	// EditorUserDir is the editor's per-user configuration directory
	EditorUserDir string

	// EditorSettingsPath is the live editor settings file
	EditorSettingsPath string

	// EditorExtensionsJSON is the editor's raw installed-extensions index
	EditorExtensionsJSON string

	// FontsDir is the per-user font installation directory
	FontsDir string

	// FontConfigFiles are fontconfig configuration files to consult for
	// additional font directories
	FontConfigFiles []string
}

// NewEnv resolves all paths from the process environment. Failing to
// resolve the home directory is the only fatal condition: neither gather
// nor install can proceed without it.
func NewEnv() (*Env, error) {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		home = os.Getenv("HOME")
	}
	if home == "" {
		return nil, errors.New(errors.ErrHomeResolve,
			"unable to resolve home directory: neither os.UserHomeDir() nor HOME are available")
	}

	e := &Env{
		Home:       home,
		ManagedDir: filepath.Join(home, ManagedDirName),
	}

	if root := os.Getenv(EnvSnapshotRoot); root != "" {
		e.SnapshotDefault = expandHome(home, root)
	} else {
		e.SnapshotDefault = filepath.Join(home, DefaultSnapshotDir)
	}

	e.ShellProfilePath = filepath.Join(xdg.ConfigHome, "powershell", "Microsoft.PowerShell_profile.ps1")

	if theme := os.Getenv(EnvPoshTheme); theme != "" {
		e.PromptThemePath = expandHome(home, theme)
	} else {
		e.PromptThemePath = filepath.Join(xdg.ConfigHome, "oh-my-posh", "theme.toml")
	}

	e.EditorUserDir = filepath.Join(xdg.ConfigHome, "Code", "User")
	e.EditorSettingsPath = filepath.Join(e.EditorUserDir, "settings.json")
	e.EditorExtensionsJSON = filepath.Join(home, ".vscode", "extensions", "extensions.json")

	e.FontsDir = filepath.Join(xdg.DataHome, "fonts")
	e.FontConfigFiles = []string{
		filepath.Join(xdg.ConfigHome, "fontconfig", "fonts.conf"),
		"/etc/fonts/fonts.conf",
	}

	return e, nil
}

// ManagedAssetsDir returns the live install destination for editor
// custom assets.
func (e *Env) ManagedAssetsDir() string {
	return filepath.Join(e.ManagedDir, CustomAssetsDir)
}

// expandHome expands a leading ~ against the resolved home directory
func expandHome(home, path string) string {
	if path == "~" {
		return home
	}
	if len(path) > 1 && path[0] == '~' && path[1] == '/' {
		return filepath.Join(home, path[2:])
	}
	return path
}
