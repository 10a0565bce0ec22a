package prompttheme_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/herfiles/herfiles/pkg/filesystem"
	"github.com/herfiles/herfiles/pkg/modules/prompttheme"
	"github.com/herfiles/herfiles/pkg/prompt"
	"github.com/herfiles/herfiles/pkg/template"
	"github.com/herfiles/herfiles/pkg/testutil"
	"github.com/herfiles/herfiles/pkg/types"
)

func newModule(t *testing.T, input string, promptInstalled bool) (*prompttheme.Module, types.FS) {
	t.Helper()
	env := testutil.TestEnv("/home/alice")
	fsys := filesystem.NewMemory()
	var out bytes.Buffer

	mod := prompttheme.New(prompttheme.Options{
		Env:          env,
		FS:           fsys,
		Templater:    template.New(env.Home, env.ManagedDir),
		Resolver:     prompt.NewWithIO(strings.NewReader(input), &out),
		Detector:     &testutil.MockDetector{Installed: map[string]bool{"oh-my-posh": promptInstalled}},
		Installer:    &testutil.MockInstaller{Succeed: true},
		PromptBinary: "oh-my-posh",
	})
	return mod, fsys
}

func TestGatherCopiesTheme(t *testing.T) {
	mod, fsys := newModule(t, "", true)
	env := testutil.TestEnv("/home/alice")
	testutil.WriteFile(t, fsys, env.PromptThemePath, "version = 2\n[palette]\naccent = 'blue'\n")

	outcome, err := mod.Gather("/snap/PromptTheme")
	require.NoError(t, err)

	assert.Equal(t, types.OutcomeSuccess, outcome)
	content := testutil.ReadFile(t, fsys, filepath.Join("/snap/PromptTheme", prompttheme.ThemeFileName))
	assert.Contains(t, content, "accent = 'blue'")
}

func TestGatherCopiesMalformedThemeAnyway(t *testing.T) {
	mod, fsys := newModule(t, "", true)
	env := testutil.TestEnv("/home/alice")
	testutil.WriteFile(t, fsys, env.PromptThemePath, "not [valid toml")

	outcome, err := mod.Gather("/snap/PromptTheme")
	require.NoError(t, err)

	assert.Equal(t, types.OutcomeSuccess, outcome)
	content := testutil.ReadFile(t, fsys, filepath.Join("/snap/PromptTheme", prompttheme.ThemeFileName))
	assert.Equal(t, "not [valid toml", content)
}

func TestInstallRestoresTheme(t *testing.T) {
	mod, fsys := newModule(t, "", true)
	env := testutil.TestEnv("/home/alice")
	testutil.WriteFile(t, fsys, "/snap/PromptTheme/theme.toml", "wallpaper = '{{HOME}}/bg.png'\n")

	outcome, err := mod.Install("/snap/PromptTheme")
	require.NoError(t, err)

	assert.Equal(t, types.OutcomeSuccess, outcome)
	assert.Equal(t, "wallpaper = '/home/alice/bg.png'\n", testutil.ReadFile(t, fsys, env.PromptThemePath))
}

func TestInstallSkippedWhenPromptToolDeclined(t *testing.T) {
	mod, fsys := newModule(t, "n\n", false)
	testutil.WriteFile(t, fsys, "/snap/PromptTheme/theme.toml", "anything\n")

	outcome, err := mod.Install("/snap/PromptTheme")
	require.NoError(t, err)
	assert.Equal(t, types.OutcomeSkipped, outcome)
}
