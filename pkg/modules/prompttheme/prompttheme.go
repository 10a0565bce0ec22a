// Package prompttheme manages the oh-my-posh prompt theme.
package prompttheme

import (
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/herfiles/herfiles/pkg/filesystem"
	"github.com/herfiles/herfiles/pkg/logging"
	"github.com/herfiles/herfiles/pkg/modules/fileops"
	"github.com/herfiles/herfiles/pkg/paths"
	"github.com/herfiles/herfiles/pkg/prompt"
	"github.com/herfiles/herfiles/pkg/template"
	"github.com/herfiles/herfiles/pkg/types"
)

// ModuleName is the display name of the prompt theme module
const ModuleName = "Prompt Theme"

// FolderName is the module's snapshot subdirectory
const FolderName = "PromptTheme"

// ThemeFileName is the well-known snapshot filename for the theme
const ThemeFileName = "theme.toml"

// Options wires the module's collaborators.
type Options struct {
	Env       *paths.Env
	FS        types.FS
	Templater *template.Templater
	Resolver  *prompt.Resolver
	Detector  types.ProgramDetector
	Installer types.PackageInstaller

	// PromptBinary is the program required before installing
	PromptBinary string
}

// Module gathers and installs the prompt theme.
type Module struct {
	opts Options
	deps fileops.Deps
}

// New creates the prompt theme module.
func New(opts Options) *Module {
	return &Module{
		opts: opts,
		deps: fileops.Deps{FS: opts.FS, Templater: opts.Templater, Resolver: opts.Resolver},
	}
}

func (m *Module) Name() string   { return ModuleName }
func (m *Module) Folder() string { return FolderName }

// Detect reports whether a live theme file exists.
func (m *Module) Detect() bool {
	return filesystem.Exists(m.opts.FS, m.opts.Env.PromptThemePath)
}

// Gather copies the live theme into the snapshot. The theme is checked
// for TOML validity first; a malformed theme is still copied, the parse
// failure only degrades to a warning.
func (m *Module) Gather(dest string) (types.Outcome, error) {
	logger := logging.GetLogger("modules.prompttheme")

	if data, err := m.opts.FS.ReadFile(m.opts.Env.PromptThemePath); err == nil {
		var theme map[string]interface{}
		if err := toml.Unmarshal(data, &theme); err != nil {
			logger.Warn().Err(err).
				Str("path", m.opts.Env.PromptThemePath).
				Msg("theme does not parse as TOML, copying as-is")
		}
	}

	snapPath := filepath.Join(dest, ThemeFileName)
	if err := fileops.GatherFile(m.deps, m.opts.Env.PromptThemePath, snapPath); err != nil {
		return types.OutcomeFailure, err
	}
	return types.OutcomeSuccess, nil
}

// Install restores the theme to its live location.
func (m *Module) Install(src string) (types.Outcome, error) {
	outcome, err := fileops.EnsureProgram(m.opts.Resolver, m.opts.Detector, m.opts.Installer,
		m.opts.PromptBinary, "oh-my-posh", "oh-my-posh")
	if outcome != types.OutcomeSuccess {
		return outcome, err
	}

	snapPath := filepath.Join(src, ThemeFileName)
	return fileops.InstallFile(m.deps, snapPath, m.opts.Env.PromptThemePath, template.StyleHome)
}
