// Package editor manages VS Code configuration: settings.json (a
// comment-tolerant JSON file), the installed-extension list, and the
// custom CSS/JS assets and fonts the settings reference.
//
// Install order is significant and fixed: fonts first (so later-opened
// editor instances see them), then custom assets (so referenced files
// exist before settings.json points at them), then settings.json, then
// extensions. Extensions are skipped entirely when the settings install
// is declined.
package editor

import (
	"path/filepath"

	"github.com/herfiles/herfiles/pkg/errors"
	"github.com/herfiles/herfiles/pkg/filesystem"
	"github.com/herfiles/herfiles/pkg/logging"
	"github.com/herfiles/herfiles/pkg/modules/fileops"
	"github.com/herfiles/herfiles/pkg/paths"
	"github.com/herfiles/herfiles/pkg/prompt"
	"github.com/herfiles/herfiles/pkg/template"
	"github.com/herfiles/herfiles/pkg/types"
)

// ModuleName is the display name of the editor module
const ModuleName = "Editor"

// FolderName is the module's snapshot subdirectory
const FolderName = "Editor"

// Well-known filenames inside the Editor snapshot folder
const (
	SettingsFileName   = "settings.json"
	ExtensionsTxtName  = "extensions.txt"
	ExtensionsJSONName = "extensions.json"
	AssetsFolderName   = "CustomAssets"
	FontsFolderName    = "Fonts"
)

// Options wires the module's collaborators.
type Options struct {
	Env       *paths.Env
	FS        types.FS
	Templater *template.Templater
	Resolver  *prompt.Resolver
	Detector  types.ProgramDetector
	Installer types.PackageInstaller
	CLI       types.EditorCLI
	Fonts     types.FontRegistry

	// EditorBinary is the editor CLI name, normally "code"
	EditorBinary string
}

// Module gathers and installs the editor configuration.
type Module struct {
	opts Options
	deps fileops.Deps
}

// New creates the editor module.
func New(opts Options) *Module {
	return &Module{
		opts: opts,
		deps: fileops.Deps{FS: opts.FS, Templater: opts.Templater, Resolver: opts.Resolver},
	}
}

func (m *Module) Name() string   { return ModuleName }
func (m *Module) Folder() string { return FolderName }

// Detect reports whether a live settings file exists.
func (m *Module) Detect() bool {
	return filesystem.Exists(m.opts.FS, m.opts.Env.EditorSettingsPath)
}

// Install restores the editor configuration in the fixed order
// fonts → assets → settings → extensions.
func (m *Module) Install(src string) (types.Outcome, error) {
	logger := logging.GetLogger("modules.editor")

	outcome, err := fileops.EnsureProgram(m.opts.Resolver, m.opts.Detector, m.opts.Installer,
		m.opts.EditorBinary, "visual-studio-code", "Visual Studio Code")
	if outcome != types.OutcomeSuccess {
		return outcome, err
	}

	m.installFonts(filepath.Join(src, FontsFolderName))
	m.installAssets(filepath.Join(src, AssetsFolderName))

	settingsOutcome, err := m.installSettings(src)
	switch settingsOutcome {
	case types.OutcomeSkipped:
		// Installing extensions without applying settings is pointless
		logger.Info().Msg("settings install declined, skipping extensions")
		return types.OutcomeSkipped, nil
	case types.OutcomeFailure:
		return types.OutcomeFailure, err
	}

	if err := m.installExtensions(src); err != nil {
		return types.OutcomeFailure, err
	}

	return types.OutcomeSuccess, nil
}

// installSettings restores settings.json. A snapshot without a settings
// file is nothing to do, not an error.
func (m *Module) installSettings(src string) (types.Outcome, error) {
	snapPath := filepath.Join(src, SettingsFileName)
	if !filesystem.Exists(m.opts.FS, snapPath) {
		logger := logging.GetLogger("modules.editor")
		logger.Info().Msg("snapshot holds no settings.json")
		return types.OutcomeSuccess, nil
	}

	outcome, err := fileops.InstallFile(m.deps, snapPath, m.opts.Env.EditorSettingsPath, template.StyleHome)
	if err != nil {
		return outcome, errors.Wrap(err, errors.ErrIO, "failed to install settings.json")
	}
	return outcome, nil
}
