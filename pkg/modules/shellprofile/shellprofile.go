// Package shellprofile manages the PowerShell profile.
package shellprofile

import (
	"path/filepath"

	"github.com/herfiles/herfiles/pkg/filesystem"
	"github.com/herfiles/herfiles/pkg/modules/fileops"
	"github.com/herfiles/herfiles/pkg/paths"
	"github.com/herfiles/herfiles/pkg/prompt"
	"github.com/herfiles/herfiles/pkg/template"
	"github.com/herfiles/herfiles/pkg/types"
)

// ModuleName is the display name of the shell profile module
const ModuleName = "Shell Profile"

// FolderName is the module's snapshot subdirectory
const FolderName = "ShellProfile"

// ProfileFileName is the well-known snapshot filename for the profile
const ProfileFileName = "profile.ps1"

// Options wires the module's collaborators.
type Options struct {
	Env       *paths.Env
	FS        types.FS
	Templater *template.Templater
	Resolver  *prompt.Resolver
	Detector  types.ProgramDetector
	Installer types.PackageInstaller

	// ShellBinary is the program required before installing, normally pwsh
	ShellBinary string
}

// Module gathers and installs the shell profile.
type Module struct {
	opts Options
	deps fileops.Deps
}

// New creates the shell profile module.
func New(opts Options) *Module {
	return &Module{
		opts: opts,
		deps: fileops.Deps{FS: opts.FS, Templater: opts.Templater, Resolver: opts.Resolver},
	}
}

func (m *Module) Name() string   { return ModuleName }
func (m *Module) Folder() string { return FolderName }

// Detect reports whether a live shell profile exists.
func (m *Module) Detect() bool {
	return filesystem.Exists(m.opts.FS, m.opts.Env.ShellProfilePath)
}

// Gather copies the live profile into the snapshot, templated.
func (m *Module) Gather(dest string) (types.Outcome, error) {
	snapPath := filepath.Join(dest, ProfileFileName)
	if err := fileops.GatherFile(m.deps, m.opts.Env.ShellProfilePath, snapPath); err != nil {
		return types.OutcomeFailure, err
	}
	return types.OutcomeSuccess, nil
}

// Install restores the profile to its live location. The shell itself
// must be present first; a declined shell installation skips the module.
func (m *Module) Install(src string) (types.Outcome, error) {
	outcome, err := fileops.EnsureProgram(m.opts.Resolver, m.opts.Detector, m.opts.Installer,
		m.opts.ShellBinary, "powershell", "PowerShell")
	if outcome != types.OutcomeSuccess {
		return outcome, err
	}

	snapPath := filepath.Join(src, ProfileFileName)
	return fileops.InstallFile(m.deps, snapPath, m.opts.Env.ShellProfilePath, template.StyleHome)
}

// PostInstallHint tells the operator how to pick up the new profile.
func (m *Module) PostInstallHint() string {
	return "Reload your shell profile: . $PROFILE"
}
