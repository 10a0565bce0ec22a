// Package modules assembles the content modules into the fixed ordered
// registry the orchestrator iterates. The list is explicit: adding a
// module means adding it here, nowhere else.
package modules

import (
	"github.com/herfiles/herfiles/pkg/config"
	"github.com/herfiles/herfiles/pkg/modules/editor"
	"github.com/herfiles/herfiles/pkg/modules/prompttheme"
	"github.com/herfiles/herfiles/pkg/modules/shellprofile"
	"github.com/herfiles/herfiles/pkg/paths"
	"github.com/herfiles/herfiles/pkg/prompt"
	"github.com/herfiles/herfiles/pkg/template"
	"github.com/herfiles/herfiles/pkg/types"
)

// Deps are the collaborators shared by every module.
type Deps struct {
	Env       *paths.Env
	FS        types.FS
	Templater *template.Templater
	Resolver  *prompt.Resolver
	Detector  types.ProgramDetector
	Installer types.PackageInstaller
	Editor    types.EditorCLI
	Fonts     types.FontRegistry
	Config    *config.Config
}

// Registry returns the built-in modules in their fixed execution order:
// shell profile, prompt theme, editor.
func Registry(d Deps) []types.Module {
	return []types.Module{
		shellprofile.New(shellprofile.Options{
			Env:         d.Env,
			FS:          d.FS,
			Templater:   d.Templater,
			Resolver:    d.Resolver,
			Detector:    d.Detector,
			Installer:   d.Installer,
			ShellBinary: d.Config.ShellBinary,
		}),
		prompttheme.New(prompttheme.Options{
			Env:          d.Env,
			FS:           d.FS,
			Templater:    d.Templater,
			Resolver:     d.Resolver,
			Detector:     d.Detector,
			Installer:    d.Installer,
			PromptBinary: d.Config.PromptBinary,
		}),
		editor.New(editor.Options{
			Env:          d.Env,
			FS:           d.FS,
			Templater:    d.Templater,
			Resolver:     d.Resolver,
			Detector:     d.Detector,
			Installer:    d.Installer,
			CLI:          d.Editor,
			Fonts:        d.Fonts,
			EditorBinary: d.Config.EditorBinary,
		}),
	}
}
