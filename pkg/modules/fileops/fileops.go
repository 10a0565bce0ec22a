// Package fileops implements the gather/install flow shared by all
// content modules: templating on the way into the snapshot, restoration
// and confirmation-gated overwrite on the way out.
package fileops

import (
	"bytes"
	"fmt"
	"path/filepath"

	"github.com/herfiles/herfiles/pkg/compare"
	"github.com/herfiles/herfiles/pkg/errors"
	"github.com/herfiles/herfiles/pkg/logging"
	"github.com/herfiles/herfiles/pkg/prompt"
	"github.com/herfiles/herfiles/pkg/template"
	"github.com/herfiles/herfiles/pkg/types"
)

// Deps are the collaborators shared by the file operations.
type Deps struct {
	FS        types.FS
	Templater *template.Templater
	Resolver  *prompt.Resolver
}

// GatherFile copies livePath into the snapshot at snapPath, rewriting
// home paths to the placeholder. The snapshot is assumed disposable, so
// no confirmation is asked; the write is skipped when the snapshot
// already holds identical bytes, keeping repeated gathers byte-stable.
func GatherFile(d Deps, livePath, snapPath string) error {
	data, err := d.FS.ReadFile(livePath)
	if err != nil {
		return errors.Wrapf(err, errors.ErrNotFound, "cannot read %s", livePath)
	}

	content := string(data)
	if d.Templater.ContainsHomePath(content) {
		content = d.Templater.ToPortable(content)
	}

	if existing, err := d.FS.ReadFile(snapPath); err == nil && bytes.Equal(existing, []byte(content)) {
		logger := logging.GetLogger("fileops")
		logger.Debug().Str("path", snapPath).Msg("snapshot unchanged")
		return nil
	}

	if err := d.FS.MkdirAll(filepath.Dir(snapPath), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrIO, "cannot create snapshot directory for %s", snapPath)
	}
	if err := d.FS.WriteFile(snapPath, []byte(content), 0644); err != nil {
		return errors.Wrapf(err, errors.ErrIO, "cannot write %s", snapPath)
	}
	return nil
}

// InstallFile restores snapPath to livePath, replacing the placeholder
// per style. A live file with identical content short-circuits without
// prompting; a differing live file is only overwritten after the
// operator confirms (default no). Returns OutcomeSkipped on decline.
func InstallFile(d Deps, snapPath, livePath string, style template.Style) (types.Outcome, error) {
	data, err := d.FS.ReadFile(snapPath)
	if err != nil {
		return types.OutcomeFailure, errors.Wrapf(err, errors.ErrNotFound, "cannot read snapshot file %s", snapPath)
	}

	restored := []byte(d.Templater.FromPortable(string(data), style))

	cmp, err := compare.CompareContent(d.FS, restored, livePath)
	if err != nil {
		return types.OutcomeFailure, err
	}

	if cmp.AreIdentical {
		logger := logging.GetLogger("fileops")
		logger.Info().Str("path", livePath).Msg("already up to date")
		return types.OutcomeSuccess, nil
	}

	if !cmp.IsNewFile {
		question := fmt.Sprintf("%s already exists (modified %s). Overwrite it?",
			livePath, cmp.Target.ModTime.Format("2006-01-02 15:04:05"))
		if !d.Resolver.Confirm(question, false) {
			return types.OutcomeSkipped, nil
		}
	}

	if err := d.FS.MkdirAll(filepath.Dir(livePath), 0755); err != nil {
		return types.OutcomeFailure, errors.Wrapf(err, errors.ErrIO, "cannot create directory for %s", livePath)
	}
	if err := d.FS.WriteFile(livePath, restored, 0644); err != nil {
		return types.OutcomeFailure, errors.Wrapf(err, errors.ErrIO, "cannot write %s", livePath)
	}

	return types.OutcomeSuccess, nil
}

// EnsureProgram checks that the named program is installed, offering to
// install it through the package manager when absent. Returns
// OutcomeSkipped when the operator declines, OutcomeFailure when the
// install itself fails.
func EnsureProgram(res *prompt.Resolver, det types.ProgramDetector, inst types.PackageInstaller, program, packageID, description string) (types.Outcome, error) {
	if det.IsInstalled(program) {
		return types.OutcomeSuccess, nil
	}

	if !res.Confirm(fmt.Sprintf("%s is not installed. Install it now?", description), false) {
		return types.OutcomeSkipped, nil
	}

	if !inst.Install(packageID, description) {
		return types.OutcomeFailure, errors.Newf(errors.ErrExternalTool,
			"failed to install %s", description)
	}
	return types.OutcomeSuccess, nil
}
