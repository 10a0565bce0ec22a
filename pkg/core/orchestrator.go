// Package core runs the gather and install pipelines: module selection,
// sequential execution with per-module failure isolation, and outcome
// aggregation.
package core

import (
	"path/filepath"

	"github.com/herfiles/herfiles/pkg/errors"
	"github.com/herfiles/herfiles/pkg/filesystem"
	"github.com/herfiles/herfiles/pkg/logging"
	"github.com/herfiles/herfiles/pkg/types"
)

// Orchestrator drives the registered modules through a run. Modules
// execute strictly sequentially in registration order; a failure inside
// one module is caught, recorded and the run proceeds to the next.
type Orchestrator struct {
	fs      types.FS
	modules []types.Module
}

// New creates an orchestrator over the given module registry.
func New(fs types.FS, modules []types.Module) *Orchestrator {
	return &Orchestrator{fs: fs, modules: modules}
}

// GatherOptions configure a gather run.
type GatherOptions struct {
	// Destination is the snapshot root to write into
	Destination string

	// Modules optionally restricts the run to the named modules.
	// When empty, modules with discoverable live configuration run.
	Modules []string
}

// Gather runs system → snapshot for the selected modules.
// With no explicit module list, only modules whose live configuration
// is discoverable participate; if none are, the run errors before any
// write happens.
func (o *Orchestrator) Gather(opts GatherOptions) (*RunResult, error) {
	logger := logging.GetLogger("core.gather")

	selected, err := o.selectForGather(opts.Modules)
	if err != nil {
		return nil, err
	}

	result := &RunResult{Mode: ModeGather, Root: opts.Destination}
	for _, mod := range selected {
		dest := filepath.Join(opts.Destination, mod.Folder())
		logger.Info().Str("module", mod.Name()).Str("dest", dest).Msg("gathering")

		if err := o.fs.MkdirAll(dest, 0755); err != nil {
			result.Results = append(result.Results, ModuleResult{
				Module:  mod,
				Outcome: types.OutcomeFailure,
				Err:     errors.Wrapf(err, errors.ErrIO, "cannot create %s", dest),
			})
			continue
		}

		outcome, err := mod.Gather(dest)
		if err != nil {
			logger.Error().Err(err).Str("module", mod.Name()).Msg("gather failed")
		}
		result.Results = append(result.Results, ModuleResult{Module: mod, Outcome: outcome, Err: err})
	}

	return result, nil
}

// InstallOptions configure an install run.
type InstallOptions struct {
	// Source is the snapshot root to read from
	Source string

	// Modules optionally restricts the run to the named modules.
	// When empty, modules with a populated snapshot subfolder run.
	Modules []string
}

// Install runs snapshot → system for the selected modules. A missing
// snapshot root fails immediately, advising to gather first.
func (o *Orchestrator) Install(opts InstallOptions) (*RunResult, error) {
	logger := logging.GetLogger("core.install")

	if !filesystem.Exists(o.fs, opts.Source) {
		return nil, errors.Newf(errors.ErrNotFound,
			"snapshot directory %s does not exist; run gather first", opts.Source)
	}

	selected, err := o.selectForInstall(opts.Source, opts.Modules)
	if err != nil {
		return nil, err
	}

	result := &RunResult{Mode: ModeInstall, Root: opts.Source}
	for _, mod := range selected {
		src := filepath.Join(opts.Source, mod.Folder())
		logger.Info().Str("module", mod.Name()).Str("src", src).Msg("installing")

		outcome, err := mod.Install(src)
		if err != nil {
			logger.Error().Err(err).Str("module", mod.Name()).Msg("install failed")
		}
		result.Results = append(result.Results, ModuleResult{Module: mod, Outcome: outcome, Err: err})
	}

	return result, nil
}

// selectForGather picks the modules for a gather run. Explicit names are
// validated against the registry; otherwise detection decides.
func (o *Orchestrator) selectForGather(names []string) ([]types.Module, error) {
	if len(names) > 0 {
		return o.byNames(names)
	}

	var selected []types.Module
	for _, mod := range o.modules {
		if mod.Detect() {
			selected = append(selected, mod)
		}
	}
	if len(selected) == 0 {
		return nil, errors.New(errors.ErrNoModules,
			"no modules with discoverable system configuration; nothing to gather")
	}
	return selected, nil
}

// selectForInstall picks the modules for an install run: those with a
// populated snapshot subfolder, optionally filtered to explicit names.
func (o *Orchestrator) selectForInstall(source string, names []string) ([]types.Module, error) {
	candidates := o.modules
	explicit := len(names) > 0
	if explicit {
		var err error
		candidates, err = o.byNames(names)
		if err != nil {
			return nil, err
		}
	}

	var selected []types.Module
	for _, mod := range candidates {
		if filesystem.DirHasFiles(o.fs, filepath.Join(source, mod.Folder())) {
			selected = append(selected, mod)
		}
	}

	if len(selected) == 0 {
		if explicit {
			return nil, errors.Newf(errors.ErrNoModules,
				"none of the requested modules have a populated snapshot under %s", source)
		}
		return nil, errors.Newf(errors.ErrNoModules,
			"no module snapshots found under %s; run gather first", source)
	}
	return selected, nil
}

// byNames resolves module names or folder names against the registry,
// preserving registration order rather than caller order.
func (o *Orchestrator) byNames(names []string) ([]types.Module, error) {
	wanted := make(map[string]bool, len(names))
	for _, name := range names {
		wanted[name] = true
	}

	var selected []types.Module
	for _, mod := range o.modules {
		if wanted[mod.Name()] || wanted[mod.Folder()] {
			selected = append(selected, mod)
			delete(wanted, mod.Name())
			delete(wanted, mod.Folder())
		}
	}

	if len(wanted) > 0 {
		for name := range wanted {
			return nil, errors.Newf(errors.ErrInvalidInput, "unknown module %q", name)
		}
	}
	return selected, nil
}
