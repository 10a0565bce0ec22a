package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/herfiles/herfiles/pkg/core"
	"github.com/herfiles/herfiles/pkg/errors"
	"github.com/herfiles/herfiles/pkg/filesystem"
	"github.com/herfiles/herfiles/pkg/testutil"
	"github.com/herfiles/herfiles/pkg/types"
)

// stubModule is a scriptable module for pipeline tests.
type stubModule struct {
	name           string
	folder         string
	detected       bool
	gatherOutcome  types.Outcome
	gatherErr      error
	installOutcome types.Outcome
	installErr     error
	gatherCalls    []string
	installCalls   []string
}

func (s *stubModule) Name() string   { return s.name }
func (s *stubModule) Folder() string { return s.folder }
func (s *stubModule) Detect() bool   { return s.detected }

func (s *stubModule) Gather(dest string) (types.Outcome, error) {
	s.gatherCalls = append(s.gatherCalls, dest)
	return s.gatherOutcome, s.gatherErr
}

func (s *stubModule) Install(src string) (types.Outcome, error) {
	s.installCalls = append(s.installCalls, src)
	return s.installOutcome, s.installErr
}

func okModule(name, folder string) *stubModule {
	return &stubModule{
		name:           name,
		folder:         folder,
		detected:       true,
		gatherOutcome:  types.OutcomeSuccess,
		installOutcome: types.OutcomeSuccess,
	}
}

func TestGatherRunsDetectedModules(t *testing.T) {
	fsys := filesystem.NewMemory()
	a := okModule("Shell Profile", "ShellProfile")
	b := okModule("Editor", "Editor")
	b.detected = false

	orch := core.New(fsys, []types.Module{a, b})
	result, err := orch.Gather(core.GatherOptions{Destination: "/snap"})
	require.NoError(t, err)

	assert.Equal(t, []string{"/snap/ShellProfile"}, a.gatherCalls)
	assert.Empty(t, b.gatherCalls)
	assert.Equal(t, core.AllSucceeded, result.Category())
	assert.True(t, filesystem.Exists(fsys, "/snap/ShellProfile"))
}

func TestGatherFailureDoesNotStopLaterModules(t *testing.T) {
	fsys := filesystem.NewMemory()
	a := okModule("Shell Profile", "ShellProfile")
	a.gatherOutcome = types.OutcomeFailure
	a.gatherErr = errors.New(errors.ErrIO, "disk full")
	b := okModule("Editor", "Editor")

	orch := core.New(fsys, []types.Module{a, b})
	result, err := orch.Gather(core.GatherOptions{Destination: "/snap"})
	require.NoError(t, err)

	assert.Len(t, b.gatherCalls, 1, "later modules still run after a failure")
	assert.Equal(t, core.Partial, result.Category())
	assert.True(t, result.HasFailures())

	outcomes := result.Outcomes()
	assert.Equal(t, types.OutcomeFailure, outcomes["Shell Profile"])
	assert.Equal(t, types.OutcomeSuccess, outcomes["Editor"])
}

func TestGatherNothingDetectedErrorsBeforeWriting(t *testing.T) {
	fsys := filesystem.NewMemory()
	a := okModule("Shell Profile", "ShellProfile")
	a.detected = false

	orch := core.New(fsys, []types.Module{a})
	result, err := orch.Gather(core.GatherOptions{Destination: "/snap"})

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNoModules))
	assert.Nil(t, result)
	assert.False(t, filesystem.Exists(fsys, "/snap"), "no snapshot directory is created")
}

func TestGatherExplicitNamesSkipDetection(t *testing.T) {
	fsys := filesystem.NewMemory()
	a := okModule("Shell Profile", "ShellProfile")
	a.detected = false

	orch := core.New(fsys, []types.Module{a})
	_, err := orch.Gather(core.GatherOptions{Destination: "/snap", Modules: []string{"ShellProfile"}})
	require.NoError(t, err)

	assert.Len(t, a.gatherCalls, 1)
}

func TestGatherUnknownModuleName(t *testing.T) {
	orch := core.New(filesystem.NewMemory(), []types.Module{okModule("Editor", "Editor")})

	_, err := orch.Gather(core.GatherOptions{Destination: "/snap", Modules: []string{"Browser"}})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestInstallMissingSourceAdvisesGather(t *testing.T) {
	orch := core.New(filesystem.NewMemory(), []types.Module{okModule("Editor", "Editor")})

	_, err := orch.Install(core.InstallOptions{Source: "/snap"})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
	assert.Contains(t, err.Error(), "gather first")
}

func TestInstallRunsOnlyPopulatedFolders(t *testing.T) {
	fsys := filesystem.NewMemory()
	testutil.WriteFile(t, fsys, "/snap/ShellProfile/profile.ps1", "x")
	require.NoError(t, fsys.MkdirAll("/snap/Editor", 0755))

	a := okModule("Shell Profile", "ShellProfile")
	b := okModule("Editor", "Editor")

	orch := core.New(fsys, []types.Module{a, b})
	result, err := orch.Install(core.InstallOptions{Source: "/snap"})
	require.NoError(t, err)

	assert.Equal(t, []string{"/snap/ShellProfile"}, a.installCalls)
	assert.Empty(t, b.installCalls, "empty snapshot folders do not run")
	assert.Equal(t, core.AllSucceeded, result.Category())
}

func TestInstallEmptySnapshotErrors(t *testing.T) {
	fsys := filesystem.NewMemory()
	require.NoError(t, fsys.MkdirAll("/snap", 0755))

	orch := core.New(fsys, []types.Module{okModule("Editor", "Editor")})
	_, err := orch.Install(core.InstallOptions{Source: "/snap"})

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNoModules))
}

func TestInstallExplicitNameWithEmptyFolderErrors(t *testing.T) {
	fsys := filesystem.NewMemory()
	testutil.WriteFile(t, fsys, "/snap/ShellProfile/profile.ps1", "x")

	orch := core.New(fsys, []types.Module{
		okModule("Shell Profile", "ShellProfile"),
		okModule("Editor", "Editor"),
	})
	_, err := orch.Install(core.InstallOptions{Source: "/snap", Modules: []string{"Editor"}})

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNoModules))
}

func TestInstallModulesRunInRegistrationOrder(t *testing.T) {
	fsys := filesystem.NewMemory()
	testutil.WriteFile(t, fsys, "/snap/ShellProfile/profile.ps1", "x")
	testutil.WriteFile(t, fsys, "/snap/Editor/settings.json", "{}")

	a := okModule("Shell Profile", "ShellProfile")
	b := okModule("Editor", "Editor")

	orch := core.New(fsys, []types.Module{a, b})
	// Caller order is reversed on purpose; registration order wins.
	result, err := orch.Install(core.InstallOptions{Source: "/snap", Modules: []string{"Editor", "Shell Profile"}})
	require.NoError(t, err)

	require.Len(t, result.Results, 2)
	assert.Equal(t, "Shell Profile", result.Results[0].Module.Name())
	assert.Equal(t, "Editor", result.Results[1].Module.Name())
}

func TestRunResultCategories(t *testing.T) {
	mod := func(name string, outcome types.Outcome) core.ModuleResult {
		return core.ModuleResult{Module: okModule(name, name), Outcome: outcome}
	}

	tests := []struct {
		name     string
		results  []core.ModuleResult
		expected core.Category
	}{
		{"all success", []core.ModuleResult{mod("a", types.OutcomeSuccess)}, core.AllSucceeded},
		{"all skipped", []core.ModuleResult{mod("a", types.OutcomeSkipped), mod("b", types.OutcomeSkipped)}, core.AllSkipped},
		{"all failed", []core.ModuleResult{mod("a", types.OutcomeFailure)}, core.AllFailed},
		{"mixed", []core.ModuleResult{mod("a", types.OutcomeSuccess), mod("b", types.OutcomeSkipped)}, core.Partial},
		{"empty", nil, core.AllFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &core.RunResult{Results: tt.results}
			assert.Equal(t, tt.expected, r.Category())
		})
	}
}
