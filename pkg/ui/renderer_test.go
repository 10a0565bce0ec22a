package ui_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/herfiles/herfiles/pkg/core"
	"github.com/herfiles/herfiles/pkg/errors"
	"github.com/herfiles/herfiles/pkg/types"
	"github.com/herfiles/herfiles/pkg/ui"
)

type fakeModule struct {
	name string
	hint string
}

func (f *fakeModule) Name() string                          { return f.name }
func (f *fakeModule) Folder() string                        { return f.name }
func (f *fakeModule) Detect() bool                          { return true }
func (f *fakeModule) Gather(string) (types.Outcome, error)  { return types.OutcomeSuccess, nil }
func (f *fakeModule) Install(string) (types.Outcome, error) { return types.OutcomeSuccess, nil }
func (f *fakeModule) PostInstallHint() string               { return f.hint }

func TestSummaryListsEveryModule(t *testing.T) {
	var out bytes.Buffer
	r := ui.NewRendererTo(&out)

	r.Summary(&core.RunResult{
		Mode: core.ModeGather,
		Results: []core.ModuleResult{
			{Module: &fakeModule{name: "Shell Profile"}, Outcome: types.OutcomeSuccess},
			{Module: &fakeModule{name: "Prompt Theme"}, Outcome: types.OutcomeSkipped},
			{Module: &fakeModule{name: "Editor"}, Outcome: types.OutcomeFailure,
				Err: errors.New(errors.ErrIO, "disk full")},
		},
	})

	text := out.String()
	assert.Contains(t, text, "Shell Profile: success")
	assert.Contains(t, text, "Prompt Theme: skipped")
	assert.Contains(t, text, "Editor: failed")
	assert.Contains(t, text, "disk full")
	assert.Contains(t, text, "partial")
}

func TestSummaryIndicators(t *testing.T) {
	var out bytes.Buffer
	ui.NewRendererTo(&out).Summary(&core.RunResult{
		Mode: core.ModeGather,
		Results: []core.ModuleResult{
			{Module: &fakeModule{name: "a"}, Outcome: types.OutcomeSuccess},
			{Module: &fakeModule{name: "b"}, Outcome: types.OutcomeSkipped},
			{Module: &fakeModule{name: "c"}, Outcome: types.OutcomeFailure},
		},
	})

	text := out.String()
	assert.Contains(t, text, ui.SuccessIndicator)
	assert.Contains(t, text, ui.SkippedIndicator)
	assert.Contains(t, text, ui.ErrorIndicator)
}

func TestSummaryShowsHintsOnInstallOnly(t *testing.T) {
	mod := &fakeModule{name: "Shell Profile", hint: "Reload your shell profile"}
	result := func(mode core.RunMode) *core.RunResult {
		return &core.RunResult{
			Mode:    mode,
			Results: []core.ModuleResult{{Module: mod, Outcome: types.OutcomeSuccess}},
		}
	}

	var install bytes.Buffer
	ui.NewRendererTo(&install).Summary(result(core.ModeInstall))
	assert.Contains(t, install.String(), "Reload your shell profile")

	var gather bytes.Buffer
	ui.NewRendererTo(&gather).Summary(result(core.ModeGather))
	assert.NotContains(t, gather.String(), "Reload your shell profile")
}

func TestSummaryNoHintForSkippedModule(t *testing.T) {
	mod := &fakeModule{name: "Shell Profile", hint: "Reload your shell profile"}

	var out bytes.Buffer
	ui.NewRendererTo(&out).Summary(&core.RunResult{
		Mode:    core.ModeInstall,
		Results: []core.ModuleResult{{Module: mod, Outcome: types.OutcomeSkipped}},
	})

	assert.NotContains(t, out.String(), "Reload your shell profile")
}

func TestBannerNamesModeAndRoot(t *testing.T) {
	var out bytes.Buffer
	ui.NewRendererTo(&out).Banner(core.ModeInstall, "/home/alice/dotfiles")

	text := out.String()
	assert.Contains(t, text, "Installing")
	assert.Contains(t, text, "/home/alice/dotfiles")
}
