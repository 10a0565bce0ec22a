package core

import "github.com/herfiles/herfiles/pkg/types"

// RunMode distinguishes gather from install runs.
type RunMode string

const (
	ModeGather  RunMode = "gather"
	ModeInstall RunMode = "install"
)

// Category classifies a whole run for the summary report.
type Category int

const (
	AllSucceeded Category = iota
	Partial
	AllSkipped
	AllFailed
)

func (c Category) String() string {
	switch c {
	case AllSucceeded:
		return "all succeeded"
	case AllSkipped:
		return "all skipped"
	case AllFailed:
		return "all failed"
	default:
		return "partial"
	}
}

// ModuleResult is one module's outcome within a run.
type ModuleResult struct {
	Module  types.Module
	Outcome types.Outcome
	Err     error
}

// RunResult aggregates the per-module outcomes of one gather or install
// run, in execution order.
type RunResult struct {
	Mode    RunMode
	Root    string
	Results []ModuleResult
}

// Outcomes returns the per-module outcome map keyed by module name.
func (r *RunResult) Outcomes() map[string]types.Outcome {
	out := make(map[string]types.Outcome, len(r.Results))
	for _, res := range r.Results {
		out[res.Module.Name()] = res.Outcome
	}
	return out
}

// Category classifies the run: all succeeded, all skipped, all failed,
// or a mix.
func (r *RunResult) Category() Category {
	var succeeded, skipped, failed int
	for _, res := range r.Results {
		switch res.Outcome {
		case types.OutcomeSuccess:
			succeeded++
		case types.OutcomeSkipped:
			skipped++
		default:
			failed++
		}
	}

	total := len(r.Results)
	switch {
	case total == 0:
		return AllFailed
	case succeeded == total:
		return AllSucceeded
	case skipped == total:
		return AllSkipped
	case failed == total:
		return AllFailed
	default:
		return Partial
	}
}

// HasFailures reports whether any module failed.
func (r *RunResult) HasFailures() bool {
	for _, res := range r.Results {
		if res.Outcome == types.OutcomeFailure {
			return true
		}
	}
	return false
}
