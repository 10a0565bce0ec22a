// Package ui renders the run banner and the categorized per-module
// summary on the terminal.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/pterm/pterm"

	"github.com/herfiles/herfiles/pkg/core"
	"github.com/herfiles/herfiles/pkg/types"
)

// Renderer writes human-facing reports. Test code injects a buffer.
type Renderer struct {
	out io.Writer
}

// NewRenderer creates a renderer writing to stdout.
func NewRenderer() *Renderer {
	return &Renderer{out: os.Stdout}
}

// NewRendererTo creates a renderer writing to w.
func NewRendererTo(w io.Writer) *Renderer {
	return &Renderer{out: w}
}

// Banner announces the run before modules execute.
func (r *Renderer) Banner(mode core.RunMode, root string) {
	title := "Gathering configuration into"
	if mode == core.ModeInstall {
		title = "Installing configuration from"
	}
	pterm.DefaultSection.WithWriter(r.out).Printfln("herfiles — %s %s", title, root)
}

// Summary renders the per-module outcomes, the run category and any
// post-install hints.
func (r *Renderer) Summary(result *core.RunResult) {
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, TitleStyle.Render("Summary"))

	for _, res := range result.Results {
		line := fmt.Sprintf("%s %s: %s", indicatorFor(res.Outcome), res.Module.Name(), res.Outcome)
		if res.Err != nil {
			line += " " + MutedStyle.Render("("+res.Err.Error()+")")
		}
		fmt.Fprintln(r.out, "  "+line)
	}

	fmt.Fprintln(r.out)
	category := result.Category()
	switch category {
	case core.AllSucceeded:
		fmt.Fprintln(r.out, SuccessStyle.Render(category.String()))
	case core.AllFailed:
		fmt.Fprintln(r.out, ErrorStyle.Render(category.String()))
	default:
		fmt.Fprintln(r.out, WarningStyle.Render(category.String()))
	}

	r.hints(result)
}

// hints surfaces follow-up commands from modules that installed
// successfully.
func (r *Renderer) hints(result *core.RunResult) {
	if result.Mode != core.ModeInstall {
		return
	}
	for _, res := range result.Results {
		if res.Outcome != types.OutcomeSuccess {
			continue
		}
		if hinter, ok := res.Module.(types.Hinter); ok {
			if hint := hinter.PostInstallHint(); hint != "" {
				fmt.Fprintln(r.out, InfoStyle.Render("→ ")+hint)
			}
		}
	}
}

func indicatorFor(o types.Outcome) string {
	switch o {
	case types.OutcomeSuccess:
		return SuccessIndicator
	case types.OutcomeSkipped:
		return SkippedIndicator
	default:
		return ErrorIndicator
	}
}
