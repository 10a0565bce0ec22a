// Package system implements the external collaborators herfiles talks
// to: PATH lookups, the OS package manager, the editor CLI and the
// font registry.
package system

import (
	"os/exec"

	"github.com/herfiles/herfiles/pkg/logging"
)

// ExecDetector detects installed programs via PATH lookup.
type ExecDetector struct{}

// NewDetector creates a new ExecDetector
func NewDetector() *ExecDetector {
	return &ExecDetector{}
}

// IsInstalled reports whether name resolves on PATH.
func (d *ExecDetector) IsInstalled(name string) bool {
	path, err := exec.LookPath(name)
	found := err == nil
	logger := logging.GetLogger("system.detector")
	logger.Debug().
		Str("program", name).
		Str("path", path).
		Bool("found", found).
		Msg("program lookup")
	return found
}
