package system

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/herfiles/herfiles/pkg/errors"
	"github.com/herfiles/herfiles/pkg/logging"
)

// CodeCLI wraps the editor's command-line interface.
type CodeCLI struct {
	// Binary is the editor CLI name, normally "code".
	Binary string
}

// NewEditorCLI creates a CLI wrapper for the given editor binary.
func NewEditorCLI(binary string) *CodeCLI {
	return &CodeCLI{Binary: binary}
}

// ListExtensions returns the identifiers of installed extensions.
func (c *CodeCLI) ListExtensions() ([]string, error) {
	out, err := exec.Command(c.Binary, "--list-extensions").Output()
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrExternalTool,
			"%s --list-extensions failed", c.Binary)
	}

	var ids []string
	for _, line := range strings.Split(string(out), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			ids = append(ids, line)
		}
	}
	return ids, nil
}

// InstallExtension installs a single extension by identifier.
func (c *CodeCLI) InstallExtension(id string) error {
	logger := logging.GetLogger("system.editor")
	logger.Debug().Str("extension", id).Msg("installing extension")

	out, err := exec.Command(c.Binary, "--install-extension", id).CombinedOutput()
	if err != nil {
		logger.Warn().Err(err).Str("extension", id).Str("output", string(out)).
			Msg("extension install failed")
		return errors.Wrapf(err, errors.ErrExternalTool,
			"failed to install extension %s", id)
	}
	return nil
}

// OpenAt opens the editor at the given file and line.
func (c *CodeCLI) OpenAt(path string, line int) error {
	arg := fmt.Sprintf("%s:%d", path, line)
	if err := exec.Command(c.Binary, "--goto", arg).Start(); err != nil {
		return errors.Wrapf(err, errors.ErrExternalTool,
			"failed to open editor at %s", arg)
	}
	return nil
}
