package editor

import (
	"path/filepath"
	"strings"

	"github.com/pterm/pterm"

	"github.com/herfiles/herfiles/pkg/errors"
	"github.com/herfiles/herfiles/pkg/logging"
)

// installExtensions installs every extension from the snapshot list
// that the editor does not already have. Identifier comparison is
// case-insensitive. Each install runs sequentially with a progress
// spinner; a single failure does not abort the remaining batch.
func (m *Module) installExtensions(src string) error {
	logger := logging.GetLogger("modules.editor.extensions")

	raw, err := m.opts.FS.ReadFile(filepath.Join(src, ExtensionsTxtName))
	if err != nil {
		logger.Debug().Msg("snapshot holds no extension list")
		return nil
	}
	wanted := splitExtensionList(string(raw))
	if len(wanted) == 0 {
		return nil
	}

	installed, err := m.opts.CLI.ListExtensions()
	if err != nil {
		return errors.Wrap(err, errors.ErrExternalTool, "could not list installed extensions")
	}

	missing := missingExtensions(wanted, installed)
	if len(missing) == 0 {
		logger.Info().Int("wanted", len(wanted)).Msg("all extensions already installed")
		return nil
	}

	failed := 0
	for _, id := range missing {
		spinner, _ := pterm.DefaultSpinner.Start("Installing extension " + id)
		if err := m.opts.CLI.InstallExtension(id); err != nil {
			if spinner != nil {
				spinner.Fail("Failed to install " + id)
			}
			logger.Warn().Err(err).Str("extension", id).Msg("extension install failed")
			failed++
			continue
		}
		if spinner != nil {
			spinner.Success("Installed " + id)
		}
	}

	if failed > 0 {
		return errors.Newf(errors.ErrExternalTool,
			"%d of %d extensions failed to install", failed, len(missing))
	}
	return nil
}

// missingExtensions returns the wanted identifiers absent from the
// installed set, compared case-insensitively. Order follows wanted.
func missingExtensions(wanted, installed []string) []string {
	have := make(map[string]bool, len(installed))
	for _, id := range installed {
		have[strings.ToLower(id)] = true
	}

	var missing []string
	for _, id := range wanted {
		if !have[strings.ToLower(id)] {
			missing = append(missing, id)
		}
	}
	return missing
}

func splitExtensionList(raw string) []string {
	var ids []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			ids = append(ids, line)
		}
	}
	return ids
}
