package editor

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/herfiles/herfiles/pkg/errors"
	"github.com/herfiles/herfiles/pkg/jsonc"
	"github.com/herfiles/herfiles/pkg/logging"
	"github.com/herfiles/herfiles/pkg/types"
)

// Gather reads the live settings file, gathers the assets and fonts it
// references, then writes the templated settings plus the extension
// lists into the snapshot. A settings file that fails to parse (after
// comment stripping) degrades gracefully: the asset and font sub-gathers
// are skipped but the raw settings are still templated and copied.
func (m *Module) Gather(dest string) (types.Outcome, error) {
	logger := logging.GetLogger("modules.editor")

	raw, err := m.opts.FS.ReadFile(m.opts.Env.EditorSettingsPath)
	if err != nil {
		logger.Info().Str("path", m.opts.Env.EditorSettingsPath).Msg("no editor settings found, nothing to gather")
		return types.OutcomeSuccess, nil
	}

	content := string(raw)

	settings, parseErr := parseSettings(raw)
	if parseErr != nil {
		logger.Warn().Err(parseErr).
			Msg("settings do not parse as JSON after comment stripping, skipping asset and font gathering")
	} else {
		content = m.gatherAssets(dest, settings, content)
		m.gatherFonts(dest, settings)
	}

	templated := m.opts.Templater.ToPortable(content)
	if err := m.writeSnapshotFile(filepath.Join(dest, SettingsFileName), []byte(templated)); err != nil {
		return types.OutcomeFailure, err
	}

	m.gatherExtensions(dest)

	return types.OutcomeSuccess, nil
}

// parseSettings strips comments from the comment-tolerant settings file
// and decodes the remaining JSON.
func parseSettings(raw []byte) (map[string]interface{}, error) {
	var settings map[string]interface{}
	if err := json.Unmarshal(jsonc.Strip(raw), &settings); err != nil {
		return nil, errors.Wrap(err, errors.ErrParse, "invalid settings JSON")
	}
	return settings, nil
}

// writeSnapshotFile writes content into the snapshot, skipping the
// write when the file already holds identical bytes so repeated gathers
// stay byte-stable.
func (m *Module) writeSnapshotFile(path string, content []byte) error {
	if existing, err := m.opts.FS.ReadFile(path); err == nil && bytes.Equal(existing, content) {
		return nil
	}
	if err := m.opts.FS.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrIO, "failed to create directory for %s", path)
	}
	if err := m.opts.FS.WriteFile(path, content, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrIO, "failed to write %s", path)
	}
	return nil
}

// gatherExtensions writes the installed extension identifiers as a flat
// list plus the editor's raw extension index. A failing editor CLI only
// costs the extension snapshot, not the rest of the gather.
func (m *Module) gatherExtensions(dest string) {
	logger := logging.GetLogger("modules.editor")

	ids, err := m.opts.CLI.ListExtensions()
	if err != nil {
		logger.Warn().Err(err).Msg("could not list extensions, skipping extension gathering")
		return
	}

	flat := strings.Join(ids, "\n") + "\n"
	if err := m.writeSnapshotFile(filepath.Join(dest, ExtensionsTxtName), []byte(flat)); err != nil {
		logger.Warn().Err(err).Msg("failed to write extension list")
	}

	raw, err := m.opts.FS.ReadFile(m.opts.Env.EditorExtensionsJSON)
	if err != nil {
		logger.Debug().Str("path", m.opts.Env.EditorExtensionsJSON).Msg("no raw extension index to gather")
		return
	}
	templated := m.opts.Templater.ToPortable(string(raw))
	if err := m.writeSnapshotFile(filepath.Join(dest, ExtensionsJSONName), []byte(templated)); err != nil {
		logger.Warn().Err(err).Msg("failed to write raw extension index")
	}
}
