package editor

import (
	"path/filepath"
	"strings"

	"github.com/herfiles/herfiles/pkg/compare"
	"github.com/herfiles/herfiles/pkg/filesystem"
	"github.com/herfiles/herfiles/pkg/logging"
)

// fontFamilyKeys are the settings keys whose values name font families.
var fontFamilyKeys = []string{
	"editor.fontFamily",
	"terminal.integrated.fontFamily",
}

// genericFamilies are CSS generic families that never map to a font file.
var genericFamilies = map[string]bool{
	"monospace":     true,
	"serif":         true,
	"sans-serif":    true,
	"cursive":       true,
	"fantasy":       true,
	"system-ui":     true,
	"ui-monospace":  true,
	"ui-serif":      true,
	"ui-sans-serif": true,
}

// gatherFonts resolves the font families named in the settings to
// installed font files and copies them into the Fonts snapshot folder
// with a manifest. One unresolvable family or missing file does not
// abort the batch.
func (m *Module) gatherFonts(dest string, settings map[string]interface{}) {
	logger := logging.GetLogger("modules.editor.fonts")

	families := fontFamilies(settings)
	if len(families) == 0 {
		return
	}

	installed, err := m.opts.Fonts.ListInstalled()
	if err != nil {
		logger.Warn().Err(err).Msg("cannot list installed fonts, skipping font gathering")
		return
	}

	fontsDir := filepath.Join(dest, FontsFolderName)
	var entries []FontEntry

	for _, family := range families {
		matched := false
		for name, path := range installed {
			if !matchesFamily(name, family) {
				continue
			}
			base := filepath.Base(path)
			if err := filesystem.CopyFile(m.opts.FS, path, filepath.Join(fontsDir, base)); err != nil {
				logger.Warn().Err(err).Str("font", name).Msg("failed to gather font file")
				continue
			}
			entries = append(entries, FontEntry{FileName: base, Family: family})
			matched = true
		}
		if !matched {
			logger.Warn().Str("family", family).Msg("no installed font matches family")
		}
	}

	if len(entries) > 0 {
		if err := writeManifest(m.opts.FS, fontsDir, entries); err != nil {
			logger.Warn().Err(err).Msg("failed to write font manifest")
		}
	}
}

// installFonts registers gathered font files with the system. Fonts
// already present with identical content are left alone.
func (m *Module) installFonts(dir string) {
	logger := logging.GetLogger("modules.editor.fonts")

	var entries []FontEntry
	if err := readManifest(m.opts.FS, dir, &entries); err != nil {
		logger.Debug().Err(err).Msg("no usable font manifest, skipping fonts")
		return
	}

	for _, entry := range entries {
		src := filepath.Join(dir, entry.FileName)
		target := filepath.Join(m.opts.Env.FontsDir, entry.FileName)

		cmp, err := compare.Compare(m.opts.FS, src, target)
		if err != nil {
			logger.Warn().Err(err).Str("font", entry.FileName).Msg("cannot compare font file")
			continue
		}
		if cmp.AreIdentical {
			continue
		}

		if err := m.opts.Fonts.Register(entry.Family, src); err != nil {
			logger.Warn().Err(err).Str("font", entry.FileName).Msg("failed to register font")
			continue
		}
		logger.Info().Str("font", entry.FileName).Str("family", entry.Family).Msg("font installed")
	}
}

// fontFamilies extracts the primary font family from each known
// settings key: first comma-separated token, quotes trimmed, generic
// families skipped.
func fontFamilies(settings map[string]interface{}) []string {
	var families []string
	seen := make(map[string]bool)

	for _, key := range fontFamilyKeys {
		value, ok := settings[key].(string)
		if !ok {
			continue
		}

		first := strings.SplitN(value, ",", 2)[0]
		first = strings.Trim(strings.TrimSpace(first), `'"`)
		if first == "" || genericFamilies[strings.ToLower(first)] {
			continue
		}
		if !seen[first] {
			seen[first] = true
			families = append(families, first)
		}
	}

	return families
}

// matchesFamily reports whether an installed font name belongs to a
// family: exact-name-prefix match, ignoring case and spaces so that
// "FiraCode-Regular" matches "Fira Code".
func matchesFamily(name, family string) bool {
	return strings.HasPrefix(fold(name), fold(family))
}

func fold(s string) string {
	return strings.ToLower(strings.ReplaceAll(s, " ", ""))
}
