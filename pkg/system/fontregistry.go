package system

import (
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/beevik/etree"

	"github.com/herfiles/herfiles/pkg/errors"
	"github.com/herfiles/herfiles/pkg/filesystem"
	"github.com/herfiles/herfiles/pkg/logging"
	"github.com/herfiles/herfiles/pkg/paths"
	"github.com/herfiles/herfiles/pkg/types"
)

// FontconfigRegistry lists and registers fonts through the fontconfig
// conventions: font directories come from fonts.conf plus the XDG user
// fonts dir, and registration is a copy into the user fonts dir followed
// by a cache refresh.
type FontconfigRegistry struct {
	fs       types.FS
	fontsDir string
	dirs     []string
}

// NewFontRegistry builds a registry from the environment's font
// locations. Unreadable or malformed fonts.conf files are skipped.
func NewFontRegistry(fsys types.FS, env *paths.Env) *FontconfigRegistry {
	logger := logging.GetLogger("system.fonts")

	dirs := []string{env.FontsDir}
	for _, conf := range env.FontConfigFiles {
		confDirs, err := parseFontDirs(fsys, conf, env.Home)
		if err != nil {
			logger.Debug().Err(err).Str("file", conf).Msg("skipping fontconfig file")
			continue
		}
		dirs = append(dirs, confDirs...)
	}

	return &FontconfigRegistry{
		fs:       fsys,
		fontsDir: env.FontsDir,
		dirs:     dirs,
	}
}

// parseFontDirs extracts <dir> entries from a fontconfig XML file.
func parseFontDirs(fsys types.FS, path, home string) ([]string, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, err
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, errors.Wrapf(err, errors.ErrParse, "malformed fontconfig file %s", path)
	}

	var dirs []string
	for _, el := range doc.FindElements("//dir") {
		dir := strings.TrimSpace(el.Text())
		if dir == "" {
			continue
		}
		switch el.SelectAttrValue("prefix", "") {
		case "xdg":
			// relative to XDG_DATA_HOME; the user fonts dir is already
			// in the search list, skip to avoid duplicates
			continue
		case "":
			if strings.HasPrefix(dir, "~") {
				dir = filepath.Join(home, strings.TrimPrefix(dir, "~"))
			}
		}
		dirs = append(dirs, dir)
	}
	return dirs, nil
}

// ListInstalled maps installed font names (file name stems) to their
// file paths. Later directories do not override earlier ones.
func (r *FontconfigRegistry) ListInstalled() (map[string]string, error) {
	fonts := make(map[string]string)

	for _, dir := range r.dirs {
		entries, err := r.fs.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			name := entry.Name()
			ext := strings.ToLower(filepath.Ext(name))
			if ext != ".ttf" && ext != ".otf" {
				continue
			}
			stem := strings.TrimSuffix(name, filepath.Ext(name))
			if _, seen := fonts[stem]; !seen {
				fonts[stem] = filepath.Join(dir, name)
			}
		}
	}

	return fonts, nil
}

// Register copies the font file into the user fonts dir and refreshes
// the font cache. A failed cache refresh is tolerated: the font is on
// disk and will be picked up eventually.
func (r *FontconfigRegistry) Register(name, path string) error {
	logger := logging.GetLogger("system.fonts")

	dst := filepath.Join(r.fontsDir, filepath.Base(path))
	if err := filesystem.CopyFile(r.fs, path, dst); err != nil {
		return errors.Wrapf(err, errors.ErrIO, "failed to register font %s", name)
	}

	if out, err := exec.Command("fc-cache", "-f", r.fontsDir).CombinedOutput(); err != nil {
		logger.Warn().Err(err).Str("output", string(out)).Msg("fc-cache refresh failed")
	}

	logger.Info().Str("font", name).Str("path", dst).Msg("font registered")
	return nil
}
