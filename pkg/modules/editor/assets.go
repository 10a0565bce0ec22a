package editor

import (
	"net/url"
	"path/filepath"
	"strings"

	"github.com/herfiles/herfiles/pkg/compare"
	"github.com/herfiles/herfiles/pkg/filesystem"
	"github.com/herfiles/herfiles/pkg/logging"
)

// gatherAssets copies each local CSS/JS asset referenced by a file://
// URI in the settings into the CustomAssets snapshot folder, writes the
// manifest, and returns the settings content with those URIs rewritten
// to the managed-directory copies. One missing asset does not abort the
// rest.
func (m *Module) gatherAssets(dest string, settings map[string]interface{}, content string) string {
	logger := logging.GetLogger("modules.editor.assets")

	uris := collectAssetURIs(settings)
	if len(uris) == 0 {
		return content
	}

	assetsDir := filepath.Join(dest, AssetsFolderName)
	var entries []AssetEntry

	for _, uri := range uris {
		local := uriToLocalPath(uri)
		base := filepath.Base(local)

		if err := filesystem.CopyFile(m.opts.FS, local, filepath.Join(assetsDir, base)); err != nil {
			logger.Warn().Err(err).Str("uri", uri).Msg("failed to gather asset")
			continue
		}

		entries = append(entries, AssetEntry{FileName: base, SourceURI: uri})

		// Point the snapshot settings at the managed-directory copy the
		// install will create. The managed dir lives under home, so the
		// rewritten URI templates cleanly.
		managed := "file://" + filepath.ToSlash(filepath.Join(m.opts.Env.ManagedAssetsDir(), base))
		content = strings.ReplaceAll(content, uri, managed)

		logger.Info().Str("asset", base).Msg("asset gathered")
	}

	if len(entries) > 0 {
		if err := writeManifest(m.opts.FS, assetsDir, entries); err != nil {
			logger.Warn().Err(err).Msg("failed to write asset manifest")
		}
	}

	return content
}

// installAssets restores gathered assets into the managed directory.
// The managed directory is owned by herfiles outright, so differing
// copies are refreshed without prompting; identical copies are left
// untouched.
func (m *Module) installAssets(dir string) {
	logger := logging.GetLogger("modules.editor.assets")

	var entries []AssetEntry
	if err := readManifest(m.opts.FS, dir, &entries); err != nil {
		logger.Debug().Err(err).Msg("no usable asset manifest, skipping assets")
		return
	}

	for _, entry := range entries {
		src := filepath.Join(dir, entry.FileName)
		target := filepath.Join(m.opts.Env.ManagedAssetsDir(), entry.FileName)

		cmp, err := compare.Compare(m.opts.FS, src, target)
		if err != nil {
			logger.Warn().Err(err).Str("asset", entry.FileName).Msg("cannot compare asset")
			continue
		}
		if cmp.AreIdentical {
			continue
		}

		if err := filesystem.CopyFile(m.opts.FS, src, target); err != nil {
			logger.Warn().Err(err).Str("asset", entry.FileName).Msg("failed to install asset")
			continue
		}
		logger.Info().Str("asset", entry.FileName).Str("target", target).Msg("asset installed")
	}
}

// collectAssetURIs walks the parsed settings for file:// URIs that
// reference local CSS or JS files.
func collectAssetURIs(v interface{}) []string {
	var uris []string
	seen := make(map[string]bool)

	var walk func(v interface{})
	walk = func(v interface{}) {
		switch val := v.(type) {
		case string:
			if isAssetURI(val) && !seen[val] {
				seen[val] = true
				uris = append(uris, val)
			}
		case []interface{}:
			for _, item := range val {
				walk(item)
			}
		case map[string]interface{}:
			for _, item := range val {
				walk(item)
			}
		}
	}
	walk(v)

	return uris
}

func isAssetURI(s string) bool {
	if !strings.HasPrefix(s, "file://") {
		return false
	}
	ext := strings.ToLower(filepath.Ext(s))
	return ext == ".css" || ext == ".js"
}

// uriToLocalPath converts a file:// URI to a local filesystem path.
func uriToLocalPath(uri string) string {
	path := strings.TrimPrefix(uri, "file://")
	if unescaped, err := url.PathUnescape(path); err == nil {
		path = unescaped
	}
	return filepath.FromSlash(path)
}
