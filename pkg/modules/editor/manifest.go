package editor

import (
	"encoding/json"
	"path/filepath"

	"github.com/herfiles/herfiles/pkg/errors"
	"github.com/herfiles/herfiles/pkg/types"
)

// ManifestFileName is the index written next to gathered assets/fonts.
// It is the join key between what the snapshot contains and where it
// must be restored.
const ManifestFileName = "manifest.json"

// AssetEntry records one gathered custom CSS/JS asset.
type AssetEntry struct {
	FileName  string `json:"fileName"`
	SourceURI string `json:"sourceUri"`
}

// FontEntry records one gathered font file and the family it belongs to.
type FontEntry struct {
	FileName string `json:"fileName"`
	Family   string `json:"family"`
}

func writeManifest(fsys types.FS, dir string, entries interface{}) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to encode manifest")
	}
	data = append(data, '\n')

	if err := fsys.MkdirAll(dir, 0755); err != nil {
		return errors.Wrapf(err, errors.ErrIO, "failed to create %s", dir)
	}
	path := filepath.Join(dir, ManifestFileName)
	if err := fsys.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrIO, "failed to write %s", path)
	}
	return nil
}

func readManifest(fsys types.FS, dir string, entries interface{}) error {
	path := filepath.Join(dir, ManifestFileName)
	data, err := fsys.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, errors.ErrNotFound, "no manifest at %s", path)
	}
	if err := json.Unmarshal(data, entries); err != nil {
		return errors.Wrapf(err, errors.ErrParse, "malformed manifest at %s", path)
	}
	return nil
}
