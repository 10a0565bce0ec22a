// Package compare classifies a source and target file as identical,
// differing or new, using content hashes. Modification time and size are
// unreliable after cross-machine copies, so the hash is the sole oracle.
package compare

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/herfiles/herfiles/pkg/errors"
	"github.com/herfiles/herfiles/pkg/logging"
	"github.com/herfiles/herfiles/pkg/types"
)

// Compare hashes sourcePath and targetPath and reports whether they are
// identical. A missing source is an error; a missing target yields
// IsNewFile. When the files differ, both modification times are logged
// so the operator can eyeball them before deciding what to overwrite.
func Compare(fsys types.FS, sourcePath, targetPath string) (types.FileComparison, error) {
	logger := logging.GetLogger("compare")

	source, err := describe(fsys, sourcePath)
	if err != nil {
		return types.FileComparison{}, errors.Wrapf(err, errors.ErrNotFound,
			"source file %s not found", sourcePath)
	}

	if _, err := fsys.Stat(targetPath); err != nil {
		return types.FileComparison{
			AreIdentical: false,
			IsNewFile:    true,
			Source:       source,
		}, nil
	}

	target, err := describe(fsys, targetPath)
	if err != nil {
		return types.FileComparison{}, errors.Wrapf(err, errors.ErrIO,
			"failed to read target file %s", targetPath)
	}

	result := types.FileComparison{
		AreIdentical: source.ContentHash == target.ContentHash,
		Source:       source,
		Target:       target,
	}

	if !result.AreIdentical {
		logger.Info().
			Str("source", sourcePath).
			Time("sourceModified", source.ModTime).
			Str("target", targetPath).
			Time("targetModified", target.ModTime).
			Msg("files differ")
	}

	return result, nil
}

func describe(fsys types.FS, path string) (types.FileDetail, error) {
	info, err := fsys.Stat(path)
	if err != nil {
		return types.FileDetail{}, err
	}

	data, err := fsys.ReadFile(path)
	if err != nil {
		return types.FileDetail{}, err
	}

	sum := sha256.Sum256(data)
	return types.FileDetail{
		Path:        path,
		Size:        info.Size(),
		ModTime:     info.ModTime(),
		ContentHash: hex.EncodeToString(sum[:]),
	}, nil
}
