package compare

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/herfiles/herfiles/pkg/errors"
	"github.com/herfiles/herfiles/pkg/logging"
	"github.com/herfiles/herfiles/pkg/types"
)

// CompareContent compares in-memory content (e.g. snapshot content with
// its placeholder already restored) against the file at targetPath. Used
// during install, where the bytes that would be written differ from the
// snapshot file on disk.
func CompareContent(fsys types.FS, content []byte, targetPath string) (types.FileComparison, error) {
	sum := sha256.Sum256(content)
	source := types.FileDetail{
		Size:        int64(len(content)),
		ContentHash: hex.EncodeToString(sum[:]),
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
		logger := logging.GetLogger("compare")
		logger.Info().
			Str("target", targetPath).
			Time("targetModified", target.ModTime).
			Msg("content differs from target")
	}

	return result, nil
}
