package filesystem

import (
	"path/filepath"

	"github.com/herfiles/herfiles/pkg/errors"
	"github.com/herfiles/herfiles/pkg/types"
)

// CopyFile copies src to dst through the given filesystem, creating
// parent directories as needed. The destination keeps the source's
// permission bits.
func CopyFile(fsys types.FS, src, dst string) error {
	info, err := fsys.Stat(src)
	if err != nil {
		return errors.Wrapf(err, errors.ErrNotFound, "source file %s not found", src)
	}

	data, err := fsys.ReadFile(src)
	if err != nil {
		return errors.Wrapf(err, errors.ErrIO, "failed to read %s", src)
	}

	if err := fsys.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrIO, "failed to create directory for %s", dst)
	}

	if err := fsys.WriteFile(dst, data, info.Mode().Perm()); err != nil {
		return errors.Wrapf(err, errors.ErrIO, "failed to write %s", dst)
	}

	return nil
}

// Exists reports whether the given path exists.
func Exists(fsys types.FS, path string) bool {
	_, err := fsys.Stat(path)
	return err == nil
}

// DirHasFiles reports whether dir exists and contains at least one entry.
func DirHasFiles(fsys types.FS, dir string) bool {
	entries, err := fsys.ReadDir(dir)
	if err != nil {
		return false
	}
	return len(entries) > 0
}
