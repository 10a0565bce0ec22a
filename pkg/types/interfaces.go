package types

import (
	"io/fs"
)

// FS is the filesystem interface required for herfiles operations.
// Production code uses the OS implementation; tests swap in afero.
type FS interface {
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error

	MkdirAll(path string, perm fs.FileMode) error
	ReadDir(name string) ([]fs.DirEntry, error)
}

// ProgramDetector reports whether an external program is available.
type ProgramDetector interface {
	// IsInstalled performs a PATH lookup for the named program.
	IsInstalled(name string) bool
}

// PackageInstaller installs a program through the system package manager.
type PackageInstaller interface {
	// Install installs the package with the given id. The description is
	// shown to the operator. Returns true on success.
	Install(id, description string) bool
}

// EditorCLI wraps the editor's command-line interface.
type EditorCLI interface {
	// ListExtensions returns the identifiers of installed extensions.
	ListExtensions() ([]string, error)

	// InstallExtension installs a single extension by identifier.
	InstallExtension(id string) error

	// OpenAt opens the editor at the given file and line.
	OpenAt(path string, line int) error
}

// FontRegistry provides lookup and registration of installed fonts.
type FontRegistry interface {
	// ListInstalled maps installed font names to their file paths.
	ListInstalled() (map[string]string, error)

	// Register makes the font file at path available to the system.
	Register(name, path string) error
}
