package testutil

import (
	"io/fs"

	"github.com/herfiles/herfiles/pkg/errors"
	"github.com/herfiles/herfiles/pkg/types"
)

// CallRecorder records named calls in order, shared across mocks so
// tests can assert cross-collaborator ordering.
type CallRecorder struct {
	Calls []string
}

// Record appends a call name.
func (r *CallRecorder) Record(name string) {
	r.Calls = append(r.Calls, name)
}

// MockDetector reports programs as installed per its map.
type MockDetector struct {
	Installed map[string]bool
}

func (d *MockDetector) IsInstalled(name string) bool {
	return d.Installed[name]
}

// MockInstaller records install requests and returns a fixed result.
type MockInstaller struct {
	Succeed  bool
	Requests []string
}

func (i *MockInstaller) Install(id, description string) bool {
	i.Requests = append(i.Requests, id)
	return i.Succeed
}

// MockEditorCLI simulates the editor command line.
type MockEditorCLI struct {
	Extensions []string
	ListErr    error
	FailFor    map[string]bool
	Installed  []string
	Opened     []string
	Recorder   *CallRecorder
}

func (c *MockEditorCLI) ListExtensions() ([]string, error) {
	if c.ListErr != nil {
		return nil, c.ListErr
	}
	return c.Extensions, nil
}

func (c *MockEditorCLI) InstallExtension(id string) error {
	if c.Recorder != nil {
		c.Recorder.Record("ext:" + id)
	}
	if c.FailFor[id] {
		return errors.Newf(errors.ErrExternalTool, "install of %s failed", id)
	}
	c.Installed = append(c.Installed, id)
	return nil
}

func (c *MockEditorCLI) OpenAt(path string, line int) error {
	c.Opened = append(c.Opened, path)
	return nil
}

// MockFontRegistry simulates the font registry.
type MockFontRegistry struct {
	Fonts      map[string]string
	ListErr    error
	Registered []string
	Recorder   *CallRecorder
}

func (r *MockFontRegistry) ListInstalled() (map[string]string, error) {
	if r.ListErr != nil {
		return nil, r.ListErr
	}
	return r.Fonts, nil
}

func (r *MockFontRegistry) Register(name, path string) error {
	r.Registered = append(r.Registered, name)
	if r.Recorder != nil {
		r.Recorder.Record("font:" + name)
	}
	return nil
}

// RecordingFS wraps a types.FS and records every write path, letting
// tests observe write ordering.
type RecordingFS struct {
	types.FS
	Recorder *CallRecorder
}

func (r *RecordingFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	if r.Recorder != nil {
		r.Recorder.Record("write:" + name)
	}
	return r.FS.WriteFile(name, data, perm)
}
