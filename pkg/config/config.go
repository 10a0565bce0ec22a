// Package config loads herfiles configuration: embedded defaults, then
// the user's config file, then HERFILES_* environment variables, each
// layer overriding the previous one.
package config

import (
	_ "embed"
	goerrors "errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/herfiles/herfiles/pkg/errors"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, goerrors.New("not implemented")
}

// Config holds the user-tunable settings for a run.
type Config struct {
	// PackageManager is the command used to install missing programs
	PackageManager string

	// EditorBinary is the editor CLI name looked up on PATH
	EditorBinary string

	// ShellBinary is the shell required by the shell profile module
	ShellBinary string

	// PromptBinary is the prompt engine required by the theme module
	PromptBinary string
}

// Load builds the configuration from defaults, the user config file and
// environment variables.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load default config")
	}

	configDir := filepath.Join(xdg.ConfigHome, "herfiles")
	for _, candidate := range []struct {
		name   string
		parser koanf.Parser
	}{
		{"herfiles.toml", toml.Parser()},
		{"herfiles.yaml", yaml.Parser()},
	} {
		path := filepath.Join(configDir, candidate.name)
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), candidate.parser); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load config from %s", path)
			}
			break
		}
	}

	// HERFILES_PACKAGE_MANAGER=apt -> herfiles.package_manager
	if err := k.Load(env.Provider("HERFILES_", ".", func(s string) string {
		return "herfiles." + strings.ToLower(strings.TrimPrefix(s, "HERFILES_"))
	}), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment overrides")
	}

	return &Config{
		PackageManager: k.String("herfiles.package_manager"),
		EditorBinary:   k.String("herfiles.editor_binary"),
		ShellBinary:    k.String("herfiles.shell_binary"),
		PromptBinary:   k.String("herfiles.prompt_binary"),
	}, nil
}
