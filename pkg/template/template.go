// Package template rewrites absolute home-directory paths to and from
// the {{HOME}} placeholder, making gathered files portable across
// machines.
package template

import (
	"path/filepath"
	"strings"
)

// Token is the literal placeholder embedded in templated files in place
// of the resolved home directory. Content that already contains this
// literal before gathering collides with the templating scheme; that
// case is unspecified and deliberately not detected.
const Token = "{{HOME}}"

// Style selects how FromPortable restores the placeholder.
type Style int

const (
	// StyleHome restores the real home path with native separators
	StyleHome Style = iota

	// StyleHomeSlash restores the real home path with forward slashes
	StyleHomeSlash

	// StyleManaged restores the managed directory with native separators
	StyleManaged

	// StyleManagedSlash restores the managed directory with forward slashes
	StyleManagedSlash
)

// Templater performs placeholder rewrites for one resolved home and
// managed directory. Stateless beyond the two paths.
type Templater struct {
	home    string
	managed string
}

// New creates a Templater for the given home and managed directories.
func New(home, managed string) *Templater {
	return &Templater{home: home, managed: managed}
}

// ToPortable replaces every occurrence of the home path with the
// placeholder token. Both the native-separator and forward-slash forms
// of the path are replaced independently. Idempotent: content already
// templated passes through unchanged.
func (t *Templater) ToPortable(content string) string {
	content = strings.ReplaceAll(content, t.home, Token)
	if slash := filepath.ToSlash(t.home); slash != t.home {
		content = strings.ReplaceAll(content, slash, Token)
	}
	return content
}

// FromPortable replaces the placeholder token with a real path per
// style. Applying ToPortable then FromPortable with StyleHome reproduces
// the original content byte-for-byte, provided the content contained no
// literal token before templating.
func (t *Templater) FromPortable(content string, style Style) string {
	var root string
	switch style {
	case StyleManaged:
		root = t.managed
	case StyleManagedSlash:
		root = filepath.ToSlash(t.managed)
	case StyleHomeSlash:
		root = filepath.ToSlash(t.home)
	default:
		root = t.home
	}
	return strings.ReplaceAll(content, Token, root)
}

// ContainsHomePath reports whether the content references the home
// directory and therefore needs templating.
func (t *Templater) ContainsHomePath(content string) bool {
	if strings.Contains(content, t.home) {
		return true
	}
	slash := filepath.ToSlash(t.home)
	return slash != t.home && strings.Contains(content, slash)
}
