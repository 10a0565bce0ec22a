package editor

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMissingExtensions(t *testing.T) {
	tests := []struct {
		name      string
		wanted    []string
		installed []string
		expected  []string
	}{
		{
			name:      "case-insensitive match",
			wanted:    []string{"ms-python.python", "GitHub.copilot", "vim.vim"},
			installed: []string{"MS-PYTHON.PYTHON"},
			expected:  []string{"GitHub.copilot", "vim.vim"},
		},
		{
			name:      "all installed",
			wanted:    []string{"a.b", "c.d"},
			installed: []string{"A.B", "c.d"},
			expected:  nil,
		},
		{
			name:      "nothing installed keeps wanted order",
			wanted:    []string{"z.z", "a.a"},
			installed: nil,
			expected:  []string{"z.z", "a.a"},
		},
		{
			name:      "empty wanted",
			wanted:    nil,
			installed: []string{"a.b"},
			expected:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, missingExtensions(tt.wanted, tt.installed))
		})
	}
}

func TestSplitExtensionList(t *testing.T) {
	raw := "ms-python.python\n\n  GitHub.copilot  \nvim.vim\n"
	assert.Equal(t, []string{"ms-python.python", "GitHub.copilot", "vim.vim"}, splitExtensionList(raw))
	assert.Nil(t, splitExtensionList("\n\n"))
}

func TestFontFamilies(t *testing.T) {
	tests := []struct {
		name     string
		settings map[string]interface{}
		expected []string
	}{
		{
			name: "first token quotes trimmed",
			settings: map[string]interface{}{
				"editor.fontFamily": "'Fira Code', 'Courier New', monospace",
			},
			expected: []string{"Fira Code"},
		},
		{
			name: "generic family skipped",
			settings: map[string]interface{}{
				"editor.fontFamily":              "monospace",
				"terminal.integrated.fontFamily": "\"JetBrains Mono\"",
			},
			expected: []string{"JetBrains Mono"},
		},
		{
			name: "duplicate family deduplicated",
			settings: map[string]interface{}{
				"editor.fontFamily":              "Fira Code, monospace",
				"terminal.integrated.fontFamily": "Fira Code",
			},
			expected: []string{"Fira Code"},
		},
		{
			name:     "no font keys",
			settings: map[string]interface{}{"files.autoSave": "off"},
			expected: nil,
		},
		{
			name: "non-string value ignored",
			settings: map[string]interface{}{
				"editor.fontFamily": 14.0,
			},
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, fontFamilies(tt.settings))
		})
	}
}

func TestMatchesFamily(t *testing.T) {
	assert.True(t, matchesFamily("FiraCode-Regular", "Fira Code"))
	assert.True(t, matchesFamily("firacode-bold", "Fira Code"))
	assert.True(t, matchesFamily("JetBrainsMonoNerdFont", "JetBrains Mono"))
	assert.False(t, matchesFamily("FiraSans-Regular", "Fira Code"))
	assert.False(t, matchesFamily("Hack-Regular", "Fira Code"))
}

func TestCollectAssetURIs(t *testing.T) {
	settings := map[string]interface{}{
		"vscode_custom_css.imports": []interface{}{
			"file:///home/test/assets/custom.css",
			"file:///home/test/assets/tweaks.js",
			"file:///home/test/assets/custom.css",
			"https://example.com/remote.css",
			"file:///home/test/picture.png",
		},
		"nested": map[string]interface{}{
			"deep": "file:///home/test/assets/deep.css",
		},
		"other": 42.0,
	}

	uris := collectAssetURIs(settings)

	assert.Contains(t, uris, "file:///home/test/assets/custom.css")
	assert.Contains(t, uris, "file:///home/test/assets/tweaks.js")
	assert.Contains(t, uris, "file:///home/test/assets/deep.css")
	assert.NotContains(t, uris, "https://example.com/remote.css")
	assert.NotContains(t, uris, "file:///home/test/picture.png")
	assert.Len(t, uris, 3, "duplicates collapse")
}

func TestURIToLocalPath(t *testing.T) {
	assert.Equal(t,
		filepath.FromSlash("/home/test/assets/custom.css"),
		uriToLocalPath("file:///home/test/assets/custom.css"))
	assert.Equal(t,
		filepath.FromSlash("/home/test/my assets/a.css"),
		uriToLocalPath("file:///home/test/my%20assets/a.css"))
}
