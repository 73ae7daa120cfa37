package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromString(t *testing.T) {
	toml := `
[log]
level = "debug"
format = "json"

[directives]
disable = ["summary"]

[[directives.extra]]
prefix = "#+DATE: "
key = "date"

[[directives.extra]]
prefix = "#+AUTHOR: "
key = "author"

[gallery]
caption-markdown = true

[lang]
validate = false
`

	cfg, err := LoadFromString(toml)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "auto", cfg.Log.Color, "unset keys keep defaults")
	assert.True(t, cfg.IsDisabled("summary"))
	assert.False(t, cfg.IsDisabled("tags"))
	require.Len(t, cfg.Directives.Extra, 2)
	assert.Equal(t, ExtraDirective{Prefix: "#+DATE: ", Key: "date"}, cfg.Directives.Extra[0])
	assert.Equal(t, "author", cfg.Directives.Extra[1].Key)
	assert.True(t, cfg.Gallery.CaptionMarkdown)
	assert.False(t, cfg.Lang.Validate)
	require.NoError(t, cfg.Validate())
}

func TestLoadFromStringRejectsUnknownKeys(t *testing.T) {
	_, err := LoadFromString("[gallery]\nasset-prefix = \"/img/\"\n")
	assert.Error(t, err)

	_, err = LoadFromString("[log\n")
	assert.Error(t, err)
}

func TestUpdateFromEnv(t *testing.T) {
	t.Setenv("PANDOC_JEKYLL_LOG__LEVEL", "error")
	t.Setenv("PANDOC_JEKYLL_GALLERY__STRICT_ITEMS", "true")
	t.Setenv("PANDOC_JEKYLL_DIRECTIVES__DISABLE", "cover, lang")
	t.Setenv("PANDOC_JEKYLL_LANG__VALIDATE", "no")

	cfg := NewDefaultConfig()
	cfg.UpdateFromEnv()

	assert.Equal(t, "error", cfg.Log.Level)
	assert.True(t, cfg.Gallery.StrictItems)
	assert.Equal(t, []string{"cover", "lang"}, cfg.Directives.Disable)
	assert.False(t, cfg.Lang.Validate)
}

func TestLoadResolution(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("PANDOC_JEKYLL_CONFIG", "")

	// nothing on disk: defaults
	cfg, used, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "", used)
	assert.Equal(t, NewDefaultConfig().Log, cfg.Log)

	// an explicit path must exist
	_, _, err = Load(filepath.Join(dir, "missing.toml"))
	assert.Error(t, err)

	// working directory file is picked up
	require.NoError(t, os.WriteFile(DefaultFileName, []byte("[log]\nlevel = \"info\"\n"), 0o644))
	cfg, used, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultFileName, used)
	assert.Equal(t, "info", cfg.Log.Level)

	// the environment variable wins over the working directory
	other := filepath.Join(dir, "other.toml")
	require.NoError(t, os.WriteFile(other, []byte("[log]\nlevel = \"error\"\n"), 0o644))
	t.Setenv("PANDOC_JEKYLL_CONFIG", other)
	cfg, used, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, other, used)
	assert.Equal(t, "error", cfg.Log.Level)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad level", func(c *Config) { c.Log.Level = "loud" }},
		{"bad format", func(c *Config) { c.Log.Format = "xml" }},
		{"bad color", func(c *Config) { c.Log.Color = "sometimes" }},
		{"unknown disabled directive", func(c *Config) { c.Directives.Disable = []string{"date"} }},
		{"extra without prefix", func(c *Config) { c.Directives.Extra = []ExtraDirective{{Key: "date"}} }},
		{"extra with blank key", func(c *Config) { c.Directives.Extra = []ExtraDirective{{Prefix: "#+DATE: ", Key: "  "}} }},
		{"duplicate extra key", func(c *Config) {
			c.Directives.Extra = []ExtraDirective{{Prefix: "#+A: ", Key: "a"}, {Prefix: "#+B: ", Key: "a"}}
		}},
		{"missing template", func(c *Config) { c.Gallery.Template = "/does/not/exist.hbs" }},
	}

	require.NoError(t, NewDefaultConfig().Validate())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewDefaultConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Directives.Disable = []string{"summary"}
	cfg.Directives.Extra = []ExtraDirective{{Prefix: "#+DATE: ", Key: "date"}}
	cfg.Gallery.StrictItems = true

	data, err := cfg.Encode()
	require.NoError(t, err)

	back, err := LoadFromString(string(data))
	require.NoError(t, err)
	assert.Equal(t, cfg, back)
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}
