package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// DefaultFileName is looked up in the working directory when no path is given
const DefaultFileName = "pandoc-jekyll.toml"

// EnvPrefix starts every environment override, and EnvPrefix+"CONFIG"
// names the config file
const EnvPrefix = "PANDOC_JEKYLL_"

// LogConfig controls diagnostics on stderr
type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // console, text or json
	Color  string `toml:"color"`  // auto, always or never
}

// DefaultLogConfig returns log settings with defaults
func DefaultLogConfig() LogConfig {
	return LogConfig{
		Level:  "warn",
		Format: "console",
		Color:  "auto",
	}
}

// ExtraDirective promotes another org keyword line into metadata
type ExtraDirective struct {
	Prefix string `toml:"prefix"`
	Key    string `toml:"key"`
}

// DirectivesConfig selects which directives are extracted
type DirectivesConfig struct {
	// Disable lists built-in directives (tags, cover, summary, lang) to skip
	Disable []string `toml:"disable,omitempty"`
	// Extra directives run after the built-ins, in file order
	Extra []ExtraDirective `toml:"extra,omitempty"`
}

// GalleryConfig contains gallery renderer settings
type GalleryConfig struct {
	Template        string `toml:"template"`
	CaptionMarkdown bool   `toml:"caption-markdown"`
	StrictItems     bool   `toml:"strict-items"`
}

// LangConfig contains settings for the #+LANG: directive
type LangConfig struct {
	Validate bool `toml:"validate"`
}

// Config is the top-level configuration
type Config struct {
	Log        LogConfig        `toml:"log"`
	Directives DirectivesConfig `toml:"directives"`
	Gallery    GalleryConfig    `toml:"gallery"`
	Lang       LangConfig       `toml:"lang"`
}

// NewDefaultConfig returns a config with sensible defaults
func NewDefaultConfig() *Config {
	return &Config{
		Log:        DefaultLogConfig(),
		Directives: DirectivesConfig{Disable: []string{}, Extra: []ExtraDirective{}},
		Gallery:    GalleryConfig{},
		Lang:       LangConfig{Validate: true},
	}
}

// Load resolves the config file and loads it. An explicit path must exist;
// otherwise $PANDOC_JEKYLL_CONFIG and then ./pandoc-jekyll.toml are tried,
// and defaults are used when neither exists. Environment overrides are
// applied in every case.
func Load(path string) (*Config, string, error) {
	explicit := path != ""
	if !explicit {
		path = os.Getenv(EnvPrefix + "CONFIG")
		explicit = path != ""
	}
	if path == "" {
		path = DefaultFileName
	}

	cfg, err := LoadFromFile(path)
	if err == nil {
		return cfg, path, nil
	}
	if explicit || !errors.Is(err, os.ErrNotExist) {
		return nil, path, err
	}

	cfg = NewDefaultConfig()
	cfg.UpdateFromEnv()
	return cfg, "", nil
}

// LoadFromFile loads configuration from a TOML file
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, err := LoadFromString(string(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return cfg, nil
}

// LoadFromString loads configuration from a TOML string
func LoadFromString(content string) (*Config, error) {
	cfg := NewDefaultConfig()
	dec := toml.NewDecoder(strings.NewReader(content))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.UpdateFromEnv()
	return cfg, nil
}

// Encode renders the config as TOML
func (c *Config) Encode() ([]byte, error) {
	return toml.Marshal(c)
}

// UpdateFromEnv updates config from environment variables
// Variables starting with PANDOC_JEKYLL_ are used
// PANDOC_JEKYLL_FOO__BAR -> foo.bar
// PANDOC_JEKYLL_FOO__BAR_BAZ -> foo.bar-baz
func (c *Config) UpdateFromEnv() {
	for _, env := range os.Environ() {
		if !strings.HasPrefix(env, EnvPrefix) {
			continue
		}

		parts := strings.SplitN(env, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimPrefix(parts[0], EnvPrefix)
		if key == "CONFIG" {
			continue
		}

		configKey := strings.ToLower(key)
		configKey = strings.ReplaceAll(configKey, "__", ".")
		configKey = strings.ReplaceAll(configKey, "_", "-")

		c.Set(configKey, parts[1])
	}
}

// Set sets a configuration value using dot notation (e.g., "log.level").
// Unknown keys are ignored.
func (c *Config) Set(key, value string) {
	parts := strings.SplitN(key, ".", 2)
	if len(parts) != 2 {
		return
	}

	switch parts[0] {
	case "log":
		c.setLogValue(parts[1], value)
	case "directives":
		if parts[1] == "disable" {
			c.Directives.Disable = splitList(value)
		}
	case "gallery":
		c.setGalleryValue(parts[1], value)
	case "lang":
		if parts[1] == "validate" {
			c.Lang.Validate = parseBool(value)
		}
	}
}

func (c *Config) setLogValue(key, value string) {
	switch key {
	case "level":
		c.Log.Level = value
	case "format":
		c.Log.Format = value
	case "color":
		c.Log.Color = value
	}
}

func (c *Config) setGalleryValue(key, value string) {
	switch key {
	case "template":
		c.Gallery.Template = value
	case "caption-markdown":
		c.Gallery.CaptionMarkdown = parseBool(value)
	case "strict-items":
		c.Gallery.StrictItems = parseBool(value)
	}
}

// IsDisabled reports whether the built-in directive name is switched off
func (c *Config) IsDisabled(name string) bool {
	for _, d := range c.Directives.Disable {
		if d == name {
			return true
		}
	}
	return false
}

func parseBool(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

func splitList(value string) []string {
	out := []string{}
	for _, part := range strings.Split(value, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
