package config

import (
	"errors"
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/geocine/pandoc-jekyll/internal/directive"
	"github.com/geocine/pandoc-jekyll/internal/utils"
)

// Validate checks the configuration before a run
func (c *Config) Validate() error {
	if err := validation.ValidateStruct(&c.Log,
		validation.Field(&c.Log.Level, validation.In("debug", "info", "warn", "warning", "error")),
		validation.Field(&c.Log.Format, validation.In("console", "text", "json")),
		validation.Field(&c.Log.Color, validation.In("auto", "always", "never")),
	); err != nil {
		return fmt.Errorf("log: %w", err)
	}

	if err := validation.ValidateStruct(&c.Directives,
		validation.Field(&c.Directives.Disable, validation.Each(validation.By(builtinDirective))),
	); err != nil {
		return fmt.Errorf("directives: %w", err)
	}

	seen := map[string]bool{}
	for i, extra := range c.Directives.Extra {
		if err := extra.Validate(); err != nil {
			return fmt.Errorf("directives.extra[%d]: %w", i, err)
		}
		if seen[extra.Key] {
			return fmt.Errorf("directives.extra[%d]: duplicate key %q", i, extra.Key)
		}
		seen[extra.Key] = true
	}

	if err := validation.ValidateStruct(&c.Gallery,
		validation.Field(&c.Gallery.Template, validation.By(fileExists)),
	); err != nil {
		return fmt.Errorf("gallery: %w", err)
	}
	return nil
}

// Validate checks a single extra directive
func (d ExtraDirective) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.Prefix, validation.Required),
		validation.Field(&d.Key, validation.Required, validation.By(func(value interface{}) error {
			if strings.TrimSpace(value.(string)) == "" {
				return errors.New("must not be blank")
			}
			return nil
		})),
	)
}

func builtinDirective(value interface{}) error {
	name, _ := value.(string)
	if _, ok := directive.Lookup(name); !ok {
		return fmt.Errorf("%q is not a built-in directive", name)
	}
	return nil
}

func fileExists(value interface{}) error {
	path, _ := value.(string)
	if path == "" {
		return nil
	}
	if !utils.FileExists(path) {
		return fmt.Errorf("%s is not a readable file", path)
	}
	return nil
}
