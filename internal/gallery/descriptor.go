// Package gallery turns the JSON gallery descriptors embedded in a document
// into the HTML and slick initialisation script the site theme expects.
package gallery

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// rootKey wraps the descriptor in the form older posts were written in:
// {"gallery": {"gallery-name": ...}}
const rootKey = "gallery"

const descriptorSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["gallery-name", "gallery-items"],
  "properties": {
    "gallery-name": {"type": "string", "minLength": 1},
    "gallery-items": {"type": "array"},
    "gallery-caption": {"type": "string"}
  }
}`

var schema = jsonschema.MustCompileString("gallery-descriptor.json", descriptorSchema)

// Descriptor is a named set of images. Items are kept raw: each one is
// checked on its own so a bad item does not sink the whole gallery.
type Descriptor struct {
	Name    string            `json:"gallery-name"`
	Items   []json.RawMessage `json:"gallery-items"`
	Caption string            `json:"gallery-caption,omitempty"`
}

// Item is a single image of a gallery
type Item struct {
	File      string
	Thumbnail string
}

// ErrInvalidJSON is returned for payloads that are not JSON at all
var ErrInvalidJSON = errors.New("invalid JSON")

// ErrMalformedItem is wrapped by every item that cannot be rendered
var ErrMalformedItem = errors.New("malformed gallery item")

// ParseDescriptor decodes and validates a gallery descriptor
func ParseDescriptor(payload string) (*Descriptor, error) {
	data := []byte(payload)

	if !json.Valid(data) {
		return nil, ErrInvalidJSON
	}

	var wrapper map[string]json.RawMessage
	if err := json.Unmarshal(data, &wrapper); err == nil {
		if inner, ok := wrapper[rootKey]; ok {
			if _, named := wrapper["gallery-name"]; !named {
				data = inner
			}
		}
	}

	var instance interface{}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&instance); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	if err := schema.Validate(instance); err != nil {
		return nil, fmt.Errorf("not a gallery descriptor: %w", err)
	}

	var d Descriptor
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("not a gallery descriptor: %w", err)
	}
	return &d, nil
}

// ParseItem decodes one entry of gallery-items: [file] or [file, thumbnail]
func ParseItem(raw json.RawMessage) (Item, error) {
	var parts []json.RawMessage
	if err := json.Unmarshal(raw, &parts); err != nil {
		return Item{}, fmt.Errorf("%w: not an array", ErrMalformedItem)
	}
	if len(parts) != 1 && len(parts) != 2 {
		return Item{}, fmt.Errorf("%w: unexpected size %d", ErrMalformedItem, len(parts))
	}

	names := make([]string, len(parts))
	for i, p := range parts {
		var name *string
		if err := json.Unmarshal(p, &name); err != nil || name == nil {
			return Item{}, fmt.Errorf("%w: element %d is not a string", ErrMalformedItem, i)
		}
		names[i] = *name
	}
	return Item{File: names[0], Thumbnail: names[len(names)-1]}, nil
}
