package metadata

import (
	"fmt"
	"os"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// ParseJSON parses a JSON descriptor document.
func ParseJSON(data []byte) (*Descriptor, error) {
	if !gjson.ValidBytes(data) {
		return nil, &ParseError{Source: "<data>", Message: "invalid JSON"}
	}

	root := gjson.ParseBytes(data)
	d := &Descriptor{
		Name:        root.Get("name").String(),
		Version:     root.Get("version").String(),
		Description: root.Get("description").String(),
		License:     root.Get("license").String(),
	}

	if authors := root.Get("authors"); authors.IsArray() {
		for _, a := range authors.Array() {
			d.Authors = append(d.Authors, a.String())
		}
	}

	if props := root.Get("properties"); props.IsObject() {
		d.Properties = make(map[string]string)
		props.ForEach(func(key, value gjson.Result) bool {
			d.Properties[key.String()] = value.String()
			return true
		})
	}

	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

// LoadJSON reads and parses a JSON descriptor file.
func LoadJSON(path string) (*Descriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading descriptor %s: %w", path, err)
	}
	d, err := ParseJSON(data)
	if err != nil {
		if pe, ok := err.(*ParseError); ok {
			pe.Source = path
		}
		return nil, err
	}
	return d, nil
}

// SetJSONField returns doc with the value at path replaced, preserving the
// rest of the document byte-for-byte. Paths use dot notation, e.g.
// "version" or "properties.homepage".
func SetJSONField(doc []byte, path string, value any) ([]byte, error) {
	if !gjson.ValidBytes(doc) {
		return nil, &ParseError{Source: "<data>", Message: "invalid JSON"}
	}
	out, err := sjson.SetBytes(doc, path, value)
	if err != nil {
		return nil, fmt.Errorf("setting %s: %w", path, err)
	}
	return out, nil
}
