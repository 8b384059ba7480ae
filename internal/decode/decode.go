// Package decode wraps the JSON, YAML and Markdown-frontmatter decoders used
// to read component metadata.
//
// Decoders never panic on malformed input. They return a *ParseError, and
// callers treat that as "no structured fields available" for one file.
package decode

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Supported formats, as reported in ParseError.Format.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// errNotObject is returned when a document parses but its top level is not
// an object/mapping.
var errNotObject = errors.New("top-level value is not an object")

// ParseError is a decode failure for one document.
type ParseError struct {
	Format string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.Format, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Object is a decoded JSON object whose values are decoded lazily, so that a
// badly typed field only affects lookups of that field.
type Object map[string]json.RawMessage

// JSONObject decodes data as a JSON object.
func JSONObject(data []byte) (Object, error) {
	var obj Object
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, &ParseError{Format: FormatJSON, Err: err}
	}
	if obj == nil {
		return nil, &ParseError{Format: FormatJSON, Err: errNotObject}
	}
	return obj, nil
}

// AsObject decodes a raw value as an object. It reports false for anything
// that is not a JSON object.
func AsObject(raw json.RawMessage) (Object, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '{' {
		return nil, false
	}
	var obj Object
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, false
	}
	return obj, true
}

// String returns the value of key when it is a JSON string.
func (o Object) String(key string) (string, bool) {
	raw, ok := o[key]
	if !ok {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

// StringOrStrings returns the value of key when it is a string, or the
// elements of a string array joined by single spaces.
func (o Object) StringOrStrings(key string) (string, bool) {
	if s, ok := o.String(key); ok {
		return s, true
	}
	raw, ok := o[key]
	if !ok {
		return "", false
	}
	var parts []string
	if err := json.Unmarshal(raw, &parts); err != nil || parts == nil {
		return "", false
	}
	return strings.Join(parts, " "), true
}

// Object returns the value of key when it is a JSON object.
func (o Object) Object(key string) (Object, bool) {
	raw, ok := o[key]
	if !ok {
		return nil, false
	}
	return AsObject(raw)
}

// Array returns the elements of key when it is a JSON array.
func (o Object) Array(key string) ([]json.RawMessage, bool) {
	raw, ok := o[key]
	if !ok {
		return nil, false
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '[' {
		return nil, false
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, false
	}
	return items, true
}

// Keys returns the object's keys in sorted order. JSON objects carry no
// meaningful order, so callers iterate this for stable output.
func (o Object) Keys() []string {
	keys := make([]string, 0, len(o))
	for k := range o {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// YAML decodes data into a document node.
func YAML(data []byte) (*yaml.Node, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &ParseError{Format: FormatYAML, Err: err}
	}
	return &doc, nil
}

// YAMLScalars decodes data as a YAML mapping and returns its top-level
// scalar values verbatim, keyed by name. Non-scalar and null values are left
// out. Values keep their source spelling, so `version: 1.10` stays "1.10".
// An empty document yields an empty map.
func YAMLScalars(data []byte) (map[string]string, error) {
	doc, err := YAML(data)
	if err != nil {
		return nil, err
	}
	fields := make(map[string]string)
	// An empty or comment-only stream leaves the node unset.
	if doc.Kind == 0 {
		return fields, nil
	}
	root := doc
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return fields, nil
		}
		root = root.Content[0]
	}
	if root.Kind != yaml.MappingNode {
		return nil, &ParseError{Format: FormatYAML, Err: errNotObject}
	}
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]
		if value.Kind == yaml.AliasNode && value.Alias != nil {
			value = value.Alias
		}
		if value.Kind != yaml.ScalarNode || value.Tag == "!!null" {
			continue
		}
		if _, seen := fields[key.Value]; !seen {
			fields[key.Value] = value.Value
		}
	}
	return fields, nil
}

// YAMLLookup walks a chain of mapping keys from the document root and
// returns the scalar found at the end of it.
func YAMLLookup(doc *yaml.Node, path ...string) (string, bool) {
	node := doc
	if node != nil && node.Kind == yaml.DocumentNode {
		if len(node.Content) == 0 {
			return "", false
		}
		node = node.Content[0]
	}
	for _, key := range path {
		if node == nil || node.Kind != yaml.MappingNode {
			return "", false
		}
		var next *yaml.Node
		for i := 0; i+1 < len(node.Content); i += 2 {
			if node.Content[i].Value == key {
				next = node.Content[i+1]
				break
			}
		}
		node = next
	}
	if node == nil || node.Kind != yaml.ScalarNode {
		return "", false
	}
	return node.Value, true
}
