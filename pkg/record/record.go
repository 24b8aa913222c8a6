/*
Copyright © 2025 Cookiecutter Tools Authors
SPDX-License-Identifier: Apache-2.0
*/

package record

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	cerrors "github.com/cookiecutter-tools/cookierc/pkg/errors"
)

// Field is a single named, scalar-valued entry in a configuration record.
// Values are always literal strings: boolean-like answers stay "yes"/"no",
// version numbers stay text, and placeholder values remain opaque.
type Field struct {
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value" yaml:"value"`
}

// Record is a flat, ordered mapping of field name to literal string value.
// It models the default_context block of a .cookiecutterrc file: the answers
// recorded for a project template so the skeleton can be regenerated.
//
// A Record is immutable after construction. Field order matches the source
// file, and field names are unique.
type Record struct {
	fields []Field
	index  map[string]int
}

// New creates a Record from the given fields, preserving their order.
// Returns a PARSE_ERROR when a field name repeats.
func New(fields ...Field) (*Record, error) {
	r := &Record{
		fields: make([]Field, 0, len(fields)),
		index:  make(map[string]int, len(fields)),
	}
	for _, f := range fields {
		if err := r.append(f.Name, f.Value); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *Record) append(name, value string) error {
	if _, exists := r.index[name]; exists {
		return cerrors.NewWithContext(cerrors.ErrCodeParse,
			fmt.Sprintf("duplicate field %q in record", name),
			map[string]any{"field": name})
	}
	r.index[name] = len(r.fields)
	r.fields = append(r.fields, Field{Name: name, Value: value})
	return nil
}

// Get returns the value for the named field and whether it is present.
func (r *Record) Get(name string) (string, bool) {
	if r == nil {
		return "", false
	}
	i, ok := r.index[name]
	if !ok {
		return "", false
	}
	return r.fields[i].Value, true
}

// Len returns the number of fields in the record.
func (r *Record) Len() int {
	if r == nil {
		return 0
	}
	return len(r.fields)
}

// Names returns the field names in source-file order.
func (r *Record) Names() []string {
	if r == nil {
		return nil
	}
	names := make([]string, len(r.fields))
	for i, f := range r.fields {
		names[i] = f.Name
	}
	return names
}

// Fields returns a copy of the record's fields in source-file order.
func (r *Record) Fields() []Field {
	if r == nil {
		return nil
	}
	out := make([]Field, len(r.fields))
	copy(out, r.fields)
	return out
}

// Map returns the record as a name to value map. The map is a copy;
// mutating it does not affect the record.
func (r *Record) Map() map[string]string {
	if r == nil {
		return nil
	}
	m := make(map[string]string, len(r.fields))
	for _, f := range r.fields {
		m[f.Name] = f.Value
	}
	return m
}

// Equal reports whether two records hold the same fields with the same
// values in the same order.
func (r *Record) Equal(other *Record) bool {
	if r == nil || other == nil {
		return r.Len() == 0 && other.Len() == 0
	}
	if len(r.fields) != len(other.fields) {
		return false
	}
	for i, f := range r.fields {
		if other.fields[i] != f {
			return false
		}
	}
	return true
}

// UnmarshalYAML decodes a YAML mapping into the record. Every value must be
// a scalar, and field names must be unique; anything else is a PARSE_ERROR.
// Scalar values are captured as their literal text, so quoted booleans and
// version strings survive untouched.
func (r *Record) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return cerrors.New(cerrors.ErrCodeParse,
			fmt.Sprintf("record must be a flat mapping, got %s at line %d", nodeKind(node), node.Line))
	}

	r.fields = r.fields[:0]
	r.index = make(map[string]int, len(node.Content)/2)

	for i := 0; i < len(node.Content)-1; i += 2 {
		keyNode := node.Content[i]
		valNode := node.Content[i+1]

		if keyNode.Kind != yaml.ScalarNode {
			return cerrors.New(cerrors.ErrCodeParse,
				fmt.Sprintf("field name must be a scalar at line %d", keyNode.Line))
		}
		if valNode.Kind != yaml.ScalarNode {
			return cerrors.NewWithContext(cerrors.ErrCodeParse,
				fmt.Sprintf("field %q must hold a scalar value, got %s at line %d",
					keyNode.Value, nodeKind(valNode), valNode.Line),
				map[string]any{"field": keyNode.Value})
		}

		if err := r.append(keyNode.Value, valNode.Value); err != nil {
			return err
		}
	}

	return nil
}

// MarshalYAML encodes the record as a mapping in source-file order with
// single-quoted values, mirroring the .cookiecutterrc on disk.
func (r *Record) MarshalYAML() (any, error) {
	node := &yaml.Node{
		Kind:    yaml.MappingNode,
		Tag:     "!!map",
		Content: make([]*yaml.Node, 0, len(r.fields)*2),
	}
	for _, f := range r.fields {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: f.Name},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: f.Value, Style: yaml.SingleQuotedStyle},
		)
	}
	return node, nil
}

// MarshalJSON encodes the record as a JSON object in source-file order.
func (r *Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range r.fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(f.Name)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(f.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object into the record, preserving key order.
func (r *Record) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return cerrors.Wrap(cerrors.ErrCodeParse, "malformed record", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return cerrors.New(cerrors.ErrCodeParse, "record must be a flat object")
	}

	r.fields = r.fields[:0]
	r.index = make(map[string]int)

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return cerrors.Wrap(cerrors.ErrCodeParse, "malformed record", err)
		}
		name := keyTok.(string)

		valTok, err := dec.Token()
		if err != nil {
			return cerrors.Wrap(cerrors.ErrCodeParse, "malformed record", err)
		}
		value, ok := valTok.(string)
		if !ok {
			return cerrors.NewWithContext(cerrors.ErrCodeParse,
				fmt.Sprintf("field %q must hold a string value", name),
				map[string]any{"field": name})
		}

		if err := r.append(name, value); err != nil {
			return err
		}
	}

	return nil
}

func nodeKind(node *yaml.Node) string {
	switch node.Kind {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}
