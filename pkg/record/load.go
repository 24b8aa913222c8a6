/*
Copyright © 2025 Cookiecutter Tools Authors
SPDX-License-Identifier: Apache-2.0
*/

package record

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	cerrors "github.com/cookiecutter-tools/cookierc/pkg/errors"
	"github.com/cookiecutter-tools/cookierc/pkg/serializer"
)

// rcIndent is the indentation used by the cookiecutter rc format.
const rcIndent = 4

// Document is the top-level structure of a .cookiecutterrc file: a single
// default_context mapping holding the recorded template answers.
type Document struct {
	DefaultContext *Record `json:"default_context" yaml:"default_context"`
}

// Parse decodes the raw bytes of a .cookiecutterrc file into a Record.
// Loading performs no validation, defaulting, or value transformation;
// the returned record holds exactly the fields present in the input.
//
// Empty input, YAML syntax errors, a missing default_context mapping,
// duplicate fields, and non-scalar values all fail with a PARSE_ERROR.
func Parse(data []byte) (*Record, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, cerrors.New(cerrors.ErrCodeParse, "record is empty")
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		if cerrors.IsCode(err, cerrors.ErrCodeParse) {
			return nil, err
		}
		return nil, cerrors.Wrap(cerrors.ErrCodeParse, "malformed record", err)
	}

	if doc.DefaultContext == nil || doc.DefaultContext.Len() == 0 {
		return nil, cerrors.New(cerrors.ErrCodeParse, "record has no default_context mapping")
	}

	return doc.DefaultContext, nil
}

// FromReader reads and parses a record from r.
func FromReader(r io.Reader) (*Record, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, cerrors.Wrap(cerrors.ErrCodeInternal, "failed to read record", err)
	}
	return Parse(data)
}

// Load reads and parses the record at path. The path may be a local file
// or an HTTP/HTTPS URL; remote fetches honor the provided context.
//
// A missing local file fails with NOT_FOUND; malformed content fails with
// PARSE_ERROR. Loading is a pure read with no side effects, so loading the
// same path twice yields equal records.
func Load(ctx context.Context, path string) (*Record, error) {
	data, err := readSource(ctx, path)
	if err != nil {
		return nil, err
	}

	rec, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("loading record from %q: %w", path, err)
	}

	slog.Debug("loaded record", "path", path, "fields", rec.Len())
	return rec, nil
}

func readSource(ctx context.Context, path string) ([]byte, error) {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		data, err := serializer.NewHttpReader().Fetch(ctx, path)
		if err != nil {
			return nil, cerrors.WrapWithContext(cerrors.ErrCodeNotFound,
				"failed to fetch remote record", err,
				map[string]any{"url": path})
		}
		return data, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, cerrors.WrapWithContext(cerrors.ErrCodeNotFound,
				"record not found", err,
				map[string]any{"path": path})
		}
		return nil, cerrors.Wrap(cerrors.ErrCodeInternal, "failed to read record", err)
	}
	return data, nil
}

// MarshalRC renders the record back into the .cookiecutterrc file format:
// a default_context mapping with four-space indentation and single-quoted
// values. Parse(MarshalRC(r)) yields a record equal to r.
func MarshalRC(r *Record) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(rcIndent)
	if err := enc.Encode(Document{DefaultContext: r}); err != nil {
		return nil, cerrors.Wrap(cerrors.ErrCodeInternal, "failed to marshal record", err)
	}
	if err := enc.Close(); err != nil {
		return nil, cerrors.Wrap(cerrors.ErrCodeInternal, "failed to marshal record", err)
	}
	return buf.Bytes(), nil
}
