/*
Copyright © 2025 Cookiecutter Tools Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package serializer provides utilities for writing structured data to
// various output formats.
//
// The package supports three main output formats:
//   - JSON: Machine-readable structured data with proper indentation
//   - YAML: Human-readable configuration format
//   - Table: Human-readable tabular output with flattened keys
//
// Usage:
//
//	writer := serializer.NewWriter(serializer.FormatJSON, os.Stdout)
//	defer writer.Close()
//	if err := writer.Serialize(ctx, data); err != nil {
//	    log.Fatal(err)
//	}
//
// It also provides an HTTP reader for fetching remote record files with
// sane transport timeouts.
package serializer

import "context"

// Serializer is an interface for serializing data to an output.
// Implementations can serialize to various formats such as JSON, YAML,
// or tabular text.
//
// The context parameter is used for cancellation and timeouts by
// implementations that perform I/O.
type Serializer interface {
	Serialize(ctx context.Context, data any) error
}

// Closer is an optional interface that Serializers can implement
// if they need to release resources (e.g., close file handles).
type Closer interface {
	Close() error
}
