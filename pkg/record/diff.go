/*
Copyright © 2025 Cookiecutter Tools Authors
SPDX-License-Identifier: Apache-2.0
*/

package record

import (
	"github.com/cookiecutter-tools/cookierc/pkg/header"
)

// DeltaKind classifies a single field difference between two records.
type DeltaKind string

const (
	// DeltaAdded indicates the field exists only in the right record.
	DeltaAdded DeltaKind = "added"
	// DeltaRemoved indicates the field exists only in the left record.
	DeltaRemoved DeltaKind = "removed"
	// DeltaChanged indicates the field exists in both records with
	// different values.
	DeltaChanged DeltaKind = "changed"
)

// Delta describes one field-level difference between two records.
type Delta struct {
	Field string    `json:"field" yaml:"field"`
	Kind  DeltaKind `json:"kind" yaml:"kind"`
	Left  string    `json:"left,omitempty" yaml:"left,omitempty"`
	Right string    `json:"right,omitempty" yaml:"right,omitempty"`
}

// DiffSummary contains aggregate statistics about a comparison.
type DiffSummary struct {
	Added   int `json:"added" yaml:"added"`
	Removed int `json:"removed" yaml:"removed"`
	Changed int `json:"changed" yaml:"changed"`
	Total   int `json:"total" yaml:"total"`
}

// DiffResult is the serializable outcome of comparing two records.
type DiffResult struct {
	header.Header `json:",inline" yaml:",inline"`

	// Left and Right are the sources of the compared records.
	Left  string `json:"left" yaml:"left"`
	Right string `json:"right" yaml:"right"`

	Summary DiffSummary `json:"summary" yaml:"summary"`
	Deltas  []Delta     `json:"deltas,omitempty" yaml:"deltas,omitempty"`
}

// Compare returns the field-level differences between two records.
// Changed and added fields are reported in the right record's order,
// followed by removed fields in the left record's order. Two equal
// records produce no deltas.
func Compare(left, right *Record) []Delta {
	var deltas []Delta

	for _, f := range right.Fields() {
		leftValue, exists := left.Get(f.Name)
		switch {
		case !exists:
			deltas = append(deltas, Delta{Field: f.Name, Kind: DeltaAdded, Right: f.Value})
		case leftValue != f.Value:
			deltas = append(deltas, Delta{Field: f.Name, Kind: DeltaChanged, Left: leftValue, Right: f.Value})
		}
	}

	for _, f := range left.Fields() {
		if _, exists := right.Get(f.Name); !exists {
			deltas = append(deltas, Delta{Field: f.Name, Kind: DeltaRemoved, Left: f.Value})
		}
	}

	return deltas
}

// DiffOption is a functional option for configuring Diff results.
type DiffOption func(*DiffResult)

// WithDiffSources returns an option that records where the compared
// records came from.
func WithDiffSources(left, right string) DiffOption {
	return func(d *DiffResult) {
		d.Left = left
		d.Right = right
	}
}

// WithDiffVersion returns an option that stamps the tool version on the
// result header metadata.
func WithDiffVersion(version string) DiffOption {
	return func(d *DiffResult) {
		d.Init(header.KindDiffResult, version)
	}
}

// Diff compares two records and wraps the deltas in a serializable result.
func Diff(left, right *Record, opts ...DiffOption) *DiffResult {
	result := &DiffResult{}
	result.Init(header.KindDiffResult, "")

	for _, opt := range opts {
		opt(result)
	}

	result.Deltas = Compare(left, right)
	for _, d := range result.Deltas {
		switch d.Kind {
		case DeltaAdded:
			result.Summary.Added++
		case DeltaRemoved:
			result.Summary.Removed++
		case DeltaChanged:
			result.Summary.Changed++
		}
	}
	result.Summary.Total = len(result.Deltas)

	return result
}
