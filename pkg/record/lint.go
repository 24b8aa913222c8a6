/*
Copyright © 2025 Cookiecutter Tools Authors
SPDX-License-Identifier: Apache-2.0
*/

package record

import (
	"fmt"

	"github.com/cookiecutter-tools/cookierc/pkg/header"
	"github.com/cookiecutter-tools/cookierc/pkg/version"
)

// FindingStatus represents the outcome of checking a single field.
type FindingStatus string

const (
	// FindingStatusPassed indicates the field is known and its value is
	// acceptable.
	FindingStatusPassed FindingStatus = "passed"
	// FindingStatusFailed indicates a known enumerated field holds a value
	// outside its vocabulary.
	FindingStatusFailed FindingStatus = "failed"
	// FindingStatusUnknown indicates a field name outside the template's
	// prompt set, which lint cannot judge.
	FindingStatusUnknown FindingStatus = "unknown"
)

// LintStatus represents the overall lint outcome.
type LintStatus string

const (
	// LintStatusPass indicates every field checked out.
	LintStatusPass LintStatus = "pass"
	// LintStatusFail indicates one or more vocabulary violations.
	LintStatusFail LintStatus = "fail"
	// LintStatusPartial indicates no violations, but fields lint could
	// not judge.
	LintStatusPartial LintStatus = "partial"
)

// Finding describes the lint outcome for a single field. Only failed and
// unknown fields carry detail; passing fields are counted in the summary.
type Finding struct {
	Field  string        `json:"field" yaml:"field"`
	Value  string        `json:"value" yaml:"value"`
	Status FindingStatus `json:"status" yaml:"status"`
	Detail string        `json:"detail,omitempty" yaml:"detail,omitempty"`
}

// LintSummary contains aggregate statistics about a lint run.
type LintSummary struct {
	Passed  int        `json:"passed" yaml:"passed"`
	Failed  int        `json:"failed" yaml:"failed"`
	Unknown int        `json:"unknown" yaml:"unknown"`
	Total   int        `json:"total" yaml:"total"`
	Status  LintStatus `json:"status" yaml:"status"`
}

// LintResult is the serializable outcome of linting one record.
type LintResult struct {
	header.Header `json:",inline" yaml:",inline"`

	// Source is the path/URI of the record that was linted.
	Source string `json:"source" yaml:"source"`

	Summary  LintSummary `json:"summary" yaml:"summary"`
	Findings []Finding   `json:"findings,omitempty" yaml:"findings,omitempty"`
}

// LintOption is a functional option for configuring lint results.
type LintOption func(*LintResult)

// WithLintSource returns an option that records where the record came from.
func WithLintSource(source string) LintOption {
	return func(l *LintResult) {
		l.Source = source
	}
}

// WithLintVersion returns an option that stamps the tool version on the
// result header metadata.
func WithLintVersion(version string) LintOption {
	return func(l *LintResult) {
		l.Init(header.KindLintResult, version)
	}
}

// Lint checks every field of the record against the template's prompt set.
// Enumerated fields must hold a vocabulary value; field names outside the
// prompt set are reported as unknown rather than failed, since the external
// tool may accept template-specific extras.
//
// Lint is advisory and separate from loading: Load never validates.
func Lint(rec *Record, opts ...LintOption) *LintResult {
	result := &LintResult{}
	result.Init(header.KindLintResult, "")

	for _, opt := range opts {
		opt(result)
	}

	for _, f := range rec.Fields() {
		voc, known := VocabularyFor(f.Name)
		switch {
		case !known:
			result.Summary.Unknown++
			result.Findings = append(result.Findings, Finding{
				Field:  f.Name,
				Value:  f.Value,
				Status: FindingStatusUnknown,
				Detail: "field is not part of the template prompt set",
			})
		case voc != nil && !voc.Contains(f.Value):
			result.Summary.Failed++
			result.Findings = append(result.Findings, Finding{
				Field:  f.Name,
				Value:  f.Value,
				Status: FindingStatusFailed,
				Detail: fmt.Sprintf("value %q not in vocabulary %v", f.Value, voc),
			})
		case f.Name == FieldVersion:
			if _, err := version.ParseVersion(f.Value); err != nil {
				result.Summary.Failed++
				result.Findings = append(result.Findings, Finding{
					Field:  f.Name,
					Value:  f.Value,
					Status: FindingStatusFailed,
					Detail: fmt.Sprintf("not a semantic version: %v", err),
				})
			} else {
				result.Summary.Passed++
			}
		default:
			result.Summary.Passed++
		}
	}

	result.Summary.Total = rec.Len()

	switch {
	case result.Summary.Failed > 0:
		result.Summary.Status = LintStatusFail
	case result.Summary.Unknown > 0:
		result.Summary.Status = LintStatusPartial
	default:
		result.Summary.Status = LintStatusPass
	}

	return result
}
