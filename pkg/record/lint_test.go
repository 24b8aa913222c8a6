package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cookiecutter-tools/cookierc/pkg/header"
)

func TestLintCleanRecord(t *testing.T) {
	rec := loadFixture(t)

	result := Lint(rec, WithLintSource(fixturePath), WithLintVersion("v0.0.1"))
	require.NotNil(t, result)

	assert.Equal(t, LintStatusPass, result.Summary.Status)
	assert.Equal(t, rec.Len(), result.Summary.Passed)
	assert.Zero(t, result.Summary.Failed)
	assert.Zero(t, result.Summary.Unknown)
	assert.Equal(t, rec.Len(), result.Summary.Total)
	assert.Empty(t, result.Findings)

	assert.Equal(t, fixturePath, result.Source)
	assert.Equal(t, header.KindLintResult, result.Kind)
	assert.Equal(t, "v0.0.1", result.Metadata["version"])
}

func TestLintVocabularyViolation(t *testing.T) {
	rec, err := New(
		Field{Name: "license", Value: "WTFPL"},
		Field{Name: "travis", Value: "yes"},
	)
	require.NoError(t, err)

	result := Lint(rec)
	assert.Equal(t, LintStatusFail, result.Summary.Status)
	assert.Equal(t, 1, result.Summary.Failed)
	assert.Equal(t, 1, result.Summary.Passed)

	require.Len(t, result.Findings, 1)
	finding := result.Findings[0]
	assert.Equal(t, "license", finding.Field)
	assert.Equal(t, FindingStatusFailed, finding.Status)
	assert.Contains(t, finding.Detail, "WTFPL")
}

func TestLintToggleViolation(t *testing.T) {
	rec, err := New(Field{Name: "travis", Value: "true"})
	require.NoError(t, err)

	result := Lint(rec)
	assert.Equal(t, LintStatusFail, result.Summary.Status)
	require.Len(t, result.Findings, 1)
	assert.Equal(t, "travis", result.Findings[0].Field)
}

func TestLintUnknownField(t *testing.T) {
	rec, err := New(
		Field{Name: "license", Value: "MIT license"},
		Field{Name: "custom_prompt", Value: "whatever"},
	)
	require.NoError(t, err)

	result := Lint(rec)
	assert.Equal(t, LintStatusPartial, result.Summary.Status)
	assert.Equal(t, 1, result.Summary.Unknown)
	assert.Zero(t, result.Summary.Failed)

	require.Len(t, result.Findings, 1)
	assert.Equal(t, FindingStatusUnknown, result.Findings[0].Status)
}

func TestLintFreeFormFieldNeverFails(t *testing.T) {
	rec, err := New(
		Field{Name: "project_name", Value: "Advanced Logging"},
		Field{Name: "codacy_projectid", Value: "[Get ID from https://example.com]"},
	)
	require.NoError(t, err)

	result := Lint(rec)
	assert.Equal(t, LintStatusPass, result.Summary.Status)
	assert.Equal(t, 2, result.Summary.Passed)
}

func TestLintVersionField(t *testing.T) {
	rec, err := New(Field{Name: "version", Value: "0.1.1"})
	require.NoError(t, err)
	assert.Equal(t, LintStatusPass, Lint(rec).Summary.Status)

	rec, err = New(Field{Name: "version", Value: "not-even-semver"})
	require.NoError(t, err)

	result := Lint(rec)
	assert.Equal(t, LintStatusFail, result.Summary.Status)
	require.Len(t, result.Findings, 1)
	assert.Equal(t, FindingStatusFailed, result.Findings[0].Status)
	assert.Contains(t, result.Findings[0].Detail, "semantic version")
}

func TestLintFailBeatsPartial(t *testing.T) {
	rec, err := New(
		Field{Name: "license", Value: "WTFPL"},
		Field{Name: "custom_prompt", Value: "x"},
	)
	require.NoError(t, err)

	result := Lint(rec)
	assert.Equal(t, LintStatusFail, result.Summary.Status)
}
