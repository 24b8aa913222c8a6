package header

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithOptions(t *testing.T) {
	h := New(
		WithKind(KindLintResult),
		WithAPIVersion(APIVersion),
		WithMetadata("source", ".cookiecutterrc"),
	)

	require.NotNil(t, h)
	assert.Equal(t, KindLintResult, h.GetKind())
	assert.Equal(t, APIVersion, h.APIVersion)
	assert.Equal(t, ".cookiecutterrc", h.GetMetadata()["source"])
}

func TestInit(t *testing.T) {
	var h Header
	h.Init(KindDiffResult, "v1.2.3")

	assert.Equal(t, KindDiffResult, h.Kind)
	assert.Equal(t, APIVersion, h.APIVersion)
	assert.Equal(t, "v1.2.3", h.Metadata["version"])

	ts, err := time.Parse(time.RFC3339, h.Metadata["timestamp"])
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().UTC(), ts, time.Minute)
}

func TestInitWithoutVersion(t *testing.T) {
	var h Header
	h.Init(KindLintResult, "")

	_, ok := h.Metadata["version"]
	assert.False(t, ok)
}

func TestKindIsValid(t *testing.T) {
	for _, k := range []Kind{KindLintResult, KindDiffResult} {
		assert.True(t, k.IsValid(), "kind %s should be valid", k)
	}

	unknown := Kind("Bundle")
	assert.False(t, unknown.IsValid())

	record := Kind("ConfigurationRecord")
	assert.False(t, record.IsValid(), "records are never header-wrapped")
}
