package record

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cerrors "github.com/cookiecutter-tools/cookierc/pkg/errors"
)

func TestNew(t *testing.T) {
	rec, err := New(
		Field{Name: "license", Value: "MIT license"},
		Field{Name: "version", Value: "0.1.1"},
	)
	require.NoError(t, err)

	assert.Equal(t, 2, rec.Len())

	v, ok := rec.Get("license")
	require.True(t, ok)
	assert.Equal(t, "MIT license", v)

	_, ok = rec.Get("travis")
	assert.False(t, ok)
}

func TestNewRejectsDuplicates(t *testing.T) {
	_, err := New(
		Field{Name: "license", Value: "MIT license"},
		Field{Name: "license", Value: "ISC license"},
	)
	require.Error(t, err)
	assert.True(t, cerrors.IsCode(err, cerrors.ErrCodeParse))
}

func TestNamesPreserveOrder(t *testing.T) {
	rec, err := New(
		Field{Name: "zeta", Value: "1"},
		Field{Name: "alpha", Value: "2"},
		Field{Name: "mid", Value: "3"},
	)
	require.NoError(t, err)

	assert.Equal(t, []string{"zeta", "alpha", "mid"}, rec.Names())
}

func TestMapIsACopy(t *testing.T) {
	rec, err := New(Field{Name: "travis", Value: "yes"})
	require.NoError(t, err)

	m := rec.Map()
	m["travis"] = "no"

	v, _ := rec.Get("travis")
	assert.Equal(t, "yes", v)
}

func TestEqual(t *testing.T) {
	a, err := New(Field{Name: "a", Value: "1"}, Field{Name: "b", Value: "2"})
	require.NoError(t, err)
	b, err := New(Field{Name: "a", Value: "1"}, Field{Name: "b", Value: "2"})
	require.NoError(t, err)
	reordered, err := New(Field{Name: "b", Value: "2"}, Field{Name: "a", Value: "1"})
	require.NoError(t, err)
	differs, err := New(Field{Name: "a", Value: "1"}, Field{Name: "b", Value: "3"})
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.True(t, b.Equal(a))
	assert.False(t, a.Equal(reordered), "field order is part of record identity")
	assert.False(t, a.Equal(differs))
}

func TestEqualNil(t *testing.T) {
	var nilRec *Record
	empty, err := New()
	require.NoError(t, err)

	assert.True(t, nilRec.Equal(empty))
	assert.True(t, empty.Equal(nilRec))
}

func TestMarshalJSONPreservesOrder(t *testing.T) {
	rec, err := New(
		Field{Name: "zeta", Value: "1"},
		Field{Name: "alpha", Value: "2"},
	)
	require.NoError(t, err)

	data, err := json.Marshal(rec)
	require.NoError(t, err)
	assert.Equal(t, `{"zeta":"1","alpha":"2"}`, string(data))
}

func TestJSONRoundTrip(t *testing.T) {
	orig, err := New(
		Field{Name: "license", Value: "MIT license"},
		Field{Name: "travis", Value: "yes"},
		Field{Name: "version", Value: "0.1.1"},
	)
	require.NoError(t, err)

	data, err := json.Marshal(orig)
	require.NoError(t, err)

	var got Record
	require.NoError(t, json.Unmarshal(data, &got))
	assert.True(t, orig.Equal(&got))
}

func TestUnmarshalJSONRejectsNonString(t *testing.T) {
	var rec Record
	err := json.Unmarshal([]byte(`{"version": 1.0}`), &rec)
	require.Error(t, err)
	assert.True(t, cerrors.IsCode(err, cerrors.ErrCodeParse))
}

func TestUnmarshalJSONRejectsDuplicates(t *testing.T) {
	var rec Record
	err := json.Unmarshal([]byte(`{"a":"1","a":"2"}`), &rec)
	require.Error(t, err)
	assert.True(t, cerrors.IsCode(err, cerrors.ErrCodeParse))
}

func TestFieldsReturnsCopy(t *testing.T) {
	rec, err := New(Field{Name: "a", Value: "1"})
	require.NoError(t, err)

	fields := rec.Fields()
	fields[0].Value = "mutated"

	v, _ := rec.Get("a")
	assert.Equal(t, "1", v)
}
