// Package record models the .cookiecutterrc configuration record: the
// answers a project template recorded so its skeleton can be regenerated.
//
// # Overview
//
// A record is a flat, ordered mapping of field name to literal string value
// under a single default_context key. There is no nesting, no typed values,
// and no runtime behavior; the external templating tool that consumes the
// file owns all semantics. This package provides the single read operation
// the record supports, plus advisory tooling on top of the loaded mapping.
//
// # Loading
//
// Load is a pure read: it parses the flat key-value structure and returns
// exactly the fields present in the file, in file order, with every value
// kept as its literal text. Quoted booleans stay "yes"/"no", version
// numbers stay strings, and placeholder values remain opaque.
//
//	rec, err := record.Load(ctx, ".cookiecutterrc")
//	if err != nil {
//	    // errors.ErrCodeNotFound: the file does not exist
//	    // errors.ErrCodeParse: malformed, empty, duplicate or non-scalar fields
//	}
//	license, _ := rec.Get("license") // "MIT license", exactly as written
//
// Loading performs no validation or defaulting. Malformed syntax is the
// only failure mode beyond a missing file, and it is surfaced immediately
// with no partial result.
//
// # Lint and Diff
//
// Lint checks a loaded record against the template's known prompt set and
// per-field vocabularies (yes/no toggles, license identifiers, CLI kinds).
// It is opt-in and advisory. Diff compares two records field by field and
// reports added, removed, and changed entries, which makes regeneration
// drift between two checkouts visible.
package record
