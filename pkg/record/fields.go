/*
Copyright © 2025 Cookiecutter Tools Authors
SPDX-License-Identifier: Apache-2.0
*/

package record

import "sort"

// Toggle literals used by boolean-like fields. They are stored and compared
// as the exact strings "yes" and "no", never coerced to native booleans.
const (
	ToggleYes = "yes"
	ToggleNo  = "no"
)

// FieldVersion is the prompt holding the project's semantic version. Its
// value is free-form on load but lint checks it parses as a version.
const FieldVersion = "version"

// Vocabulary is the set of accepted values for an enumerated field.
type Vocabulary []string

// Contains reports whether v is one of the vocabulary values.
func (voc Vocabulary) Contains(v string) bool {
	for _, s := range voc {
		if s == v {
			return true
		}
	}
	return false
}

var toggleVocabulary = Vocabulary{ToggleYes, ToggleNo}

// toggleFields are the yes/no answers of the template prompt set.
var toggleFields = []string{
	"allow_tests_inside_package",
	"appveyor",
	"c_extension_optional",
	"codacy",
	"codeclimate",
	"codecov",
	"coveralls",
	"legacy_python",
	"pre_commit",
	"pypi_badge",
	"pypi_disable_upload",
	"requiresio",
	"scrutinizer",
	"setup_py_uses_setuptools_scm",
	"setup_py_uses_test_runner",
	"sphinx_docs",
	"sphinx_doctest",
	"test_matrix_configurator",
	"test_matrix_separate_coverage",
	"travis",
	"travis_osx",
}

// enumVocabularies are the non-toggle enumerated answers. The value sets
// come from the template's prompt choices and are advisory: loading never
// checks them, only lint does.
var enumVocabularies = map[string]Vocabulary{
	"c_extension_support":    {"no", "cython", "cffi"},
	"command_line_interface": {"no", "plain", "argparse", "click"},
	"license": {
		"MIT license",
		"BSD 2-Clause license",
		"BSD 3-Clause license",
		"ISC license",
		"Apache Software License 2.0",
		"GNU Lesser General Public License v3 (LGPLv3)",
		"GNU Lesser General Public License v3 or later (LGPLv3+)",
	},
	"linter":      {"flake8", "pylama"},
	"test_runner": {"pytest", "nose2"},
}

// freeFields hold arbitrary strings: names, URLs, dates, versions, and
// template-authoring placeholders (e.g. an unfilled Codacy project id).
var freeFields = []string{
	"c_extension_function",
	"c_extension_module",
	"c_extension_test_pypi_appveyor_secret",
	"c_extension_test_pypi_username",
	"codacy_projectid",
	"command_line_interface_bin_name",
	"coveralls_token",
	"distribution_name",
	"email",
	"full_name",
	"package_name",
	"project_name",
	"project_short_description",
	"release_date",
	"repo_hosting",
	"repo_hosting_domain",
	"repo_name",
	"repo_username",
	"sphinx_docs_hosting",
	"sphinx_theme",
	"version",
	"website",
	"year_from",
	"year_to",
}

var knownFields map[string]Vocabulary

func init() {
	knownFields = make(map[string]Vocabulary, len(toggleFields)+len(enumVocabularies)+len(freeFields))
	for _, name := range toggleFields {
		knownFields[name] = toggleVocabulary
	}
	for name, voc := range enumVocabularies {
		knownFields[name] = voc
	}
	for _, name := range freeFields {
		knownFields[name] = nil
	}
}

// IsKnownField reports whether name is part of the template's prompt set.
func IsKnownField(name string) bool {
	_, ok := knownFields[name]
	return ok
}

// VocabularyFor returns the accepted values for the named field. A nil
// vocabulary with ok=true means the field is known but free-form.
func VocabularyFor(name string) (Vocabulary, bool) {
	voc, ok := knownFields[name]
	return voc, ok
}

// KnownFieldNames returns the sorted names of all fields in the prompt set.
func KnownFieldNames() []string {
	names := make([]string, 0, len(knownFields))
	for name := range knownFields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsToggleValue reports whether v is one of the literal toggle strings.
func IsToggleValue(v string) bool {
	return v == ToggleYes || v == ToggleNo
}
