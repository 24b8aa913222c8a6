/*
Copyright © 2025 Cookiecutter Tools Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cookiecutter-tools/cookierc/pkg/record"
)

const fixturePath = "../record/testdata/advancedlogging.cookiecutterrc"

// writeRC writes a minimal record to a temp file and returns its path.
func writeRC(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".cookiecutterrc")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("failed to write record: %v", err)
	}
	return path
}

func TestShowCommand(t *testing.T) {
	out := filepath.Join(t.TempDir(), "record.yaml")
	err := Run(context.Background(), []string{"cookierc", "show", fixturePath, "--output", out})
	if err != nil {
		t.Fatalf("show failed: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	got := string(data)
	if !strings.Contains(got, "default_context:") {
		t.Errorf("output missing default_context mapping:\n%s", got)
	}
	if !strings.Contains(got, "project_name:") {
		t.Errorf("output missing project_name field:\n%s", got)
	}
}

func TestShowCommandJSON(t *testing.T) {
	out := filepath.Join(t.TempDir(), "record.json")
	err := Run(context.Background(), []string{"cookierc", "show", fixturePath, "--output", out})
	if err != nil {
		t.Fatalf("show failed: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	got := string(data)
	if !strings.Contains(got, `"default_context"`) {
		t.Errorf("output not JSON with default_context:\n%s", got)
	}
	if !strings.Contains(got, `"version": "0.1.1"`) {
		t.Errorf("output missing literal version value:\n%s", got)
	}
}

func TestShowCommandMissingRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope", ".cookiecutterrc")
	err := Run(context.Background(), []string{"cookierc", "show", path})
	if err == nil {
		t.Fatal("expected error for missing record")
	}
	if !strings.Contains(err.Error(), "failed to load record") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestShowCommandInvalidFormat(t *testing.T) {
	err := Run(context.Background(), []string{"cookierc", "show", fixturePath, "--format", "xml"})
	if err == nil {
		t.Fatal("expected error for unknown format")
	}
	if !strings.Contains(err.Error(), "unknown output format") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestFieldsCommand(t *testing.T) {
	out := filepath.Join(t.TempDir(), "fields.txt")
	err := Run(context.Background(), []string{"cookierc", "fields", fixturePath, "--output", out})
	if err != nil {
		t.Fatalf("fields failed: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	names := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(names) != 50 {
		t.Errorf("expected 50 field names, got %d", len(names))
	}
	if names[0] != "allow_tests_inside_package" {
		t.Errorf("expected allow_tests_inside_package first, got %q", names[0])
	}
}

func TestFieldsCommandKnown(t *testing.T) {
	out := filepath.Join(t.TempDir(), "known.txt")
	err := Run(context.Background(), []string{"cookierc", "fields", "--known", "--output", out})
	if err != nil {
		t.Fatalf("fields --known failed: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	got := string(data)
	for _, name := range []string{"project_name", "license", "test_runner"} {
		if !strings.Contains(got, name+"\n") {
			t.Errorf("known field list missing %q:\n%s", name, got)
		}
	}
}

func TestLintCommandPass(t *testing.T) {
	out := filepath.Join(t.TempDir(), "lint.yaml")
	err := Run(context.Background(), []string{"cookierc", "lint", fixturePath, "--output", out})
	if err != nil {
		t.Fatalf("lint failed on clean record: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	if !strings.Contains(string(data), "status: pass") {
		t.Errorf("expected pass status:\n%s", string(data))
	}
}

func TestLintCommandFail(t *testing.T) {
	path := writeRC(t, "default_context:\n    appveyor: 'maybe'\n")
	out := filepath.Join(t.TempDir(), "lint.yaml")
	err := Run(context.Background(), []string{"cookierc", "lint", path, "--output", out})
	if err == nil {
		t.Fatal("expected non-nil error for failing record")
	}
	if !strings.Contains(err.Error(), "lint failed for 1 of 1 records") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLintCommandMultipleRecords(t *testing.T) {
	other := writeRC(t, "default_context:\n    full_name: 'Jane Doe'\n")
	out := filepath.Join(t.TempDir(), "lint.yaml")
	err := Run(context.Background(), []string{"cookierc", "lint", fixturePath, other, "--output", out})
	if err != nil {
		t.Fatalf("lint failed: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	if c := strings.Count(string(data), "summary:"); c != 2 {
		t.Errorf("expected 2 lint summaries, got %d:\n%s", c, string(data))
	}
}

func TestDiffCommand(t *testing.T) {
	left := writeRC(t, "default_context:\n    version: '0.1.0'\n    linter: 'flake8'\n")
	right := writeRC(t, "default_context:\n    version: '0.1.1'\n    linter: 'flake8'\n")

	out := filepath.Join(t.TempDir(), "diff.yaml")
	err := Run(context.Background(), []string{"cookierc", "diff", left, right, "--output", out})
	if err == nil {
		t.Fatal("expected non-nil error for differing records")
	}
	if !strings.Contains(err.Error(), "records differ in 1 fields") {
		t.Errorf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	got := string(data)
	if !strings.Contains(got, "changed") {
		t.Errorf("expected changed delta:\n%s", got)
	}
}

func TestWarnOnVersionDowngrade(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })

	newer, err := record.Parse([]byte("default_context:\n    version: '0.2.0'\n"))
	if err != nil {
		t.Fatalf("failed to parse record: %v", err)
	}
	older, err := record.Parse([]byte("default_context:\n    version: '0.1.1'\n"))
	if err != nil {
		t.Fatalf("failed to parse record: %v", err)
	}

	warnOnVersionDowngrade(newer, older)
	if !strings.Contains(buf.String(), "version field moved backward") {
		t.Errorf("expected downgrade warning, got:\n%s", buf.String())
	}

	buf.Reset()
	warnOnVersionDowngrade(older, newer)
	if strings.Contains(buf.String(), "version field moved backward") {
		t.Errorf("upgrade should not warn, got:\n%s", buf.String())
	}
}

func TestLogLevelFromEnvironment(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")

	out := filepath.Join(t.TempDir(), "known.txt")
	if err := Run(context.Background(), []string{"cookierc", "fields", "--known", "--output", out}); err != nil {
		t.Fatalf("run failed: %v", err)
	}
}

func TestDiffCommandIdentical(t *testing.T) {
	out := filepath.Join(t.TempDir(), "diff.yaml")
	err := Run(context.Background(), []string{"cookierc", "diff", fixturePath, fixturePath, "--output", out})
	if err != nil {
		t.Fatalf("diff of identical records should succeed: %v", err)
	}
}

func TestDiffCommandArgCount(t *testing.T) {
	err := Run(context.Background(), []string{"cookierc", "diff", fixturePath})
	if err == nil {
		t.Fatal("expected error for single argument")
	}
	if !strings.Contains(err.Error(), "exactly two record paths") {
		t.Errorf("unexpected error: %v", err)
	}
}
