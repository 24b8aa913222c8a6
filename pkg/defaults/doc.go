// Package defaults provides centralized configuration constants for cookierc.
//
// This package defines timeout values used across the codebase. Centralizing
// these values ensures consistency and makes tuning easier.
//
// Usage:
//
//	import "github.com/cookiecutter-tools/cookierc/pkg/defaults"
//
//	ctx, cancel := context.WithTimeout(ctx, defaults.CLILintTimeout)
//	defer cancel()
package defaults
