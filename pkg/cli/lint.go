/*
Copyright © 2025 Cookiecutter Tools Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"

	"github.com/cookiecutter-tools/cookierc/pkg/defaults"
	"github.com/cookiecutter-tools/cookierc/pkg/record"
	"github.com/cookiecutter-tools/cookierc/pkg/serializer"
)

func lintCmd() *cli.Command {
	return &cli.Command{
		Name:                  "lint",
		EnableShellCompletion: true,
		Usage:                 "Check record values against the template's vocabularies",
		ArgsUsage:             "[path-or-url]...",
		Description: `Check one or more records against the template's known prompt set.

Every enumerated field (yes/no toggles, license identifiers, CLI kinds,
linter and test runner choices) must hold a vocabulary value. Field names
outside the prompt set are reported as unknown rather than failed.

Linting is advisory and entirely separate from loading: a record that
fails lint still loads fine, because the external templating tool owns
value semantics. The command exits non-zero when any record fails.`,
		Flags: []cli.Flag{
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			format, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			paths := cmd.Args().Slice()
			if len(paths) == 0 {
				paths = []string{defaultRCFile}
			}

			lintCtx, cancel := context.WithTimeout(ctx, defaults.CLILintTimeout)
			defer cancel()

			results := make([]*record.LintResult, len(paths))
			g, gctx := errgroup.WithContext(lintCtx)
			for i, path := range paths {
				g.Go(func() error {
					rec, err := record.Load(gctx, path)
					if err != nil {
						return fmt.Errorf("failed to load record from %q: %w", path, err)
					}
					results[i] = record.Lint(rec,
						record.WithLintSource(path),
						record.WithLintVersion(version),
					)
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			w := serializer.NewFileWriterOrStdout(format, cmd.String("output"))
			defer func() {
				if closer, ok := w.(serializer.Closer); ok {
					if err := closer.Close(); err != nil {
						slog.Warn("failed to close writer", "error", err)
					}
				}
			}()

			var payload any = results
			if len(results) == 1 {
				payload = results[0]
			}
			if err := w.Serialize(ctx, payload); err != nil {
				return err
			}

			failed := 0
			for _, r := range results {
				if r.Summary.Status == record.LintStatusFail {
					failed++
				}
			}
			if failed > 0 {
				return fmt.Errorf("lint failed for %d of %d records", failed, len(results))
			}
			return nil
		},
	}
}
