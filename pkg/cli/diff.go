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

	"github.com/cookiecutter-tools/cookierc/pkg/record"
	"github.com/cookiecutter-tools/cookierc/pkg/serializer"
	semver "github.com/cookiecutter-tools/cookierc/pkg/version"
)

func diffCmd() *cli.Command {
	return &cli.Command{
		Name:                  "diff",
		EnableShellCompletion: true,
		Usage:                 "Report field-level drift between two records",
		ArgsUsage:             "<left-path-or-url> <right-path-or-url>",
		Description: `Compare two records field by field and report added, removed,
and changed entries.

A project regenerated from a drifted record will come out different, so
this makes it visible whether two checkouts still share the same template
answers. The command exits non-zero when the records differ.`,
		Flags: []cli.Flag{
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 2 {
				return fmt.Errorf("diff requires exactly two record paths, got %d", cmd.Args().Len())
			}

			format, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			leftPath := cmd.Args().Get(0)
			rightPath := cmd.Args().Get(1)

			left, err := record.Load(ctx, leftPath)
			if err != nil {
				return fmt.Errorf("failed to load record from %q: %w", leftPath, err)
			}
			right, err := record.Load(ctx, rightPath)
			if err != nil {
				return fmt.Errorf("failed to load record from %q: %w", rightPath, err)
			}

			warnOnVersionDowngrade(left, right)

			result := record.Diff(left, right,
				record.WithDiffSources(leftPath, rightPath),
				record.WithDiffVersion(version),
			)

			w := serializer.NewFileWriterOrStdout(format, cmd.String("output"))
			defer func() {
				if closer, ok := w.(serializer.Closer); ok {
					if err := closer.Close(); err != nil {
						slog.Warn("failed to close writer", "error", err)
					}
				}
			}()

			if err := w.Serialize(ctx, result); err != nil {
				return err
			}

			if result.Summary.Total > 0 {
				return fmt.Errorf("records differ in %d fields", result.Summary.Total)
			}
			return nil
		},
	}
}

// warnOnVersionDowngrade logs when the right record's version answer moved
// backward relative to the left, since regenerating from it would roll the
// project version back. Unparseable versions are left to lint.
func warnOnVersionDowngrade(left, right *record.Record) {
	lv, lok := left.Get(record.FieldVersion)
	rv, rok := right.Get(record.FieldVersion)
	if !lok || !rok {
		return
	}

	lver, err := semver.ParseVersion(lv)
	if err != nil {
		return
	}
	rver, err := semver.ParseVersion(rv)
	if err != nil {
		return
	}

	if lver.IsNewer(rver) {
		slog.Warn("version field moved backward",
			"left", lv,
			"right", rv)
	}
}
