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
)

func showCmd() *cli.Command {
	return &cli.Command{
		Name:                  "show",
		EnableShellCompletion: true,
		Usage:                 "Load a regeneration record and print it",
		ArgsUsage:             "[path-or-url]",
		Description: `Load a .cookiecutterrc record and print it.

The path may be a local file or an HTTP/HTTPS URL; with no argument the
.cookiecutterrc in the working directory is used. Loading is a pure read:
the output holds exactly the fields present in the record, in file order,
with every value kept as its literal string.

The record can be output in JSON, YAML, or table format.`,
		Flags: []cli.Flag{
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			format, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			path := recordPathArg(cmd)
			rec, err := record.Load(ctx, path)
			if err != nil {
				return fmt.Errorf("failed to load record from %q: %w", path, err)
			}

			w := serializer.NewFileWriterOrStdout(format, cmd.String("output"))
			defer func() {
				if closer, ok := w.(serializer.Closer); ok {
					if err := closer.Close(); err != nil {
						slog.Warn("failed to close writer", "error", err)
					}
				}
			}()

			// table output flattens to FIELD/VALUE rows; structured formats
			// mirror the on-disk default_context document
			if format == serializer.FormatTable {
				return w.Serialize(ctx, rec.Map())
			}
			return w.Serialize(ctx, record.Document{DefaultContext: rec})
		},
	}
}
