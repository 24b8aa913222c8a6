/*
Copyright © 2025 Cookiecutter Tools Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/cookiecutter-tools/cookierc/pkg/record"
)

func fieldsCmd() *cli.Command {
	return &cli.Command{
		Name:                  "fields",
		EnableShellCompletion: true,
		Usage:                 "List the field names a record holds",
		ArgsUsage:             "[path-or-url]",
		Description: `List the field names present in a record, one per line,
in file order.

With --known, list the template's full prompt set instead of reading a
record. Useful for spotting prompts a record does not answer.`,
		Flags: []cli.Flag{
			outputFlag,
			&cli.BoolFlag{
				Name:  "known",
				Usage: "List the template's known prompt set instead of a record's fields",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			var names []string
			if cmd.Bool("known") {
				names = record.KnownFieldNames()
			} else {
				path := recordPathArg(cmd)
				rec, err := record.Load(ctx, path)
				if err != nil {
					return fmt.Errorf("failed to load record from %q: %w", path, err)
				}
				names = rec.Names()
			}

			out := os.Stdout
			if path := cmd.String("output"); path != "" {
				f, err := os.Create(path)
				if err != nil {
					return fmt.Errorf("failed to create output file %q: %w", path, err)
				}
				defer func() {
					if err := f.Close(); err != nil {
						slog.Warn("failed to close output file", "error", err)
					}
				}()
				out = f
			}

			for _, name := range names {
				fmt.Fprintln(out, name)
			}
			return nil
		},
	}
}
