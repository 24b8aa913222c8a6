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
	"os/signal"
	"strings"
	"syscall"

	"github.com/google/uuid"
	"github.com/urfave/cli/v3"

	"github.com/cookiecutter-tools/cookierc/pkg/logging"
	"github.com/cookiecutter-tools/cookierc/pkg/serializer"
)

const (
	name = "cookierc"

	// defaultRCFile is the conventional record location in a project root.
	defaultRCFile = ".cookiecutterrc"
)

// overridden during build with ldflags
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

var (
	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Output file path (default: stdout)",
	}
	formatFlag = &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Usage: fmt.Sprintf("Output format (supported values: %s)",
			strings.Join(serializer.SupportedFormats(), ", ")),
	}
)

// New builds the root cookierc command with all subcommands attached.
func New() *cli.Command {
	return &cli.Command{
		Name:    name,
		Version: version,
		Usage:   "Inspect cookiecutter regeneration records",
		Description: fmt.Sprintf(`cookierc - scaffold regeneration record tooling

Version: %s
Commit:  %s
Built:   %s

A .cookiecutterrc file records the answers given to a project template so
the skeleton can be regenerated later. cookierc loads these records and
makes them inspectable:

show   - load a record and print it as YAML, JSON, or a table
fields - list the field names a record holds
lint   - check field values against the template's known vocabularies
diff   - report field-level drift between two records`, version, commit, date),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "log-level",
				Value: "info",
				Usage: "Log level (debug, info, warn, error)",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			// explicit flag wins; otherwise LOG_LEVEL decides
			if cmd.IsSet("log-level") {
				logging.SetDefaultStructuredLoggerWithLevel(name, version, cmd.String("log-level"))
			} else {
				logging.SetDefaultStructuredLogger(name, version)
			}
			slog.Debug("starting",
				"name", name,
				"version", version,
				"commit", commit,
				"date", date,
				"invocation", uuid.NewString())
			return ctx, nil
		},
		Commands: []*cli.Command{
			showCmd(),
			fieldsCmd(),
			lintCmd(),
			diffCmd(),
		},
	}
}

// Run executes the root command. This is called by main.main().
func Run(ctx context.Context, args []string) error {
	return New().Run(ctx, args)
}

// Execute runs the root command against os.Args with SIGINT/SIGTERM
// handling, exiting non-zero on any error.
func Execute() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, "\nReceived interrupt signal, shutting down gracefully...")
		cancel()
	}()

	if err := Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// parseOutputFormat resolves the output format for a command: the explicit
// --format flag wins, otherwise the --output file extension decides, and
// with neither the record's native YAML is used.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	if f := cmd.String("format"); f != "" {
		format := serializer.Format(f)
		if format.IsUnknown() {
			return "", fmt.Errorf("unknown output format: %q (supported values: %s)",
				f, strings.Join(serializer.SupportedFormats(), ", "))
		}
		return format, nil
	}

	if out := cmd.String("output"); strings.TrimSpace(out) != "" {
		return serializer.FormatFromPath(out), nil
	}

	return serializer.FormatYAML, nil
}

// recordPathArg returns the record path argument, falling back to the
// conventional .cookiecutterrc in the working directory.
func recordPathArg(cmd *cli.Command) string {
	if path := cmd.Args().First(); path != "" {
		return path
	}
	return defaultRCFile
}
