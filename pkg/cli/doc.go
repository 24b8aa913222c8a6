// Package cli implements the command-line interface for the cookierc tool.
//
// # Overview
//
// cookierc loads .cookiecutterrc scaffold regeneration records and makes
// them inspectable from the terminal. A record is the set of answers a
// project template recorded so its skeleton can be regenerated; cookierc
// never regenerates anything itself, it only reads the record.
//
// # Commands
//
// show - load a record and print it:
//
//	cookierc show [path-or-url] [--output FILE] [--format yaml|json|table]
//
// fields - list the field names a record holds:
//
//	cookierc fields [path-or-url] [--known]
//
// lint - check field values against the template's vocabularies:
//
//	cookierc lint [path-or-url]... [--format yaml|json|table]
//
// diff - report field-level drift between two records:
//
//	cookierc diff old/.cookiecutterrc new/.cookiecutterrc
//
// # Global Flags
//
//	--log-level    Log level: debug, info, warn, error (default: info)
//	--help, -h     Show command help
//	--version, -v  Show version information
//
// # Output Formats
//
// YAML is the default and mirrors the record's on-disk shape. JSON is for
// programmatic consumption. Table is a flattened FIELD/VALUE view for
// terminal reading. When --format is omitted and --output is set, the
// file extension decides.
//
// # Exit Codes
//
//	0  Success
//	1  Error, lint failure, or diff with differences
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/cookiecutter-tools/cookierc/pkg/cli.version=1.0.0'"
package cli
