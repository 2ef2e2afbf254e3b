// Package cli implements the command-line interface for catalogctl.
//
// # Overview
//
// catalogctl validates restaurant catalog JSON documents before import:
// schema compliance, cross-entity references with typo suggestions,
// uniqueness, naming conventions and business rules.
//
// # Commands
//
// validate - Validate a catalog document:
//
//	catalogctl validate menu.json
//	catalogctl validate --format json --output report.json menu.json
//	catalogctl validate --strict -  # read stdin, fail on warnings
//
// # Global Flags
//
//	--debug       Enable debug logging
//	--log-json    Output logs in JSON format
//	--help, -h    Show command help
//	--version, -v Show version information
//
// # Exit Codes
//
//	0  catalog is valid
//	1  catalog is invalid
//	2  input could not be read or parsed as JSON
//
// The CLI uses the urfave/cli/v3 framework and delegates to specialized
// packages: pkg/catalog (document model), pkg/validator (checks and report),
// pkg/serializer (output formatting).
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/chataigne/catalogctl/pkg/cli.version=1.0.0'"
package cli
