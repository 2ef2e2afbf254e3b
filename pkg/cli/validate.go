/*
Copyright © 2025 Chataigne
SPDX-License-Identifier: Apache-2.0
*/

package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/chataigne/catalogctl/pkg/catalog"
	"github.com/chataigne/catalogctl/pkg/serializer"
	"github.com/chataigne/catalogctl/pkg/validator"
)

// Exit codes for the validate command.
const (
	exitValid     = 0
	exitInvalid   = 1
	exitReadError = 2
)

func validateCmd() *cli.Command {
	return &cli.Command{
		Name:                  "validate",
		Aliases:               []string{"val"},
		EnableShellCompletion: true,
		Usage:                 "Validate a catalog document",
		ArgsUsage:             "<catalog.json>",
		Description: `Validates a catalog JSON document for schema compliance, referential
integrity, uniqueness, naming conventions and business rules.

Broken entity references are reported with fuzzy-matched suggestions for
likely typos. The report can be output as human-readable text, JSON, or
YAML.

# Examples

Validate a catalog file:
  catalogctl validate menu.json

Validate from stdin, machine-readable output:
  cat menu.json | catalogctl validate --format json -

Treat warnings as failures (CI gating):
  catalogctl validate --strict menu.json

# Exit Codes

  0  catalog is valid
  1  catalog is invalid (one or more errors; with --strict, warnings too)
  2  input could not be read or parsed as JSON`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "strict",
				Usage: "Treat warnings as failures for the verdict and exit code",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"t"},
				Value:   string(serializer.FormatText),
				Usage:   "output format (text, json, yaml)",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "output file path (default: stdout)",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat := serializer.Format(cmd.String("format"))
			if outFormat.IsUnknown() {
				return fmt.Errorf("unknown output format: %q, valid formats are: text, json, yaml", outFormat)
			}

			path := cmd.Args().First()
			if path == "" {
				return cli.Exit("missing catalog path argument (use '-' for stdin)", exitReadError)
			}

			data, err := readInput(path)
			if err != nil {
				slog.Error("failed to read catalog", "path", path, "error", err)
				return cli.Exit(fmt.Sprintf("failed to read catalog: %v", err), exitReadError)
			}

			doc, err := catalog.Parse(data)
			if err != nil {
				slog.Error("failed to parse catalog", "path", path, "error", err)
				return cli.Exit(fmt.Sprintf("failed to parse catalog: %v", err), exitReadError)
			}

			v := validator.New(
				validator.WithVersion(version),
				validator.WithStrict(cmd.Bool("strict")),
			)
			report, err := v.Validate(ctx, doc)
			if err != nil {
				return cli.Exit(fmt.Sprintf("validation failed: %v", err), exitReadError)
			}

			ser, err := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			if err != nil {
				return cli.Exit(err.Error(), exitReadError)
			}
			defer func() {
				if err := ser.Close(); err != nil {
					slog.Warn("failed to close serializer", "error", err)
				}
			}()

			if err := ser.Serialize(report); err != nil {
				return cli.Exit(fmt.Sprintf("failed to write report: %v", err), exitReadError)
			}

			if !report.Valid {
				return cli.Exit("", exitInvalid)
			}
			return nil
		},
	}
}

// readInput reads the catalog bytes from a file path, or stdin for "-".
func readInput(path string) ([]byte, error) {
	if path == serializer.StdoutURI {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}
