/*
Copyright © 2025 Chataigne
SPDX-License-Identifier: Apache-2.0
*/

package cli

import (
	"context"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"
)

// version is the CLI version, embedded at build time:
//
//	go build -ldflags="-X 'github.com/chataigne/catalogctl/pkg/cli.version=1.0.0'"
var version = "dev"

// New constructs the catalogctl root command.
func New() *cli.Command {
	return &cli.Command{
		Name:    "catalogctl",
		Usage:   "Validate restaurant catalog documents",
		Version: version,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Enable debug logging",
			},
			&cli.BoolFlag{
				Name:  "log-json",
				Usage: "Output logs in JSON format",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			configureLogging(cmd.Bool("debug"), cmd.Bool("log-json"))
			return ctx, nil
		},
		Commands: []*cli.Command{
			validateCmd(),
		},
	}
}

func configureLogging(debug, logJSON bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if logJSON {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}
