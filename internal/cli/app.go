// Package cli contains CLI command handlers.
package cli

import (
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/pictor-cli/pictor/internal/cli/facecrop"
	"github.com/pictor-cli/pictor/internal/cli/qrcode"
	"github.com/pictor-cli/pictor/internal/cli/rasterize"
	"github.com/pictor-cli/pictor/internal/cli/shared"
	"github.com/pictor-cli/pictor/internal/cli/tile"
	"github.com/pictor-cli/pictor/internal/env"
	"github.com/pictor-cli/pictor/internal/logger"
	"github.com/pictor-cli/pictor/internal/version"
)

// NewApp creates new console application.
func NewApp() *cli.App {
	const logLevelFlagName = "log-level"

	const defaultLogLevel = logger.InfoLevel

	// create "default" logger (the level will be adjusted after the command line is parsed)
	var log = logger.New(defaultLogLevel)

	return &cli.App{
		Name:  "pictor",
		Usage: "Image and pdf utility tasks - QR codes, pdf rastering, face cropping and image tiling",
		Before: func(c *cli.Context) error {
			logger.InitColors()

			logLevel, err := logger.ParseLevel(c.String(logLevelFlagName))
			if err != nil {
				return cli.Exit(err.Error(), 2) //nolint:gomnd
			}

			log.SetLevel(logLevel)

			return nil
		},
		Commands: []*cli.Command{
			qrcode.NewCommand(log),
			rasterize.NewCommand(log),
			facecrop.NewCommand(log),
			tile.NewCommand(log),
		},
		Flags: []cli.Flag{ // global flags
			&cli.StringFlag{
				Name:    logLevelFlagName,
				Value:   defaultLogLevel.String(),
				Usage:   "logging level (" + strings.Join(logger.AllLevelStrings(), "|") + ")",
				EnvVars: []string{env.LogLevel.String()},
			},
		},
		OnUsageError: shared.OnUsageError,
		Action: func(c *cli.Context) error { // a sub-command is required
			_ = cli.ShowAppHelp(c)

			return cli.Exit("no command specified", 2) //nolint:gomnd
		},
		Version: version.Version(),
	}
}
