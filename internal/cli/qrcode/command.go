// Package qrcode contains CLI `qrcode` command implementation.
package qrcode

import (
	"context"
	"path/filepath"

	"github.com/urfave/cli/v2"

	"github.com/pictor-cli/pictor/internal/cli/shared"
	"github.com/pictor-cli/pictor/internal/imgproc"
	"github.com/pictor-cli/pictor/internal/logger"
	"github.com/pictor-cli/pictor/internal/output"
	"github.com/pictor-cli/pictor/internal/qrgen"
)

type command struct {
	log logger.Logger
}

type options struct {
	outputSize      int
	border          bool
	errorCorrection string
	outputFile      string
	policy          output.Policy
}

// NewCommand creates `qrcode` command.
func NewCommand(log logger.Logger) *cli.Command {
	var cmd = command{log: log}

	return &cli.Command{
		Name:         "qrcode",
		ArgsUsage:    "<data>",
		Aliases:      []string{"qr"},
		Usage:        "Generate a QR code based on generic input data",
		OnUsageError: shared.OnUsageError,
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return cli.Exit("exactly one data argument is required", 2) //nolint:gomnd
			}

			var opts = options{
				outputSize:      c.Int(shared.OutputSizeKey),
				border:          c.Bool(shared.BorderKey),
				errorCorrection: c.String(shared.ErrorCorrectionKey),
				outputFile:      c.String(shared.OutputFileKey),
				policy: output.Policy{
					Overwrite:   c.Bool(shared.OverwriteKey),
					Interactive: c.Bool(shared.InteractiveKey),
				},
			}

			// the single data string is wrapped into a one-element list, so that every handler shares
			// the same inputs convention
			return cmd.Run(c.Context, []string{c.Args().First()}, opts)
		},
		Flags: shared.Flags(
			shared.ErrorCorrectionKey,
			shared.BorderKey,
			shared.OutputSizeKey,
			shared.OutputFileKey,
			shared.OverwriteKey,
			shared.InteractiveKey,
		),
	}
}

// Run current command.
func (cmd *command) Run(ctx context.Context, inputs []string, opts options) error {
	var level, err = qrgen.ParseLevel(opts.errorCorrection)
	if err != nil {
		return err
	}

	for _, data := range inputs {
		if err = ctx.Err(); err != nil {
			return err
		}

		cmd.log.Info("Generating QR code", data)

		img, genErr := qrgen.Generate(data, opts.outputSize, opts.border, level)
		if genErr != nil {
			return genErr
		}

		var filePath = opts.outputFile
		if filePath == "" {
			filePath = filepath.Join(output.DefaultFolder(), qrgen.Slug(data)+".png")
		}

		if err = output.SaveImage(imgproc.Resize(img, opts.outputSize, opts.outputSize),
			filePath, opts.policy, cmd.log); err != nil {
			return err
		}
	}

	return nil
}
