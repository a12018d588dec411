// Package rasterize contains CLI `rasterize` command implementation.
package rasterize

import (
	"context"

	"github.com/pkg/errors"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/pictor-cli/pictor/internal/cli/shared"
	"github.com/pictor-cli/pictor/internal/imgproc"
	"github.com/pictor-cli/pictor/internal/logger"
	"github.com/pictor-cli/pictor/internal/output"
	"github.com/pictor-cli/pictor/internal/pdf"
)

type command struct {
	log logger.Logger
}

type options struct {
	pageNumber        int
	intermediateWidth int
	outputWidth       int
	outputFolder      string
	fileType          string
	suffix            string
	policy            output.Policy
}

// NewCommand creates `rasterize` command.
func NewCommand(log logger.Logger) *cli.Command {
	var cmd = command{log: log}

	return &cli.Command{
		Name:         "rasterize",
		ArgsUsage:    "<pdf-files...>",
		Aliases:      []string{"r"},
		Usage:        "Rasterize a single page of the given pdf document(s)",
		OnUsageError: shared.OnUsageError,
		Action: func(c *cli.Context) error {
			if c.NArg() < 1 {
				return cli.Exit("at least one input file is required", 2) //nolint:gomnd
			}

			var opts = options{
				pageNumber:        c.Int(shared.PageNumberKey),
				intermediateWidth: c.Int(shared.IntermediateWidthKey),
				outputWidth:       c.Int(shared.OutputWidthKey),
				outputFolder:      c.String(shared.OutputFolderKey),
				fileType:          c.String(shared.FileTypeKey),
				suffix:            c.String(shared.SuffixKey),
				policy: output.Policy{
					Overwrite:   c.Bool(shared.OverwriteKey),
					Interactive: c.Bool(shared.InteractiveKey),
				},
			}

			return cmd.Run(c.Context, c.Args().Slice(), opts)
		},
		Flags: shared.Flags(
			shared.PageNumberKey,
			shared.IntermediateWidthKey,
			shared.OutputWidthKey,
			shared.OutputFolderKey,
			shared.FileTypeKey,
			shared.SuffixKey,
			shared.OverwriteKey,
			shared.InteractiveKey,
		),
	}
}

// Run current command. Files are processed sequentially, and the first failure stops the run.
func (cmd *command) Run(ctx context.Context, inputs []string, opts options) error {
	var bar *pterm.ProgressbarPrinter

	if len(inputs) > 1 {
		bar, _ = pterm.DefaultProgressbar.WithTotal(len(inputs)).WithTitle("Rastering").Start()

		defer func() { _, _ = bar.Stop() }()
	}

	for _, filePath := range inputs {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := cmd.processFile(filePath, opts); errors.Is(err, output.ErrExists) {
			cmd.log.Warn("Skipping existing file", filePath)
		} else if err != nil {
			return err
		}

		if bar != nil {
			bar.Increment()
		}
	}

	return nil
}

func (cmd *command) processFile(filePath string, opts options) error {
	cmd.log.Info("Rastering", filePath, "page", opts.pageNumber)

	if count, err := pdf.PageCount(filePath); err == nil {
		cmd.log.Debug("Document pages", count)
	}

	// the page is rendered at a large intermediate width first, and then downscaled to the target one,
	// which keeps thin lines and small text readable
	img, err := pdf.Rasterize(filePath, opts.pageNumber, opts.intermediateWidth)
	if err != nil {
		return err
	}

	targetPath, err := output.PathFor(filePath, opts.outputFolder, opts.fileType, opts.suffix)
	if err != nil {
		return err
	}

	return output.SaveImage(imgproc.Resize(img, opts.outputWidth, 0), targetPath, opts.policy, cmd.log)
}
