// Package tile contains CLI `tile` command implementation.
package tile

import (
	"context"
	"math"
	"path/filepath"

	"github.com/urfave/cli/v2"

	"github.com/pictor-cli/pictor/internal/cli/shared"
	"github.com/pictor-cli/pictor/internal/imgproc"
	"github.com/pictor-cli/pictor/internal/logger"
	"github.com/pictor-cli/pictor/internal/output"
	"github.com/pictor-cli/pictor/internal/tiling"
)

type command struct {
	log logger.Logger
}

type options struct {
	tileWidth   int
	tileHeight  int
	tilePadding int
	aspectRatio float64
	outputFile  string
	policy      output.Policy
}

// NewCommand creates `tile` command.
func NewCommand(log logger.Logger) *cli.Command {
	var cmd = command{log: log}

	return &cli.Command{
		Name:         "tile",
		ArgsUsage:    "<image-files...>",
		Aliases:      []string{"t"},
		Usage:        "Tile the given image(s) into a bigger, composite image",
		OnUsageError: shared.OnUsageError,
		Action: func(c *cli.Context) error {
			if c.NArg() < 1 {
				return cli.Exit("at least one input file is required", 2) //nolint:gomnd
			}

			var opts = options{
				tileWidth:   c.Int(shared.TileWidthKey),
				tileHeight:  c.Int(shared.TileHeightKey),
				tilePadding: c.Int(shared.TilePaddingKey),
				aspectRatio: c.Float64(shared.AspectRatioKey),
				outputFile:  c.String(shared.OutputFileKey),
				policy: output.Policy{
					Overwrite:   c.Bool(shared.OverwriteKey),
					Interactive: c.Bool(shared.InteractiveKey),
				},
			}

			return cmd.Run(c.Context, c.Args().Slice(), opts)
		},
		Flags: shared.Flags(
			shared.TileWidthKey,
			shared.TileHeightKey,
			shared.TilePaddingKey,
			shared.AspectRatioKey,
			shared.OutputFileKey,
			shared.OverwriteKey,
			shared.InteractiveKey,
		),
	}
}

// Run current command.
func (cmd *command) Run(ctx context.Context, inputs []string, opts options) error {
	var tileWidth, tileHeight = opts.tileWidth, opts.tileHeight

	if tileHeight == 0 { // square tiles by default
		tileHeight = tileWidth
	}

	layout, err := tiling.Optimal(len(inputs), tileWidth, tileHeight, opts.tilePadding, opts.aspectRatio)
	if err != nil {
		return err
	}

	cmd.log.Info("Tiling layout",
		layout.Columns, "x", layout.Rows, "grid,", layout.CanvasWidth, "x", layout.CanvasHeight, "px")

	var canvas = imgproc.NewCanvas(layout.CanvasWidth, layout.CanvasHeight)

	for i, filePath := range inputs {
		if err = ctx.Err(); err != nil {
			return err
		}

		img, openErr := imgproc.Open(filePath)
		if openErr != nil {
			return openErr
		}

		var width, height = img.Bounds().Dx(), img.Bounds().Dy()

		if !aspectRatiosClose(width, height, tileWidth, tileHeight) {
			cmd.log.Warn("Image aspect ratio does not match that of the tiles",
				filePath, width, "x", height)
		}

		canvas = imgproc.Paste(canvas, imgproc.Resize(img, tileWidth, tileHeight), layout.CellOrigin(i))
	}

	var filePath = opts.outputFile
	if filePath == "" {
		filePath = filepath.Join(output.DefaultFolder(), "tiled.png")
	}

	return output.SaveImage(canvas, filePath, opts.policy, cmd.log)
}

func aspectRatiosClose(w1, h1, w2, h2 int) bool {
	const tolerance = 0.01

	var r1, r2 = float64(w1) / float64(h1), float64(w2) / float64(h2)

	return math.Abs(r1-r2) <= tolerance*math.Max(r1, r2)
}
