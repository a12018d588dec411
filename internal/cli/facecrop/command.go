// Package facecrop contains CLI `facecrop` command implementation.
package facecrop

import (
	"context"
	"image"
	"strings"

	"github.com/pkg/errors"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/pictor-cli/pictor/internal/cli/shared"
	"github.com/pictor-cli/pictor/internal/face"
	"github.com/pictor-cli/pictor/internal/geometry"
	"github.com/pictor-cli/pictor/internal/imgproc"
	"github.com/pictor-cli/pictor/internal/logger"
	"github.com/pictor-cli/pictor/internal/output"
)

// faceDetector is the detection seam, satisfied by face.Detector.
type faceDetector interface {
	Detect(img image.Image) []geometry.Rectangle
}

type command struct {
	log         logger.Logger
	newDetector func(face.Options, logger.Logger) (faceDetector, error)
}

type options struct {
	detection         face.Options
	horizontalPadding float64
	topScaleFactor    float64
	outputSize        int
	circularMask      bool
	outputFolder      string
	fileType          string
	suffix            string
	policy            output.Policy
}

// NewCommand creates `facecrop` command.
func NewCommand(log logger.Logger) *cli.Command {
	var cmd = command{log: log}

	return &cli.Command{
		Name:      "facecrop",
		ArgsUsage: "<image-files...>",
		Aliases:   []string{"f"},
		Usage: "Crop the given image(s) to a square region containing the best close-up face " +
			"candidate within",
		OnUsageError: shared.OnUsageError,
		Action: func(c *cli.Context) error {
			if c.NArg() < 1 {
				return cli.Exit("at least one input file is required", 2) //nolint:gomnd
			}

			var opts = options{
				detection: face.Options{
					CascadeFile: c.String(shared.CascadeFileKey),
					ScaleFactor: c.Float64(shared.ScaleFactorKey),
					ShiftFactor: c.Float64(shared.ShiftFactorKey),
					MinSize:     c.Float64(shared.MinSizeKey),
					MinQuality:  c.Float64(shared.MinQualityKey),
					IoU:         c.Float64(shared.IoUThresholdKey),
				},
				horizontalPadding: c.Float64(shared.HorizontalPaddingKey),
				topScaleFactor:    c.Float64(shared.TopScaleFactorKey),
				outputSize:        c.Int(shared.OutputSizeKey),
				circularMask:      c.Bool(shared.CircularMaskKey),
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
			shared.CascadeFileKey,
			shared.ScaleFactorKey,
			shared.ShiftFactorKey,
			shared.MinSizeKey,
			shared.MinQualityKey,
			shared.IoUThresholdKey,
			shared.HorizontalPaddingKey,
			shared.TopScaleFactorKey,
			shared.OutputSizeKey,
			shared.CircularMaskKey,
			shared.OutputFolderKey,
			shared.FileTypeKey,
			shared.SuffixKey,
			shared.OverwriteKey,
			shared.InteractiveKey,
		),
	}
}

// Run current command. Files are processed sequentially; a failure on one file does not stop the
// remaining ones.
func (cmd *command) Run(ctx context.Context, inputs []string, opts options) error {
	var fileType = opts.fileType

	// the alpha channel survives in png only
	if opts.circularMask && !strings.EqualFold(strings.TrimPrefix(fileType, "."), "png") {
		cmd.log.Warn("Circular mask needs an alpha channel, forcing the png output format")

		fileType = ".png"
	}

	var construct = cmd.newDetector
	if construct == nil {
		construct = func(o face.Options, l logger.Logger) (faceDetector, error) {
			return face.NewDetector(o, l)
		}
	}

	detector, err := construct(opts.detection, cmd.log)
	if err != nil {
		return err
	}

	var bar *pterm.ProgressbarPrinter

	if len(inputs) > 1 {
		bar, _ = pterm.DefaultProgressbar.WithTotal(len(inputs)).WithTitle("Cropping").Start()

		defer func() { _, _ = bar.Stop() }()
	}

	var failed int

	for _, filePath := range inputs {
		if err = ctx.Err(); err != nil {
			return err
		}

		if procErr := cmd.processFile(detector, filePath, fileType, opts); errors.Is(procErr, output.ErrExists) {
			cmd.log.Warn("Skipping existing file", filePath)
		} else if procErr != nil {
			cmd.log.Error("Giving up on this one", filePath, procErr)

			failed++
		}

		if bar != nil {
			bar.Increment()
		}
	}

	if failed > 0 {
		return errors.Errorf("failed to process %d of %d file(s)", failed, len(inputs))
	}

	return nil
}

func (cmd *command) processFile(detector faceDetector, filePath, fileType string, opts options) error {
	img, err := imgproc.Open(filePath)
	if err != nil {
		return err
	}

	cmd.log.Info("Running face detection", filePath)

	var (
		width, height = img.Bounds().Dx(), img.Bounds().Dy()
		candidates    = detector.Detect(img)
	)

	switch {
	case len(candidates) == 0:
		cmd.log.Warn("No face candidate found, picking the largest centered square", filePath)

		candidates = append(candidates, geometry.SquareFromSize(width, height))
	case len(candidates) > 1:
		cmd.log.Warn("Multiple face candidates found, picking the largest", filePath)
	}

	// go on with the best face candidate
	var box = candidates[len(candidates)-1].
		PadFace(opts.horizontalPadding, opts.topScaleFactor).
		FitTo(width, height)

	cmd.log.Info("Target face bounding box", box.String())

	var cropped = imgproc.Resize(imgproc.Crop(img, box), opts.outputSize, opts.outputSize)

	if opts.circularMask {
		cropped = imgproc.CircularMask(cropped)
	}

	targetPath, err := output.PathFor(filePath, opts.outputFolder, fileType, opts.suffix)
	if err != nil {
		return err
	}

	return output.SaveImage(cropped, targetPath, opts.policy, cmd.log)
}
