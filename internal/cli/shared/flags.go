// Package shared holds the static option registry - every flag any command may attach, keyed by its
// name. Commands pick the keys they need at construction time; asking for an unknown key is a
// programming error and panics while the command table is being built.
package shared

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/pictor-cli/pictor/internal/face"
	"github.com/pictor-cli/pictor/internal/output"
	"github.com/pictor-cli/pictor/internal/qrgen"
)

// Option keys, referenced by the command packages.
const (
	OutputFileKey   = "output-file"
	OutputFolderKey = "output-folder"
	FileTypeKey     = "file-type"
	SuffixKey       = "suffix"
	OverwriteKey    = "overwrite"
	InteractiveKey  = "interactive"

	OutputSizeKey        = "output-size"
	CircularMaskKey      = "circular-mask"
	HorizontalPaddingKey = "horizontal-padding"
	TopScaleFactorKey    = "top-scale-factor"

	BorderKey          = "border"
	ErrorCorrectionKey = "error-correction"

	PageNumberKey        = "page-number"
	IntermediateWidthKey = "intermediate-width"
	OutputWidthKey       = "output-width"

	CascadeFileKey  = "cascade-file"
	ScaleFactorKey  = "scale-factor"
	ShiftFactorKey  = "shift-factor"
	MinSizeKey      = "min-size"
	MinQualityKey   = "min-quality"
	IoUThresholdKey = "iou-threshold"

	TileWidthKey   = "tile-width"
	TileHeightKey  = "tile-height"
	TilePaddingKey = "tile-padding"
	AspectRatioKey = "aspect-ratio"
)

// Flag group names (help-text organization only, no behavioral effect).
const (
	groupOutput        = "Output"
	groupAppearance    = "Appearance"
	groupQRCode        = "QR code"
	groupRastering     = "Rastering"
	groupFaceDetection = "Face detection"
	groupTiling        = "Tiling"
)

// The registry maps an option key to a constructor, so that every command gets its own flag instance.
var registry = map[string]func() cli.Flag{ //nolint:gochecknoglobals
	OutputFileKey: func() cli.Flag {
		return &cli.StringFlag{
			Name:     OutputFileKey,
			Aliases:  []string{"o"},
			Usage:    "path to the output file (derived from the input when empty)",
			Category: groupOutput,
		}
	},
	OutputFolderKey: func() cli.Flag {
		return &cli.StringFlag{
			Name:     OutputFolderKey,
			Usage:    "path to the folder for the output files",
			Value:    output.DefaultFolder(),
			Category: groupOutput,
		}
	},
	FileTypeKey: func() cli.Flag {
		return &cli.StringFlag{
			Name:     FileTypeKey,
			Usage:    "file extension (and thus format) for the output files",
			Value:    ".png",
			Category: groupOutput,
		}
	},
	SuffixKey: func() cli.Flag {
		return &cli.StringFlag{
			Name:     SuffixKey,
			Usage:    "optional suffix for the output file names",
			Category: groupOutput,
		}
	},
	OverwriteKey: func() cli.Flag {
		return &cli.BoolFlag{
			Name:     OverwriteKey,
			Usage:    "overwrite existing output files without asking",
			Category: groupOutput,
		}
	},
	InteractiveKey: func() cli.Flag {
		return &cli.BoolFlag{
			Name:     InteractiveKey,
			Usage:    "ask for a confirmation before overwriting existing output files",
			Category: groupOutput,
		}
	},

	OutputSizeKey: func() cli.Flag {
		return &cli.IntFlag{
			Name:     OutputSizeKey,
			Usage:    "size of the output (square) image in pixels",
			Value:    100, //nolint:gomnd
			Category: groupAppearance,
		}
	},
	CircularMaskKey: func() cli.Flag {
		return &cli.BoolFlag{
			Name:     CircularMaskKey,
			Usage:    "apply a circular alpha mask to the output image",
			Category: groupAppearance,
		}
	},
	HorizontalPaddingKey: func() cli.Flag {
		return &cli.Float64Flag{
			Name: HorizontalPaddingKey,
			Usage: "fractional padding in the horizontal direction for the best rectangle identified " +
				"by the face-detection step",
			Value:    0.4, //nolint:gomnd
			Category: groupAppearance,
		}
	},
	TopScaleFactorKey: func() cli.Flag {
		return &cli.Float64Flag{
			Name: TopScaleFactorKey,
			Usage: "scale factor for the top padding, relative to the horizontal one (the bottom " +
				"padding is adjusted to keep the final image square)",
			Value:    1.25, //nolint:gomnd
			Category: groupAppearance,
		}
	},

	BorderKey: func() cli.Flag {
		return &cli.BoolFlag{
			Name:     BorderKey,
			Usage:    "keep the quiet-zone border around the QR code",
			Category: groupQRCode,
		}
	},
	ErrorCorrectionKey: func() cli.Flag {
		return &cli.StringFlag{
			Name:     ErrorCorrectionKey,
			Usage:    "error-correction level (" + strings.Join(qrgen.AllLevelStrings(), "|") + ")",
			Value:    "medium",
			Category: groupQRCode,
		}
	},

	PageNumberKey: func() cli.Flag {
		return &cli.IntFlag{
			Name:     PageNumberKey,
			Usage:    "the page to be rastered, zero-indexed",
			Category: groupRastering,
		}
	},
	IntermediateWidthKey: func() cli.Flag {
		return &cli.IntFlag{
			Name:     IntermediateWidthKey,
			Usage:    "width (in pixels) the page is rendered at, before the final resize",
			Value:    5000, //nolint:gomnd
			Category: groupRastering,
		}
	},
	OutputWidthKey: func() cli.Flag {
		return &cli.IntFlag{
			Name:     OutputWidthKey,
			Usage:    "width (in pixels) of the output image",
			Value:    1000, //nolint:gomnd
			Category: groupRastering,
		}
	},

	CascadeFileKey: func() cli.Flag {
		return &cli.StringFlag{
			Name:     CascadeFileKey,
			Usage:    "path to the pigo face-detection cascade file",
			Value:    face.DefaultCascadeFile(),
			Category: groupFaceDetection,
		}
	},
	ScaleFactorKey: func() cli.Flag {
		return &cli.Float64Flag{
			Name:     ScaleFactorKey,
			Usage:    "how much the detection window grows at each image pyramid step",
			Value:    1.1, //nolint:gomnd
			Category: groupFaceDetection,
		}
	},
	ShiftFactorKey: func() cli.Flag {
		return &cli.Float64Flag{
			Name:     ShiftFactorKey,
			Usage:    "how much the detection window shifts, as a fraction of its size",
			Value:    0.1, //nolint:gomnd
			Category: groupFaceDetection,
		}
	},
	MinSizeKey: func() cli.Flag {
		return &cli.Float64Flag{
			Name:     MinSizeKey,
			Usage:    "minimum face size as a fraction of the effective size of the original image",
			Value:    0.175, //nolint:gomnd
			Category: groupFaceDetection,
		}
	},
	MinQualityKey: func() cli.Flag {
		return &cli.Float64Flag{
			Name:     MinQualityKey,
			Usage:    "detections with a quality score below this value are dropped",
			Value:    5, //nolint:gomnd
			Category: groupFaceDetection,
		}
	},
	IoUThresholdKey: func() cli.Flag {
		return &cli.Float64Flag{
			Name:     IoUThresholdKey,
			Usage:    "intersection-over-union threshold for clustering overlapping detections",
			Value:    0.2, //nolint:gomnd
			Category: groupFaceDetection,
		}
	},

	TileWidthKey: func() cli.Flag {
		return &cli.IntFlag{
			Name:     TileWidthKey,
			Usage:    "width of a single tile in pixels",
			Value:    100, //nolint:gomnd
			Category: groupTiling,
		}
	},
	TileHeightKey: func() cli.Flag {
		return &cli.IntFlag{
			Name:     TileHeightKey,
			Usage:    "height of a single tile in pixels (0 means square tiles)",
			Category: groupTiling,
		}
	},
	TilePaddingKey: func() cli.Flag {
		return &cli.IntFlag{
			Name:     TilePaddingKey,
			Usage:    "padding between the tiles (and along the borders) in pixels",
			Category: groupTiling,
		}
	},
	AspectRatioKey: func() cli.Flag {
		return &cli.Float64Flag{
			Name:     AspectRatioKey,
			Usage:    "target aspect ratio (width over height) for the composite image",
			Value:    16. / 9., //nolint:gomnd
			Category: groupTiling,
		}
	},
}

// Flag returns a fresh flag instance for the given option key, panicking when the key is absent (a
// missing key means a typo in a command definition, there is no point in trying to recover).
func Flag(key string) cli.Flag {
	ctor, ok := registry[key]
	if !ok {
		panic(fmt.Sprintf("unknown option key %q", key))
	}

	return ctor()
}

// Flags returns fresh flag instances for the given option keys, in order.
func Flags(keys ...string) []cli.Flag {
	var flags = make([]cli.Flag, len(keys))

	for i, key := range keys {
		flags[i] = Flag(key)
	}

	return flags
}

// OnUsageError converts flag-parsing errors into usage errors with exit code 2.
func OnUsageError(_ *cli.Context, err error, _ bool) error {
	return cli.Exit(err.Error(), 2) //nolint:gomnd
}
