// Package face wraps the pigo face-detection machinery.
//
// Detection needs a binary cascade file (the stock "facefinder" cascade shipped with pigo works fine);
// its location is taken from the --cascade-file flag or the PICTOR_CASCADE_FILE environment variable.
package face

import (
	"image"
	"os"

	pigo "github.com/esimov/pigo/core"
	"github.com/pkg/errors"

	"github.com/pictor-cli/pictor/internal/env"
	"github.com/pictor-cli/pictor/internal/geometry"
	"github.com/pictor-cli/pictor/internal/logger"
)

// detections smaller than this make no sense regardless of the image size
const absoluteMinSize = 20

// Options are the face-detection tuning knobs.
type Options struct {
	CascadeFile string  // path to the pigo cascade file
	ScaleFactor float64 // image pyramid scale step, e.g. 1.1
	ShiftFactor float64 // detection window shift, as a fraction of its size
	MinSize     float64 // minimum face size, as a fraction of the equivalent image side
	MinQuality  float64 // detections below this quality score are dropped
	IoU         float64 // intersection-over-union threshold for clustering overlapping detections
}

// DefaultCascadeFile returns the cascade file path from the environment (empty when unset).
func DefaultCascadeFile() string {
	path, _ := env.CascadeFile.Lookup()

	return path
}

// Detector runs the face detection on images.
type Detector struct {
	classifier *pigo.Pigo
	opts       Options
	log        logger.Logger
}

// NewDetector loads and unpacks the cascade file.
func NewDetector(opts Options, log logger.Logger) (*Detector, error) {
	if opts.CascadeFile == "" {
		return nil, errors.Errorf("no cascade file configured (use --cascade-file or $%s)", env.CascadeFile)
	}

	cascade, err := os.ReadFile(opts.CascadeFile)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read the cascade file %s", opts.CascadeFile)
	}

	classifier, err := pigo.NewPigo().Unpack(cascade)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to unpack the cascade file %s", opts.CascadeFile)
	}

	return &Detector{classifier: classifier, opts: opts, log: log}, nil
}

// Detect returns the face candidates found in the image as square rectangles, sorted by area from the
// smallest to the largest (so the best candidate ends up at the tail).
func (d *Detector) Detect(img image.Image) []geometry.Rectangle {
	var (
		bounds     = img.Bounds()
		cols, rows = bounds.Dx(), bounds.Dy()

		// the minimum face size is that of a square whose side is the geometric mean of the image
		// dimensions, scaled down by the MinSize option
		minSize = geometry.RoundedGeometricMean(d.opts.MinSize, cols, rows)
		maxSize = cols
	)

	if minSize < absoluteMinSize {
		minSize = absoluteMinSize
	}

	if rows < maxSize {
		maxSize = rows
	}

	d.log.Debug("Minimum face size", minSize, "px")

	var params = pigo.CascadeParams{
		MinSize:     minSize,
		MaxSize:     maxSize,
		ShiftFactor: d.opts.ShiftFactor,
		ScaleFactor: d.opts.ScaleFactor,
		ImageParams: pigo.ImageParams{
			Pixels: pigo.RgbToGrayscale(img),
			Rows:   rows,
			Cols:   cols,
			Dim:    cols,
		},
	}

	var detections = d.classifier.ClusterDetections(d.classifier.RunCascade(params, 0), d.opts.IoU)

	var candidates = make([]geometry.Rectangle, 0, len(detections))

	for _, det := range detections {
		if float64(det.Q) < d.opts.MinQuality {
			continue
		}

		candidates = append(candidates, geometry.NewSquare(det.Col-det.Scale/2, det.Row-det.Scale/2, det.Scale))
	}

	geometry.SortByArea(candidates)

	for i, candidate := range candidates {
		d.log.Debug("Face candidate", i+1, candidate.String())
	}

	return candidates
}
