// Package imgproc wraps the image loading and manipulation primitives shared by the tasks.
package imgproc

import (
	"image"
	"image/color"
	"os"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"

	// webp decoding support for image.Decode (used by imaging under the hood).
	_ "golang.org/x/image/webp"

	"github.com/pictor-cli/pictor/internal/geometry"
	"github.com/pictor-cli/pictor/internal/validate"
)

// Open loads an image from the given file, with the EXIF orientation applied. The file content is
// sniffed first, so that a mislabeled file fails with a clear error instead of a decoder one.
func Open(filePath string) (image.Image, error) {
	if err := validate.InputFile(filePath); err != nil {
		return nil, err
	}

	f, err := os.Open(filePath)
	if err != nil {
		return nil, errors.Wrap(err, filePath)
	}

	isImage, err := validate.IsImage(f)

	if closeErr := f.Close(); err == nil {
		err = closeErr
	}

	if err != nil {
		return nil, errors.Wrap(err, filePath)
	}

	if !isImage {
		return nil, errors.Errorf("%s does not contain image data", filePath)
	}

	img, err := imaging.Open(filePath, imaging.AutoOrientation(true))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load image data from %s", filePath)
	}

	return img, nil
}

// Resize resizes an image to the given size (in pixels) using the Lanczos filter. Passing 0 as one of the
// dimensions preserves the original aspect ratio.
func Resize(img image.Image, width, height int) *image.NRGBA {
	return imaging.Resize(img, width, height, imaging.Lanczos)
}

// Crop cuts the given rectangle out of the image.
func Crop(img image.Image, rect geometry.Rectangle) *image.NRGBA {
	return imaging.Crop(img, rect.Bounds())
}

// NewCanvas creates an empty (black) canvas of the given size.
func NewCanvas(width, height int) *image.NRGBA {
	return imaging.New(width, height, color.NRGBA{A: 255})
}

// Paste puts the image onto the canvas with its upper-left corner at the given point.
func Paste(canvas *image.NRGBA, img image.Image, at image.Point) *image.NRGBA {
	return imaging.Paste(canvas, img, at)
}

// CircularMask applies an elliptical alpha mask to the image - pixels outside the inscribed ellipse are
// made fully transparent.
func CircularMask(img image.Image) *image.NRGBA {
	var (
		masked = imaging.Clone(img)
		bounds = masked.Bounds()

		rx = float64(bounds.Dx()) / 2
		ry = float64(bounds.Dy()) / 2
	)

	for y := 0; y < bounds.Dy(); y++ {
		for x := 0; x < bounds.Dx(); x++ {
			var dx, dy = (float64(x) + 0.5 - rx) / rx, (float64(y) + 0.5 - ry) / ry

			if dx*dx+dy*dy > 1 {
				masked.SetNRGBA(x, y, color.NRGBA{})
			}
		}
	}

	return masked
}
