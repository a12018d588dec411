// Package geometry contains the rectangle primitives used by the image-cropping tasks.
package geometry

import (
	"fmt"
	"image"
	"math"
	"sort"
)

// Rectangle is a small container representing a rectangle in pixel coordinates (as, e.g., returned by the
// face-detection step). X0 and Y0 point to the upper-left corner.
type Rectangle struct {
	X0, Y0        int
	Width, Height int
}

// NewSquare creates a square rectangle with the given upper-left corner and side.
func NewSquare(x0, y0, side int) Rectangle {
	return Rectangle{X0: x0, Y0: y0, Width: side, Height: side}
}

// SquareFromSize returns the largest centered square fitting into a width x height canvas.
func SquareFromSize(width, height int) Rectangle {
	var side = width

	if height < width {
		side = height
	}

	return Rectangle{X0: (width - side) / 2, Y0: (height - side) / 2, Width: side, Height: side}
}

// IsSquare returns true if the rectangle is square.
func (r Rectangle) IsSquare() bool { return r.Width == r.Height }

// Area returns the area of the rectangle.
func (r Rectangle) Area() int { return r.Width * r.Height }

// Center returns the coordinates of the center of the rectangle.
func (r Rectangle) Center() (float64, float64) {
	return float64(r.X0) + float64(r.Width)/2, float64(r.Y0) + float64(r.Height)/2
}

// Bounds returns the rectangle as a stdlib image.Rectangle (xmin, ymin, xmax, ymax).
func (r Rectangle) Bounds() image.Rectangle {
	return image.Rect(r.X0, r.Y0, r.X0+r.Width, r.Y0+r.Height)
}

// String returns a human-readable representation of the rectangle.
func (r Rectangle) String() string {
	return fmt.Sprintf("%dx%d at (%d, %d)", r.Width, r.Height, r.X0, r.Y0)
}

// RoundedGeometricMean returns the geometric mean of the input values, each one multiplied by the given
// scale factor beforehand, rounded to the nearest integer.
func RoundedGeometricMean(scale float64, values ...int) int {
	if len(values) == 0 {
		return 0
	}

	var product = 1.0

	for _, value := range values {
		product *= float64(value) * scale
	}

	return int(math.Round(math.Pow(product, 1/float64(len(values)))))
}

// EquivalentSquareSide returns the side of the square with the same area as the rectangle, rounded to the
// nearest integer (i.e., the geometric mean of the rectangle width and height).
func (r Rectangle) EquivalentSquareSide() int {
	return RoundedGeometricMean(1, r.Width, r.Height)
}

// Pad grows the rectangle by the given amounts (in pixels) on each side.
func (r Rectangle) Pad(top, right, bottom, left int) Rectangle {
	return Rectangle{
		X0:     r.X0 - left,
		Y0:     r.Y0 - top,
		Width:  r.Width + right + left,
		Height: r.Height + top + bottom,
	}
}

// PadFace pads a face-detection rectangle: a horizontal padding on either side given by the first argument
// (in units of the equivalent square side), and an asymmetric top-bottom padding governed by the second one.
// Detectors tend to crop the hair, so the top padding is generally slightly larger than the bottom one.
//
// The sum of the vertical paddings equals the sum of the horizontal ones, so a square input yields a
// square output.
func (r Rectangle) PadFace(horizontalFractionalPadding, topScaleFactor float64) Rectangle {
	var (
		right  = int(math.Round(horizontalFractionalPadding * float64(r.EquivalentSquareSide())))
		top    = int(math.Round(topScaleFactor * float64(right)))
		bottom = 2*right - top
	)

	return r.Pad(top, right, bottom, right)
}

// FitTo clamps the rectangle into a width x height canvas - the size is capped to the canvas size, and the
// corner is moved so that the whole rectangle lies within the canvas.
func (r Rectangle) FitTo(width, height int) Rectangle {
	var fitted = r

	if fitted.Width > width {
		fitted.Width = width
	}

	if fitted.Height > height {
		fitted.Height = height
	}

	fitted.X0 = clamp(fitted.X0, 0, width-fitted.Width)
	fitted.Y0 = clamp(fitted.Y0, 0, height-fitted.Height)

	return fitted
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}

	if v > hi {
		return hi
	}

	return v
}

// SortByArea sorts the rectangles by area, from the smallest to the largest (so the "best" candidate ends
// up at the tail).
func SortByArea(rects []Rectangle) {
	sort.SliceStable(rects, func(i, j int) bool { return rects[i].Area() < rects[j].Area() })
}
