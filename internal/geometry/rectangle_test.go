package geometry_test

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pictor-cli/pictor/internal/geometry"
)

func TestRectangle_Base(t *testing.T) {
	rect := geometry.NewSquare(10, 20, 100)

	assert.True(t, rect.IsSquare())
	assert.Equal(t, 10000, rect.Area())
	assert.Equal(t, image.Rect(10, 20, 110, 120), rect.Bounds())

	cx, cy := rect.Center()
	assert.InDelta(t, 60.0, cx, 0.001)
	assert.InDelta(t, 70.0, cy, 0.001)

	assert.False(t, geometry.Rectangle{Width: 10, Height: 20}.IsSquare())
	assert.Equal(t, "100x100 at (10, 20)", rect.String())
}

func TestSquareFromSize(t *testing.T) {
	assert.Equal(t, geometry.Rectangle{X0: 100, Y0: 0, Width: 200, Height: 200}, geometry.SquareFromSize(400, 200))
	assert.Equal(t, geometry.Rectangle{X0: 0, Y0: 100, Width: 200, Height: 200}, geometry.SquareFromSize(200, 400))
	assert.Equal(t, geometry.Rectangle{X0: 0, Y0: 0, Width: 200, Height: 200}, geometry.SquareFromSize(200, 200))
}

func TestRoundedGeometricMean(t *testing.T) {
	assert.Equal(t, 100, geometry.RoundedGeometricMean(1, 100, 100))
	assert.Equal(t, 141, geometry.RoundedGeometricMean(1, 100, 200))
	assert.Equal(t, 50, geometry.RoundedGeometricMean(0.5, 100, 100))
	assert.Equal(t, 0, geometry.RoundedGeometricMean(1))
}

func TestRectangle_Pad(t *testing.T) {
	rect := geometry.NewSquare(100, 100, 200)

	assert.Equal(t, geometry.Rectangle{X0: 0, Y0: 0, Width: 400, Height: 400}, rect.Pad(100, 100, 100, 100))
	assert.Equal(t, geometry.Rectangle{X0: -100, Y0: 0, Width: 600, Height: 400}, rect.Pad(100, 200, 100, 200))
}

func TestRectangle_PadFace(t *testing.T) {
	rect := geometry.NewSquare(100, 100, 100)

	// horizontal padding 0.4 * 100 = 40 per side, top = 1.25 * 40 = 50, bottom = 80 - 50 = 30
	padded := rect.PadFace(0.4, 1.25)

	assert.Equal(t, geometry.Rectangle{X0: 60, Y0: 50, Width: 180, Height: 180}, padded)
	assert.True(t, padded.IsSquare()) // square in, square out
}

func TestRectangle_FitTo(t *testing.T) {
	rect := geometry.Rectangle{X0: -10, Y0: -10, Width: 100, Height: 100}

	assert.Equal(t, geometry.Rectangle{X0: 0, Y0: 0, Width: 100, Height: 100}, rect.FitTo(400, 200))
	assert.Equal(t, geometry.Rectangle{X0: 0, Y0: 0, Width: 100, Height: 100}, rect.FitTo(100, 100))
	assert.Equal(t, geometry.Rectangle{X0: 0, Y0: 0, Width: 80, Height: 100}, rect.FitTo(80, 100))

	// rectangle sticking out on the right/bottom is moved back inside
	rect = geometry.Rectangle{X0: 350, Y0: 150, Width: 100, Height: 100}
	assert.Equal(t, geometry.Rectangle{X0: 300, Y0: 100, Width: 100, Height: 100}, rect.FitTo(400, 200))
}

func TestSortByArea(t *testing.T) {
	rects := []geometry.Rectangle{
		geometry.NewSquare(0, 0, 50),
		geometry.NewSquare(0, 0, 10),
		geometry.NewSquare(0, 0, 30),
	}

	geometry.SortByArea(rects)

	assert.Equal(t, 10, rects[0].Width)
	assert.Equal(t, 30, rects[1].Width)
	assert.Equal(t, 50, rects[2].Width)
}
