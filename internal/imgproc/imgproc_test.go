package imgproc_test

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pictor-cli/pictor/internal/geometry"
	"github.com/pictor-cli/pictor/internal/imgproc"
)

func saveTestImage(t *testing.T, width, height int) string {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, width, height))

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x % 256), G: uint8(y % 256), B: 100, A: 255})
		}
	}

	filePath := filepath.Join(t.TempDir(), "test.png")

	f, err := os.Create(filePath)
	require.NoError(t, err)

	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())

	return filePath
}

func TestOpen(t *testing.T) {
	filePath := saveTestImage(t, 20, 10)

	img, err := imgproc.Open(filePath)
	require.NoError(t, err)

	assert.Equal(t, 20, img.Bounds().Dx())
	assert.Equal(t, 10, img.Bounds().Dy())
}

func TestOpen_Errors(t *testing.T) {
	_, err := imgproc.Open("nope.png")
	assert.ErrorContains(t, err, "could not find file")

	notAnImage := filepath.Join(t.TempDir(), "junk.png")
	require.NoError(t, os.WriteFile(notAnImage, []byte("foo bar"), 0o600))

	_, err = imgproc.Open(notAnImage)
	assert.ErrorContains(t, err, "does not contain image data")
}

func TestResize(t *testing.T) {
	filePath := saveTestImage(t, 200, 100)

	img, err := imgproc.Open(filePath)
	require.NoError(t, err)

	resized := imgproc.Resize(img, 50, 50)
	assert.Equal(t, 50, resized.Bounds().Dx())
	assert.Equal(t, 50, resized.Bounds().Dy())

	// zero height preserves the aspect ratio
	resized = imgproc.Resize(img, 100, 0)
	assert.Equal(t, 100, resized.Bounds().Dx())
	assert.Equal(t, 50, resized.Bounds().Dy())
}

func TestCrop(t *testing.T) {
	filePath := saveTestImage(t, 200, 100)

	img, err := imgproc.Open(filePath)
	require.NoError(t, err)

	cropped := imgproc.Crop(img, geometry.NewSquare(10, 10, 50))
	assert.Equal(t, 50, cropped.Bounds().Dx())
	assert.Equal(t, 50, cropped.Bounds().Dy())
}

func TestCircularMask(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 100, 100))

	for y := 0; y < 100; y++ {
		for x := 0; x < 100; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 255, A: 255})
		}
	}

	masked := imgproc.CircularMask(img)

	// corners are transparent, center is not
	assert.Equal(t, uint8(0), masked.NRGBAAt(0, 0).A)
	assert.Equal(t, uint8(0), masked.NRGBAAt(99, 0).A)
	assert.Equal(t, uint8(0), masked.NRGBAAt(0, 99).A)
	assert.Equal(t, uint8(0), masked.NRGBAAt(99, 99).A)
	assert.Equal(t, uint8(255), masked.NRGBAAt(50, 50).A)
}
