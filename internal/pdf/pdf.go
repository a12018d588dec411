// Package pdf contains tools for operating on pdf documents.
package pdf

import (
	"image"
	"os"

	"github.com/gen2brain/go-fitz"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pkg/errors"

	"github.com/pictor-cli/pictor/internal/validate"
)

// page sizes are expressed in points, 1/72 of an inch
const pointsPerInch = 72.

// checkInput verifies that the path points to an actual pdf document (extension and content).
func checkInput(filePath string) error {
	if err := validate.InputFile(filePath, ".pdf"); err != nil {
		return err
	}

	f, err := os.Open(filePath)
	if err != nil {
		return errors.Wrap(err, filePath)
	}

	isPDF, err := validate.IsPDF(f)

	if closeErr := f.Close(); err == nil {
		err = closeErr
	}

	if err != nil {
		return errors.Wrap(err, filePath)
	}

	if !isPDF {
		return errors.Errorf("%s does not contain pdf data", filePath)
	}

	return nil
}

// PageCount returns the number of pages in the given pdf document.
func PageCount(filePath string) (int, error) {
	if err := checkInput(filePath); err != nil {
		return 0, err
	}

	count, err := api.PageCountFile(filePath)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to read %s", filePath)
	}

	return count, nil
}

// PageSize returns the size (in points) of the given page, zero-indexed.
func PageSize(filePath string, pageNumber int) (width, height float64, err error) {
	if err = checkInput(filePath); err != nil {
		return 0, 0, err
	}

	dims, err := api.PageDimsFile(filePath)
	if err != nil {
		return 0, 0, errors.Wrapf(err, "failed to read %s", filePath)
	}

	if pageNumber < 0 || pageNumber >= len(dims) {
		return 0, 0, errors.Errorf("page number %d out of range (%s has %d page(s))",
			pageNumber, filePath, len(dims))
	}

	return dims[pageNumber].Width, dims[pageNumber].Height, nil
}

// Rasterize renders a single page (zero-indexed) of the given pdf document into an image whose width is
// targetWidth pixels.
func Rasterize(filePath string, pageNumber, targetWidth int) (image.Image, error) {
	if targetWidth < 1 {
		return nil, errors.Errorf("invalid target width (%d)", targetWidth)
	}

	width, _, err := PageSize(filePath, pageNumber)
	if err != nil {
		return nil, err
	}

	doc, err := fitz.New(filePath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %s", filePath)
	}

	defer doc.Close()

	var dpi = pointsPerInch * float64(targetWidth) / width

	img, err := doc.ImageDPI(pageNumber, dpi)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to render page %d of %s", pageNumber, filePath)
	}

	return img, nil
}
