package pdf_test

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pictor-cli/pictor/internal/pdf"
)

// writeSinglePagePDF builds a minimal but valid one-page US-Letter document, with the xref offsets
// computed on the fly.
func writeSinglePagePDF(t *testing.T) string {
	t.Helper()

	objects := []string{
		"1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n",
		"2 0 obj\n<< /Type /Pages /Kids [3 0 R] /Count 1 >>\nendobj\n",
		"3 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << >> /Contents 4 0 R >>\nendobj\n",
		"4 0 obj\n<< /Length 0 >>\nstream\n\nendstream\nendobj\n",
	}

	var (
		buf     bytes.Buffer
		offsets = make([]int, 0, len(objects))
	)

	buf.WriteString("%PDF-1.4\n")

	for _, obj := range objects {
		offsets = append(offsets, buf.Len())
		buf.WriteString(obj)
	}

	xrefStart := buf.Len()

	buf.WriteString(fmt.Sprintf("xref\n0 %d\n0000000000 65535 f \n", len(objects)+1))

	for _, offset := range offsets {
		buf.WriteString(fmt.Sprintf("%010d 00000 n \n", offset))
	}

	buf.WriteString(fmt.Sprintf("trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n",
		len(objects)+1, xrefStart))

	filePath := filepath.Join(t.TempDir(), "single.pdf")
	require.NoError(t, os.WriteFile(filePath, buf.Bytes(), 0o600))

	return filePath
}

func TestPageCount(t *testing.T) {
	count, err := pdf.PageCount(writeSinglePagePDF(t))

	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestPageSize(t *testing.T) {
	width, height, err := pdf.PageSize(writeSinglePagePDF(t), 0)

	require.NoError(t, err)
	assert.InDelta(t, 612.0, width, 0.001)
	assert.InDelta(t, 792.0, height, 0.001)
}

func TestPageSize_PageOutOfRange(t *testing.T) {
	filePath := writeSinglePagePDF(t)

	for _, pageNumber := range []int{-1, 1, 5} {
		_, _, err := pdf.PageSize(filePath, pageNumber)
		assert.ErrorContains(t, err, "out of range")
	}
}

func TestRasterize_PageOutOfRange(t *testing.T) {
	_, err := pdf.Rasterize(writeSinglePagePDF(t), 3, 1000)
	assert.ErrorContains(t, err, "out of range")
}

func TestPageCount_InputChecks(t *testing.T) {
	_, err := pdf.PageCount("nope.pdf")
	assert.ErrorContains(t, err, "could not find file")

	notAPdf := filepath.Join(t.TempDir(), "picture.png")
	require.NoError(t, os.WriteFile(notAPdf, []byte{1, 2, 3}, 0o600))

	_, err = pdf.PageCount(notAPdf)
	assert.ErrorContains(t, err, "unexpected file extension")

	junk := filepath.Join(t.TempDir(), "junk.pdf")
	require.NoError(t, os.WriteFile(junk, []byte("foo bar"), 0o600))

	_, err = pdf.PageCount(junk)
	assert.ErrorContains(t, err, "does not contain pdf data")
}

func TestPageSize_InputChecks(t *testing.T) {
	_, _, err := pdf.PageSize("nope.pdf", 0)
	assert.ErrorContains(t, err, "could not find file")
}

func TestRasterize_InputChecks(t *testing.T) {
	_, err := pdf.Rasterize("nope.pdf", 0, 1000)
	assert.ErrorContains(t, err, "could not find file")

	_, err = pdf.Rasterize("nope.pdf", 0, 0)
	assert.ErrorContains(t, err, "invalid target width")
}
