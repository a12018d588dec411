// Package validate contains basic checks for the task input files.
package validate

import (
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	pkgerrors "github.com/pkg/errors"
)

// InputFile runs basic checks on a generic input file - it must exist, be a regular file and (when any
// extensions are passed) carry one of the allowed extensions (leading dot included, case-insensitive).
func InputFile(filePath string, extensions ...string) error {
	stat, err := os.Stat(filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return pkgerrors.Errorf("could not find file %s", filePath)
		}

		return pkgerrors.Wrap(err, filePath)
	}

	if !stat.Mode().IsRegular() {
		return pkgerrors.Errorf("%s is not a regular file", filePath)
	}

	if len(extensions) == 0 {
		return nil
	}

	var suffix = strings.ToLower(filepath.Ext(filePath))

	for _, ext := range extensions {
		if suffix == strings.ToLower(ext) {
			return nil
		}
	}

	return pkgerrors.Errorf("unexpected file extension %s (%s)", filepath.Ext(filePath), filePath)
}

// IsImage checks for passed content is image or not.
// Do not forget to reset the source (offset will be changed after this function calling).
func IsImage(src io.Reader) (bool, error) {
	buf := make([]byte, 32) //nolint:gomnd // 32 bytes are enough for "first bytes" checking

	if _, err := io.ReadFull(src, buf); err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return false, err
	}

	if seeker, ok := src.(io.Seeker); ok {
		if _, err := seeker.Seek(0, io.SeekStart); err != nil {
			return false, err
		}
	}

	return strings.HasPrefix(http.DetectContentType(buf), "image/"), nil
}

// IsPDF checks for passed content is a pdf document or not.
// Do not forget to reset the source (offset will be changed after this function calling).
func IsPDF(src io.Reader) (bool, error) {
	buf := make([]byte, 32) //nolint:gomnd

	if _, err := io.ReadFull(src, buf); err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return false, err
	}

	if seeker, ok := src.(io.Seeker); ok {
		if _, err := seeker.Seek(0, io.SeekStart); err != nil {
			return false, err
		}
	}

	return http.DetectContentType(buf) == "application/pdf", nil
}
