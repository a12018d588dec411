// Package qrgen generates QR-code images from opaque input data.
package qrgen

import (
	"image"
	"strings"

	"github.com/pkg/errors"
	qrcode "github.com/skip2/go-qrcode"
)

// ParseLevel parses an error-correction level name (case is ignored).
func ParseLevel(text string) (qrcode.RecoveryLevel, error) {
	switch strings.ToLower(text) {
	case "low", "l":
		return qrcode.Low, nil
	case "medium", "m", "": // make the zero value useful
		return qrcode.Medium, nil
	case "high", "q":
		return qrcode.High, nil
	case "highest", "h":
		return qrcode.Highest, nil
	}

	return qrcode.Medium, errors.Errorf("unrecognized error-correction level: %q", text)
}

// AllLevelStrings returns all the error-correction level names.
func AllLevelStrings() []string { return []string{"low", "medium", "high", "highest"} }

// Generate encodes the data into a size x size QR-code image. The quiet-zone border is omitted unless
// border is set.
func Generate(data string, size int, border bool, level qrcode.RecoveryLevel) (image.Image, error) {
	if size < 1 {
		return nil, errors.Errorf("invalid output size (%d)", size)
	}

	qr, err := qrcode.New(data, level)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode the QR code data")
	}

	qr.DisableBorder = !border

	return qr.Image(size), nil
}

const slugMaxLen = 48

// Slug derives a file-name-friendly stem from the encoded data, for the default output file name.
func Slug(data string) string {
	var (
		sb   strings.Builder
		dash bool
	)

	for _, r := range strings.ToLower(data) {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			sb.WriteRune(r)
			dash = false
		case !dash && sb.Len() > 0:
			sb.WriteRune('-')
			dash = true
		}

		if sb.Len() >= slugMaxLen {
			break
		}
	}

	if s := strings.Trim(sb.String(), "-"); s != "" {
		return s
	}

	return "qrcode"
}
