// Package output is responsible for the placement of the generated files - derived file names, the base
// output folder, and the overwrite/interactive policy. The policy lives here (next to the task handlers)
// and not in the CLI dispatch layer on purpose.
package output

import (
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/pterm/pterm"

	"github.com/pictor-cli/pictor/internal/env"
	"github.com/pictor-cli/pictor/internal/logger"
)

// ErrExists is returned (wrapped) when the target file exists and the policy forbids overwriting it.
var ErrExists = errors.New("output file already exists")

// Policy controls what happens when the target file already exists: with Overwrite set the file is
// silently replaced, with Interactive set the user is asked for a confirmation, otherwise the write
// fails with ErrExists.
type Policy struct {
	Overwrite   bool
	Interactive bool
}

// DefaultFolder returns the base folder for the generated files (the PICTOR_OUTPUT_DIR environment
// variable, falling back to ~/pictor). The folder is created on the first write, not here.
func DefaultFolder() string {
	if dir, ok := env.OutputDir.Lookup(); ok && dir != "" {
		return dir
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "pictor" // relative to the working directory as a last resort
	}

	return filepath.Join(home, "pictor")
}

// PathFor derives the output path for batch processing - the stem of the input file, plus the optional
// suffix, with the extension replaced by fileType, placed into folder. The derived path must differ from
// the input one.
func PathFor(inputPath, folder, fileType, suffix string) (string, error) {
	var stem = strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))

	if suffix != "" {
		stem += "_" + suffix
	}

	if !strings.HasPrefix(fileType, ".") {
		fileType = "." + fileType
	}

	var outputPath = filepath.Join(folder, stem+fileType)

	inputAbs, err := filepath.Abs(inputPath)
	if err != nil {
		return "", err
	}

	outputAbs, err := filepath.Abs(outputPath)
	if err != nil {
		return "", err
	}

	if inputAbs == outputAbs {
		return "", errors.Errorf("output path %s would overwrite the input file", outputPath)
	}

	return outputPath, nil
}

// Allowed reports whether the target path may be written, applying the overwrite/interactive policy.
func Allowed(path string, p Policy) (bool, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return true, nil
	} else if err != nil {
		return false, err
	}

	if p.Overwrite {
		return true, nil
	}

	if p.Interactive {
		ok, err := pterm.DefaultInteractiveConfirm.
			WithDefaultValue(false).
			Show("File " + path + " already exists, overwrite it?")
		if err != nil {
			return false, err
		}

		return ok, nil
	}

	return false, errors.Wrap(ErrExists, path)
}

// SaveImage writes the image to the given path (the format is picked based on the file extension),
// creating the parent folder when needed and honoring the overwrite/interactive policy.
func SaveImage(img image.Image, path string, p Policy, log logger.Logger) error {
	if ok, err := Allowed(path, p); err != nil {
		return err
	} else if !ok {
		log.Warn("Skipping existing file", path)

		return nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(err, "failed to create the output folder")
	}

	if err := imaging.Save(img, path); err != nil {
		return errors.Wrapf(err, "failed to save %s", path)
	}

	if stat, err := os.Stat(path); err == nil {
		log.Info("Saved "+path, humanize.IBytes(uint64(stat.Size())))
	} else {
		log.Info("Saved " + path)
	}

	return nil
}
