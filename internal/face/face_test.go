package face_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pictor-cli/pictor/internal/env"
	"github.com/pictor-cli/pictor/internal/face"
	"github.com/pictor-cli/pictor/internal/logger"
)

func TestDefaultCascadeFile(t *testing.T) {
	require.NoError(t, os.Unsetenv(env.CascadeFile.String()))
	assert.Empty(t, face.DefaultCascadeFile())

	t.Setenv(env.CascadeFile.String(), "/usr/share/pigo/facefinder")
	assert.Equal(t, "/usr/share/pigo/facefinder", face.DefaultCascadeFile())
}

func TestNewDetector_Errors(t *testing.T) {
	log := logger.NewNop()

	_, err := face.NewDetector(face.Options{}, log)
	assert.ErrorContains(t, err, "no cascade file configured")

	_, err = face.NewDetector(face.Options{CascadeFile: "nope"}, log)
	assert.ErrorContains(t, err, "failed to read the cascade file")
}
