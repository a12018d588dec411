package rasterize

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/kami-zh/go-capturer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/pictor-cli/pictor/internal/logger"
)

func newTestApp() *cli.App {
	return &cli.App{
		Commands:       []*cli.Command{NewCommand(logger.NewNop())},
		ExitErrHandler: func(*cli.Context, error) {},
	}
}

func TestRun_MissingFile(t *testing.T) {
	cmd := command{log: logger.NewNop()}

	err := cmd.Run(context.Background(), []string{"nope.pdf"}, options{
		intermediateWidth: 5000,
		outputWidth:       1000,
		outputFolder:      t.TempDir(),
		fileType:          ".png",
	})

	assert.ErrorContains(t, err, "could not find file")
}

func TestRun_StopsOnFirstFailure(t *testing.T) {
	cmd := command{log: logger.NewNop()}

	var err error

	capturer.CaptureOutput(func() {
		err = cmd.Run(context.Background(), []string{"first.pdf", "second.pdf"}, options{
			intermediateWidth: 5000,
			outputWidth:       1000,
			outputFolder:      t.TempDir(),
			fileType:          ".png",
		})
	})

	assert.ErrorContains(t, err, "first.pdf")
}

func TestRun_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cmd := command{log: logger.NewNop()}

	err := cmd.Run(ctx, []string{"nope.pdf"}, options{intermediateWidth: 5000, outputWidth: 1000})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCommand_Dispatch(t *testing.T) {
	var err error

	capturer.CaptureOutput(func() {
		err = newTestApp().Run([]string{
			"app", "rasterize",
			"--output-folder", t.TempDir(),
			filepath.Join("testdata", "nope.pdf"),
		})
	})

	// the input path reaches the handler as-is
	assert.ErrorContains(t, err, filepath.Join("testdata", "nope.pdf"))
}

func TestCommand_NoArgs(t *testing.T) {
	var err error

	capturer.CaptureOutput(func() { err = newTestApp().Run([]string{"app", "rasterize"}) })

	var coder cli.ExitCoder
	require.ErrorAs(t, err, &coder)
	assert.Equal(t, 2, coder.ExitCode())
}
