package overlay

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/alecthomas/kong"
)

type PreviewCmd struct {
	EmblemParams
	Out       string `help:"PNG file the decal is written to. Any other extension is replaced by .png" default:"decal.png"`
	Overwrite bool   `help:"Replace an existing output file" default:"false"`
}

func (c *PreviewCmd) Validate(kctx *kong.Context) error {
	if err := c.EmblemParams.check(); err != nil {
		return err
	}

	out, err := filepath.Abs(c.Out)
	if err != nil {
		return fmt.Errorf("invalid output path %q: %w", c.Out, err)
	}
	c.Out = out

	return nil
}

func (c *PreviewCmd) Run() error {
	logger := slog.Default().With("out", c.Out)
	faded, err := c.Decal(logger)
	if err != nil {
		return err
	}

	dest, err := save(faded, "png", "png", filepath.Dir(c.Out), filepath.Base(c.Out), c.Overwrite)
	if err != nil {
		return err
	}
	logger.Info("preview written", "dest", dest)
	return nil
}
