package overlay

import (
	"fmt"
	"image"
	"log/slog"
	"os"
	"path/filepath"

	"picdecal/decal"
	"picdecal/emblem"
)

// EmblemParams select the emblem and how it is faded.
type EmblemParams struct {
	Emblem      string  `help:"Emblem picture the decal is cut from. The built-in flag is drawn when empty" group:"emblem"`
	FlagHeight  int     `help:"Height of the built-in flag" default:"200" group:"emblem"`
	Offset      int     `help:"Horizontal offset of the square cut from the emblem. The square side is the emblem height" default:"0" group:"emblem"`
	Strength    float64 `help:"Fade strength, higher values fade slower" default:"4.5" group:"fade"`
	MinStrength float64 `help:"Lowest accepted strength" default:"2.0" group:"fade"`
	MaxStrength float64 `help:"Highest accepted strength" default:"8.0" group:"fade"`
	Anchor      string  `help:"Point the fade starts from" enum:"corner,center" default:"corner" group:"fade"`
}

func (p *EmblemParams) check() error {
	switch {
	case !(p.MinStrength > 0):
		return fmt.Errorf("%w: lowest strength must be positive, got %v", decal.ErrInvalidParameter, p.MinStrength)
	case p.MaxStrength < p.MinStrength:
		return fmt.Errorf("%w: empty strength range [%v, %v]", decal.ErrInvalidParameter, p.MinStrength, p.MaxStrength)
	case !(p.Strength >= p.MinStrength && p.Strength <= p.MaxStrength):
		return fmt.Errorf("%w: strength %v outside [%v, %v]", decal.ErrInvalidParameter, p.Strength, p.MinStrength, p.MaxStrength)
	case p.Offset < 0:
		return fmt.Errorf("%w: negative emblem offset %d", decal.ErrInvalidParameter, p.Offset)
	}

	if _, err := decal.ParseAnchor(p.Anchor); err != nil {
		return err
	}

	if p.Emblem == "" {
		if p.FlagHeight < emblem.MinFlagHeight {
			return fmt.Errorf("%w: flag height %d below %d", decal.ErrInvalidParameter, p.FlagHeight, emblem.MinFlagHeight)
		}
		return nil
	}

	path, err := filepath.Abs(p.Emblem)
	var info os.FileInfo
	if err == nil {
		if info, err = os.Stat(path); err == nil && !info.Mode().IsRegular() {
			err = fmt.Errorf("not a regular file")
		}
	}
	if err != nil {
		return fmt.Errorf("invalid emblem path %q: %w", p.Emblem, err)
	}
	p.Emblem = path

	return nil
}

// Decal builds the faded square the commands stamp.
func (p *EmblemParams) Decal(logger *slog.Logger) (*image.NRGBA, error) {
	var src image.Image
	var err error
	if p.Emblem == "" {
		logger.Info("drawing built-in flag", "height", p.FlagHeight)
		src, err = emblem.Flag(p.FlagHeight)
	} else {
		logger.Info("loading emblem", "file", p.Emblem)
		src, _, err = emblem.Load(p.Emblem)
	}
	if err != nil {
		return nil, err
	}

	region, err := decal.Crop(src, p.Offset)
	if err != nil {
		return nil, fmt.Errorf("could not crop emblem: %w", err)
	}

	anchor, err := decal.ParseAnchor(p.Anchor)
	if err != nil {
		return nil, err
	}

	faded, err := decal.ApplyRadialFadeAt(region, p.Strength, anchor)
	if err != nil {
		return nil, fmt.Errorf("could not fade emblem: %w", err)
	}

	logger.Info("decal ready", "side", faded.Bounds().Dx(), "offset", p.Offset,
		"strength", p.Strength, "anchor", anchor)
	return faded, nil
}
