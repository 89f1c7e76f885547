package decal

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"
)

// Crop copies the square of side src height that starts offset pixels right
// of the left edge of src.
func Crop(src image.Image, offset int) (*image.NRGBA, error) {
	if src == nil || src.Bounds().Empty() {
		return nil, fmt.Errorf("%w: empty emblem", ErrInvalidImage)
	}
	if offset < 0 {
		return nil, fmt.Errorf("%w: negative crop offset %d", ErrInvalidParameter, offset)
	}

	b := src.Bounds()
	side := b.Dy()
	r := image.Rect(b.Min.X+offset, b.Min.Y, b.Min.X+offset+side, b.Max.Y)
	if !r.In(b) {
		return nil, fmt.Errorf("%w: %dx%d square at offset %d does not fit in %dx%d emblem",
			ErrInvalidImage, side, side, offset, b.Dx(), b.Dy())
	}

	out := image.NewNRGBA(image.Rect(0, 0, side, side))
	draw.Draw(out, out.Bounds(), src, r.Min, draw.Src)
	return out, nil
}
