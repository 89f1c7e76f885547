package decal

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"
)

// Resize scales img, alpha included, to exactly width x height with a
// Catmull-Rom kernel. The result is premultiplied and starts at (0, 0).
func Resize(img image.Image, width, height int) (*image.RGBA64, error) {
	if (width <= 0) || (height <= 0) {
		return nil, fmt.Errorf("%w: target size %dx%d", ErrResample, width, height)
	}
	if img == nil || img.Bounds().Empty() {
		return nil, fmt.Errorf("%w: empty source", ErrInvalidImage)
	}

	srcBounds := img.Bounds()
	dest := image.NewRGBA64(image.Rect(0, 0, width, height))
	if (srcBounds.Dx() == width) && (srcBounds.Dy() == height) {
		draw.Draw(dest, dest.Bounds(), img, srcBounds.Min, draw.Src)
		return dest, nil
	}

	draw.CatmullRom.Scale(dest, dest.Bounds(), img, srcBounds, draw.Src, nil)
	return dest, nil
}
