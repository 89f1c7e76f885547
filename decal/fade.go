package decal

import (
	"fmt"
	"image"
	"image/color"
	"math"
)

// Anchor selects the pixel the fade distance is measured from.
type Anchor int

const (
	// AnchorCorner measures from the top-left pixel of the region.
	AnchorCorner Anchor = iota
	// AnchorCenter measures from the centre pixel of the region.
	AnchorCenter
)

// ParseAnchor maps "corner" (or "") and "center" to an Anchor.
func ParseAnchor(s string) (Anchor, error) {
	switch s {
	case "", "corner":
		return AnchorCorner, nil
	case "center":
		return AnchorCenter, nil
	}
	return AnchorCorner, fmt.Errorf("%w: unknown anchor %q", ErrInvalidParameter, s)
}

func (a Anchor) String() string {
	if a == AnchorCenter {
		return "center"
	}
	return "corner"
}

func (a Anchor) origin(r image.Rectangle) image.Point {
	if a == AnchorCenter {
		return image.Pt(r.Min.X+r.Dx()/2, r.Min.Y+r.Dy()/2)
	}
	return r.Min
}

// FadeAlpha returns 255 - floor(distance/strength), clamped at 0.
func FadeAlpha(distance int, strength float64) uint8 {
	a := 255 - math.Floor(float64(distance)/strength)
	if a <= 0 {
		return 0
	}
	return uint8(a)
}

// Distance is the integer part of the euclidean distance of (dx, dy).
func Distance(dx, dy int) int {
	return int(math.Sqrt(float64(dx*dx + dy*dy)))
}

func checkStrength(strength float64) error {
	// NaN fails every comparison
	if !(strength > 0) {
		return fmt.Errorf("%w: strength must be positive, got %v", ErrInvalidParameter, strength)
	}
	return nil
}

// Mask computes the fade opacity of every pixel of r.
func Mask(r image.Rectangle, strength float64, anchor Anchor) (*image.Alpha, error) {
	if err := checkStrength(strength); err != nil {
		return nil, err
	}
	if r.Empty() {
		return nil, fmt.Errorf("%w: empty region %v", ErrInvalidImage, r)
	}

	o := anchor.origin(r)
	mask := image.NewAlpha(r)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		i := mask.PixOffset(r.Min.X, y)
		for x := r.Min.X; x < r.Max.X; x++ {
			mask.Pix[i] = FadeAlpha(Distance(x-o.X, y-o.Y), strength)
			i++
		}
	}
	return mask, nil
}

// ApplyRadialFade returns a copy of region whose opacity fades with the
// distance from its top-left corner. Colour channels are kept as they are.
func ApplyRadialFade(region image.Image, strength float64) (*image.NRGBA, error) {
	return ApplyRadialFadeAt(region, strength, AnchorCorner)
}

// ApplyRadialFadeAt is ApplyRadialFade with a selectable anchor. The result
// always starts at (0, 0); region is left untouched.
func ApplyRadialFadeAt(region image.Image, strength float64, anchor Anchor) (*image.NRGBA, error) {
	if region == nil {
		return nil, fmt.Errorf("%w: no region", ErrInvalidImage)
	}
	b := region.Bounds()
	mask, err := Mask(b, strength, anchor)
	if err != nil {
		return nil, err
	}

	out := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	src, isNRGBA := region.(*image.NRGBA)
	for y := 0; y < b.Dy(); y++ {
		o := out.PixOffset(0, y)
		m := mask.PixOffset(b.Min.X, b.Min.Y+y)
		for x := 0; x < b.Dx(); x++ {
			if isNRGBA {
				i := src.PixOffset(b.Min.X+x, b.Min.Y+y)
				copy(out.Pix[o:o+3], src.Pix[i:i+3])
			} else {
				c := color.NRGBAModel.Convert(region.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
				out.Pix[o], out.Pix[o+1], out.Pix[o+2] = c.R, c.G, c.B
			}
			out.Pix[o+3] = mask.Pix[m]
			o += 4
			m++
		}
	}
	return out, nil
}
