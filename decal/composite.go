package decal

import (
	"fmt"
	"image"
	"image/color"
)

// AlphaMode tells Composite what to do with the target's own alpha.
type AlphaMode int

const (
	// Flatten lays the target over an opaque background first; the result
	// is fully opaque.
	Flatten AlphaMode = iota
	// KeepAlpha composites the decal over the target and keeps the
	// combined coverage.
	KeepAlpha
)

// ParseAlphaMode maps "flatten" (or "") and "keep" to an AlphaMode.
func ParseAlphaMode(s string) (AlphaMode, error) {
	switch s {
	case "", "flatten":
		return Flatten, nil
	case "keep":
		return KeepAlpha, nil
	}
	return Flatten, fmt.Errorf("%w: unknown alpha mode %q", ErrInvalidParameter, s)
}

func (m AlphaMode) String() string {
	if m == KeepAlpha {
		return "keep"
	}
	return "flatten"
}

// Options tune Composite. The zero value flattens over white.
type Options struct {
	Alpha AlphaMode
	// Background is only used by Flatten, white when nil. Its own alpha is
	// ignored.
	Background color.Color
}

// CompositeOverlay stretches faded over the whole of target and blends it
// in with its own alpha. The result is flattened to full opacity.
func CompositeOverlay(target, faded image.Image) (*image.NRGBA, error) {
	return Composite(target, faded, Options{})
}

// Composite is CompositeOverlay with explicit options. The result has the
// dimensions of target and starts at (0, 0).
func Composite(target, faded image.Image, opts Options) (*image.NRGBA, error) {
	if target == nil || target.Bounds().Empty() {
		return nil, fmt.Errorf("%w: empty target", ErrInvalidImage)
	}
	if faded == nil || faded.Bounds().Empty() {
		return nil, fmt.Errorf("%w: empty decal", ErrInvalidImage)
	}

	tb := target.Bounds()
	overlay, err := Resize(faded, tb.Dx(), tb.Dy())
	if err != nil {
		return nil, err
	}

	bg := opaque(opts.Background)
	out := image.NewNRGBA(image.Rect(0, 0, tb.Dx(), tb.Dy()))
	for y := 0; y < tb.Dy(); y++ {
		for x := 0; x < tb.Dx(); x++ {
			tr, tg, tbl, ta := target.At(tb.Min.X+x, tb.Min.Y+y).RGBA()
			if opts.Alpha == Flatten && ta < 0xffff {
				rest := 0xffff - ta
				tr += scale(uint32(bg.R), rest)
				tg += scale(uint32(bg.G), rest)
				tbl += scale(uint32(bg.B), rest)
				ta = 0xffff
			}

			o := overlay.RGBA64At(x, y)
			oa := uint32(o.A)
			// the resampling kernel may ring past the coverage
			or, og, ob := min(uint32(o.R), oa), min(uint32(o.G), oa), min(uint32(o.B), oa)

			inv := 0xffff - oa
			out.SetRGBA64(x, y, color.RGBA64{
				R: uint16(or + scale(tr, inv)),
				G: uint16(og + scale(tg, inv)),
				B: uint16(ob + scale(tbl, inv)),
				A: uint16(oa + scale(ta, inv)),
			})
		}
	}
	return out, nil
}

// scale computes v*f/0xffff rounded to nearest.
func scale(v, f uint32) uint32 {
	return (v*f + 0x7fff) / 0xffff
}

// opaque returns the straight colour of c with full alpha. Colours that only
// expose premultiplied values lose their hue at zero alpha.
func opaque(c color.Color) color.NRGBA64 {
	var n color.NRGBA64
	switch bg := c.(type) {
	case nil:
		n = color.NRGBA64{R: 0xffff, G: 0xffff, B: 0xffff}
	case color.NRGBA:
		n = color.NRGBA64{R: uint16(bg.R) * 0x101, G: uint16(bg.G) * 0x101, B: uint16(bg.B) * 0x101}
	case color.NRGBA64:
		n = bg
	default:
		n = color.NRGBA64Model.Convert(c).(color.NRGBA64)
	}
	n.A = 0xffff
	return n
}
