// Package emblem provides the picture a decal is cut from.
package emblem

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"picdecal/decal"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

var (
	FlagRed    = color.RGBA{0xDE, 0x29, 0x10, 0xFF}
	FlagYellow = color.RGBA{0xFF, 0xDE, 0x00, 0xFF}
)

// MinFlagHeight is one pixel per grid unit.
const MinFlagHeight = 20

type star struct {
	cx, cy, r float64 // grid units, the flag is 30x20
}

var (
	bigStar    = star{5, 5, 3}
	smallStars = []star{{10, 2, 1}, {12, 4, 1}, {12, 7, 1}, {10, 9, 1}}
)

// Flag draws the five-star red flag, height pixels high at 3:2. The small
// stars each point one tip at the centre of the big one.
func Flag(height int) (*image.RGBA, error) {
	if height < MinFlagHeight {
		return nil, fmt.Errorf("%w: flag height %d below %d", decal.ErrInvalidImage, height, MinFlagHeight)
	}

	width := height * 3 / 2
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(FlagRed), image.Point{}, draw.Src)

	unit := float64(height) / 20
	z := vector.NewRasterizer(width, height)
	drawStar(z, bigStar, unit, -math.Pi/2)
	for _, s := range smallStars {
		drawStar(z, s, unit, math.Atan2(bigStar.cy-s.cy, bigStar.cx-s.cx))
	}
	z.Draw(img, img.Bounds(), image.NewUniform(FlagYellow), image.Point{})

	return img, nil
}

// innerRatio places the inner vertices of a regular five-point star.
var innerRatio = math.Sin(math.Pi/10) / math.Sin(7*math.Pi/10)

func drawStar(z *vector.Rasterizer, s star, unit, tip float64) {
	cx, cy, r := s.cx*unit, s.cy*unit, s.r*unit
	for k := range 10 {
		rad := r
		if k%2 == 1 {
			rad = r * innerRatio
		}
		a := tip + float64(k)*math.Pi/5
		x, y := float32(cx+rad*math.Cos(a)), float32(cy+rad*math.Sin(a))
		if k == 0 {
			z.MoveTo(x, y)
		} else {
			z.LineTo(x, y)
		}
	}
	z.ClosePath()
}
