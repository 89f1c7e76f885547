package decal

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

func TestCrop(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 30, 20))
	src.SetNRGBA(6, 19, color.NRGBA{9, 9, 9, 255})
	src.SetNRGBA(25, 0, color.NRGBA{7, 7, 7, 255})

	sq, err := Crop(src, 6)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := sq.Bounds(), image.Rect(0, 0, 20, 20); got != want {
		t.Fatalf("bounds = %v, want %v", got, want)
	}
	if got := sq.NRGBAAt(0, 19).R; got != 9 {
		t.Errorf("bottom-left = %d, want 9", got)
	}
	if got := sq.NRGBAAt(19, 0).R; got != 7 {
		t.Errorf("top-right = %d, want 7", got)
	}
}

func TestCropErrors(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 30, 20))
	if _, err := Crop(src, 11); !errors.Is(err, ErrInvalidImage) {
		t.Errorf("overflowing crop: err = %v", err)
	}
	if _, err := Crop(src, -1); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("negative offset: err = %v", err)
	}
	if _, err := Crop(image.NewNRGBA(image.Rectangle{}), 0); !errors.Is(err, ErrInvalidImage) {
		t.Errorf("empty emblem: err = %v", err)
	}
}
