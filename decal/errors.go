// Package decal fades an emblem into a translucent decal and composites it
// onto pictures.
package decal

import "errors"

var (
	ErrInvalidParameter = errors.New("invalid parameter")
	ErrInvalidImage     = errors.New("invalid image")
	ErrResample         = errors.New("could not resample image")
)
