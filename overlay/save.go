package overlay

import (
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

var encodable = map[string]bool{"gif": true, "jpeg": true, "png": true, "bmp": true, "tiff": true}

// save encodes img into destDir under srcName with its extension replaced
// by the output format and returns the destination path. "same" keeps the
// source format when it can be encoded and falls back to PNG otherwise.
// The picture goes through a temporary file that is moved into place once
// fully written.
func save(img image.Image, imgType, outType, destDir, srcName string, overwrite bool) (dest string, err error) {
	outType, unsupOnly := strings.CutPrefix(outType, "unsup:")
	if outType == "same" {
		outType, unsupOnly = "png", true
	}
	if unsupOnly && encodable[imgType] {
		outType = imgType
	}

	oldExt := filepath.Ext(srcName)
	destName := fmt.Sprintf("%s.%s", srcName[:len(srcName)-len(oldExt)], outType)
	dest = filepath.Join(destDir, destName)
	if err := checkDest(dest, overwrite); err != nil {
		return "", err
	}

	outFile, err := os.CreateTemp(destDir, "."+destName+".*")
	if err != nil {
		return "", fmt.Errorf("could not create temporary destination %q: %w", destName, err)
	}
	defer func() {
		if defErr := outFile.Close(); defErr != nil && err == nil {
			err = fmt.Errorf("could not close temporary destination %q: %w", destName, defErr)
		}

		if err == nil {
			if defErr := commit(outFile.Name(), dest, overwrite); defErr != nil {
				err = fmt.Errorf("could not move destination file %q into place: %w", destName, defErr)
			}
		}

		if err != nil {
			dest = ""
			if rmErr := os.Remove(outFile.Name()); rmErr != nil {
				slog.Error("could not remove temporary destination", "name", outFile.Name(), "error", rmErr)
			}
		}
	}()

	switch outType {
	case "gif":
		if err = gif.Encode(outFile, img, nil); err != nil {
			return "", fmt.Errorf("could not encode GIF destination %q: %w", destName, err)
		}
	case "jpeg":
		if err = jpeg.Encode(outFile, img, &jpeg.Options{Quality: 100}); err != nil {
			return "", fmt.Errorf("could not encode JPEG destination %q: %w", destName, err)
		}
	case "png":
		enc := png.Encoder{
			CompressionLevel: png.BestCompression,
			BufferPool:       pngPool,
		}
		if err = enc.Encode(outFile, img); err != nil {
			return "", fmt.Errorf("could not encode PNG destination %q: %w", destName, err)
		}
	case "bmp":
		if err = bmp.Encode(outFile, img); err != nil {
			return "", fmt.Errorf("could not encode BMP destination %q: %w", destName, err)
		}
	case "tiff":
		if err = tiff.Encode(outFile, img, nil); err != nil {
			return "", fmt.Errorf("could not encode TIFF destination %q: %w", destName, err)
		}
	default:
		return "", fmt.Errorf("unsupported output format: %s", outType)
	}

	if err = outFile.Sync(); err != nil {
		return "", fmt.Errorf("could not flush temporary destination %q: %w", destName, err)
	}
	return dest, nil
}

// commit moves tmp to dest. Without overwrite it links instead of renaming
// so that a destination created since checkDest is never replaced.
func commit(tmp, dest string, overwrite bool) error {
	if overwrite {
		return os.Rename(tmp, dest)
	}

	if err := os.Link(tmp, dest); err != nil {
		return err
	}
	if err := os.Remove(tmp); err != nil {
		slog.Error("could not remove temporary destination", "name", tmp, "error", err)
	}
	return nil
}

type pngEncoderBufferPool struct {
	pool sync.Pool
}

func (p *pngEncoderBufferPool) Get() *png.EncoderBuffer {
	return p.pool.Get().(*png.EncoderBuffer)
}

func (p *pngEncoderBufferPool) Put(buf *png.EncoderBuffer) {
	p.pool.Put(buf)
}

var pngPool = &pngEncoderBufferPool{
	pool: sync.Pool{
		New: func() any {
			return &png.EncoderBuffer{}
		},
	},
}
