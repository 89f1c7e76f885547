// Package overlay holds the commands that stamp a faded decal onto pictures.
package overlay

import (
	"fmt"
	"image/color"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"

	"picdecal/decal"
	"picdecal/emblem"
	"picdecal/parallel"

	"github.com/alecthomas/kong"
)

type CLICmd struct {
	EmblemParams
	Scan       string `help:"Source folder to scan" default:"."`
	Dest       string `help:"Destination folder for stamped pictures. Relative to scan dir if not absolute" default:"decal"`
	Alpha      string `help:"Flatten transparent pictures over the background, or keep their alpha" enum:"flatten,keep" default:"flatten" group:"composite"`
	Background string `help:"Background colour used when flattening, #RGB, #RGBA, #RRGGBB or #RRGGBBAA" default:"#fff" group:"composite"`
	Format     string `help:"Output format of stamped pictures. If prefixed with 'unsup:' will convert only unsupported formats. 'same' is 'unsup:png'" enum:"same,gif,unsup:gif,jpeg,unsup:jpeg,png,unsup:png,bmp,unsup:bmp,tiff,unsup:tiff" default:"unsup:png"`
	Overwrite  bool   `help:"Replace existing destination files" default:"false"`

	Mode            decal.AlphaMode `kong:"-"`
	BackgroundColor color.Color     `kong:"-"`
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	if err := c.EmblemParams.check(); err != nil {
		return err
	}

	scanDir, err := filepath.Abs(c.Scan)
	var info os.FileInfo
	if err == nil {
		if info, err = os.Stat(scanDir); err == nil && !info.IsDir() {
			err = fmt.Errorf("not a directory")
		}
	}
	if err != nil {
		return fmt.Errorf("invalid scan path %q: %w", c.Scan, err)
	}
	c.Scan = scanDir

	if !filepath.IsAbs(c.Dest) {
		c.Dest = filepath.Join(scanDir, c.Dest)
	}
	if (c.Dest == c.Scan) && !c.Overwrite {
		return fmt.Errorf("destination is the scan folder, pass --overwrite to replace source pictures")
	}

	if c.Mode, err = decal.ParseAlphaMode(c.Alpha); err != nil {
		return err
	}

	if c.BackgroundColor, err = parseHexToColor(c.Background); err != nil {
		return err
	}

	return nil
}

func (c *CLICmd) Run(worker parallel.WorkerFunc, wait parallel.WaitFunc) error {
	faded, err := c.Decal(slog.Default())
	if err != nil {
		return err
	}

	if err := os.MkdirAll(c.Dest, 0o755); err != nil {
		return fmt.Errorf("unable to create destination folder %q: %w", c.Dest, err)
	}

	files, err := os.ReadDir(c.Scan)
	if err != nil {
		return fmt.Errorf("unable to read folder %q: %w", c.Scan, err)
	}

	opts := decal.Options{Alpha: c.Mode, Background: c.BackgroundColor}
	var processedCount, errCount, skippedCount atomic.Uint64
	var queuedCount uint64
	for i, file := range files {
		if file.IsDir() {
			continue
		}

		queued := worker(func(fileName string) func() {
			return func() {
				filePath := filepath.Join(c.Scan, fileName)
				logger := slog.Default().With("file", filePath)

				img, imgType, err := emblem.Load(filePath)
				if err != nil {
					errCount.Add(1)
					logger.Error("could not read picture", "error", err)
					return
				}

				logger.Debug("stamping", "width", img.Bounds().Dx(), "height", img.Bounds().Dy(), "alpha", c.Mode)
				out, err := decal.Composite(img, faded, opts)
				if err != nil {
					errCount.Add(1)
					logger.Error("could not stamp picture", "error", err)
					return
				}

				dest, err := save(out, imgType, c.Format, c.Dest, fileName, c.Overwrite)
				if err != nil {
					errCount.Add(1)
					logger.Error("could not save picture", "dir", c.Dest, "error", err)
					return
				}
				logger.Info("stamped", "dest", dest)
				processedCount.Add(1)
			}
		}(file.Name()))
		if queued {
			queuedCount++
		} else {
			for _, rest := range files[i:] {
				if !rest.IsDir() {
					skippedCount.Add(1)
				}
			}
			slog.Warn("cancelled, remaining pictures skipped", "skipped", skippedCount.Load())
			break
		}
	}

	wait(true)

	processed := processedCount.Load()
	errors := errCount.Load()
	// queued jobs dropped by a cancelled pool never report back
	skipped := skippedCount.Load() + queuedCount - processed - errors
	slog.Info("stats", "processed", processed, "errors", errors, "skipped", skipped,
		"total", processed+errors+skipped)

	if errors > 0 {
		return fmt.Errorf("error processing %d files", errors)
	}
	if skipped > 0 {
		return fmt.Errorf("cancelled with %d files left", skipped)
	}
	return nil
}
