package overlay

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

func checkDest(dest string, overwrite bool) error {
	destFileInfo, err := os.Stat(dest)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("cannot stat destination file %q: %w", dest, err)
		}
		return nil
	}

	if !destFileInfo.Mode().IsRegular() {
		return fmt.Errorf("cannot replace non-regular file %q: %s", dest, destFileInfo.Mode().String())
	}
	if !overwrite {
		return fmt.Errorf("destination file already exists: %q", dest)
	}
	return nil
}
