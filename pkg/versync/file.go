package versync

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/macropower/verbump/pkg/syncerrors"
	"github.com/macropower/verbump/pkg/syncs"
)

// File is an atomic file writer. Writes to the same path are serialized.
var File = &file{}

type file struct {
	locks syncs.PathLock
}

// WriteFile replaces the contents of path with data. The data is written to
// a temporary file in the same directory which is then renamed over path,
// so readers observe either the old or the new contents. The existing file
// mode is kept.
func (f *file) WriteFile(path string, data []byte) error {
	defer f.locks.Lock(path)()

	mode := fs.FileMode(0o644)

	fi, err := os.Stat(path)
	if err == nil {
		mode = fi.Mode().Perm()
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w %q: %w", syncerrors.ErrWriteFile, path, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("%w %q: %w", syncerrors.ErrWriteFile, path, err)
	}

	tmpName := tmp.Name()

	err = writeAndClose(tmp, data, mode)
	if err == nil {
		err = os.Rename(tmpName, path)
	}

	if err != nil {
		_ = os.Remove(tmpName) //nolint:errcheck // Best-effort cleanup.

		return fmt.Errorf("%w %q: %w", syncerrors.ErrWriteFile, path, err)
	}

	return nil
}

func writeAndClose(tmp *os.File, data []byte, mode fs.FileMode) error {
	_, err := tmp.Write(data)
	if err == nil {
		err = tmp.Sync()
	}

	if err == nil {
		err = tmp.Chmod(mode)
	}

	if cerr := tmp.Close(); err == nil {
		err = cerr
	}

	return err //nolint:wrapcheck // Wrapped by WriteFile.
}
