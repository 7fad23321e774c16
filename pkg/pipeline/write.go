package pipeline

import (
	"os"
	"path/filepath"

	"github.com/novaent/labelsheet/pkg/errors"
)

// WriteFile stores data at path atomically: the bytes go to a temporary file
// in the same directory, which is renamed over path only once fully written.
// A failed write leaves no partial document behind. I/O failures are returned
// as *errors.OutputError; a malformed path is an INVALID_PATH error.
func WriteFile(path string, data []byte) error {
	if err := errors.ValidateOutputPath(path); err != nil {
		return err
	}

	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}

	tmp, err := os.CreateTemp(dir, "."+base+".tmp-*")
	if err != nil {
		return &errors.OutputError{Path: path, Err: err}
	}
	tmpName := tmp.Name()
	fail := func(err error) error {
		tmp.Close()
		os.Remove(tmpName)
		return &errors.OutputError{Path: path, Err: err}
	}

	if _, err := tmp.Write(data); err != nil {
		return fail(err)
	}
	if err := tmp.Sync(); err != nil {
		return fail(err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		return fail(err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return &errors.OutputError{Path: path, Err: err}
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return &errors.OutputError{Path: path, Err: err}
	}
	return nil
}
