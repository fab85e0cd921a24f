package meshvol

import (
	"io"
	"os"

	"github.com/pkg/errors"
)

// Load reads a value from a file using a stream reading function:
//
//	profile, err := meshvol.Load(path, meshvol.ReadVolumeProfile)
func Load[T any](path string, f func(r io.Reader) (T, error)) (T, error) {
	file, err := os.Open(path)
	if err != nil {
		var zero T
		return zero, errors.Wrap(err, "load "+path)
	}
	defer file.Close()
	value, err := f(file)
	if err != nil {
		return value, errors.Wrap(err, "load "+path)
	}
	return value, nil
}

// Save writes a value to a file using a stream writing function:
//
//	err := meshvol.Save(path, profile, meshvol.WriteVolumeProfile)
func Save[T any](path string, value T, f func(w io.Writer, value T) error) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "save "+path)
	}
	if err := f(file, value); err != nil {
		file.Close()
		return errors.Wrap(err, "save "+path)
	}
	if err := file.Close(); err != nil {
		return errors.Wrap(err, "save "+path)
	}
	return nil
}
