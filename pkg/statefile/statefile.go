package statefile

import (
	"encoding/gob"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

/* StateFile is a single-file store for one Go object, encoded with
 * encoding/gob and written atomically: encode to a temp file in the
 * same directory, then rename over the target.
 *
 * Usage:
 *  sf := statefile.New[YourType]("/var/lib/yourthing/state.gob")
 *  obj, exists, err := sf.Load()
 *  err = sf.Save(obj)
 */
type StateFile[T any] struct {
	path string
}

func New[T any](path string) *StateFile[T] {
	return &StateFile[T]{path: path}
}

func (sf *StateFile[T]) Path() string {
	return sf.path
}

func (sf *StateFile[T]) Save(obj T) error {
	// temp file must share a filesystem with the target or the
	// rename stops being atomic
	tempFile, err := os.CreateTemp(filepath.Dir(sf.path), ".state-*.gob")
	if err != nil {
		return fmt.Errorf("cannot create temporary file: %w", err)
	}
	defer os.Remove(tempFile.Name())

	if err := gob.NewEncoder(tempFile).Encode(obj); err != nil {
		tempFile.Close()
		return fmt.Errorf("cannot encode state: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("cannot close temporary file: %w", err)
	}
	if err := os.Rename(tempFile.Name(), sf.path); err != nil {
		return fmt.Errorf("cannot rename temporary file to %q: %w", sf.path, err)
	}
	return nil
}

// Load reads the stored object. A missing file is not an error: the
// zero value is returned with exists false, so first boots fall through
// to their defaults.
func (sf *StateFile[T]) Load() (T, bool, error) {
	var obj T

	file, err := os.Open(sf.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return obj, false, nil
		}
		return obj, false, fmt.Errorf("cannot open %q: %w", sf.path, err)
	}
	defer file.Close()

	if err := gob.NewDecoder(file).Decode(&obj); err != nil {
		if err == io.EOF {
			return obj, false, nil
		}
		return obj, false, fmt.Errorf("cannot decode state from %q: %w", sf.path, err)
	}
	return obj, true, nil
}
