package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// readSealed returns the verified record stored at path. ok is false when
// no state file exists yet.
func readSealed(path string) (raw []byte, ok bool, err error) {
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return nil, false, nil
	case err != nil:
		return nil, false, fmt.Errorf("read state: %w", err)
	}

	var b blob
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, false, fmt.Errorf("%w: %v", ErrCorruptState, err)
	}
	raw, err = open(b)
	if err != nil {
		return nil, false, err
	}
	return raw, true, nil
}

// writeSealed checksums raw and replaces the state file at path with the
// resulting blob.
func writeSealed(path string, raw []byte, mode os.FileMode) error {
	data, err := json.MarshalIndent(seal(raw), "", "  ")
	if err != nil {
		return err
	}
	if err := replaceFile(path, append(data, '\n'), mode); err != nil {
		return fmt.Errorf("write state: %w", err)
	}
	return nil
}

// replaceFile stages data next to path and renames it into place, so readers
// see either the old state or the new one.
func replaceFile(path string, data []byte, mode os.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}
	f, err := os.CreateTemp(dir, "."+filepath.Base(path)+"-*")
	if err != nil {
		return err
	}
	staged := f.Name()
	defer os.Remove(staged) // no-op once renamed

	if err := f.Chmod(mode); err != nil {
		f.Close()
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(staged, path)
}
