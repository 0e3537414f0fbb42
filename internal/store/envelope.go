package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"displayinfo/internal/digest"
)

const (
	// The current supported version of the state blob format stored on disk.
	stateFormatVersion = 1
)

var (
	// ErrCorruptState is returned when the stored checksum does not match its
	// payload or the blob cannot be understood.
	ErrCorruptState = errors.New("corrupt display state")
)

// blob is the on-disk JSON structure holding a record and its checksum.
type blob struct {
	V      int             `json:"v"`
	Sum    string          `json:"blake2b"`
	Record json.RawMessage `json:"record"`
}

// seal wraps raw in a versioned, checksummed blob.
func seal(raw []byte) blob {
	return blob{
		V:      stateFormatVersion,
		Sum:    digest.Sum(raw),
		Record: raw,
	}
}

// open verifies b and returns its payload. The checksum covers the compact
// encoding, so indentation added when the blob was written is ignored.
func open(b blob) ([]byte, error) {
	if b.V == 0 || b.V > stateFormatVersion {
		return nil, fmt.Errorf("%w: unsupported state version %d", ErrCorruptState, b.V)
	}
	var raw bytes.Buffer
	if err := json.Compact(&raw, b.Record); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptState, err)
	}
	if !digest.Verify(raw.Bytes(), b.Sum) {
		return nil, fmt.Errorf("%w: checksum mismatch", ErrCorruptState)
	}
	return raw.Bytes(), nil
}
