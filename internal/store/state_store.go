package store

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"sync"

	"displayinfo/internal/domain"
)

const stateFilename = "display.json"

// StateFileStore persists the last DisplayInfo so it survives a
// suspend/resume of the host process.
type StateFileStore struct {
	dir string
	mu  sync.Mutex
}

// NewStateFileStore returns a StateFileStore rooted at dir.
func NewStateFileStore(dir string) *StateFileStore {
	return &StateFileStore{dir: dir}
}

// Path returns the state file location.
func (s *StateFileStore) Path() string {
	return filepath.Join(s.dir, stateFilename)
}

// SaveDisplayInfo replaces the stored record with info.
func (s *StateFileStore) SaveDisplayInfo(info domain.DisplayInfo) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.Marshal(info.Record())
	if err != nil {
		return err
	}
	return writeSealed(s.Path(), raw, 0o600)
}

// LoadDisplayInfo returns the stored record and whether one was present.
func (s *StateFileStore) LoadDisplayInfo() (domain.DisplayInfo, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, ok, err := readSealed(s.Path())
	if err != nil || !ok {
		return domain.DisplayInfo{}, false, err
	}
	var r domain.Record
	if err := json.Unmarshal(raw, &r); err != nil {
		return domain.DisplayInfo{}, false, fmt.Errorf("%w: %v", ErrCorruptState, err)
	}
	info, err := domain.FromRecord(r)
	if err != nil {
		return domain.DisplayInfo{}, false, fmt.Errorf("%w: %v", ErrCorruptState, err)
	}
	return info, true, nil
}

// Compile-time assertion that StateFileStore implements domain.DisplayInfoStore.
var _ domain.DisplayInfoStore = (*StateFileStore)(nil)
