package source

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"displayinfo/internal/domain"
)

// File reads a snapshot from a JSON or YAML document. The format follows
// the extension (.yaml/.yml for YAML); anything else is parsed as JSON.
type File struct {
	Path string
}

// Snapshot implements domain.SnapshotSource.
func (f File) Snapshot(ctx context.Context) (domain.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return domain.Snapshot{}, err
	}
	b, err := os.ReadFile(f.Path)
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("read snapshot file: %w", err)
	}

	var snap domain.Snapshot
	switch strings.ToLower(filepath.Ext(f.Path)) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(b))
		dec.KnownFields(true)
		if err := dec.Decode(&snap); err != nil {
			return domain.Snapshot{}, fmt.Errorf("parse snapshot %s: %w", f.Path, err)
		}
	default:
		dec := json.NewDecoder(bytes.NewReader(b))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&snap); err != nil {
			return domain.Snapshot{}, fmt.Errorf("parse snapshot %s: %w", f.Path, err)
		}
	}
	return snap, nil
}

var _ domain.SnapshotSource = File{}
