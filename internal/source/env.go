package source

import (
	"context"
	"fmt"

	"github.com/caarlos0/env/v11"

	"displayinfo/internal/domain"
)

// EnvPrefix is prepended to the snapshot field names, e.g.
// DISPLAYINFO_SNAPSHOT_WIDTH_PX.
const EnvPrefix = "DISPLAYINFO_SNAPSHOT_"

// Env reads a snapshot from environment variables. Every field is required.
type Env struct {
	// Environment overrides the process environment when non-nil.
	Environment map[string]string
}

// Snapshot implements domain.SnapshotSource.
func (e Env) Snapshot(ctx context.Context) (domain.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return domain.Snapshot{}, err
	}
	var snap domain.Snapshot
	opts := env.Options{Prefix: EnvPrefix}
	if e.Environment != nil {
		opts.Environment = e.Environment
	}
	if err := env.ParseWithOptions(&snap, opts); err != nil {
		return domain.Snapshot{}, fmt.Errorf("parse env: %w", err)
	}
	return snap, nil
}

var _ domain.SnapshotSource = Env{}
