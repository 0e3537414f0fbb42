package source

import (
	"context"

	"displayinfo/internal/domain"
)

// Static always returns the same snapshot.
type Static domain.Snapshot

// Snapshot implements domain.SnapshotSource.
func (s Static) Snapshot(ctx context.Context) (domain.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return domain.Snapshot{}, err
	}
	return domain.Snapshot(s), nil
}

var _ domain.SnapshotSource = Static{}
