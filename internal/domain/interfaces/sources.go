package interfaces

import (
	"context"

	domaintypes "displayinfo/internal/domain/types"
)

// SnapshotSource produces the raw display reading the core classifies.
type SnapshotSource interface {
	Snapshot(ctx context.Context) (domaintypes.Snapshot, error)
}

// RemoteClient is how we talk to a displayinfod service, all with context.
type RemoteClient interface {
	BuildDisplayInfo(
		ctx context.Context,
		snapshot domaintypes.Snapshot,
	) (domaintypes.DisplayInfo, error)
	ClassifyDensity(ctx context.Context, xDpi, yDpi float64) (domaintypes.DensityBucket, error)
}
