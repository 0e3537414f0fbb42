package app

import (
	"context"
	"fmt"

	"displayinfo/internal/domain"
)

// BuildFrom reads one snapshot from src and classifies it, remotely when a
// remote client is configured and in-process otherwise.
func (w *Wire) BuildFrom(ctx context.Context, src domain.SnapshotSource) (domain.DisplayInfo, error) {
	snap, err := src.Snapshot(ctx)
	if err != nil {
		return domain.DisplayInfo{}, fmt.Errorf("read snapshot: %w", err)
	}
	if w.Remote != nil {
		return w.Remote.BuildDisplayInfo(ctx, snap)
	}
	return w.Builder.Build(snap)
}

// ClassifyDensity classifies a DPI pair, remotely when configured.
func (w *Wire) ClassifyDensity(ctx context.Context, xDpi, yDpi float64) (domain.DensityBucket, error) {
	if w.Remote != nil {
		return w.Remote.ClassifyDensity(ctx, xDpi, yDpi)
	}
	return w.Density.ClassifyDensity(xDpi, yDpi)
}
