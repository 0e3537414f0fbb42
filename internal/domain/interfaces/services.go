package interfaces

import domaintypes "displayinfo/internal/domain/types"

// DensityClassifier maps a pair of physical DPI readings to a density bucket.
type DensityClassifier interface {
	ClassifyDensity(xDpi, yDpi float64) (domaintypes.DensityBucket, error)
}

// SizeClassifier derives physical size and device category from pixels and DPI.
type SizeClassifier interface {
	ClassifySize(
		widthPx int,
		heightPx int,
		xDpi float64,
		yDpi float64,
	) (domaintypes.SizeClass, error)
}

// DisplayInfoBuilder assembles a DisplayInfo from one raw snapshot.
type DisplayInfoBuilder interface {
	Build(snapshot domaintypes.Snapshot) (domaintypes.DisplayInfo, error)
}
