package display

import (
	"fmt"
	"math"

	"displayinfo/internal/domain"
	"displayinfo/internal/services/density"
	"displayinfo/internal/services/size"
)

// Builder combines a density and a size classifier into a DisplayInfoBuilder.
type Builder struct {
	density domain.DensityClassifier
	size    domain.SizeClassifier
}

// New returns a Builder using the given classifiers.
func New(d domain.DensityClassifier, s domain.SizeClassifier) *Builder {
	return &Builder{density: d, size: s}
}

// NewDefault returns a Builder backed by the stock classifiers.
func NewDefault() *Builder { return New(density.New(), size.New()) }

// Build derives the full DisplayInfo for snap.
// It fails only when snap does not pass Snapshot.Validate.
func (b *Builder) Build(snap domain.Snapshot) (domain.DisplayInfo, error) {
	if err := snap.Validate(); err != nil {
		return domain.DisplayInfo{}, err
	}

	widthDp := float64(snap.WidthPixels) / snap.Density
	heightDp := float64(snap.HeightPixels) / snap.Density
	if !dpInRange(widthDp) || !dpInRange(heightDp) {
		return domain.DisplayInfo{}, &domain.MeasurementError{Field: "density", Value: snap.Density}
	}

	bucket, err := b.density.ClassifyDensity(snap.XDpi, snap.YDpi)
	if err != nil {
		return domain.DisplayInfo{}, fmt.Errorf("classify density: %w", err)
	}
	sc, err := b.size.ClassifySize(snap.WidthPixels, snap.HeightPixels, snap.XDpi, snap.YDpi)
	if err != nil {
		return domain.DisplayInfo{}, fmt.Errorf("classify size: %w", err)
	}

	return domain.FromRecord(domain.Record{
		WidthPixels:     snap.WidthPixels,
		HeightPixels:    snap.HeightPixels,
		WidthDp:         widthDp,
		HeightDp:        heightDp,
		WidthInch:       sc.WidthInch,
		HeightInch:      sc.HeightInch,
		DiagonalInch:    sc.DiagonalInch,
		DiagonalMajor:   sc.Diagonal.Major,
		DiagonalMinor:   sc.Diagonal.Minor,
		Density:         bucket,
		Category:        sc.Category,
		SmallestWidthDp: SmallestWidthDp(widthDp, heightDp),
	})
}

// SmallestWidthDp truncates the smaller dp dimension down to a multiple of 10.
// Unlike the diagonal, the remainder is dropped rather than rounded.
func SmallestWidthDp(widthDp, heightDp float64) int {
	return int(math.Floor(min(widthDp, heightDp)/10)) * 10
}

// maxSmallestWidthBuckets is an exclusive bound on floor(dp/10) so that the
// smallest-width bucket times 10 fits in an int.
const maxSmallestWidthBuckets = float64(math.MaxInt64 / 10)

func dpInRange(dp float64) bool {
	return !math.IsInf(dp, 0) && !math.IsNaN(dp) && math.Floor(dp/10) < maxSmallestWidthBuckets
}

// Build derives a DisplayInfo with the stock classifiers.
func Build(snap domain.Snapshot) (domain.DisplayInfo, error) {
	return NewDefault().Build(snap)
}

// Compile-time assertion that Builder implements domain.DisplayInfoBuilder.
var _ domain.DisplayInfoBuilder = (*Builder)(nil)
