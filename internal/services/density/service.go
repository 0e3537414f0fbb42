package density

import "displayinfo/internal/domain"

// Lower bounds (exclusive) of each bucket, in DPI.
const (
	MDPIThreshold    = 120
	HDPIThreshold    = 160
	TVDPIThreshold   = 210
	XHDPIThreshold   = 240
	XXHDPIThreshold  = 320
	XXXHDPIThreshold = 480
)

// Classify returns the bucket for min(xDpi, yDpi).
// Both readings must be positive and finite.
func Classify(xDpi, yDpi float64) (domain.DensityBucket, error) {
	if !domain.Positive(xDpi) {
		return 0, &domain.MeasurementError{Field: "x_dpi", Value: xDpi}
	}
	if !domain.Positive(yDpi) {
		return 0, &domain.MeasurementError{Field: "y_dpi", Value: yDpi}
	}

	dpi := min(xDpi, yDpi)
	switch {
	case dpi > XXXHDPIThreshold:
		return domain.XXXHDPI, nil
	case dpi > XXHDPIThreshold:
		return domain.XXHDPI, nil
	case dpi > XHDPIThreshold:
		return domain.XHDPI, nil
	case dpi > TVDPIThreshold:
		return domain.TVDPI, nil
	case dpi > HDPIThreshold:
		return domain.HDPI, nil
	case dpi > MDPIThreshold:
		return domain.MDPI, nil
	default:
		return domain.LDPI, nil
	}
}

// Service exposes Classify behind domain.DensityClassifier.
type Service struct{}

// New returns a density classifier.
func New() *Service { return &Service{} }

// ClassifyDensity implements domain.DensityClassifier.
func (s *Service) ClassifyDensity(xDpi, yDpi float64) (domain.DensityBucket, error) {
	return Classify(xDpi, yDpi)
}

// Compile-time assertion that Service implements domain.DensityClassifier.
var _ domain.DensityClassifier = (*Service)(nil)
