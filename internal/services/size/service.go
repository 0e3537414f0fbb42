package size

import (
	"math"

	"displayinfo/internal/domain"
)

// Largest whole-inch diagonal of each category (inclusive).
const (
	PhoneMaxInches   = 5
	PhabletMaxInches = 6
	TabletMaxInches  = 12
)

// maxScaled bounds diagonalInch*100 so RoundDiagonal stays within int.
const maxScaled = float64(math.MaxInt64)

// Classify computes width, height and diagonal in inches and the resulting
// device category. Zero pixel sizes are allowed and yield a zero extent on
// that axis.
func Classify(widthPx, heightPx int, xDpi, yDpi float64) (domain.SizeClass, error) {
	if widthPx < 0 {
		return domain.SizeClass{}, &domain.MeasurementError{Field: "width_px", Value: float64(widthPx)}
	}
	if heightPx < 0 {
		return domain.SizeClass{}, &domain.MeasurementError{Field: "height_px", Value: float64(heightPx)}
	}
	if !domain.Positive(xDpi) {
		return domain.SizeClass{}, &domain.MeasurementError{Field: "x_dpi", Value: xDpi}
	}
	if !domain.Positive(yDpi) {
		return domain.SizeClass{}, &domain.MeasurementError{Field: "y_dpi", Value: yDpi}
	}

	widthInch := float64(widthPx) / xDpi
	heightInch := float64(heightPx) / yDpi
	if !finite(widthInch) {
		return domain.SizeClass{}, &domain.MeasurementError{Field: "x_dpi", Value: xDpi}
	}
	if !finite(heightInch) {
		return domain.SizeClass{}, &domain.MeasurementError{Field: "y_dpi", Value: yDpi}
	}
	diagonalInch := math.Sqrt(widthInch*widthInch + heightInch*heightInch)
	if scaled := diagonalInch * 100; !finite(scaled) || scaled >= maxScaled {
		if widthInch >= heightInch {
			return domain.SizeClass{}, &domain.MeasurementError{Field: "x_dpi", Value: xDpi}
		}
		return domain.SizeClass{}, &domain.MeasurementError{Field: "y_dpi", Value: yDpi}
	}
	rounded := RoundDiagonal(diagonalInch)

	return domain.SizeClass{
		WidthInch:    widthInch,
		HeightInch:   heightInch,
		DiagonalInch: diagonalInch,
		Diagonal:     rounded,
		Category:     Categorize(rounded),
	}, nil
}

// RoundDiagonal rounds inches to the nearest hundredth, then half-up to
// the nearest tenth: 4.649999 -> 465 -> 4.7. inches must be finite,
// non-negative and small enough that inches*100 fits in an int; Classify
// rejects anything else before rounding.
func RoundDiagonal(inches float64) domain.RoundedDiagonal {
	scaled := int(math.Round(inches * 100))
	tenths := (scaled + 5) / 10
	return domain.RoundedDiagonal{Major: tenths / 10, Minor: tenths % 10}
}

func finite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}

// Categorize maps a rounded diagonal to a device category by its whole inches.
func Categorize(d domain.RoundedDiagonal) domain.DeviceCategory {
	switch {
	case d.Major <= PhoneMaxInches:
		return domain.Phone
	case d.Major <= PhabletMaxInches:
		return domain.Phablet
	case d.Major <= TabletMaxInches:
		return domain.Tablet
	default:
		return domain.Other
	}
}

// Service exposes Classify behind domain.SizeClassifier.
type Service struct{}

// New returns a size classifier.
func New() *Service { return &Service{} }

// ClassifySize implements domain.SizeClassifier.
func (s *Service) ClassifySize(widthPx, heightPx int, xDpi, yDpi float64) (domain.SizeClass, error) {
	return Classify(widthPx, heightPx, xDpi, yDpi)
}

// Compile-time assertion that Service implements domain.SizeClassifier.
var _ domain.SizeClassifier = (*Service)(nil)
