package types

import (
	"errors"
	"fmt"
)

// ErrInvalidMeasurement is returned when a raw display value is outside the
// domain the classifiers are defined on.
var ErrInvalidMeasurement = errors.New("invalid display measurement")

// MeasurementError names the offending field of a rejected measurement.
type MeasurementError struct {
	Field string
	Value float64
}

func (e *MeasurementError) Error() string {
	return fmt.Sprintf("%s: %s=%v", ErrInvalidMeasurement, e.Field, e.Value)
}

func (e *MeasurementError) Unwrap() error { return ErrInvalidMeasurement }
