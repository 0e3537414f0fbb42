package types

import "math"

// Snapshot is one raw reading of the display metrics, as reported by the
// host platform.
type Snapshot struct {
	WidthPixels  int     `json:"width_px" yaml:"width_px" env:"WIDTH_PX,required"`
	HeightPixels int     `json:"height_px" yaml:"height_px" env:"HEIGHT_PX,required"`
	XDpi         float64 `json:"x_dpi" yaml:"x_dpi" env:"X_DPI,required"`
	YDpi         float64 `json:"y_dpi" yaml:"y_dpi" env:"Y_DPI,required"`
	Density      float64 `json:"density" yaml:"density" env:"DENSITY,required"`
}

// Validate reports the first field that the classifiers cannot accept.
// Pixel dimensions may be zero; DPI and density must be positive and finite.
func (s Snapshot) Validate() error {
	if s.WidthPixels < 0 {
		return &MeasurementError{Field: "width_px", Value: float64(s.WidthPixels)}
	}
	if s.HeightPixels < 0 {
		return &MeasurementError{Field: "height_px", Value: float64(s.HeightPixels)}
	}
	if !Positive(s.XDpi) {
		return &MeasurementError{Field: "x_dpi", Value: s.XDpi}
	}
	if !Positive(s.YDpi) {
		return &MeasurementError{Field: "y_dpi", Value: s.YDpi}
	}
	if !Positive(s.Density) {
		return &MeasurementError{Field: "density", Value: s.Density}
	}
	return nil
}

// Positive reports whether v is a finite number greater than zero.
func Positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
