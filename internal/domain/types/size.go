package types

// SizeClass is the physical-size part of a classification.
type SizeClass struct {
	WidthInch    float64         `json:"width_inch"`
	HeightInch   float64         `json:"height_inch"`
	DiagonalInch float64         `json:"diagonal_inch"`
	Diagonal     RoundedDiagonal `json:"diagonal"`
	Category     DeviceCategory  `json:"category"`
}
