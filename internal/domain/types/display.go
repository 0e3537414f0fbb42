package types

import (
	"encoding/json"
	"fmt"
	"math"

	"gopkg.in/yaml.v3"
)

// DisplayInfo is the fully derived description of one display.
//
// Values are immutable: fields are reachable only through accessors, and a
// DisplayInfo is obtained either from the builder or from a validated Record.
// Every field is comparable, so two DisplayInfo values can be compared with ==.
type DisplayInfo struct {
	widthPixels     int
	heightPixels    int
	widthDp         float64
	heightDp        float64
	widthInch       float64
	heightInch      float64
	diagonalInch    float64
	diagonal        RoundedDiagonal
	density         DensityBucket
	category        DeviceCategory
	smallestWidthDp int
}

func (d DisplayInfo) WidthPixels() int { return d.widthPixels }
func (d DisplayInfo) HeightPixels() int { return d.heightPixels }
func (d DisplayInfo) WidthDp() float64 { return d.widthDp }
func (d DisplayInfo) HeightDp() float64 { return d.heightDp }
func (d DisplayInfo) WidthInch() float64 { return d.widthInch }
func (d DisplayInfo) HeightInch() float64 { return d.heightInch }
func (d DisplayInfo) Density() DensityBucket { return d.density }
func (d DisplayInfo) Category() DeviceCategory { return d.category }
func (d DisplayInfo) SmallestWidthDp() int { return d.smallestWidthDp }
func (d DisplayInfo) Diagonal() RoundedDiagonal { return d.diagonal }
func (d DisplayInfo) DiagonalInch() float64 { return d.diagonalInch }
func (d DisplayInfo) String() string { return d.diagonal.String() + "\" " + d.category.String() }

// Record is the flat, serializable form of a DisplayInfo.
type Record struct {
	WidthPixels     int            `json:"width_px" yaml:"width_px"`
	HeightPixels    int            `json:"height_px" yaml:"height_px"`
	WidthDp         float64        `json:"width_dp" yaml:"width_dp"`
	HeightDp        float64        `json:"height_dp" yaml:"height_dp"`
	WidthInch       float64        `json:"width_inch" yaml:"width_inch"`
	HeightInch      float64        `json:"height_inch" yaml:"height_inch"`
	DiagonalInch    float64        `json:"diagonal_inch" yaml:"diagonal_inch"`
	DiagonalMajor   int            `json:"diagonal_major" yaml:"diagonal_major"`
	DiagonalMinor   int            `json:"diagonal_minor" yaml:"diagonal_minor"`
	Density         DensityBucket  `json:"density" yaml:"density"`
	Category        DeviceCategory `json:"category" yaml:"category"`
	SmallestWidthDp int            `json:"smallest_width_dp" yaml:"smallest_width_dp"`
}

// Record flattens d.
func (d DisplayInfo) Record() Record {
	return Record{
		WidthPixels:     d.widthPixels,
		HeightPixels:    d.heightPixels,
		WidthDp:         d.widthDp,
		HeightDp:        d.heightDp,
		WidthInch:       d.widthInch,
		HeightInch:      d.heightInch,
		DiagonalInch:    d.diagonalInch,
		DiagonalMajor:   d.diagonal.Major,
		DiagonalMinor:   d.diagonal.Minor,
		Density:         d.density,
		Category:        d.category,
		SmallestWidthDp: d.smallestWidthDp,
	}
}

// FromRecord rebuilds a DisplayInfo, rejecting records no builder could
// have produced.
func FromRecord(r Record) (DisplayInfo, error) {
	if r.WidthPixels < 0 || r.HeightPixels < 0 {
		return DisplayInfo{}, fmt.Errorf("record: negative pixel size %dx%d", r.WidthPixels, r.HeightPixels)
	}
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"width_dp", r.WidthDp},
		{"height_dp", r.HeightDp},
		{"width_inch", r.WidthInch},
		{"height_inch", r.HeightInch},
		{"diagonal_inch", r.DiagonalInch},
	} {
		if f.v < 0 || math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return DisplayInfo{}, fmt.Errorf("record: %s=%v out of range", f.name, f.v)
		}
	}
	if r.DiagonalMajor < 0 || r.DiagonalMinor < 0 || r.DiagonalMinor > 9 {
		return DisplayInfo{}, fmt.Errorf("record: bad rounded diagonal %d.%d", r.DiagonalMajor, r.DiagonalMinor)
	}
	if !r.Density.Valid() {
		return DisplayInfo{}, fmt.Errorf("record: invalid density %d", int(r.Density))
	}
	if !r.Category.Valid() {
		return DisplayInfo{}, fmt.Errorf("record: invalid category %d", int(r.Category))
	}
	if r.SmallestWidthDp < 0 || r.SmallestWidthDp%10 != 0 {
		return DisplayInfo{}, fmt.Errorf("record: smallest_width_dp %d is not a multiple of 10", r.SmallestWidthDp)
	}

	return DisplayInfo{
		widthPixels:     r.WidthPixels,
		heightPixels:    r.HeightPixels,
		widthDp:         r.WidthDp,
		heightDp:        r.HeightDp,
		widthInch:       r.WidthInch,
		heightInch:      r.HeightInch,
		diagonalInch:    r.DiagonalInch,
		diagonal:        RoundedDiagonal{Major: r.DiagonalMajor, Minor: r.DiagonalMinor},
		density:         r.Density,
		category:        r.Category,
		smallestWidthDp: r.SmallestWidthDp,
	}, nil
}

func (d DisplayInfo) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Record())
}

func (d *DisplayInfo) UnmarshalJSON(b []byte) error {
	var r Record
	if err := json.Unmarshal(b, &r); err != nil {
		return err
	}
	v, err := FromRecord(r)
	if err != nil {
		return err
	}
	*d = v
	return nil
}

func (d DisplayInfo) MarshalYAML() (any, error) {
	return d.Record(), nil
}

func (d *DisplayInfo) UnmarshalYAML(node *yaml.Node) error {
	var r Record
	if err := node.Decode(&r); err != nil {
		return err
	}
	v, err := FromRecord(r)
	if err != nil {
		return err
	}
	*d = v
	return nil
}
