package types_test

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"displayinfo/internal/domain/types"
)

func TestDensityBucket_TextRoundTrip(t *testing.T) {
	for _, b := range types.DensityBuckets() {
		text, err := b.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%d): %v", int(b), err)
		}
		var back types.DensityBucket
		if err := back.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%q): %v", text, err)
		}
		if back != b {
			t.Fatalf("round trip %s -> %s", b, back)
		}
	}
	if _, err := types.ParseDensityBucket("retina"); err == nil {
		t.Fatal("expected error for unknown bucket")
	}
	if got := types.DensityBucket(42).String(); got != "DensityBucket(42)" {
		t.Fatalf("String of invalid bucket = %q", got)
	}
}

func TestDensityBucket_Ordered(t *testing.T) {
	all := types.DensityBuckets()
	if len(all) != 7 {
		t.Fatalf("expected 7 buckets, got %d", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i-1] >= all[i] {
			t.Fatalf("%s not below %s", all[i-1], all[i])
		}
	}
	if all[0].String() != "ldpi" || all[6].String() != "xxxhdpi" {
		t.Fatalf("unexpected names %s..%s", all[0], all[6])
	}
}

func TestDeviceCategory_Parse(t *testing.T) {
	for _, name := range []string{"phone", "phablet", "tablet", "other"} {
		c, err := types.ParseDeviceCategory(name)
		if err != nil {
			t.Fatalf("ParseDeviceCategory(%q): %v", name, err)
		}
		if c.String() != name {
			t.Fatalf("String() = %q, want %q", c, name)
		}
	}
	if _, err := types.ParseDeviceCategory("Phone"); err == nil {
		t.Fatal("names are case sensitive")
	}
}

func TestRoundedDiagonal_Format(t *testing.T) {
	d := types.RoundedDiagonal{Major: 4, Minor: 7}
	if d.String() != "4.7" {
		t.Fatalf("String() = %q", d)
	}
	if d.Float() != 4.7 {
		t.Fatalf("Float() = %v", d.Float())
	}
}

func validRecord() types.Record {
	return types.Record{
		WidthPixels:     1440,
		HeightPixels:    2560,
		WidthDp:         411.43,
		HeightDp:        731.43,
		WidthInch:       2.68,
		HeightInch:      4.77,
		DiagonalInch:    5.47,
		DiagonalMajor:   5,
		DiagonalMinor:   5,
		Density:         types.XXXHDPI,
		Category:        types.Phone,
		SmallestWidthDp: 410,
	}
}

func TestFromRecord_Validates(t *testing.T) {
	if _, err := types.FromRecord(validRecord()); err != nil {
		t.Fatalf("valid record rejected: %v", err)
	}

	cases := map[string]func(*types.Record){
		"negative pixels":   func(r *types.Record) { r.WidthPixels = -1 },
		"negative inches":   func(r *types.Record) { r.HeightInch = -0.1 },
		"minor overflow":    func(r *types.Record) { r.DiagonalMinor = 10 },
		"bad density":       func(r *types.Record) { r.Density = 9 },
		"bad category":      func(r *types.Record) { r.Category = -1 },
		"sw not multiple":   func(r *types.Record) { r.SmallestWidthDp = 415 },
		"negative sw width": func(r *types.Record) { r.SmallestWidthDp = -10 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			r := validRecord()
			mutate(&r)
			if _, err := types.FromRecord(r); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestDisplayInfo_YAMLRoundTrip(t *testing.T) {
	info, err := types.FromRecord(validRecord())
	if err != nil {
		t.Fatalf("FromRecord: %v", err)
	}
	out, err := yaml.Marshal(info)
	if err != nil {
		t.Fatalf("yaml marshal: %v", err)
	}
	if !strings.Contains(string(out), "density: xxxhdpi") {
		t.Fatalf("unexpected yaml:\n%s", out)
	}
	var back types.DisplayInfo
	if err := yaml.Unmarshal(out, &back); err != nil {
		t.Fatalf("yaml unmarshal: %v", err)
	}
	if back != info {
		t.Fatal("yaml round trip changed the value")
	}
}

func TestDisplayInfo_UnmarshalRejectsInvalid(t *testing.T) {
	var info types.DisplayInfo
	err := json.Unmarshal([]byte(`{"width_px":1,"height_px":1,"diagonal_minor":12,"density":"ldpi","category":"phone"}`), &info)
	if err == nil {
		t.Fatal("expected error for minor=12")
	}
	err = json.Unmarshal([]byte(`{"density":"ultra","category":"phone"}`), &info)
	if err == nil {
		t.Fatal("expected error for unknown density")
	}
}

func TestSnapshot_Validate(t *testing.T) {
	ok := types.Snapshot{WidthPixels: 1, HeightPixels: 1, XDpi: 1, YDpi: 1, Density: 1}
	if err := ok.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	bad := ok
	bad.Density = -2
	err := bad.Validate()
	if !errors.Is(err, types.ErrInvalidMeasurement) {
		t.Fatalf("expected ErrInvalidMeasurement, got %v", err)
	}
	if !strings.Contains(err.Error(), "density=-2") {
		t.Fatalf("error should name the field: %v", err)
	}
}
