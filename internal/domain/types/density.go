package types

import "fmt"

// DensityBucket is a discrete screen density class, ordered from lowest to highest.
type DensityBucket int

const (
	LDPI DensityBucket = iota
	MDPI
	TVDPI
	HDPI
	XHDPI
	XXHDPI
	XXXHDPI
)

var densityNames = [...]string{
	LDPI:    "ldpi",
	MDPI:    "mdpi",
	TVDPI:   "tvdpi",
	HDPI:    "hdpi",
	XHDPI:   "xhdpi",
	XXHDPI:  "xxhdpi",
	XXXHDPI: "xxxhdpi",
}

// DensityBuckets lists every bucket in ascending order.
func DensityBuckets() []DensityBucket {
	return []DensityBucket{LDPI, MDPI, TVDPI, HDPI, XHDPI, XXHDPI, XXXHDPI}
}

// Valid reports whether b is one of the seven defined buckets.
func (b DensityBucket) Valid() bool { return b >= LDPI && b <= XXXHDPI }

func (b DensityBucket) String() string {
	if !b.Valid() {
		return fmt.Sprintf("DensityBucket(%d)", int(b))
	}
	return densityNames[b]
}

// ParseDensityBucket resolves the lowercase bucket name.
func ParseDensityBucket(s string) (DensityBucket, error) {
	for i, name := range densityNames {
		if name == s {
			return DensityBucket(i), nil
		}
	}
	return 0, fmt.Errorf("unknown density bucket %q", s)
}

func (b DensityBucket) MarshalText() ([]byte, error) {
	if !b.Valid() {
		return nil, fmt.Errorf("invalid density bucket %d", int(b))
	}
	return []byte(densityNames[b]), nil
}

func (b *DensityBucket) UnmarshalText(text []byte) error {
	v, err := ParseDensityBucket(string(text))
	if err != nil {
		return err
	}
	*b = v
	return nil
}
