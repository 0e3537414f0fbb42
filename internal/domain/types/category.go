package types

import "fmt"

// DeviceCategory classifies a device by its rounded diagonal.
type DeviceCategory int

const (
	Phone DeviceCategory = iota
	Phablet
	Tablet
	Other
)

var categoryNames = [...]string{
	Phone:   "phone",
	Phablet: "phablet",
	Tablet:  "tablet",
	Other:   "other",
}

// Valid reports whether c is one of the four defined categories.
func (c DeviceCategory) Valid() bool { return c >= Phone && c <= Other }

func (c DeviceCategory) String() string {
	if !c.Valid() {
		return fmt.Sprintf("DeviceCategory(%d)", int(c))
	}
	return categoryNames[c]
}

// ParseDeviceCategory resolves the lowercase category name.
func ParseDeviceCategory(s string) (DeviceCategory, error) {
	for i, name := range categoryNames {
		if name == s {
			return DeviceCategory(i), nil
		}
	}
	return 0, fmt.Errorf("unknown device category %q", s)
}

func (c DeviceCategory) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("invalid device category %d", int(c))
	}
	return []byte(categoryNames[c]), nil
}

func (c *DeviceCategory) UnmarshalText(text []byte) error {
	v, err := ParseDeviceCategory(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}
