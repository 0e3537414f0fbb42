package types

import "fmt"

// RoundedDiagonal is a diagonal length in inches at tenths precision,
// e.g. {Major: 4, Minor: 7} is 4.7".
type RoundedDiagonal struct {
	Major int `json:"major"`
	Minor int `json:"minor"`
}

// Float returns major + minor/10.
func (d RoundedDiagonal) Float() float64 {
	return float64(d.Major) + float64(d.Minor)/10
}

// String renders the fixed "<major>.<minor>" form.
func (d RoundedDiagonal) String() string {
	return fmt.Sprintf("%d.%d", d.Major, d.Minor)
}
