// Package size derives the physical dimensions of a display and the device
// category implied by its diagonal.
//
// The diagonal is rounded to tenths of an inch in two steps: first to
// hundredths, then half-up to tenths. The category is decided by the whole
// inches of that rounded value only.
package size
