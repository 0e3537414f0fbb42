// Package density maps physical DPI readings to one of the seven ordered
// density buckets.
//
// The smaller of the horizontal and vertical DPI decides the bucket, so a
// panel with anisotropic pixels is never rated above its coarser axis.
package density
