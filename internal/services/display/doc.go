// Package display assembles a DisplayInfo from a raw snapshot.
//
// The Builder validates the snapshot, converts pixels to density-independent
// units, derives the smallest-width bucket, and delegates density and size
// classification to the injected classifiers.
package display
