// Package store provides file-based persistence for displayinfo.
//
// It contains the concrete implementation of domain.DisplayInfoStore,
// serialising the flat DisplayInfo record as JSON on disk inside a versioned
// envelope carrying a BLAKE2b checksum. Writes go through a temp file and an
// atomic rename, and all methods are concurrency-safe via internal locking.
//
// The state file typically lives under the user's configured home directory
// (~/.displayinfo/display.json).
package store
