// Package digest computes the checksums used by displayinfo.
//
// Contents
//
//   - BLAKE2b-256 checksums over serialized records (Sum, Verify)
//   - Short record fingerprints for display/logging (Fingerprint)
//
// # Notes
//
// Fingerprints are derived from the canonical JSON record, so two
// DisplayInfo values that compare equal always share a fingerprint.
package digest
