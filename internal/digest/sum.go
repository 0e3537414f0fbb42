package digest

import (
	"crypto/subtle"
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// Sum returns the hex BLAKE2b-256 checksum of b.
func Sum(b []byte) string {
	sum := blake2b.Sum256(b)
	return hex.EncodeToString(sum[:])
}

// Verify reports whether want is the checksum of b.
func Verify(b []byte, want string) bool {
	got := Sum(b)
	return subtle.ConstantTimeCompare([]byte(got), []byte(want)) == 1
}
