package digest

import (
	"encoding/hex"
	"encoding/json"

	"golang.org/x/crypto/blake2b"

	"displayinfo/internal/domain"
)

// Fingerprint returns a short hex fingerprint of info.
//
// It hashes the JSON record with BLAKE2b-256 and truncates to 10 bytes (20 hex chars).
func Fingerprint(info domain.DisplayInfo) (string, error) {
	raw, err := json.Marshal(info.Record())
	if err != nil {
		return "", err
	}
	sum := blake2b.Sum256(raw)
	return hex.EncodeToString(sum[:10]), nil
}
