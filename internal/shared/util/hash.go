package util

import (
	"crypto/sha256"
	"encoding/hex"
)

// OwnerPrefix returns a sharded, opaque storage prefix for a user ID:
// the first two hex digits of its SHA-256, a slash, then the full digest.
func OwnerPrefix(userID string) string {
	sum := sha256.Sum256([]byte(userID))
	digest := hex.EncodeToString(sum[:])
	return digest[:2] + "/" + digest
}
