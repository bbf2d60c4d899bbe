// Package fingerprint computes content digests of raw document bytes.
// The digest is an equality key for physical-duplicate detection, never
// a security boundary and never exposed externally.
package fingerprint

import (
	"crypto/sha256"
	"encoding/hex"
)

// Sum returns the hex SHA-256 digest of data. Same bytes always produce
// the same fingerprint.
func Sum(data []byte) string {
	digest := sha256.Sum256(data)
	return hex.EncodeToString(digest[:])
}
