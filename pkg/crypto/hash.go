// Package crypto provides the key primitives used by the seed converter.
package crypto

import (
	"encoding/hex"

	"github.com/zeebo/blake3"
)

// FingerprintSize is the number of hash bytes kept in a key fingerprint.
const FingerprintSize = 8

// Hash computes a BLAKE3-256 hash of the input data.
func Hash(data []byte) [32]byte {
	return blake3.Sum256(data)
}

// Fingerprint returns a short hex identifier for a public key.
// Fingerprint = hex(BLAKE3(public)[:8]).
func Fingerprint(public []byte) string {
	h := Hash(public)
	return hex.EncodeToString(h[:FingerprintSize])
}
