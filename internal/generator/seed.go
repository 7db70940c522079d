package generator

import (
	"encoding/binary"

	"golang.org/x/crypto/blake2b"
)

// DeriveSeed hashes a date string (normally ISO-8601 "YYYY-MM-DD") into a
// 64-bit seed. blake2b gives a stable digest across platforms and process
// restarts, so every load on the same date derives the same seed. Malformed
// input is hashed as-is: still deterministic, just not a shared daily seed.
func DeriveSeed(date string) uint64 {
	sum := blake2b.Sum256([]byte(date))
	return binary.BigEndian.Uint64(sum[:8])
}
