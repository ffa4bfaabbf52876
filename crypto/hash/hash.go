// Package hash wraps the digest the state transition uses for every
// hash-tree-root, RANDAO mix, and shuffle round. Every profile in this
// repository uses SHA-256, so this package fixes that choice the way
// Prysm's shared/hashutil does, backed by the AVX2/SHA-NI accelerated
// implementation instead of the standard library's generic one.
package hash

import "github.com/minio/sha256-simd"

// Hash returns the SHA-256 digest of the concatenation of data.
func Hash(data ...[]byte) [32]byte {
	h := sha256.New()
	for _, d := range data {
		// sha256.Hash.Write never returns an error.
		_, _ = h.Write(d)
	}
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}

// HashProto is a convenience helper matching the common two-argument
// concatenation used by the shuffle round and the RANDAO mix update.
func HashProto(a, b []byte) [32]byte {
	return Hash(a, b)
}
