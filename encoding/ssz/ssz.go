// Package ssz implements the Simple Serialize primitives: fixed/
// variable packing with 4-byte tail offsets for
// serialization, and chunked, zero-padded, pairwise-hashed
// merkleization for hash_tree_root. The actual chunk hashing is
// delegated to github.com/prysmaticlabs/fastssz's Hasher, the same
// runtime Prysm's generated *.ssz.go files call into; this package only
// adds the handful of beacon-chain-specific conveniences (offset
// bookkeeping, bitlist mixin) the generated code would otherwise repeat
// per type.
package ssz

import (	"encoding/binary"

	fastssz "github.com/prysmaticlabs/fastssz"
)

// BytesPerLengthOffset is the width of a variable-size-field tail offset.
const BytesPerLengthOffset = 4

// HashRoot is satisfied by every domain type; hash_tree_root is how the
// transition compares states and computes signing roots.
type HashRoot interface {
	HashTreeRoot() ([32]byte, error)
}

// Marshaler is satisfied by every domain type's SSZ encoder.
type Marshaler interface {
	MarshalSSZTo(dst []byte) ([]byte, error)
	MarshalSSZ() ([]byte, error)
	SizeSSZ() int
}

// Unmarshaler is satisfied by every domain type's SSZ decoder.
type Unmarshaler interface {
	UnmarshalSSZ(buf []byte) error
}

// WriteOffset appends a little-endian 4-byte offset to dst.
func WriteOffset(dst []byte, offset int) []byte {
	b := make([]byte, BytesPerLengthOffset)
	binary.LittleEndian.PutUint32(b, uint32(offset))
	return append(dst, b...)
}

// ReadOffset decodes a little-endian 4-byte offset from the head of buf.
func ReadOffset(buf []byte) uint32 {
	return binary.LittleEndian.Uint32(buf[:BytesPerLengthOffset])
}

// NewHasher returns a fresh fastssz hasher for a HashTreeRoot
// implementation to build its Merkle tree against.
func NewHasher() *fastssz.Hasher {
	return fastssz.DefaultHasherPool.Get()
}

// PutHasher returns a hasher obtained from NewHasher back to the pool.
func PutHasher(h *fastssz.Hasher) {
	fastssz.DefaultHasherPool.Put(h)
}

// HashWithDefaultHasher hashes obj using a pooled Hasher, mirroring
// fastssz's top-level convenience function of the same name.
func HashWithDefaultHasher(obj fastssz.HashRoot) ([32]byte, error) {
	return fastssz.HashWithDefaultHasher(obj)
}

// MerkleizeListRoot wraps hh.MerkleizeWithMixin so callers don't need to
// depend on fastssz's Hasher type directly: it finishes a bounded-list
// field by padding to the next power of two up to limit, merkleizing, and
// mixing the true element count in as the final node.
func MerkleizeListRoot(hh *fastssz.Hasher, startIdx int, num, limit uint64) {
	hh.MerkleizeWithMixin(startIdx, num, limit)
}
