// Package bytesutil collects the small byte-slice <-> fixed-array and
// byte-slice <-> integer conversions the SSZ codec and the domain types
// lean on everywhere. Grounded on Prysm's shared/bytesutil package of the
// same name and purpose.
package bytesutil

import "encoding/binary"

// ToBytes32 copies the first 32 bytes of b into a [32]byte, zero-padding
// on the right if b is shorter.
func ToBytes32(b []byte) [32]byte {
	var a [32]byte
	copy(a[:], b)
	return a
}

// ToBytes48 copies the first 48 bytes of b into a [48]byte (a BLS public key).
func ToBytes48(b []byte) [48]byte {
	var a [48]byte
	copy(a[:], b)
	return a
}

// ToBytes96 copies the first 96 bytes of b into a [96]byte (a BLS signature).
func ToBytes96(b []byte) [96]byte {
	var a [96]byte
	copy(a[:], b)
	return a
}

// ToBytes4 copies the first 4 bytes of b into a [4]byte.
func ToBytes4(b []byte) [4]byte {
	var a [4]byte
	copy(a[:], b)
	return a
}

// ToBytes8 copies the first 8 bytes of b into a [8]byte.
func ToBytes8(b []byte) [8]byte {
	var a [8]byte
	copy(a[:], b)
	return a
}

// Bytes4 returns the little-endian 4-byte encoding of x.
func Bytes4(x uint64) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, uint32(x))
	return b
}

// Bytes8 returns the little-endian 8-byte encoding of x.
func Bytes8(x uint64) []byte {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, x)
	return b
}

// Bytes32 returns the little-endian 32-byte encoding of x (the low 8
// bytes hold the value, the remaining 24 are zero), used for mixing a
// list's length into its SSZ hash-tree-root.
func Bytes32(x uint64) []byte {
	b := make([]byte, 32)
	binary.LittleEndian.PutUint64(b, x)
	return b
}

// FromBytes4 decodes a little-endian uint32 from the first 4 bytes of b.
func FromBytes4(b []byte) uint64 {
	return uint64(binary.LittleEndian.Uint32(b[:4]))
}

// FromBytes8 decodes a little-endian uint64 from the first 8 bytes of b.
func FromBytes8(b []byte) uint64 {
	return binary.LittleEndian.Uint64(b[:8])
}

// PadTo right-pads (or truncates) b to exactly length bytes.
func PadTo(b []byte, length int) []byte {
	if len(b) >= length {
		return b[:length]
	}
	padded := make([]byte, length)
	copy(padded, b)
	return padded
}

// SafeCopyBytes returns a fresh copy of b, or nil if b is nil. Used
// anywhere a []byte is handed back out of the beacon state so a caller's
// in-place mutation cannot corrupt state the transition still owns.
func SafeCopyBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	cpy := make([]byte, len(b))
	copy(cpy, b)
	return cpy
}

// SafeCopy2dBytes is SafeCopyBytes applied to every element of a [][]byte.
func SafeCopy2dBytes(b [][]byte) [][]byte {
	if b == nil {
		return nil
	}
	cpy := make([][]byte, len(b))
	for i, v := range b {
		cpy[i] = SafeCopyBytes(v)
	}
	return cpy
}

// ReverseByteOrder returns a copy of b with byte order reversed, for
// reading a big-endian integer as little-endian or vice versa. (The
// shuffle pivot computation reads its bytes little-endian directly.)
func ReverseByteOrder(b []byte) []byte {
	r := make([]byte, len(b))
	for i, v := range b {
		r[len(b)-1-i] = v
	}
	return r
}
