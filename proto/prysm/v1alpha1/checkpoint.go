package v1alpha1

import (	"github.com/eth2core/beacon-transition/encoding/bytesutil"
	"github.com/eth2core/beacon-transition/encoding/ssz"
)

// Checkpoint is a (epoch, block root) pair identifying a finality
// candidate . Equality is structural.
type Checkpoint struct {
	Epoch uint64
	Root [32]byte
}

// Copy returns a deep copy of c. A nil Checkpoint is returned as-is.
func (c *Checkpoint) Copy() *Checkpoint {
	if c == nil {
		return nil
	}
	return &Checkpoint{Epoch: c.Epoch, Root: c.Root}
}

// Equals reports whether c and other denote the same checkpoint. A nil
// receiver or argument only equals another nil.
func (c *Checkpoint) Equals(other *Checkpoint) bool {
	if c == nil || other == nil {
		return c == other
	}
	return c.Epoch == other.Epoch && c.Root == other.Root
}

// SizeSSZ returns the fixed SSZ-encoded size of a Checkpoint.
func (c *Checkpoint) SizeSSZ() int { return 8 + 32 }

// MarshalSSZ returns the SSZ encoding of c.
func (c *Checkpoint) MarshalSSZ() ([]byte, error) {
	return c.MarshalSSZTo(make([]byte, 0, c.SizeSSZ()))
}

// MarshalSSZTo appends the SSZ encoding of c to dst.
func (c *Checkpoint) MarshalSSZTo(dst []byte) ([]byte, error) {
	dst = append(dst, bytesutil.Bytes8(c.Epoch)...)
	dst = append(dst, c.Root[:]...)
	return dst, nil
}

// UnmarshalSSZ decodes buf into c.
func (c *Checkpoint) UnmarshalSSZ(buf []byte) error {
	if len(buf) != c.SizeSSZ() {
		return errSize("Checkpoint", c.SizeSSZ(), len(buf))
	}
	c.Epoch = bytesutil.FromBytes8(buf[0:8])
	c.Root = bytesutil.ToBytes32(buf[8:40])
	return nil
}

// HashTreeRoot computes the SSZ merkle root of c.
func (c *Checkpoint) HashTreeRoot() ([32]byte, error) {
	hh := ssz.NewHasher()
	defer ssz.PutHasher(hh)
	indx := hh.Index()
	hh.PutUint64(c.Epoch)
	hh.PutBytes(c.Root[:])
	hh.Merkleize(indx)
	return hh.HashRoot()
}
