package v1alpha1

import (	"github.com/eth2core/beacon-transition/encoding/bytesutil"
	"github.com/eth2core/beacon-transition/encoding/ssz"
)

// Crosslink is a hash-linked per-shard summary . ParentRoot must
// equal the tree root of the previous crosslink for the same shard.
type Crosslink struct {
	Shard uint64
	ParentRoot [32]byte
	StartEpoch uint64
	EndEpoch uint64
	DataRoot [32]byte
}

// Copy returns a deep copy of c.
func (c *Crosslink) Copy() *Crosslink {
	if c == nil {
		return nil
	}
	return &Crosslink{
		Shard: c.Shard,
		ParentRoot: c.ParentRoot,
		StartEpoch: c.StartEpoch,
		EndEpoch: c.EndEpoch,
		DataRoot: c.DataRoot,
	}
}

// SizeSSZ returns the fixed SSZ-encoded size of a Crosslink.
func (c *Crosslink) SizeSSZ() int { return 8 + 32 + 8 + 8 + 32 }

// MarshalSSZ returns the SSZ encoding of c.
func (c *Crosslink) MarshalSSZ() ([]byte, error) {
	return c.MarshalSSZTo(make([]byte, 0, c.SizeSSZ()))
}

// MarshalSSZTo appends the SSZ encoding of c to dst.
func (c *Crosslink) MarshalSSZTo(dst []byte) ([]byte, error) {
	dst = append(dst, bytesutil.Bytes8(c.Shard)...)
	dst = append(dst, c.ParentRoot[:]...)
	dst = append(dst, bytesutil.Bytes8(c.StartEpoch)...)
	dst = append(dst, bytesutil.Bytes8(c.EndEpoch)...)
	dst = append(dst, c.DataRoot[:]...)
	return dst, nil
}

// UnmarshalSSZ decodes buf into c.
func (c *Crosslink) UnmarshalSSZ(buf []byte) error {
	if len(buf) != c.SizeSSZ() {
		return errSize("Crosslink", c.SizeSSZ(), len(buf))
	}
	c.Shard = bytesutil.FromBytes8(buf[0:8])
	c.ParentRoot = bytesutil.ToBytes32(buf[8:40])
	c.StartEpoch = bytesutil.FromBytes8(buf[40:48])
	c.EndEpoch = bytesutil.FromBytes8(buf[48:56])
	c.DataRoot = bytesutil.ToBytes32(buf[56:88])
	return nil
}

// HashTreeRoot computes the SSZ merkle root of c.
func (c *Crosslink) HashTreeRoot() ([32]byte, error) {
	hh := ssz.NewHasher()
	defer ssz.PutHasher(hh)
	indx := hh.Index()
	hh.PutUint64(c.Shard)
	hh.PutBytes(c.ParentRoot[:])
	hh.PutUint64(c.StartEpoch)
	hh.PutUint64(c.EndEpoch)
	hh.PutBytes(c.DataRoot[:])
	hh.Merkleize(indx)
	return hh.HashRoot()
}
