package v1alpha1

import (	"github.com/eth2core/beacon-transition/encoding/bytesutil"
	"github.com/eth2core/beacon-transition/encoding/ssz"
)

// Transfer moves a BLS-withdrawn balance directly between two validator
// indices without leaving the registry (a phase0 feature later
// dropped from mainline eth2 but retained here).
type Transfer struct {
	Sender uint64
	Recipient uint64
	Amount uint64
	Fee uint64
	Slot uint64
	PublicKey [48]byte
	Signature [96]byte
}

// Copy returns a deep copy of t.
func (t *Transfer) Copy() *Transfer {
	if t == nil {
		return nil
	}
	cpy := *t
	return &cpy
}

// SizeSSZ returns the fixed SSZ-encoded size of a Transfer.
func (t *Transfer) SizeSSZ() int { return 8 + 8 + 8 + 8 + 8 + 48 + 96 }

// MarshalSSZ returns the SSZ encoding of t.
func (t *Transfer) MarshalSSZ() ([]byte, error) {
	return t.MarshalSSZTo(make([]byte, 0, t.SizeSSZ()))
}

// MarshalSSZTo appends the SSZ encoding of t to dst.
func (t *Transfer) MarshalSSZTo(dst []byte) ([]byte, error) {
	dst = append(dst, bytesutil.Bytes8(t.Sender)...)
	dst = append(dst, bytesutil.Bytes8(t.Recipient)...)
	dst = append(dst, bytesutil.Bytes8(t.Amount)...)
	dst = append(dst, bytesutil.Bytes8(t.Fee)...)
	dst = append(dst, bytesutil.Bytes8(t.Slot)...)
	dst = append(dst, t.PublicKey[:]...)
	dst = append(dst, t.Signature[:]...)
	return dst, nil
}

// UnmarshalSSZ decodes buf into t.
func (t *Transfer) UnmarshalSSZ(buf []byte) error {
	if len(buf) != t.SizeSSZ() {
		return errSize("Transfer", t.SizeSSZ(), len(buf))
	}
	t.Sender = bytesutil.FromBytes8(buf[0:8])
	t.Recipient = bytesutil.FromBytes8(buf[8:16])
	t.Amount = bytesutil.FromBytes8(buf[16:24])
	t.Fee = bytesutil.FromBytes8(buf[24:32])
	t.Slot = bytesutil.FromBytes8(buf[32:40])
	t.PublicKey = bytesutil.ToBytes48(buf[40:88])
	t.Signature = bytesutil.ToBytes96(buf[88:184])
	return nil
}

// HashTreeRoot computes the SSZ merkle root of t.
func (t *Transfer) HashTreeRoot() ([32]byte, error) {
	hh := ssz.NewHasher()
	defer ssz.PutHasher(hh)
	indx := hh.Index()
	hh.PutUint64(t.Sender)
	hh.PutUint64(t.Recipient)
	hh.PutUint64(t.Amount)
	hh.PutUint64(t.Fee)
	hh.PutUint64(t.Slot)
	hh.PutBytes(t.PublicKey[:])
	hh.PutBytes(t.Signature[:])
	hh.Merkleize(indx)
	return hh.HashRoot()
}

// SigningRoot computes the root Transfer's signature commits to: every
// field except the signature itself.
func (t *Transfer) SigningRoot() ([32]byte, error) {
	hh := ssz.NewHasher()
	defer ssz.PutHasher(hh)
	indx := hh.Index()
	hh.PutUint64(t.Sender)
	hh.PutUint64(t.Recipient)
	hh.PutUint64(t.Amount)
	hh.PutUint64(t.Fee)
	hh.PutUint64(t.Slot)
	hh.PutBytes(t.PublicKey[:])
	hh.Merkleize(indx)
	return hh.HashRoot()
}
