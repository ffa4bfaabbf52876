package v1alpha1

import (	"github.com/eth2core/beacon-transition/encoding/bytesutil"
	"github.com/eth2core/beacon-transition/encoding/ssz"
)

// Eth1Data is the eth1 deposit-contract vote carried in a block body.
type Eth1Data struct {
	DepositRoot [32]byte
	DepositCount uint64
	BlockHash [32]byte
}

// Copy returns a deep copy of e.
func (e *Eth1Data) Copy() *Eth1Data {
	if e == nil {
		return nil
	}
	return &Eth1Data{DepositRoot: e.DepositRoot, DepositCount: e.DepositCount, BlockHash: e.BlockHash}
}

// Equals reports whether e and other vote for the same eth1 data.
func (e *Eth1Data) Equals(other *Eth1Data) bool {
	if e == nil || other == nil {
		return e == other
	}
	return e.DepositRoot == other.DepositRoot &&
		e.DepositCount == other.DepositCount &&
		e.BlockHash == other.BlockHash
}

// SizeSSZ returns the fixed SSZ-encoded size of Eth1Data.
func (e *Eth1Data) SizeSSZ() int { return 32 + 8 + 32 }

// MarshalSSZ returns the SSZ encoding of e.
func (e *Eth1Data) MarshalSSZ() ([]byte, error) {
	return e.MarshalSSZTo(make([]byte, 0, e.SizeSSZ()))
}

// MarshalSSZTo appends the SSZ encoding of e to dst.
func (e *Eth1Data) MarshalSSZTo(dst []byte) ([]byte, error) {
	dst = append(dst, e.DepositRoot[:]...)
	dst = append(dst, bytesutil.Bytes8(e.DepositCount)...)
	dst = append(dst, e.BlockHash[:]...)
	return dst, nil
}

// UnmarshalSSZ decodes buf into e.
func (e *Eth1Data) UnmarshalSSZ(buf []byte) error {
	if len(buf) != e.SizeSSZ() {
		return errSize("Eth1Data", e.SizeSSZ(), len(buf))
	}
	e.DepositRoot = bytesutil.ToBytes32(buf[0:32])
	e.DepositCount = bytesutil.FromBytes8(buf[32:40])
	e.BlockHash = bytesutil.ToBytes32(buf[40:72])
	return nil
}

// HashTreeRoot computes the SSZ merkle root of e.
func (e *Eth1Data) HashTreeRoot() ([32]byte, error) {
	hh := ssz.NewHasher()
	defer ssz.PutHasher(hh)
	indx := hh.Index()
	hh.PutBytes(e.DepositRoot[:])
	hh.PutUint64(e.DepositCount)
	hh.PutBytes(e.BlockHash[:])
	hh.Merkleize(indx)
	return hh.HashRoot()
}
