// Package v1alpha1 holds the beacon-chain domain types: plain Go structs
// shaped exactly like Prysm's generated
// proto/prysm/v1alpha1 protobuf messages, each carrying hand-written SSZ
// Marshal/Unmarshal/HashTreeRoot methods in the same style
// protoc-gen-go-cast + fastssz codegen would produce. See DESIGN.md for
// why these are plain structs rather than generated .pb.go files.
package v1alpha1

import (	"github.com/eth2core/beacon-transition/encoding/bytesutil"
	"github.com/eth2core/beacon-transition/encoding/ssz"
)

// Fork records the previous and current fork versions and the epoch the
// fork occurred at, used to compute signature domains.
type Fork struct {
	PreviousVersion [4]byte
	CurrentVersion [4]byte
	Epoch uint64
}

// Copy returns a deep copy of f.
func (f *Fork) Copy() *Fork {
	if f == nil {
		return nil
	}
	return &Fork{
		PreviousVersion: f.PreviousVersion,
		CurrentVersion: f.CurrentVersion,
		Epoch: f.Epoch,
	}
}

// SizeSSZ returns the fixed SSZ-encoded size of a Fork.
func (f *Fork) SizeSSZ() int { return 4 + 4 + 8 }

// MarshalSSZ returns the SSZ encoding of f.
func (f *Fork) MarshalSSZ() ([]byte, error) {
	return f.MarshalSSZTo(make([]byte, 0, f.SizeSSZ()))
}

// MarshalSSZTo appends the SSZ encoding of f to dst.
func (f *Fork) MarshalSSZTo(dst []byte) ([]byte, error) {
	dst = append(dst, f.PreviousVersion[:]...)
	dst = append(dst, f.CurrentVersion[:]...)
	dst = append(dst, bytesutil.Bytes8(f.Epoch)...)
	return dst, nil
}

// UnmarshalSSZ decodes buf into f.
func (f *Fork) UnmarshalSSZ(buf []byte) error {
	if len(buf) != f.SizeSSZ() {
		return errSize("Fork", f.SizeSSZ(), len(buf))
	}
	f.PreviousVersion = bytesutil.ToBytes4(buf[0:4])
	f.CurrentVersion = bytesutil.ToBytes4(buf[4:8])
	f.Epoch = bytesutil.FromBytes8(buf[8:16])
	return nil
}

// HashTreeRoot computes the SSZ merkle root of f.
func (f *Fork) HashTreeRoot() ([32]byte, error) {
	hh := ssz.NewHasher()
	defer ssz.PutHasher(hh)
	indx := hh.Index()
	hh.PutBytes(f.PreviousVersion[:])
	hh.PutBytes(f.CurrentVersion[:])
	hh.PutUint64(f.Epoch)
	hh.Merkleize(indx)
	return hh.HashRoot()
}
