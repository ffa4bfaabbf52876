package v1alpha1

import (	"github.com/eth2core/beacon-transition/encoding/bytesutil"
	"github.com/eth2core/beacon-transition/encoding/ssz"
)

// VoluntaryExit is a validator's signed request to leave the registry.
type VoluntaryExit struct {
	Epoch uint64
	ValidatorIndex uint64
}

// Copy returns a deep copy of e.
func (e *VoluntaryExit) Copy() *VoluntaryExit {
	if e == nil {
		return nil
	}
	cpy := *e
	return &cpy
}

// SizeSSZ returns the fixed SSZ-encoded size of a VoluntaryExit.
func (e *VoluntaryExit) SizeSSZ() int { return 8 + 8 }

// MarshalSSZ returns the SSZ encoding of e.
func (e *VoluntaryExit) MarshalSSZ() ([]byte, error) {
	return e.MarshalSSZTo(make([]byte, 0, e.SizeSSZ()))
}

// MarshalSSZTo appends the SSZ encoding of e to dst.
func (e *VoluntaryExit) MarshalSSZTo(dst []byte) ([]byte, error) {
	dst = append(dst, bytesutil.Bytes8(e.Epoch)...)
	dst = append(dst, bytesutil.Bytes8(e.ValidatorIndex)...)
	return dst, nil
}

// UnmarshalSSZ decodes buf into e.
func (e *VoluntaryExit) UnmarshalSSZ(buf []byte) error {
	if len(buf) != e.SizeSSZ() {
		return errSize("VoluntaryExit", e.SizeSSZ(), len(buf))
	}
	e.Epoch = bytesutil.FromBytes8(buf[0:8])
	e.ValidatorIndex = bytesutil.FromBytes8(buf[8:16])
	return nil
}

// HashTreeRoot computes the SSZ merkle root of e.
func (e *VoluntaryExit) HashTreeRoot() ([32]byte, error) {
	hh := ssz.NewHasher()
	defer ssz.PutHasher(hh)
	indx := hh.Index()
	hh.PutUint64(e.Epoch)
	hh.PutUint64(e.ValidatorIndex)
	hh.Merkleize(indx)
	return hh.HashRoot()
}

// SignedVoluntaryExit is a VoluntaryExit together with the exiting
// validator's BLS signature over it.
type SignedVoluntaryExit struct {
	Exit *VoluntaryExit
	Signature [96]byte
}

// Copy returns a deep copy of s.
func (s *SignedVoluntaryExit) Copy() *SignedVoluntaryExit {
	if s == nil {
		return nil
	}
	return &SignedVoluntaryExit{Exit: s.Exit.Copy(), Signature: s.Signature}
}

// HashTreeRoot computes the SSZ merkle root of s, including the signature.
func (s *SignedVoluntaryExit) HashTreeRoot() ([32]byte, error) {
	hh := ssz.NewHasher()
	defer ssz.PutHasher(hh)
	indx := hh.Index()
	exitRoot, err := s.Exit.HashTreeRoot()
	if err != nil {
		return [32]byte{}, err
	}
	hh.PutBytes(exitRoot[:])
	hh.PutBytes(s.Signature[:])
	hh.Merkleize(indx)
	return hh.HashRoot()
}
