package v1alpha1

import (	"github.com/eth2core/beacon-transition/encoding/bytesutil"
	"github.com/eth2core/beacon-transition/encoding/ssz"
)

// BeaconBlockHeader is the unsealed (unsigned) block header.
type BeaconBlockHeader struct {
	Slot uint64
	ParentRoot [32]byte
	StateRoot [32]byte
	BodyRoot [32]byte
}

// Copy returns a deep copy of h.
func (h *BeaconBlockHeader) Copy() *BeaconBlockHeader {
	if h == nil {
		return nil
	}
	cpy := *h
	return &cpy
}

// SizeSSZ returns the fixed SSZ-encoded size of a BeaconBlockHeader.
func (h *BeaconBlockHeader) SizeSSZ() int { return 8 + 32 + 32 + 32 }

// MarshalSSZ returns the SSZ encoding of h.
func (h *BeaconBlockHeader) MarshalSSZ() ([]byte, error) {
	return h.MarshalSSZTo(make([]byte, 0, h.SizeSSZ()))
}

// MarshalSSZTo appends the SSZ encoding of h to dst.
func (h *BeaconBlockHeader) MarshalSSZTo(dst []byte) ([]byte, error) {
	dst = append(dst, bytesutil.Bytes8(h.Slot)...)
	dst = append(dst, h.ParentRoot[:]...)
	dst = append(dst, h.StateRoot[:]...)
	dst = append(dst, h.BodyRoot[:]...)
	return dst, nil
}

// UnmarshalSSZ decodes buf into h.
func (h *BeaconBlockHeader) UnmarshalSSZ(buf []byte) error {
	if len(buf) != h.SizeSSZ() {
		return errSize("BeaconBlockHeader", h.SizeSSZ(), len(buf))
	}
	h.Slot = bytesutil.FromBytes8(buf[0:8])
	h.ParentRoot = bytesutil.ToBytes32(buf[8:40])
	h.StateRoot = bytesutil.ToBytes32(buf[40:72])
	h.BodyRoot = bytesutil.ToBytes32(buf[72:104])
	return nil
}

// HashTreeRoot computes the signing root of h: "a dedicated
// signing_root omits the trailing signature field." BeaconBlockHeader
// never carries a signature (see SignedBeaconBlockHeader), so its
// HashTreeRoot and signing root coincide.
func (h *BeaconBlockHeader) HashTreeRoot() ([32]byte, error) {
	hh := ssz.NewHasher()
	defer ssz.PutHasher(hh)
	indx := hh.Index()
	hh.PutUint64(h.Slot)
	hh.PutBytes(h.ParentRoot[:])
	hh.PutBytes(h.StateRoot[:])
	hh.PutBytes(h.BodyRoot[:])
	hh.Merkleize(indx)
	return hh.HashRoot()
}

// SignedBeaconBlockHeader is a sealed header: the header plus the
// proposer's BLS signature over its signing root.
type SignedBeaconBlockHeader struct {
	Header *BeaconBlockHeader
	Signature [96]byte
}

// Copy returns a deep copy of s.
func (s *SignedBeaconBlockHeader) Copy() *SignedBeaconBlockHeader {
	if s == nil {
		return nil
	}
	return &SignedBeaconBlockHeader{Header: s.Header.Copy(), Signature: s.Signature}
}

// HashTreeRoot computes the SSZ merkle root of the signed header,
// including the signature.
func (s *SignedBeaconBlockHeader) HashTreeRoot() ([32]byte, error) {
	hh := ssz.NewHasher()
	defer ssz.PutHasher(hh)
	indx := hh.Index()
	headerRoot, err := s.Header.HashTreeRoot()
	if err != nil {
		return [32]byte{}, err
	}
	hh.PutBytes(headerRoot[:])
	hh.PutBytes(s.Signature[:])
	hh.Merkleize(indx)
	return hh.HashRoot()
}
