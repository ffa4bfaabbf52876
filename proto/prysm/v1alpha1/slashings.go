package v1alpha1

import "github.com/eth2core/beacon-transition/encoding/ssz"

// ProposerSlashing proves a proposer signed two distinct headers for the
// same slot.
type ProposerSlashing struct {
	ProposerIndex uint64
	Header1 *SignedBeaconBlockHeader
	Header2 *SignedBeaconBlockHeader
}

// Copy returns a deep copy of s.
func (s *ProposerSlashing) Copy() *ProposerSlashing {
	if s == nil {
		return nil
	}
	return &ProposerSlashing{
		ProposerIndex: s.ProposerIndex,
		Header1: s.Header1.Copy(),
		Header2: s.Header2.Copy(),
	}
}

// HashTreeRoot computes the SSZ merkle root of s.
func (s *ProposerSlashing) HashTreeRoot() ([32]byte, error) {
	hh := ssz.NewHasher()
	defer ssz.PutHasher(hh)
	indx := hh.Index()
	hh.PutUint64(s.ProposerIndex)
	r1, err := s.Header1.HashTreeRoot()
	if err != nil {
		return [32]byte{}, err
	}
	hh.PutBytes(r1[:])
	r2, err := s.Header2.HashTreeRoot()
	if err != nil {
		return [32]byte{}, err
	}
	hh.PutBytes(r2[:])
	hh.Merkleize(indx)
	return hh.HashRoot()
}

// AttesterSlashing proves a set of validators jointly signed two
// IndexedAttestations that are mutually slashable.
type AttesterSlashing struct {
	Attestation1 *IndexedAttestation
	Attestation2 *IndexedAttestation
}

// Copy returns a deep copy of s.
func (s *AttesterSlashing) Copy() *AttesterSlashing {
	if s == nil {
		return nil
	}
	return &AttesterSlashing{
		Attestation1: s.Attestation1.Copy(),
		Attestation2: s.Attestation2.Copy(),
	}
}

// HashTreeRoot computes the SSZ merkle root of s.
func (s *AttesterSlashing) HashTreeRoot() ([32]byte, error) {
	hh := ssz.NewHasher()
	defer ssz.PutHasher(hh)
	indx := hh.Index()
	r1, err := s.Attestation1.HashTreeRoot()
	if err != nil {
		return [32]byte{}, err
	}
	hh.PutBytes(r1[:])
	r2, err := s.Attestation2.HashTreeRoot()
	if err != nil {
		return [32]byte{}, err
	}
	hh.PutBytes(r2[:])
	hh.Merkleize(indx)
	return hh.HashRoot()
}
