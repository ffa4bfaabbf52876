package v1alpha1

import (	"github.com/eth2core/beacon-transition/encoding/ssz"
	bitfield "github.com/prysmaticlabs/go-bitfield"
)

// Attestation is the wire form a validator's vote for a block takes
// : committee aggregation and custody bits over AttestationData,
// plus the aggregate BLS signature.
type Attestation struct {
	AggregationBits bitfield.Bitlist
	CustodyBits bitfield.Bitlist
	Data *AttestationData
	Signature [96]byte
}

// Copy returns a deep copy of a.
func (a *Attestation) Copy() *Attestation {
	if a == nil {
		return nil
	}
	return &Attestation{
		AggregationBits: a.AggregationBits.Clone,
		CustodyBits: a.CustodyBits.Clone,
		Data: a.Data.Copy(),
		Signature: a.Signature,
	}
}

// HashTreeRoot computes the SSZ merkle root of a.
func (a *Attestation) HashTreeRoot() ([32]byte, error) {
	hh := ssz.NewHasher()
	defer ssz.PutHasher(hh)
	indx := hh.Index()

	aggRoot, err := bitlistRoot(a.AggregationBits, maxValidatorsPerCommittee)
	if err != nil {
		return [32]byte{}, err
	}
	hh.PutBytes(aggRoot[:])

	custodyRoot, err := bitlistRoot(a.CustodyBits, maxValidatorsPerCommittee)
	if err != nil {
		return [32]byte{}, err
	}
	hh.PutBytes(custodyRoot[:])

	dataRoot, err := a.Data.HashTreeRoot()
	if err != nil {
		return [32]byte{}, err
	}
	hh.PutBytes(dataRoot[:])

	hh.PutBytes(a.Signature[:])
	hh.Merkleize(indx)
	return hh.HashRoot()
}

// PendingAttestation is the bucketed record of an accepted attestation
// kept in state.PreviousEpochAttestations()/CurrentEpochAttestations.
type PendingAttestation struct {
	AggregationBits bitfield.Bitlist
	Data *AttestationData
	InclusionDelay uint64
	ProposerIndex uint64
}

// Copy returns a deep copy of p.
func (p *PendingAttestation) Copy() *PendingAttestation {
	if p == nil {
		return nil
	}
	return &PendingAttestation{
		AggregationBits: p.AggregationBits.Clone,
		Data: p.Data.Copy(),
		InclusionDelay: p.InclusionDelay,
		ProposerIndex: p.ProposerIndex,
	}
}

// HashTreeRoot computes the SSZ merkle root of p.
func (p *PendingAttestation) HashTreeRoot() ([32]byte, error) {
	hh := ssz.NewHasher()
	defer ssz.PutHasher(hh)
	indx := hh.Index()

	aggRoot, err := bitlistRoot(p.AggregationBits, maxValidatorsPerCommittee)
	if err != nil {
		return [32]byte{}, err
	}
	hh.PutBytes(aggRoot[:])

	dataRoot, err := p.Data.HashTreeRoot()
	if err != nil {
		return [32]byte{}, err
	}
	hh.PutBytes(dataRoot[:])

	hh.PutUint64(p.InclusionDelay)
	hh.PutUint64(p.ProposerIndex)
	hh.Merkleize(indx)
	return hh.HashRoot()
}

// IndexedAttestation is the validator-index form of an Attestation used
// for slashing checks and signature verification.
type IndexedAttestation struct {
	CustodyBit0Indices []uint64
	CustodyBit1Indices []uint64
	Data *AttestationData
	Signature [96]byte
}

// Copy returns a deep copy of ia.
func (ia *IndexedAttestation) Copy() *IndexedAttestation {
	if ia == nil {
		return nil
	}
	bit0 := make([]uint64, len(ia.CustodyBit0Indices))
	copy(bit0, ia.CustodyBit0Indices)
	bit1 := make([]uint64, len(ia.CustodyBit1Indices))
	copy(bit1, ia.CustodyBit1Indices)
	return &IndexedAttestation{
		CustodyBit0Indices: bit0,
		CustodyBit1Indices: bit1,
		Data: ia.Data.Copy(),
		Signature: ia.Signature,
	}
}

// HashTreeRoot computes the SSZ merkle root of ia.
func (ia *IndexedAttestation) HashTreeRoot() ([32]byte, error) {
	hh := ssz.NewHasher()
	defer ssz.PutHasher(hh)
	indx := hh.Index()

	bit0Root, err := uint64ListRoot(ia.CustodyBit0Indices, maxValidatorsPerCommittee)
	if err != nil {
		return [32]byte{}, err
	}
	hh.PutBytes(bit0Root[:])

	bit1Root, err := uint64ListRoot(ia.CustodyBit1Indices, maxValidatorsPerCommittee)
	if err != nil {
		return [32]byte{}, err
	}
	hh.PutBytes(bit1Root[:])

	dataRoot, err := ia.Data.HashTreeRoot()
	if err != nil {
		return [32]byte{}, err
	}
	hh.PutBytes(dataRoot[:])

	hh.PutBytes(ia.Signature[:])
	hh.Merkleize(indx)
	return hh.HashRoot()
}

// maxValidatorsPerCommittee bounds the two index lists and the
// aggregation/custody bitlists. It is a compile-time ceiling on the SSZ
// list capacity, independent of the runtime committee-size config a
// particular BeaconConfig chooses; the MAX_VALIDATORS_PER_COMMITTEE
// is always well under this for both mainnet and minimal profiles.
const maxValidatorsPerCommittee = 1 << 12

// bitlistRoot computes the sub-root of a bitlist field the way generated
// fastssz code does: hh.PutBitlist handles the delimiter-bit parsing and
// length mixin itself, so the only job here is pooling a scratch hasher.
func bitlistRoot(b bitfield.Bitlist, limit uint64) ([32]byte, error) {
	hh := ssz.NewHasher()
	defer ssz.PutHasher(hh)
	hh.PutBitlist(b, limit)
	return hh.HashRoot()
}

func uint64ListRoot(indices []uint64, limit uint64) ([32]byte, error) {
	hh := ssz.NewHasher()
	defer ssz.PutHasher(hh)
	hh.PutUint64Array(indices, limit)
	return hh.HashRoot()
}
