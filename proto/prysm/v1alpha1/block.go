package v1alpha1

import (	"github.com/eth2core/beacon-transition/config/params"
	"github.com/eth2core/beacon-transition/encoding/ssz"
)

// BeaconBlockBody carries the six operation lists a block proposes plus
// randao reveal and eth1 vote.
type BeaconBlockBody struct {
	RandaoReveal [96]byte
	Eth1Data *Eth1Data
	Graffiti [32]byte
	ProposerSlashings []*ProposerSlashing
	AttesterSlashings []*AttesterSlashing
	Attestations []*Attestation
	Deposits []*Deposit
	VoluntaryExits []*SignedVoluntaryExit
	Transfers []*Transfer
}

// Copy returns a deep copy of b.
func (b *BeaconBlockBody) Copy() *BeaconBlockBody {
	if b == nil {
		return nil
	}
	cpy := &BeaconBlockBody{
		RandaoReveal: b.RandaoReveal,
		Eth1Data: b.Eth1Data.Copy(),
		Graffiti: b.Graffiti,
	}
	for _, s := range b.ProposerSlashings {
		cpy.ProposerSlashings = append(cpy.ProposerSlashings, s.Copy())
	}
	for _, s := range b.AttesterSlashings {
		cpy.AttesterSlashings = append(cpy.AttesterSlashings, s.Copy())
	}
	for _, a := range b.Attestations {
		cpy.Attestations = append(cpy.Attestations, a.Copy())
	}
	for _, d := range b.Deposits {
		cpy.Deposits = append(cpy.Deposits, d.Copy())
	}
	for _, e := range b.VoluntaryExits {
		cpy.VoluntaryExits = append(cpy.VoluntaryExits, e.Copy())
	}
	for _, t := range b.Transfers {
		cpy.Transfers = append(cpy.Transfers, t.Copy())
	}
	return cpy
}

// HashTreeRoot computes the SSZ merkle root of b. Each operation list is a
// variable-length SSZ list, so its sub-root mixes in the element count
// against the MAX_* bound from config rather than merkleizing a fixed
// vector.
func (b *BeaconBlockBody) HashTreeRoot() ([32]byte, error) {
	cfg := params.BeaconConfig()
	hh := ssz.NewHasher()
	defer ssz.PutHasher(hh)
	indx := hh.Index()

	hh.PutBytes(b.RandaoReveal[:])

	eth1Root, err := b.Eth1Data.HashTreeRoot()
	if err != nil {
		return [32]byte{}, err
	}
	hh.PutBytes(eth1Root[:])

	hh.PutBytes(b.Graffiti[:])

	psIndx := hh.Index()
	for _, s := range b.ProposerSlashings {
		r, err := s.HashTreeRoot()
		if err != nil {
			return [32]byte{}, err
		}
		hh.PutBytes(r[:])
	}
	hh.MerkleizeWithMixin(psIndx, uint64(len(b.ProposerSlashings)), cfg.MaxProposerSlashings)

	asIndx := hh.Index()
	for _, s := range b.AttesterSlashings {
		r, err := s.HashTreeRoot()
		if err != nil {
			return [32]byte{}, err
		}
		hh.PutBytes(r[:])
	}
	hh.MerkleizeWithMixin(asIndx, uint64(len(b.AttesterSlashings)), cfg.MaxAttesterSlashings)

	attIndx := hh.Index()
	for _, a := range b.Attestations {
		r, err := a.HashTreeRoot()
		if err != nil {
			return [32]byte{}, err
		}
		hh.PutBytes(r[:])
	}
	hh.MerkleizeWithMixin(attIndx, uint64(len(b.Attestations)), cfg.MaxAttestations)

	depIndx := hh.Index()
	for _, d := range b.Deposits {
		r, err := d.HashTreeRoot()
		if err != nil {
			return [32]byte{}, err
		}
		hh.PutBytes(r[:])
	}
	hh.MerkleizeWithMixin(depIndx, uint64(len(b.Deposits)), cfg.MaxDeposits)

	exitIndx := hh.Index()
	for _, e := range b.VoluntaryExits {
		r, err := e.HashTreeRoot()
		if err != nil {
			return [32]byte{}, err
		}
		hh.PutBytes(r[:])
	}
	hh.MerkleizeWithMixin(exitIndx, uint64(len(b.VoluntaryExits)), cfg.MaxVoluntaryExits)

	transferIndx := hh.Index()
	for _, t := range b.Transfers {
		r, err := t.HashTreeRoot()
		if err != nil {
			return [32]byte{}, err
		}
		hh.PutBytes(r[:])
	}
	hh.MerkleizeWithMixin(transferIndx, uint64(len(b.Transfers)), cfg.MaxTransfers)

	hh.Merkleize(indx)
	return hh.HashRoot()
}

// BeaconBlock is an unsigned proposal.
type BeaconBlock struct {
	Slot uint64
	ParentRoot [32]byte
	StateRoot [32]byte
	Body *BeaconBlockBody
}

// Copy returns a deep copy of blk.
func (blk *BeaconBlock) Copy() *BeaconBlock {
	if blk == nil {
		return nil
	}
	return &BeaconBlock{
		Slot: blk.Slot,
		ParentRoot: blk.ParentRoot,
		StateRoot: blk.StateRoot,
		Body: blk.Body.Copy(),
	}
}

// HashTreeRoot computes the SSZ merkle root of blk.
func (blk *BeaconBlock) HashTreeRoot() ([32]byte, error) {
	hh := ssz.NewHasher()
	defer ssz.PutHasher(hh)
	indx := hh.Index()
	hh.PutUint64(blk.Slot)
	hh.PutBytes(blk.ParentRoot[:])
	hh.PutBytes(blk.StateRoot[:])
	bodyRoot, err := blk.Body.HashTreeRoot()
	if err != nil {
		return [32]byte{}, err
	}
	hh.PutBytes(bodyRoot[:])
	hh.Merkleize(indx)
	return hh.HashRoot()
}

// SignedBeaconBlock is a BeaconBlock plus the proposer's signature over
// its signing root (the signing root is the block's HashTreeRoot,
// computed before the signature field exists on the wire type at all).
type SignedBeaconBlock struct {
	Block *BeaconBlock
	Signature [96]byte
}

// Copy returns a deep copy of s.
func (s *SignedBeaconBlock) Copy() *SignedBeaconBlock {
	if s == nil {
		return nil
	}
	return &SignedBeaconBlock{Block: s.Block.Copy(), Signature: s.Signature}
}
