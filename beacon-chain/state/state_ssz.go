package state

import (	"github.com/eth2core/beacon-transition/config/params"
	"github.com/eth2core/beacon-transition/encoding/ssz"
)

// HashTreeRoot computes the SSZ merkle root of the entire state, in field
// order per. Per-slot advance calls this once per
// slot to populate state_roots; it is also how two independent
// implementations compare post-states.
func (s *BeaconState) HashTreeRoot() ([32]byte, error) {
	cfg := params.BeaconConfig()
	hh := ssz.NewHasher()
	defer ssz.PutHasher(hh)
	indx := hh.Index()

	hh.PutUint64(s.genesisTime)
	hh.PutUint64(s.slot)

	forkRoot, err := s.fork.HashTreeRoot()
	if err != nil {
		return [32]byte{}, err
	}
	hh.PutBytes(forkRoot[:])

	headerRoot, err := s.latestBlockHeader.HashTreeRoot()
	if err != nil {
		return [32]byte{}, err
	}
	hh.PutBytes(headerRoot[:])

	blockRootsIndx := hh.Index()
	for _, r := range s.blockRoots {
		hh.PutBytes(r[:])
	}
	hh.Merkleize(blockRootsIndx)

	stateRootsIndx := hh.Index()
	for _, r := range s.stateRoots {
		hh.PutBytes(r[:])
	}
	hh.Merkleize(stateRootsIndx)

	histIndx := hh.Index()
	for _, r := range s.historicalRoots {
		hh.PutBytes(r[:])
	}
	hh.MerkleizeWithMixin(histIndx, uint64(len(s.historicalRoots)), cfg.HistoricalRootsLimit)

	eth1Root, err := s.eth1Data.HashTreeRoot()
	if err != nil {
		return [32]byte{}, err
	}
	hh.PutBytes(eth1Root[:])

	votesIndx := hh.Index()
	for _, v := range s.eth1DataVotes {
		r, err := v.HashTreeRoot()
		if err != nil {
			return [32]byte{}, err
		}
		hh.PutBytes(r[:])
	}
	hh.MerkleizeWithMixin(votesIndx, uint64(len(s.eth1DataVotes)), cfg.SlotsPerEth1VotingPeriod)

	hh.PutUint64(s.eth1DepositIndex)

	validatorsIndx := hh.Index()
	for _, v := range s.validators {
		r, err := v.HashTreeRoot()
		if err != nil {
			return [32]byte{}, err
		}
		hh.PutBytes(r[:])
	}
	hh.MerkleizeWithMixin(validatorsIndx, uint64(len(s.validators)), cfg.ValidatorRegistryLimit)

	hh.PutUint64Array(s.balances, cfg.ValidatorRegistryLimit)

	hh.PutUint64(s.startShard)

	randaoIndx := hh.Index()
	for _, r := range s.randaoMixes {
		hh.PutBytes(r[:])
	}
	hh.Merkleize(randaoIndx)

	activeIdxIndx := hh.Index()
	for _, r := range s.activeIndexRoots {
		hh.PutBytes(r[:])
	}
	hh.Merkleize(activeIdxIndx)

	compactIndx := hh.Index()
	for _, r := range s.compactCommitteeRoots {
		hh.PutBytes(r[:])
	}
	hh.Merkleize(compactIndx)

	hh.PutUint64Array(s.slashings)

	prevAttIndx := hh.Index()
	for _, a := range s.previousEpochAttestations {
		r, err := a.HashTreeRoot()
		if err != nil {
			return [32]byte{}, err
		}
		hh.PutBytes(r[:])
	}
	hh.MerkleizeWithMixin(prevAttIndx, uint64(len(s.previousEpochAttestations)), cfg.MaxAttestations*cfg.SlotsPerEpoch)

	curAttIndx := hh.Index()
	for _, a := range s.currentEpochAttestations {
		r, err := a.HashTreeRoot()
		if err != nil {
			return [32]byte{}, err
		}
		hh.PutBytes(r[:])
	}
	hh.MerkleizeWithMixin(curAttIndx, uint64(len(s.currentEpochAttestations)), cfg.MaxAttestations*cfg.SlotsPerEpoch)

	prevCrossIndx := hh.Index()
	for _, c := range s.previousCrosslinks {
		r, err := c.HashTreeRoot()
		if err != nil {
			return [32]byte{}, err
		}
		hh.PutBytes(r[:])
	}
	hh.Merkleize(prevCrossIndx)

	curCrossIndx := hh.Index()
	for _, c := range s.currentCrosslinks {
		r, err := c.HashTreeRoot()
		if err != nil {
			return [32]byte{}, err
		}
		hh.PutBytes(r[:])
	}
	hh.Merkleize(curCrossIndx)

	hh.PutBytes([]byte{s.justificationBits})

	prevJustRoot, err := s.previousJustifiedCheckpoint.HashTreeRoot()
	if err != nil {
		return [32]byte{}, err
	}
	hh.PutBytes(prevJustRoot[:])

	curJustRoot, err := s.currentJustifiedCheckpoint.HashTreeRoot()
	if err != nil {
		return [32]byte{}, err
	}
	hh.PutBytes(curJustRoot[:])

	finalizedRoot, err := s.finalizedCheckpoint.HashTreeRoot()
	if err != nil {
		return [32]byte{}, err
	}
	hh.PutBytes(finalizedRoot[:])

	hh.Merkleize(indx)
	return hh.HashRoot()
}
