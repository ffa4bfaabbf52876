// Package state defines the beacon state root aggregate and
// the accessors the transition core uses to read and mutate it. Grounded
// on Prysm's beacon-chain/state package layout (a getter/setter facade
// over a single struct) and on the field list in
// executive/../state.rs's BeaconState as referenced throughout
// original_source/beacon/src/executive/.
package state

import (	v1alpha1 "github.com/eth2core/beacon-transition/proto/prysm/v1alpha1"
)

// BeaconState is the root aggregate the transition core owns exclusively
// for the duration of a single call.
type BeaconState struct {
	genesisTime uint64
	slot uint64
	fork *v1alpha1.Fork

	latestBlockHeader *v1alpha1.BeaconBlockHeader

	blockRoots [][32]byte
	stateRoots [][32]byte

	historicalRoots [][32]byte

	eth1Data *v1alpha1.Eth1Data
	eth1DataVotes []*v1alpha1.Eth1Data
	eth1DepositIndex uint64

	validators []*v1alpha1.Validator
	balances []uint64

	startShard uint64
	randaoMixes [][32]byte
	activeIndexRoots [][32]byte
	compactCommitteeRoots [][32]byte
	slashings []uint64

	previousEpochAttestations []*v1alpha1.PendingAttestation
	currentEpochAttestations []*v1alpha1.PendingAttestation

	previousCrosslinks []*v1alpha1.Crosslink
	currentCrosslinks []*v1alpha1.Crosslink

	justificationBits byte

	previousJustifiedCheckpoint *v1alpha1.Checkpoint
	currentJustifiedCheckpoint *v1alpha1.Checkpoint
	finalizedCheckpoint *v1alpha1.Checkpoint
}

// New constructs an empty BeaconState with all vectors sized to their
// config-derived lengths, left zeroed. Callers (genesis construction,
// test fixtures) fill it in from there.
func New(shardCount, slotsPerHistoricalRoot, epochsPerHistoricalVector, epochsPerSlashingsVector uint64) *BeaconState {
	s := &BeaconState{
		fork: &v1alpha1.Fork{},
		latestBlockHeader: &v1alpha1.BeaconBlockHeader{},
		blockRoots: make([][32]byte, slotsPerHistoricalRoot),
		stateRoots: make([][32]byte, slotsPerHistoricalRoot),
		eth1Data: &v1alpha1.Eth1Data{},
		randaoMixes: make([][32]byte, epochsPerHistoricalVector),
		activeIndexRoots: make([][32]byte, epochsPerHistoricalVector),
		compactCommitteeRoots: make([][32]byte, epochsPerHistoricalVector),
		slashings: make([]uint64, epochsPerSlashingsVector),
		previousCrosslinks: make([]*v1alpha1.Crosslink, shardCount),
		currentCrosslinks: make([]*v1alpha1.Crosslink, shardCount),
		previousJustifiedCheckpoint: &v1alpha1.Checkpoint{},
		currentJustifiedCheckpoint: &v1alpha1.Checkpoint{},
		finalizedCheckpoint: &v1alpha1.Checkpoint{},
	}
	for i := range s.previousCrosslinks {
		s.previousCrosslinks[i] = &v1alpha1.Crosslink{}
		s.currentCrosslinks[i] = &v1alpha1.Crosslink{}
	}
	return s
}

// --- simple scalar accessors ---

func (s *BeaconState) GenesisTime() uint64 { return s.genesisTime }
func (s *BeaconState) SetGenesisTime(t uint64) { s.genesisTime = t }

func (s *BeaconState) Slot() uint64 { return s.slot }
func (s *BeaconState) SetSlot(slot uint64) { s.slot = slot }

func (s *BeaconState) Fork() *v1alpha1.Fork { return s.fork.Copy() }
func (s *BeaconState) SetFork(f *v1alpha1.Fork) { s.fork = f.Copy() }

func (s *BeaconState) LatestBlockHeader() *v1alpha1.BeaconBlockHeader {
	return s.latestBlockHeader.Copy()
}
func (s *BeaconState) SetLatestBlockHeader(h *v1alpha1.BeaconBlockHeader) {
	s.latestBlockHeader = h.Copy()
}

func (s *BeaconState) Eth1Data() *v1alpha1.Eth1Data { return s.eth1Data.Copy() }
func (s *BeaconState) SetEth1Data(e *v1alpha1.Eth1Data) { s.eth1Data = e.Copy() }

func (s *BeaconState) Eth1DataVotes() []*v1alpha1.Eth1Data {
	out := make([]*v1alpha1.Eth1Data, len(s.eth1DataVotes))
	for i, v := range s.eth1DataVotes {
		out[i] = v.Copy()
	}
	return out
}
func (s *BeaconState) AppendEth1DataVote(e *v1alpha1.Eth1Data) {
	s.eth1DataVotes = append(s.eth1DataVotes, e.Copy())
}
func (s *BeaconState) SetEth1DataVotes(v []*v1alpha1.Eth1Data) {
	s.eth1DataVotes = s.eth1DataVotes[:0]
	for _, e := range v {
		s.eth1DataVotes = append(s.eth1DataVotes, e.Copy())
	}
}

func (s *BeaconState) Eth1DepositIndex() uint64 { return s.eth1DepositIndex }
func (s *BeaconState) SetEth1DepositIndex(idx uint64) { s.eth1DepositIndex = idx }

func (s *BeaconState) StartShard() uint64 { return s.startShard }
func (s *BeaconState) SetStartShard(shard uint64) { s.startShard = shard }

func (s *BeaconState) JustificationBits() byte { return s.justificationBits }
func (s *BeaconState) SetJustificationBits(b byte) { s.justificationBits = b }

func (s *BeaconState) PreviousJustifiedCheckpoint() *v1alpha1.Checkpoint {
	return s.previousJustifiedCheckpoint.Copy()
}
func (s *BeaconState) SetPreviousJustifiedCheckpoint(c *v1alpha1.Checkpoint) {
	s.previousJustifiedCheckpoint = c.Copy()
}
func (s *BeaconState) CurrentJustifiedCheckpoint() *v1alpha1.Checkpoint {
	return s.currentJustifiedCheckpoint.Copy()
}
func (s *BeaconState) SetCurrentJustifiedCheckpoint(c *v1alpha1.Checkpoint) {
	s.currentJustifiedCheckpoint = c.Copy()
}
func (s *BeaconState) FinalizedCheckpoint() *v1alpha1.Checkpoint {
	return s.finalizedCheckpoint.Copy()
}
func (s *BeaconState) SetFinalizedCheckpoint(c *v1alpha1.Checkpoint) {
	s.finalizedCheckpoint = c.Copy()
}

// --- fixed-length, slot/epoch-indexed vectors ---

func (s *BeaconState) BlockRootAtIndex(i uint64) [32]byte {
	return s.blockRoots[i%uint64(len(s.blockRoots))]
}
func (s *BeaconState) SetBlockRootAtIndex(i uint64, root [32]byte) {
	s.blockRoots[i%uint64(len(s.blockRoots))] = root
}

func (s *BeaconState) StateRootAtIndex(i uint64) [32]byte {
	return s.stateRoots[i%uint64(len(s.stateRoots))]
}
func (s *BeaconState) SetStateRootAtIndex(i uint64, root [32]byte) {
	s.stateRoots[i%uint64(len(s.stateRoots))] = root
}

func (s *BeaconState) HistoricalRoots() [][32]byte {
	out := make([][32]byte, len(s.historicalRoots))
	copy(out, s.historicalRoots)
	return out
}
func (s *BeaconState) AppendHistoricalRoot(root [32]byte) {
	s.historicalRoots = append(s.historicalRoots, root)
}

func (s *BeaconState) RandaoMixAtIndex(i uint64) [32]byte {
	return s.randaoMixes[i%uint64(len(s.randaoMixes))]
}
func (s *BeaconState) SetRandaoMixAtIndex(i uint64, mix [32]byte) {
	s.randaoMixes[i%uint64(len(s.randaoMixes))] = mix
}
func (s *BeaconState) RandaoMixesLength() uint64 { return uint64(len(s.randaoMixes)) }

func (s *BeaconState) ActiveIndexRootAtIndex(i uint64) [32]byte {
	return s.activeIndexRoots[i%uint64(len(s.activeIndexRoots))]
}
func (s *BeaconState) SetActiveIndexRootAtIndex(i uint64, root [32]byte) {
	s.activeIndexRoots[i%uint64(len(s.activeIndexRoots))] = root
}

func (s *BeaconState) CompactCommitteeRootAtIndex(i uint64) [32]byte {
	return s.compactCommitteeRoots[i%uint64(len(s.compactCommitteeRoots))]
}
func (s *BeaconState) SetCompactCommitteeRootAtIndex(i uint64, root [32]byte) {
	s.compactCommitteeRoots[i%uint64(len(s.compactCommitteeRoots))] = root
}

func (s *BeaconState) SlashingAtIndex(i uint64) uint64 {
	return s.slashings[i%uint64(len(s.slashings))]
}
func (s *BeaconState) SetSlashingAtIndex(i uint64, amount uint64) {
	s.slashings[i%uint64(len(s.slashings))] = amount
}
func (s *BeaconState) SlashingsLength() uint64 { return uint64(len(s.slashings)) }
func (s *BeaconState) TotalSlashings() uint64 {
	var sum uint64
	for _, v := range s.slashings {
		sum += v
	}
	return sum
}

// --- validator registry & balances ---

func (s *BeaconState) NumValidators() int { return len(s.validators) }

func (s *BeaconState) ValidatorAtIndex(i uint64) *v1alpha1.Validator {
	return s.validators[i].Copy()
}

// ValidatorAtIndexReadOnly returns the live validator pointer without
// copying, for hot read paths that never mutate it (committee/shuffle
// computation over the whole registry).
func (s *BeaconState) ValidatorAtIndexReadOnly(i uint64) *v1alpha1.Validator {
	return s.validators[i]
}

func (s *BeaconState) UpdateValidatorAtIndex(i uint64, v *v1alpha1.Validator) {
	s.validators[i] = v.Copy()
}

func (s *BeaconState) AppendValidator(v *v1alpha1.Validator) {
	s.validators = append(s.validators, v.Copy())
}

func (s *BeaconState) Validators() []*v1alpha1.Validator {
	out := make([]*v1alpha1.Validator, len(s.validators))
	for i, v := range s.validators {
		out[i] = v.Copy()
	}
	return out
}

func (s *BeaconState) BalanceAtIndex(i uint64) uint64 { return s.balances[i] }
func (s *BeaconState) SetBalanceAtIndex(i uint64, balance uint64) { s.balances[i] = balance }
func (s *BeaconState) AppendBalance(balance uint64) { s.balances = append(s.balances, balance) }
func (s *BeaconState) NumBalances() int { return len(s.balances) }

func (s *BeaconState) IncreaseBalance(i uint64, delta uint64) {
	s.balances[i] += delta
}

// DecreaseBalance subtracts delta from balances[i], saturating at zero
// rather than wrapping (the "saturate or explicitly handle
// overflow" requirement applied to Gwei arithmetic).
func (s *BeaconState) DecreaseBalance(i uint64, delta uint64) {
	if delta > s.balances[i] {
		s.balances[i] = 0
		return
	}
	s.balances[i] -= delta
}

// --- pending attestations ---

func (s *BeaconState) PreviousEpochAttestations() []*v1alpha1.PendingAttestation {
	out := make([]*v1alpha1.PendingAttestation, len(s.previousEpochAttestations))
	for i, a := range s.previousEpochAttestations {
		out[i] = a.Copy()
	}
	return out
}
func (s *BeaconState) CurrentEpochAttestations() []*v1alpha1.PendingAttestation {
	out := make([]*v1alpha1.PendingAttestation, len(s.currentEpochAttestations))
	for i, a := range s.currentEpochAttestations {
		out[i] = a.Copy()
	}
	return out
}
func (s *BeaconState) AppendCurrentEpochAttestation(a *v1alpha1.PendingAttestation) {
	s.currentEpochAttestations = append(s.currentEpochAttestations, a.Copy())
}
func (s *BeaconState) AppendPreviousEpochAttestation(a *v1alpha1.PendingAttestation) {
	s.previousEpochAttestations = append(s.previousEpochAttestations, a.Copy())
}
func (s *BeaconState) RotateEpochAttestations() {
	s.previousEpochAttestations = s.currentEpochAttestations
	s.currentEpochAttestations = nil
}

// --- crosslinks ---

func (s *BeaconState) PreviousCrosslinkAtShard(shard uint64) *v1alpha1.Crosslink {
	return s.previousCrosslinks[shard].Copy()
}
func (s *BeaconState) CurrentCrosslinkAtShard(shard uint64) *v1alpha1.Crosslink {
	return s.currentCrosslinks[shard].Copy()
}
func (s *BeaconState) SetCurrentCrosslinkAtShard(shard uint64, c *v1alpha1.Crosslink) {
	s.currentCrosslinks[shard] = c.Copy()
}
func (s *BeaconState) RotateCrosslinks() {
	s.previousCrosslinks = s.currentCrosslinks
	cpy := make([]*v1alpha1.Crosslink, len(s.currentCrosslinks))
	for i, c := range s.currentCrosslinks {
		cpy[i] = c.Copy()
	}
	s.currentCrosslinks = cpy
}

// Copy returns a deep copy of s. The transition core never mutates a
// state it does not own outright, but genesis construction and tests
// clone a baseline state freely.
func (s *BeaconState) Copy() *BeaconState {
	cpy := &BeaconState{
		genesisTime: s.genesisTime,
		slot: s.slot,
		fork: s.fork.Copy(),
		latestBlockHeader: s.latestBlockHeader.Copy(),
		eth1Data: s.eth1Data.Copy(),
		eth1DepositIndex: s.eth1DepositIndex,
		startShard: s.startShard,
		justificationBits: s.justificationBits,
		previousJustifiedCheckpoint: s.previousJustifiedCheckpoint.Copy(),
		currentJustifiedCheckpoint: s.currentJustifiedCheckpoint.Copy(),
		finalizedCheckpoint: s.finalizedCheckpoint.Copy(),
	}
	cpy.blockRoots = append([][32]byte{}, s.blockRoots...)
	cpy.stateRoots = append([][32]byte{}, s.stateRoots...)
	cpy.historicalRoots = append([][32]byte{}, s.historicalRoots...)
	cpy.randaoMixes = append([][32]byte{}, s.randaoMixes...)
	cpy.activeIndexRoots = append([][32]byte{}, s.activeIndexRoots...)
	cpy.compactCommitteeRoots = append([][32]byte{}, s.compactCommitteeRoots...)
	cpy.slashings = append([]uint64{}, s.slashings...)
	cpy.balances = append([]uint64{}, s.balances...)

	for _, v := range s.eth1DataVotes {
		cpy.eth1DataVotes = append(cpy.eth1DataVotes, v.Copy())
	}
	for _, v := range s.validators {
		cpy.validators = append(cpy.validators, v.Copy())
	}
	for _, a := range s.previousEpochAttestations {
		cpy.previousEpochAttestations = append(cpy.previousEpochAttestations, a.Copy())
	}
	for _, a := range s.currentEpochAttestations {
		cpy.currentEpochAttestations = append(cpy.currentEpochAttestations, a.Copy())
	}
	for _, c := range s.previousCrosslinks {
		cpy.previousCrosslinks = append(cpy.previousCrosslinks, c.Copy())
	}
	for _, c := range s.currentCrosslinks {
		cpy.currentCrosslinks = append(cpy.currentCrosslinks, c.Copy())
	}
	return cpy
}
