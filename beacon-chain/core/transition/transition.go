// Package transition composes the per-slot, per-block, and per-epoch
// state transitions into the top-level pure function
// transition(state, input) -> state. Grounded on
// executive/per_slot.rs and executive/transition/mod.rs's process_slots
// and process_slot.
package transition

import (	"github.com/eth2core/beacon-transition/beacon-chain/core/blocks"
	"github.com/eth2core/beacon-transition/beacon-chain/core/epoch"
	"github.com/eth2core/beacon-transition/config/params"
	v1alpha1 "github.com/eth2core/beacon-transition/proto/prysm/v1alpha1"
	"github.com/pkg/errors"
)

// ErrSlotOutOfRange is returned when the requested slot is strictly less
// than the state's current slot: the transition never moves backward.
var ErrSlotOutOfRange = errors.New("transition: requested slot precedes state slot")

// beaconState is the slice of state.BeaconState the top-level transition
// needs: every method blocks.ProcessBlock and epoch.ProcessEpoch
// require, plus the state/block-root caching ProcessSlot performs.
type beaconState interface {
	Slot() uint64
	SetSlot(slot uint64)
	HashTreeRoot() ([32]byte, error)
	LatestBlockHeader() *v1alpha1.BeaconBlockHeader
	SetLatestBlockHeader(h *v1alpha1.BeaconBlockHeader)
	SetStateRootAtIndex(i uint64, root [32]byte)
	SetBlockRootAtIndex(i uint64, root [32]byte)

	NumValidators() int
	ValidatorAtIndex(i uint64) *v1alpha1.Validator
	ValidatorAtIndexReadOnly(i uint64) *v1alpha1.Validator
	UpdateValidatorAtIndex(i uint64, v *v1alpha1.Validator)
	FinalizedCheckpoint() *v1alpha1.Checkpoint
	SetFinalizedCheckpoint(c *v1alpha1.Checkpoint)
	SlashingAtIndex(i uint64) uint64
	SetSlashingAtIndex(i uint64, amount uint64)
	SlashingsLength() uint64
	TotalSlashings() uint64
	RandaoMixAtIndex(i uint64) [32]byte
	SetRandaoMixAtIndex(i uint64, mix [32]byte)
	RandaoMixesLength() uint64
	ActiveIndexRootAtIndex(i uint64) [32]byte
	SetActiveIndexRootAtIndex(i uint64, root [32]byte)
	CompactCommitteeRootAtIndex(i uint64) [32]byte
	SetCompactCommitteeRootAtIndex(i uint64, root [32]byte)
	StartShard() uint64
	SetStartShard(shard uint64)
	Fork() *v1alpha1.Fork
	Eth1Data() *v1alpha1.Eth1Data
	SetEth1Data(e *v1alpha1.Eth1Data)
	AppendEth1DataVote(e *v1alpha1.Eth1Data)
	Eth1DataVotes() []*v1alpha1.Eth1Data
	SetEth1DataVotes(v []*v1alpha1.Eth1Data)

	CurrentJustifiedCheckpoint() *v1alpha1.Checkpoint
	SetCurrentJustifiedCheckpoint(c *v1alpha1.Checkpoint)
	PreviousJustifiedCheckpoint() *v1alpha1.Checkpoint
	SetPreviousJustifiedCheckpoint(c *v1alpha1.Checkpoint)
	JustificationBits() byte
	SetJustificationBits(b byte)
	CurrentCrosslinkAtShard(shard uint64) *v1alpha1.Crosslink
	PreviousCrosslinkAtShard(shard uint64) *v1alpha1.Crosslink
	SetCurrentCrosslinkAtShard(shard uint64, c *v1alpha1.Crosslink)
	RotateCrosslinks()

	AppendCurrentEpochAttestation(a *v1alpha1.PendingAttestation)
	AppendPreviousEpochAttestation(a *v1alpha1.PendingAttestation)
	PreviousEpochAttestations() []*v1alpha1.PendingAttestation
	CurrentEpochAttestations() []*v1alpha1.PendingAttestation
	RotateEpochAttestations()

	NumBalances() int
	BalanceAtIndex(i uint64) uint64
	SetBalanceAtIndex(i uint64, balance uint64)
	IncreaseBalance(i uint64, delta uint64)
	DecreaseBalance(i uint64, delta uint64)
	AppendValidator(v *v1alpha1.Validator)
	AppendBalance(balance uint64)
	Eth1DepositIndex() uint64
	SetEth1DepositIndex(idx uint64)

	BlockRootAtIndex(i uint64) [32]byte
	StateRootAtIndex(i uint64) [32]byte
	AppendHistoricalRoot(root [32]byte)
}

// ProcessSlot caches st's pre-state hash-tree-root into the state- and
// block-roots vectors for the current slot, backfilling the latest
// block header's state root if it is still zero (grounded on
// transition/mod.rs's process_slot).
func ProcessSlot(st beaconState) error {
	cfg := params.BeaconConfig()
	previousStateRoot, err := st.HashTreeRoot()
	if err != nil {
		return err
	}
	st.SetStateRootAtIndex(st.Slot()%cfg.SlotsPerHistoricalRoot, previousStateRoot)

	header := st.LatestBlockHeader()
	if header.StateRoot == ([32]byte{}) {
		header.StateRoot = previousStateRoot
		st.SetLatestBlockHeader(header)
	}

	previousBlockRoot, err := header.HashTreeRoot()
	if err != nil {
		return err
	}
	st.SetBlockRootAtIndex(st.Slot()%cfg.SlotsPerHistoricalRoot, previousBlockRoot)
	return nil
}

// ProcessSlots advances st from its current slot up to (but not
// including processing past) slot, running ProcessEpoch at every epoch
// boundary crossed (grounded on transition/mod.rs's
// process_slots).
func ProcessSlots(st beaconState, slot uint64) error {
	if st.Slot() > slot {
		return ErrSlotOutOfRange
	}
	cfg := params.BeaconConfig()
	for st.Slot() < slot {
		if err := ProcessSlot(st); err != nil {
			return err
		}
		if (st.Slot()+1)%cfg.SlotsPerEpoch == 0 {
			if err := epoch.ProcessEpoch(st); err != nil {
				return err
			}
		}
		st.SetSlot(st.Slot() + 1)
	}
	return nil
}

// ExecuteStateTransition is the top-level transition(state, input)
// names: advance st to blk's slot, then apply blk's block-level
// transition, optionally verifying blk's claimed state root against the
// result (grounded on the composition implied by per_block/mod.rs and
// per_block/state_root.rs together).
func ExecuteStateTransition(st beaconState, blk *v1alpha1.BeaconBlock, sig []byte, verifyStateRoot bool) error {
	if err := ProcessSlots(st, blk.Slot); err != nil {
		return err
	}
	if err := blocks.ProcessBlock(st, blk, sig); err != nil {
		return err
	}
	if verifyStateRoot {
		if err := blocks.VerifyBlockStateRoot(st, blk); err != nil {
			return err
		}
	}
	return nil
}
