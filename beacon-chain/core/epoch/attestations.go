// Package epoch implements the per-epoch state transition :
// justification/finalization, crosslink resolution, reward and penalty
// accounting, registry updates, slashings, and the final bookkeeping
// updates, composed into ProcessEpoch the way
// executive/transition/per_epoch/mod.rs composes process_epoch.
package epoch

import (	"sort"

	"github.com/eth2core/beacon-transition/beacon-chain/core/helpers"
	v1alpha1 "github.com/eth2core/beacon-transition/proto/prysm/v1alpha1"
)

// beaconState is the slice of state.BeaconState the epoch package needs.
type beaconState interface {
	Slot() uint64
	NumValidators() int
	ValidatorAtIndex(i uint64) *v1alpha1.Validator
	ValidatorAtIndexReadOnly(i uint64) *v1alpha1.Validator
	UpdateValidatorAtIndex(i uint64, v *v1alpha1.Validator)
	RandaoMixAtIndex(i uint64) [32]byte
	SetRandaoMixAtIndex(i uint64, mix [32]byte)
	RandaoMixesLength() uint64
	ActiveIndexRootAtIndex(i uint64) [32]byte
	SetActiveIndexRootAtIndex(i uint64, root [32]byte)
	CompactCommitteeRootAtIndex(i uint64) [32]byte
	SetCompactCommitteeRootAtIndex(i uint64, root [32]byte)
	StartShard() uint64
	SetStartShard(shard uint64)

	BlockRootAtIndex(i uint64) [32]byte
	StateRootAtIndex(i uint64) [32]byte
	AppendHistoricalRoot(root [32]byte)

	JustificationBits() byte
	SetJustificationBits(b byte)
	PreviousJustifiedCheckpoint() *v1alpha1.Checkpoint
	SetPreviousJustifiedCheckpoint(c *v1alpha1.Checkpoint)
	CurrentJustifiedCheckpoint() *v1alpha1.Checkpoint
	SetCurrentJustifiedCheckpoint(c *v1alpha1.Checkpoint)
	FinalizedCheckpoint() *v1alpha1.Checkpoint
	SetFinalizedCheckpoint(c *v1alpha1.Checkpoint)

	PreviousCrosslinkAtShard(shard uint64) *v1alpha1.Crosslink
	CurrentCrosslinkAtShard(shard uint64) *v1alpha1.Crosslink
	SetCurrentCrosslinkAtShard(shard uint64, c *v1alpha1.Crosslink)

	PreviousEpochAttestations() []*v1alpha1.PendingAttestation
	CurrentEpochAttestations() []*v1alpha1.PendingAttestation
	RotateEpochAttestations()
	RotateCrosslinks()

	NumBalances() int
	BalanceAtIndex(i uint64) uint64
	SetBalanceAtIndex(i uint64, balance uint64)
	IncreaseBalance(i uint64, delta uint64)
	DecreaseBalance(i uint64, delta uint64)

	SlashingAtIndex(i uint64) uint64
	SetSlashingAtIndex(i uint64, amount uint64)
	SlashingsLength() uint64
	TotalSlashings() uint64

	Eth1DataVotes() []*v1alpha1.Eth1Data
	SetEth1DataVotes(v []*v1alpha1.Eth1Data)
}

// attestingIndices expands a pending attestation into the validator
// indices that attested, in committee (shuffled) order, using the
// crosslink committee the attestation's data names (same aggregation-
// bitlist convention as blocks.ConvertToIndexed).
func attestingIndices(st beaconState, att *v1alpha1.PendingAttestation) ([]uint64, error) {
	committee, err := helpers.CrosslinkCommittee(st, att.Data.Target.Epoch, att.Data.Crosslink.Shard)
	if err != nil {
		return nil, err
	}
	var indices []uint64
	for i, idx := range committee {
		if att.AggregationBits.BitAt(uint64(i)) {
			indices = append(indices, idx)
		}
	}
	return indices, nil
}

// unslashedAttestingIndices unions attestingIndices across atts, dedupes,
// drops any index belonging to a slashed validator, and returns the
// result sorted ascending.
func unslashedAttestingIndices(st beaconState, atts []*v1alpha1.PendingAttestation) ([]uint64, error) {
	seen := make(map[uint64]bool)
	var out []uint64
	for _, att := range atts {
		indices, err := attestingIndices(st, att)
		if err != nil {
			return nil, err
		}
		for _, idx := range indices {
			if seen[idx] {
				continue
			}
			seen[idx] = true
			if st.ValidatorAtIndexReadOnly(idx).Slashed {
				continue
			}
			out = append(out, idx)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out, nil
}

// attestingBalance is the total effective balance of the unslashed
// validators represented in atts.
func attestingBalance(st beaconState, atts []*v1alpha1.PendingAttestation) (uint64, error) {
	indices, err := unslashedAttestingIndices(st, atts)
	if err != nil {
		return 0, err
	}
	return helpers.TotalBalance(st, indices), nil
}

// matchingTarget returns the subset of atts whose target checkpoint
// equals checkpoint.
func matchingTarget(atts []*v1alpha1.PendingAttestation, checkpoint *v1alpha1.Checkpoint) []*v1alpha1.PendingAttestation {
	var out []*v1alpha1.PendingAttestation
	for _, att := range atts {
		if att.Data.Target.Equals(checkpoint) {
			out = append(out, att)
		}
	}
	return out
}

// matchingHead returns the subset of atts whose beacon block root equals
// the block root the state records at the attestation's own slot (i.e. the
// attestation correctly identifies the head of the chain it attests to).
func matchingHead(st beaconState, atts []*v1alpha1.PendingAttestation) ([]*v1alpha1.PendingAttestation, error) {
	var out []*v1alpha1.PendingAttestation
	for _, att := range atts {
		slot, err := helpers.AttestationDataSlot(st, att.Data)
		if err != nil {
			return nil, err
		}
		if att.Data.BeaconBlockRoot == st.BlockRootAtIndex(slot) {
			out = append(out, att)
		}
	}
	return out, nil
}
