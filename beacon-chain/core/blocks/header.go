// Package blocks implements the per-block state transition: the block
// header check, randao mixing, the eth1 vote, and the six operation
// processors, composed into ProcessBlock the way
// executive/transition/per_block/mod.rs composes process_block_header,
// process_randao, process_eth1_data, and process_operations.
package blocks

import (	"github.com/eth2core/beacon-transition/beacon-chain/core/helpers"
	"github.com/eth2core/beacon-transition/beacon-chain/core/signing"
	"github.com/eth2core/beacon-transition/config/params"
	"github.com/eth2core/beacon-transition/consensus-types/primitives"
	v1alpha1 "github.com/eth2core/beacon-transition/proto/prysm/v1alpha1"
	"github.com/eth2core/beacon-transition/time/slots"
	"github.com/pkg/errors"
)

// ErrBlockSlotMismatch is returned when a block's slot does not match
// the state's current slot.
var ErrBlockSlotMismatch = errors.New("blocks: block slot does not match state slot")

// ErrParentRootMismatch is returned when a block's parent root does not
// match the signing root of the state's latest block header.
var ErrParentRootMismatch = errors.New("blocks: parent root does not match latest block header")

// ErrProposerSlashed is returned when a block's proposer is already
// slashed.
var ErrProposerSlashed = errors.New("blocks: proposer already slashed")

// beaconState is the slice of state.BeaconState ProcessBlockHeader needs.
type beaconState interface {
	Slot() uint64
	NumValidators() int
	ValidatorAtIndex(i uint64) *v1alpha1.Validator
	ValidatorAtIndexReadOnly(i uint64) *v1alpha1.Validator
	FinalizedCheckpoint() *v1alpha1.Checkpoint
	SlashingAtIndex(i uint64) uint64
	SetSlashingAtIndex(i uint64, amount uint64)
	RandaoMixAtIndex(i uint64) [32]byte
	SetRandaoMixAtIndex(i uint64, mix [32]byte)
	RandaoMixesLength() uint64
	ActiveIndexRootAtIndex(i uint64) [32]byte
	StartShard() uint64
	LatestBlockHeader() *v1alpha1.BeaconBlockHeader
	SetLatestBlockHeader(h *v1alpha1.BeaconBlockHeader)
	Fork() *v1alpha1.Fork
	Eth1Data() *v1alpha1.Eth1Data
	SetEth1Data(e *v1alpha1.Eth1Data)
	AppendEth1DataVote(e *v1alpha1.Eth1Data)
	Eth1DataVotes() []*v1alpha1.Eth1Data

	CurrentJustifiedCheckpoint() *v1alpha1.Checkpoint
	CurrentCrosslinkAtShard(shard uint64) *v1alpha1.Crosslink
	PreviousCrosslinkAtShard(shard uint64) *v1alpha1.Crosslink
	AppendCurrentEpochAttestation(a *v1alpha1.PendingAttestation)
	AppendPreviousEpochAttestation(a *v1alpha1.PendingAttestation)

	NumBalances() int
	BalanceAtIndex(i uint64) uint64
	IncreaseBalance(i uint64, delta uint64)
	DecreaseBalance(i uint64, delta uint64)
	UpdateValidatorAtIndex(i uint64, v *v1alpha1.Validator)
	AppendValidator(v *v1alpha1.Validator)
	AppendBalance(balance uint64)
	Eth1DepositIndex() uint64
	SetEth1DepositIndex(idx uint64)
}

// ProcessBlockHeader validates blk's slot, parent root, and proposer
// , records a slashed-signature placeholder latest block
// header, and verifies the proposer's signature over blk when sig is
// non-nil (callers processing an already-trusted block may pass nil to
// skip the check, matching header.rs's `Option<&Signature>` parameter).
func ProcessBlockHeader(st beaconState, blk *v1alpha1.BeaconBlock, sig []byte) error {
	if blk.Slot != st.Slot() {
		return ErrBlockSlotMismatch
	}

	parentHeaderRoot, err := st.LatestBlockHeader().HashTreeRoot()
	if err != nil {
		return err
	}
	if blk.ParentRoot != parentHeaderRoot {
		return ErrParentRootMismatch
	}

	bodyRoot, err := blk.Body.HashTreeRoot()
	if err != nil {
		return err
	}
	st.SetLatestBlockHeader(&v1alpha1.BeaconBlockHeader{
		Slot: blk.Slot,
		ParentRoot: blk.ParentRoot,
		StateRoot: [32]byte{},
		BodyRoot: bodyRoot,
	})

	proposerIndex, err := helpers.BeaconProposerIndex(st)
	if err != nil {
		return err
	}
	proposer := st.ValidatorAtIndexReadOnly(proposerIndex)
	if proposer.Slashed {
		return ErrProposerSlashed
	}

	if sig != nil {
		cfg := params.BeaconConfig()
		epoch := uint64(slots.ToEpoch(primitives.Slot(blk.Slot)))
		domain := signing.Domain(st.Fork(), epoch, cfg.DomainBeaconProposer)
		if err := signing.VerifyObjectSignature(blk, domain, proposer.PublicKey[:], sig); err != nil {
			return err
		}
	}

	return nil
}
