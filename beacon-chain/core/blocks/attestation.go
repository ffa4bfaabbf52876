package blocks

import (	coretime "github.com/eth2core/beacon-transition/beacon-chain/core/time"
	"github.com/eth2core/beacon-transition/beacon-chain/core/helpers"
	"github.com/eth2core/beacon-transition/config/params"
	v1alpha1 "github.com/eth2core/beacon-transition/proto/prysm/v1alpha1"
	"github.com/pkg/errors"
)

var ErrAttestationInvalidCrosslinkShard = errors.New("blocks: attestation crosslink shard out of range")
var ErrAttestationInvalidTargetEpoch = errors.New("blocks: attestation target epoch is neither current nor previous")
var ErrAttestationSubmittedTooQuickly = errors.New("blocks: attestation outside its inclusion window")
var ErrAttestationInvalidSource = errors.New("blocks: attestation source does not match justified checkpoint")
var ErrAttestationInvalidCrosslink = errors.New("blocks: attestation crosslink does not extend the parent")

// ProcessAttestation validates att against the state it was produced for
// and against the crosslink chain it proposes to extend, then records it
// as a pending attestation for the relevant epoch (grounded
// on operations/attestation.rs's process_attestation).
func ProcessAttestation(st beaconState, att *v1alpha1.Attestation) error {
	cfg := params.BeaconConfig()
	data := att.Data

	if data.Crosslink.Shard >= cfg.ShardCount {
		return ErrAttestationInvalidCrosslinkShard
	}

	currentEpoch := uint64(coretime.CurrentEpoch(stateAccessor{st}))
	previousEpoch := uint64(coretime.PreviousEpoch(stateAccessor{st}))
	if data.Target.Epoch != currentEpoch && data.Target.Epoch != previousEpoch {
		return ErrAttestationInvalidTargetEpoch
	}

	attestationSlot, err := helpers.AttestationDataSlot(st, data)
	if err != nil {
		return err
	}
	if !(attestationSlot+cfg.MinAttestationInclusionDelay <= st.Slot() && st.Slot() <= attestationSlot+cfg.SlotsPerEpoch) {
		return ErrAttestationSubmittedTooQuickly
	}

	proposerIndex, err := helpers.BeaconProposerIndex(st)
	if err != nil {
		return err
	}
	pending := &v1alpha1.PendingAttestation{
		Data: data,
		AggregationBits: att.AggregationBits,
		InclusionDelay: st.Slot() - attestationSlot,
		ProposerIndex: proposerIndex,
	}

	isCurrent := data.Target.Epoch == currentEpoch
	var parent *v1alpha1.Crosslink
	if isCurrent {
		if !data.Source.Equals(st.CurrentJustifiedCheckpoint()) {
			return ErrAttestationInvalidSource
		}
		parent = st.CurrentCrosslinkAtShard(data.Crosslink.Shard)
	} else {
		parent = st.PreviousCrosslinkAtShard(data.Crosslink.Shard)
	}

	parentRoot, err := parent.HashTreeRoot()
	if err != nil {
		return err
	}
	endEpoch := data.Target.Epoch
	if parent.EndEpoch+cfg.MaxEpochsPerCrosslink < endEpoch {
		endEpoch = parent.EndEpoch + cfg.MaxEpochsPerCrosslink
	}
	if data.Crosslink.ParentRoot != parentRoot ||
		data.Crosslink.StartEpoch != parent.EndEpoch ||
		data.Crosslink.EndEpoch != endEpoch ||
		data.Crosslink.DataRoot != ([32]byte{}) {
		return ErrAttestationInvalidCrosslink
	}

	indexed, err := ConvertToIndexed(st, att)
	if err != nil {
		return err
	}
	if err := IsValidIndexedAttestation(st, indexed); err != nil {
		return err
	}

	if isCurrent {
		st.AppendCurrentEpochAttestation(pending)
	} else {
		st.AppendPreviousEpochAttestation(pending)
	}
	return nil
}
