package epoch

import (
	coretime "github.com/eth2core/beacon-transition/beacon-chain/core/time"
	"github.com/eth2core/beacon-transition/beacon-chain/core/helpers"
	"github.com/eth2core/beacon-transition/config/params"
	v1alpha1 "github.com/eth2core/beacon-transition/proto/prysm/v1alpha1"
	"github.com/eth2core/beacon-transition/time/slots"
	"github.com/eth2core/beacon-transition/consensus-types/primitives"
	"github.com/sirupsen/logrus"
)

// ProcessJustificationAndFinalization applies Casper-FFG's bitvector
// justification rule and its four-pattern finalization test (grounded verbatim in structure on
// components/justification.rs's Justifier::process). It is a no-op
// while the current epoch is the genesis epoch or the one after it.
func ProcessJustificationAndFinalization(st beaconState) error {
	cfg := params.BeaconConfig()
	currentEpoch := uint64(coretime.CurrentEpoch(stateAccessor{st}))
	if currentEpoch <= cfg.GenesisEpoch+1 {
		return nil
	}

	previousEpoch := uint64(coretime.PreviousEpoch(stateAccessor{st}))
	previousRoot, err := epochBlockRoot(st, previousEpoch)
	if err != nil {
		return err
	}
	previousCheckpoint := &v1alpha1.Checkpoint{Epoch: previousEpoch, Root: previousRoot}

	currentRoot, err := epochBlockRoot(st, currentEpoch)
	if err != nil {
		return err
	}
	currentCheckpoint := &v1alpha1.Checkpoint{Epoch: currentEpoch, Root: currentRoot}

	oldPreviousJustified := st.PreviousJustifiedCheckpoint()
	oldCurrentJustified := st.CurrentJustifiedCheckpoint()

	bits := (st.JustificationBits() << 1) & 0xF // shift toward older epochs, clear newest bit

	st.SetPreviousJustifiedCheckpoint(st.CurrentJustifiedCheckpoint())

	previousBalance, err := attestingTargetBalance(st, previousCheckpoint)
	if err != nil {
		return err
	}
	totalActive := helpers.TotalActiveBalance(st, currentEpoch)
	currentJustified := st.CurrentJustifiedCheckpoint()

	if previousBalance*3 >= totalActive*2 {
		currentJustified = previousCheckpoint
		bits |= 1 << 1
	}

	currentBalance, err := attestingTargetBalance(st, currentCheckpoint)
	if err != nil {
		return err
	}
	if currentBalance*3 >= totalActive*2 {
		currentJustified = currentCheckpoint
		bits |= 1 << 0
	}
	st.SetCurrentJustifiedCheckpoint(currentJustified)
	st.SetJustificationBits(bits)

	finalized := st.FinalizedCheckpoint()
	bit := func(i uint) bool { return bits&(1<<i) != 0 }

	if bit(1) && bit(2) && bit(3) && oldPreviousJustified.Epoch+3 == currentEpoch {
		finalized = oldPreviousJustified
	}
	if bit(1) && bit(2) && oldPreviousJustified.Epoch+2 == currentEpoch {
		finalized = oldPreviousJustified
	}
	if bit(0) && bit(1) && bit(2) && oldCurrentJustified.Epoch+2 == currentEpoch {
		finalized = oldCurrentJustified
	}
	if bit(0) && bit(1) && oldCurrentJustified.Epoch+1 == currentEpoch {
		finalized = oldCurrentJustified
	}
	if finalized.Epoch != st.FinalizedCheckpoint().Epoch {
		log.WithFields(logrus.Fields{
			"epoch": finalized.Epoch,
		}).Info("New finalized checkpoint")
	}
	st.SetFinalizedCheckpoint(finalized)

	return nil
}

// epochBlockRoot returns the block root at the first slot of epoch.
func epochBlockRoot(st beaconState, epoch uint64) ([32]byte, error) {
	slot := uint64(slots.EpochStart(primitives.Epoch(epoch)))
	return st.BlockRootAtIndex(slot), nil
}

// attestingTargetBalance is the total effective balance of unslashed
// validators whose previous- or current-epoch pending attestation names
// checkpoint as its target.
func attestingTargetBalance(st beaconState, checkpoint *v1alpha1.Checkpoint) (uint64, error) {
	var atts []*v1alpha1.PendingAttestation
	atts = append(atts, matchingTarget(st.PreviousEpochAttestations(), checkpoint)...)
	atts = append(atts, matchingTarget(st.CurrentEpochAttestations(), checkpoint)...)
	return attestingBalance(st, atts)
}

type stateAccessor struct{ beaconState }

func (s stateAccessor) Slot() uint64 { return s.beaconState.Slot() }
