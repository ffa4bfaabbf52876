// Package validators implements the registry-mutating operations the
// per-block operation processors and per-epoch registry-update step
// share: initiating a voluntary or involuntary exit, and slashing a
// validator. Grounded on the general phase0 initiate_validator_exit /
// slash_validator algorithms (executive/transition/per_epoch/registry.rs
// calls initiate_validator_exit but the filtered original_source pack
// does not carry its definition, nor slash_validator's — see DESIGN.md).
package validators

import (	coretime "github.com/eth2core/beacon-transition/beacon-chain/core/time"
	"github.com/eth2core/beacon-transition/beacon-chain/core/helpers"
	"github.com/eth2core/beacon-transition/config/params"
	v1alpha1 "github.com/eth2core/beacon-transition/proto/prysm/v1alpha1"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("prefix", "core/validators")

// beaconState is the slice of state.BeaconState this package needs.
type beaconState interface {
	Slot() uint64
	NumValidators() int
	ValidatorAtIndex(i uint64) *v1alpha1.Validator
	ValidatorAtIndexReadOnly(i uint64) *v1alpha1.Validator
	UpdateValidatorAtIndex(i uint64, v *v1alpha1.Validator)
	FinalizedCheckpoint() *v1alpha1.Checkpoint
	RandaoMixAtIndex(i uint64) [32]byte
	RandaoMixesLength() uint64
	ActiveIndexRootAtIndex(i uint64) [32]byte
	StartShard() uint64
	SlashingAtIndex(i uint64) uint64
	SetSlashingAtIndex(i uint64, amount uint64)
	BalanceAtIndex(i uint64) uint64
	IncreaseBalance(i uint64, delta uint64)
	DecreaseBalance(i uint64, delta uint64)
}

type stateAccessor struct{ beaconState }

func (s stateAccessor) Slot() uint64 { return s.beaconState.Slot() }

// InitiateValidatorExit queues index for exit at the earliest queue
// epoch the churn limit allows, a no-op if index has already initiated
// an exit.
func InitiateValidatorExit(st beaconState, index uint64) {
	cfg := params.BeaconConfig()
	validator := st.ValidatorAtIndex(index)
	if validator.ExitEpoch != cfg.FarFutureEpoch {
		return
	}

	currentEpoch := uint64(coretime.CurrentEpoch(stateAccessor{st}))
	exitQueueEpoch := helpers.ActivationExitEpoch(currentEpoch)
	exitQueueChurn := uint64(0)
	for i := 0; i < st.NumValidators(); i++ {
		v := st.ValidatorAtIndexReadOnly(uint64(i))
		if v.ExitEpoch == cfg.FarFutureEpoch {
			continue
		}
		if v.ExitEpoch > exitQueueEpoch {
			exitQueueEpoch = v.ExitEpoch
			exitQueueChurn = 1
		} else if v.ExitEpoch == exitQueueEpoch {
			exitQueueChurn++
		}
	}
	if exitQueueChurn >= helpers.ValidatorChurnLimit(st, currentEpoch) {
		exitQueueEpoch++
	}

	validator.ExitEpoch = exitQueueEpoch
	validator.WithdrawableEpoch = exitQueueEpoch + cfg.MinValidatorWithdrawabilityDelay
	st.UpdateValidatorAtIndex(index, validator)

	log.WithFields(logrus.Fields{
		"validatorIndex": index,
		"exitEpoch":      exitQueueEpoch,
	}).Info("Validator exit initiated")
}

// SlashValidator slashes the validator at slashedIndex: marks it
// slashed, pushes its effective balance into the current slashings
// accumulator, burns a slashing penalty from its balance, and splits a
// whistleblower reward between whistleblowerIndex (or the block
// proposer, if nil) and the proposer.
func SlashValidator(st beaconState, slashedIndex uint64, whistleblowerIndex *uint64) error {
	cfg := params.BeaconConfig()
	currentEpoch := uint64(coretime.CurrentEpoch(stateAccessor{st}))
	InitiateValidatorExit(st, slashedIndex)

	validator := st.ValidatorAtIndex(slashedIndex)
	validator.Slashed = true
	withdrawable := currentEpoch + cfg.EpochsPerSlashingsVector
	if withdrawable > validator.WithdrawableEpoch {
		validator.WithdrawableEpoch = withdrawable
	}
	st.UpdateValidatorAtIndex(slashedIndex, validator)

	slashIdx := currentEpoch % cfg.EpochsPerSlashingsVector
	st.SetSlashingAtIndex(slashIdx, st.SlashingAtIndex(slashIdx)+validator.EffectiveBalance)
	st.DecreaseBalance(slashedIndex, validator.EffectiveBalance/cfg.MinSlashingPenaltyQuotient)

	proposerIndex, err := helpers.BeaconProposerIndex(st)
	if err != nil {
		return err
	}
	whistleblowerReward := validator.EffectiveBalance / cfg.WhistleblowerRewardQuotient
	proposerReward := whistleblowerReward / cfg.ProposerRewardQuotient
	st.IncreaseBalance(proposerIndex, proposerReward)

	wIndex := proposerIndex
	if whistleblowerIndex != nil {
		wIndex = *whistleblowerIndex
	}
	st.IncreaseBalance(wIndex, whistleblowerReward-proposerReward)

	log.WithFields(logrus.Fields{
		"validatorIndex": slashedIndex,
		"proposerIndex":  proposerIndex,
	}).Info("Validator slashed")
	return nil
}

// ProcessRegistryUpdates advances activation eligibility, ejects
// under-balance active validators, and activates queued validators up
// to the churn limit , grounded directly on
// executive/transition/per_epoch/registry.rs's process_registry_updates.
func ProcessRegistryUpdates(st beaconState) error {
	cfg := params.BeaconConfig()
	currentEpoch := uint64(coretime.CurrentEpoch(stateAccessor{st}))

	for i := 0; i < st.NumValidators(); i++ {
		v := st.ValidatorAtIndex(uint64(i))
		changed := false
		if v.ActivationEligibilityEpoch == cfg.FarFutureEpoch && v.EffectiveBalance == cfg.MaxEffectiveBalance {
			v.ActivationEligibilityEpoch = currentEpoch
			changed = true
		}
		if changed {
			st.UpdateValidatorAtIndex(uint64(i), v)
		}
		if v.IsActive(currentEpoch) && v.EffectiveBalance <= cfg.EjectionBalance {
			InitiateValidatorExit(st, uint64(i))
		}
	}

	finalizedEpoch := st.FinalizedCheckpoint().Epoch
	var activationQueue []uint64
	for i := 0; i < st.NumValidators(); i++ {
		v := st.ValidatorAtIndexReadOnly(uint64(i))
		if v.ActivationEligibilityEpoch != cfg.FarFutureEpoch &&
			v.ActivationEpoch >= helpers.ActivationExitEpoch(finalizedEpoch) {
			activationQueue = append(activationQueue, uint64(i))
		}
	}
	sortByActivationEligibility(st, activationQueue)

	limit := helpers.ValidatorChurnLimit(st, currentEpoch)
	if uint64(len(activationQueue)) < limit {
		limit = uint64(len(activationQueue))
	}
	for _, idx := range activationQueue[:limit] {
		v := st.ValidatorAtIndex(idx)
		if v.ActivationEpoch == cfg.FarFutureEpoch {
			v.ActivationEpoch = helpers.ActivationExitEpoch(currentEpoch)
			st.UpdateValidatorAtIndex(idx, v)
		}
	}
	return nil
}

func sortByActivationEligibility(st beaconState, indices []uint64) {
	for i := 1; i < len(indices); i++ {
		for j := i; j > 0; j-- {
			a := st.ValidatorAtIndexReadOnly(indices[j-1]).ActivationEligibilityEpoch
			b := st.ValidatorAtIndexReadOnly(indices[j]).ActivationEligibilityEpoch
			if a <= b {
				break
			}
			indices[j-1], indices[j] = indices[j], indices[j-1]
		}
	}
}
