package epoch

import (	coretime "github.com/eth2core/beacon-transition/beacon-chain/core/time"
	"github.com/eth2core/beacon-transition/beacon-chain/core/helpers"
	"github.com/eth2core/beacon-transition/config/params"
	"github.com/sirupsen/logrus"
)

// ProcessSlashings burns a balance penalty from every validator whose
// slashing is "due" this epoch: halfway through its
// EPOCHS_PER_SLASHINGS_VECTOR withdrawal window, so the penalty reflects
// the total slashed balance accumulated around it (grounded
// on per_epoch/slashing.rs's process_slashings).
func ProcessSlashings(st beaconState) {
	cfg := params.BeaconConfig()
	currentEpoch := uint64(coretime.CurrentEpoch(stateAccessor{st}))
	totalBalance := helpers.TotalActiveBalance(st, currentEpoch)
	totalSlashings := st.TotalSlashings()

	for i := 0; i < st.NumValidators(); i++ {
		idx := uint64(i)
		v := st.ValidatorAtIndexReadOnly(idx)
		if !v.Slashed {
			continue
		}
		if currentEpoch+cfg.EpochsPerSlashingsVector/2 != v.WithdrawableEpoch {
			continue
		}
		increment := cfg.EffectiveBalanceIncrement
		penaltyNumerator := (v.EffectiveBalance / increment) * min64(totalSlashings*3, totalBalance)
		penalty := (penaltyNumerator / totalBalance) * increment
		st.DecreaseBalance(idx, penalty)

		slashingsAppliedTotal.Inc()
		log.WithFields(logrus.Fields{
			"validatorIndex": idx,
			"penalty":        penalty,
		}).Info("Applied slashing penalty")
	}
}

func min64(a, b uint64) uint64 {
	if a < b {
		return a
	}
	return b
}
