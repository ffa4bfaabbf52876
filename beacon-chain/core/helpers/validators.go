package helpers

import (	"github.com/eth2core/beacon-transition/config/params"
	v1alpha1 "github.com/eth2core/beacon-transition/proto/prysm/v1alpha1"
)

// IsActiveValidator reports whether v is active at epoch. Free-function
// form of Validator.IsActive, matching the helper-package naming the
// teacher's tests expect alongside the method form.
func IsActiveValidator(v *v1alpha1.Validator, epoch uint64) bool {
	return v.IsActive(epoch)
}

// IsSlashableValidator reports whether v can still be slashed at epoch.
func IsSlashableValidator(v *v1alpha1.Validator, epoch uint64) bool {
	return v.IsSlashable(epoch)
}

// ValidatorChurnLimit bounds how many validators may activate or exit in
// a single epoch: max(MIN_PER_EPOCH_CHURN_LIMIT, active_count /
// CHURN_LIMIT_QUOTIENT). This phase0-with-crosslinks profile does not
// expose either tunable separately, so the limit is pinned at the
// historical phase0 defaults (quotient 65536, floor 4) rather than
// reading them from BeaconConfig.
func ValidatorChurnLimit(st beaconState, epoch uint64) uint64 {
	const churnLimitQuotient = 1 << 16
	const minPerEpochChurnLimit = 4

	activeCount := uint64(len(ActiveValidatorIndices(st, epoch)))
	limit := activeCount / churnLimitQuotient
	if limit < minPerEpochChurnLimit {
		return minPerEpochChurnLimit
	}
	return limit
}

// ActivationExitEpoch returns the epoch at which a validator activated
// or exited during epoch would actually take effect:
// epoch + 1 + ACTIVATION_EXIT_DELAY.
func ActivationExitEpoch(epoch uint64) uint64 {
	return epoch + 1 + params.BeaconConfig().ActivationExitDelay
}

// TotalBalance sums the effective balances of the given validator
// indices, floored at EFFECTIVE_BALANCE_INCREMENT to avoid a division by
// a degenerate zero denominator downstream (the per-validator
// reward math divides by exactly this total).
func TotalBalance(st beaconState, indices []uint64) uint64 {
	cfg := params.BeaconConfig()
	var total uint64
	for _, idx := range indices {
		total += st.ValidatorAtIndexReadOnly(idx).EffectiveBalance
	}
	if total < cfg.EffectiveBalanceIncrement {
		return cfg.EffectiveBalanceIncrement
	}
	return total
}

// TotalActiveBalance sums the effective balances of all validators
// active at epoch.
func TotalActiveBalance(st beaconState, epoch uint64) uint64 {
	return TotalBalance(st, ActiveValidatorIndices(st, epoch))
}
