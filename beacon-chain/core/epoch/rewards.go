package epoch

import (	coretime "github.com/eth2core/beacon-transition/beacon-chain/core/time"
	"github.com/eth2core/beacon-transition/beacon-chain/core/helpers"
	"github.com/eth2core/beacon-transition/config/params"
	"github.com/eth2core/beacon-transition/consensus-types/primitives"
	v1alpha1 "github.com/eth2core/beacon-transition/proto/prysm/v1alpha1"
	"github.com/eth2core/beacon-transition/time/slots"
)

// ProcessRewardsAndPenalties applies the previous epoch's attestation
// rewards and penalties to every validator active during it. reward.rs
// did not survive the original_source filtering pass (see DESIGN.md);
// the formulas below follow the general phase0 v0.8
// get_attestation_deltas algorithm: a base reward scaled by how promptly
// and accurately each validator attested, plus an inactivity penalty
// multiplier when the chain has gone more than 4 epochs without
// finality.
func ProcessRewardsAndPenalties(st beaconState) error {
	cfg := params.BeaconConfig()
	currentEpoch := uint64(coretime.CurrentEpoch(stateAccessor{st}))
	if currentEpoch == cfg.GenesisEpoch {
		return nil
	}
	previousEpoch := uint64(coretime.PreviousEpoch(stateAccessor{st}))

	eligible := helpers.ActiveValidatorIndices(st, previousEpoch)
	totalActiveBalance := helpers.TotalActiveBalance(st, previousEpoch)

	prevAtts := st.PreviousEpochAttestations()
	sourceAtts := prevAtts
	targetAtts := matchingTarget(prevAtts, &v1alpha1.Checkpoint{Epoch: previousEpoch, Root: st.BlockRootAtIndex(uint64(slots.EpochStart(primitives.Epoch(previousEpoch))))})
	headAtts, err := matchingHead(st, prevAtts)
	if err != nil {
		return err
	}

	sourceBalance, err := attestingBalance(st, sourceAtts)
	if err != nil {
		return err
	}
	targetBalance, err := attestingBalance(st, targetAtts)
	if err != nil {
		return err
	}
	headBalance, err := attestingBalance(st, headAtts)
	if err != nil {
		return err
	}

	sourceIndices, err := unslashedAttestingIndices(st, sourceAtts)
	if err != nil {
		return err
	}
	targetIndices, err := unslashedAttestingIndices(st, targetAtts)
	if err != nil {
		return err
	}
	headIndices, err := unslashedAttestingIndices(st, headAtts)
	if err != nil {
		return err
	}
	inSource := toSet(sourceIndices)
	inTarget := toSet(targetIndices)
	inHead := toSet(headIndices)

	finalityDelay := previousEpoch - finalizedEpoch(st)
	inactivityLeak := finalityDelay > 4

	proposerRewards := make(map[uint64]uint64)
	earliestAttestation := make(map[uint64]*v1alpha1.PendingAttestation)
	for _, att := range prevAtts {
		indices, err := attestingIndices(st, att)
		if err != nil {
			return err
		}
		for _, idx := range indices {
			if prior, ok := earliestAttestation[idx]; !ok || att.InclusionDelay < prior.InclusionDelay {
				earliestAttestation[idx] = att
			}
		}
	}

	for _, idx := range eligible {
		v := st.ValidatorAtIndexReadOnly(idx)
		baseReward := baseReward(cfg, v.EffectiveBalance, totalActiveBalance)

		if inSource[idx] {
			if inactivityLeak {
				st.IncreaseBalance(idx, baseReward)
			} else {
				st.IncreaseBalance(idx, baseReward*sourceBalance/totalActiveBalance)
			}
			if att, ok := earliestAttestation[idx]; ok {
				proposerReward := baseReward / cfg.ProposerRewardQuotient
				proposerRewards[att.ProposerIndex] += proposerReward
				maxAttesterReward := baseReward - proposerReward
				delay := att.InclusionDelay
				if delay == 0 {
					delay = 1
				}
				st.IncreaseBalance(idx, maxAttesterReward/delay)
			}
		} else {
			st.DecreaseBalance(idx, baseReward)
		}

		if inTarget[idx] {
			if inactivityLeak {
				st.IncreaseBalance(idx, baseReward)
			} else {
				st.IncreaseBalance(idx, baseReward*targetBalance/totalActiveBalance)
			}
		} else {
			st.DecreaseBalance(idx, baseReward)
		}

		if inHead[idx] {
			if inactivityLeak {
				st.IncreaseBalance(idx, baseReward)
			} else {
				st.IncreaseBalance(idx, baseReward*headBalance/totalActiveBalance)
			}
		} else {
			st.DecreaseBalance(idx, baseReward)
		}

		if inactivityLeak {
			inactivityPenalty := baseReward * cfg.BaseRewardsPerEpoch
			if !v.IsActive(previousEpoch) || v.Slashed {
				inactivityPenalty = baseReward*cfg.BaseRewardsPerEpoch + v.EffectiveBalance*finalityDelay/cfg.InactivityPenaltyQuotient
			}
			st.DecreaseBalance(idx, inactivityPenalty)
		}
	}

	for proposerIdx, reward := range proposerRewards {
		st.IncreaseBalance(proposerIdx, reward)
	}

	return nil
}

// baseReward is the unit the attestation reward/penalty components above
// all scale from: effective_balance * BASE_REWARD_FACTOR /
// sqrt(total_active_balance) / BASE_REWARDS_PER_EPOCH.
func baseReward(cfg *params.Config, effectiveBalance, totalActiveBalance uint64) uint64 {
	return effectiveBalance * cfg.BaseRewardFactor / isqrt(totalActiveBalance) / cfg.BaseRewardsPerEpoch
}

// isqrt is the integer square root (Newton's method), used exactly as
// the base reward formula requires.
func isqrt(n uint64) uint64 {
	if n == 0 {
		return 0
	}
	x := n
	y := (x + 1) / 2
	for y < x {
		x = y
		y = (x + n/x) / 2
	}
	return x
}

func toSet(indices []uint64) map[uint64]bool {
	m := make(map[uint64]bool, len(indices))
	for _, idx := range indices {
		m[idx] = true
	}
	return m
}

func finalizedEpoch(st beaconState) uint64 {
	return st.FinalizedCheckpoint().Epoch
}
