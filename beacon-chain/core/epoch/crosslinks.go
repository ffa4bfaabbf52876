package epoch

import (	coretime "github.com/eth2core/beacon-transition/beacon-chain/core/time"
	"github.com/eth2core/beacon-transition/beacon-chain/core/helpers"
	"github.com/eth2core/beacon-transition/config/params"
	v1alpha1 "github.com/eth2core/beacon-transition/proto/prysm/v1alpha1"
)

// ProcessCrosslinks rolls current_crosslinks into previous_crosslinks and
// then, for every shard due a committee in the previous and current
// epoch, adopts the shard's winning crosslink into current_crosslinks if
// it carries a 2/3 committee-balance majority (grounded on
// per_epoch/crosslink.rs's process_crosslinks).
func ProcessCrosslinks(st beaconState) error {
	cfg := params.BeaconConfig()

	st.RotateCrosslinks()

	previousEpoch := uint64(coretime.PreviousEpoch(stateAccessor{st}))
	currentEpoch := uint64(coretime.CurrentEpoch(stateAccessor{st}))

	for _, epoch := range []uint64{previousEpoch, currentEpoch} {
		count := helpers.CommitteeCount(st, epoch)
		startShard, err := helpers.StartShard(st, epoch)
		if err != nil {
			return err
		}
		for offset := uint64(0); offset < count; offset++ {
			shard := (startShard + offset) % cfg.ShardCount
			committee, err := helpers.CrosslinkCommittee(st, epoch, shard)
			if err != nil {
				return err
			}
			winning, attesting, err := winningCrosslinkAndAttesters(st, epoch, shard)
			if err != nil {
				return err
			}
			if winning == nil {
				continue
			}
			if helpers.TotalBalance(st, attesting)*3 >= helpers.TotalBalance(st, committee)*2 {
				st.SetCurrentCrosslinkAtShard(shard, winning)
			}
		}
	}
	return nil
}

// winningCrosslinkAndAttesters finds, among the attestations in epoch
// that name shard, the crosslink with the greatest attesting balance
// (ties broken by the greatest data root, then by the lowest crosslink
// root) that also correctly extends the
// shard's current parent crosslink, along with the unslashed indices
// that attested to it. Returns a nil crosslink if no attestation for the
// shard extends the parent correctly.
func winningCrosslinkAndAttesters(st beaconState, epoch, shard uint64) (*v1alpha1.Crosslink, []uint64, error) {
	var atts []*v1alpha1.PendingAttestation
	if epoch == uint64(coretime.CurrentEpoch(stateAccessor{st})) {
		atts = st.CurrentEpochAttestations()
	} else {
		atts = st.PreviousEpochAttestations()
	}

	parent := st.CurrentCrosslinkAtShard(shard)
	parentRoot, err := parent.HashTreeRoot()
	if err != nil {
		return nil, nil, err
	}

	candidates := make(map[[32]byte]*v1alpha1.Crosslink)
	candidateAtts := make(map[[32]byte][]*v1alpha1.PendingAttestation)
	for _, att := range atts {
		if att.Data.Crosslink.Shard != shard {
			continue
		}
		if att.Data.Target.Epoch != epoch {
			continue
		}
		if att.Data.Crosslink.ParentRoot != parentRoot {
			continue
		}
		root, err := att.Data.Crosslink.HashTreeRoot()
		if err != nil {
			return nil, nil, err
		}
		candidates[root] = att.Data.Crosslink
		candidateAtts[root] = append(candidateAtts[root], att)
	}
	if len(candidates) == 0 {
		return nil, nil, nil
	}

	var bestRoot [32]byte
	var bestBalance uint64
	first := true
	for root, atts := range candidateAtts {
		balance, err := attestingBalance(st, atts)
		if err != nil {
			return nil, nil, err
		}
		better := first || balance > bestBalance
		if !better && balance == bestBalance {
			dataRoot, bestDataRoot := candidates[root].DataRoot, candidates[bestRoot].DataRoot
			better = lessRoot(bestDataRoot, dataRoot) || (dataRoot == bestDataRoot && lessRoot(root, bestRoot))
		}
		if better {
			bestRoot = root
			bestBalance = balance
			first = false
		}
	}

	indices, err := unslashedAttestingIndices(st, candidateAtts[bestRoot])
	if err != nil {
		return nil, nil, err
	}
	return candidates[bestRoot], indices, nil
}

func lessRoot(a, b [32]byte) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}
