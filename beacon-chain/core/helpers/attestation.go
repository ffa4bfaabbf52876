package helpers

import (	"github.com/eth2core/beacon-transition/config/params"
	"github.com/eth2core/beacon-transition/consensus-types/primitives"
	v1alpha1 "github.com/eth2core/beacon-transition/proto/prysm/v1alpha1"
	"github.com/eth2core/beacon-transition/time/slots"
)

// AttestationDataSlot recovers the slot an AttestationData was produced
// for. AttestationData itself carries no slot field ; the slot
// is reconstructed from the crosslink's shard relative to the target
// epoch's shard assignment, the same derivation
// compute_committee/committee_assignment use in reverse.
func AttestationDataSlot(st beaconState, data *v1alpha1.AttestationData) (uint64, error) {
	cfg := params.BeaconConfig()
	targetEpoch := data.Target.Epoch

	committeeCount := CommitteeCount(st, targetEpoch)
	epochStartShard, err := StartShard(st, targetEpoch)
	if err != nil {
		return 0, err
	}
	offset := (data.Crosslink.Shard + cfg.ShardCount - epochStartShard) % cfg.ShardCount
	committeesPerSlot := committeeCount / cfg.SlotsPerEpoch

	epochStartSlot := uint64(slots.EpochStart(primitives.Epoch(targetEpoch)))
	return epochStartSlot + offset/committeesPerSlot, nil
}
