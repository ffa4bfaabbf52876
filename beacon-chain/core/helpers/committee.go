package helpers

import (	"github.com/eth2core/beacon-transition/beacon-chain/cache"
	coretime "github.com/eth2core/beacon-transition/beacon-chain/core/time"
	"github.com/eth2core/beacon-transition/config/params"
	"github.com/eth2core/beacon-transition/crypto/hash"
	"github.com/eth2core/beacon-transition/encoding/bytesutil"
	v1alpha1 "github.com/eth2core/beacon-transition/proto/prysm/v1alpha1"
)

// committeeCache memoizes the full shuffled active-index list for a
// given seed, since a single epoch's worth of CrosslinkCommittee calls
// (one per shard with a committee that epoch) all shuffle the same
// active set under the same seed.
var committeeCache = cache.NewCommitteeCache()

// ErrEpochOutOfRange is returned when a query asks about an epoch the
// state cannot answer for (beyond next epoch, or too far in the past for
// the relevant historical vector).
type ErrEpochOutOfRange struct{}

func (ErrEpochOutOfRange) Error() string { return "helpers: epoch out of range" }

// beaconState is the slice of state.BeaconState committee computation
// needs. Declared locally (rather than importing the state package's
// concrete type everywhere) to keep this file's dependency surface
// exactly what it uses; beacon-chain/state satisfies it structurally.
type beaconState interface {
	Slot() uint64
	NumValidators() int
	ValidatorAtIndexReadOnly(i uint64) *v1alpha1.Validator
	RandaoMixAtIndex(i uint64) [32]byte
	RandaoMixesLength() uint64
	ActiveIndexRootAtIndex(i uint64) [32]byte
	StartShard() uint64
}

// ActiveValidatorIndices returns the indices of validators active at
// epoch, in registry order.
func ActiveValidatorIndices(st beaconState, epoch uint64) []uint64 {
	var indices []uint64
	for i := 0; i < st.NumValidators(); i++ {
		if st.ValidatorAtIndexReadOnly(uint64(i)).IsActive(epoch) {
			indices = append(indices, uint64(i))
		}
	}
	return indices
}

// CommitteeCount returns the number of crosslink committees active in
// epoch, clamped between 1 and SHARD_COUNT / SLOTS_PER_EPOCH and rounded
// down to a multiple of SLOTS_PER_EPOCH so committees divide evenly
// across the epoch's slots.
func CommitteeCount(st beaconState, epoch uint64) uint64 {
	cfg := params.BeaconConfig()
	activeCount := uint64(len(ActiveValidatorIndices(st, epoch)))

	committeesPerSlot := activeCount / cfg.SlotsPerEpoch / cfg.TargetCommitteeSize
	maxPerSlot := cfg.ShardCount / cfg.SlotsPerEpoch
	if committeesPerSlot > maxPerSlot {
		committeesPerSlot = maxPerSlot
	}
	if committeesPerSlot < 1 {
		committeesPerSlot = 1
	}
	if committeesPerSlot > cfg.MaxCommitteesPerSlot {
		committeesPerSlot = cfg.MaxCommitteesPerSlot
	}
	return committeesPerSlot * cfg.SlotsPerEpoch
}

// ShardDelta returns how many shards get a crosslink committee in epoch:
// CommitteeCount capped so the rotation never wraps the shard ring within
// a single epoch.
func ShardDelta(st beaconState, epoch uint64) uint64 {
	cfg := params.BeaconConfig()
	count := CommitteeCount(st, epoch)
	ceiling := cfg.ShardCount - cfg.ShardCount/cfg.SlotsPerEpoch
	if count > ceiling {
		return ceiling
	}
	return count
}

// StartShard returns the first shard assigned a committee in epoch. It
// must be called with epoch within [currentEpoch-somewhat, nextEpoch];
// callers resolve it relative to the state's own current epoch by
// walking shard deltas forward or backward from the stored start_shard.
func StartShard(st beaconState, epoch uint64) (uint64, error) {
	cfg := params.BeaconConfig()
	current := coretime.CurrentEpoch(stateSlotOnly{st})
	next := uint64(current) + 1
	if epoch > next {
		return 0, ErrEpochOutOfRange{}
	}

	checkEpoch := next
	shard := (st.StartShard() + ShardDelta(st, uint64(current))) % cfg.ShardCount
	for checkEpoch > epoch {
		checkEpoch--
		shard = (shard + cfg.ShardCount - ShardDelta(st, checkEpoch)) % cfg.ShardCount
	}
	return shard, nil
}

type stateSlotOnly struct{ beaconState }

func (s stateSlotOnly) Slot() uint64 { return s.beaconState.Slot() }

// Seed derives the committee-shuffle seed for epoch under domainType
// (feeds this into ShuffledIndex as the per-round hash input).
// The randao mix is read from EPOCHS_PER_HISTORICAL_VECTOR - 1 epochs
// ahead of epoch so the seed for epoch E is fixed well before E starts.
func Seed(st beaconState, epoch uint64, domainType [4]byte) [32]byte {
	cfg := params.BeaconConfig()
	mixEpoch := epoch + cfg.EpochsPerHistoricalVector - 1
	mix := st.RandaoMixAtIndex(mixEpoch)
	activeRoot := st.ActiveIndexRootAtIndex(epoch)

	return hash.Hash(domainType[:], bytesutil.Bytes8(epoch), mix[:], activeRoot[:])
}

// CrosslinkCommittee returns the committee assigned to shard in epoch
// (the compute_committee applied to the shard's index within the
// epoch's shard assignment). A shard with no committee in epoch gets an
// empty committee.
func CrosslinkCommittee(st beaconState, epoch, shard uint64) ([]uint64, error) {
	cfg := params.BeaconConfig()
	epochStartShard, err := StartShard(st, epoch)
	if err != nil {
		return nil, err
	}
	committeesPerEpoch := CommitteeCount(st, epoch)
	offset := (shard + cfg.ShardCount - epochStartShard) % cfg.ShardCount
	if offset >= committeesPerEpoch {
		return nil, nil
	}
	committeeIndex := offset

	seed := Seed(st, epoch, cfg.DomainAttestation)
	shuffled, err := shuffledActiveIndices(st, epoch, seed)
	if err != nil {
		return nil, err
	}

	n := uint64(len(shuffled))
	start := (n * committeeIndex) / committeesPerEpoch
	end := (n * (committeeIndex + 1)) / committeesPerEpoch
	return shuffled[start:end], nil
}

// shuffledActiveIndices returns the full shuffled active-validator-index
// list for epoch/seed, computing it once per seed and reusing the result
// across every CrosslinkCommittee call that shares it.
func shuffledActiveIndices(st beaconState, epoch uint64, seed [32]byte) ([]uint64, error) {
	if cached, err := committeeCache.Get(seed, epoch); err == nil {
		return cached, nil
	}
	indices := ActiveValidatorIndices(st, epoch)
	shuffled, err := ShuffleList(indices, seed)
	if err != nil {
		return nil, err
	}
	committeeCache.Put(seed, epoch, shuffled)
	return shuffled, nil
}

// Assignment is "which committee/shard/slot is validator V in during
// epoch E" (the committee-assignment query), exposed as a
// convenience for validator duties though it is not itself part of the
// state transition. Grounded on executive/assignment.rs's
// committee_assignment.
type Assignment struct {
	Validators []uint64
	Shard uint64
	Slot uint64
}

// CommitteeAssignment returns validatorIndex's committee assignment for
// epoch, or nil if the validator is not assigned any committee that
// epoch (it may not yet be active).
func CommitteeAssignment(st beaconState, epoch, validatorIndex uint64) (*Assignment, error) {
	cfg := params.BeaconConfig()
	current := coretime.CurrentEpoch(stateSlotOnly{st})
	next := uint64(current) + 1
	if epoch > next {
		return nil, ErrEpochOutOfRange{}
	}

	committeesPerSlot := CommitteeCount(st, epoch) / cfg.SlotsPerEpoch
	epochStartSlot := epoch * cfg.SlotsPerEpoch
	epochStartShard, err := StartShard(st, epoch)
	if err != nil {
		return nil, err
	}

	for slot := epochStartSlot; slot < epochStartSlot+cfg.SlotsPerEpoch; slot++ {
		offset := committeesPerSlot * (slot % cfg.SlotsPerEpoch)
		slotStartShard := (epochStartShard + offset) % cfg.ShardCount
		for i := uint64(0); i < committeesPerSlot; i++ {
			shard := (slotStartShard + i) % cfg.ShardCount
			committee, err := CrosslinkCommittee(st, epoch, shard)
			if err != nil {
				return nil, err
			}
			for _, v := range committee {
				if v == validatorIndex {
					return &Assignment{Validators: committee, Shard: shard, Slot: slot}, nil
				}
			}
		}
	}
	return nil, nil
}

// JustifiedActiveValidators returns the active validator indices at the
// state's current-justified checkpoint epoch: a read-only query the
// fork-choice collaborator asks the core for , grounded on
// executive/choice.rs's justified_active_validators.
func JustifiedActiveValidators(st beaconState, currentJustifiedEpoch uint64) []uint64 {
	return ActiveValidatorIndices(st, currentJustifiedEpoch)
}
