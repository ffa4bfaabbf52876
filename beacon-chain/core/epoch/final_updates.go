package epoch

import (	coretime "github.com/eth2core/beacon-transition/beacon-chain/core/time"
	"github.com/eth2core/beacon-transition/beacon-chain/core/helpers"
	"github.com/eth2core/beacon-transition/config/params"
	"github.com/eth2core/beacon-transition/encoding/ssz"
)

// ProcessFinalUpdates runs the epoch-boundary bookkeeping that doesn't
// belong to any of the other four stages: eth1 vote reset, effective
// balance hysteresis, start-shard rotation, active-index and
// compact-committee root placement, slashings-vector zeroing, randao
// carry-forward, the historical-batch accumulator, and attestation
// rotation (grounded on per_epoch/finalize.rs's
// process_final_updates).
func ProcessFinalUpdates(st beaconState) error {
	cfg := params.BeaconConfig()
	currentEpoch := uint64(coretime.CurrentEpoch(stateAccessor{st}))
	nextEpoch := currentEpoch + 1

	if (st.Slot()+1)%cfg.SlotsPerEth1VotingPeriod == 0 {
		st.SetEth1DataVotes(nil)
	}

	halfIncrement := cfg.EffectiveBalanceIncrement / 2
	for i := 0; i < st.NumValidators(); i++ {
		idx := uint64(i)
		v := st.ValidatorAtIndex(idx)
		balance := st.BalanceAtIndex(idx)
		if balance < v.EffectiveBalance || v.EffectiveBalance+3*halfIncrement < balance {
			eff := balance - balance%cfg.EffectiveBalanceIncrement
			if eff > cfg.MaxEffectiveBalance {
				eff = cfg.MaxEffectiveBalance
			}
			v.EffectiveBalance = eff
			st.UpdateValidatorAtIndex(idx, v)
		}
	}

	st.SetStartShard((st.StartShard() + helpers.ShardDelta(st, currentEpoch)) % cfg.ShardCount)

	indexEpoch := nextEpoch + cfg.ActivationExitDelay
	indexRootPosition := indexEpoch % cfg.EpochsPerHistoricalVector
	activeRoot, err := activeIndexRoot(st, indexEpoch)
	if err != nil {
		return err
	}
	st.SetActiveIndexRootAtIndex(indexRootPosition, activeRoot)

	committeeRootPosition := nextEpoch % cfg.EpochsPerHistoricalVector
	committeeRoot, err := compactCommitteeRoot(st, nextEpoch)
	if err != nil {
		return err
	}
	st.SetCompactCommitteeRootAtIndex(committeeRootPosition, committeeRoot)

	st.SetSlashingAtIndex(nextEpoch%cfg.EpochsPerSlashingsVector, 0)

	st.SetRandaoMixAtIndex(nextEpoch%cfg.EpochsPerHistoricalVector, st.RandaoMixAtIndex(currentEpoch%cfg.EpochsPerHistoricalVector))

	if nextEpoch%(cfg.SlotsPerHistoricalRoot/cfg.SlotsPerEpoch) == 0 {
		root, err := historicalBatchRoot(st)
		if err != nil {
			return err
		}
		st.AppendHistoricalRoot(root)
	}

	st.RotateEpochAttestations()

	return nil
}

// activeIndexRoot merkleizes the active validator index set at epoch, the
// same list ActiveValidatorIndices returns, bounded by
// VALIDATOR_REGISTRY_LIMIT.
func activeIndexRoot(st beaconState, epoch uint64) ([32]byte, error) {
	cfg := params.BeaconConfig()
	indices := helpers.ActiveValidatorIndices(st, epoch)
	hh := ssz.NewHasher()
	defer ssz.PutHasher(hh)
	indx := hh.Index()
	hh.PutUint64Array(indices, cfg.ValidatorRegistryLimit)
	hh.Merkleize(indx)
	return hh.HashRoot()
}

// compactCommitteeRoot summarizes the committees assigned at epoch: the
// phase1 light-client "compact committee" this profile carries a state
// slot for but does not otherwise use. Computed here as the merkle root
// of each shard's committee validator-index list; pubkeys and the full
// phase1 CompactValidator bit-packing are not included, since no other
// part of this profile consumes compact committees beyond their root.
func compactCommitteeRoot(st beaconState, epoch uint64) ([32]byte, error) {
	cfg := params.BeaconConfig()
	hh := ssz.NewHasher()
	defer ssz.PutHasher(hh)
	indx := hh.Index()

	count := helpers.CommitteeCount(st, epoch)
	startShard, err := helpers.StartShard(st, epoch)
	if err != nil {
		return [32]byte{}, err
	}
	for offset := uint64(0); offset < count; offset++ {
		shard := (startShard + offset) % cfg.ShardCount
		committee, err := helpers.CrosslinkCommittee(st, epoch, shard)
		if err != nil {
			return [32]byte{}, err
		}
		hh.PutUint64Array(committee, cfg.MaxValidatorsPerCommittee)
	}
	hh.Merkleize(indx)
	return hh.HashRoot()
}

// historicalBatchRoot merkleizes the pair of block-root and state-root
// vectors into the accumulator entry pushed every SLOTS_PER_HISTORICAL_ROOT.
func historicalBatchRoot(st beaconState) ([32]byte, error) {
	cfg := params.BeaconConfig()
	blockRoots := make([][32]byte, cfg.SlotsPerHistoricalRoot)
	stateRoots := make([][32]byte, cfg.SlotsPerHistoricalRoot)
	for i := uint64(0); i < cfg.SlotsPerHistoricalRoot; i++ {
		blockRoots[i] = st.BlockRootAtIndex(i)
		stateRoots[i] = st.StateRootAtIndex(i)
	}
	hh := ssz.NewHasher()
	defer ssz.PutHasher(hh)
	indx := hh.Index()
	for _, roots := range [][][32]byte{blockRoots, stateRoots} {
		vecIndx := hh.Index()
		for _, r := range roots {
			hh.PutBytes(r[:])
		}
		hh.Merkleize(vecIndx)
	}
	hh.Merkleize(indx)
	return hh.HashRoot()
}
