package transition

import (	"github.com/eth2core/beacon-transition/beacon-chain/core/blocks"
	"github.com/eth2core/beacon-transition/beacon-chain/core/helpers"
	"github.com/eth2core/beacon-transition/beacon-chain/state"
	"github.com/eth2core/beacon-transition/config/params"
	"github.com/eth2core/beacon-transition/encoding/ssz"
	v1alpha1 "github.com/eth2core/beacon-transition/proto/prysm/v1alpha1"
)

// Genesis builds the genesis state and genesis block from an initial
// batch of validator deposits (the external genesis interface,
// grounded on executive/genesis.rs's genesis/genesis_beacon_state): each
// deposit is applied through the ordinary deposit processor, every
// validator whose effective balance already clears the maximum is
// activated immediately, and the active-index-root vector is seeded
// uniformly with the resulting validator set's root.
func Genesis(deposits []*v1alpha1.Deposit, genesisTime uint64, eth1Data *v1alpha1.Eth1Data) (*v1alpha1.BeaconBlock, *state.BeaconState, error) {
	st, err := GenesisBeaconState(deposits, genesisTime, eth1Data)
	if err != nil {
		return nil, nil, err
	}
	stateRoot, err := st.HashTreeRoot()
	if err != nil {
		return nil, nil, err
	}
	blk := &v1alpha1.BeaconBlock{
		StateRoot: stateRoot,
		Body: &v1alpha1.BeaconBlockBody{},
	}
	return blk, st, nil
}

// GenesisBeaconState builds the genesis state alone.
func GenesisBeaconState(deposits []*v1alpha1.Deposit, genesisTime uint64, eth1Data *v1alpha1.Eth1Data) (*state.BeaconState, error) {
	cfg := params.BeaconConfig()
	st := state.New(cfg.ShardCount, cfg.SlotsPerHistoricalRoot, cfg.EpochsPerHistoricalVector, cfg.EpochsPerSlashingsVector)
	st.SetGenesisTime(genesisTime)
	st.SetEth1Data(eth1Data)

	for _, d := range deposits {
		if err := blocks.ProcessDeposit(st, d); err != nil {
			return nil, err
		}
	}

	for i := 0; i < st.NumValidators(); i++ {
		v := st.ValidatorAtIndex(uint64(i))
		if v.EffectiveBalance >= cfg.MaxEffectiveBalance {
			v.ActivationEligibilityEpoch = cfg.GenesisEpoch
			v.ActivationEpoch = cfg.GenesisEpoch
			st.UpdateValidatorAtIndex(uint64(i), v)
		}
	}

	indices := helpers.ActiveValidatorIndices(st, cfg.GenesisEpoch)
	root, err := activeIndexRoot(indices, cfg.ValidatorRegistryLimit)
	if err != nil {
		return nil, err
	}
	for i := uint64(0); i < cfg.EpochsPerHistoricalVector; i++ {
		st.SetActiveIndexRootAtIndex(i, root)
	}

	return st, nil
}

func activeIndexRoot(indices []uint64, limit uint64) ([32]byte, error) {
	hh := ssz.NewHasher()
	defer ssz.PutHasher(hh)
	indx := hh.Index()
	hh.PutUint64Array(indices, limit)
	hh.Merkleize(indx)
	return hh.HashRoot()
}
