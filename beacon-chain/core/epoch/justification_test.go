package epoch_test

import (
	"testing"

	"github.com/eth2core/beacon-transition/beacon-chain/core/epoch"
	"github.com/eth2core/beacon-transition/config/params"
	"github.com/eth2core/beacon-transition/testing/require"
	"github.com/eth2core/beacon-transition/testing/util"
)

// ProcessJustificationAndFinalization is a no-op in the genesis epoch and
// the one after it; this checks the genesis case.
func TestProcessJustificationAndFinalization_NoOpAtGenesis(t *testing.T) {
	cfg := params.BeaconConfig()
	st, _, err := util.DeterministicGenesisState(8)
	require.NoError(t, err)

	beforeBits := st.JustificationBits()
	beforeJustified := st.CurrentJustifiedCheckpoint()

	require.NoError(t, epoch.ProcessJustificationAndFinalization(st))

	require.Equal(t, beforeBits, st.JustificationBits())
	require.Equal(t, beforeJustified.Epoch, st.CurrentJustifiedCheckpoint().Epoch)
	require.Equal(t, cfg.GenesisEpoch, st.FinalizedCheckpoint().Epoch)
}
