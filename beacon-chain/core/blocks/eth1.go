package blocks

import (	"github.com/eth2core/beacon-transition/config/params"
	v1alpha1 "github.com/eth2core/beacon-transition/proto/prysm/v1alpha1"
)

// ProcessEth1Data records the block's eth1 vote and adopts it as the
// state's canonical eth1 data once it has a strict majority of votes
// cast within the current voting period.
func ProcessEth1Data(st beaconState, body *v1alpha1.BeaconBlockBody) {
	st.AppendEth1DataVote(body.Eth1Data)

	votes := st.Eth1DataVotes()
	count := 0
	for _, v := range votes {
		if v.Equals(body.Eth1Data) {
			count++
		}
	}
	if uint64(count*2) > params.BeaconConfig().SlotsPerEth1VotingPeriod {
		st.SetEth1Data(body.Eth1Data)
	}
}
