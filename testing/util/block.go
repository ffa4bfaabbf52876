package util

import (
	"github.com/eth2core/beacon-transition/beacon-chain/state"
	v1alpha1 "github.com/eth2core/beacon-transition/proto/prysm/v1alpha1"
)

// NewBlockAtSlot builds an empty, otherwise-valid block for st's current
// slot: correct parent root against st's latest block header and the
// state's current eth1 vote carried forward unchanged. Callers wanting
// operations in the block body should append to the returned block's
// Body before passing it to a processor.
func NewBlockAtSlot(st *state.BeaconState) (*v1alpha1.BeaconBlock, error) {
	parentRoot, err := st.LatestBlockHeader().HashTreeRoot()
	if err != nil {
		return nil, err
	}
	return &v1alpha1.BeaconBlock{
		Slot:       st.Slot(),
		ParentRoot: parentRoot,
		Body: &v1alpha1.BeaconBlockBody{
			Eth1Data: st.Eth1Data().Copy(),
		},
	}, nil
}
