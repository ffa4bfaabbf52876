package blocks

import (	v1alpha1 "github.com/eth2core/beacon-transition/proto/prysm/v1alpha1"
	"github.com/pkg/errors"
)

// ErrBlockStateRootInvalid is returned when a block's claimed state root
// does not match the root of the state it produced.
var ErrBlockStateRootInvalid = errors.New("blocks: block state root does not match computed state")

// stateRootHasher is the slice of state.BeaconState VerifyBlockStateRoot needs.
type stateRootHasher interface {
	HashTreeRoot() ([32]byte, error)
}

// ProcessBlock runs the full per-block state transition against st: the
// header check, randao mixing, the eth1 vote, and every block body
// operation, in the order fixed by (grounded on
// per_block/mod.rs's process_block). sig, when non-nil, is the
// proposer's signature over blk; pass nil to skip that check for an
// already-trusted block.
func ProcessBlock(st beaconState, blk *v1alpha1.BeaconBlock, sig []byte) error {
	if err := ProcessBlockHeader(st, blk, sig); err != nil {
		return err
	}
	if err := ProcessRandao(st, blk.Body); err != nil {
		return err
	}
	ProcessEth1Data(st, blk.Body)
	if err := ProcessOperations(st, blk.Body); err != nil {
		return err
	}
	return nil
}

// VerifyBlockStateRoot checks that blk's claimed state root matches the
// hash-tree-root of st after processing blk (grounded on
// per_block/state_root.rs's verify_block_state_root).
func VerifyBlockStateRoot(st stateRootHasher, blk *v1alpha1.BeaconBlock) error {
	root, err := st.HashTreeRoot()
	if err != nil {
		return err
	}
	if blk.StateRoot != root {
		return ErrBlockStateRootInvalid
	}
	return nil
}
