package blocks

import (	coretime "github.com/eth2core/beacon-transition/beacon-chain/core/time"
	"github.com/eth2core/beacon-transition/beacon-chain/core/helpers"
	"github.com/eth2core/beacon-transition/beacon-chain/core/signing"
	"github.com/eth2core/beacon-transition/config/params"
	"github.com/eth2core/beacon-transition/crypto/hash"
	v1alpha1 "github.com/eth2core/beacon-transition/proto/prysm/v1alpha1"
)

// epochRoot wraps a uint64 epoch so it can be signed: the randao reveal
// commits to the epoch number's hash-tree-root, not the epoch itself.
type epochRoot uint64

func (e epochRoot) HashTreeRoot() ([32]byte, error) {
	var out [32]byte
	b := make([]byte, 8)
	for i := 0; i < 8; i++ {
		b[i] = byte(e >> (8 * i))
	}
	copy(out[:8], b)
	return out, nil
}

// ProcessRandao verifies the block's randao reveal against the proposer's
// key and mixes it into the state's randao mix for the current epoch.
func ProcessRandao(st beaconState, body *v1alpha1.BeaconBlockBody) error {
	cfg := params.BeaconConfig()
	proposerIndex, err := helpers.BeaconProposerIndex(st)
	if err != nil {
		return err
	}
	proposer := st.ValidatorAtIndexReadOnly(proposerIndex)

	epoch := coretime.CurrentEpoch(stateAccessor{st})
	domain := signing.Domain(st.Fork(), uint64(epoch), cfg.DomainRandao)
	if err := signing.VerifyObjectSignature(epochRoot(epoch), domain, proposer.PublicKey[:], body.RandaoReveal[:]); err != nil {
		return err
	}

	mixIndex := uint64(epoch) % cfg.EpochsPerHistoricalVector
	currentMix := st.RandaoMixAtIndex(mixIndex)
	revealHash := hash.Hash(body.RandaoReveal[:])
	var newMix [32]byte
	for i := range newMix {
		newMix[i] = currentMix[i] ^ revealHash[i]
	}
	st.SetRandaoMixAtIndex(mixIndex, newMix)
	return nil
}

type stateAccessor struct{ beaconState }

func (s stateAccessor) Slot() uint64 { return s.beaconState.Slot() }
