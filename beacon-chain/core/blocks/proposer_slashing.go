package blocks

import (	"github.com/eth2core/beacon-transition/beacon-chain/core/signing"
	"github.com/eth2core/beacon-transition/beacon-chain/core/validators"
	"github.com/eth2core/beacon-transition/config/params"
	"github.com/eth2core/beacon-transition/consensus-types/primitives"
	v1alpha1 "github.com/eth2core/beacon-transition/proto/prysm/v1alpha1"
	"github.com/eth2core/beacon-transition/time/slots"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

var ErrProposerSlashingInvalidSlot = errors.New("blocks: proposer slashing headers in different epochs")
var ErrProposerSlashingSameHeader = errors.New("blocks: proposer slashing headers are identical")
var ErrProposerSlashingInvalidIndex = errors.New("blocks: proposer slashing proposer index out of range")
var ErrProposerSlashingAlreadySlashed = errors.New("blocks: proposer already unslashable")

// ProcessProposerSlashing verifies a ProposerSlashing's two conflicting
// signed headers and slashes the named proposer (grounded on
// operations/proposer_slashing.rs's process_proposer_slashing).
func ProcessProposerSlashing(st beaconState, ps *v1alpha1.ProposerSlashing) error {
	cfg := params.BeaconConfig()

	epoch1 := slots.ToEpoch(primitives.Slot(ps.Header1.Header.Slot))
	epoch2 := slots.ToEpoch(primitives.Slot(ps.Header2.Header.Slot))
	if epoch1 != epoch2 {
		return ErrProposerSlashingInvalidSlot
	}
	if *ps.Header1.Header == *ps.Header2.Header {
		return ErrProposerSlashingSameHeader
	}
	if ps.ProposerIndex >= uint64(st.NumValidators()) {
		return ErrProposerSlashingInvalidIndex
	}

	currentEpoch := uint64(epoch1)
	proposer := st.ValidatorAtIndexReadOnly(ps.ProposerIndex)
	if !proposer.IsSlashable(currentEpoch) {
		return ErrProposerSlashingAlreadySlashed
	}

	var g errgroup.Group
	for _, signed := range []*v1alpha1.SignedBeaconBlockHeader{ps.Header1, ps.Header2} {
		signed := signed
		g.Go(func() error {
			headerEpoch := uint64(slots.ToEpoch(primitives.Slot(signed.Header.Slot)))
			domain := signing.Domain(st.Fork(), headerEpoch, cfg.DomainBeaconProposer)
			return signing.VerifyObjectSignature(signed.Header, domain, proposer.PublicKey[:], signed.Signature[:])
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	return validators.SlashValidator(st, ps.ProposerIndex, nil)
}
