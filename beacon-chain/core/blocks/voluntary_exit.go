package blocks

import (	coretime "github.com/eth2core/beacon-transition/beacon-chain/core/time"
	"github.com/eth2core/beacon-transition/beacon-chain/core/signing"
	"github.com/eth2core/beacon-transition/beacon-chain/core/validators"
	"github.com/eth2core/beacon-transition/config/params"
	v1alpha1 "github.com/eth2core/beacon-transition/proto/prysm/v1alpha1"
	"github.com/pkg/errors"
)

var ErrVoluntaryExitInvalidIndex = errors.New("blocks: voluntary exit validator index out of range")
var ErrVoluntaryExitNotActive = errors.New("blocks: voluntary exit validator is not active")
var ErrVoluntaryExitAlreadyExited = errors.New("blocks: voluntary exit validator has already initiated exit")
var ErrVoluntaryExitNotYetValid = errors.New("blocks: voluntary exit epoch is in the future")
var ErrVoluntaryExitNotLongEnough = errors.New("blocks: voluntary exit validator has not met the persistent committee period")

// ProcessVoluntaryExit validates a SignedVoluntaryExit and queues the
// named validator for exit (grounded on
// operations/voluntary_exit.rs's process_voluntary_exit).
func ProcessVoluntaryExit(st beaconState, signed *v1alpha1.SignedVoluntaryExit) error {
	cfg := params.BeaconConfig()
	exit := signed.Exit

	if exit.ValidatorIndex >= uint64(st.NumValidators()) {
		return ErrVoluntaryExitInvalidIndex
	}
	validator := st.ValidatorAtIndexReadOnly(exit.ValidatorIndex)
	currentEpoch := uint64(coretime.CurrentEpoch(stateAccessor{st}))

	if !validator.IsActive(currentEpoch) {
		return ErrVoluntaryExitNotActive
	}
	if validator.ExitEpoch != cfg.FarFutureEpoch {
		return ErrVoluntaryExitAlreadyExited
	}
	if currentEpoch < exit.Epoch {
		return ErrVoluntaryExitNotYetValid
	}
	if currentEpoch < validator.ActivationEpoch+cfg.PersistentCommitteePeriod {
		return ErrVoluntaryExitNotLongEnough
	}

	domain := signing.Domain(st.Fork(), exit.Epoch, cfg.DomainVoluntaryExit)
	if err := signing.VerifyObjectSignature(exit, domain, validator.PublicKey[:], signed.Signature[:]); err != nil {
		return err
	}

	validators.InitiateValidatorExit(st, exit.ValidatorIndex)
	return nil
}
