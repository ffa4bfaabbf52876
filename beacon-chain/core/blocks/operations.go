package blocks

import (	"github.com/eth2core/beacon-transition/config/params"
	v1alpha1 "github.com/eth2core/beacon-transition/proto/prysm/v1alpha1"
	"github.com/pkg/errors"
)

var ErrTooManyProposerSlashings = errors.New("blocks: too many proposer slashings")
var ErrTooManyAttesterSlashings = errors.New("blocks: too many attester slashings")
var ErrTooManyAttestations = errors.New("blocks: too many attestations")
var ErrTooManyDeposits = errors.New("blocks: deposit count does not match outstanding eth1 deposits")
var ErrTooManyVoluntaryExits = errors.New("blocks: too many voluntary exits")
var ErrTooManyTransfers = errors.New("blocks: too many transfers")
var ErrDuplicateTransfer = errors.New("blocks: duplicate transfer in block body")

// ProcessOperations runs every operation list in body against st, in
// the fixed order, after checking each list's MAX_* bound (grounded on operations/mod.rs's process_operations).
func ProcessOperations(st beaconState, body *v1alpha1.BeaconBlockBody) error {
	cfg := params.BeaconConfig()

	eth1 := st.Eth1Data()
	outstanding := eth1.DepositCount - st.Eth1DepositIndex()
	wantDeposits := outstanding
	if wantDeposits > cfg.MaxDeposits {
		wantDeposits = cfg.MaxDeposits
	}
	if uint64(len(body.Deposits)) != wantDeposits {
		return ErrTooManyDeposits
	}

	for i := 1; i < len(body.Transfers); i++ {
		for j := 0; j < i; j++ {
			if *body.Transfers[i] == *body.Transfers[j] {
				return ErrDuplicateTransfer
			}
		}
	}

	if uint64(len(body.ProposerSlashings)) > cfg.MaxProposerSlashings {
		return ErrTooManyProposerSlashings
	}
	for _, ps := range body.ProposerSlashings {
		if err := ProcessProposerSlashing(st, ps); err != nil {
			return err
		}
	}

	if uint64(len(body.AttesterSlashings)) > cfg.MaxAttesterSlashings {
		return ErrTooManyAttesterSlashings
	}
	for _, as := range body.AttesterSlashings {
		if err := ProcessAttesterSlashing(st, as); err != nil {
			return err
		}
	}

	if uint64(len(body.Attestations)) > cfg.MaxAttestations {
		return ErrTooManyAttestations
	}
	for _, att := range body.Attestations {
		if err := ProcessAttestation(st, att); err != nil {
			return err
		}
	}

	if uint64(len(body.Deposits)) > cfg.MaxDeposits {
		return ErrTooManyDeposits
	}
	for _, d := range body.Deposits {
		if err := ProcessDeposit(st, d); err != nil {
			return err
		}
	}

	if uint64(len(body.VoluntaryExits)) > cfg.MaxVoluntaryExits {
		return ErrTooManyVoluntaryExits
	}
	for _, ve := range body.VoluntaryExits {
		if err := ProcessVoluntaryExit(st, ve); err != nil {
			return err
		}
	}

	if uint64(len(body.Transfers)) > cfg.MaxTransfers {
		return ErrTooManyTransfers
	}
	for _, t := range body.Transfers {
		if err := ProcessTransfer(st, t); err != nil {
			return err
		}
	}

	return nil
}
