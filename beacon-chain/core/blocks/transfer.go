package blocks

import (	coretime "github.com/eth2core/beacon-transition/beacon-chain/core/time"
	"github.com/eth2core/beacon-transition/beacon-chain/core/helpers"
	"github.com/eth2core/beacon-transition/beacon-chain/core/signing"
	"github.com/eth2core/beacon-transition/config/params"
	"github.com/eth2core/beacon-transition/crypto/hash"
	v1alpha1 "github.com/eth2core/beacon-transition/proto/prysm/v1alpha1"
	"github.com/pkg/errors"
)

var ErrTransferInsufficientBalance = errors.New("blocks: transfer sender balance too low")
var ErrTransferWrongSlot = errors.New("blocks: transfer slot does not match state slot")
var ErrTransferSenderNotWithdrawable = errors.New("blocks: transfer sender is still an active, bonded validator")
var ErrTransferWithdrawalCredentialsMismatch = errors.New("blocks: transfer public key does not match sender withdrawal credentials")

// ProcessTransfer validates and applies a balance transfer directly
// between two validator indices . This operation predates
// mainline eth2 dropping direct BLS-withdrawn transfers; no transfer.rs
// survived the original_source filtering pass, so the checks below
// follow the phase0 v0.8 process_transfer algorithm generally (see
// DESIGN.md).
func ProcessTransfer(st beaconState, t *v1alpha1.Transfer) error {
	cfg := params.BeaconConfig()

	total := t.Amount + t.Fee
	if st.BalanceAtIndex(t.Sender) < total || st.BalanceAtIndex(t.Sender) < cfg.MinDepositAmount {
		return ErrTransferInsufficientBalance
	}
	if st.Slot() != t.Slot {
		return ErrTransferWrongSlot
	}

	sender := st.ValidatorAtIndexReadOnly(t.Sender)
	currentEpoch := uint64(coretime.CurrentEpoch(stateAccessor{st}))
	eligible := sender.ActivationEligibilityEpoch == cfg.FarFutureEpoch ||
		currentEpoch >= sender.WithdrawableEpoch ||
		total+cfg.MaxEffectiveBalance <= st.BalanceAtIndex(t.Sender)
	if !eligible {
		return ErrTransferSenderNotWithdrawable
	}

	pubkeyHash := hash.Hash(t.PublicKey[:])
	var wantCredentials [32]byte
	wantCredentials[0] = cfg.BLSWithdrawalPrefixByte
	copy(wantCredentials[1:], pubkeyHash[1:])
	if sender.WithdrawalCredentials != wantCredentials {
		return ErrTransferWithdrawalCredentialsMismatch
	}

	domain := signing.Domain(st.Fork(), currentEpoch, cfg.DomainTransfer)
	if err := signing.VerifyObjectSignature(transferSigningRoot{t}, domain, t.PublicKey[:], t.Signature[:]); err != nil {
		return err
	}

	st.DecreaseBalance(t.Sender, total)
	st.IncreaseBalance(t.Recipient, t.Amount)
	proposerIndex, err := helpers.BeaconProposerIndex(st)
	if err != nil {
		return err
	}
	st.IncreaseBalance(proposerIndex, t.Fee)
	return nil
}

// transferSigningRoot adapts Transfer's signature-excluding SigningRoot
// to the interface signing.VerifyObjectSignature expects.
type transferSigningRoot struct{ t *v1alpha1.Transfer }

func (t transferSigningRoot) HashTreeRoot() ([32]byte, error) { return t.t.SigningRoot() }
