package blocks

import (	coretime "github.com/eth2core/beacon-transition/beacon-chain/core/time"
	"github.com/eth2core/beacon-transition/beacon-chain/core/signing"
	"github.com/eth2core/beacon-transition/config/params"
	"github.com/eth2core/beacon-transition/encoding/ssz"
	v1alpha1 "github.com/eth2core/beacon-transition/proto/prysm/v1alpha1"
	"github.com/pkg/errors"
)

var ErrDepositMerkleInvalid = errors.New("blocks: deposit merkle proof does not verify")

// depositSigningRoot adapts DepositData's signature-excluding SigningRoot
// to the HashTreeRoot-shaped interface signing.VerifyObjectSignature
// expects.
type depositSigningRoot struct{ data *v1alpha1.DepositData }

func (d depositSigningRoot) HashTreeRoot() ([32]byte, error) { return d.data.SigningRoot() }

// ProcessDeposit verifies d's Merkle inclusion proof against the state's
// eth1 deposit root, then either credits an existing validator's balance
// or, for a new public key with a valid proof-of-possession signature,
// appends a new validator (grounded on
// operations/deposit.rs's process_deposit). An invalid
// proof-of-possession signature is accepted on-chain but silently
// dropped rather than rejected, matching deposit.rs's comment: invalid
// signatures are possible at the deposit-contract layer and must not
// halt the chain.
func ProcessDeposit(st beaconState, d *v1alpha1.Deposit) error {
	cfg := params.BeaconConfig()

	dataRoot, err := d.Data.HashTreeRoot()
	if err != nil {
		return err
	}
	eth1 := st.Eth1Data()
	branch := make([][32]byte, len(d.Proof))
	for i, p := range d.Proof {
		var chunk [32]byte
		copy(chunk[:], p)
		branch[i] = chunk
	}
	if !ssz.VerifyMerkleBranch(dataRoot, branch, cfg.DepositContractTreeDepth+1, st.Eth1DepositIndex(), eth1.DepositRoot) {
		return ErrDepositMerkleInvalid
	}
	st.SetEth1DepositIndex(st.Eth1DepositIndex() + 1)

	pubkey := d.Data.PublicKey
	amount := d.Data.Amount

	existingIndex := -1
	for i := 0; i < st.NumValidators(); i++ {
		if st.ValidatorAtIndexReadOnly(uint64(i)).PublicKey == pubkey {
			existingIndex = i
			break
		}
	}

	if existingIndex >= 0 {
		st.IncreaseBalance(uint64(existingIndex), amount)
		return nil
	}

	currentEpoch := uint64(coretime.CurrentEpoch(stateAccessor{st}))
	domain := signing.Domain(st.Fork(), currentEpoch, cfg.DomainDeposit)
	if err := signing.VerifyObjectSignature(depositSigningRoot{d.Data}, domain, pubkey[:], d.Data.Signature[:]); err != nil {
		return nil
	}

	effectiveBalance := amount - amount%cfg.EffectiveBalanceIncrement
	if effectiveBalance > cfg.MaxEffectiveBalance {
		effectiveBalance = cfg.MaxEffectiveBalance
	}
	st.AppendValidator(&v1alpha1.Validator{
		PublicKey: pubkey,
		WithdrawalCredentials: d.Data.WithdrawalCredentials,
		ActivationEligibilityEpoch: cfg.FarFutureEpoch,
		ActivationEpoch: cfg.FarFutureEpoch,
		ExitEpoch: cfg.FarFutureEpoch,
		WithdrawableEpoch: cfg.FarFutureEpoch,
		EffectiveBalance: effectiveBalance,
	})
	st.AppendBalance(amount)
	return nil
}
