// Package util builds deterministic fixtures for the transition core's
// tests: genesis states and blocks with a requested number of
// validators, built from sequential deterministic keys fed through the
// real genesis and block-processing code paths rather than hand-built
// state structs.
package util

import (
	"encoding/binary"

	"github.com/eth2core/beacon-transition/beacon-chain/core/transition"
	"github.com/eth2core/beacon-transition/beacon-chain/state"
	"github.com/eth2core/beacon-transition/config/params"
	"github.com/eth2core/beacon-transition/crypto/bls"
	v1alpha1 "github.com/eth2core/beacon-transition/proto/prysm/v1alpha1"
)

func init() {
	// Fixtures never need a real pairing check; every signature produced
	// here would verify against noopEngine, not blst, and this matters
	// only when a test passes sig != nil to a block-level processor.
	bls.UseNoVerification()
}

// DeterministicDepositsAndKeys returns count deposits for validators
// funded at MaxEffectiveBalance, each keyed by a secret key derived
// deterministically from its index, along with the keys themselves.
func DeterministicDepositsAndKeys(count uint64) ([]*v1alpha1.Deposit, []bls.SecretKey, error) {
	cfg := params.BeaconConfig()
	keys := make([]bls.SecretKey, count)
	leaves := make([][32]byte, count)
	datas := make([]*v1alpha1.DepositData, count)

	for i := uint64(0); i < count; i++ {
		var seed [32]byte
		binary.LittleEndian.PutUint64(seed[:8], i+1)
		sk, err := bls.SecretKeyFromBytes(seed[:])
		if err != nil {
			return nil, nil, err
		}
		keys[i] = sk

		var pubkey [48]byte
		copy(pubkey[:], sk.PublicKey().Marshal())
		var withdrawalCreds [32]byte
		copy(withdrawalCreds[:], pubkey[:32])
		withdrawalCreds[0] = cfg.BLSWithdrawalPrefixByte

		data := &v1alpha1.DepositData{
			PublicKey:             pubkey,
			WithdrawalCredentials: withdrawalCreds,
			Amount:                cfg.MaxEffectiveBalance,
		}
		signingRoot, err := data.SigningRoot()
		if err != nil {
			return nil, nil, err
		}
		sig := sk.Sign(signingRoot[:])
		copy(data.Signature[:], sig.Marshal())
		datas[i] = data

		root, err := data.HashTreeRoot()
		if err != nil {
			return nil, nil, err
		}
		leaves[i] = root
	}

	root, proofs := depositRootAndProofs(leaves, cfg.DepositContractTreeDepth)

	deposits := make([]*v1alpha1.Deposit, count)
	for i := uint64(0); i < count; i++ {
		proof := make([][]byte, len(proofs[i]))
		for j, p := range proofs[i] {
			chunk := p
			proof[j] = chunk[:]
		}
		deposits[i] = &v1alpha1.Deposit{Data: datas[i], Proof: proof}
	}

	_ = root
	return deposits, keys, nil
}

// DepositEth1Data returns the Eth1Data a genesis call needs: the deposit
// root the proofs above verify against, and a count matching the batch.
func DepositEth1Data(deposits []*v1alpha1.Deposit) (*v1alpha1.Eth1Data, error) {
	cfg := params.BeaconConfig()
	leaves := make([][32]byte, len(deposits))
	for i, d := range deposits {
		root, err := d.Data.HashTreeRoot()
		if err != nil {
			return nil, err
		}
		leaves[i] = root
	}
	root, _ := depositRootAndProofs(leaves, cfg.DepositContractTreeDepth)
	return &v1alpha1.Eth1Data{
		DepositRoot:  root,
		DepositCount: uint64(len(deposits)),
	}, nil
}

// DeterministicGenesisState builds a genesis beacon state with count
// validators, each funded at MaxEffectiveBalance and immediately active.
func DeterministicGenesisState(count uint64) (*state.BeaconState, []bls.SecretKey, error) {
	deposits, keys, err := DeterministicDepositsAndKeys(count)
	if err != nil {
		return nil, nil, err
	}
	eth1Data, err := DepositEth1Data(deposits)
	if err != nil {
		return nil, nil, err
	}
	st, err := transition.GenesisBeaconState(deposits, 0, eth1Data)
	if err != nil {
		return nil, nil, err
	}
	return st, keys, nil
}
