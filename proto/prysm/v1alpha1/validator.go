package v1alpha1

import (	"github.com/eth2core/beacon-transition/encoding/bytesutil"
	"github.com/eth2core/beacon-transition/encoding/ssz"
)

// Validator is a single registry entry.
type Validator struct {
	PublicKey [48]byte
	WithdrawalCredentials [32]byte
	ActivationEligibilityEpoch uint64
	ActivationEpoch uint64
	ExitEpoch uint64
	WithdrawableEpoch uint64
	EffectiveBalance uint64
	Slashed bool
}

// Copy returns a deep copy of v.
func (v *Validator) Copy() *Validator {
	if v == nil {
		return nil
	}
	cpy := *v
	return &cpy
}

// SizeSSZ returns the fixed SSZ-encoded size of a Validator.
func (v *Validator) SizeSSZ() int { return 48 + 32 + 8 + 8 + 8 + 8 + 8 + 1 }

// MarshalSSZ returns the SSZ encoding of v.
func (v *Validator) MarshalSSZ() ([]byte, error) {
	return v.MarshalSSZTo(make([]byte, 0, v.SizeSSZ()))
}

// MarshalSSZTo appends the SSZ encoding of v to dst.
func (v *Validator) MarshalSSZTo(dst []byte) ([]byte, error) {
	dst = append(dst, v.PublicKey[:]...)
	dst = append(dst, v.WithdrawalCredentials[:]...)
	dst = append(dst, bytesutil.Bytes8(v.ActivationEligibilityEpoch)...)
	dst = append(dst, bytesutil.Bytes8(v.ActivationEpoch)...)
	dst = append(dst, bytesutil.Bytes8(v.ExitEpoch)...)
	dst = append(dst, bytesutil.Bytes8(v.WithdrawableEpoch)...)
	dst = append(dst, bytesutil.Bytes8(v.EffectiveBalance)...)
	if v.Slashed {
		dst = append(dst, 1)
	} else {
		dst = append(dst, 0)
	}
	return dst, nil
}

// UnmarshalSSZ decodes buf into v.
func (v *Validator) UnmarshalSSZ(buf []byte) error {
	if len(buf) != v.SizeSSZ() {
		return errSize("Validator", v.SizeSSZ(), len(buf))
	}
	v.PublicKey = bytesutil.ToBytes48(buf[0:48])
	v.WithdrawalCredentials = bytesutil.ToBytes32(buf[48:80])
	v.ActivationEligibilityEpoch = bytesutil.FromBytes8(buf[80:88])
	v.ActivationEpoch = bytesutil.FromBytes8(buf[88:96])
	v.ExitEpoch = bytesutil.FromBytes8(buf[96:104])
	v.WithdrawableEpoch = bytesutil.FromBytes8(buf[104:112])
	v.EffectiveBalance = bytesutil.FromBytes8(buf[112:120])
	v.Slashed = buf[120] == 1
	return nil
}

// HashTreeRoot computes the SSZ merkle root of v.
func (v *Validator) HashTreeRoot() ([32]byte, error) {
	hh := ssz.NewHasher()
	defer ssz.PutHasher(hh)
	indx := hh.Index()
	hh.PutBytes(v.PublicKey[:])
	hh.PutBytes(v.WithdrawalCredentials[:])
	hh.PutUint64(v.ActivationEligibilityEpoch)
	hh.PutUint64(v.ActivationEpoch)
	hh.PutUint64(v.ExitEpoch)
	hh.PutUint64(v.WithdrawableEpoch)
	hh.PutUint64(v.EffectiveBalance)
	hh.PutBool(v.Slashed)
	hh.Merkleize(indx)
	return hh.HashRoot()
}

// IsActive reports whether v is active at epoch: activation_epoch
// <= epoch < exit_epoch.
func (v *Validator) IsActive(epoch uint64) bool {
	return v.ActivationEpoch <= epoch && epoch < v.ExitEpoch
}

// IsSlashable reports whether v can still be slashed at epoch (:
// !slashed && activation_epoch <= epoch < withdrawable_epoch).
func (v *Validator) IsSlashable(epoch uint64) bool {
	return !v.Slashed && v.ActivationEpoch <= epoch && epoch < v.WithdrawableEpoch
}
