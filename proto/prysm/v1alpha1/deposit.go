package v1alpha1

import (	"github.com/eth2core/beacon-transition/encoding/bytesutil"
	"github.com/eth2core/beacon-transition/encoding/ssz"
)

// DepositData is the data a depositor signs and includes in the deposit
// contract log.
type DepositData struct {
	PublicKey [48]byte
	WithdrawalCredentials [32]byte
	Amount uint64
	Signature [96]byte
}

// Copy returns a deep copy of d.
func (d *DepositData) Copy() *DepositData {
	if d == nil {
		return nil
	}
	cpy := *d
	return &cpy
}

// SizeSSZ returns the fixed SSZ-encoded size of a DepositData.
func (d *DepositData) SizeSSZ() int { return 48 + 32 + 8 + 96 }

// MarshalSSZ returns the SSZ encoding of d.
func (d *DepositData) MarshalSSZ() ([]byte, error) {
	return d.MarshalSSZTo(make([]byte, 0, d.SizeSSZ()))
}

// MarshalSSZTo appends the SSZ encoding of d to dst.
func (d *DepositData) MarshalSSZTo(dst []byte) ([]byte, error) {
	dst = append(dst, d.PublicKey[:]...)
	dst = append(dst, d.WithdrawalCredentials[:]...)
	dst = append(dst, bytesutil.Bytes8(d.Amount)...)
	dst = append(dst, d.Signature[:]...)
	return dst, nil
}

// UnmarshalSSZ decodes buf into d.
func (d *DepositData) UnmarshalSSZ(buf []byte) error {
	if len(buf) != d.SizeSSZ() {
		return errSize("DepositData", d.SizeSSZ(), len(buf))
	}
	d.PublicKey = bytesutil.ToBytes48(buf[0:48])
	d.WithdrawalCredentials = bytesutil.ToBytes32(buf[48:80])
	d.Amount = bytesutil.FromBytes8(buf[80:88])
	d.Signature = bytesutil.ToBytes96(buf[88:184])
	return nil
}

// HashTreeRoot computes the SSZ merkle root of d, including the signature.
// Use SigningRoot for the message the signature itself is computed over.
func (d *DepositData) HashTreeRoot() ([32]byte, error) {
	hh := ssz.NewHasher()
	defer ssz.PutHasher(hh)
	indx := hh.Index()
	hh.PutBytes(d.PublicKey[:])
	hh.PutBytes(d.WithdrawalCredentials[:])
	hh.PutUint64(d.Amount)
	hh.PutBytes(d.Signature[:])
	hh.Merkleize(indx)
	return hh.HashRoot()
}

// SigningRoot computes the root DepositData's signature commits to: every
// field except the signature itself.
func (d *DepositData) SigningRoot() ([32]byte, error) {
	hh := ssz.NewHasher()
	defer ssz.PutHasher(hh)
	indx := hh.Index()
	hh.PutBytes(d.PublicKey[:])
	hh.PutBytes(d.WithdrawalCredentials[:])
	hh.PutUint64(d.Amount)
	hh.Merkleize(indx)
	return hh.HashRoot()
}

// Deposit is a DepositData entry together with its Merkle proof of
// inclusion in the deposit contract's tree.
type Deposit struct {
	Proof [][]byte
	Data *DepositData
}

// Copy returns a deep copy of d.
func (d *Deposit) Copy() *Deposit {
	if d == nil {
		return nil
	}
	return &Deposit{
		Proof: bytesutil.SafeCopy2dBytes(d.Proof),
		Data: d.Data.Copy(),
	}
}

// HashTreeRoot computes the SSZ merkle root of d. The proof, a
// DEPOSIT_CONTRACT_TREE_DEPTH+1-long vector of 32-byte chunks, merkleizes
// like any other fixed-length vector of roots.
func (d *Deposit) HashTreeRoot() ([32]byte, error) {
	hh := ssz.NewHasher()
	defer ssz.PutHasher(hh)
	indx := hh.Index()

	proofIndx := hh.Index()
	for _, p := range d.Proof {
		hh.PutBytes(p)
	}
	hh.Merkleize(proofIndx)

	dataRoot, err := d.Data.HashTreeRoot()
	if err != nil {
		return [32]byte{}, err
	}
	hh.PutBytes(dataRoot[:])
	hh.Merkleize(indx)
	return hh.HashRoot()
}
