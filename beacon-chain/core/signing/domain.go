// Package signing computes BLS signature domains and verifies the
// handful of signed messages the transition core checks directly
// (block headers, randao reveals, proposer/voluntary-exit/deposit/
// transfer signatures, and indexed-attestation aggregates). Grounded on
// Prysm's beacon-chain/core/signing package and on
// executive/helpers/misc.rs's compute_domain.
package signing

import (	"github.com/eth2core/beacon-transition/crypto/bls"
	"github.com/eth2core/beacon-transition/encoding/ssz"
	v1alpha1 "github.com/eth2core/beacon-transition/proto/prysm/v1alpha1"
	"github.com/pkg/errors"
)

// ErrSigFailedToVerify is returned whenever a checked signature does not
// verify.
var ErrSigFailedToVerify = errors.New("signing: signature did not verify")

// ErrNilRegistration guards against an empty registration object reaching
// a signature check.
var ErrNilRegistration = errors.New("signing: nil message")

// Domain packs a 4-byte domain type and a 4-byte fork version into the
// 8-byte domain every BLS verification in this package is keyed by : domain_type || fork_version. Fork version is the fork's
// previous_version when epoch precedes the fork's own activation epoch,
// current_version otherwise.
func Domain(fork *v1alpha1.Fork, epoch uint64, domainType [4]byte) [8]byte {
	forkVersion := fork.CurrentVersion
	if epoch < fork.Epoch {
		forkVersion = fork.PreviousVersion
	}
	var d [8]byte
	copy(d[0:4], domainType[:])
	copy(d[4:8], forkVersion[:])
	return d
}

// signingData is the small container every signed message's root is
// wrapped in before it is actually signed: {object_root, domain}. This
// is what "a BLS verify takes pubkey, message root, signature, domain"
// comes down to in an SSZ-native implementation — the
// domain is not a separate argument to the pairing itself but is mixed
// into the message root the signature commits to.
type signingData struct {
	ObjectRoot [32]byte
	Domain [8]byte
}

func (d *signingData) HashTreeRoot() ([32]byte, error) {
	hh := ssz.NewHasher()
	defer ssz.PutHasher(hh)
	indx := hh.Index()
	hh.PutBytes(d.ObjectRoot[:])
	hh.PutBytes(d.Domain[:])
	hh.Merkleize(indx)
	return hh.HashRoot()
}

// ComputeSigningRoot wraps obj's hash-tree-root with domain and returns
// the root that is actually signed.
func ComputeSigningRoot(obj interface{ HashTreeRoot ([32]byte, error) }, domain [8]byte) ([32]byte, error) {
	objRoot, err := obj.HashTreeRoot()
	if err != nil {
		return [32]byte{}, err
	}
	return (&signingData{ObjectRoot: objRoot, Domain: domain}).HashTreeRoot()
}

// VerifySigningRoot verifies sig over root under pub, reporting
// ErrSigFailedToVerify (not the underlying bls error) on mismatch so
// callers can use errors.Is against a single sentinel.
func VerifySigningRoot(root [32]byte, pubkeyBytes, sig []byte) error {
	pub, err := bls.PublicKeyFromBytes(pubkeyBytes)
	if err != nil {
		return err
	}
	ok, err := bls.VerifySignature(sig, root, pub)
	if err != nil {
		return err
	}
	if !ok {
		return ErrSigFailedToVerify
	}
	return nil
}

// VerifyObjectSignature computes obj's signing root under domain and
// verifies sig over it under pub in one call.
func VerifyObjectSignature(obj interface{ HashTreeRoot ([32]byte, error) }, domain [8]byte, pubkeyBytes, sig []byte) error {
	root, err := ComputeSigningRoot(obj, domain)
	if err != nil {
		return err
	}
	return VerifySigningRoot(root, pubkeyBytes, sig)
}
