package blocks

import (	"sort"

	"github.com/eth2core/beacon-transition/beacon-chain/core/helpers"
	"github.com/eth2core/beacon-transition/beacon-chain/core/signing"
	"github.com/eth2core/beacon-transition/config/params"
	"github.com/eth2core/beacon-transition/crypto/bls"
	v1alpha1 "github.com/eth2core/beacon-transition/proto/prysm/v1alpha1"
	"github.com/pkg/errors"
)

// ErrAttestingIndicesNotSorted is returned when either custody-bit group
// of an IndexedAttestation is not in strictly ascending order.
var ErrAttestingIndicesNotSorted = errors.New("blocks: attesting indices not sorted")

// ErrTooManyAttestingIndices is returned when an IndexedAttestation names
// no validators at all, or more than MAX_VALIDATORS_PER_COMMITTEE allows.
var ErrTooManyAttestingIndices = errors.New("blocks: too many attesting indices")

// ErrCustodyBit1IndicesNonEmpty is returned when an IndexedAttestation
// carries any bit-1 custody indices: this profile predates the phase1
// custody game, so every attester is implicitly assigned bit 0 (grounded on predicates.rs's is_valid_indexed_attestation).
var ErrCustodyBit1IndicesNonEmpty = errors.New("blocks: custody bit 1 indices must be empty")

// ConvertToIndexed expands an Attestation's aggregation bitlist into the
// concrete validator indices of the committee it was produced against,
// grounded on executive/../state.rs's indexed_attestation (not present
// in the filtered original_source pack; reconstructed from the
// phase0-with-crosslinks bitlist/committee convention used throughout
// this package).
func ConvertToIndexed(st beaconStateCommittee, att *v1alpha1.Attestation) (*v1alpha1.IndexedAttestation, error) {
	committee, err := helpers.CrosslinkCommittee(st, att.Data.Target.Epoch, att.Data.Crosslink.Shard)
	if err != nil {
		return nil, err
	}

	var bit0, bit1 []uint64
	for i, idx := range committee {
		if !att.AggregationBits.BitAt(uint64(i)) {
			continue
		}
		if att.CustodyBits != nil && att.CustodyBits.BitAt(uint64(i)) {
			bit1 = append(bit1, idx)
		} else {
			bit0 = append(bit0, idx)
		}
	}
	sort.Slice(bit0, func(i, j int) bool { return bit0[i] < bit0[j] })
	sort.Slice(bit1, func(i, j int) bool { return bit1[i] < bit1[j] })

	return &v1alpha1.IndexedAttestation{
		CustodyBit0Indices: bit0,
		CustodyBit1Indices: bit1,
		Data: att.Data,
		Signature: att.Signature,
	}, nil
}

// beaconStateCommittee is the slice of beaconState committee lookups and
// signature verification need.
type beaconStateCommittee interface {
	Slot() uint64
	NumValidators() int
	ValidatorAtIndexReadOnly(i uint64) *v1alpha1.Validator
	RandaoMixAtIndex(i uint64) [32]byte
	RandaoMixesLength() uint64
	ActiveIndexRootAtIndex(i uint64) [32]byte
	StartShard() uint64
	Fork() *v1alpha1.Fork
}

// IsValidIndexedAttestation reports whether ia's structure and aggregate
// signature check out : bit-1 indices empty, total count
// within bound, both groups sorted ascending and disjoint, and the
// bit-0 aggregate signature verifies over the attestation-data-with-
// custody-bit=false root under the attestation domain for the target
// epoch. Since bit-1 indices are always empty in this profile, the
// bit-1 half of the two-message aggregate check predicates.rs performs
// contributes nothing and is elided rather than verified against an
// identity-point aggregate.
func IsValidIndexedAttestation(st beaconStateCommittee, ia *v1alpha1.IndexedAttestation) error {
	cfg := params.BeaconConfig()

	if len(ia.CustodyBit1Indices) > 0 {
		return ErrCustodyBit1IndicesNonEmpty
	}
	total := uint64(len(ia.CustodyBit0Indices) + len(ia.CustodyBit1Indices))
	if total == 0 || total > cfg.MaxValidatorsPerCommittee {
		return ErrTooManyAttestingIndices
	}
	for i := 1; i < len(ia.CustodyBit0Indices); i++ {
		if ia.CustodyBit0Indices[i-1] >= ia.CustodyBit0Indices[i] {
			return ErrAttestingIndicesNotSorted
		}
	}

	pubkeys := make([]bls.PublicKey, len(ia.CustodyBit0Indices))
	for i, idx := range ia.CustodyBit0Indices {
		pub, err := bls.PublicKeyFromBytes(st.ValidatorAtIndexReadOnly(idx).PublicKey[:])
		if err != nil {
			return err
		}
		pubkeys[i] = pub
	}
	aggPub, err := bls.AggregatePublicKeys(pubkeys)
	if err != nil {
		return err
	}

	msgRoot, err := (&v1alpha1.AttestationDataAndCustodyBit{Data: ia.Data, CustodyBit: false}).HashTreeRoot()
	if err != nil {
		return err
	}
	domain := signing.Domain(st.Fork(), ia.Data.Target.Epoch, cfg.DomainAttestation)
	signingRoot, err := signing.ComputeSigningRoot(rootOnly(msgRoot), domain)
	if err != nil {
		return err
	}
	return signing.VerifySigningRoot(signingRoot, aggPub.Marshal(), ia.Signature[:])
}

// rootOnly adapts a precomputed [32]byte root to the HashTreeRoot
// interface ComputeSigningRoot expects, for messages (like
// AttestationDataAndCustodyBit) whose root is computed once up front.
type rootOnly [32]byte

func (r rootOnly) HashTreeRoot() ([32]byte, error) { return r, nil }
