package blocks

import (	"sort"

	coretime "github.com/eth2core/beacon-transition/beacon-chain/core/time"
	"github.com/eth2core/beacon-transition/beacon-chain/core/validators"
	v1alpha1 "github.com/eth2core/beacon-transition/proto/prysm/v1alpha1"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

var ErrAttesterSlashingNotSlashable = errors.New("blocks: attestation pair is not slashable")
var ErrAttesterSlashingEmptyIndices = errors.New("blocks: no overlapping slashable indices")

// ProcessAttesterSlashing validates that the two indexed attestations in
// as are individually well-formed and jointly slashable, then slashes
// every validator attesting to both that is still slashable (grounded on
// operations/attester_slashing.rs's process_attester_slashing). Only the
// intersection of the two attestations' own index sets is eligible:
// attesting to one conflicting vote alone is not slashable.
func ProcessAttesterSlashing(st beaconState, as *v1alpha1.AttesterSlashing) error {
	att1, att2 := as.Attestation1, as.Attestation2
	if !att1.Data.IsSlashable(att2.Data) {
		return ErrAttesterSlashingNotSlashable
	}
	var g errgroup.Group
	g.Go(func() error { return IsValidIndexedAttestation(st, att1) })
	g.Go(func() error { return IsValidIndexedAttestation(st, att2) })
	if err := g.Wait(); err != nil {
		return err
	}

	att1Indices := make(map[uint64]bool)
	for _, idx := range append(append([]uint64{}, att1.CustodyBit0Indices...), att1.CustodyBit1Indices...) {
		att1Indices[idx] = true
	}

	seen := make(map[uint64]bool)
	var intersection []uint64
	for _, idx := range append(append([]uint64{}, att2.CustodyBit0Indices...), att2.CustodyBit1Indices...) {
		if att1Indices[idx] && !seen[idx] {
			seen[idx] = true
			intersection = append(intersection, idx)
		}
	}
	sort.Slice(intersection, func(i, j int) bool { return intersection[i] < intersection[j] })

	currentEpoch := uint64(coretime.CurrentEpoch(stateAccessor{st}))
	slashedAny := false
	for _, idx := range intersection {
		if !st.ValidatorAtIndexReadOnly(idx).IsSlashable(currentEpoch) {
			continue
		}
		if err := validators.SlashValidator(st, idx, nil); err != nil {
			return err
		}
		slashedAny = true
	}
	if !slashedAny {
		return ErrAttesterSlashingEmptyIndices
	}
	return nil
}
