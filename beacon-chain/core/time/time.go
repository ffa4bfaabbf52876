// Package time computes the epoch boundaries the transition core and
// helpers read constantly: current/previous/next epoch relative to a
// state's slot. Grounded on Prysm's beacon-chain/core/time package of
// the same purpose.
package time

import (	"github.com/eth2core/beacon-transition/config/params"
	"github.com/eth2core/beacon-transition/consensus-types/primitives"
	"github.com/eth2core/beacon-transition/time/slots"
)

// StateAccessor is the narrow slice of BeaconState these helpers need;
// satisfied by *state.BeaconState without an import cycle back to it.
type StateAccessor interface {
	Slot() uint64
}

// CurrentEpoch returns the epoch of st's current slot.
func CurrentEpoch(st StateAccessor) primitives.Epoch {
	return slots.ToEpoch(primitives.Slot(st.Slot()))
}

// PreviousEpoch returns the prior epoch, saturating at GENESIS_EPOCH
// rather than underflowing at genesis (saturating-subtraction
// requirement).
func PreviousEpoch(st StateAccessor) primitives.Epoch {
	current := CurrentEpoch(st)
	genesis := primitives.Epoch(params.BeaconConfig().GenesisEpoch)
	if current == genesis {
		return genesis
	}
	return current - 1
}

// NextEpoch returns the epoch following st's current epoch.
func NextEpoch(st StateAccessor) primitives.Epoch {
	return CurrentEpoch(st) + 1
}
