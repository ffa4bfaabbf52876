// Package slots converts between slots and epochs and computes the
// handful of slot/epoch-derived boundaries the transition core needs
// . Grounded on Prysm's time/slots package of the same
// purpose and on the epoch/slot arithmetic in
// executive/helpers/misc.rs's compute_epoch_of_slot and
// compute_start_slot_of_epoch.
package slots

import (	"github.com/eth2core/beacon-transition/config/params"
	"github.com/eth2core/beacon-transition/consensus-types/primitives"
)

// ToEpoch returns the epoch slot belongs to.
func ToEpoch(slot primitives.Slot) primitives.Epoch {
	cfg := params.BeaconConfig()
	return primitives.Epoch(uint64(slot) / cfg.SlotsPerEpoch)
}

// EpochStart returns the first slot of epoch.
func EpochStart(epoch primitives.Epoch) primitives.Slot {
	cfg := params.BeaconConfig()
	return primitives.Slot(uint64(epoch) * cfg.SlotsPerEpoch)
}

// EpochEnd returns the last slot of epoch.
func EpochEnd(epoch primitives.Epoch) primitives.Slot {
	return EpochStart(epoch + 1).SafeSub(1)
}

// SinceGenesis converts an absolute slot count and a genesis timestamp
// into the wall-clock time at which that slot starts, in seconds.
func SinceGenesis(genesisTime, slot uint64) uint64 {
	cfg := params.BeaconConfig()
	return genesisTime + uint64(slot)*cfg.SecondsPerSlot
}

// IsEpochStart reports whether slot is the first slot of its epoch.
func IsEpochStart(slot primitives.Slot) bool {
	cfg := params.BeaconConfig()
	return uint64(slot)%cfg.SlotsPerEpoch == 0
}

// IsEpochEnd reports whether slot is the last slot of its epoch.
func IsEpochEnd(slot primitives.Slot) bool {
	return IsEpochStart(slot + 1)
}
