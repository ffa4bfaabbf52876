package epoch

import (
	"time"

	"github.com/eth2core/beacon-transition/beacon-chain/core/validators"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("prefix", "core/epoch")

// ProcessEpoch runs the full per-epoch state transition against st, in
// the fixed order per_epoch/mod.rs's process_epoch uses: justification
// and finalization, crosslinks, rewards and penalties, registry
// updates, slashings, and the final bookkeeping updates.
func ProcessEpoch(st beaconState) error {
	defer reportEpochTransitionMetrics(time.Now())

	if err := ProcessJustificationAndFinalization(st); err != nil {
		return err
	}
	if err := ProcessCrosslinks(st); err != nil {
		return err
	}
	if err := ProcessRewardsAndPenalties(st); err != nil {
		return err
	}
	if err := validators.ProcessRegistryUpdates(st); err != nil {
		return err
	}
	ProcessSlashings(st)
	if err := ProcessFinalUpdates(st); err != nil {
		return err
	}
	return nil
}
