package helpers

import (	"github.com/eth2core/beacon-transition/beacon-chain/cache"
	coretime "github.com/eth2core/beacon-transition/beacon-chain/core/time"
	"github.com/eth2core/beacon-transition/config/params"
	"github.com/eth2core/beacon-transition/crypto/hash"
	"github.com/eth2core/beacon-transition/encoding/bytesutil"
)

const maxRandomByte = 1<<8 - 1

// proposerCache memoizes BeaconProposerIndex across repeated calls for
// the same slot during block production/validation, where the same
// proposer is looked up many times over.
var proposerCache = cache.NewProposerCache()

// BeaconProposerIndex returns the proposer for the state's current slot
// : seeded by the current epoch's randao mix and slot,
// iterating candidates from the active set and accepting the first whose
// effective balance clears a hash-derived random threshold.
func BeaconProposerIndex(st beaconState) (uint64, error) {
	cfg := params.BeaconConfig()
	epoch := coretime.CurrentEpoch(stateSlotOnly{st})
	seed := Seed(st, uint64(epoch), cfg.DomainBeaconProposer)
	seededBySlot := hash.Hash(seed[:], bytesutil.Bytes8(st.Slot()))

	if idx, ok := proposerCache.Get(st.Slot(), seededBySlot); ok {
		return idx, nil
	}

	indices := ActiveValidatorIndices(st, uint64(epoch))
	idx, err := computeProposerIndex(st, indices, seededBySlot)
	if err != nil {
		return 0, err
	}
	proposerCache.Put(st.Slot(), seededBySlot, idx)
	return idx, nil
}

func computeProposerIndex(st beaconState, indices []uint64, seed [32]byte) (uint64, error) {
	cfg := params.BeaconConfig()
	total := uint64(len(indices))
	if total == 0 {
		return 0, ErrEpochOutOfRange{}
	}

	i := uint64(0)
	for {
		shuffled, err := ShuffledIndex(i%total, total, seed)
		if err != nil {
			return 0, err
		}
		candidateIndex := indices[shuffled]

		randomSource := hash.Hash(seed[:], bytesutil.Bytes8(i/32))
		randomByte := uint64(randomSource[i%32])

		effectiveBalance := st.ValidatorAtIndexReadOnly(candidateIndex).EffectiveBalance
		if effectiveBalance*maxRandomByte >= cfg.MaxEffectiveBalance*randomByte {
			return candidateIndex, nil
		}
		i++
	}
}
