// Package helpers implements the read-only queries the transition core
// leans on repeatedly: the swap-or-not shuffle, committee derivation,
// validator-set predicates, and the small fork-choice-facing queries
// names as collaborators rather than core transition steps.
package helpers

import (	"encoding/binary"

	"github.com/eth2core/beacon-transition/config/params"
	"github.com/eth2core/beacon-transition/crypto/hash"
	"github.com/pkg/errors"
)

// ErrIndexOutOfRange is returned when a shuffle index exceeds its bound.
var ErrIndexOutOfRange = errors.New("helpers: index out of range for shuffle")

// ShuffledIndex returns the shuffled position of index within a list of
// indexCount elements under seed, using SHUFFLE_ROUND_COUNT rounds (90 on
// mainnet, 10 on minimal) of the "swap or not"
// oblivious permutation . Grounded verbatim on
// executive/helpers/misc.rs's compute_shuffled_index.
func ShuffledIndex(index, indexCount uint64, seed [32]byte) (uint64, error) {
	if index >= indexCount {
		return 0, ErrIndexOutOfRange
	}
	cfg := params.BeaconConfig()

	for round := uint64(0); round < cfg.ShuffleRoundCount; round++ {
		pivotSource := hash.Hash(seed[:], []byte{byte(round)})
		pivot := binary.LittleEndian.Uint64(pivotSource[:8]) % indexCount
		flip := (pivot + indexCount - index) % indexCount
		position := index
		if flip > position {
			position = flip
		}

		var posBuf [4]byte
		binary.LittleEndian.PutUint32(posBuf[:], uint32(position/256))
		source := hash.Hash(seed[:], []byte{byte(round)}, posBuf[:])
		b := source[(position%256)/8]
		bit := (b >> (position % 8)) & 1

		if bit == 1 {
			index = flip
		}
	}
	return index, nil
}

// ShuffleList returns a new slice holding indices permuted under seed,
// computed by applying ShuffledIndex to each position. Committee
// construction uses it: CrosslinkCommittee shuffles the whole active set
// once per seed and slices each committee out of the cached result.
// ComputeCommittee, by contrast, shuffles only the positions of a single
// committee.
func ShuffleList(indices []uint64, seed [32]byte) ([]uint64, error) {
	out := make([]uint64, len(indices))
	n := uint64(len(indices))
	for i := range indices {
		shuffled, err := ShuffledIndex(uint64(i), n, seed)
		if err != nil {
			return nil, err
		}
		out[i] = indices[shuffled]
	}
	return out, nil
}

// ComputeCommittee returns the index-th of count committees carved out of
// indices under seed . Grounded on
// executive/helpers/misc.rs's compute_committee.
func ComputeCommittee(indices []uint64, seed [32]byte, index, count uint64) ([]uint64, error) {
	n := uint64(len(indices))
	start := (n * index) / count
	end := (n * (index + 1)) / count

	committee := make([]uint64, 0, end-start)
	for i := start; i < end; i++ {
		shuffled, err := ShuffledIndex(i, n, seed)
		if err != nil {
			return nil, err
		}
		committee = append(committee, indices[shuffled])
	}
	return committee, nil
}
