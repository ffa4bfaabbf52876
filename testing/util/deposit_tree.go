package util

import "github.com/eth2core/beacon-transition/crypto/hash"

// depositTree implements the same incremental Merkle tree the eth1
// deposit contract maintains: leaves are padded with per-level zero
// hashes rather than materialized, so a tree over a handful of real
// deposits behaves exactly like one over the full 2**32-leaf contract
// tree. Grounded on the general eth2 deposit-contract Merkle algorithm
// (get_deposit_root / get_merkle_proof in the consensus spec's deposit
// contract reference); no source for it survived filtering into
// original_source.
type depositTree struct {
	depth      uint64
	zeroHashes [][32]byte
}

func newDepositTree(depth uint64) *depositTree {
	zh := make([][32]byte, depth+1)
	for i := uint64(1); i <= depth; i++ {
		zh[i] = hash.Hash(zh[i-1][:], zh[i-1][:])
	}
	return &depositTree{depth: depth, zeroHashes: zh}
}

// subtreeRoot returns the root of the depth-level subtree whose leaves
// are leaves, padding any missing right-hand leaves with the
// appropriate zero hash.
func (d *depositTree) subtreeRoot(leaves [][32]byte, depth uint64) [32]byte {
	if len(leaves) == 0 {
		return d.zeroHashes[depth]
	}
	if depth == 0 {
		return leaves[0]
	}
	half := uint64(1) << (depth - 1)
	var left, right [32]byte
	if uint64(len(leaves)) <= half {
		left = d.subtreeRoot(leaves, depth-1)
		right = d.zeroHashes[depth-1]
	} else {
		left = d.subtreeRoot(leaves[:half], depth-1)
		right = d.subtreeRoot(leaves[half:], depth-1)
	}
	return hash.Hash(left[:], right[:])
}

// proof returns the sibling at every level from the leaf at index up to
// the subtree root, for the depth-level subtree rooted over leaves.
func (d *depositTree) proof(leaves [][32]byte, depth, index uint64) [][32]byte {
	if depth == 0 {
		return nil
	}
	half := uint64(1) << (depth - 1)
	var sibling [32]byte
	var rest [][32]byte
	if index < half {
		if uint64(len(leaves)) <= half {
			sibling = d.zeroHashes[depth-1]
		} else {
			sibling = d.subtreeRoot(leaves[half:], depth-1)
		}
		rest = d.proof(leaves[:min(uint64(len(leaves)), half)], depth-1, index)
	} else {
		sibling = d.subtreeRoot(leaves[:half], depth-1)
		rest = d.proof(leaves[half:], depth-1, index-half)
	}
	return append(rest, sibling)
}

func min(a, b uint64) uint64 {
	if a < b {
		return a
	}
	return b
}

// depositRootAndProofs returns the eth1 deposit root (the 32-level tree
// root mixed with the deposit count, per the real deposit contract's
// get_deposit_root) together with each leaf's full proof, including the
// trailing count-mixin element VerifyMerkleBranch expects at depth+1.
func depositRootAndProofs(leaves [][32]byte, depth uint64) ([32]byte, [][][32]byte) {
	tree := newDepositTree(depth)
	treeRoot := tree.subtreeRoot(leaves, depth)

	var countBytes [32]byte
	count := uint64(len(leaves))
	for i := 0; i < 8; i++ {
		countBytes[i] = byte(count >> (8 * i))
	}
	root := hash.Hash(treeRoot[:], countBytes[:])

	proofs := make([][][32]byte, len(leaves))
	for i := range leaves {
		p := tree.proof(leaves, depth, uint64(i))
		proofs[i] = append(append([][32]byte{}, p...), countBytes)
	}
	return root, proofs
}
