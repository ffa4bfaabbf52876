package ssz

import "github.com/eth2core/beacon-transition/crypto/hash"

// VerifyMerkleBranch checks that leaf, combined with branch, hashes up to
// root, where index is the leaf's position among 2**depth leaves (not a
// generalized index). This is the deposit-contract Merkle proof
// eth1 emits alongside every deposit log ; not itself part of
// hash_tree_root, but built on the same pairwise-hash convention.
func VerifyMerkleBranch(leaf [32]byte, branch [][32]byte, depth, index uint64, root [32]byte) bool {
	if uint64(len(branch)) < depth {
		return false
	}
	value := leaf
	for i := uint64(0); i < depth; i++ {
		if (index>>i)&1 == 1 {
			value = hash.Hash(branch[i][:], value[:])
		} else {
			value = hash.Hash(value[:], branch[i][:])
		}
	}
	return value == root
}
