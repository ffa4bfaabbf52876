package v1alpha1

import "github.com/eth2core/beacon-transition/encoding/ssz"

// AttestationData is the payload an attestation signs over: the block it
// attests to plus the source/target FFG checkpoints and the crosslink it
// proposes. Slot is not stored explicitly — it is recovered
// from the crosslink's shard via helpers.AttestationDataSlot, the same
// way the v0.8-era phase0 design this is grounded on derives it.
type AttestationData struct {
	BeaconBlockRoot [32]byte
	Source *Checkpoint
	Target *Checkpoint
	Crosslink *Crosslink
}

// Copy returns a deep copy of d.
func (d *AttestationData) Copy() *AttestationData {
	if d == nil {
		return nil
	}
	return &AttestationData{
		BeaconBlockRoot: d.BeaconBlockRoot,
		Source: d.Source.Copy(),
		Target: d.Target.Copy(),
		Crosslink: d.Crosslink.Copy(),
	}
}

// Equals reports whether d and other are field-for-field identical.
func (d *AttestationData) Equals(other *AttestationData) bool {
	if d == nil || other == nil {
		return d == other
	}
	return d.BeaconBlockRoot == other.BeaconBlockRoot &&
		d.Source.Equals(other.Source) &&
		d.Target.Equals(other.Target) &&
		*d.Crosslink == *other.Crosslink
}

// IsSlashable reports whether d and other form a slashable attestation
// pair under Casper-FFG: a "double vote" (same target epoch, different
// data) or a "surround vote" (one attestation's source/target interval
// strictly surrounds the other's).
func (d *AttestationData) IsSlashable(other *AttestationData) bool {
	if d.Equals(other) {
		return false
	}
	doubleVote := d.Target.Epoch == other.Target.Epoch
	surroundVote := d.Source.Epoch < other.Source.Epoch && other.Target.Epoch < d.Target.Epoch
	surroundVote = surroundVote || (other.Source.Epoch < d.Source.Epoch && d.Target.Epoch < other.Target.Epoch)
	return doubleVote || surroundVote
}

// HashTreeRoot computes the SSZ merkle root of d.
func (d *AttestationData) HashTreeRoot() ([32]byte, error) {
	hh := ssz.NewHasher()
	defer ssz.PutHasher(hh)
	indx := hh.Index()
	hh.PutBytes(d.BeaconBlockRoot[:])
	sourceRoot, err := d.Source.HashTreeRoot()
	if err != nil {
		return [32]byte{}, err
	}
	hh.PutBytes(sourceRoot[:])
	targetRoot, err := d.Target.HashTreeRoot()
	if err != nil {
		return [32]byte{}, err
	}
	hh.PutBytes(targetRoot[:])
	crosslinkRoot, err := d.Crosslink.HashTreeRoot()
	if err != nil {
		return [32]byte{}, err
	}
	hh.PutBytes(crosslinkRoot[:])
	hh.Merkleize(indx)
	return hh.HashRoot()
}

// AttestationDataAndCustodyBit pairs attestation data with a custody bit;
// its hash-tree-root is the message each of the two aggregate signatures
// in an IndexedAttestation verifies.
type AttestationDataAndCustodyBit struct {
	Data *AttestationData
	CustodyBit bool
}

// HashTreeRoot computes the SSZ merkle root of a.
func (a *AttestationDataAndCustodyBit) HashTreeRoot() ([32]byte, error) {
	hh := ssz.NewHasher()
	defer ssz.PutHasher(hh)
	indx := hh.Index()
	dataRoot, err := a.Data.HashTreeRoot()
	if err != nil {
		return [32]byte{}, err
	}
	hh.PutBytes(dataRoot[:])
	hh.PutBool(a.CustodyBit)
	hh.Merkleize(indx)
	return hh.HashRoot()
}
