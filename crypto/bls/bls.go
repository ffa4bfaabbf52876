package bls

import "sync/atomic"

// activeEngine holds the Engine every package-level function below
// delegates to. It defaults to the real blst backend; UseNoVerification
// swaps in the capability names for replay-only pipelines and
// fuzzing. Swapping is process-global and intended for test/harness
// bootstrap, not per-request toggling.
var activeEngine atomic.Value

func init() {
	activeEngine.Store(Engine(blstEngine{}))
}

// UseNoVerification switches every subsequent bls package call onto the
// no-verification capability.
func UseNoVerification() {
	activeEngine.Store(Engine(noopEngine{}))
}

// UseBLST switches every subsequent bls package call onto the real
// blst-backed capability. This is the default; call it to undo a prior
// UseNoVerification.
func UseBLST() {
	activeEngine.Store(Engine(blstEngine{}))
}

func engine() Engine {
	return activeEngine.Load().(Engine)
}

// RandKey generates a new random secret key.
func RandKey() SecretKey {
	return engine().RandKey()
}

// SecretKeyFromBytes constructs a secret key from its 32-byte encoding.
func SecretKeyFromBytes(b []byte) (SecretKey, error) {
	return engine().SecretKeyFromBytes(b)
}

// PublicKeyFromBytes constructs a public key from its 48-byte compressed
// encoding.
func PublicKeyFromBytes(b []byte) (PublicKey, error) {
	return engine().PublicKeyFromBytes(b)
}

// SignatureFromBytes constructs a signature from its 96-byte compressed
// encoding.
func SignatureFromBytes(b []byte) (Signature, error) {
	return engine().SignatureFromBytes(b)
}

// AggregateSignatures combines sigs into a single aggregate signature.
func AggregateSignatures(sigs []Signature) Signature {
	return engine().AggregateSignatures(sigs)
}

// AggregatePublicKeys combines pubs into a single aggregate public key.
func AggregatePublicKeys(pubs []PublicKey) (PublicKey, error) {
	return engine().AggregatePublicKeys(pubs)
}

// VerifySignature verifies sig over msg under pub.
func VerifySignature(sig []byte, msg [32]byte, pub PublicKey) (bool, error) {
	return engine().VerifySignature(sig, msg, pub)
}

// VerifyMultipleSignatures performs a single batched verification of N
// independent (signature, message, public key) triples in one pairing
// pass. Nothing in the transition core calls it: IsValidIndexedAttestation
// checks a single bit-0 aggregate signature.
func VerifyMultipleSignatures(sigs [][]byte, msgs [][32]byte, pubs []PublicKey) (bool, error) {
	return engine().VerifyMultipleSignatures(sigs, msgs, pubs)
}
