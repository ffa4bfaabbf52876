// Package bls wraps BLS12-381 signing and verification behind a small
// interface so the state transition core can run in two modes :
// a real blst-backed implementation for production use, and a
// no-verification implementation for replay/fuzzing where signature
// checks would only slow down the harness without testing anything it
// cares about.
package bls

import "errors"

// ErrSignatureSizeInvalid is returned whenever a signature byte slice is
// not exactly 96 bytes.
var ErrSignatureSizeInvalid = errors.New("bls: signature must be 96 bytes")

// ErrPublicKeySizeInvalid is returned whenever a public key byte slice is
// not exactly 48 bytes.
var ErrPublicKeySizeInvalid = errors.New("bls: public key must be 48 bytes")

// ErrSecretKeySizeInvalid is returned whenever a secret key byte slice is
// not exactly 32 bytes.
var ErrSecretKeySizeInvalid = errors.New("bls: secret key must be 32 bytes")

// ErrZeroKey is returned by SecretKeyFromBytes/PublicKeyFromBytes when
// handed the additive identity, which blst refuses to treat as a key.
var ErrZeroKey = errors.New("bls: key material is all zero")

// SecretKey is a BLS12-381 private scalar.
type SecretKey interface {
	PublicKey() PublicKey
	Sign(msg []byte) Signature
	Marshal() []byte
}

// PublicKey is a compressed G1 point.
type PublicKey interface {
	Marshal() []byte
	Copy() PublicKey
	Aggregate(other PublicKey) PublicKey
}

// Signature is a compressed G2 point.
type Signature interface {
	Marshal() []byte
	Verify(pub PublicKey, msg []byte) bool
	AggregateVerify(pubs []PublicKey, msgs [][32]byte) bool
	FastAggregateVerify(pubs []PublicKey, msg [32]byte) bool
}

// Engine is the capability the transition core depends on; it is
// satisfied by both the blst-backed implementation and the
// no-verification mock, per the pluggable-capability requirement.
type Engine interface {
	SecretKeyFromBytes(b []byte) (SecretKey, error)
	PublicKeyFromBytes(b []byte) (PublicKey, error)
	SignatureFromBytes(b []byte) (Signature, error)
	AggregateSignatures(sigs []Signature) Signature
	AggregatePublicKeys(pubs []PublicKey) (PublicKey, error)
	VerifySignature(sig []byte, msg [32]byte, pub PublicKey) (bool, error)
	VerifyMultipleSignatures(sigs [][]byte, msgs [][32]byte, pubs []PublicKey) (bool, error)
	RandKey() SecretKey
}
