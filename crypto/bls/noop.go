package bls

// noopEngine implements Engine without ever touching a curve: every
// Verify* call reports success and aggregation returns the first input.
// Useful for replay-only pipelines and fuzz harnesses, where exercising
// the state machine matters and the cost of real pairings does not.
type noopEngine struct{}

type noopSecretKey struct{ raw [32]byte }

type noopPublicKey struct{ raw [48]byte }

type noopSignature struct{ raw [96]byte }

func (s *noopSecretKey) PublicKey() PublicKey {
	var pub [48]byte
	copy(pub[:], s.raw[:])
	return &noopPublicKey{raw: pub}
}

func (s *noopSecretKey) Sign(msg []byte) Signature {
	var sig [96]byte
	copy(sig[:], msg)
	return &noopSignature{raw: sig}
}

func (s *noopSecretKey) Marshal() []byte {
	cpy := s.raw
	return cpy[:]
}

func (p *noopPublicKey) Marshal() []byte {
	cpy := p.raw
	return cpy[:]
}

func (p *noopPublicKey) Copy() PublicKey {
	cpy := *p
	return &cpy
}

func (p *noopPublicKey) Aggregate(PublicKey) PublicKey { return p }

func (s *noopSignature) Marshal() []byte {
	cpy := s.raw
	return cpy[:]
}

func (s *noopSignature) Verify(PublicKey, []byte) bool                      { return true }
func (s *noopSignature) AggregateVerify([]PublicKey, [][32]byte) bool       { return true }
func (s *noopSignature) FastAggregateVerify([]PublicKey, [32]byte) bool     { return true }

func (noopEngine) RandKey() SecretKey {
	return &noopSecretKey{}
}

func (noopEngine) SecretKeyFromBytes(b []byte) (SecretKey, error) {
	if len(b) != 32 {
		return nil, ErrSecretKeySizeInvalid
	}
	var raw [32]byte
	copy(raw[:], b)
	return &noopSecretKey{raw: raw}, nil
}

func (noopEngine) PublicKeyFromBytes(b []byte) (PublicKey, error) {
	if len(b) != 48 {
		return nil, ErrPublicKeySizeInvalid
	}
	var raw [48]byte
	copy(raw[:], b)
	return &noopPublicKey{raw: raw}, nil
}

func (noopEngine) SignatureFromBytes(b []byte) (Signature, error) {
	if len(b) != 96 {
		return nil, ErrSignatureSizeInvalid
	}
	var raw [96]byte
	copy(raw[:], b)
	return &noopSignature{raw: raw}, nil
}

func (noopEngine) AggregateSignatures(sigs []Signature) Signature {
	if len(sigs) == 0 {
		return nil
	}
	return sigs[0]
}

func (noopEngine) AggregatePublicKeys(pubs []PublicKey) (PublicKey, error) {
	if len(pubs) == 0 {
		return nil, ErrZeroKey
	}
	return pubs[0], nil
}

func (noopEngine) VerifySignature([]byte, [32]byte, PublicKey) (bool, error) {
	return true, nil
}

func (noopEngine) VerifyMultipleSignatures(sigs [][]byte, msgs [][32]byte, pubs []PublicKey) (bool, error) {
	return true, nil
}
