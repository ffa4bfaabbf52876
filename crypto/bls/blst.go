package bls

import (
	"crypto/rand"

	"github.com/pkg/errors"
	blst "github.com/supranational/blst/bindings/go"
)

// domainSeparationTag is the BLS signature scheme Ethereum consensus uses:
// minimal-pubkey-size, signature-augmentation-free, proof-of-possession.
var domainSeparationTag = []byte("BLS_SIG_BLS12381G2_XMD:SHA-256_SSWU_RO_POP_")

type blstSecretKey struct{ p *blst.SecretKey }

type blstPublicKey struct{ p *blst.P1Affine }

type blstSignature struct{ p *blst.P2Affine }

func (s *blstSecretKey) PublicKey() PublicKey {
	return &blstPublicKey{p: new(blst.P1Affine).From(s.p)}
}

func (s *blstSecretKey) Sign(msg []byte) Signature {
	sig := new(blst.P2Affine).Sign(s.p, msg, domainSeparationTag)
	return &blstSignature{p: sig}
}

func (s *blstSecretKey) Marshal() []byte {
	return s.p.Serialize()
}

func (p *blstPublicKey) Marshal() []byte {
	return p.p.Compress()
}

func (p *blstPublicKey) Copy() PublicKey {
	cpy := *p.p
	return &blstPublicKey{p: &cpy}
}

func (p *blstPublicKey) Aggregate(other PublicKey) PublicKey {
	o, ok := other.(*blstPublicKey)
	if !ok {
		return p
	}
	agg := new(blst.P1Aggregate)
	agg.Add(p.p, false)
	agg.Add(o.p, false)
	return &blstPublicKey{p: agg.ToAffine()}
}

func (s *blstSignature) Marshal() []byte {
	return s.p.Compress()
}

func (s *blstSignature) Verify(pub PublicKey, msg []byte) bool {
	p, ok := pub.(*blstPublicKey)
	if !ok {
		return false
	}
	return s.p.Verify(true, p.p, true, msg, domainSeparationTag)
}

func (s *blstSignature) AggregateVerify(pubs []PublicKey, msgs [][32]byte) bool {
	if len(pubs) != len(msgs) || len(pubs) == 0 {
		return false
	}
	pks := make([]*blst.P1Affine, len(pubs))
	blstMsgs := make([]blst.Message, len(msgs))
	for i, pub := range pubs {
		p, ok := pub.(*blstPublicKey)
		if !ok {
			return false
		}
		pks[i] = p.p
		blstMsgs[i] = msgs[i][:]
	}
	return s.p.AggregateVerify(true, pks, true, blstMsgs, domainSeparationTag)
}

func (s *blstSignature) FastAggregateVerify(pubs []PublicKey, msg [32]byte) bool {
	if len(pubs) == 0 {
		return false
	}
	pks := make([]*blst.P1Affine, len(pubs))
	for i, pub := range pubs {
		p, ok := pub.(*blstPublicKey)
		if !ok {
			return false
		}
		pks[i] = p.p
	}
	return s.p.FastAggregateVerify(true, pks, msg[:], domainSeparationTag)
}

// blstEngine is the production Engine backed by github.com/supranational/blst.
type blstEngine struct{}

func (blstEngine) RandKey() SecretKey {
	ikm := make([]byte, 32)
	if _, err := rand.Read(ikm); err != nil {
		panic(err)
	}
	sk := blst.KeyGen(ikm)
	return &blstSecretKey{p: sk}
}

func (blstEngine) SecretKeyFromBytes(b []byte) (SecretKey, error) {
	if len(b) != 32 {
		return nil, ErrSecretKeySizeInvalid
	}
	if isZero(b) {
		return nil, ErrZeroKey
	}
	sk := new(blst.SecretKey).Deserialize(b)
	if sk == nil {
		return nil, errors.New("bls: invalid secret key encoding")
	}
	return &blstSecretKey{p: sk}, nil
}

func (blstEngine) PublicKeyFromBytes(b []byte) (PublicKey, error) {
	if len(b) != 48 {
		return nil, ErrPublicKeySizeInvalid
	}
	if isZero(b) {
		return nil, ErrZeroKey
	}
	p := new(blst.P1Affine).Uncompress(b)
	if p == nil || !p.KeyValidate() {
		return nil, errors.New("bls: invalid public key encoding")
	}
	return &blstPublicKey{p: p}, nil
}

func (blstEngine) SignatureFromBytes(b []byte) (Signature, error) {
	if len(b) != 96 {
		return nil, ErrSignatureSizeInvalid
	}
	p := new(blst.P2Affine).Uncompress(b)
	if p == nil {
		return nil, errors.New("bls: invalid signature encoding")
	}
	return &blstSignature{p: p}, nil
}

func (blstEngine) AggregateSignatures(sigs []Signature) Signature {
	if len(sigs) == 0 {
		return nil
	}
	agg := new(blst.P2Aggregate)
	for _, sig := range sigs {
		s := sig.(*blstSignature)
		agg.Add(s.p, false)
	}
	return &blstSignature{p: agg.ToAffine()}
}

func (blstEngine) AggregatePublicKeys(pubs []PublicKey) (PublicKey, error) {
	if len(pubs) == 0 {
		return nil, errors.New("bls: no public keys to aggregate")
	}
	agg := new(blst.P1Aggregate)
	for _, pub := range pubs {
		p, ok := pub.(*blstPublicKey)
		if !ok {
			return nil, errors.New("bls: mismatched public key implementation")
		}
		agg.Add(p.p, false)
	}
	return &blstPublicKey{p: agg.ToAffine()}, nil
}

func (e blstEngine) VerifySignature(sig []byte, msg [32]byte, pub PublicKey) (bool, error) {
	s, err := e.SignatureFromBytes(sig)
	if err != nil {
		return false, err
	}
	return s.Verify(pub, msg[:]), nil
}

func (e blstEngine) VerifyMultipleSignatures(sigs [][]byte, msgs [][32]byte, pubs []PublicKey) (bool, error) {
	if len(sigs) != len(msgs) || len(sigs) != len(pubs) {
		return false, errors.New("bls: mismatched signature/message/public key counts")
	}
	if len(sigs) == 0 {
		return true, nil
	}
	blstSigs := make([]*blst.P2Affine, len(sigs))
	for i, sigBytes := range sigs {
		s, err := e.SignatureFromBytes(sigBytes)
		if err != nil {
			return false, err
		}
		blstSigs[i] = s.(*blstSignature).p
	}
	pks := make([]*blst.P1Affine, len(pubs))
	blstMsgs := make([]blst.Message, len(msgs))
	for i, pub := range pubs {
		p, ok := pub.(*blstPublicKey)
		if !ok {
			return false, errors.New("bls: mismatched public key implementation")
		}
		pks[i] = p.p
		blstMsgs[i] = msgs[i][:]
	}
	mulP2 := new(blst.P2Affine)
	return mulP2.MultipleAggregateVerify(blstSigs, true, pks, true, blstMsgs, domainSeparationTag), nil
}

func isZero(b []byte) bool {
	for _, v := range b {
		if v != 0 {
			return false
		}
	}
	return true
}
