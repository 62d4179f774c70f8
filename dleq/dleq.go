// Package dleq implements the Chaum–Pedersen discrete-log-equality NIZK
// used by the VOPRF mode: a proof that log_G(Y) = log_M(Z), and its
// batched composite variant that proves the same equality across many
// (M_i, Z_i) pairs with a single constant-size proof.
//
// Every transcript hash prefixes the generator G before any other
// point: a verifier's hash must stay unambiguous across ciphersuites
// that might share curve points but differ in base. The batched
// composite's index encoding is little-endian uint32 only — no other
// width or byte order is conformant.
package dleq

import (
	"crypto/subtle"
	"encoding/binary"
	"fmt"

	"github.com/oprfgo/voprf/errs"
	"github.com/oprfgo/voprf/group"
	"github.com/oprfgo/voprf/internal/hkdf"
)

// Proof is the pair (c, s) of canonical scalar encodings that makes up
// a Chaum–Pedersen proof: a valid proof satisfies
//
//	c == H(G, Y, M, Z, s·G + c·Y, s·M + c·Z)
type Proof struct {
	C *group.Scalar
	S *group.Scalar
}

// Encode serializes the proof as (c_bytes, s_bytes), 64 bytes total for
// ristretto255.
func (p *Proof) Encode() []byte {
	out := make([]byte, 0, 2*group.ByteLength32)
	out = append(out, p.C.Encode(nil)...)
	out = append(out, p.S.Encode(nil)...)
	return out
}

// Decode parses a proof from its (c_bytes, s_bytes) encoding.
func Decode(pog *group.PrimeOrderGroup, b []byte) (*Proof, error) {
	if len(b) != 2*pog.ByteLength {
		return nil, fmt.Errorf("%w: proof must be %d bytes, got %d", errs.ErrDeserialization, 2*pog.ByteLength, len(b))
	}
	c, err := pog.DecodeScalar(b[:pog.ByteLength])
	if err != nil {
		return nil, err
	}
	s, err := pog.DecodeScalar(b[pog.ByteLength:])
	if err != nil {
		return nil, err
	}
	return &Proof{C: c, S: s}, nil
}

// Generate produces a single-proof DLEQ: K is the server's secret
// scalar, Y = K·G is its public key, and (M, Z) is the one
// blinded-input/evaluation pair being attested.
func Generate(pog *group.PrimeOrderGroup, K *group.Scalar, Y, M, Z *group.Element) (*Proof, error) {
	tBytes, err := pog.UniformBytes()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrInternal, err)
	}
	t, err := pog.DecodeScalar(tBytes)
	if err != nil {
		return nil, err
	}

	a, err := pog.ScalarMult(pog.Generator, tBytes)
	if err != nil {
		return nil, err
	}
	b, err := pog.ScalarMult(M, tBytes)
	if err != nil {
		return nil, err
	}

	c := challenge(pog, Y, M, Z, a, b)

	return finishGenerate(t, K, c), nil
}

// finishGenerate computes s = t - c·K and packages (c, s). Split out
// from Generate so the scalar arithmetic — the only place a secret
// scalar is combined with the challenge — sits in one small, auditable
// function.
func finishGenerate(t, k, c *group.Scalar) *Proof {
	ck := group.NewScalar().Multiply(c, k)
	s := group.NewScalar().Subtract(t, ck)
	return &Proof{C: c, S: s}
}

// Verify checks a single-proof DLEQ against the public statement
// (Y, M, Z). It never panics or returns an error: a malformed or
// inconsistent proof simply fails to verify.
func Verify(pog *group.PrimeOrderGroup, Y, M, Z *group.Element, proof *Proof) bool {
	if proof == nil || proof.C == nil || proof.S == nil {
		return false
	}

	sBytes := proof.S.Encode(nil)
	cBytes := proof.C.Encode(nil)

	sG, err := pog.ScalarMult(pog.Generator, sBytes)
	if err != nil {
		return false
	}
	cY, err := pog.ScalarMult(Y, cBytes)
	if err != nil {
		return false
	}
	aPrime := pog.Add(sG, cY)

	sM, err := pog.ScalarMult(M, sBytes)
	if err != nil {
		return false
	}
	cZ, err := pog.ScalarMult(Z, cBytes)
	if err != nil {
		return false
	}
	bPrime := pog.Add(sM, cZ)

	cPrime := challenge(pog, Y, M, Z, aPrime, bPrime)

	return subtle.ConstantTimeCompare(cPrime.Encode(nil), cBytes) == 1
}

// challenge computes H(G ∥ Y ∥ M ∥ Z ∥ A ∥ B) interpreted as a scalar
// mod q. G is prefixed unconditionally, ahead of every other point.
func challenge(pog *group.PrimeOrderGroup, y, m, z, a, b *group.Element) *group.Scalar {
	h := pog.Hash()
	h.Write(pog.Serialize(pog.Generator))
	h.Write(pog.Serialize(y))
	h.Write(pog.Serialize(m))
	h.Write(pog.Serialize(z))
	h.Write(pog.Serialize(a))
	h.Write(pog.Serialize(b))
	return group.ScalarFromUniformBytes(h.Sum(nil))
}

// BatchComposites derives the composite pair (M*, Z*) from the public
// transcript (Y, Ms, Zs): seed = H(G ∥ Y ∥ Ms ∥ Zs), then d_i =
// HKDF-Extract(salt=seed, ikm=LE_u32(i)) mod q, and M*/Z* are the
// corresponding linear combinations. The accumulator is initialized
// directly from the i=0 term, never from the identity element.
func BatchComposites(pog *group.PrimeOrderGroup, y *group.Element, ms, zs []*group.Element) (mStar, zStar *group.Element, err error) {
	if len(ms) != len(zs) {
		return nil, nil, fmt.Errorf("%w: Ms and Zs have different lengths (%d vs %d)", errs.ErrInternal, len(ms), len(zs))
	}
	if len(ms) == 0 {
		return nil, nil, fmt.Errorf("%w: empty batch", errs.ErrInternal)
	}

	seed := batchSeed(pog, y, ms, zs)

	d0, err := batchCoefficient(pog, seed, 0)
	if err != nil {
		return nil, nil, err
	}
	d0Bytes := d0.Encode(nil)

	mStar, err = pog.ScalarMult(ms[0], d0Bytes)
	if err != nil {
		return nil, nil, err
	}
	zStar, err = pog.ScalarMult(zs[0], d0Bytes)
	if err != nil {
		return nil, nil, err
	}

	for i := 1; i < len(ms); i++ {
		di, err := batchCoefficient(pog, seed, i)
		if err != nil {
			return nil, nil, err
		}
		diBytes := di.Encode(nil)

		mi, err := pog.ScalarMult(ms[i], diBytes)
		if err != nil {
			return nil, nil, err
		}
		zi, err := pog.ScalarMult(zs[i], diBytes)
		if err != nil {
			return nil, nil, err
		}

		mStar = pog.Add(mStar, mi)
		zStar = pog.Add(zStar, zi)
	}

	return mStar, zStar, nil
}

func batchSeed(pog *group.PrimeOrderGroup, y *group.Element, ms, zs []*group.Element) []byte {
	h := pog.Hash()
	h.Write(pog.Serialize(pog.Generator))
	h.Write(pog.Serialize(y))
	for _, m := range ms {
		h.Write(pog.Serialize(m))
	}
	for _, z := range zs {
		h.Write(pog.Serialize(z))
	}
	return h.Sum(nil)
}

// batchCoefficient derives d_i = HKDF-Extract(salt=seed, ikm=LE_u32(i))
// interpreted as a scalar mod q. The index is always little-endian
// uint32; no other encoding is conformant.
func batchCoefficient(pog *group.PrimeOrderGroup, seed []byte, i int) (*group.Scalar, error) {
	idx := make([]byte, 4)
	binary.LittleEndian.PutUint32(idx, uint32(i))
	prk := hkdf.Extract(pog.Hash, seed, idx)
	return group.ScalarFromUniformBytes(prk), nil
}

// BatchGenerate derives the composites and proves the single statement
// (Y, M*, Z*) they express.
func BatchGenerate(pog *group.PrimeOrderGroup, k *group.Scalar, y *group.Element, ms, zs []*group.Element) (*Proof, error) {
	mStar, zStar, err := BatchComposites(pog, y, ms, zs)
	if err != nil {
		return nil, err
	}
	return Generate(pog, k, y, mStar, zStar)
}

// BatchVerify derives the composites and verifies the single statement
// (Y, M*, Z*) they express.
func BatchVerify(pog *group.PrimeOrderGroup, y *group.Element, ms, zs []*group.Element, proof *Proof) (bool, error) {
	mStar, zStar, err := BatchComposites(pog, y, ms, zs)
	if err != nil {
		return false, err
	}
	return Verify(pog, y, mStar, zStar, proof), nil
}
