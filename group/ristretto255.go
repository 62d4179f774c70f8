package group

import (
	"crypto/sha512"
	"crypto/subtle"
	"encoding/binary"
	"errors"
	"fmt"
	"hash"

	"github.com/gtank/ristretto255"

	"github.com/oprfgo/voprf/errs"
	"github.com/oprfgo/voprf/internal/randutil"
)

// ByteLength32 is the canonical serialized size of a ristretto255
// element or scalar.
const ByteLength32 = 32

// hashToGroupDST is the RFC 9497 domain separation tag for the
// OPRF(ristretto255, SHA-512) hash-to-group map. encodeToGroup (H1)
// does not use it.
const hashToGroupDST = "HashToGroup-OPRFV1-\x00-ristretto255-SHA512"

const (
	sha512OutputBytes = 64  // b_in_bytes
	sha512BlockBytes  = 128 // r_in_bytes
)

// Ristretto255 constructs the PrimeOrderGroup binding for ristretto255
// over Curve25519 with SHA-512, the group used by the one ciphersuite
// this module defines.
func Ristretto255() *PrimeOrderGroup {
	return &PrimeOrderGroup{
		Name:          "ristretto255",
		ByteLength:    ByteLength32,
		Generator:     basepoint(),
		Hash:          sha512.New,
		EncodeToGroup: encodeToGroup,
		IsValid:       func(*Element) bool { return true },
		IsEqual:       isEqual,
		Add:           add,
		ScalarMult:    scalarMult,
		InverseMult:   inverseMult,
		RandomElement: randomElement,
		UniformBytes:  uniformScalarBytes,
		DecodeScalar:  decodeScalar,
		Serialize:     serialize,
		Deserialize:   deserialize,
	}
}

// basepoint returns the fixed generator G, computed as 1·G via
// ScalarBaseMult so that the only hardcoded constant in this file is the
// scalar value one.
func basepoint() *Element {
	return ristretto255.NewElement().ScalarBaseMult(one())
}

func one() *Scalar {
	var buf [ByteLength32]byte
	buf[0] = 1
	s := ristretto255.NewScalar()
	if err := s.Decode(buf[:]); err != nil {
		panic("group: failed to decode scalar one: " + err.Error())
	}
	return s
}

func serialize(e *Element) []byte {
	return e.Encode(nil)
}

func deserialize(b []byte) (*Element, error) {
	if len(b) != ByteLength32 {
		return nil, fmt.Errorf("%w: element must be %d bytes, got %d", errs.ErrDeserialization, ByteLength32, len(b))
	}
	e := ristretto255.NewElement()
	if err := e.Decode(b); err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrDeserialization, err)
	}
	return e, nil
}

func decodeScalar(b []byte) (*Scalar, error) {
	if len(b) != ByteLength32 {
		return nil, fmt.Errorf("%w: scalar must be %d bytes, got %d", errs.ErrDeserialization, ByteLength32, len(b))
	}
	s := ristretto255.NewScalar()
	if err := s.Decode(b); err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrDeserialization, err)
	}
	return s, nil
}

func isEqual(a, b *Element) bool {
	return subtle.ConstantTimeCompare(a.Encode(nil), b.Encode(nil)) == 1
}

func add(a, b *Element) *Element {
	return ristretto255.NewElement().Add(a, b)
}

func scalarMult(e *Element, scalar []byte) (*Element, error) {
	s, err := decodeScalar(scalar)
	if err != nil {
		return nil, err
	}
	return ristretto255.NewElement().ScalarMult(s, e), nil
}

func inverseMult(e *Element, scalar []byte) (*Element, error) {
	s, err := decodeScalar(scalar)
	if err != nil {
		return nil, err
	}
	inv := ristretto255.NewScalar().Invert(s)
	return ristretto255.NewElement().ScalarMult(inv, e), nil
}

// uniform64 draws 64 uniform bytes from the CSPRNG, the width
// FromUniformBytes requires for a wide, bias-free reduction mod q.
func uniform64() ([]byte, error) {
	return randutil.Bytes(2 * ByteLength32)
}

func randomElement() (*Element, error) {
	b, err := uniform64()
	if err != nil {
		return nil, err
	}
	return ristretto255.NewElement().FromUniformBytes(b), nil
}

// uniformScalarBytes draws a uniform scalar and returns its canonical
// 32-byte encoding. Because it is produced by FromUniformBytes's wide
// reduction followed by Encode, the result is always already a valid,
// canonical scalar encoding: DecodeScalar on this output cannot fail.
// This is what lets a SecretKey or a blind be carried as "byte_length
// uniform bytes" while still being safe to treat as a reduced scalar on
// use, per the design note on keys-as-bytes vs keys-as-scalars.
func uniformScalarBytes() ([]byte, error) {
	b, err := uniform64()
	if err != nil {
		return nil, err
	}
	s := ristretto255.NewScalar().FromUniformBytes(b)
	return s.Encode(nil), nil
}

// encodeToGroup is H1, i.e. RistrettoPoint::hash_from_bytes::<SHA-512>:
// the 64-byte SHA-512 digest of msg mapped to the group by
// FromUniformBytes.
func encodeToGroup(msg []byte) *Element {
	digest := sha512.Sum512(msg)
	return ristretto255.NewElement().FromUniformBytes(digest[:])
}

// expandMessageXMD implements expand_message_xmd from RFC 9380 §5.3.1
// using SHA-512. encodeToGroup does not call it.
func expandMessageXMD(msg, dst []byte, lenInBytes int) ([]byte, error) {
	ell := (lenInBytes + sha512OutputBytes - 1) / sha512OutputBytes
	if ell > 255 {
		return nil, errors.New("group: expand_message_xmd: lenInBytes too large")
	}

	dstPrime := make([]byte, len(dst)+1)
	copy(dstPrime, dst)
	dstPrime[len(dst)] = byte(len(dst))

	zPad := make([]byte, sha512BlockBytes)

	libStr := make([]byte, 2)
	binary.BigEndian.PutUint16(libStr, uint16(lenInBytes))

	h := sha512Hash()
	h.Write(zPad)
	h.Write(msg)
	h.Write(libStr)
	h.Write([]byte{0})
	h.Write(dstPrime)
	b0 := h.Sum(nil)

	h = sha512Hash()
	h.Write(b0)
	h.Write([]byte{1})
	h.Write(dstPrime)
	bPrev := h.Sum(nil)

	out := make([]byte, 0, ell*sha512OutputBytes)
	out = append(out, bPrev...)

	for i := 2; i <= ell; i++ {
		xored := make([]byte, sha512OutputBytes)
		for j := range xored {
			xored[j] = b0[j] ^ bPrev[j]
		}

		h = sha512Hash()
		h.Write(xored)
		h.Write([]byte{byte(i)})
		h.Write(dstPrime)
		bPrev = h.Sum(nil)

		out = append(out, bPrev...)
	}

	return out[:lenInBytes], nil
}

func sha512Hash() hash.Hash {
	return sha512.New()
}

// NewScalar returns a fresh zero-valued Scalar, for callers outside this
// package (e.g. dleq) that need to build up a scalar via arithmetic
// methods without importing github.com/gtank/ristretto255 directly.
func NewScalar() *Scalar {
	return ristretto255.NewScalar()
}

// ScalarFromUniformBytes reduces 64 uniform bytes — a SHA-512 digest or
// an HKDF-Extract output, both exactly this width — to a scalar mod q
// via wide reduction. Used wherever a hash's output needs to be
// interpreted as a scalar mod q: the DLEQ Fiat–Shamir challenge and the
// batched-DLEQ per-index coefficients.
func ScalarFromUniformBytes(b []byte) *Scalar {
	return ristretto255.NewScalar().FromUniformBytes(b)
}
