// Package group is the prime-order group abstraction the rest of the
// module is built on: a PrimeOrderGroup record of function-typed fields
// rather than an interface hierarchy, so that a ciphersuite is data
// entry and the protocol packages (ciphersuite, oprf, dleq) never name a
// concrete curve type.
//
// Ported from the reference PrimeOrderGroup<T> struct (a struct of
// `fn(T) -> ...` fields bound once at construction time), generalized
// from its single generic element type to Go's plain function values.
package group

import (
	"hash"

	"github.com/gtank/ristretto255"
)

// Element is a member of the prime-order group. The one concrete
// binding in this module (Ristretto255) is always a valid, canonical
// ristretto255 point. Callers outside this package import group, never
// github.com/gtank/ristretto255 directly, so swapping the binding never
// touches protocol code.
type Element = ristretto255.Element

// Scalar is an integer modulo the group order q.
type Scalar = ristretto255.Scalar

// PrimeOrderGroup is the capability record a ciphersuite is built
// around: every field is non-nil once constructed, and ByteLength
// matches the length Serialize produces.
type PrimeOrderGroup struct {
	// Name identifies the concrete group, e.g. "ristretto255".
	Name string

	// ByteLength is the canonical serialized size of an Element.
	ByteLength int

	// Generator is the fixed base point G.
	Generator *Element

	// Hash returns a fresh hash.Hash instance for this group (SHA-512
	// for the defined ciphersuite).
	Hash func() hash.Hash

	// EncodeToGroup is the deterministic hash-to-group map H1.
	EncodeToGroup func(buf []byte) *Element

	// IsValid reports whether e is a member of the group. Every
	// decoded ristretto255 point is valid by construction; this exists
	// so a future group binding with a cofactor or invalid-point
	// concern has somewhere to plug in.
	IsValid func(e *Element) bool

	// IsEqual is constant-time element equality.
	IsEqual func(a, b *Element) bool

	// Add is group addition.
	Add func(a, b *Element) *Element

	// ScalarMult computes scalar·e from a canonical little-endian
	// scalar encoding.
	ScalarMult func(e *Element, scalar []byte) (*Element, error)

	// InverseMult computes (scalar⁻¹)·e from a canonical little-endian
	// scalar encoding.
	InverseMult func(e *Element, scalar []byte) (*Element, error)

	// RandomElement draws a uniformly random group element from the
	// CSPRNG.
	RandomElement func() (*Element, error)

	// UniformBytes draws ByteLength uniform bytes suitable for use as a
	// blind or a secret key: the result is already a canonical scalar
	// encoding, so it may be fed straight into DecodeScalar.
	UniformBytes func() ([]byte, error)

	// DecodeScalar validates raw bytes as a scalar mod q. It does not
	// assume the input is already canonical: wrong-length or unreduced
	// input is rejected with errs.ErrDeserialization, not reduced.
	DecodeScalar func(b []byte) (*Scalar, error)

	// Serialize is the canonical byte encoding of e.
	Serialize func(e *Element) []byte

	// Deserialize parses the canonical encoding of an element, failing
	// on wrong length or a non-canonical encoding.
	Deserialize func(b []byte) (*Element, error)
}
