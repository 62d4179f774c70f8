// Package ciphersuite binds a group.PrimeOrderGroup to a named suite and
// exposes the domain-separated hash derivations H1–H5 the protocol and
// DLEQ packages are built on.
//
// Ported from the reference Ciphersuite<G>, which carries a name, a
// verifiable flag, and the group, and exposes h1 through h5 as methods
// that simply reach into the group's function table.
package ciphersuite

import (
	"crypto/hmac"
	"fmt"

	"github.com/oprfgo/voprf/errs"
	"github.com/oprfgo/voprf/group"
	"github.com/oprfgo/voprf/internal/hkdf"
)

// Mode selects between the base OPRF and the verifiable extension.
type Mode bool

const (
	// OPRF is the non-verifiable base mode.
	OPRF Mode = false
	// VOPRF is the verifiable mode: Evaluate attaches a DLEQ proof and
	// Unblind verifies it before producing output.
	VOPRF Mode = true
)

// HKDFHandle is the H5 derivation: an HKDF-SHA-512 handle bound to the
// ciphersuite's group hash.
type HKDFHandle struct {
	group *group.PrimeOrderGroup
}

// Extract runs HKDF-Extract, returning a 64-byte pseudorandom key.
func (h HKDFHandle) Extract(salt, ikm []byte) []byte {
	return hkdf.Extract(h.group.Hash, salt, ikm)
}

// Expand runs HKDF-Expand, reading exactly length bytes.
func (h HKDFHandle) Expand(prk, info []byte, length int) ([]byte, error) {
	return hkdf.Expand(h.group.Hash, prk, info, length)
}

// Ciphersuite is the (mode, group) pair the protocol is parameterized
// over: its Name is ("VOPRF-" | "OPRF-") concatenated with group.Name
// and the suffix "-SHA512-HKDF-ELL2-RO", the domain separator the rest
// of the protocol's hashes bind to.
type Ciphersuite struct {
	Name  string
	Mode  Mode
	Group *group.PrimeOrderGroup
}

// Verifiable reports whether the ciphersuite is running the VOPRF
// extension: Evaluate must attach a DLEQ proof and Unblind must verify
// one before producing output.
func (c *Ciphersuite) Verifiable() bool {
	return c.Mode == VOPRF
}

// New constructs a named ciphersuite over pog. It rejects a nil group or
// a group record missing its Name, ByteLength or Hash with
// errs.ErrCiphersuite; it does not check which hash function pog.Hash
// returns.
func New(pog *group.PrimeOrderGroup, verifiable bool) (*Ciphersuite, error) {
	if pog == nil {
		return nil, fmt.Errorf("%w: nil group", errs.ErrCiphersuite)
	}
	if pog.Name == "" || pog.ByteLength <= 0 || pog.Hash == nil {
		return nil, fmt.Errorf("%w: incomplete group record", errs.ErrCiphersuite)
	}

	prefix := "OPRF-"
	mode := OPRF
	if verifiable {
		prefix = "VOPRF-"
		mode = VOPRF
	}

	return &Ciphersuite{
		Name:  prefix + pog.Name + "-SHA512-HKDF-ELL2-RO",
		Mode:  mode,
		Group: pog,
	}, nil
}

// H1 is the hash-to-group map: H1(buf) = EncodeToGroup(buf).
func (c *Ciphersuite) H1(buf []byte) *group.Element {
	return c.Group.EncodeToGroup(buf)
}

// H2 is HMAC keyed by key over input, using the group's hash. A
// zero-length key must succeed: the finalize path's second HMAC stage
// uses a per-input derived key whose length is the hash's output size,
// never zero, but H2 itself places no lower bound on key length.
func (c *Ciphersuite) H2(key, input []byte) ([]byte, error) {
	mac := hmac.New(c.Group.Hash, key)
	if _, err := mac.Write(input); err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrInternal, err)
	}
	return mac.Sum(nil), nil
}

// H3 is a plain hash of buf.
func (c *Ciphersuite) H3(buf []byte) []byte {
	return c.hashGeneric(buf)
}

// H4 is a plain hash of buf. Kept distinct from H3 to preserve domain
// separation in future suites that might need both in the same
// transcript.
func (c *Ciphersuite) H4(buf []byte) []byte {
	return c.hashGeneric(buf)
}

func (c *Ciphersuite) hashGeneric(buf []byte) []byte {
	h := c.Group.Hash()
	h.Write(buf)
	return h.Sum(nil)
}

// H5 returns an HKDF handle over the group's hash.
func (c *Ciphersuite) H5() HKDFHandle {
	return HKDFHandle{group: c.Group}
}
