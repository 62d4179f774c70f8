// Package hkdf wraps golang.org/x/crypto/hkdf's extract and expand
// stages for the SHA-512 HKDF used throughout the ciphersuite (H5) and
// the batched-DLEQ coefficient derivation.
//
// The reference implementation's expand routine built its output buffer
// as a zero-capacity slice and never sized it before reading, which
// silently yields an empty result. Expand here takes the desired output
// length explicitly and always returns a buffer of exactly that size.
package hkdf

import (
	"hash"
	"io"

	"golang.org/x/crypto/hkdf"
)

// Extract runs the HKDF-Extract stage, returning a pseudorandom key the
// length of the underlying hash's output (64 bytes for SHA-512).
func Extract(hashFn func() hash.Hash, salt, ikm []byte) []byte {
	return hkdf.Extract(hashFn, ikm, salt)
}

// Expand runs the HKDF-Expand stage over prk with the given info,
// reading exactly length bytes of keying material.
func Expand(hashFn func() hash.Hash, prk, info []byte, length int) ([]byte, error) {
	out := make([]byte, length)
	r := hkdf.Expand(hashFn, prk, info)
	if _, err := io.ReadFull(r, out); err != nil {
		return nil, err
	}
	return out, nil
}
