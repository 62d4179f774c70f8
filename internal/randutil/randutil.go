// Package randutil is the module's uniform-byte source: it produces
// byte_length-sized buffers by concatenating output drawn from the
// operating system's CSPRNG, four bytes (one little-endian uint32) at a
// time.
//
// Ported from the reference rand_bytes routine, which draws a next_u32
// from the OS RNG and appends its little-endian bytes until the target
// length is reached, rather than requesting the whole buffer from the
// RNG in one call.
package randutil

import (
	"crypto/rand"
	"encoding/binary"
)

// Bytes returns n cryptographically random bytes, built by repeatedly
// drawing a uniform uint32 from crypto/rand and appending its
// little-endian encoding.
func Bytes(n int) ([]byte, error) {
	out := make([]byte, 0, n)
	var word [4]byte

	for len(out) < n {
		var u uint32
		if err := binary.Read(rand.Reader, binary.LittleEndian, &u); err != nil {
			return nil, err
		}
		binary.LittleEndian.PutUint32(word[:], u)

		take := 4
		if remaining := n - len(out); remaining < take {
			take = remaining
		}
		out = append(out, word[:take]...)
	}

	return out, nil
}
