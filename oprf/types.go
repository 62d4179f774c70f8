// Package oprf is the two-party protocol core: server key setup and
// blinded evaluation, and client blinding, unblinding, and
// finalization.
//
// Ported from the reference Server/Client split in oprf.go, generalized
// from the fixed ristretto255+SHA-512 functions to operate over any
// ciphersuite.Ciphersuite.
package oprf

import (
	"github.com/oprfgo/voprf/dleq"
	"github.com/oprfgo/voprf/group"
)

// BlindedInput is the client-held (input, blind, blinded element)
// triple produced by Blind. The blind is exclusively owned by the
// client. Unblind reads it but does not clear or zero it; the
// BlindedInput keeps the blind until the caller drops it.
type BlindedInput struct {
	Input   []byte
	Blind   *group.Scalar
	Element *group.Element
}

// Evaluation is the server's response to a batch of blinded inputs: one
// evaluated element per input, with a DLEQ proof attached iff the
// ciphersuite is VOPRF.
type Evaluation struct {
	Elements []*group.Element
	Proof    *dleq.Proof
}
