package oprf

import (
	"fmt"

	"github.com/oprfgo/voprf/ciphersuite"
	"github.com/oprfgo/voprf/dleq"
	"github.com/oprfgo/voprf/errs"
	"github.com/oprfgo/voprf/group"
)

// finalizeLabel is the ASCII domain-separation label the two-stage
// finalize HMAC is keyed with. 18 bytes, no NUL.
const finalizeLabel = "oprf_derive_output"

// Client holds a ciphersuite and, iff the ciphersuite is verifiable,
// the server's public key. Blind, Unblind, and Finalize are reentrant
// and hold no mutable state beyond their parameters.
type Client struct {
	Ciph      *ciphersuite.Ciphersuite
	publicKey *group.Element
}

// NewClient constructs a client for ciph. publicKey is required iff
// ciph.Verifiable(); it is ignored (and may be nil) otherwise.
func NewClient(ciph *ciphersuite.Ciphersuite, publicKey *group.Element) (*Client, error) {
	if ciph == nil {
		return nil, fmt.Errorf("%w: nil ciphersuite", errs.ErrInternal)
	}
	if ciph.Verifiable() && publicKey == nil {
		return nil, fmt.Errorf("%w: verifiable ciphersuite requires a public key", errs.ErrInternal)
	}
	return &Client{Ciph: ciph, publicKey: publicKey}, nil
}

// Blind draws an independent blind r for each input x, computes
// T = H1(x) and M = r·T, and retains (x, M, r) for the matching
// Unblind call.
func (c *Client) Blind(xs [][]byte) ([]*BlindedInput, error) {
	out := make([]*BlindedInput, len(xs))

	for i, x := range xs {
		rBytes, err := c.Ciph.Group.UniformBytes()
		if err != nil {
			return nil, err
		}
		r, err := c.Ciph.Group.DecodeScalar(rBytes)
		if err != nil {
			return nil, err
		}

		t := c.Ciph.H1(x)
		m, err := c.Ciph.Group.ScalarMult(t, rBytes)
		if err != nil {
			return nil, err
		}

		out[i] = &BlindedInput{Input: x, Blind: r, Element: m}
	}

	return out, nil
}

// Unblind verifies the evaluation's DLEQ proof (iff the ciphersuite is
// verifiable) and then removes each blind: N_i = r_i⁻¹·Z_i. On
// verification failure it returns errs.ErrVerification and produces no
// output — the whole batch is discarded atomically.
func (c *Client) Unblind(blinded []*BlindedInput, eval *Evaluation) ([]*group.Element, error) {
	if eval == nil || len(blinded) != len(eval.Elements) {
		got := 0
		if eval != nil {
			got = len(eval.Elements)
		}
		return nil, fmt.Errorf("%w: blinded/evaluation length mismatch (%d vs %d)", errs.ErrInternal, len(blinded), got)
	}

	if c.Ciph.Verifiable() {
		if err := c.verify(blinded, eval); err != nil {
			return nil, err
		}
	}

	out := make([]*group.Element, len(blinded))
	for i, b := range blinded {
		n, err := c.Ciph.Group.InverseMult(eval.Elements[i], b.Blind.Encode(nil))
		if err != nil {
			return nil, err
		}
		out[i] = n
	}

	return out, nil
}

func (c *Client) verify(blinded []*BlindedInput, eval *Evaluation) error {
	ms := make([]*group.Element, len(blinded))
	for i, b := range blinded {
		ms[i] = b.Element
	}

	var ok bool
	var err error
	if len(ms) == 1 {
		ok = dleq.Verify(c.Ciph.Group, c.publicKey, ms[0], eval.Elements[0], eval.Proof)
	} else {
		ok, err = dleq.BatchVerify(c.Ciph.Group, c.publicKey, ms, eval.Elements, eval.Proof)
		if err != nil {
			return err
		}
	}
	if !ok {
		return errs.ErrVerification
	}
	return nil
}

// Finalize derives the per-input key dk = H2("oprf_derive_output",
// x ∥ serialize(N)) and returns out = H2(dk, aux). Binding aux under a
// key derived from (x, N) rather than a global key ties it to both the
// input and the PRF output, not just the ciphersuite.
func (c *Client) Finalize(x []byte, n *group.Element, aux []byte) ([]byte, error) {
	nBytes := c.Ciph.Group.Serialize(n)

	finalizeInput := make([]byte, 0, len(x)+len(nBytes))
	finalizeInput = append(finalizeInput, x...)
	finalizeInput = append(finalizeInput, nBytes...)

	dk, err := c.Ciph.H2([]byte(finalizeLabel), finalizeInput)
	if err != nil {
		return nil, err
	}

	out, err := c.Ciph.H2(dk, aux)
	if err != nil {
		return nil, err
	}
	return out, nil
}
