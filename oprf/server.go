package oprf

import (
	"fmt"

	"github.com/oprfgo/voprf/ciphersuite"
	"github.com/oprfgo/voprf/dleq"
	"github.com/oprfgo/voprf/errs"
	"github.com/oprfgo/voprf/group"
)

// Server holds a ciphersuite and a secret key for the lifetime of the
// process. Setup is not required to be thread-safe; Evaluate is safe
// for concurrent use as long as the underlying group/scalar library
// supports concurrent reads of the key, which gtank/ristretto255 does
// (the key is read-only after setup).
type Server struct {
	Ciph     *ciphersuite.Ciphersuite
	key      *group.Scalar
	keyBytes []byte
}

// NewServer runs setup: K ← ciph.Group.UniformBytes(), stored for the
// server's lifetime. No API ever returns K.
func NewServer(ciph *ciphersuite.Ciphersuite) (*Server, error) {
	if ciph == nil {
		return nil, fmt.Errorf("%w: nil ciphersuite", errs.ErrInternal)
	}

	keyBytes, err := ciph.Group.UniformBytes()
	if err != nil {
		return nil, err
	}
	key, err := ciph.Group.DecodeScalar(keyBytes)
	if err != nil {
		return nil, err
	}

	return &Server{Ciph: ciph, key: key, keyBytes: keyBytes}, nil
}

// PublicKey returns K·G.
func (s *Server) PublicKey() (*group.Element, error) {
	return s.Ciph.Group.ScalarMult(s.Ciph.Group.Generator, s.keyBytes)
}

// Evaluate computes Z_i = K·M_i for each blinded input and, in VOPRF
// mode, attaches a DLEQ proof: the single-point proof for a batch of
// one, the batched composite proof otherwise. An empty batch returns an
// empty Evaluation with no proof — it is the caller's contract not to
// pass empty batches in VOPRF mode.
func (s *Server) Evaluate(ms []*group.Element) (*Evaluation, error) {
	if len(ms) == 0 {
		return &Evaluation{}, nil
	}

	zs := make([]*group.Element, len(ms))
	for i, m := range ms {
		z, err := s.Ciph.Group.ScalarMult(m, s.keyBytes)
		if err != nil {
			return nil, err
		}
		zs[i] = z
	}

	eval := &Evaluation{Elements: zs}
	if !s.Ciph.Verifiable() {
		return eval, nil
	}

	y, err := s.PublicKey()
	if err != nil {
		return nil, err
	}

	var proof *dleq.Proof
	if len(ms) == 1 {
		proof, err = dleq.Generate(s.Ciph.Group, s.key, y, ms[0], zs[0])
	} else {
		proof, err = dleq.BatchGenerate(s.Ciph.Group, s.key, y, ms, zs)
	}
	if err != nil {
		return nil, err
	}
	eval.Proof = proof

	return eval, nil
}
