// Package errs defines the sentinel error values returned across the
// voprf module's API boundary, so callers can discriminate failure
// kinds with errors.Is rather than string matching.
package errs

import "errors"

var (
	// ErrDeserialization is returned when group element or scalar bytes
	// are malformed: wrong length, or a non-canonical ristretto255
	// encoding that fails decompression.
	ErrDeserialization = errors.New("voprf: deserialization failed")

	// ErrVerification is returned when a DLEQ proof (single or batched)
	// fails to verify. No output is produced alongside this error.
	ErrVerification = errors.New("voprf: proof verification failed")

	// ErrCiphersuite is returned for an unsupported combination of group
	// and hash at ciphersuite construction time.
	ErrCiphersuite = errors.New("voprf: unsupported ciphersuite")

	// ErrInternal covers HMAC key rejection and input-arity
	// preconditions (mismatched slice lengths, empty batches where one
	// element is required, and similar caller errors).
	ErrInternal = errors.New("voprf: internal precondition violated")
)
