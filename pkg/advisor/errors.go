// Package advisor holds the domain types and error taxonomy for the
// two-stage advising workflow (classify, clarify, retrieve, synthesize).
package advisor

import (
	"errors"
	"fmt"
)

// Boundary names for ExternalServiceError
const (
	BoundaryEmbedding   = "embedding"
	BoundaryCompletion  = "completion"
	BoundaryVectorStore = "vector_store"
)

// ExternalServiceError wraps any failure from the embedding, completion or
// vector-store boundary. It is never retried here; the service layer aborts
// the in-progress transition and surfaces a generic apology to the user.
type ExternalServiceError struct {
	Boundary string
	Err      error
}

func (e *ExternalServiceError) Error() string {
	return fmt.Sprintf("%s service failure: %v", e.Boundary, e.Err)
}

func (e *ExternalServiceError) Unwrap() error {
	return e.Err
}

// NewExternalServiceError tags an upstream failure with its boundary
func NewExternalServiceError(boundary string, err error) error {
	if err == nil {
		return nil
	}
	return &ExternalServiceError{Boundary: boundary, Err: err}
}

// IsExternalServiceError reports whether err originated at an external boundary
func IsExternalServiceError(err error) bool {
	var ese *ExternalServiceError
	return errors.As(err, &ese)
}

var (
	// ErrEmptyInput: user submitted an empty query or clarification.
	// Rejected before any external call, no state change.
	ErrEmptyInput = errors.New("input must not be empty")

	// ErrNoPendingClarification: a clarification arrived while no question
	// is awaiting one. Rejected without touching session state.
	ErrNoPendingClarification = errors.New("no question is awaiting clarification")

	// ErrSessionNotFound: the advising session id is unknown or deleted
	ErrSessionNotFound = errors.New("advising session not found")
)
