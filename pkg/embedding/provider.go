package embedding

import "context"

// EmbeddingProvider defines the interface for generating text embeddings
type EmbeddingProvider interface {
	// Generate maps text to a fixed-length vector
	Generate(ctx context.Context, text string) ([]float32, error)

	// Dimensions reports the vector length this provider produces.
	// It must match the dimension of the vector column in the store.
	Dimensions() int
}
