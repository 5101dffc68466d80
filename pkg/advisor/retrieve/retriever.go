// Package retrieve turns a free-text query into a grounded context string:
// embed the query, run a similarity search against the chunk store, join the
// matched chunk texts.
package retrieve

import (
	"context"
	"fmt"
	"log"
	"strings"

	"college-buddy-be/internal/repository/contract"
	"college-buddy-be/pkg/advisor"
	"college-buddy-be/pkg/embedding"
)

// ContextRetriever is the narrow contract the advisor service depends on
type ContextRetriever interface {
	Retrieve(ctx context.Context, query string, topK int) (string, error)
}

type Retriever struct {
	embeddingProvider embedding.EmbeddingProvider
	chunkRepo         contract.DocumentChunkRepository
	logger            *log.Logger
}

var _ ContextRetriever = &Retriever{}

func NewRetriever(
	embeddingProvider embedding.EmbeddingProvider,
	chunkRepo contract.DocumentChunkRepository,
	logger *log.Logger,
) *Retriever {
	return &Retriever{
		embeddingProvider: embeddingProvider,
		chunkRepo:         chunkRepo,
		logger:            logger,
	}
}

// Retrieve returns the concatenated texts of the topK most similar chunks,
// ordered by descending similarity. An empty store yields an empty context,
// not an error.
func (r *Retriever) Retrieve(ctx context.Context, query string, topK int) (string, error) {
	vector, err := r.embeddingProvider.Generate(ctx, query)
	if err != nil {
		return "", advisor.NewExternalServiceError(advisor.BoundaryEmbedding, err)
	}

	matches, err := r.chunkRepo.SearchSimilarWithScore(ctx, vector, topK)
	if err != nil {
		return "", advisor.NewExternalServiceError(advisor.BoundaryVectorStore, err)
	}

	contexts := make([]string, 0, len(matches))
	for _, m := range matches {
		if m.Chunk.Content != "" {
			contexts = append(contexts, m.Chunk.Content)
		} else {
			contexts = append(contexts, fmt.Sprintf("Content from %s", m.Chunk.SourceFileName))
		}
	}

	r.logger.Printf("[RETRIEVE] %d/%d chunks matched for query of %d chars", len(matches), topK, len(query))
	return strings.Join(contexts, " "), nil
}
