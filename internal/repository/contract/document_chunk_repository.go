package contract

import (
	"context"

	"college-buddy-be/internal/entity"
	"college-buddy-be/internal/repository/specification"

	"github.com/google/uuid"
)

// ScoredDocumentChunk wraps DocumentChunk with its similarity score
type ScoredDocumentChunk struct {
	Chunk      *entity.DocumentChunk
	Similarity float64 // 0.0 to 1.0 (1.0 = identical)
}

type DocumentChunkRepository interface {
	Create(ctx context.Context, chunk *entity.DocumentChunk) error
	CreateBulk(ctx context.Context, chunks []*entity.DocumentChunk) error
	DeleteByDocumentId(ctx context.Context, documentId uuid.UUID) error
	// ReplaceForDocument atomically swaps a document's chunks: existing rows
	// for the document are removed, then the new set is inserted. Re-ingesting
	// the same document therefore overwrites rather than duplicates.
	ReplaceForDocument(ctx context.Context, documentId uuid.UUID, chunks []*entity.DocumentChunk) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.DocumentChunk, error)
	CountByDocumentId(ctx context.Context, documentId uuid.UUID) (int64, error)
	// SearchSimilarWithScore returns the limit nearest chunks by cosine
	// similarity, most similar first, with the owning document's file name
	// populated on each chunk.
	SearchSimilarWithScore(ctx context.Context, embedding []float32, limit int) ([]*ScoredDocumentChunk, error)
}
