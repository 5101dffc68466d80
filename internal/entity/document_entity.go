package entity

import (
	"time"

	"github.com/google/uuid"
)

type Document struct {
	Id         uuid.UUID
	FileName   string
	CharCount  int
	ChunkCount int
	Status     string
	CreatedAt  time.Time
	UpdatedAt  *time.Time
}

// DocumentChunk is a contiguous slice of a source document's text, the unit
// of embedding and retrieval. Immutable after ingestion.
type DocumentChunk struct {
	Id             uuid.UUID
	DocumentId     uuid.UUID
	ChunkIndex     int
	Content        string
	Embedding      []float32
	SourceFileName string // denormalized from the owning document on search
	CreatedAt      time.Time
}
