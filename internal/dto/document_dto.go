package dto

import (
	"time"

	"github.com/google/uuid"
)

type UploadDocumentResponse struct {
	Id       uuid.UUID `json:"id"`
	FileName string    `json:"file_name"`
	Status   string    `json:"status"`
}

type ReingestDocumentResponse struct {
	Id     uuid.UUID `json:"id"`
	Status string    `json:"status"`
}

type DocumentResponse struct {
	Id         uuid.UUID  `json:"id"`
	FileName   string     `json:"file_name"`
	CharCount  int        `json:"char_count"`
	ChunkCount int        `json:"chunk_count"`
	Status     string     `json:"status"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  *time.Time `json:"updated_at"`
}

// IngestDocumentMessage is the payload published to the ingestion topic
type IngestDocumentMessage struct {
	DocumentId uuid.UUID `json:"document_id"`
	FileName   string    `json:"file_name"`
	Text       string    `json:"text"`
}
