package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"college-buddy-be/internal/constant"
	"college-buddy-be/internal/dto"
	"college-buddy-be/internal/entity"
	"college-buddy-be/internal/pkg/logger"
	"college-buddy-be/internal/repository/specification"
	"college-buddy-be/internal/repository/unitofwork"
	"college-buddy-be/pkg/docx"

	"github.com/google/uuid"
)

// IDocumentService manages the advising knowledge base: DOCX uploads,
// re-ingestion and listing.
type IDocumentService interface {
	Upload(ctx context.Context, fileName string, data []byte) (*dto.UploadDocumentResponse, error)
	Reingest(ctx context.Context, documentId uuid.UUID) (*dto.ReingestDocumentResponse, error)
	GetAll(ctx context.Context) ([]*dto.DocumentResponse, error)
	Delete(ctx context.Context, documentId uuid.UUID) error
}

type documentService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	logger           logger.ILogger
}

func NewDocumentService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	log logger.ILogger,
) IDocumentService {
	return &documentService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		logger:           log,
	}
}

// Upload extracts the DOCX text, records the document as pending and hands
// the text off to the ingestion consumer.
func (ds *documentService) Upload(ctx context.Context, fileName string, data []byte) (*dto.UploadDocumentResponse, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("uploaded file is empty")
	}
	if len(data) > constant.MaxUploadBytes {
		return nil, fmt.Errorf("uploaded file exceeds %d bytes", constant.MaxUploadBytes)
	}

	text, err := docx.ExtractFromBytes(data)
	if err != nil {
		return nil, fmt.Errorf("extract docx text: %w", err)
	}

	uow := ds.uowFactory.NewUnitOfWork(ctx)

	document := entity.Document{
		Id:        uuid.New(),
		FileName:  fileName,
		CharCount: len(text),
		Status:    constant.DocumentStatusPending,
		CreatedAt: time.Now(),
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.DocumentRepository().Create(ctx, &document); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	if err := ds.publishIngest(ctx, &document, text); err != nil {
		return nil, err
	}

	ds.logger.Info("document", "Document uploaded", map[string]interface{}{
		"document_id": document.Id,
		"file_name":   fileName,
		"char_count":  document.CharCount,
	})

	return &dto.UploadDocumentResponse{
		Id:       document.Id,
		FileName: document.FileName,
		Status:   document.Status,
	}, nil
}

// Reingest republishes an already uploaded document. Chunks for the document
// are replaced, not duplicated, so this is safe to call repeatedly.
func (ds *documentService) Reingest(ctx context.Context, documentId uuid.UUID) (*dto.ReingestDocumentResponse, error) {
	uow := ds.uowFactory.NewUnitOfWork(ctx)

	document, err := uow.DocumentRepository().FindOne(ctx, specification.ByID{ID: documentId})
	if err != nil {
		return nil, err
	}
	if document == nil {
		return nil, fmt.Errorf("document not found")
	}

	chunks, err := uow.DocumentChunkRepository().FindAll(ctx,
		specification.ByDocumentID{DocumentID: documentId},
		specification.OrderBy{Field: "chunk_index"},
	)
	if err != nil {
		return nil, err
	}
	if len(chunks) == 0 {
		return nil, fmt.Errorf("document has no stored text to re-ingest")
	}

	var text string
	for _, c := range chunks {
		text += c.Content
	}

	document.Status = constant.DocumentStatusPending
	if err := uow.DocumentRepository().UpdateStatus(ctx, documentId, constant.DocumentStatusPending); err != nil {
		return nil, err
	}

	if err := ds.publishIngest(ctx, document, text); err != nil {
		return nil, err
	}

	return &dto.ReingestDocumentResponse{
		Id:     documentId,
		Status: constant.DocumentStatusPending,
	}, nil
}

func (ds *documentService) GetAll(ctx context.Context) ([]*dto.DocumentResponse, error) {
	uow := ds.uowFactory.NewUnitOfWork(ctx)

	documents, err := uow.DocumentRepository().FindAll(ctx,
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.DocumentResponse, 0, len(documents))
	for _, d := range documents {
		res = append(res, &dto.DocumentResponse{
			Id:         d.Id,
			FileName:   d.FileName,
			CharCount:  d.CharCount,
			ChunkCount: d.ChunkCount,
			Status:     d.Status,
			CreatedAt:  d.CreatedAt,
			UpdatedAt:  d.UpdatedAt,
		})
	}
	return res, nil
}

func (ds *documentService) Delete(ctx context.Context, documentId uuid.UUID) error {
	uow := ds.uowFactory.NewUnitOfWork(ctx)

	document, err := uow.DocumentRepository().FindOne(ctx, specification.ByID{ID: documentId})
	if err != nil {
		return err
	}
	if document == nil {
		return fmt.Errorf("document not found")
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.DocumentChunkRepository().DeleteByDocumentId(ctx, documentId); err != nil {
		return err
	}
	if err := uow.DocumentRepository().Delete(ctx, documentId); err != nil {
		return err
	}

	return uow.Commit()
}

func (ds *documentService) publishIngest(ctx context.Context, document *entity.Document, text string) error {
	payload := dto.IngestDocumentMessage{
		DocumentId: document.Id,
		FileName:   document.FileName,
		Text:       text,
	}
	payloadJson, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return ds.publisherService.Publish(ctx, payloadJson)
}
