package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"college-buddy-be/internal/constant"
	"college-buddy-be/internal/dto"
	"college-buddy-be/internal/entity"
	"college-buddy-be/internal/repository/specification"
	"college-buddy-be/internal/repository/unitofwork"
	"college-buddy-be/pkg/embedding"
	"college-buddy-be/pkg/utils"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub            *gochannel.GoChannel
	topicName         string
	uowFactory        unitofwork.RepositoryFactory
	embeddingProvider embedding.EmbeddingProvider
	chunkSize         int
	pacingDelay       time.Duration
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	embeddingProvider embedding.EmbeddingProvider,
	chunkSize int,
	pacingDelay time.Duration,
) IConsumerService {
	return &consumerService{
		pubSub:            pubSub,
		topicName:         topicName,
		uowFactory:        uowFactory,
		embeddingProvider: embeddingProvider,
		chunkSize:         chunkSize,
		pacingDelay:       pacingDelay,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.IngestDocumentMessage
	err := json.Unmarshal(msg.Payload, &payload)
	if err != nil {
		log.Printf("[ERROR] Failed to unmarshal message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	log.Printf("[INFO] Ingesting document %s (%s, %d chars)", payload.DocumentId, payload.FileName, len(payload.Text))

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	document, err := uow.DocumentRepository().FindOne(ctx, specification.ByID{ID: payload.DocumentId})
	if err != nil {
		log.Printf("[ERROR] Failed to get document %s: %v", payload.DocumentId, err)
		msg.Nack() // Nack for retriable errors
		return
	}
	if document == nil {
		log.Printf("[ERROR] Document not found: %s", payload.DocumentId)
		msg.Ack() // Document deleted? Ack.
		return
	}

	// Fixed-size, non-overlapping chunks; concatenating them reproduces
	// the extracted text exactly.
	chunks := utils.SplitText(payload.Text, cs.chunkSize)
	log.Printf("[INFO] Document split into %d chunks", len(chunks))

	var newChunks []*entity.DocumentChunk

	for i, chunk := range chunks {
		vector, err := cs.embeddingProvider.Generate(ctx, chunk)
		if err != nil {
			log.Printf("[ERROR] Failed to embed chunk %d of document %s: %v", i, payload.DocumentId, err)
			cs.markFailed(ctx, payload.DocumentId)
			msg.Nack()
			return
		}

		newChunks = append(newChunks, &entity.DocumentChunk{
			Id:         uuid.New(),
			DocumentId: document.Id,
			ChunkIndex: i,
			Content:    chunk,
			Embedding:  vector,
			CreatedAt:  time.Now(),
		})

		// Pace embedding calls so ingestion of large documents does not
		// hammer the provider's rate limits.
		if cs.pacingDelay > 0 && i < len(chunks)-1 {
			time.Sleep(cs.pacingDelay)
		}
	}

	if err := uow.Begin(ctx); err != nil {
		log.Printf("[ERROR] Failed to begin transaction: %v", err)
		msg.Nack()
		return
	}
	defer uow.Rollback()

	if err := uow.DocumentChunkRepository().ReplaceForDocument(ctx, document.Id, newChunks); err != nil {
		log.Printf("[ERROR] Failed to replace chunks: %v", err)
		cs.markFailed(ctx, payload.DocumentId)
		msg.Nack()
		return
	}

	document.ChunkCount = len(newChunks)
	document.Status = constant.DocumentStatusReady
	if err := uow.DocumentRepository().Update(ctx, document); err != nil {
		log.Printf("[ERROR] Failed to update document status: %v", err)
		msg.Nack()
		return
	}

	if err := uow.Commit(); err != nil {
		log.Printf("[ERROR] Failed to commit transaction: %v", err)
		msg.Nack()
		return
	}

	log.Printf("[SUCCESS] Document ingested: %d chunks for %s", len(newChunks), payload.DocumentId)
	msg.Ack()
}

func (cs *consumerService) markFailed(ctx context.Context, documentId uuid.UUID) {
	uow := cs.uowFactory.NewUnitOfWork(ctx)
	if err := uow.DocumentRepository().UpdateStatus(ctx, documentId, constant.DocumentStatusFailed); err != nil {
		log.Printf("[ERROR] Failed to mark document %s as failed: %v", documentId, err)
	}
}
