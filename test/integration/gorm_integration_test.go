package integration

import (
	"context"
	"log"
	"os"
	"strings"
	"testing"
	"time"

	"college-buddy-be/internal/entity"
	"college-buddy-be/internal/repository/specification"
	"college-buddy-be/internal/repository/unitofwork"
	"college-buddy-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func connect(t *testing.T) unitofwork.RepositoryFactory {
	t.Helper()

	if err := godotenv.Load("../../.env"); err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	sqlDB, _ := gormDB.DB()
	if err := sqlDB.Ping(); err != nil {
		t.Fatalf("Ping failed: %v", err)
	}

	return unitofwork.NewRepositoryFactory(gormDB)
}

func TestGormConnection(t *testing.T) {
	uowFactory := connect(t)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.DocumentRepository())
	assert.NotNil(t, uow.DocumentChunkRepository())
	assert.NotNil(t, uow.AdvisingSessionRepository())
	assert.NotNil(t, uow.ChatExchangeRepository())
	log.Println("Successfully connected to DB and initialized UnitOfWork Factory")

	t.Run("Check Document Repository", func(t *testing.T) {
		count, err := uow.DocumentRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Document count: %d", count)
	})
}

func TestChunkReplaceAndSimilaritySearch(t *testing.T) {
	ctx := context.Background()
	uowFactory := connect(t)
	uow := uowFactory.NewUnitOfWork(ctx)

	document := &entity.Document{
		Id:        uuid.New(),
		FileName:  "integration-" + uuid.New().String() + ".docx",
		CharCount: 20,
		Status:    "pending",
		CreatedAt: time.Now(),
	}
	require.NoError(t, uow.DocumentRepository().Create(ctx, document))
	defer func() {
		uow.DocumentChunkRepository().DeleteByDocumentId(ctx, document.Id)
		uow.DocumentRepository().Delete(ctx, document.Id)
	}()

	makeChunks := func(marker string, n int) []*entity.DocumentChunk {
		chunks := make([]*entity.DocumentChunk, n)
		for i := range chunks {
			vec := make([]float32, 1536)
			vec[i%1536] = 1
			chunks[i] = &entity.DocumentChunk{
				Id:         uuid.New(),
				DocumentId: document.Id,
				ChunkIndex: i,
				Content:    marker + " chunk " + strings.Repeat("x", i),
				Embedding:  vec,
				CreatedAt:  time.Now(),
			}
		}
		return chunks
	}

	require.NoError(t, uow.DocumentChunkRepository().ReplaceForDocument(ctx, document.Id, makeChunks("first", 3)))

	count, err := uow.DocumentChunkRepository().CountByDocumentId(ctx, document.Id)
	require.NoError(t, err)
	assert.EqualValues(t, 3, count)

	// Replacing with a new set must not duplicate
	require.NoError(t, uow.DocumentChunkRepository().ReplaceForDocument(ctx, document.Id, makeChunks("second", 2)))

	count, err = uow.DocumentChunkRepository().CountByDocumentId(ctx, document.Id)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)

	chunks, err := uow.DocumentChunkRepository().FindAll(ctx,
		specification.ByDocumentID{DocumentID: document.Id},
		specification.OrderBy{Field: "chunk_index"},
	)
	require.NoError(t, err)
	for _, c := range chunks {
		assert.Contains(t, c.Content, "second")
	}

	// Similarity search returns the stored chunks with the file name joined in
	query := make([]float32, 1536)
	query[0] = 1
	scored, err := uow.DocumentChunkRepository().SearchSimilarWithScore(ctx, query, 2)
	require.NoError(t, err)
	require.NotEmpty(t, scored)
	for _, s := range scored {
		assert.NotEmpty(t, s.Chunk.SourceFileName)
		assert.GreaterOrEqual(t, s.Similarity, -1.0)
		assert.LessOrEqual(t, s.Similarity, 1.0)
	}
}

func TestSessionHistoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	uowFactory := connect(t)
	uow := uowFactory.NewUnitOfWork(ctx)

	session := &entity.AdvisingSession{
		Id:        uuid.New(),
		Title:     "Integration session",
		CreatedAt: time.Now(),
	}
	require.NoError(t, uow.AdvisingSessionRepository().Create(ctx, session))
	defer func() {
		uow.ChatExchangeRepository().DeleteBySessionId(ctx, session.Id)
		uow.AdvisingSessionRepository().Delete(ctx, session.Id)
	}()

	first := &entity.ChatExchange{
		Id:        uuid.New(),
		SessionId: session.Id,
		Query:     "how do I declare? (Clarification: forms)",
		Answer:    "Use the registrar's form.",
		Intent:    1,
		CreatedAt: time.Now(),
	}
	second := &entity.ChatExchange{
		Id:        uuid.New(),
		SessionId: session.Id,
		Query:     "dining hours (Clarification: weekends)",
		Answer:    "Open 7am to 9pm.",
		Intent:    10,
		CreatedAt: time.Now().Add(time.Second),
	}
	require.NoError(t, uow.ChatExchangeRepository().Create(ctx, first))
	require.NoError(t, uow.ChatExchangeRepository().Create(ctx, second))

	exchanges, err := uow.ChatExchangeRepository().FindBySessionId(ctx, session.Id)
	require.NoError(t, err)
	require.Len(t, exchanges, 2)
	assert.Equal(t, first.Id, exchanges[0].Id, "history must be oldest first")
	assert.Equal(t, second.Id, exchanges[1].Id)
}
