package service

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"college-buddy-be/internal/constant"
	"college-buddy-be/internal/dto"
	"college-buddy-be/internal/entity"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingEmbedder struct{ calls int }

func (e *countingEmbedder) Generate(ctx context.Context, text string) ([]float32, error) {
	e.calls++
	return make([]float32, 1536), nil
}

func (e *countingEmbedder) Dimensions() int { return 1536 }

func publishIngest(t *testing.T, ps IPublisherService, documentId uuid.UUID, fileName, text string) {
	t.Helper()
	payload, err := json.Marshal(dto.IngestDocumentMessage{
		DocumentId: documentId,
		FileName:   fileName,
		Text:       text,
	})
	require.NoError(t, err)
	require.NoError(t, ps.Publish(context.Background(), payload))
}

func waitForStatus(t *testing.T, store *memStore, documentId uuid.UUID, status string) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		store.mu.Lock()
		d := store.documents[documentId]
		current := ""
		if d != nil {
			current = d.Status
		}
		store.mu.Unlock()
		if current == status {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("document %s never reached status %q", documentId, status)
}

func newIngestFixture(t *testing.T, chunkSize int) (*memStore, IPublisherService, *countingEmbedder) {
	t.Helper()

	store := newMemStore()
	embedder := &countingEmbedder{}
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NewStdLogger(false, false))

	publisher := NewPublisherService("INGEST_DOCUMENT", pubSub)
	consumer := NewConsumerService(pubSub, "INGEST_DOCUMENT", &fakeUowFactory{store: store}, embedder, chunkSize, 0)
	require.NoError(t, consumer.Consume(context.Background()))

	return store, publisher, embedder
}

func seedDocument(store *memStore, fileName string) uuid.UUID {
	doc := &entity.Document{
		Id:        uuid.New(),
		FileName:  fileName,
		Status:    constant.DocumentStatusPending,
		CreatedAt: time.Now(),
	}
	store.mu.Lock()
	store.documents[doc.Id] = doc
	store.mu.Unlock()
	return doc.Id
}

func TestIngestionChunksAndEmbeds(t *testing.T) {
	store, publisher, embedder := newIngestFixture(t, 10)

	docId := seedDocument(store, "handbook.docx")
	text := strings.Repeat("a", 25) // 3 chunks at size 10

	publishIngest(t, publisher, docId, "handbook.docx", text)
	waitForStatus(t, store, docId, constant.DocumentStatusReady)

	store.mu.Lock()
	defer store.mu.Unlock()
	chunks := store.chunks[docId]
	require.Len(t, chunks, 3)
	assert.Equal(t, 3, embedder.calls)
	assert.Equal(t, 3, store.documents[docId].ChunkCount)

	var rebuilt strings.Builder
	for _, c := range chunks {
		rebuilt.WriteString(c.Content)
	}
	assert.Equal(t, text, rebuilt.String())
	for i, c := range chunks {
		assert.Equal(t, i, c.ChunkIndex)
		assert.Len(t, c.Embedding, 1536)
	}
}

func TestReingestReplacesChunks(t *testing.T) {
	store, publisher, _ := newIngestFixture(t, 10)

	docId := seedDocument(store, "handbook.docx")

	publishIngest(t, publisher, docId, "handbook.docx", strings.Repeat("a", 35))
	waitForStatus(t, store, docId, constant.DocumentStatusReady)

	// Same document again with shorter text: chunks are replaced, not
	// appended.
	store.mu.Lock()
	store.documents[docId].Status = constant.DocumentStatusPending
	store.mu.Unlock()

	newText := strings.Repeat("b", 15)
	publishIngest(t, publisher, docId, "handbook.docx", newText)
	waitForStatus(t, store, docId, constant.DocumentStatusReady)

	store.mu.Lock()
	defer store.mu.Unlock()
	chunks := store.chunks[docId]
	require.Len(t, chunks, 2)
	for _, c := range chunks {
		assert.NotContains(t, c.Content, "a")
	}
}

func TestIngestionUnknownDocumentAcked(t *testing.T) {
	store, publisher, embedder := newIngestFixture(t, 10)

	publishIngest(t, publisher, uuid.New(), "ghost.docx", "some text")

	// Give the consumer time to (not) act
	time.Sleep(200 * time.Millisecond)

	store.mu.Lock()
	defer store.mu.Unlock()
	assert.Empty(t, store.chunks)
	assert.Zero(t, embedder.calls)
}
