package service

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"college-buddy-be/internal/constant"
	"college-buddy-be/internal/dto"
	"college-buddy-be/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturingPublisher struct {
	payloads [][]byte
}

func (p *capturingPublisher) Publish(ctx context.Context, payload []byte) error {
	p.payloads = append(p.payloads, payload)
	return nil
}

func minimalDocx(t *testing.T, body string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body><w:p><w:r><w:t>` + body + `</w:t></w:r></w:p></w:body></w:document>`))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func newTestDocumentService() (IDocumentService, *memStore, *capturingPublisher) {
	store := newMemStore()
	publisher := &capturingPublisher{}
	svc := NewDocumentService(
		&fakeUowFactory{store: store},
		publisher,
		logger.NewIsolatedLogger("logs/test_document.log"),
	)
	return svc, store, publisher
}

func TestUploadExtractsAndPublishes(t *testing.T) {
	svc, store, publisher := newTestDocumentService()

	data := minimalDocx(t, "Advising handbook content.")
	res, err := svc.Upload(context.Background(), "handbook.docx", data)
	require.NoError(t, err)
	assert.Equal(t, "handbook.docx", res.FileName)
	assert.Equal(t, constant.DocumentStatusPending, res.Status)

	store.mu.Lock()
	doc := store.documents[res.Id]
	store.mu.Unlock()
	require.NotNil(t, doc)
	assert.Equal(t, len("Advising handbook content."), doc.CharCount)

	require.Len(t, publisher.payloads, 1)
	var msg dto.IngestDocumentMessage
	require.NoError(t, json.Unmarshal(publisher.payloads[0], &msg))
	assert.Equal(t, res.Id, msg.DocumentId)
	assert.Equal(t, "Advising handbook content.", msg.Text)
}

func TestUploadRejectsEmptyAndNonDocx(t *testing.T) {
	svc, _, publisher := newTestDocumentService()

	_, err := svc.Upload(context.Background(), "empty.docx", nil)
	assert.Error(t, err)

	_, err = svc.Upload(context.Background(), "notes.docx", []byte("plain text, not a zip"))
	assert.Error(t, err)

	assert.Empty(t, publisher.payloads)
}

func TestDeleteRemovesDocumentAndChunks(t *testing.T) {
	svc, store, _ := newTestDocumentService()

	data := minimalDocx(t, "To be deleted.")
	res, err := svc.Upload(context.Background(), "old.docx", data)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), res.Id))

	store.mu.Lock()
	defer store.mu.Unlock()
	assert.NotContains(t, store.documents, res.Id)
	assert.NotContains(t, store.chunks, res.Id)
}
