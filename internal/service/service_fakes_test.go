package service

import (
	"context"
	"sort"
	"sync"

	"college-buddy-be/internal/entity"
	"college-buddy-be/internal/repository/contract"
	"college-buddy-be/internal/repository/specification"
	"college-buddy-be/internal/repository/unitofwork"
	"college-buddy-be/pkg/llm"

	"github.com/google/uuid"
)

// scriptedLLM replays canned responses in order
type scriptedLLM struct {
	mu        sync.Mutex
	responses []string
	err       error
}

func (f *scriptedLLM) next() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.responses) == 0 {
		return ""
	}
	r := f.responses[0]
	f.responses = f.responses[1:]
	return r
}

func (f *scriptedLLM) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.next(), nil
}

func (f *scriptedLLM) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.next(), nil
}

// recordingRetriever captures retrieval calls and returns fixed context
type recordingRetriever struct {
	mu      sync.Mutex
	queries []string
	topKs   []int
	context string
	err     error
}

func (r *recordingRetriever) Retrieve(ctx context.Context, query string, topK int) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return "", r.err
	}
	r.queries = append(r.queries, query)
	r.topKs = append(r.topKs, topK)
	return r.context, nil
}

// In-memory repository fakes backing the unit of work

type memStore struct {
	mu        sync.Mutex
	sessions  map[uuid.UUID]*entity.AdvisingSession
	exchanges []*entity.ChatExchange
	documents map[uuid.UUID]*entity.Document
	chunks    map[uuid.UUID][]*entity.DocumentChunk
}

func newMemStore() *memStore {
	return &memStore{
		sessions:  make(map[uuid.UUID]*entity.AdvisingSession),
		documents: make(map[uuid.UUID]*entity.Document),
		chunks:    make(map[uuid.UUID][]*entity.DocumentChunk),
	}
}

func byIDOf(specs []specification.Specification) (uuid.UUID, bool) {
	for _, s := range specs {
		if byID, ok := s.(specification.ByID); ok {
			return byID.ID, true
		}
	}
	return uuid.Nil, false
}

type fakeSessionRepo struct{ store *memStore }

func (r *fakeSessionRepo) Create(ctx context.Context, s *entity.AdvisingSession) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	copied := *s
	r.store.sessions[s.Id] = &copied
	return nil
}

func (r *fakeSessionRepo) Update(ctx context.Context, s *entity.AdvisingSession) error {
	return r.Create(ctx, s)
}

func (r *fakeSessionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.sessions, id)
	return nil
}

func (r *fakeSessionRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.AdvisingSession, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if id, ok := byIDOf(specs); ok {
		if s, found := r.store.sessions[id]; found {
			copied := *s
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeSessionRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AdvisingSession, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	out := make([]*entity.AdvisingSession, 0, len(r.store.sessions))
	for _, s := range r.store.sessions {
		copied := *s
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

type fakeExchangeRepo struct{ store *memStore }

func (r *fakeExchangeRepo) Create(ctx context.Context, e *entity.ChatExchange) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	copied := *e
	r.store.exchanges = append(r.store.exchanges, &copied)
	return nil
}

func (r *fakeExchangeRepo) FindBySessionId(ctx context.Context, sessionId uuid.UUID) ([]*entity.ChatExchange, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []*entity.ChatExchange
	for _, e := range r.store.exchanges {
		if e.SessionId == sessionId {
			copied := *e
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeExchangeRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatExchange, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	out := make([]*entity.ChatExchange, len(r.store.exchanges))
	for i, e := range r.store.exchanges {
		copied := *e
		out[i] = &copied
	}
	return out, nil
}

func (r *fakeExchangeRepo) DeleteBySessionId(ctx context.Context, sessionId uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	kept := r.store.exchanges[:0]
	for _, e := range r.store.exchanges {
		if e.SessionId != sessionId {
			kept = append(kept, e)
		}
	}
	r.store.exchanges = kept
	return nil
}

type fakeDocumentRepo struct{ store *memStore }

func (r *fakeDocumentRepo) Create(ctx context.Context, d *entity.Document) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	copied := *d
	r.store.documents[d.Id] = &copied
	return nil
}

func (r *fakeDocumentRepo) Update(ctx context.Context, d *entity.Document) error {
	return r.Create(ctx, d)
}

func (r *fakeDocumentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.documents, id)
	return nil
}

func (r *fakeDocumentRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Document, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if id, ok := byIDOf(specs); ok {
		if d, found := r.store.documents[id]; found {
			copied := *d
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeDocumentRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Document, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	out := make([]*entity.Document, 0, len(r.store.documents))
	for _, d := range r.store.documents {
		copied := *d
		out = append(out, &copied)
	}
	return out, nil
}

func (r *fakeDocumentRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return int64(len(r.store.documents)), nil
}

func (r *fakeDocumentRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if d, found := r.store.documents[id]; found {
		d.Status = status
	}
	return nil
}

type fakeChunkRepo struct{ store *memStore }

func (r *fakeChunkRepo) Create(ctx context.Context, c *entity.DocumentChunk) error {
	return r.CreateBulk(ctx, []*entity.DocumentChunk{c})
}

func (r *fakeChunkRepo) CreateBulk(ctx context.Context, chunks []*entity.DocumentChunk) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, c := range chunks {
		copied := *c
		r.store.chunks[c.DocumentId] = append(r.store.chunks[c.DocumentId], &copied)
	}
	return nil
}

func (r *fakeChunkRepo) DeleteByDocumentId(ctx context.Context, documentId uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.chunks, documentId)
	return nil
}

func (r *fakeChunkRepo) ReplaceForDocument(ctx context.Context, documentId uuid.UUID, chunks []*entity.DocumentChunk) error {
	if err := r.DeleteByDocumentId(ctx, documentId); err != nil {
		return err
	}
	return r.CreateBulk(ctx, chunks)
}

func (r *fakeChunkRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.DocumentChunk, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []*entity.DocumentChunk
	for _, list := range r.store.chunks {
		for _, c := range list {
			copied := *c
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ChunkIndex < out[j].ChunkIndex })
	return out, nil
}

func (r *fakeChunkRepo) CountByDocumentId(ctx context.Context, documentId uuid.UUID) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return int64(len(r.store.chunks[documentId])), nil
}

func (r *fakeChunkRepo) SearchSimilarWithScore(ctx context.Context, embedding []float32, limit int) ([]*contract.ScoredDocumentChunk, error) {
	chunks, _ := r.FindAll(ctx)
	if len(chunks) > limit {
		chunks = chunks[:limit]
	}
	out := make([]*contract.ScoredDocumentChunk, len(chunks))
	for i, c := range chunks {
		out[i] = &contract.ScoredDocumentChunk{Chunk: c, Similarity: 1.0}
	}
	return out, nil
}

// fakeUnitOfWork serves all repositories off one in-memory store; Begin,
// Commit and Rollback are no-ops since nothing here is transactional.
type fakeUnitOfWork struct{ store *memStore }

func (u *fakeUnitOfWork) Begin(ctx context.Context) error { return nil }
func (u *fakeUnitOfWork) Commit() error                   { return nil }
func (u *fakeUnitOfWork) Rollback() error                 { return nil }

func (u *fakeUnitOfWork) DocumentRepository() contract.DocumentRepository {
	return &fakeDocumentRepo{store: u.store}
}

func (u *fakeUnitOfWork) DocumentChunkRepository() contract.DocumentChunkRepository {
	return &fakeChunkRepo{store: u.store}
}

func (u *fakeUnitOfWork) AdvisingSessionRepository() contract.AdvisingSessionRepository {
	return &fakeSessionRepo{store: u.store}
}

func (u *fakeUnitOfWork) ChatExchangeRepository() contract.ChatExchangeRepository {
	return &fakeExchangeRepo{store: u.store}
}

type fakeUowFactory struct{ store *memStore }

func (f *fakeUowFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &fakeUnitOfWork{store: f.store}
}
