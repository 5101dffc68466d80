package service

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"college-buddy-be/internal/constant"
	"college-buddy-be/internal/dto"
	"college-buddy-be/internal/entity"
	"college-buddy-be/internal/repository/memory"
	"college-buddy-be/internal/repository/specification"
	"college-buddy-be/internal/repository/unitofwork"
	"college-buddy-be/pkg/advisor"
	"college-buddy-be/pkg/advisor/clarify"
	"college-buddy-be/pkg/advisor/intent"
	"college-buddy-be/pkg/advisor/response"
	"college-buddy-be/pkg/advisor/retrieve"
	"college-buddy-be/pkg/advisor/state"
	"college-buddy-be/pkg/llm"

	"github.com/google/uuid"
)

// IAdvisorService defines the advising workflow interface
type IAdvisorService interface {
	CreateSession(ctx context.Context) (*dto.CreateSessionResponse, error)
	GetAllSessions(ctx context.Context) ([]*dto.GetAllSessionsResponse, error)
	Ask(ctx context.Context, request *dto.AskRequest) (*dto.AskResponse, error)
	Clarify(ctx context.Context, request *dto.ClarifyRequest) (*dto.ClarifyResponse, error)
	GetHistory(ctx context.Context, sessionId uuid.UUID) (*dto.GetHistoryResponse, error)
	DeleteSession(ctx context.Context, sessionId uuid.UUID) error
}

// advisorService coordinates the two-phase ask/clarify flow: every question
// is classified and answered with a clarification prompt first; the answer
// is only synthesized once the student narrows their question down.
type advisorService struct {
	uowFactory       unitofwork.RepositoryFactory
	conversationRepo *memory.ConversationRepository
	classifier       *intent.Classifier
	synthesizer      *response.Synthesizer
	retriever        retrieve.ContextRetriever
	advisorLogger    *log.Logger

	topKOriginal int
	topKCombined int
}

func NewAdvisorService(
	uowFactory unitofwork.RepositoryFactory,
	conversationRepo *memory.ConversationRepository,
	llmProvider llm.LLMProvider,
	retriever retrieve.ContextRetriever,
	topKOriginal int,
	topKCombined int,
) IAdvisorService {
	advisorLogger := initAdvisorLogger()

	return &advisorService{
		uowFactory:       uowFactory,
		conversationRepo: conversationRepo,
		classifier:       intent.NewClassifier(llmProvider, advisorLogger),
		synthesizer:      response.NewSynthesizer(llmProvider, advisorLogger),
		retriever:        retriever,
		advisorLogger:    advisorLogger,
		topKOriginal:     topKOriginal,
		topKCombined:     topKCombined,
	}
}

func initAdvisorLogger() *log.Logger {
	logPath := filepath.Join(".", "logs", "advisor_rag.log")
	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		log.Printf("Failed to create logs directory: %v", err)
	}
	file, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return log.New(os.Stdout, "[ADVISOR] ", log.LstdFlags)
	}
	return log.New(file, "", log.LstdFlags)
}

// CreateSession creates a new advising session
func (as *advisorService) CreateSession(ctx context.Context) (*dto.CreateSessionResponse, error) {
	uow := as.uowFactory.NewUnitOfWork(ctx)

	session := entity.AdvisingSession{
		Id:        uuid.New(),
		Title:     constant.DefaultSessionTitle,
		CreatedAt: time.Now(),
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.AdvisingSessionRepository().Create(ctx, &session); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	as.conversationRepo.Save(state.New(session.Id.String()))

	return &dto.CreateSessionResponse{
		Id:       session.Id,
		Greeting: constant.SessionGreeting,
	}, nil
}

// GetAllSessions retrieves all advising sessions, newest first
func (as *advisorService) GetAllSessions(ctx context.Context) ([]*dto.GetAllSessionsResponse, error) {
	uow := as.uowFactory.NewUnitOfWork(ctx)

	sessions, err := uow.AdvisingSessionRepository().FindAll(ctx,
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.GetAllSessionsResponse, 0, len(sessions))
	for _, s := range sessions {
		res = append(res, &dto.GetAllSessionsResponse{
			Id:        s.Id,
			Title:     s.Title,
			CreatedAt: s.CreatedAt,
			UpdatedAt: s.UpdatedAt,
		})
	}
	return res, nil
}

// Ask classifies a new question and answers with a clarification prompt.
// Asking again while a clarification is pending replaces the earlier
// question rather than erroring; the discarded query is echoed back.
func (as *advisorService) Ask(ctx context.Context, request *dto.AskRequest) (*dto.AskResponse, error) {
	query := strings.TrimSpace(request.Query)
	if query == "" {
		return nil, advisor.ErrEmptyInput
	}

	cs, err := as.loadConversation(ctx, request.SessionId)
	if err != nil {
		return nil, err
	}

	// Classification never hard-fails on odd output; only transport errors
	// from the LLM boundary propagate.
	it, err := as.classifier.Classify(ctx, query)
	if err != nil {
		return nil, err
	}

	prompt := clarify.Generate(it)

	replaced, err := cs.BeginClarification(query, it, prompt)
	if err != nil {
		return nil, err
	}
	if replaced != "" {
		as.advisorLogger.Printf("[ASK] session %s: replaced pending query %q with %q", request.SessionId, replaced, query)
	}
	as.conversationRepo.Save(cs)

	return &dto.AskResponse{
		SessionId:       request.SessionId,
		Intent:          it.Number(),
		IntentLabel:     it.Label(),
		Clarification:   prompt,
		ReplacedPending: replaced,
	}, nil
}

// Clarify completes a pending question: retrieves context for both the
// original and the combined query, synthesizes the answer and appends the
// exchange to the session history.
func (as *advisorService) Clarify(ctx context.Context, request *dto.ClarifyRequest) (*dto.ClarifyResponse, error) {
	clarification := strings.TrimSpace(request.Clarification)
	if clarification == "" {
		return nil, advisor.ErrEmptyInput
	}

	cs, err := as.loadConversation(ctx, request.SessionId)
	if err != nil {
		return nil, err
	}

	// The state resets before any external call so a boundary failure
	// leaves the session Idle rather than stuck awaiting.
	pending, err := cs.CompleteClarification()
	if err != nil {
		return nil, err
	}
	as.conversationRepo.Save(cs)

	originalContext, err := as.retriever.Retrieve(ctx, pending.Query, as.topKOriginal)
	if err != nil {
		return nil, err
	}

	combinedQuery := fmt.Sprintf("%s %s", pending.Query, clarification)
	combinedContext, err := as.retriever.Retrieve(ctx, combinedQuery, as.topKCombined)
	if err != nil {
		return nil, err
	}

	labeledContext := fmt.Sprintf("Original context: %s\nClarification context: %s", originalContext, combinedContext)

	answer, err := as.synthesizer.Synthesize(ctx, pending.Query, pending.Intent, labeledContext, clarification)
	if err != nil {
		return nil, err
	}

	historyQuery := fmt.Sprintf("%s (Clarification: %s)", pending.Query, clarification)

	uow := as.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	exchange := entity.ChatExchange{
		Id:        uuid.New(),
		SessionId: request.SessionId,
		Query:     historyQuery,
		Answer:    answer,
		Intent:    pending.Intent.Number(),
		CreatedAt: time.Now(),
	}
	if err := uow.ChatExchangeRepository().Create(ctx, &exchange); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	return &dto.ClarifyResponse{
		SessionId: request.SessionId,
		Query:     historyQuery,
		Answer:    answer,
		Intent:    pending.Intent.Number(),
	}, nil
}

// GetHistory returns a session's exchanges oldest first
func (as *advisorService) GetHistory(ctx context.Context, sessionId uuid.UUID) (*dto.GetHistoryResponse, error) {
	uow := as.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.AdvisingSessionRepository().FindOne(ctx, specification.ByID{ID: sessionId})
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, advisor.ErrSessionNotFound
	}

	exchanges, err := uow.ChatExchangeRepository().FindBySessionId(ctx, sessionId)
	if err != nil {
		return nil, err
	}

	res := &dto.GetHistoryResponse{
		SessionId: sessionId,
		Exchanges: make([]dto.ChatExchangeResponse, 0, len(exchanges)),
	}
	for _, e := range exchanges {
		res.Exchanges = append(res.Exchanges, dto.ChatExchangeResponse{
			Id:        e.Id,
			Query:     e.Query,
			Answer:    e.Answer,
			Intent:    e.Intent,
			CreatedAt: e.CreatedAt,
		})
	}
	return res, nil
}

// DeleteSession removes the session, its history and any pending state
func (as *advisorService) DeleteSession(ctx context.Context, sessionId uuid.UUID) error {
	uow := as.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.AdvisingSessionRepository().FindOne(ctx, specification.ByID{ID: sessionId})
	if err != nil {
		return err
	}
	if session == nil {
		return advisor.ErrSessionNotFound
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.ChatExchangeRepository().DeleteBySessionId(ctx, sessionId); err != nil {
		return err
	}
	if err := uow.AdvisingSessionRepository().Delete(ctx, sessionId); err != nil {
		return err
	}

	if err := uow.Commit(); err != nil {
		return err
	}

	as.conversationRepo.Delete(sessionId.String())
	return nil
}

// loadConversation resolves the in-memory state for a session, verifying the
// session row exists and rebuilding an Idle state after cache eviction.
func (as *advisorService) loadConversation(ctx context.Context, sessionId uuid.UUID) (*state.ConversationState, error) {
	if cs, found := as.conversationRepo.Get(sessionId.String()); found {
		return cs, nil
	}

	uow := as.uowFactory.NewUnitOfWork(ctx)
	session, err := uow.AdvisingSessionRepository().FindOne(ctx, specification.ByID{ID: sessionId})
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, advisor.ErrSessionNotFound
	}

	cs := state.New(sessionId.String())
	as.conversationRepo.Save(cs)
	return cs, nil
}
