package mapper

import (
	"time"

	"college-buddy-be/internal/entity"
	"college-buddy-be/internal/model"
)

type AdvisingSessionMapper struct{}

func NewAdvisingSessionMapper() *AdvisingSessionMapper {
	return &AdvisingSessionMapper{}
}

func (m *AdvisingSessionMapper) ToEntity(s *model.AdvisingSession) *entity.AdvisingSession {
	if s == nil {
		return nil
	}

	var updatedAt *time.Time
	if !s.UpdatedAt.IsZero() {
		t := s.UpdatedAt
		updatedAt = &t
	}

	return &entity.AdvisingSession{
		Id:        s.Id,
		Title:     s.Title,
		CreatedAt: s.CreatedAt,
		UpdatedAt: updatedAt,
	}
}

func (m *AdvisingSessionMapper) ToModel(s *entity.AdvisingSession) *model.AdvisingSession {
	if s == nil {
		return nil
	}

	var updatedAt time.Time
	if s.UpdatedAt != nil {
		updatedAt = *s.UpdatedAt
	}

	return &model.AdvisingSession{
		Id:        s.Id,
		Title:     s.Title,
		CreatedAt: s.CreatedAt,
		UpdatedAt: updatedAt,
	}
}

func (m *AdvisingSessionMapper) ToEntities(sessions []*model.AdvisingSession) []*entity.AdvisingSession {
	entities := make([]*entity.AdvisingSession, len(sessions))
	for i, s := range sessions {
		entities[i] = m.ToEntity(s)
	}
	return entities
}

type ChatExchangeMapper struct{}

func NewChatExchangeMapper() *ChatExchangeMapper {
	return &ChatExchangeMapper{}
}

func (m *ChatExchangeMapper) ToEntity(e *model.ChatExchange) *entity.ChatExchange {
	if e == nil {
		return nil
	}

	return &entity.ChatExchange{
		Id:        e.Id,
		SessionId: e.SessionId,
		Query:     e.Query,
		Answer:    e.Answer,
		Intent:    e.Intent,
		CreatedAt: e.CreatedAt,
	}
}

func (m *ChatExchangeMapper) ToModel(e *entity.ChatExchange) *model.ChatExchange {
	if e == nil {
		return nil
	}

	return &model.ChatExchange{
		Id:        e.Id,
		SessionId: e.SessionId,
		Query:     e.Query,
		Answer:    e.Answer,
		Intent:    e.Intent,
		CreatedAt: e.CreatedAt,
	}
}

func (m *ChatExchangeMapper) ToEntities(exchanges []*model.ChatExchange) []*entity.ChatExchange {
	entities := make([]*entity.ChatExchange, len(exchanges))
	for i, e := range exchanges {
		entities[i] = m.ToEntity(e)
	}
	return entities
}
