package session

import (
	"context"

	"github.com/susuregis/Chatbot/internal/model"
)

// Store хранит сессии диалогов по chat ID.
type Store interface {
	// Get возвращает сессию или nil, если ее нет (или она истекла).
	Get(ctx context.Context, chatID int64) (*model.Session, error)
	Save(ctx context.Context, s *model.Session) error
	Delete(ctx context.Context, chatID int64) error
}
