package session

import (
	"context"
	"sync"
	"time"

	"github.com/susuregis/Chatbot/internal/model"
)

// MemoryStore хранит сессии в памяти процесса. Сессии без активности дольше timeout
// считаются истекшими.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[int64]model.Session
	timeout  time.Duration
	now      func() time.Time
}

// NewMemoryStore создает хранилище сессий в памяти.
func NewMemoryStore(timeout time.Duration) *MemoryStore {
	return &MemoryStore{
		sessions: make(map[int64]model.Session),
		timeout:  timeout,
		now:      time.Now,
	}
}

// Get возвращает копию сессии пользователя.
func (s *MemoryStore) Get(_ context.Context, chatID int64) (*model.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[chatID]
	if !ok {
		return nil, nil
	}
	if s.expired(sess) {
		delete(s.sessions, chatID)
		return nil, nil
	}
	return &sess, nil
}

// Save сохраняет копию сессии и обновляет время активности.
func (s *MemoryStore) Save(_ context.Context, sess *model.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess.UpdatedAt = s.now()
	s.sessions[sess.ChatID] = *sess
	return nil
}

// Delete удаляет сессию пользователя.
func (s *MemoryStore) Delete(_ context.Context, chatID int64) error {
	s.mu.Lock()
	delete(s.sessions, chatID)
	s.mu.Unlock()
	return nil
}

// Len возвращает число хранимых сессий.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Cleanup удаляет истекшие сессии и возвращает их количество.
func (s *MemoryStore) Cleanup() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for id, sess := range s.sessions {
		if s.expired(sess) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// StartCleanupRoutine периодически вызывает Cleanup, пока не отменен ctx.
func (s *MemoryStore) StartCleanupRoutine(ctx context.Context, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Cleanup()
		}
	}
}

func (s *MemoryStore) expired(sess model.Session) bool {
	return s.timeout > 0 && s.now().Sub(sess.UpdatedAt) > s.timeout
}
