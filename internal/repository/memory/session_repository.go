package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/safestreets-service/internal/domain"
	"github.com/safestreets-service/internal/domain/repository"
	"github.com/safestreets-service/internal/pkg/errors"
)

type sessionRepository struct {
	mu       sync.Mutex
	sessions map[string]*domain.Session
	now      func() time.Time
}

// NewSessionRepository создает хранилище сессий в памяти процесса
func NewSessionRepository() repository.SessionRepository {
	return newSessionRepository(time.Now)
}

func newSessionRepository(now func() time.Time) *sessionRepository {
	return &sessionRepository{
		sessions: make(map[string]*domain.Session),
		now:      now,
	}
}

func (r *sessionRepository) Create(ctx context.Context, session *domain.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[session.ID]; ok {
		return fmt.Errorf("session %q already exists", session.ID)
	}
	r.sessions[session.ID] = session.Clone()
	return nil
}

func (r *sessionRepository) Get(ctx context.Context, id string) (*domain.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[id]
	if !ok {
		return nil, nil
	}
	return s.Clone(), nil
}

func (r *sessionRepository) Update(ctx context.Context, id string, fn func(s *domain.Session) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[id]
	if !ok {
		return errors.ErrSessionNotFound
	}

	// Команда работает с копией, чтобы ошибка не оставила сессию наполовину изменённой
	draft := s.Clone()
	if err := fn(draft); err != nil {
		return err
	}
	draft.LastSeenAt = r.now()
	r.sessions[id] = draft
	return nil
}

func (r *sessionRepository) Touch(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[id]
	if !ok {
		return errors.ErrSessionNotFound
	}
	s.LastSeenAt = r.now()
	return nil
}

func (r *sessionRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, id)
	return nil
}

func (r *sessionRepository) DeleteIdle(ctx context.Context, before time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, s := range r.sessions {
		if s.LastSeenAt.Before(before) {
			delete(r.sessions, id)
			removed++
		}
	}
	return removed, nil
}

func (r *sessionRepository) Count(ctx context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.sessions), nil
}
