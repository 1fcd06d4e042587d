package repository

import (
	"context"
	"time"

	"github.com/safestreets-service/internal/domain"
)

// SessionRepository хранит сессии. Все изменения сессии идут через Update,
// который выполняет команду под блокировкой хранилища.
type SessionRepository interface {
	Create(ctx context.Context, session *domain.Session) error

	// Get возвращает копию сессии; nil, nil если её нет
	Get(ctx context.Context, id string) (*domain.Session, error)

	// Update выполняет fn над сессией атомарно и обновляет LastSeenAt.
	// Возвращает ошибку fn либо ErrSessionNotFound.
	Update(ctx context.Context, id string, fn func(s *domain.Session) error) error

	// Touch отмечает активность сессии (обновляет LastSeenAt) без других изменений.
	// Возвращает ErrSessionNotFound, если сессии нет.
	Touch(ctx context.Context, id string) error

	Delete(ctx context.Context, id string) error

	// DeleteIdle удаляет сессии без активности с момента before
	DeleteIdle(ctx context.Context, before time.Time) (int, error)

	Count(ctx context.Context) (int, error)
}
