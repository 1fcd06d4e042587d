package repository

import (
	"context"

	"github.com/safestreets-service/internal/domain"
)

// ReportRepository - упорядоченное хранилище отчётов, новые первыми
type ReportRepository interface {
	// List возвращает копию всех отчётов в порядке хранилища
	List(ctx context.Context) ([]domain.SafetyReport, error)

	// Get возвращает отчёт по id; nil, nil если его нет
	Get(ctx context.Context, id string) (*domain.SafetyReport, error)

	// Exists проверяет наличие отчёта
	Exists(ctx context.Context, id string) (bool, error)

	// Prepend добавляет отчёт в начало; id должен быть уникальным
	Prepend(ctx context.Context, report domain.SafetyReport) error

	// Upvote увеличивает счётчик голосов на 1; nil, nil если отчёта нет
	Upvote(ctx context.Context, id string) (*domain.SafetyReport, error)

	// Delete удаляет отчёт; false если его не было
	Delete(ctx context.Context, id string) (bool, error)
}
