package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/safestreets-service/internal/domain"
	"github.com/safestreets-service/internal/domain/repository"
)

type reportRepository struct {
	mu      sync.RWMutex
	reports []domain.SafetyReport
	index   map[string]struct{}
}

// NewReportRepository создает хранилище отчётов с начальными данными
func NewReportRepository(seed []domain.SafetyReport) repository.ReportRepository {
	r := &reportRepository{
		reports: make([]domain.SafetyReport, 0, len(seed)),
		index:   make(map[string]struct{}, len(seed)),
	}
	for _, rep := range seed {
		if _, dup := r.index[rep.ID]; dup {
			continue
		}
		r.reports = append(r.reports, copyReport(rep))
		r.index[rep.ID] = struct{}{}
	}
	return r
}

func (r *reportRepository) List(ctx context.Context) ([]domain.SafetyReport, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.SafetyReport, len(r.reports))
	for i, rep := range r.reports {
		out[i] = copyReport(rep)
	}
	return out, nil
}

func (r *reportRepository) Get(ctx context.Context, id string) (*domain.SafetyReport, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.find(id)
	if i < 0 {
		return nil, nil
	}
	rep := copyReport(r.reports[i])
	return &rep, nil
}

func (r *reportRepository) Exists(ctx context.Context, id string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.index[id]
	return ok, nil
}

func (r *reportRepository) Prepend(ctx context.Context, report domain.SafetyReport) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, dup := r.index[report.ID]; dup {
		return fmt.Errorf("report %q already exists", report.ID)
	}

	r.reports = append([]domain.SafetyReport{copyReport(report)}, r.reports...)
	r.index[report.ID] = struct{}{}
	return nil
}

func (r *reportRepository) Upvote(ctx context.Context, id string) (*domain.SafetyReport, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.find(id)
	if i < 0 {
		return nil, nil
	}
	r.reports[i].Upvotes++
	rep := copyReport(r.reports[i])
	return &rep, nil
}

func (r *reportRepository) Delete(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.find(id)
	if i < 0 {
		return false, nil
	}
	r.reports = append(r.reports[:i], r.reports[i+1:]...)
	delete(r.index, id)
	return true, nil
}

// find - линейный поиск, отчётов в памяти немного
func (r *reportRepository) find(id string) int {
	if _, ok := r.index[id]; !ok {
		return -1
	}
	for i := range r.reports {
		if r.reports[i].ID == id {
			return i
		}
	}
	return -1
}

func copyReport(rep domain.SafetyReport) domain.SafetyReport {
	if rep.Position != nil {
		p := *rep.Position
		rep.Position = &p
	}
	return rep
}
