package memory

import (
	"context"
	"sync"

	"housing-price-service/internal/core/domain"
	ports "housing-price-service/internal/core/ports/output"
)

type historyRepo struct {
	mu      sync.RWMutex
	lastID  int64
	records []*domain.PredictionRecord
}

// NewHistoryRepository creates an in-memory, append-only prediction ledger.
// Contents are lost on restart.
func NewHistoryRepository() ports.HistoryRepository {
	return &historyRepo{}
}

func (r *historyRepo) Append(_ context.Context, record *domain.PredictionRecord) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lastID++
	stored := *record
	stored.ID = r.lastID
	stored.Features = record.Features.Clone()
	r.records = append(r.records, &stored)

	record.ID = stored.ID
	return stored.ID, nil
}

func (r *historyRepo) List(_ context.Context) ([]*domain.PredictionRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.PredictionRecord, 0, len(r.records))
	for _, rec := range r.records {
		cp := *rec
		cp.Features = rec.Features.Clone()
		out = append(out, &cp)
	}
	return out, nil
}

func (r *historyRepo) Delete(_ context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, rec := range r.records {
		if rec.ID == id {
			r.records = append(r.records[:i], r.records[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}
