package services

import (
	"context"

	"housing-price-service/internal/core/domain"
	ports "housing-price-service/internal/core/ports/output"
)

type HistoryService struct {
	repo ports.HistoryRepository
}

func NewHistoryService(repo ports.HistoryRepository) *HistoryService {
	return &HistoryService{repo: repo}
}

func (s *HistoryService) List(ctx context.Context) ([]*domain.PredictionRecord, error) {
	return s.repo.List(ctx)
}

// Delete is idempotent: removing an unknown id reports false, not an error.
func (s *HistoryService) Delete(ctx context.Context, id int64) (bool, error) {
	return s.repo.Delete(ctx, id)
}
