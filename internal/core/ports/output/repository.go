package ports

import (
	"context"

	"housing-price-service/internal/core/domain"
)

type HistoryRepository interface {
	// Append stores the record, assigns its ID and returns it.
	Append(ctx context.Context, record *domain.PredictionRecord) (int64, error)
	// List returns records in insertion order.
	List(ctx context.Context) ([]*domain.PredictionRecord, error)
	// Delete reports whether a record was removed. A missing id is not an error.
	Delete(ctx context.Context, id int64) (bool, error)
}

type UserRepository interface {
	Create(ctx context.Context, user *domain.UserCredential) error
	Get(ctx context.Context, username string) (*domain.UserCredential, error)
}
