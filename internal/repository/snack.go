package repository

import (
	"context"

	"github.com/google/uuid"

	"diet-api/internal/domain"
)

// SnackRepository exposes persistence operations for snacks. Every method
// except Create is scoped to the owning user id.
type SnackRepository interface {
	Create(ctx context.Context, snack *domain.Snack) error
	Update(ctx context.Context, snack *domain.Snack) (int64, error)
	Delete(ctx context.Context, id, userID uuid.UUID) (int64, error)
	Get(ctx context.Context, id, userID uuid.UUID) (*domain.Snack, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Snack, error)
	SummaryByUser(ctx context.Context, userID uuid.UUID) (domain.SnackSummary, error)
}
