package repository

import (
	"context"

	"github.com/google/uuid"

	"diet-api/internal/domain"
)

// UserRepository defines persistence operations for User entities.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetBySessionID(ctx context.Context, sessionID uuid.UUID) (*domain.User, error)
}
