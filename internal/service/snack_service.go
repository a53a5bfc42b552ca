package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"diet-api/internal/domain"
	"diet-api/internal/repository"
)

// ErrSnackNotFound indicates that the owner has no snack with the requested id.
var ErrSnackNotFound = errors.New("snack not found")

// SnackInput carries the caller-editable snack fields.
type SnackInput struct {
	Name        string
	Description string
	Status      bool
	// CreatedAt is only honoured on create.
	CreatedAt time.Time
}

// SnackService coordinates snack operations. Every call is scoped to the owner.
type SnackService interface {
	CreateSnack(ctx context.Context, owner uuid.UUID, in SnackInput) (*domain.Snack, error)
	GetSnack(ctx context.Context, owner, id uuid.UUID) (*domain.Snack, error)
	ListSnacks(ctx context.Context, owner uuid.UUID) ([]domain.Snack, error)
	Summary(ctx context.Context, owner uuid.UUID) (domain.SnackSummary, error)
	UpdateSnack(ctx context.Context, owner, id uuid.UUID, in SnackInput) error
	DeleteSnack(ctx context.Context, owner, id uuid.UUID) error
}

type snackService struct {
	snacks repository.SnackRepository
}

func NewSnackService(snacks repository.SnackRepository) SnackService {
	return &snackService{snacks: snacks}
}

func (s *snackService) CreateSnack(ctx context.Context, owner uuid.UUID, in SnackInput) (*domain.Snack, error) {
	snack := &domain.Snack{
		ID:          uuid.New(),
		CreatedAt:   in.CreatedAt,
		UserID:      owner,
		Status:      in.Status,
		Name:        in.Name,
		Description: in.Description,
	}
	if err := s.snacks.Create(ctx, snack); err != nil {
		return nil, err
	}
	return snack, nil
}

func (s *snackService) GetSnack(ctx context.Context, owner, id uuid.UUID) (*domain.Snack, error) {
	snack, err := s.snacks.Get(ctx, id, owner)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSnackNotFound
		}
		return nil, err
	}
	return snack, nil
}

func (s *snackService) ListSnacks(ctx context.Context, owner uuid.UUID) ([]domain.Snack, error) {
	return s.snacks.ListByUser(ctx, owner)
}

func (s *snackService) Summary(ctx context.Context, owner uuid.UUID) (domain.SnackSummary, error) {
	return s.snacks.SummaryByUser(ctx, owner)
}

// UpdateSnack rewrites name, description and status. Touching a snack that the
// owner does not have affects nothing and is not an error.
func (s *snackService) UpdateSnack(ctx context.Context, owner, id uuid.UUID, in SnackInput) error {
	_, err := s.snacks.Update(ctx, &domain.Snack{
		ID:          id,
		UserID:      owner,
		Status:      in.Status,
		Name:        in.Name,
		Description: in.Description,
	})
	return err
}

func (s *snackService) DeleteSnack(ctx context.Context, owner, id uuid.UUID) error {
	_, err := s.snacks.Delete(ctx, id, owner)
	return err
}
