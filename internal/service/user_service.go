package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"diet-api/internal/domain"
	"diet-api/internal/repository"
)

var (
	// ErrUsernameRequired indicates an empty username on registration.
	ErrUsernameRequired = errors.New("username is required")
	// ErrSessionNotFound indicates that no user holds the presented session id.
	ErrSessionNotFound = errors.New("session id does not exist")
)

// UserService describes user lifecycle operations.
type UserService interface {
	Register(ctx context.Context, username string) (*domain.User, error)
	ResolveSession(ctx context.Context, sessionID uuid.UUID) (*domain.User, error)
}

type userService struct {
	users repository.UserRepository
}

func NewUserService(users repository.UserRepository) UserService {
	return &userService{users: users}
}

// Register logs in by username, creating the user on first use. A returning
// username gets its existing session id back; no new token is issued.
//
// The lookup, insert and re-fetch are not run in a transaction. Two concurrent
// registrations of the same new username can both miss the lookup, and the
// second insert then fails on the username unique constraint.
func (s *userService) Register(ctx context.Context, username string) (*domain.User, error) {
	if username == "" {
		return nil, ErrUsernameRequired
	}

	user, err := s.users.GetByUsername(ctx, username)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	if err := s.users.Create(ctx, &domain.User{
		ID:        uuid.New(),
		SessionID: uuid.NullUUID{UUID: uuid.New(), Valid: true},
		Username:  username,
	}); err != nil {
		return nil, err
	}

	return s.users.GetByUsername(ctx, username)
}

func (s *userService) ResolveSession(ctx context.Context, sessionID uuid.UUID) (*domain.User, error) {
	user, err := s.users.GetBySessionID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return user, nil
}
