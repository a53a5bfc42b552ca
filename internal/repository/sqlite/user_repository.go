package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"diet-api/internal/domain"
	"diet-api/internal/repository"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now

	if _, err := r.db.ExecContext(ctx, `
INSERT INTO "user" (id, createdAt, updatedAt, sessionId, username)
VALUES (?, ?, ?, ?, ?)`,
		user.ID,
		user.CreatedAt,
		user.UpdatedAt,
		user.SessionID,
		user.Username,
	); err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, createdAt, updatedAt, sessionId, username
FROM "user"
WHERE username = ?`,
		username,
	)
	return scanUser(row)
}

func (r *UserRepository) GetBySessionID(ctx context.Context, sessionID uuid.UUID) (*domain.User, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, createdAt, updatedAt, sessionId, username
FROM "user"
WHERE sessionId = ?`,
		sessionID,
	)
	return scanUser(row)
}

func scanUser(row interface {
	Scan(dest ...any) error
}) (*domain.User, error) {
	var user domain.User
	if err := row.Scan(
		&user.ID,
		&user.CreatedAt,
		&user.UpdatedAt,
		&user.SessionID,
		&user.Username,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("user: %w", repository.ErrNotFound)
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}
	return &user, nil
}
