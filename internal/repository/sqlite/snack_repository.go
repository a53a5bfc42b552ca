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

const snackColumns = `id, createdAt, updatedAt, userId, status, name, description`

type SnackRepository struct {
	db *sql.DB
}

func NewSnackRepository(db *sql.DB) repository.SnackRepository {
	return &SnackRepository{db: db}
}

// Create inserts the snack. A zero CreatedAt is filled with the current time;
// otherwise the caller's value is kept, normalized to UTC. The driver cannot
// read back timestamps it wrote with a non-UTC offset.
func (r *SnackRepository) Create(ctx context.Context, snack *domain.Snack) error {
	now := time.Now().UTC()
	if snack.CreatedAt.IsZero() {
		snack.CreatedAt = now
	}
	snack.CreatedAt = snack.CreatedAt.UTC()
	snack.UpdatedAt = now

	if _, err := r.db.ExecContext(ctx, `
INSERT INTO snack (`+snackColumns+`)
VALUES (?, ?, ?, ?, ?, ?, ?)`,
		snack.ID,
		snack.CreatedAt,
		snack.UpdatedAt,
		snack.UserID,
		snack.Status,
		snack.Name,
		snack.Description,
	); err != nil {
		return fmt.Errorf("insert snack: %w", err)
	}
	return nil
}

func (r *SnackRepository) Update(ctx context.Context, snack *domain.Snack) (int64, error) {
	snack.UpdatedAt = time.Now().UTC()

	res, err := r.db.ExecContext(ctx, `
UPDATE snack
SET name = ?, description = ?, status = ?, updatedAt = ?
WHERE id = ? AND userId = ?`,
		snack.Name,
		snack.Description,
		snack.Status,
		snack.UpdatedAt,
		snack.ID,
		snack.UserID,
	)
	if err != nil {
		return 0, fmt.Errorf("update snack: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("snack rows affected: %w", err)
	}
	return affected, nil
}

func (r *SnackRepository) Delete(ctx context.Context, id, userID uuid.UUID) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM snack WHERE id = ? AND userId = ?`, id, userID)
	if err != nil {
		return 0, fmt.Errorf("delete snack: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("snack rows affected: %w", err)
	}
	return affected, nil
}

func (r *SnackRepository) Get(ctx context.Context, id, userID uuid.UUID) (*domain.Snack, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT `+snackColumns+`
FROM snack
WHERE id = ? AND userId = ?`,
		id,
		userID,
	)

	var snack domain.Snack
	if err := scanSnack(row, &snack); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("snack: %w", repository.ErrNotFound)
		}
		return nil, err
	}
	return &snack, nil
}

func (r *SnackRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Snack, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT `+snackColumns+`
FROM snack
WHERE userId = ?`, userID)
	if err != nil {
		return nil, fmt.Errorf("query snacks: %w", err)
	}
	defer rows.Close()

	snacks := make([]domain.Snack, 0)
	for rows.Next() {
		var snack domain.Snack
		if err := scanSnack(rows, &snack); err != nil {
			return nil, err
		}
		snacks = append(snacks, snack)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate snacks: %w", err)
	}
	return snacks, nil
}

func (r *SnackRepository) SummaryByUser(ctx context.Context, userID uuid.UUID) (domain.SnackSummary, error) {
	var summary domain.SnackSummary
	err := r.db.QueryRowContext(ctx, `
SELECT
	COUNT(CASE WHEN status = 1 THEN 1 END),
	COUNT(CASE WHEN status = 0 THEN 1 END),
	COUNT(*)
FROM snack
WHERE userId = ?`, userID).Scan(&summary.TotalInDiet, &summary.TotalOutDiet, &summary.Total)
	if err != nil {
		return domain.SnackSummary{}, fmt.Errorf("summarize snacks: %w", err)
	}
	return summary, nil
}

func scanSnack(row interface {
	Scan(dest ...any) error
}, snack *domain.Snack) error {
	if err := row.Scan(
		&snack.ID,
		&snack.CreatedAt,
		&snack.UpdatedAt,
		&snack.UserID,
		&snack.Status,
		&snack.Name,
		&snack.Description,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return err
		}
		return fmt.Errorf("scan snack: %w", err)
	}
	return nil
}
