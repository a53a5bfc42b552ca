package sqlite

import (
	"context"
	"database/sql"
	"io"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"diet-api/internal/domain"
	"diet-api/internal/repository"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	logger := logrus.New()
	logger.SetOutput(io.Discard)
	require.NoError(t, Migrate(context.Background(), db, logger))

	return db
}

func createUser(t *testing.T, repo repository.UserRepository, username string) *domain.User {
	t.Helper()
	user := &domain.User{
		ID:        uuid.New(),
		SessionID: uuid.NullUUID{UUID: uuid.New(), Valid: true},
		Username:  username,
	}
	require.NoError(t, repo.Create(context.Background(), user))
	return user
}

func TestMigrate_Idempotent(t *testing.T) {
	db := setupDB(t)

	logger := logrus.New()
	logger.SetOutput(io.Discard)
	require.NoError(t, Migrate(context.Background(), db, logger))

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name IN ('user', 'snack')`).Scan(&n))
	assert.Equal(t, 2, n)
}

func TestUserRepository_CreateAndLookup(t *testing.T) {
	db := setupDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	created := createUser(t, repo, "alice")

	byName, err := repo.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byName.ID)
	assert.Equal(t, created.SessionID, byName.SessionID)
	assert.False(t, byName.CreatedAt.IsZero())

	bySession, err := repo.GetBySessionID(ctx, created.SessionID.UUID)
	require.NoError(t, err)
	assert.Equal(t, "alice", bySession.Username)
}

func TestUserRepository_NotFound(t *testing.T) {
	db := setupDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	_, err := repo.GetByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = repo.GetBySessionID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestUserRepository_UsernameUnique(t *testing.T) {
	db := setupDB(t)
	repo := NewUserRepository(db)

	createUser(t, repo, "alice")

	err := repo.Create(context.Background(), &domain.User{
		ID:        uuid.New(),
		SessionID: uuid.NullUUID{UUID: uuid.New(), Valid: true},
		Username:  "alice",
	})
	require.Error(t, err)
	assert.NotErrorIs(t, err, repository.ErrNotFound)
}

func TestSnackRepository_CRUD(t *testing.T) {
	db := setupDB(t)
	users := NewUserRepository(db)
	repo := NewSnackRepository(db)
	ctx := context.Background()

	owner := createUser(t, users, "alice")
	createdAt := time.Date(2023, 6, 22, 1, 39, 53, 0, time.UTC)

	snack := &domain.Snack{
		ID:          uuid.New(),
		CreatedAt:   createdAt,
		UserID:      owner.ID,
		Status:      true,
		Name:        "apple",
		Description: "fruit",
	}
	require.NoError(t, repo.Create(ctx, snack))

	got, err := repo.Get(ctx, snack.ID, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, "apple", got.Name)
	assert.Equal(t, "fruit", got.Description)
	assert.True(t, got.Status)
	assert.Equal(t, owner.ID, got.UserID)
	assert.True(t, createdAt.Equal(got.CreatedAt), "caller createdAt kept, got %s", got.CreatedAt)

	affected, err := repo.Update(ctx, &domain.Snack{
		ID:          snack.ID,
		UserID:      owner.ID,
		Status:      false,
		Name:        "cake",
		Description: "dessert",
	})
	require.NoError(t, err)
	assert.EqualValues(t, 1, affected)

	got, err = repo.Get(ctx, snack.ID, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, "cake", got.Name)
	assert.False(t, got.Status)
	assert.True(t, createdAt.Equal(got.CreatedAt))

	affected, err = repo.Delete(ctx, snack.ID, owner.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, affected)

	_, err = repo.Get(ctx, snack.ID, owner.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestSnackRepository_ScopedToOwner(t *testing.T) {
	db := setupDB(t)
	users := NewUserRepository(db)
	repo := NewSnackRepository(db)
	ctx := context.Background()

	alice := createUser(t, users, "alice")
	bob := createUser(t, users, "bob")

	snack := &domain.Snack{ID: uuid.New(), UserID: alice.ID, Name: "apple", Description: "fruit"}
	require.NoError(t, repo.Create(ctx, snack))

	_, err := repo.Get(ctx, snack.ID, bob.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	affected, err := repo.Update(ctx, &domain.Snack{ID: snack.ID, UserID: bob.ID, Name: "x", Description: "y"})
	require.NoError(t, err)
	assert.Zero(t, affected)

	affected, err = repo.Delete(ctx, snack.ID, bob.ID)
	require.NoError(t, err)
	assert.Zero(t, affected)

	bobSnacks, err := repo.ListByUser(ctx, bob.ID)
	require.NoError(t, err)
	assert.Empty(t, bobSnacks)
	assert.NotNil(t, bobSnacks)

	aliceSnacks, err := repo.ListByUser(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, aliceSnacks, 1)
	assert.Equal(t, "apple", aliceSnacks[0].Name)
}

func TestSnackRepository_ForeignKey(t *testing.T) {
	db := setupDB(t)
	repo := NewSnackRepository(db)

	err := repo.Create(context.Background(), &domain.Snack{
		ID:          uuid.New(),
		UserID:      uuid.New(),
		Name:        "ghost",
		Description: "no owner",
	})
	assert.Error(t, err)
}

func TestSnackRepository_Summary(t *testing.T) {
	db := setupDB(t)
	users := NewUserRepository(db)
	repo := NewSnackRepository(db)
	ctx := context.Background()

	alice := createUser(t, users, "alice")
	bob := createUser(t, users, "bob")

	empty, err := repo.SummaryByUser(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.SnackSummary{}, empty)

	for _, status := range []bool{true, true, false, true, false} {
		require.NoError(t, repo.Create(ctx, &domain.Snack{
			ID: uuid.New(), UserID: alice.ID, Status: status, Name: "s", Description: "d",
		}))
	}
	require.NoError(t, repo.Create(ctx, &domain.Snack{
		ID: uuid.New(), UserID: bob.ID, Status: true, Name: "s", Description: "d",
	}))

	summary, err := repo.SummaryByUser(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.SnackSummary{TotalInDiet: 3, TotalOutDiet: 2, Total: 5}, summary)
	assert.Equal(t, summary.Total, summary.TotalInDiet+summary.TotalOutDiet)
}

func TestSnackRepository_OffsetCreatedAtReadsBack(t *testing.T) {
	db := setupDB(t)
	users := NewUserRepository(db)
	repo := NewSnackRepository(db)
	ctx := context.Background()

	owner := createUser(t, users, "alice")
	createdAt, err := time.Parse(time.RFC3339, "2024-01-01T10:00:00+03:00")
	require.NoError(t, err)

	snack := &domain.Snack{ID: uuid.New(), CreatedAt: createdAt, UserID: owner.ID, Name: "tea", Description: "green"}
	require.NoError(t, repo.Create(ctx, snack))

	list, err := repo.ListByUser(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.True(t, createdAt.Equal(list[0].CreatedAt), "got %s", list[0].CreatedAt)

	got, err := repo.Get(ctx, snack.ID, owner.ID)
	require.NoError(t, err)
	assert.True(t, createdAt.Equal(got.CreatedAt))
}
