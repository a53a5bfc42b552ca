package domain

import (
	"time"

	"github.com/google/uuid"
)

// Snack is a single food record owned by one user.
// Status true means the snack is within the diet.
type Snack struct {
	ID          uuid.UUID `json:"id"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	UserID      uuid.UUID `json:"userId"`
	Status      bool      `json:"status"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
}

// SnackSummary aggregates a user's snacks by diet status.
type SnackSummary struct {
	TotalInDiet  int64 `json:"totalindiet"`
	TotalOutDiet int64 `json:"totaloutdiet"`
	Total        int64 `json:"total"`
}
