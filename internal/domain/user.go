package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is a diet tracker account. It is identified to the API only by its session id.
type User struct {
	ID        uuid.UUID     `json:"id"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
	SessionID uuid.NullUUID `json:"sessionId"`
	Username  string        `json:"username"`
}
