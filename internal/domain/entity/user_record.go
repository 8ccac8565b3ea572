package entity

import (
	"time"
)

// UserRecord is an entry in the in-memory user directory.
// Records are immutable after creation; only deletion removes them.
type UserRecord struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}
