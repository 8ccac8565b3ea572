package repository

import "github.com/adipranaya/demo-dashboard-api/internal/domain/entity"

// UserDirectory defines the interface for the in-memory user collection.
// Delete reports whether a record was removed; a missing id is a normal
// outcome, not an error.
type UserDirectory interface {
	Create(username, email string) *entity.UserRecord
	List() []*entity.UserRecord
	Delete(id string) bool
	Count() int
}
