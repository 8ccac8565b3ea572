package memory

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/adipranaya/demo-dashboard-api/internal/domain/entity"
	"github.com/adipranaya/demo-dashboard-api/internal/domain/repository"
)

// Directory is the process-local user collection. It lives for the lifetime
// of the process and is created exactly once at startup. A single RWMutex
// serializes mutations; readers never observe a half-built record because
// records are fully constructed before insertion and never mutated after.
type Directory struct {
	mu    sync.RWMutex
	users []*entity.UserRecord
}

func NewDirectory() *Directory {
	return &Directory{}
}

var _ repository.UserDirectory = (*Directory)(nil)

// Create appends a new record and returns the stored value. Ids are random
// UUIDs (122 bits of entropy), so collisions within a process lifetime are
// negligible. An empty email defaults to {username}@example.com.
func (d *Directory) Create(username, email string) *entity.UserRecord {
	if email == "" {
		email = username + "@example.com"
	}
	u := &entity.UserRecord{
		ID:        uuid.NewString(),
		Username:  username,
		Email:     email,
		CreatedAt: time.Now().UTC(),
	}

	d.mu.Lock()
	d.users = append(d.users, u)
	d.mu.Unlock()
	return u
}

// List returns all records in insertion order.
func (d *Directory) List() []*entity.UserRecord {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]*entity.UserRecord, len(d.users))
	copy(out, d.users)
	return out
}

// Delete removes the record with the given id, preserving the order of the
// remaining records. It returns false when no record matches.
func (d *Directory) Delete(id string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i, u := range d.users {
		if u.ID == id {
			d.users = append(d.users[:i], d.users[i+1:]...)
			return true
		}
	}
	return false
}

// Count returns the live number of records.
func (d *Directory) Count() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.users)
}
