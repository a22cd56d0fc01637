package users

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockUserRepository is a user repository for testing
type MockUserRepository struct {
	mu    sync.Mutex
	Users []*User
	// FailUpdate makes UpdateContact fail, for testing partial writes
	FailUpdate error
}

// Add adds a user
func (r *MockUserRepository) Add(_ context.Context, user *User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}

	copied := *user
	r.Users = append(r.Users, &copied)
	return nil
}

// FindByID returns a copy of the stored user
func (r *MockUserRepository) FindByID(_ context.Context, id string) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.Users {
		if user.ID.Hex() == id {
			copied := *user
			copied.Password = ""
			return &copied, nil
		}
	}

	return nil, ErrUserNotFound
}

// UpdateContact writes phone and address of a stored user
func (r *MockUserRepository) UpdateContact(_ context.Context, user *User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.FailUpdate != nil {
		return r.FailUpdate
	}

	for _, u := range r.Users {
		if u.ID == user.ID {
			u.Phone = user.Phone
			u.Address = user.Address
			u.UpdatedAt = time.Now()
			return nil
		}
	}

	return ErrUserNotFound
}

// ErrMockUpdate is a ready made FailUpdate value
var ErrMockUpdate = errors.New("mock update failure")
