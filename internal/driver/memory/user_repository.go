package memory

import (
	"context"
	"sync"

	"user-hub/internal/domain"

	"github.com/google/uuid"
)

// UserRepository is a thread-safe in-memory user store used by tests and
// local runs without a database.
// Implements domain.UserRepository.
type UserRepository struct {
	mu    sync.RWMutex
	users map[uuid.UUID]domain.User
	order []uuid.UUID
}

// NewUserRepository creates an empty in-memory repository.
func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[uuid.UUID]domain.User)}
}

// Save stores the user, preserving insertion order for pagination.
func (r *UserRepository) Save(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Email == user.Email {
			return nil, domain.ErrDuplicateEmail
		}
	}

	r.users[user.ID] = *user
	r.order = append(r.order, user.ID)

	saved := *user
	return &saved, nil
}

// FindByID returns the user with the given id.
func (r *UserRepository) FindByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &user, nil
}

// FindByEmail returns the user registered under the given email.
func (r *UserRepository) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.Email == email {
			found := user
			return &found, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

// FindPage returns users in insertion order, bounded by offset and limit.
func (r *UserRepository) FindPage(_ context.Context, offset, limit int) ([]domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if offset >= len(r.order) {
		return []domain.User{}, nil
	}

	end := min(offset+limit, len(r.order))
	page := make([]domain.User, 0, end-offset)
	for _, id := range r.order[offset:end] {
		page = append(page, r.users[id])
	}
	return page, nil
}
