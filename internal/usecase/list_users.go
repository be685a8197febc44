package usecase

import (
	"context"

	"user-hub/internal/domain"
)

// defaultPageLimit bounds a page when the client does not pass a limit.
const defaultPageLimit = 50

// ListUsers returns a bounded page of users.
type ListUsers struct {
	users domain.UserRepository
}

// NewListUsers creates a new ListUsers usecase.
func NewListUsers(users domain.UserRepository) *ListUsers {
	return &ListUsers{users: users}
}

// Execute translates the client's 1-based page to a 0-based offset. Page 0
// and page 1 both mean the first page.
func (uc *ListUsers) Execute(ctx context.Context, page, limit int) ([]domain.User, error) {
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if page > 0 {
		page--
	}
	if page < 0 {
		page = 0
	}

	return uc.users.FindPage(ctx, page*limit, limit)
}
