package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"user-hub/internal/domain"

	"github.com/google/uuid"
)

// CreateUserInput holds the validated fields of a create-user request.
type CreateUserInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// CreateUser persists a new user and announces it on the user stream.
type CreateUser struct {
	users  domain.UserRepository
	hasher domain.PasswordHasher
	stream domain.UserStream
	logger *slog.Logger
}

// NewCreateUser creates a new CreateUser usecase.
func NewCreateUser(users domain.UserRepository, hasher domain.PasswordHasher, stream domain.UserStream, logger *slog.Logger) *CreateUser {
	return &CreateUser{users: users, hasher: hasher, stream: stream, logger: logger}
}

// Execute hashes the password, saves the user and publishes the created
// record. The event is published only after successful persistence.
func (uc *CreateUser) Execute(ctx context.Context, in CreateUserInput) (*domain.User, error) {
	hash, err := uc.hasher.Hash(in.Password)
	if err != nil {
		uc.logger.ErrorContext(ctx, "failed to hash password", "error", err)
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		ID:           uuid.New(),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		PasswordHash: hash,
	}

	saved, err := uc.users.Save(ctx, user)
	if err != nil {
		return nil, err
	}

	uc.stream.Publish(*saved)
	uc.logger.InfoContext(ctx, "user created", "user_id", saved.ID)

	return saved, nil
}
