package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"user-hub/internal/domain"
)

// LoginResult holds the outcome of a successful login.
type LoginResult struct {
	Token  string
	UserID string
}

// Login resolves a stored identity from credentials and issues a bearer token.
type Login struct {
	users  domain.UserRepository
	hasher domain.PasswordHasher
	tokens domain.TokenIssuer
	logger *slog.Logger
}

// NewLogin creates a new Login usecase.
func NewLogin(users domain.UserRepository, hasher domain.PasswordHasher, tokens domain.TokenIssuer, logger *slog.Logger) *Login {
	return &Login{users: users, hasher: hasher, tokens: tokens, logger: logger}
}

// Execute verifies the credentials against the stored hash and, on success,
// issues a token whose subject is the user's id. An unknown email and a
// wrong password both map to domain.ErrAuthenticationFailed.
func (uc *Login) Execute(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := uc.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			uc.logger.WarnContext(ctx, "login attempt for unknown email", "email", email)
			return nil, domain.ErrAuthenticationFailed
		}
		return nil, err
	}

	if err := uc.hasher.Compare(user.PasswordHash, password); err != nil {
		uc.logger.WarnContext(ctx, "login password mismatch", "user_id", user.ID)
		return nil, domain.ErrAuthenticationFailed
	}

	token, err := uc.tokens.Issue(user.ID.String())
	if err != nil {
		uc.logger.ErrorContext(ctx, "failed to issue token", "user_id", user.ID, "error", err)
		return nil, fmt.Errorf("issue token: %w", err)
	}

	return &LoginResult{Token: token, UserID: user.ID.String()}, nil
}
