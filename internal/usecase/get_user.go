package usecase

import (
	"context"
	"log/slog"

	"user-hub/internal/domain"

	"github.com/google/uuid"
)

// GetUser reads a single user, optionally enriched with the user's albums.
type GetUser struct {
	users  domain.UserRepository
	albums domain.AlbumFetcher
	logger *slog.Logger
}

// NewGetUser creates a new GetUser usecase.
func NewGetUser(users domain.UserRepository, albums domain.AlbumFetcher, logger *slog.Logger) *GetUser {
	return &GetUser{users: users, albums: albums, logger: logger}
}

// Execute fetches the user and, when includeAlbums is set, decorates it with
// albums from the external collaborator, forwarding the caller's
// Authorization header. Any enrichment failure is logged and swallowed: the
// read degrades to the unenriched user rather than failing.
func (uc *GetUser) Execute(ctx context.Context, id uuid.UUID, includeAlbums bool, authorization string) (*domain.User, error) {
	user, err := uc.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !includeAlbums {
		return user, nil
	}

	albums, err := uc.albums.FetchAlbums(ctx, user.ID.String(), authorization)
	if err != nil {
		uc.logger.ErrorContext(ctx, "failed to fetch albums, returning user without them",
			"user_id", user.ID,
			"error", err)
		return user, nil
	}

	user.Albums = albums
	return user, nil
}
