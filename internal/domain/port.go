package domain

import (
	"context"

	"github.com/google/uuid"
)

// UserRepository persists user records.
type UserRepository interface {
	Save(ctx context.Context, user *User) (*User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindPage(ctx context.Context, offset, limit int) ([]User, error)
}

// TokenIssuer creates signed bearer tokens for a subject.
type TokenIssuer interface {
	Issue(subject string) (string, error)
}

// TokenVerifier checks bearer tokens and extracts the subject claim.
// Subject must only be called on tokens that passed Verify.
type TokenVerifier interface {
	Verify(token string) error
	Subject(token string) (string, error)
}

// PasswordHasher hashes passwords and compares them against stored hashes.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// AlbumFetcher retrieves the albums owned by a user from the external
// collaborator, forwarding the caller's Authorization header.
type AlbumFetcher interface {
	FetchAlbums(ctx context.Context, userID, authorization string) ([]Album, error)
}

// UserStream is the in-process broadcast of newly created users.
// Subscribe returns a channel of events published after the call and a
// cancel function that releases the subscription.
type UserStream interface {
	Publish(user User)
	Subscribe() (<-chan User, func())
}
