package domain

import "errors"

// Authentication errors.
var (
	ErrInvalidToken         = errors.New("invalid token")
	ErrAuthenticationFailed = errors.New("authentication failed")
)

// Token codec configuration errors.
var (
	ErrTokenSecretMissing = errors.New("token secret not configured")
	ErrTokenSecretWeak    = errors.New("token secret too weak")
)

// User errors.
var (
	ErrUserNotFound   = errors.New("user not found")
	ErrDuplicateEmail = errors.New("email already registered")
	ErrForbidden      = errors.New("access denied")
)

// Albums collaborator errors. Both are recovered at the read boundary and
// never reach a client.
var (
	ErrAlbumsNotFound          = errors.New("albums not found for user")
	ErrAlbumServiceUnavailable = errors.New("album service unavailable")
)
