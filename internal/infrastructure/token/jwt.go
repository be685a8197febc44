package token

import (
	"log/slog"
	"time"

	"user-hub/internal/domain"

	"github.com/golang-jwt/jwt/v5"
)

// minSecretLen is the minimum signing key length for HMAC-SHA256.
const minSecretLen = 32

// Codec issues and verifies HS256-signed bearer tokens.
// Implements domain.TokenIssuer and domain.TokenVerifier.
type Codec struct {
	secret []byte
	ttl    time.Duration
	logger *slog.Logger
}

// NewCodec creates a token codec. The secret is mandatory and must be at
// least 32 bytes; a missing or weak secret is a startup error, never
// silently defaulted.
func NewCodec(secret string, ttl time.Duration, logger *slog.Logger) (*Codec, error) {
	if secret == "" {
		return nil, domain.ErrTokenSecretMissing
	}
	if len(secret) < minSecretLen {
		return nil, domain.ErrTokenSecretWeak
	}
	return &Codec{secret: []byte(secret), ttl: ttl, logger: logger}, nil
}

// Issue generates a signed token for the subject, valid for the configured TTL.
func (c *Codec) Issue(subject string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(c.secret)
}

// Verify checks signature and expiration. Every rejection maps to
// domain.ErrInvalidToken so callers cannot distinguish a bad signature from
// an expired or malformed token; the cause only reaches the logs.
func (c *Codec) Verify(raw string) error {
	_, err := jwt.ParseWithClaims(raw, &jwt.RegisteredClaims{}, c.keyFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		c.logger.Debug("token rejected", "error", err)
		return domain.ErrInvalidToken
	}
	return nil
}

// Subject extracts the subject claim without re-verifying the signature.
// Callers must have accepted the token through Verify first.
func (c *Codec) Subject(raw string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return "", domain.ErrInvalidToken
	}
	return claims.Subject, nil
}

func (c *Codec) keyFunc(*jwt.Token) (any, error) {
	return c.secret, nil
}
