package usecase

import (
	"log/slog"
	"testing"

	"user-hub/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUser_Execute(t *testing.T) {
	repo := newMockUserRepository()
	stream := &stubStream{}
	uc := NewCreateUser(repo, &stubHasher{}, stream, slog.Default())

	user, err := uc.Execute(t.Context(), CreateUserInput{
		FirstName: "Ann",
		LastName:  "Lee",
		Email:     "ann@x.com",
		Password:  "password1",
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.Equal(t, "Ann", user.FirstName)
	assert.Equal(t, "hashed:password1", user.PasswordHash, "password must be stored hashed")

	require.Len(t, repo.saved, 1)
	require.Len(t, stream.published, 1, "exactly one event per creation")
	assert.Equal(t, user.ID, stream.published[0].ID)
}

func TestCreateUser_Execute_SaveFailurePublishesNothing(t *testing.T) {
	repo := newMockUserRepository()
	repo.saveErr = domain.ErrDuplicateEmail
	stream := &stubStream{}
	uc := NewCreateUser(repo, &stubHasher{}, stream, slog.Default())

	_, err := uc.Execute(t.Context(), CreateUserInput{
		FirstName: "Ann",
		LastName:  "Lee",
		Email:     "ann@x.com",
		Password:  "password1",
	})

	assert.ErrorIs(t, err, domain.ErrDuplicateEmail)
	assert.Empty(t, stream.published, "no event for a failed persistence")
}
