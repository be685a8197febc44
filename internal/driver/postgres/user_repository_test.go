package postgres

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"user-hub/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T) (*UserRepository, pgxmock.PgxPoolIface) {
	t.Helper()

	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewUserRepository(mock, logger), mock
}

func TestUserRepository_Save(t *testing.T) {
	repo, mock := newTestRepository(t)

	user := &domain.User{
		ID:           uuid.New(),
		FirstName:    "Ada",
		LastName:     "Lovelace",
		Email:        "ada@example.com",
		PasswordHash: "hash",
	}

	mock.ExpectExec(`INSERT INTO users`).
		WithArgs(user.ID, user.FirstName, user.LastName, user.Email, user.PasswordHash).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	saved, err := repo.Save(t.Context(), user)
	require.NoError(t, err)
	assert.Equal(t, user.ID, saved.ID)
	assert.Equal(t, user.Email, saved.Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Save_DuplicateEmail(t *testing.T) {
	repo, mock := newTestRepository(t)

	mock.ExpectExec(`INSERT INTO users`).
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: uniqueViolation, ConstraintName: "users_email_key"})

	_, err := repo.Save(t.Context(), &domain.User{ID: uuid.New(), Email: "taken@example.com"})
	assert.ErrorIs(t, err, domain.ErrDuplicateEmail)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Save_QueryError(t *testing.T) {
	repo, mock := newTestRepository(t)

	mock.ExpectExec(`INSERT INTO users`).
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(errors.New("connection reset"))

	_, err := repo.Save(t.Context(), &domain.User{ID: uuid.New()})
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrDuplicateEmail)
}

func TestUserRepository_FindByID(t *testing.T) {
	repo, mock := newTestRepository(t)

	id := uuid.New()
	rows := pgxmock.NewRows([]string{"id", "first_name", "last_name", "email", "password_hash"}).
		AddRow(id, "Ada", "Lovelace", "ada@example.com", "hash")

	mock.ExpectQuery(`SELECT id, first_name, last_name, email, password_hash\s+FROM users WHERE id`).
		WithArgs(id).
		WillReturnRows(rows)

	user, err := repo.FindByID(t.Context(), id)
	require.NoError(t, err)
	assert.Equal(t, id, user.ID)
	assert.Equal(t, "ada@example.com", user.Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByID_NotFound(t *testing.T) {
	repo, mock := newTestRepository(t)

	id := uuid.New()
	mock.ExpectQuery(`SELECT id, first_name, last_name, email, password_hash\s+FROM users WHERE id`).
		WithArgs(id).
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.FindByID(t.Context(), id)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserRepository_FindByEmail(t *testing.T) {
	repo, mock := newTestRepository(t)

	id := uuid.New()
	rows := pgxmock.NewRows([]string{"id", "first_name", "last_name", "email", "password_hash"}).
		AddRow(id, "Ada", "Lovelace", "ada@example.com", "hash")

	mock.ExpectQuery(`SELECT id, first_name, last_name, email, password_hash\s+FROM users WHERE email`).
		WithArgs("ada@example.com").
		WillReturnRows(rows)

	user, err := repo.FindByEmail(t.Context(), "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, id, user.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByEmail_NotFound(t *testing.T) {
	repo, mock := newTestRepository(t)

	mock.ExpectQuery(`SELECT id, first_name, last_name, email, password_hash\s+FROM users WHERE email`).
		WithArgs("nobody@example.com").
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.FindByEmail(t.Context(), "nobody@example.com")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserRepository_FindPage(t *testing.T) {
	repo, mock := newTestRepository(t)

	first := uuid.New()
	second := uuid.New()
	rows := pgxmock.NewRows([]string{"id", "first_name", "last_name", "email", "password_hash"}).
		AddRow(first, "Ada", "Lovelace", "ada@example.com", "hash1").
		AddRow(second, "Alan", "Turing", "alan@example.com", "hash2")

	mock.ExpectQuery(`SELECT id, first_name, last_name, email, password_hash\s+FROM users ORDER BY created_at`).
		WithArgs(2, 0).
		WillReturnRows(rows)

	users, err := repo.FindPage(t.Context(), 0, 2)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, first, users[0].ID)
	assert.Equal(t, second, users[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindPage_Empty(t *testing.T) {
	repo, mock := newTestRepository(t)

	mock.ExpectQuery(`SELECT id, first_name, last_name, email, password_hash\s+FROM users ORDER BY created_at`).
		WithArgs(50, 100).
		WillReturnRows(pgxmock.NewRows([]string{"id", "first_name", "last_name", "email", "password_hash"}))

	users, err := repo.FindPage(t.Context(), 100, 50)
	require.NoError(t, err)
	assert.Empty(t, users)
}
