package usecase

import (
	"context"
	"errors"

	"user-hub/internal/domain"

	"github.com/google/uuid"
)

// mockUserRepository implements domain.UserRepository for testing.
type mockUserRepository struct {
	saved      []*domain.User
	saveErr    error
	byID       map[uuid.UUID]*domain.User
	byEmail    map[string]*domain.User
	findErr    error
	page       []domain.User
	gotOffset  int
	gotLimit   int
}

func newMockUserRepository() *mockUserRepository {
	return &mockUserRepository{
		byID:    make(map[uuid.UUID]*domain.User),
		byEmail: make(map[string]*domain.User),
	}
}

func (m *mockUserRepository) add(user *domain.User) {
	m.byID[user.ID] = user
	m.byEmail[user.Email] = user
}

func (m *mockUserRepository) Save(_ context.Context, user *domain.User) (*domain.User, error) {
	if m.saveErr != nil {
		return nil, m.saveErr
	}
	m.saved = append(m.saved, user)
	m.add(user)
	return user, nil
}

func (m *mockUserRepository) FindByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	user, ok := m.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (m *mockUserRepository) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	user, ok := m.byEmail[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (m *mockUserRepository) FindPage(_ context.Context, offset, limit int) ([]domain.User, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	m.gotOffset = offset
	m.gotLimit = limit
	return m.page, nil
}

// stubHasher implements domain.PasswordHasher with transparent hashing.
type stubHasher struct {
	hashErr error
}

func (s *stubHasher) Hash(password string) (string, error) {
	if s.hashErr != nil {
		return "", s.hashErr
	}
	return "hashed:" + password, nil
}

func (s *stubHasher) Compare(hash, password string) error {
	if hash != "hashed:"+password {
		return errors.New("mismatch")
	}
	return nil
}

// stubStream implements domain.UserStream, recording published events.
type stubStream struct {
	published []domain.User
}

func (s *stubStream) Publish(user domain.User) {
	s.published = append(s.published, user)
}

func (s *stubStream) Subscribe() (<-chan domain.User, func()) {
	ch := make(chan domain.User)
	close(ch)
	return ch, func() {}
}

// stubAlbumFetcher implements domain.AlbumFetcher for testing.
type stubAlbumFetcher struct {
	albums  []domain.Album
	err     error
	gotID   string
	gotAuth string
	called  bool
}

func (s *stubAlbumFetcher) FetchAlbums(_ context.Context, userID, authorization string) ([]domain.Album, error) {
	s.called = true
	s.gotID = userID
	s.gotAuth = authorization
	if s.err != nil {
		return nil, s.err
	}
	return s.albums, nil
}

// stubIssuer implements domain.TokenIssuer for testing.
type stubIssuer struct {
	err error
}

func (s *stubIssuer) Issue(subject string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return "token-for-" + subject, nil
}
