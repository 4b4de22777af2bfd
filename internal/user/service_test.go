package user

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetByEmail(ctx context.Context, email string) (*User, string, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*User), args.String(1), args.Error(2)
}

func (m *MockRepository) GetByID(ctx context.Context, id string) (*User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockRepository) GetCompany(ctx context.Context, id string) (*Company, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Company), args.Error(1)
}

func TestService_Login(t *testing.T) {
	ctx := context.Background()
	t.Setenv("JWT_SECRET", "test-secret")

	hash, err := HashPassword("password123")
	require.NoError(t, err)

	admin := &User{
		ID:        "1",
		FirstName: "Admin",
		LastName:  "User",
		Email:     "admin@example.com",
		Role:      RoleAdmin,
		CompanyID: "1",
	}

	t.Run("Success", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("GetByEmail", ctx, "admin@example.com").Return(admin, hash, nil)

		u, token, err := svc.Login(ctx, "admin@example.com", "password123")
		assert.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, "1", u.ID)

		claims, err := ParseJWT(token)
		require.NoError(t, err)
		assert.Equal(t, "1", claims.UserID)
		assert.Equal(t, "admin", claims.Role)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("GetByEmail", ctx, "admin@example.com").Return(admin, hash, nil)

		_, _, err := svc.Login(ctx, "admin@example.com", "nope")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("UnknownEmail", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("GetByEmail", ctx, "ghost@example.com").Return(nil, "", nil)

		_, _, err := svc.Login(ctx, "ghost@example.com", "password123")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("RepoError", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("GetByEmail", ctx, "admin@example.com").Return(nil, "", errors.New("db error"))

		_, _, err := svc.Login(ctx, "admin@example.com", "password123")
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestService_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("NotFound", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("GetByID", ctx, "99").Return(nil, nil)

		u, err := svc.Get(ctx, "99")
		assert.ErrorIs(t, err, ErrUserNotFound)
		assert.Nil(t, u)
	})
}

func TestContextHelpers(t *testing.T) {
	ctx := context.Background()

	assert.False(t, IsAuthenticated(ctx))
	assert.False(t, IsAdmin(ctx))

	ctx = WithUser(ctx, &User{ID: "2", Role: RoleUser})
	u, ok := FromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, "2", u.ID)
	assert.True(t, IsAuthenticated(ctx))
	assert.False(t, IsAdmin(ctx))

	ctx = WithUser(ctx, &User{ID: "1", Role: RoleAdmin})
	assert.True(t, IsAdmin(ctx))
}

func TestJWTRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	u := &User{ID: "3", Email: "john@example.com", Role: RoleUser, CompanyID: "1"}
	token, err := GenerateJWT(u)
	require.NoError(t, err)

	claims, err := ParseJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "3", claims.UserID)
	assert.Equal(t, "john@example.com", claims.Email)
	assert.Equal(t, "1", claims.CompanyID)
}

func TestJWT_MissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := GenerateJWT(&User{ID: "1"})
	assert.Error(t, err)
}
