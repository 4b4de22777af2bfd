package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) List(ctx context.Context, opts ListOptions) ([]*Material, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Material), args.Error(1)
}

func (m *MockRepository) GetByID(ctx context.Context, id string) (*Material, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Material), args.Error(1)
}

func (m *MockRepository) ListGroups(ctx context.Context) ([]*MaterialGroup, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*MaterialGroup), args.Error(1)
}

func TestService_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("GetByID", ctx, "m5").Return(&Material{ID: "m5", Name: "Office Chair"}, nil)

		m, err := svc.Get(ctx, "m5")
		assert.NoError(t, err)
		assert.Equal(t, "Office Chair", m.Name)
		repo.AssertExpectations(t)
	})

	t.Run("NotFound", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("GetByID", ctx, "m99").Return(nil, nil)

		m, err := svc.Get(ctx, "m99")
		assert.ErrorIs(t, err, ErrMaterialNotFound)
		assert.Nil(t, m)
	})

	t.Run("RepoError", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("GetByID", ctx, "m1").Return(nil, errors.New("db error"))

		m, err := svc.Get(ctx, "m1")
		assert.Error(t, err)
		assert.Nil(t, m)
	})
}
