package locker

import (
	"context"
	"medintake-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockRedisRepository struct {
	mock.Mock
}

func (m *MockRedisRepository) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

func (m *MockRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	return m.Called(ctx, key, value, exp).Error(0)
}

func (m *MockRedisRepository) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockRedisRepository) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	args := m.Called(ctx, key, value, exp)
	return args.Bool(0), args.Error(1)
}

func (m *MockRedisRepository) IncrementWithTTL(ctx context.Context, key string, ttl time.Duration) (int, error) {
	args := m.Called(ctx, key, ttl)
	return args.Int(0), args.Error(1)
}

func TestLockService(t *testing.T) {
	ctx := context.Background()
	const key = "upload:session:abc:lock"

	newService := func(repo *MockRedisRepository) *lockService {
		return &lockService{redisRepo: repo, Log: zap.NewNop()}
	}

	t.Run("TryLock Acquired", func(t *testing.T) {
		repo := new(MockRedisRepository)
		repo.On("TrySetNX", ctx, key, mock.AnythingOfType("string"), 30*time.Second).Return(true, nil)

		acquired, value, err := newService(repo).TryLock(ctx, key, 30*time.Second)

		require.NoError(t, err)
		assert.True(t, acquired)
		assert.NotEmpty(t, value)
	})

	t.Run("TryLock Held Elsewhere", func(t *testing.T) {
		repo := new(MockRedisRepository)
		repo.On("TrySetNX", ctx, key, mock.Anything, mock.Anything).Return(false, nil)

		acquired, value, err := newService(repo).TryLock(ctx, key, time.Second)

		require.NoError(t, err)
		assert.False(t, acquired)
		assert.Empty(t, value)
	})

	t.Run("Unlock Owned Lock", func(t *testing.T) {
		repo := new(MockRedisRepository)
		repo.On("Get", ctx, key).Return(`"owner-1"`, nil)
		repo.On("Delete", ctx, key).Return(nil)

		err := newService(repo).Unlock(ctx, key, "owner-1")

		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("Unlock Missing Lock Is Noop", func(t *testing.T) {
		repo := new(MockRedisRepository)
		repo.On("Get", ctx, key).Return("", nil)

		err := newService(repo).Unlock(ctx, key, "owner-1")

		require.NoError(t, err)
		repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("Unlock Foreign Lock", func(t *testing.T) {
		repo := new(MockRedisRepository)
		repo.On("Get", ctx, key).Return(`"owner-2"`, nil)

		err := newService(repo).Unlock(ctx, key, "owner-1")

		assert.Equal(t, 500, exceptions.StatusCodeOf(err))
		repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("Refresh Owned Lock", func(t *testing.T) {
		repo := new(MockRedisRepository)
		repo.On("Get", ctx, key).Return(`"owner-1"`, nil)
		repo.On("Set", ctx, key, "owner-1", time.Minute).Return(nil)

		err := newService(repo).Refresh(ctx, key, "owner-1", time.Minute)

		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("Refresh Expired Lock", func(t *testing.T) {
		repo := new(MockRedisRepository)
		repo.On("Get", ctx, key).Return("", nil)

		err := newService(repo).Refresh(ctx, key, "owner-1", time.Minute)

		assert.Error(t, err)
	})
}
