package repository_test

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/NeuralTrust/AuthGuard/pkg/domain/guard"
	"github.com/NeuralTrust/AuthGuard/pkg/infra/repository"
	"github.com/go-redis/redismock/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisLockoutStore_GetLockout_Active(t *testing.T) {
	redisMock, mock := redismock.NewClientMock()
	now := time.Unix(1740730536, 0)
	expiresAt := now.Add(10 * time.Minute)
	scope := guard.AddressScope("203.0.113.5", guard.CategoryLogin)

	mock.ExpectGet(repository.LockoutKey(scope)).SetVal(strconv.FormatInt(expiresAt.UnixMilli(), 10))

	store := repository.NewRedisLockoutStore(redisMock)
	got, active, err := store.GetLockout(context.Background(), scope, now)
	require.NoError(t, err)
	assert.True(t, active)
	assert.True(t, got.Equal(expiresAt))
}

func TestRedisLockoutStore_GetLockout_ExpiredMarkerIsAbsent(t *testing.T) {
	redisMock, mock := redismock.NewClientMock()
	now := time.Unix(1740730536, 0)
	scope := guard.AddressScope("203.0.113.5", guard.CategoryLogin)

	mock.ExpectGet(repository.LockoutKey(scope)).SetVal(strconv.FormatInt(now.UnixMilli(), 10))

	store := repository.NewRedisLockoutStore(redisMock)
	_, active, err := store.GetLockout(context.Background(), scope, now)
	require.NoError(t, err)
	assert.False(t, active)
}

func TestRedisLockoutStore_GetLockout_Missing(t *testing.T) {
	redisMock, mock := redismock.NewClientMock()
	scope := guard.IdentityScope("bob", guard.CategoryAdminLogin)
	mock.ExpectGet(repository.LockoutKey(scope)).RedisNil()

	store := repository.NewRedisLockoutStore(redisMock)
	_, active, err := store.GetLockout(context.Background(), scope, time.Now())
	require.NoError(t, err)
	assert.False(t, active)
}

func TestRedisLockoutStore_GetLockout_Error(t *testing.T) {
	redisMock, mock := redismock.NewClientMock()
	scope := guard.IdentityScope("bob", guard.CategoryAdminLogin)
	mock.ExpectGet(repository.LockoutKey(scope)).SetErr(errors.New("connection refused"))

	store := repository.NewRedisLockoutStore(redisMock)
	_, active, err := store.GetLockout(context.Background(), scope, time.Now())
	assert.False(t, active)
	assert.ErrorIs(t, err, guard.ErrStoreUnavailable)
}

func TestRedisLockoutStore_SetLockout_LatestWins(t *testing.T) {
	redisMock, mock := redismock.NewClientMock()
	now := time.Unix(1740730536, 0)
	scope := guard.AddressScope("203.0.113.5", guard.CategoryLogin)
	key := repository.LockoutKey(scope)
	first := now.Add(15 * time.Minute)
	second := now.Add(30 * time.Minute)

	mock.ExpectSet(key, strconv.FormatInt(first.UnixMilli(), 10), 15*time.Minute).SetVal("OK")
	mock.ExpectSet(key, strconv.FormatInt(second.UnixMilli(), 10), 30*time.Minute).SetVal("OK")

	store := repository.NewRedisLockoutStore(redisMock)
	require.NoError(t, store.SetLockout(context.Background(), scope, first, now))
	require.NoError(t, store.SetLockout(context.Background(), scope, second, now))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisLockoutStore_SetLockout_PastExpiryIsNoop(t *testing.T) {
	redisMock, mock := redismock.NewClientMock()
	now := time.Unix(1740730536, 0)
	scope := guard.AddressScope("203.0.113.5", guard.CategoryLogin)

	store := repository.NewRedisLockoutStore(redisMock)
	assert.NoError(t, store.SetLockout(context.Background(), scope, now.Add(-time.Second), now))
	assert.NoError(t, mock.ExpectationsWereMet())
}
