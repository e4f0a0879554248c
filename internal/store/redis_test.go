package store

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dataiq/storefront/internal/config"
)

type testState struct {
	Role string
	Days int
}

func setupTestStore(t *testing.T) *Store {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	t.Cleanup(func() { mr.Close() })

	cfg := config.RedisConnection{
		AddressRedis: mr.Addr(),
		Password:     "",
		DB:           0,
		User:         "",
	}

	store, err := InitServer(context.Background(), cfg)
	require.NoError(t, err)
	return store
}

func TestSetAndGet(t *testing.T) {
	store := setupTestStore(t)

	expected := testState{Role: "trial", Days: 7}
	err := store.Set(context.Background(), "visitor-1", KeySession, expected)
	require.NoError(t, err)

	var actual testState
	found, err := store.Get(context.Background(), "visitor-1", KeySession, &actual)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, expected, actual)
}

func TestGetNotFound(t *testing.T) {
	store := setupTestStore(t)

	var out testState
	found, err := store.Get(context.Background(), "visitor-1", KeyCart, &out)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestEntriesAreIsolatedPerVisitor(t *testing.T) {
	store := setupTestStore(t)

	require.NoError(t, store.Set(context.Background(), "visitor-1", KeyPrefs, testState{Role: "a"}))

	var out testState
	found, err := store.Get(context.Background(), "visitor-2", KeyPrefs, &out)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestInvalidate(t *testing.T) {
	store := setupTestStore(t)

	require.NoError(t, store.Set(context.Background(), "visitor-1", KeySession, testState{Role: "paid"}))
	require.NoError(t, store.Invalidate(context.Background(), "visitor-1", KeySession))

	var out testState
	found, err := store.Get(context.Background(), "visitor-1", KeySession, &out)
	require.NoError(t, err)
	assert.False(t, found)
}

// Поврежденная запись ведет себя как отсутствующая: вызывающая сторона
// переинициализирует состояние значениями по умолчанию.
func TestGetCorruptedEntry(t *testing.T) {
	store := setupTestStore(t)

	err := store.Db.Set(context.Background(), stateKey("visitor-1", KeySession), []byte("not-json"), 0).Err()
	require.NoError(t, err)

	var out testState
	found, err := store.Get(context.Background(), "visitor-1", KeySession, &out)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestInitServerInvalidAddr(t *testing.T) {
	cfg := config.RedisConnection{
		AddressRedis: "127.0.0.1:9999",
	}

	store, err := InitServer(context.Background(), cfg)
	assert.Nil(t, store)
	assert.Error(t, err)
}
