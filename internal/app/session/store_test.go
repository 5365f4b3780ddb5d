package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/unibrowser/internal/app/models"
	"github.com/yigit/unibrowser/internal/pkg/apperrors"
)

func setupTestRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return client, mr
}

func searchedSession() *Session {
	s := New("sess-1")
	_ = s.SwitchCategory(models.CategoryDepartments)
	_ = s.UpdateCriteria(models.DepartmentCriteria{Name: "sci", Budget: models.Range{Min: "1000"}})
	s.MarkSearched()
	return s
}

func storeContract(t *testing.T, store Store) {
	ctx := context.Background()

	_, err := store.Get(ctx, "missing")
	assert.ErrorIs(t, err, apperrors.ErrSessionNotFound)

	s := searchedSession()
	require.NoError(t, store.Save(ctx, s))

	got, err := store.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, s, got)

	// the store hands out copies
	got.Criteria = models.DepartmentCriteria{Name: "changed"}
	again, err := store.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, s.Criteria, again.Criteria)

	require.NoError(t, store.Delete(ctx, s.ID))
	_, err = store.Get(ctx, s.ID)
	assert.ErrorIs(t, err, apperrors.ErrSessionNotFound)
}

func TestMemoryStore(t *testing.T) {
	storeContract(t, NewMemoryStore(time.Hour))
}

func TestMemoryStore_Expiry(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, New("a")))
	now = now.Add(2 * time.Minute)

	_, err := store.Get(ctx, "a")
	assert.ErrorIs(t, err, apperrors.ErrSessionNotFound)

	require.NoError(t, store.Save(ctx, New("b")))
	now = now.Add(2 * time.Minute)
	require.NoError(t, store.Save(ctx, New("c")))
	assert.Equal(t, 1, store.Len(), "expired entries are swept on save")
}

func TestRedisStore(t *testing.T) {
	client, _ := setupTestRedis(t)
	storeContract(t, NewRedisStore(client, time.Hour))
}

func TestRedisStore_TTL(t *testing.T) {
	client, mr := setupTestRedis(t)
	store := NewRedisStore(client, 10*time.Minute)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, New("ttl")))
	assert.Equal(t, 10*time.Minute, mr.TTL(KeyPrefix+"ttl"))

	mr.FastForward(11 * time.Minute)
	_, err := store.Get(ctx, "ttl")
	assert.ErrorIs(t, err, apperrors.ErrSessionNotFound)
}

func TestRedisStore_CorruptPayload(t *testing.T) {
	client, mr := setupTestRedis(t)
	require.NoError(t, mr.Set(KeyPrefix+"bad", "{not json"))

	_, err := NewRedisStore(client, time.Hour).Get(context.Background(), "bad")
	assert.ErrorIs(t, err, apperrors.ErrSessionStore)
}

func TestRedisStore_Unavailable(t *testing.T) {
	client, mr := setupTestRedis(t)
	mr.Close()

	err := NewRedisStore(client, time.Hour).Save(context.Background(), New("x"))
	assert.ErrorIs(t, err, apperrors.ErrSessionStore)
}

func TestNewRedisClient(t *testing.T) {
	_, mr := setupTestRedis(t)

	client, err := NewRedisClient(context.Background(), mr.Addr(), "", 0)
	require.NoError(t, err)
	assert.NoError(t, NewRedisStore(client, time.Minute).Ping(context.Background()))
	assert.NoError(t, client.Close())
}
