package drafts

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/draftkeeper/internal/common"
	"github.com/dmitrijs2005/draftkeeper/internal/server/models"
	"github.com/dmitrijs2005/draftkeeper/internal/server/repositories/ephemeral"
)

func testKey(user string) models.DraftKey {
	return models.DraftKey{UserID: user, FormSlug: "intake", ObjectID: "42"}
}

func testRecord(user string, version int64) *models.DraftRecord {
	return &models.DraftRecord{
		Key:           testKey(user),
		Payload:       []byte(`{"name":"X"}`),
		Step:          1,
		Version:       version,
		SchemaVersion: 1,
	}
}

func TestMemoryRepository_PutGet(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository(ephemeral.NewCache())

	require.NoError(t, repo.Put(ctx, testRecord("alice", 1), time.Minute))

	got, err := repo.Get(ctx, testKey("alice"))
	require.NoError(t, err)
	require.Equal(t, int64(1), got.Version)
	require.JSONEq(t, `{"name":"X"}`, string(got.Payload))
}

func TestMemoryRepository_GetAbsent(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository(ephemeral.NewCache())

	_, err := repo.Get(ctx, testKey("alice"))
	require.True(t, errors.Is(err, common.ErrNotFound))
}

func TestMemoryRepository_TTLExpiry(t *testing.T) {
	ctx := context.Background()
	now := time.Unix(1000, 0)
	cache := ephemeral.NewCache(ephemeral.WithClock(func() time.Time { return now }))
	repo := NewMemoryRepository(cache)

	require.NoError(t, repo.Put(ctx, testRecord("alice", 1), time.Minute))
	now = now.Add(2 * time.Minute)

	_, err := repo.Get(ctx, testKey("alice"))
	require.True(t, errors.Is(err, common.ErrNotFound))

	exists, err := repo.Exists(ctx, testKey("alice"))
	require.NoError(t, err)
	require.False(t, exists)
}

func TestMemoryRepository_PutReplacesWholeRecord(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository(ephemeral.NewCache())

	require.NoError(t, repo.Put(ctx, testRecord("alice", 1), time.Minute))

	next := testRecord("alice", 2)
	next.Payload = []byte(`{"name":"Y"}`)
	next.Step = 2
	require.NoError(t, repo.Put(ctx, next, time.Minute))

	got, err := repo.Get(ctx, testKey("alice"))
	require.NoError(t, err)
	require.Equal(t, int64(2), got.Version)
	require.Equal(t, int64(2), got.Step)
	require.JSONEq(t, `{"name":"Y"}`, string(got.Payload))
}

func TestMemoryRepository_DeleteIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository(ephemeral.NewCache())

	require.NoError(t, repo.Put(ctx, testRecord("alice", 1), time.Minute))
	require.NoError(t, repo.Delete(ctx, testKey("alice")))
	require.NoError(t, repo.Delete(ctx, testKey("alice")))

	_, err := repo.Get(ctx, testKey("alice"))
	require.True(t, errors.Is(err, common.ErrNotFound))
}

func TestMemoryRepository_UserIsolation(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository(ephemeral.NewCache())

	require.NoError(t, repo.Put(ctx, testRecord("alice", 1), time.Minute))
	require.NoError(t, repo.Put(ctx, testRecord("bob", 7), time.Minute))

	got, err := repo.Get(ctx, testKey("alice"))
	require.NoError(t, err)
	require.Equal(t, int64(1), got.Version)

	got, err = repo.Get(ctx, testKey("bob"))
	require.NoError(t, err)
	require.Equal(t, int64(7), got.Version)
}

func TestMemoryRepository_GetReturnsCopy(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository(ephemeral.NewCache())

	require.NoError(t, repo.Put(ctx, testRecord("alice", 1), time.Minute))

	got, err := repo.Get(ctx, testKey("alice"))
	require.NoError(t, err)
	got.Version = 99

	again, err := repo.Get(ctx, testKey("alice"))
	require.NoError(t, err)
	require.Equal(t, int64(1), again.Version)
}
