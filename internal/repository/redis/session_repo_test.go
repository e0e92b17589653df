package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"dealer-orders/internal/models"
	"dealer-orders/internal/repository"
	redisrepo "dealer-orders/internal/repository/redis"
)

func newRepo(t *testing.T) (*redisrepo.SessionRedisRepo, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return redisrepo.NewSessionRedis(rdb), mr
}

func TestSessionRedis_PutGetDelete(t *testing.T) {
	repo, mr := newRepo(t)
	ctx := context.Background()

	sess := models.AdminSession{
		Token:     "tok-1",
		CreatedAt: time.Now().UTC().Truncate(time.Second),
		ExpiresAt: time.Now().UTC().Add(time.Hour).Truncate(time.Second),
	}
	require.NoError(t, repo.PutSession(ctx, sess))
	require.True(t, mr.Exists("admin-session:tok-1"))

	got, err := repo.GetSession(ctx, "tok-1")
	require.NoError(t, err)
	require.True(t, sess.ExpiresAt.Equal(got.ExpiresAt))
	require.Equal(t, sess.Token, got.Token)

	require.NoError(t, repo.DeleteSession(ctx, "tok-1"))
	_, err = repo.GetSession(ctx, "tok-1")
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestSessionRedis_ExpiresWithTTL(t *testing.T) {
	repo, mr := newRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.PutSession(ctx, models.AdminSession{
		Token:     "tok-2",
		ExpiresAt: time.Now().Add(time.Minute),
	}))
	mr.FastForward(2 * time.Minute)

	_, err := repo.GetSession(ctx, "tok-2")
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestSessionRedis_RejectsExpiredAndEmpty(t *testing.T) {
	repo, _ := newRepo(t)
	ctx := context.Background()

	require.Error(t, repo.PutSession(ctx, models.AdminSession{ExpiresAt: time.Now().Add(time.Hour)}))
	require.Error(t, repo.PutSession(ctx, models.AdminSession{Token: "old", ExpiresAt: time.Now().Add(-time.Hour)}))
}

func TestConnect_BadURL(t *testing.T) {
	_, err := redisrepo.Connect(context.Background(), "://bad")
	require.Error(t, err)
}
