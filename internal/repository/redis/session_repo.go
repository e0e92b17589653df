package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"dealer-orders/internal/models"
	"dealer-orders/internal/repository"
)

const keyPrefix = "admin-session:"

// SessionRedisRepo shares admin sessions between replicas.
type SessionRedisRepo struct {
	rdb *goredis.Client
	now func() time.Time
}

func Connect(ctx context.Context, url string) (*goredis.Client, error) {
	opt, err := goredis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}
	rdb := goredis.NewClient(opt)
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	return rdb, nil
}

func NewSessionRedis(rdb *goredis.Client) *SessionRedisRepo {
	return &SessionRedisRepo{rdb: rdb, now: time.Now}
}

func (r *SessionRedisRepo) PutSession(ctx context.Context, sess models.AdminSession) error {
	if sess.Token == "" {
		return fmt.Errorf("put session: empty token")
	}
	ttl := sess.ExpiresAt.Sub(r.now())
	if ttl <= 0 {
		return fmt.Errorf("put session: already expired")
	}
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	if err := r.rdb.Set(ctx, keyPrefix+sess.Token, data, ttl).Err(); err != nil {
		return fmt.Errorf("redis set session: %w", err)
	}
	return nil
}

func (r *SessionRedisRepo) GetSession(ctx context.Context, token string) (models.AdminSession, error) {
	data, err := r.rdb.Get(ctx, keyPrefix+token).Bytes()
	if errors.Is(err, goredis.Nil) {
		return models.AdminSession{}, repository.ErrNotFound
	}
	if err != nil {
		return models.AdminSession{}, fmt.Errorf("redis get session: %w", err)
	}

	var sess models.AdminSession
	if err := json.Unmarshal(data, &sess); err != nil {
		return models.AdminSession{}, fmt.Errorf("unmarshal session: %w", err)
	}
	return sess, nil
}

func (r *SessionRedisRepo) DeleteSession(ctx context.Context, token string) error {
	if err := r.rdb.Del(ctx, keyPrefix+token).Err(); err != nil {
		return fmt.Errorf("redis delete session: %w", err)
	}
	return nil
}
