package cache

import (
	"context"
	"fmt"

	"dealer-orders/internal/models"
	"dealer-orders/internal/repository"
)

// SessionCacheRepo keeps admin sessions in process memory. Sessions do not
// survive a restart and are not shared between replicas.
type SessionCacheRepo struct {
	cch KV
}

func NewSessionCache(cch KV) *SessionCacheRepo {
	return &SessionCacheRepo{cch: cch}
}

func (s *SessionCacheRepo) PutSession(_ context.Context, sess models.AdminSession) error {
	if sess.Token == "" {
		return fmt.Errorf("put session: empty token")
	}
	s.cch.PutUntil(sess.Token, sess, sess.ExpiresAt)
	return nil
}

func (s *SessionCacheRepo) GetSession(_ context.Context, token string) (models.AdminSession, error) {
	v, ok := s.cch.Get(token)
	if !ok {
		return models.AdminSession{}, repository.ErrNotFound
	}
	sess, ok := v.(models.AdminSession)
	if !ok {
		return models.AdminSession{}, fmt.Errorf("session %q: unexpected cache value %T", token, v)
	}
	return sess, nil
}

func (s *SessionCacheRepo) DeleteSession(_ context.Context, token string) error {
	s.cch.Delete(token)
	return nil
}
