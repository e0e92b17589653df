package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"dealer-orders/internal/models"
	"dealer-orders/internal/repository"
)

func passwordMatches(configured, given string) bool {
	if strings.HasPrefix(configured, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(configured), []byte(given)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(configured), []byte(given)) == 1
}

func (s *Service) Login(ctx context.Context, password string) (models.AdminSession, error) {
	if s.adminPassword == "" || password == "" || !passwordMatches(s.adminPassword, password) {
		logrus.Warn("admin login rejected")
		return models.AdminSession{}, ErrUnauthorized
	}

	now := s.now().UTC()
	sess := models.AdminSession{
		Token:     s.newToken(),
		CreatedAt: now,
		ExpiresAt: now.Add(s.sessionTTL),
	}
	if err := s.sessions.PutSession(ctx, sess); err != nil {
		return models.AdminSession{}, s.persistenceError("store session", err)
	}
	return sess, nil
}

func (s *Service) Authorize(ctx context.Context, token string) error {
	if token == "" {
		return ErrUnauthorized
	}
	sess, err := s.sessions.GetSession(ctx, token)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrUnauthorized
	}
	if err != nil {
		return s.persistenceError("load session", err)
	}
	if !s.now().Before(sess.ExpiresAt) {
		_ = s.sessions.DeleteSession(ctx, token)
		return ErrUnauthorized
	}
	return nil
}

func (s *Service) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := s.sessions.DeleteSession(ctx, token); err != nil {
		return s.persistenceError("delete session", err)
	}
	return nil
}
