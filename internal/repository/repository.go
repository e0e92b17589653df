package repository

import (
	"context"
	"errors"

	"dealer-orders/internal/models"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate key")
)

type OrderStore interface {
	Create(ctx context.Context, ord models.Order) error
	Get(ctx context.Context, id string) (models.Order, error)
	FindByOrderIDAndEmail(ctx context.Context, orderID, email string) (models.Order, error)
	List(ctx context.Context) ([]models.Order, error)
	Update(ctx context.Context, id string, upd models.OrderUpdate) (models.Order, error)
	SetNotifications(ctx context.Context, id string, n models.Notifications) error
	Delete(ctx context.Context, id string) error
}

type SessionStore interface {
	PutSession(ctx context.Context, s models.AdminSession) error
	GetSession(ctx context.Context, token string) (models.AdminSession, error)
	DeleteSession(ctx context.Context, token string) error
}

type Repository struct {
	OrderStore
	SessionStore
}

func NewRepository(orders OrderStore, sessions SessionStore) *Repository {
	return &Repository{
		OrderStore:   orders,
		SessionStore: sessions,
	}
}
