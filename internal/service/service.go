package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"dealer-orders/internal/models"
	"dealer-orders/internal/notify"
	"dealer-orders/internal/repository"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go

type Order interface {
	CreateOrder(ctx context.Context, in models.Checkout) (models.Order, error)
	TrackOrder(ctx context.Context, orderID, email string) (models.TrackingView, error)
}

type Admin interface {
	ListOrders(ctx context.Context) ([]models.Order, error)
	GetOrder(ctx context.Context, id string) (models.Order, error)
	UpdateOrder(ctx context.Context, id string, upd models.OrderUpdate) (models.Order, error)
	DeleteOrder(ctx context.Context, id string) error
	ReplyToOrder(ctx context.Context, id string, r Reply) error
}

type Auth interface {
	Login(ctx context.Context, password string) (models.AdminSession, error)
	Authorize(ctx context.Context, token string) error
	Logout(ctx context.Context, token string) error
}

type Notifier interface {
	OrderConfirmation(ctx context.Context, o models.Order) error
	AdminAlert(ctx context.Context, o models.Order) error
	Reply(ctx context.Context, o models.Order, subject, body string, att *notify.Attachment) error
}

type EventPublisher interface {
	Publish(ctx context.Context, ev models.OrderEvent) error
}

type Reply struct {
	Subject    string
	Message    string
	Attachment *notify.Attachment
}

type Service struct {
	orders   repository.OrderStore
	sessions repository.SessionStore
	notifier Notifier
	events   EventPublisher
	v        *validator.Validate

	adminPassword string
	sessionTTL    time.Duration

	now      func() time.Time
	newID    func() string
	newToken func() string
}

type Option func(*Service)

func WithEvents(p EventPublisher) Option    { return func(s *Service) { s.events = p } }
func WithClock(now func() time.Time) Option { return func(s *Service) { s.now = now } }

// WithAdminPassword sets the shared back-office password. A value starting
// with "$2" is treated as a bcrypt hash.
func WithAdminPassword(pw string) Option { return func(s *Service) { s.adminPassword = pw } }

func WithSessionTTL(ttl time.Duration) Option {
	return func(s *Service) {
		if ttl > 0 {
			s.sessionTTL = ttl
		}
	}
}

func NewService(repo *repository.Repository, notifier Notifier, opts ...Option) *Service {
	s := &Service{
		orders:     repo.OrderStore,
		sessions:   repo.SessionStore,
		notifier:   notifier,
		v:          validator.New(),
		sessionTTL: 24 * time.Hour,
		now:        time.Now,
		newID:      uuid.NewString,
		newToken:   uuid.NewString,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

var (
	_ Order = (*Service)(nil)
	_ Admin = (*Service)(nil)
	_ Auth  = (*Service)(nil)
)
