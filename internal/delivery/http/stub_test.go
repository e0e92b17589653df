package http_test

import (
	"context"
	"fmt"

	"dealer-orders/internal/models"
	"dealer-orders/internal/service"
)

type svcStub struct {
	createOrder func(ctx context.Context, in models.Checkout) (models.Order, error)
	trackOrder  func(ctx context.Context, orderID, email string) (models.TrackingView, error)

	listOrders   func(ctx context.Context) ([]models.Order, error)
	getOrder     func(ctx context.Context, id string) (models.Order, error)
	updateOrder  func(ctx context.Context, id string, upd models.OrderUpdate) (models.Order, error)
	deleteOrder  func(ctx context.Context, id string) error
	replyToOrder func(ctx context.Context, id string, r service.Reply) error

	login     func(ctx context.Context, password string) (models.AdminSession, error)
	authorize func(ctx context.Context, token string) error
	logout    func(ctx context.Context, token string) error
}

var (
	_ service.Order = (*svcStub)(nil)
	_ service.Admin = (*svcStub)(nil)
	_ service.Auth  = (*svcStub)(nil)
)

func (s *svcStub) CreateOrder(ctx context.Context, in models.Checkout) (models.Order, error) {
	if s.createOrder != nil {
		return s.createOrder(ctx, in)
	}
	return models.Order{}, fmt.Errorf("not implemented")
}

func (s *svcStub) TrackOrder(ctx context.Context, orderID, email string) (models.TrackingView, error) {
	if s.trackOrder != nil {
		return s.trackOrder(ctx, orderID, email)
	}
	return models.TrackingView{}, service.ErrNotFound
}

func (s *svcStub) ListOrders(ctx context.Context) ([]models.Order, error) {
	if s.listOrders != nil {
		return s.listOrders(ctx)
	}
	return nil, nil
}

func (s *svcStub) GetOrder(ctx context.Context, id string) (models.Order, error) {
	if s.getOrder != nil {
		return s.getOrder(ctx, id)
	}
	return models.Order{}, service.ErrNotFound
}

func (s *svcStub) UpdateOrder(ctx context.Context, id string, upd models.OrderUpdate) (models.Order, error) {
	if s.updateOrder != nil {
		return s.updateOrder(ctx, id, upd)
	}
	return models.Order{}, service.ErrNotFound
}

func (s *svcStub) DeleteOrder(ctx context.Context, id string) error {
	if s.deleteOrder != nil {
		return s.deleteOrder(ctx, id)
	}
	return service.ErrNotFound
}

func (s *svcStub) ReplyToOrder(ctx context.Context, id string, r service.Reply) error {
	if s.replyToOrder != nil {
		return s.replyToOrder(ctx, id, r)
	}
	return nil
}

func (s *svcStub) Login(ctx context.Context, password string) (models.AdminSession, error) {
	if s.login != nil {
		return s.login(ctx, password)
	}
	return models.AdminSession{}, service.ErrUnauthorized
}

// Authorize accepts the token "valid" unless overridden.
func (s *svcStub) Authorize(ctx context.Context, token string) error {
	if s.authorize != nil {
		return s.authorize(ctx, token)
	}
	if token == "valid" {
		return nil
	}
	return service.ErrUnauthorized
}

func (s *svcStub) Logout(ctx context.Context, token string) error {
	if s.logout != nil {
		return s.logout(ctx, token)
	}
	return nil
}
