package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"dealer-orders/internal/metrics"
	"dealer-orders/internal/models"
	"dealer-orders/internal/repository"
)

func (s *Service) ListOrders(ctx context.Context) ([]models.Order, error) {
	out, err := s.orders.List(ctx)
	if err != nil {
		return nil, s.persistenceError("list orders", err)
	}
	return out, nil
}

func (s *Service) GetOrder(ctx context.Context, id string) (models.Order, error) {
	o, err := s.orders.Get(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return models.Order{}, ErrNotFound
	}
	if err != nil {
		return models.Order{}, s.persistenceError("get order", err)
	}
	return o, nil
}

// UpdateOrder applies an admin patch. Any known status may follow any other
// and tracking dates are stored as given; the last write wins.
func (s *Service) UpdateOrder(ctx context.Context, id string, upd models.OrderUpdate) (models.Order, error) {
	if upd.Empty() {
		return models.Order{}, fmt.Errorf("%w: nothing to update, expected status or trackingDetails", ErrValidation)
	}
	if upd.Status != nil {
		st, ok := models.ParseStatus(string(*upd.Status))
		if !ok {
			return models.Order{}, fmt.Errorf("%w: unknown status %q", ErrValidation, *upd.Status)
		}
		upd.Status = &st
	}

	o, err := s.orders.Update(ctx, id, upd)
	if errors.Is(err, repository.ErrNotFound) {
		return models.Order{}, ErrNotFound
	}
	if err != nil {
		return models.Order{}, s.persistenceError("update order", err)
	}

	metrics.OrderStatusUpdates.WithLabelValues(string(o.Status)).Inc()
	logrus.WithFields(logrus.Fields{"orderId": o.OrderID, "status": o.Status}).Info("order updated")
	s.publish(ctx, models.EventOrderUpdated, o)
	return o, nil
}

func (s *Service) DeleteOrder(ctx context.Context, id string) error {
	o, err := s.GetOrder(ctx, id)
	if err != nil {
		return err
	}
	if err := s.orders.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return s.persistenceError("delete order", err)
	}
	logrus.WithField("orderId", o.OrderID).Info("order deleted")
	s.publish(ctx, models.EventOrderDeleted, o)
	return nil
}

// ReplyToOrder mails the buyer a message written in the back office.
func (s *Service) ReplyToOrder(ctx context.Context, id string, r Reply) error {
	if strings.TrimSpace(r.Message) == "" {
		return fmt.Errorf("%w: message is required", ErrValidation)
	}
	o, err := s.GetOrder(ctx, id)
	if err != nil {
		return err
	}

	err = s.notifier.Reply(ctx, o, strings.TrimSpace(r.Subject), r.Message, r.Attachment)
	metrics.NotificationResult("reply", err)
	if err != nil {
		return fmt.Errorf("%w: reply to %s: %v", ErrNotification, o.OrderID, err)
	}
	return nil
}
