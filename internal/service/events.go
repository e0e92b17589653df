package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"dealer-orders/internal/models"
)

var ErrNoPublisher = errors.New("event publishing is not configured")

// ReplayOrderEvents publishes a snapshot event for every stored order so a
// new consumer of the topic can rebuild its view. It stops on the first
// publish error and reports how many events went out.
func (s *Service) ReplayOrderEvents(ctx context.Context) (int, error) {
	if s.events == nil {
		return 0, ErrNoPublisher
	}
	orders, err := s.orders.List(ctx)
	if err != nil {
		return 0, s.persistenceError("list", err)
	}

	sent := 0
	for _, o := range orders {
		if err := ctx.Err(); err != nil {
			return sent, err
		}
		if err := s.events.Publish(ctx, s.orderEvent(models.EventOrderSnapshot, o)); err != nil {
			return sent, fmt.Errorf("publish %s: %w", o.OrderID, err)
		}
		sent++
	}
	logrus.WithField("orders", sent).Info("order snapshots published")
	return sent, nil
}
