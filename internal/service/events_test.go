package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"dealer-orders/internal/models"
	"dealer-orders/internal/repository"
	"dealer-orders/internal/repository/cache"
	svc "dealer-orders/internal/service"
)

func TestReplayOrderEvents_PublishesSnapshots(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	first, err := f.s.CreateOrder(ctx, janeCheckout())
	require.NoError(t, err)
	second := janeCheckout()
	second.OrderID = "ORD-ZZZ999AAA"
	_, err = f.s.CreateOrder(ctx, second)
	require.NoError(t, err)
	f.events.events = nil

	n, err := f.s.ReplayOrderEvents(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, n)
	require.Len(t, f.events.events, 2)
	for _, ev := range f.events.events {
		require.Equal(t, models.EventOrderSnapshot, ev.Type)
		require.Equal(t, models.StatusPending, ev.Status)
	}
	require.Equal(t, first.OrderID, f.events.events[0].OrderID)
}

func TestReplayOrderEvents_StopsOnPublishError(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	_, err := f.s.CreateOrder(ctx, janeCheckout())
	require.NoError(t, err)

	f.events.events = nil
	f.events.err = errors.New("broker down")

	n, err := f.s.ReplayOrderEvents(ctx)
	require.Error(t, err)
	require.Equal(t, 0, n)
	require.Len(t, f.events.events, 1)
}

func TestReplayOrderEvents_NoPublisher(t *testing.T) {
	sessions := cache.NewSessionCache(cache.NewCache())
	s := svc.NewService(repository.NewRepository(newMemStore(), sessions), &notifierStub{})

	_, err := s.ReplayOrderEvents(context.Background())
	require.ErrorIs(t, err, svc.ErrNoPublisher)
}
