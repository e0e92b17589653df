package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OrdersCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "dealer",
		Subsystem: "orders",
		Name:      "created_total",
		Help:      "Orders persisted by checkout.",
	})

	OrderStatusUpdates = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "dealer",
		Subsystem: "orders",
		Name:      "status_updates_total",
		Help:      "Admin order updates by resulting status.",
	}, []string{"status"})

	Notifications = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "dealer",
		Subsystem: "notifications",
		Name:      "sent_total",
		Help:      "Transactional mails by kind and outcome.",
	}, []string{"kind", "outcome"})
)

func NotificationResult(kind string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "failed"
	}
	Notifications.WithLabelValues(kind, outcome).Inc()
}
