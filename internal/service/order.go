package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math"
	"math/big"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"dealer-orders/internal/metrics"
	"dealer-orders/internal/models"
	"dealer-orders/internal/repository"
)

const (
	orderIDPrefix   = "ORD-"
	orderIDLen      = 9
	orderIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	defaultCountry = "US"

	expectedProcessingAfter = 24 * time.Hour
	expectedShippedAfter    = 72 * time.Hour
)

func humanizeValidationErrors(errs validator.ValidationErrors) string {
	var b strings.Builder
	for _, fe := range errs {
		if fe.Param() != "" {
			fmt.Fprintf(&b, "%s: %s=%s; ", fe.Namespace(), fe.Tag(), fe.Param())
		} else {
			fmt.Fprintf(&b, "%s: %s; ", fe.Namespace(), fe.Tag())
		}
	}
	s := b.String()
	if len(s) > 2 {
		s = s[:len(s)-2]
	}
	return s
}

func validationError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return fmt.Errorf("%w: %s", ErrValidation, humanizeValidationErrors(verrs))
	}
	return fmt.Errorf("%w: %v", ErrValidation, err)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func normalizeOrderID(id string) string {
	return strings.ToUpper(strings.TrimSpace(id))
}

// NewOrderID returns "ORD-" followed by nine uppercase alphanumerics.
func NewOrderID() string {
	var b strings.Builder
	b.WriteString(orderIDPrefix)
	limit := big.NewInt(int64(len(orderIDAlphabet)))
	for i := 0; i < orderIDLen; i++ {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			panic(fmt.Sprintf("crypto/rand: %v", err))
		}
		b.WriteByte(orderIDAlphabet[n.Int64()])
	}
	return b.String()
}

func (s *Service) persistenceError(op string, err error) error {
	logrus.WithError(err).WithField("op", op).Error("order store failure")
	return pkgerrors.Wrapf(ErrPersistence, "%s: %v", op, err)
}

func (s *Service) orderEvent(typ string, o models.Order) models.OrderEvent {
	return models.OrderEvent{
		Type:    typ,
		ID:      o.ID,
		OrderID: o.OrderID,
		Status:  o.Status,
		Total:   o.Total,
		At:      s.now().UTC(),
	}
}

func (s *Service) publish(ctx context.Context, typ string, o models.Order) {
	if s.events == nil {
		return
	}
	if err := s.events.Publish(ctx, s.orderEvent(typ, o)); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{"event": typ, "orderId": o.OrderID}).Warn("order event not published")
	}
}

// CreateOrder validates a checkout, stores the order and mails the buyer and
// the sales desk. Mail failures are recorded on the order, never returned.
func (s *Service) CreateOrder(ctx context.Context, in models.Checkout) (models.Order, error) {
	in.Email = normalizeEmail(in.Email)
	in.OrderID = normalizeOrderID(in.OrderID)
	if err := s.v.Struct(in); err != nil {
		return models.Order{}, validationError(err)
	}
	if in.OrderID == "" {
		in.OrderID = NewOrderID()
	}
	if strings.TrimSpace(in.Country) == "" {
		in.Country = defaultCountry
	}

	cart := append(models.CartItems(nil), in.Cart...)
	total := cart.Total()
	if math.Round(in.Total*100) != math.Round(total*100) {
		logrus.WithFields(logrus.Fields{
			"orderId":     in.OrderID,
			"clientTotal": in.Total,
			"cartTotal":   total,
		}).Warn("client total does not match cart, using cart total")
	}

	now := s.now().UTC().Truncate(time.Millisecond)
	expProcessing := now.Add(expectedProcessingAfter)
	expShipped := now.Add(expectedShippedAfter)

	ord := models.Order{
		ID:            s.newID(),
		OrderID:       in.OrderID,
		FirstName:     strings.TrimSpace(in.FirstName),
		LastName:      strings.TrimSpace(in.LastName),
		Email:         in.Email,
		Phone:         strings.TrimSpace(in.Phone),
		Address:       strings.TrimSpace(in.Address),
		City:          strings.TrimSpace(in.City),
		State:         strings.TrimSpace(in.State),
		ZipCode:       strings.TrimSpace(in.ZipCode),
		Country:       strings.TrimSpace(in.Country),
		PaymentMethod: strings.TrimSpace(in.PaymentMethod),
		Cart:          cart,
		Total:         total,
		Status:        models.StatusPending,
		TrackingDetails: models.TrackingDetails{
			ExpectedProcessingDate: &expProcessing,
			ExpectedShippedDate:    &expShipped,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	ord.TrackingDetails.Destination = fmt.Sprintf("%s, %s", ord.City, ord.State)

	if err := s.orders.Create(ctx, ord); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return models.Order{}, fmt.Errorf("%w: %w", ErrPersistence, ErrDuplicateOrder)
		}
		return models.Order{}, s.persistenceError("create order "+ord.OrderID, err)
	}
	metrics.OrdersCreated.Inc()
	logrus.WithFields(logrus.Fields{"orderId": ord.OrderID, "id": ord.ID, "total": ord.Total}).Info("order created")

	s.publish(ctx, models.EventOrderCreated, ord)
	ord.Notifications = s.notifyPlaced(ctx, ord)
	return ord, nil
}

func (s *Service) notifyPlaced(ctx context.Context, ord models.Order) models.Notifications {
	var (
		n    models.Notifications
		errs []string
	)

	err := s.notifier.OrderConfirmation(ctx, ord)
	metrics.NotificationResult("confirmation", err)
	if err != nil {
		errs = append(errs, "confirmation: "+err.Error())
	} else {
		n.ConfirmationSent = true
	}

	err = s.notifier.AdminAlert(ctx, ord)
	metrics.NotificationResult("admin_alert", err)
	if err != nil {
		errs = append(errs, "admin alert: "+err.Error())
	} else {
		n.AdminAlertSent = true
	}

	n.LastError = strings.Join(errs, "; ")
	if n.LastError != "" {
		logrus.WithFields(logrus.Fields{"orderId": ord.OrderID, "error": n.LastError}).Warn("order placed with undelivered notifications")
	}
	if err := s.orders.SetNotifications(ctx, ord.ID, n); err != nil {
		logrus.WithError(err).WithField("orderId", ord.OrderID).Warn("notification status not saved")
	}
	return n
}

// TrackOrder serves the customer receipt and tracking pages. A wrong email
// and an unknown order id are indistinguishable to the caller.
func (s *Service) TrackOrder(ctx context.Context, orderID, email string) (models.TrackingView, error) {
	orderID = normalizeOrderID(orderID)
	email = normalizeEmail(email)
	if orderID == "" || email == "" {
		return models.TrackingView{}, fmt.Errorf("%w: order id and email are required", ErrValidation)
	}

	o, err := s.orders.FindByOrderIDAndEmail(ctx, orderID, email)
	if errors.Is(err, repository.ErrNotFound) {
		return models.TrackingView{}, ErrNotFound
	}
	if err != nil {
		return models.TrackingView{}, s.persistenceError("track order", err)
	}
	return BuildTrackingView(o), nil
}
