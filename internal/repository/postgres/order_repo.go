package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jinzhu/gorm"
	"github.com/lib/pq"

	"dealer-orders/internal/models"
	"dealer-orders/internal/repository"
)

const uniqueViolation = "23505"

type OrderPostgresRepo struct {
	db  *gorm.DB
	now func() time.Time
}

func NewOrderPostgres(db *gorm.DB) *OrderPostgresRepo {
	return &OrderPostgresRepo{db: db, now: time.Now}
}

func (r *OrderPostgresRepo) Create(_ context.Context, o models.Order) error {
	if o.Cart == nil {
		o.Cart = models.CartItems{}
	}
	if err := r.db.Create(&o).Error; err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return fmt.Errorf("order %s: %w", o.OrderID, repository.ErrDuplicate)
		}
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

func (r *OrderPostgresRepo) Get(_ context.Context, id string) (models.Order, error) {
	return r.first(r.db.Where("id = ?", id))
}

func (r *OrderPostgresRepo) FindByOrderIDAndEmail(_ context.Context, orderID, email string) (models.Order, error) {
	return r.first(r.db.Where("order_id = ? AND email = ?", orderID, email))
}

func (r *OrderPostgresRepo) first(q *gorm.DB) (models.Order, error) {
	var o models.Order
	err := q.First(&o).Error
	if gorm.IsRecordNotFoundError(err) {
		return models.Order{}, repository.ErrNotFound
	}
	if err != nil {
		return models.Order{}, fmt.Errorf("find order: %w", err)
	}
	return o, nil
}

func (r *OrderPostgresRepo) List(_ context.Context) ([]models.Order, error) {
	out := []models.Order{}
	if err := r.db.Order("created_at desc").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return out, nil
}

func (r *OrderPostgresRepo) Update(_ context.Context, id string, upd models.OrderUpdate) (models.Order, error) {
	cols := map[string]interface{}{"updated_at": r.now().UTC()}
	if upd.Status != nil {
		cols["status"] = string(*upd.Status)
	}
	if td := upd.TrackingDetails; td != nil {
		cols["tracking_destination"] = td.Destination
		cols["tracking_expected_processing_date"] = td.ExpectedProcessingDate
		cols["tracking_actual_processing_date"] = td.ActualProcessingDate
		cols["tracking_expected_shipped_date"] = td.ExpectedShippedDate
		cols["tracking_actual_shipped_date"] = td.ActualShippedDate
		cols["tracking_expected_delivered_date"] = td.ExpectedDeliveredDate
		cols["tracking_actual_delivered_date"] = td.ActualDeliveredDate
	}

	var out models.Order
	err := r.db.Transaction(func(tx *gorm.DB) error {
		q := tx.Model(&models.Order{}).Where("id = ?", id).Updates(cols)
		if q.Error != nil {
			return q.Error
		}
		if q.RowsAffected == 0 {
			return repository.ErrNotFound
		}
		return tx.Where("id = ?", id).First(&out).Error
	})
	if errors.Is(err, repository.ErrNotFound) {
		return models.Order{}, err
	}
	if err != nil {
		return models.Order{}, fmt.Errorf("update order: %w", err)
	}
	return out, nil
}

func (r *OrderPostgresRepo) SetNotifications(_ context.Context, id string, n models.Notifications) error {
	q := r.db.Model(&models.Order{}).Where("id = ?", id).Updates(map[string]interface{}{
		"notify_confirmation_sent": n.ConfirmationSent,
		"notify_admin_alert_sent":  n.AdminAlertSent,
		"notify_last_error":        n.LastError,
	})
	if q.Error != nil {
		return fmt.Errorf("update notifications: %w", q.Error)
	}
	if q.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *OrderPostgresRepo) Delete(_ context.Context, id string) error {
	q := r.db.Where("id = ?", id).Delete(&models.Order{})
	if q.Error != nil {
		return fmt.Errorf("delete order: %w", q.Error)
	}
	if q.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}
