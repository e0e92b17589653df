package models

import (
	"strings"
	"time"
)

type Status string

const (
	StatusPending    Status = "Pending"
	StatusProcessing Status = "Processing"
	StatusShipped    Status = "Shipped"
	StatusCompleted  Status = "Completed"
	StatusCancelled  Status = "Cancelled"
)

var Statuses = []Status{StatusPending, StatusProcessing, StatusShipped, StatusCompleted, StatusCancelled}

// ParseStatus accepts any casing of a known status.
func ParseStatus(s string) (Status, bool) {
	for _, st := range Statuses {
		if strings.EqualFold(string(st), strings.TrimSpace(s)) {
			return st, true
		}
	}
	return "", false
}

func (s Status) Valid() bool {
	_, ok := ParseStatus(string(s))
	return ok
}

type TrackingDetails struct {
	Destination string `json:"destination,omitempty" bson:"destination,omitempty"`

	ExpectedProcessingDate *time.Time `json:"expectedProcessingDate,omitempty" bson:"expectedProcessingDate,omitempty"`
	ActualProcessingDate   *time.Time `json:"actualProcessingDate,omitempty"   bson:"actualProcessingDate,omitempty"`
	ExpectedShippedDate    *time.Time `json:"expectedShippedDate,omitempty"    bson:"expectedShippedDate,omitempty"`
	ActualShippedDate      *time.Time `json:"actualShippedDate,omitempty"      bson:"actualShippedDate,omitempty"`
	ExpectedDeliveredDate  *time.Time `json:"expectedDeliveredDate,omitempty"  bson:"expectedDeliveredDate,omitempty"`
	ActualDeliveredDate    *time.Time `json:"actualDeliveredDate,omitempty"    bson:"actualDeliveredDate,omitempty"`
}

// Notifications records what the checkout pipeline managed to send.
type Notifications struct {
	ConfirmationSent bool   `json:"confirmationSent" bson:"confirmationSent"`
	AdminAlertSent   bool   `json:"adminAlertSent"   bson:"adminAlertSent"`
	LastError        string `json:"lastError,omitempty" bson:"lastError,omitempty"`
}

type Order struct {
	ID      string `json:"_id"     bson:"_id"     gorm:"primary_key;type:varchar(36)"`
	OrderID string `json:"orderId" bson:"orderId" gorm:"type:varchar(32);unique_index;not null"`

	FirstName string `json:"firstName" bson:"firstName"`
	LastName  string `json:"lastName"  bson:"lastName"`
	Email     string `json:"email"     bson:"email" gorm:"index"`
	Phone     string `json:"phone"     bson:"phone"`

	Address string `json:"address" bson:"address"`
	City    string `json:"city"    bson:"city"`
	State   string `json:"state"   bson:"state"`
	ZipCode string `json:"zipCode" bson:"zipCode"`
	Country string `json:"country" bson:"country"`

	PaymentMethod string    `json:"paymentMethod" bson:"paymentMethod"`
	Cart          CartItems `json:"cart"          bson:"cart" gorm:"type:jsonb"`
	Total         float64   `json:"total"         bson:"total"`
	Status        Status    `json:"status"        bson:"status" gorm:"type:varchar(16)"`

	TrackingDetails TrackingDetails `json:"trackingDetails" bson:"trackingDetails" gorm:"embedded;embedded_prefix:tracking_"`
	Notifications   Notifications   `json:"notifications"   bson:"notifications"   gorm:"embedded;embedded_prefix:notify_"`

	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

// OrderUpdate is the admin patch; nil fields are left untouched.
type OrderUpdate struct {
	Status          *Status          `json:"status,omitempty"`
	TrackingDetails *TrackingDetails `json:"trackingDetails,omitempty"`
}

func (u OrderUpdate) Empty() bool {
	return u.Status == nil && u.TrackingDetails == nil
}
