package models

import "time"

// Stage is one step of the four-stage customer journey.
type Stage struct {
	Name     string     `json:"name"`
	Expected *time.Time `json:"expected,omitempty"`
	Actual   *time.Time `json:"actual,omitempty"`
	Reached  bool       `json:"reached"`
}

// TrackingView is the read-only projection served to customers.
type TrackingView struct {
	OrderID   string `json:"orderId"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`

	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
	Country string `json:"country"`

	PaymentMethod string     `json:"paymentMethod"`
	Cart          []CartItem `json:"cart"`
	Total         float64    `json:"total"`

	Status        Status          `json:"status"`
	DisplayStatus string          `json:"displayStatus"`
	ProgressStep  int             `json:"progressStep"`
	Cancelled     bool            `json:"cancelled"`
	Stages        []Stage         `json:"stages"`
	Tracking      TrackingDetails `json:"trackingDetails"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AdminSession is the capability handed out after a successful login.
type AdminSession struct {
	Token     string    `json:"token"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// OrderEvent is published on every order write.
type OrderEvent struct {
	Type    string    `json:"type"`
	ID      string    `json:"id"`
	OrderID string    `json:"orderId"`
	Status  Status    `json:"status,omitempty"`
	Total   float64   `json:"total,omitempty"`
	At      time.Time `json:"at"`
}

const (
	EventOrderCreated = "order.created"
	EventOrderUpdated = "order.updated"
	EventOrderDeleted = "order.deleted"

	// EventOrderSnapshot carries the current state of an order during a replay.
	EventOrderSnapshot = "order.snapshot"
)
