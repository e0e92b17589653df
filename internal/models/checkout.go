package models

// Checkout is the payload submitted by the storefront checkout page.
type Checkout struct {
	OrderID string `json:"orderId" validate:"omitempty,max=32"`

	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName"  validate:"required"`
	Email     string `json:"email"     validate:"required,email"`
	Phone     string `json:"phone"     validate:"required"`

	Address string `json:"address" validate:"required"`
	City    string `json:"city"    validate:"required"`
	State   string `json:"state"   validate:"required"`
	ZipCode string `json:"zipCode" validate:"required"`
	Country string `json:"country"`

	PaymentMethod string     `json:"paymentMethod" validate:"required"`
	Cart          []CartItem `json:"cart"          validate:"required,min=1,dive"`
	Total         float64    `json:"total"`
}
