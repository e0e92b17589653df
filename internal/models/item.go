package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// CartItem is a line item as the buyer saw it at checkout.
type CartItem struct {
	Title string  `json:"title" bson:"title" validate:"required"`
	Price float64 `json:"price" bson:"price" validate:"gte=0"`
	Image string  `json:"image,omitempty" bson:"image,omitempty"`
	Year  string  `json:"year,omitempty"  bson:"year,omitempty"`
	Type  string  `json:"type,omitempty"  bson:"type,omitempty"`
}

// CartItems is stored as a single JSON column by the relational store.
type CartItems []CartItem

func (c CartItems) Total() float64 {
	var sum float64
	for _, it := range c {
		sum += it.Price
	}
	return sum
}

func (c CartItems) Value() (driver.Value, error) {
	if c == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(c)
}

func (c *CartItems) Scan(src interface{}) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*c = CartItems{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("cart: unsupported source type %T", src)
	}
	return json.Unmarshal(raw, c)
}
