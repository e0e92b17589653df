package service

import "errors"

var ErrNotFound = errors.New("order not found")

var (
	ErrValidation     = errors.New("validation")
	ErrPersistence    = errors.New("persistence")
	ErrDuplicateOrder = errors.New("order id already exists")
	ErrNotification   = errors.New("notification")
	ErrUnauthorized   = errors.New("unauthorized")
)
