package payment

import "errors"

var (
	ErrPaymentNotFound = errors.New("payment not found")
	ErrAlreadyPaid     = errors.New("payment already paid")
)
