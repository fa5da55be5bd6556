package usage

import "errors"

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrRestroomNotFound = errors.New("restroom not found")
	ErrPaymentRequired  = errors.New("Payment required")
)
