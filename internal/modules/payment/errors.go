package payment

import "errors"

var (
	ErrValidation       = errors.New("user_id, restroom_id, method and amount are required")
	ErrRestroomNotFound = errors.New("restroom not found")
	ErrOwnerNotFound    = errors.New("owner not found")
	ErrPaymentNotFound  = errors.New("payment not found")
	ErrInvalidAction    = errors.New("action must be confirm or reject")
)
