package review

import "errors"

var (
	ErrValidation       = errors.New("restroom_id, user_id and a rating between 1 and 5 are required")
	ErrRestroomNotFound = errors.New("restroom not found")
)
