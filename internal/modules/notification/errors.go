package notification

import "errors"

var (
	ErrRestroomNotFound = errors.New("restroom not found")
	ErrNoOwner          = errors.New("Restroom has no owner")
	ErrOwnerNotFound    = errors.New("Owner not found")
)
