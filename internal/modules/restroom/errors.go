package restroom

import "errors"

var (
	ErrValidation    = errors.New("name and address are required")
	ErrOwnerNotFound = errors.New("owner not found")
	ErrNotFound      = errors.New("restroom not found")
)
