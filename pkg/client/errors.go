package client

import (
	"errors"
	"fmt"
)

// ErrPaymentRequired is returned by StartUsing when the server answers 402:
// the restroom is paid and no confirmed payment exists for the caller.
var ErrPaymentRequired = errors.New("payment required")

// APIError carries a non-2xx response's status and the server's error
// message.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error: status=%d message=%q", e.StatusCode, e.Message)
}
