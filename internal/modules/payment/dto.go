package payment

import "time"

type CreatePaymentRequest struct {
	UserID            int64  `json:"user_id"`
	RestroomID        int64  `json:"restroom_id"`
	Method            string `json:"method"`
	Amount            int64  `json:"amount"`
	TransferImagePath string `json:"transfer_image_path"`
	Note              string `json:"note"`
}

type ConfirmPaymentRequest struct {
	Action string `json:"action"` // "confirm" or "reject"
}

// OwnerPaymentRow is the flattened shape the owner dashboard renders.
type OwnerPaymentRow struct {
	ID                int64      `json:"id"`
	UserName          string     `json:"user_name"`
	RestroomName      string     `json:"restroom_name"`
	Method            string     `json:"method"`
	Amount            int64      `json:"amount"`
	Status            string     `json:"status"`
	TransferImagePath string     `json:"transfer_image_path,omitempty"`
	Note              string     `json:"note,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	ConfirmedAt       *time.Time `json:"confirmed_at"`
}

type UserPaymentRow struct {
	ID           int64      `json:"id"`
	RestroomName string     `json:"restroom_name"`
	Method       string     `json:"method"`
	Amount       int64      `json:"amount"`
	Status       string     `json:"status"`
	Note         string     `json:"note,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	ConfirmedAt  *time.Time `json:"confirmed_at"`
}

// StatusResponse reports whether the user may enter a paid restroom and,
// failing that, whether a transfer is still waiting on the owner.
type StatusResponse struct {
	PaymentConfirmed  bool       `json:"payment_confirmed"`
	PaymentID         int64      `json:"payment_id,omitempty"`
	ConfirmedAt       *time.Time `json:"confirmed_at,omitempty"`
	HasPendingPayment bool       `json:"has_pending_payment"`
	PendingPaymentID  *int64     `json:"pending_payment_id"`
}
