package domain

import "time"

type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "cash"
	PaymentTransfer PaymentMethod = "transfer"
)

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentConfirmed PaymentStatus = "confirmed"
	PaymentRejected  PaymentStatus = "rejected"
)

type Payment struct {
	ID         int64         `json:"id"`
	UserID     int64         `json:"user_id" validate:"required"`
	RestroomID int64         `json:"restroom_id" validate:"required"`
	OwnerID    int64         `json:"owner_id"`
	Method     PaymentMethod `json:"method"`
	Amount     int64         `json:"amount"` // VND
	Status     PaymentStatus `json:"status"`

	// Proof of transfer, inline data URI or remote path. Cash payments carry none.
	TransferImagePath string `json:"transfer_image_path,omitempty" gorm:"type:text"`
	Note              string `json:"note,omitempty" gorm:"type:text"`

	ConfirmedAt *time.Time `json:"confirmed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	User     *User     `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Restroom *Restroom `json:"restroom,omitempty" gorm:"foreignKey:RestroomID"`
}
