package domain

import "time"

type NotificationType string

const (
	NotifNavigationRequest   NotificationType = "navigation_request"
	NotifArrival             NotificationType = "arrival"
	NotifPaperRequest        NotificationType = "paper_request"
	NotifSOS                 NotificationType = "sos"
	NotifChatStarted         NotificationType = "chat_started"
	NotifPaymentConfirmation NotificationType = "payment_confirmation"
	NotifPaymentStatus       NotificationType = "payment_status"
	NotifReview              NotificationType = "review"
)

type Notification struct {
	ID         int64            `json:"id"`
	OwnerID    int64            `json:"owner_id"`
	RestroomID int64            `json:"restroom_id"`
	UserID     *int64           `json:"user_id,omitempty"`
	Type       NotificationType `json:"type"`
	Message    string           `json:"message" gorm:"type:text;not null"`
	IsRead     bool             `json:"is_read"`
	CreatedAt  time.Time        `json:"created_at"`

	Restroom *Restroom `json:"restroom,omitempty" gorm:"foreignKey:RestroomID"`
}
