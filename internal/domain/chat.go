package domain

import "time"

type MessageType string

const (
	MessageNormal       MessageType = "normal"
	MessageSOS          MessageType = "sos"
	MessagePaperRequest MessageType = "paper_request"
)

type ChatMessage struct {
	ID          int64       `json:"id"`
	RestroomID  int64       `json:"restroom_id"`
	UserID      int64       `json:"user_id"`
	Message     string      `json:"message" gorm:"type:text;not null"`
	MessageType MessageType `json:"message_type"`
	IsFromAdmin bool        `json:"is_from_admin"`
	CreatedAt   time.Time   `json:"created_at"`
}
