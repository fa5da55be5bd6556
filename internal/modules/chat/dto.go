package chat

type SendMessageRequest struct {
	RestroomID  int64  `json:"restroom_id"`
	UserID      int64  `json:"user_id"`
	Message     string `json:"message"`
	MessageType string `json:"message_type"`
	IsFromAdmin bool   `json:"is_from_admin"`
}
