package notification

type NavigationRequest struct {
	UserID *int64 `json:"user_id"`
}

type ArrivalRequest struct {
	UserID *int64 `json:"user_id"`
}

type NotifyOwnerRequest struct {
	UserID  *int64 `json:"user_id"`
	Type    string `json:"type"`
	Message string `json:"message"`
}
