package client

import "time"

type User struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	Role         string `json:"role,omitempty"`
	IsRandomUser bool   `json:"is_random_user,omitempty"`
}

type LoginResult struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Role         string `json:"role"`
	IsRandomUser bool   `json:"is_random_user"`
	Token        string `json:"token"`
}

type Restroom struct {
	ID             int64    `json:"id"`
	Name           string   `json:"name"`
	Address        string   `json:"address"`
	Latitude       float64  `json:"latitude"`
	Longitude      float64  `json:"longitude"`
	IsFree         bool     `json:"is_free"`
	Price          int64    `json:"price"`
	CurrentUsers   int      `json:"current_users"`
	Rating         float64  `json:"rating"`
	TotalReviews   int      `json:"total_reviews"`
	AdminContact   string   `json:"admin_contact"`
	ImageURL       string   `json:"image_url"`
	Images         []string `json:"images"`
	MaleStanding   int      `json:"male_standing"`
	MaleSitting    int      `json:"male_sitting"`
	FemaleSitting  int      `json:"female_sitting"`
	DisabledAccess bool     `json:"disabled_access"`
}

type Review struct {
	ID        int64     `json:"id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	ImagePath string    `json:"image_path"`
	CreatedAt time.Time `json:"created_at"`
}

type RestroomDetail struct {
	Restroom
	Reviews []Review `json:"reviews"`
}

type CreatePaymentRequest struct {
	UserID            int64  `json:"user_id"`
	RestroomID        int64  `json:"restroom_id"`
	Method            string `json:"method"`
	Amount            int64  `json:"amount"`
	TransferImagePath string `json:"transfer_image_path,omitempty"`
	Note              string `json:"note,omitempty"`
}

type PaymentResult struct {
	Success   bool   `json:"success"`
	PaymentID int64  `json:"payment_id"`
	Status    string `json:"status"`
}

type PaymentStatus struct {
	PaymentConfirmed  bool       `json:"payment_confirmed"`
	PaymentID         int64      `json:"payment_id"`
	ConfirmedAt       *time.Time `json:"confirmed_at"`
	HasPendingPayment bool       `json:"has_pending_payment"`
	PendingPaymentID  *int64     `json:"pending_payment_id"`
}

type ChatMessage struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	Message     string    `json:"message"`
	MessageType string    `json:"message_type"`
	IsFromAdmin bool      `json:"is_from_admin"`
	CreatedAt   time.Time `json:"created_at"`
}

type SendChatMessageRequest struct {
	RestroomID  int64  `json:"restroom_id"`
	UserID      int64  `json:"user_id"`
	Message     string `json:"message"`
	MessageType string `json:"message_type,omitempty"`
	IsFromAdmin bool   `json:"is_from_admin,omitempty"`
}

type CreateReviewRequest struct {
	RestroomID int64  `json:"restroom_id"`
	UserID     int64  `json:"user_id"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment,omitempty"`
	ImagePath  string `json:"image_path,omitempty"`
}

// HistoryEntry is one row of the profile screen, either a past session or
// a review the user left.
type HistoryEntry struct {
	ID              int64      `json:"id"`
	Type            string     `json:"type"`
	RestroomName    string     `json:"restroom_name"`
	RestroomAddress string     `json:"restroom_address"`
	StartTime       *time.Time `json:"start_time,omitempty"`
	EndTime         *time.Time `json:"end_time,omitempty"`
	DurationMinutes *int       `json:"duration_minutes,omitempty"`
	Rating          int        `json:"rating,omitempty"`
	Comment         string     `json:"comment,omitempty"`
	ImagePath       string     `json:"image_path,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

type History struct {
	UsageHistory []HistoryEntry `json:"usage_history"`
	Reviews      []HistoryEntry `json:"reviews"`
}

type UserPayment struct {
	ID           int64      `json:"id"`
	RestroomName string     `json:"restroom_name"`
	Method       string     `json:"method"`
	Amount       int64      `json:"amount"`
	Status       string     `json:"status"`
	Note         string     `json:"note,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	ConfirmedAt  *time.Time `json:"confirmed_at"`
}

type NotificationRestroom struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Notification struct {
	ID        int64                 `json:"id"`
	Type      string                `json:"type"`
	Message   string                `json:"message"`
	IsRead    bool                  `json:"is_read"`
	CreatedAt time.Time             `json:"created_at"`
	Restroom  *NotificationRestroom `json:"restroom"`
}
