package domain

import "time"

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleOwner UserRole = "owner"
)

type User struct {
	ID           int64    `json:"id"`
	Username     string   `json:"username" validate:"required" gorm:"uniqueIndex;not null"`
	PasswordHash string   `json:"-"`
	Role         UserRole `json:"role"`
	IsRandomUser bool     `json:"is_random_user"`

	// Live occupancy state; mirrored into UsageRecord rows on stop.
	CurrentRestroomID *int64     `json:"current_restroom_id,omitempty"`
	IsUsing           bool       `json:"is_using"`
	StartTime         *time.Time `json:"start_time,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
