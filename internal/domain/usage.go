package domain

import "time"

// UsageRecord is the persisted trace of one occupancy window. An open record
// has EndTime == nil; StopUsing closes it and fills in the duration.
type UsageRecord struct {
	ID              int64      `json:"id"`
	UserID          int64      `json:"user_id"`
	RestroomID      int64      `json:"restroom_id"`
	StartTime       time.Time  `json:"start_time"`
	EndTime         *time.Time `json:"end_time,omitempty"`
	DurationMinutes *int       `json:"duration_minutes,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`

	User     *User     `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Restroom *Restroom `json:"restroom,omitempty" gorm:"foreignKey:RestroomID"`
}
