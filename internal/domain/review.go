package domain

import "time"

type Review struct {
	ID         int64     `json:"id"`
	RestroomID int64     `json:"restroom_id"`
	UserID     int64     `json:"user_id"`
	Rating     int       `json:"rating"` // 1-5 stars
	Comment    string    `json:"comment,omitempty" gorm:"type:text"`
	ImagePath  string    `json:"image_path,omitempty"`
	CreatedAt  time.Time `json:"created_at"`

	Restroom *Restroom `json:"restroom,omitempty" gorm:"foreignKey:RestroomID"`
}
