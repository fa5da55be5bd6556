package domain

import "time"

type Restroom struct {
	ID           int64    `json:"id"`
	OwnerID      *int64   `json:"owner_id,omitempty"`
	Name         string   `json:"name" validate:"required"`
	Address      string   `json:"address" validate:"required"`
	Latitude     float64  `json:"latitude"`
	Longitude    float64  `json:"longitude"`
	IsFree       bool     `json:"is_free"`
	Price        int64    `json:"price"` // VND
	CurrentUsers int      `json:"current_users"`
	Rating       float64  `json:"rating"`
	TotalReviews int      `json:"total_reviews"`
	AdminContact string   `json:"admin_contact,omitempty"`
	ImageURL     string   `json:"image_url,omitempty"`
	Images       []string `json:"images" gorm:"serializer:json"`

	// Toilet facility counts.
	MaleStanding   int  `json:"male_standing"`
	MaleSitting    int  `json:"male_sitting"`
	FemaleSitting  int  `json:"female_sitting"`
	DisabledAccess bool `json:"disabled_access"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Owner struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email" gorm:"uniqueIndex;not null"`
	Phone        string `json:"phone"`
	PasswordHash string `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
