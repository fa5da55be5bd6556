package review

type CreateReviewRequest struct {
	RestroomID int64  `json:"restroom_id"`
	UserID     int64  `json:"user_id"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment"`
	ImagePath  string `json:"image_path"`
}
