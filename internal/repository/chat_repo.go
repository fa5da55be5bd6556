package repository

import (
	"context"

	"gorm.io/gorm"

	"restroomfinder/internal/domain"
)

type ChatRepository struct {
	db *gorm.DB
}

func NewChatRepository(db *gorm.DB) *ChatRepository {
	return &ChatRepository{db: db}
}

func (r *ChatRepository) Create(ctx context.Context, msg *domain.ChatMessage) error {
	return r.db.WithContext(ctx).Create(msg).Error
}

// ListByRestroom returns the full transcript, oldest first, the order the
// polling client renders it in.
func (r *ChatRepository) ListByRestroom(ctx context.Context, restroomID int64) ([]domain.ChatMessage, error) {
	var out []domain.ChatMessage
	err := r.db.WithContext(ctx).
		Where("restroom_id = ?", restroomID).
		Order("created_at asc").
		Find(&out).Error
	return out, err
}
