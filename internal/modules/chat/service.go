package chat

import (
	"context"
	"errors"

	"restroomfinder/internal/domain"
)

var ErrValidation = errors.New("restroom_id, user_id and message are required")

type ChatRepositoryInterface interface {
	Create(ctx context.Context, msg *domain.ChatMessage) error
	ListByRestroom(ctx context.Context, restroomID int64) ([]domain.ChatMessage, error)
}

// Broadcaster pushes a stored message to live websocket subscribers.
type Broadcaster interface {
	Broadcast(restroomID int64, message interface{})
}

type Service struct {
	messages ChatRepositoryInterface
	hub      Broadcaster
}

func NewService(messages ChatRepositoryInterface, hub Broadcaster) *Service {
	return &Service{messages: messages, hub: hub}
}

func (s *Service) Send(ctx context.Context, req SendMessageRequest) (*domain.ChatMessage, error) {
	if req.RestroomID <= 0 || req.UserID <= 0 || req.Message == "" {
		return nil, ErrValidation
	}

	msgType := domain.MessageType(req.MessageType)
	if msgType == "" {
		msgType = domain.MessageNormal
	}

	msg := &domain.ChatMessage{
		RestroomID:  req.RestroomID,
		UserID:      req.UserID,
		Message:     req.Message,
		MessageType: msgType,
		IsFromAdmin: req.IsFromAdmin,
	}
	if err := s.messages.Create(ctx, msg); err != nil {
		return nil, err
	}

	if s.hub != nil {
		s.hub.Broadcast(req.RestroomID, msg)
	}
	return msg, nil
}

func (s *Service) List(ctx context.Context, restroomID int64) ([]domain.ChatMessage, error) {
	return s.messages.ListByRestroom(ctx, restroomID)
}
