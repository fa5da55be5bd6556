package notification

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"restroomfinder/internal/domain"
	"restroomfinder/internal/repository"
)

// Anonymous sender label shown to owners when no user id accompanies a
// request.
const guestName = "Khách"

const ownerFeedLimit = 50

type Service struct {
	notifications NotificationRepositoryInterface
	restrooms     RestroomReader
	users         UserReader
	owners        OwnerReader
}

func NewService(notifications NotificationRepositoryInterface, restrooms RestroomReader, users UserReader, owners OwnerReader) *Service {
	return &Service{
		notifications: notifications,
		restrooms:     restrooms,
		users:         users,
		owners:        owners,
	}
}

func (s *Service) resolve(ctx context.Context, restroomID int64, userID *int64) (*domain.Restroom, string, error) {
	restroom, err := s.restrooms.GetByID(ctx, restroomID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, "", ErrRestroomNotFound
		}
		return nil, "", err
	}
	if restroom.OwnerID == nil {
		return nil, "", ErrNoOwner
	}

	username := guestName
	if userID != nil {
		if user, err := s.users.GetByID(ctx, *userID); err == nil {
			username = user.Username
		}
	}
	return restroom, username, nil
}

// NotifyNavigation tells the owner someone started navigating to their
// restroom.
func (s *Service) NotifyNavigation(ctx context.Context, restroomID int64, userID *int64) error {
	restroom, username, err := s.resolve(ctx, restroomID, userID)
	if err != nil {
		return err
	}
	return s.notifications.Create(ctx, &domain.Notification{
		OwnerID:    *restroom.OwnerID,
		RestroomID: restroomID,
		UserID:     userID,
		Type:       domain.NotifNavigationRequest,
		Message:    fmt.Sprintf("%s đang xin chỉ đường đến %s", username, restroom.Name),
	})
}

// NotifyArrival tells the owner a visitor is at the door.
func (s *Service) NotifyArrival(ctx context.Context, restroomID int64, userID *int64) error {
	restroom, username, err := s.resolve(ctx, restroomID, userID)
	if err != nil {
		return err
	}
	return s.notifications.Create(ctx, &domain.Notification{
		OwnerID:    *restroom.OwnerID,
		RestroomID: restroomID,
		UserID:     userID,
		Type:       domain.NotifArrival,
		Message:    fmt.Sprintf("%s đã đến %s", username, restroom.Name),
	})
}

// NotifyOwner forwards a typed in-session event (paper request, SOS,
// chat started) to the owner.
func (s *Service) NotifyOwner(ctx context.Context, restroomID int64, userID *int64, notifType, message string) error {
	restroom, username, err := s.resolve(ctx, restroomID, userID)
	if err != nil {
		return err
	}
	return s.notifications.Create(ctx, &domain.Notification{
		OwnerID:    *restroom.OwnerID,
		RestroomID: restroomID,
		UserID:     userID,
		Type:       domain.NotificationType(notifType),
		Message:    fmt.Sprintf("%s: %s", username, message),
	})
}

type OwnerNotificationRestroom struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type OwnerNotification struct {
	ID        int64                      `json:"id"`
	Type      string                     `json:"type"`
	Message   string                     `json:"message"`
	IsRead    bool                       `json:"is_read"`
	CreatedAt time.Time                  `json:"created_at"`
	Restroom  *OwnerNotificationRestroom `json:"restroom"`
}

// ListByOwnerEmail returns the owner's newest notifications, capped at 50.
func (s *Service) ListByOwnerEmail(ctx context.Context, email string) ([]OwnerNotification, error) {
	owner, err := s.owners.GetByEmail(ctx, strings.ToLower(email))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrOwnerNotFound
		}
		return nil, err
	}

	notifications, err := s.notifications.ListByOwner(ctx, owner.ID, ownerFeedLimit)
	if err != nil {
		return nil, err
	}

	out := make([]OwnerNotification, 0, len(notifications))
	for _, n := range notifications {
		item := OwnerNotification{
			ID:        n.ID,
			Type:      string(n.Type),
			Message:   n.Message,
			IsRead:    n.IsRead,
			CreatedAt: n.CreatedAt,
		}
		if n.Restroom != nil {
			item.Restroom = &OwnerNotificationRestroom{ID: n.Restroom.ID, Name: n.Restroom.Name}
		}
		out = append(out, item)
	}
	return out, nil
}

func (s *Service) MarkRead(ctx context.Context, id int64) error {
	return s.notifications.MarkRead(ctx, id)
}
