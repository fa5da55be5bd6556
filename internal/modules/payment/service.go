package payment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"restroomfinder/internal/domain"
	"restroomfinder/internal/repository"
)

type Service struct {
	payments      PaymentRepositoryInterface
	restrooms     RestroomReader
	owners        OwnerReader
	notifications Notifier
}

func NewService(payments PaymentRepositoryInterface, restrooms RestroomReader, owners OwnerReader, notifications Notifier) *Service {
	return &Service{
		payments:      payments,
		restrooms:     restrooms,
		owners:        owners,
		notifications: notifications,
	}
}

// Create records a payment. Cash settles immediately; transfers stay
// pending until the owner confirms and notify the owner right away.
func (s *Service) Create(ctx context.Context, req CreatePaymentRequest) (*domain.Payment, error) {
	if req.UserID <= 0 || req.RestroomID <= 0 || req.Amount <= 0 {
		return nil, ErrValidation
	}
	method := domain.PaymentMethod(req.Method)
	if method != domain.PaymentCash && method != domain.PaymentTransfer {
		return nil, ErrValidation
	}

	restroom, err := s.restrooms.GetByID(ctx, req.RestroomID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRestroomNotFound
		}
		return nil, err
	}
	if restroom.OwnerID == nil {
		return nil, ErrOwnerNotFound
	}
	owner, err := s.owners.GetByID(ctx, *restroom.OwnerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrOwnerNotFound
		}
		return nil, err
	}

	status := domain.PaymentConfirmed
	if method == domain.PaymentTransfer {
		status = domain.PaymentPending
	}

	p := &domain.Payment{
		UserID:            req.UserID,
		RestroomID:        req.RestroomID,
		OwnerID:           owner.ID,
		Method:            method,
		Amount:            req.Amount,
		Status:            status,
		TransferImagePath: req.TransferImagePath,
		Note:              req.Note,
	}
	if err := s.payments.Create(ctx, p); err != nil {
		return nil, err
	}

	if method == domain.PaymentTransfer {
		userID := req.UserID
		n := &domain.Notification{
			OwnerID:    owner.ID,
			RestroomID: req.RestroomID,
			UserID:     &userID,
			Type:       domain.NotifPaymentConfirmation,
			Message:    fmt.Sprintf("Yêu cầu xác nhận thanh toán chuyển khoản %d₫ cho %s", req.Amount, restroom.Name),
		}
		if err := s.notifications.Create(ctx, n); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// Resolve confirms or rejects a pending transfer and notifies the payer.
func (s *Service) Resolve(ctx context.Context, paymentID int64, action string) (domain.PaymentStatus, error) {
	if action != "confirm" && action != "reject" {
		return "", ErrInvalidAction
	}

	p, err := s.payments.GetByID(ctx, paymentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrPaymentNotFound
		}
		return "", err
	}

	var (
		status  domain.PaymentStatus
		message string
	)
	if action == "confirm" {
		status = domain.PaymentConfirmed
		now := time.Now().UTC()
		if err := s.payments.SetStatus(ctx, p.ID, status, &now); err != nil {
			return "", err
		}
		message = fmt.Sprintf("Thanh toán %d₫ đã được xác nhận", p.Amount)
	} else {
		status = domain.PaymentRejected
		if err := s.payments.SetStatus(ctx, p.ID, status, nil); err != nil {
			return "", err
		}
		message = fmt.Sprintf("Thanh toán %d₫ bị từ chối", p.Amount)
	}

	userID := p.UserID
	n := &domain.Notification{
		OwnerID:    p.OwnerID,
		RestroomID: p.RestroomID,
		UserID:     &userID,
		Type:       domain.NotifPaymentStatus,
		Message:    message,
	}
	if err := s.notifications.Create(ctx, n); err != nil {
		return "", err
	}

	return status, nil
}

func (s *Service) ListByOwner(ctx context.Context, ownerID int64) ([]OwnerPaymentRow, error) {
	payments, err := s.payments.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	rows := make([]OwnerPaymentRow, 0, len(payments))
	for _, p := range payments {
		row := OwnerPaymentRow{
			ID:                p.ID,
			Method:            string(p.Method),
			Amount:            p.Amount,
			Status:            string(p.Status),
			TransferImagePath: p.TransferImagePath,
			Note:              p.Note,
			CreatedAt:         p.CreatedAt,
			ConfirmedAt:       p.ConfirmedAt,
		}
		if p.User != nil {
			row.UserName = p.User.Username
		}
		if p.Restroom != nil {
			row.RestroomName = p.Restroom.Name
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// ListByOwnerEmail resolves the owner by email first, for dashboards that
// identify the owner by login email rather than id.
func (s *Service) ListByOwnerEmail(ctx context.Context, email string) ([]OwnerPaymentRow, error) {
	owner, err := s.owners.GetByEmail(ctx, strings.ToLower(email))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrOwnerNotFound
		}
		return nil, err
	}
	return s.ListByOwner(ctx, owner.ID)
}

func (s *Service) ListByUser(ctx context.Context, userID int64) ([]UserPaymentRow, error) {
	payments, err := s.payments.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	rows := make([]UserPaymentRow, 0, len(payments))
	for _, p := range payments {
		row := UserPaymentRow{
			ID:          p.ID,
			Method:      string(p.Method),
			Amount:      p.Amount,
			Status:      string(p.Status),
			Note:        p.Note,
			CreatedAt:   p.CreatedAt,
			ConfirmedAt: p.ConfirmedAt,
		}
		if p.Restroom != nil {
			row.RestroomName = p.Restroom.Name
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// Status is what the client polls while waiting on a transfer.
func (s *Service) Status(ctx context.Context, userID, restroomID int64) (*StatusResponse, error) {
	confirmed, err := s.payments.LatestWithStatus(ctx, userID, restroomID, domain.PaymentConfirmed)
	if err == nil {
		return &StatusResponse{
			PaymentConfirmed: true,
			PaymentID:        confirmed.ID,
			ConfirmedAt:      confirmed.ConfirmedAt,
		}, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	pending, err := s.payments.LatestWithStatus(ctx, userID, restroomID, domain.PaymentPending)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return &StatusResponse{PaymentConfirmed: false}, nil
		}
		return nil, err
	}
	pendingID := pending.ID
	return &StatusResponse{
		PaymentConfirmed:  false,
		HasPendingPayment: true,
		PendingPaymentID:  &pendingID,
	}, nil
}
