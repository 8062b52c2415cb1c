package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/Dirk1989/Ideal/internal/domain"
	"github.com/Dirk1989/Ideal/internal/logger"
	"github.com/Dirk1989/Ideal/internal/metrics"
	"github.com/Dirk1989/Ideal/internal/validator"
)

// ContactService accepts visitor enquiries. Messages are logged for the
// sales team and never stored.
type ContactService struct {
	validate *validator.Validator
	now      func() time.Time
}

// NewContactService creates a new ContactService.
func NewContactService(v *validator.Validator) *ContactService {
	return &ContactService{validate: v, now: time.Now}
}

// NewContactServiceWithClock creates a ContactService stamping receipts with now.
func NewContactServiceWithClock(v *validator.Validator, now func() time.Time) *ContactService {
	return &ContactService{validate: v, now: now}
}

// Submit validates msg and returns its reference.
func (s *ContactService) Submit(ctx context.Context, msg domain.ContactMessage) (domain.ContactReceipt, error) {
	if err := s.validate.Contact(&msg); err != nil {
		return domain.ContactReceipt{}, validator.ToAppError(err)
	}

	now := s.now()
	receipt := domain.ContactReceipt{
		Reference: domain.ContactReference(now),
		Received:  now,
	}

	metrics.ContactMessagesTotal.Inc()
	logger.InfoContext(ctx, "Contact form submission",
		slog.String("reference", receipt.Reference),
		slog.String("name", msg.Name),
		slog.String("email", msg.Email),
		slog.String("phone", msg.Phone),
		slog.String("subject", msg.Subject),
		slog.String("message", msg.Message),
	)
	return receipt, nil
}
