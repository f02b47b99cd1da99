// Package notify implements the order notification boundary. Delivery is a
// stub: messages are validated, routed to a recipient and logged.
package notify

import (
	"context"
	"errors"
	"net/http"
	"strings"

	errx "github.com/somascents/storefront/internal/core/error"
	"github.com/somascents/storefront/internal/storefront/model"
	logx "github.com/somascents/storefront/pkg/logger"
)

// Sender hands a message to a delivery channel.
type Sender interface {
	Send(ctx context.Context, recipient string, req model.NotificationRequest) error
}

// LogSender records notifications in the log instead of delivering them.
type LogSender struct{}

func (LogSender) Send(_ context.Context, recipient string, req model.NotificationRequest) error {
	logx.Info().
		Str("recipient_type", string(req.RecipientType)).
		Str("recipient", recipient).
		Str("message", req.Message).
		Msg("notification sent")
	return nil
}

// Service validates notification requests and resolves their recipient.
type Service struct {
	adminPhone string
	sender     Sender
}

func NewService(cfg model.NotifyConfig, sender Sender) *Service {
	if sender == nil {
		sender = LogSender{}
	}
	return &Service{adminPhone: cfg.AdminPhoneNumber, sender: sender}
}

// Notify validates req, resolves the recipient and sends. Validation
// failures are 400 AppErrors; delivery failures are 500s.
func (s *Service) Notify(ctx context.Context, req model.NotificationRequest) (*model.NotificationResponse, error) {
	if req.Message == "" {
		return nil, errx.ErrMissingMessage
	}

	recipient, err := s.recipient(req)
	if err != nil {
		return nil, err
	}

	if err := s.sender.Send(ctx, recipient, req); err != nil {
		logx.Error().Err(err).Str("recipient_type", string(req.RecipientType)).Msg("error sending notification")
		return nil, errx.New(err, http.StatusInternalServerError, errx.NotificationFailMessage)
	}

	return &model.NotificationResponse{
		Success:   true,
		Recipient: recipient,
		Message:   req.Message,
	}, nil
}

func (s *Service) recipient(req model.NotificationRequest) (string, error) {
	switch {
	case req.RecipientType == model.RecipientAdmin:
		if s.adminPhone == "" {
			return "", errx.New(errors.New("admin phone number not configured"), http.StatusInternalServerError, errx.NotificationFailMessage)
		}
		return s.adminPhone, nil
	case req.RecipientType == model.RecipientCustomer && strings.TrimSpace(req.PhoneNumber) != "":
		return strings.TrimSpace(req.PhoneNumber), nil
	default:
		return "", errx.ErrInvalidRecipient
	}
}

var _ model.Notifier = (*Service)(nil)
