// Package checkout turns the cart into order notifications.
package checkout

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	errx "github.com/somascents/storefront/internal/core/error"
	"github.com/somascents/storefront/internal/storefront/model"
	logx "github.com/somascents/storefront/pkg/logger"
)

// DefaultClearDelay is how long the confirmation stays up before the cart is cleared.
const DefaultClearDelay = 3 * time.Second

// Cart is the part of the cart manager checkout needs.
type Cart interface {
	Summary() model.CartSummary
	ClearCart(ctx context.Context)
}

type Config struct {
	StoreName  string
	ClearDelay time.Duration
}

// Receipt describes a submitted order.
type Receipt struct {
	OrderID          string    `json:"orderId"`
	TotalPrice       int       `json:"totalPrice"`
	TotalItems       int       `json:"totalItems"`
	CustomerNotified bool      `json:"customerNotified"`
	ClearsAt         time.Time `json:"clearsAt"`
}

// Service submits orders. There is no retry: a failure is returned once and
// the cart is left as it was so the user can try again.
type Service struct {
	notifier   model.Notifier
	cart       Cart
	storeName  string
	clearDelay time.Duration

	mu      sync.Mutex
	pending *time.Timer
}

func NewService(cfg Config, notifier model.Notifier, cart Cart) *Service {
	if cfg.ClearDelay < 0 {
		cfg.ClearDelay = DefaultClearDelay
	}
	return &Service{
		notifier:   notifier,
		cart:       cart,
		storeName:  cfg.StoreName,
		clearDelay: cfg.ClearDelay,
	}
}

// Submit notifies the admin and, when a phone number was given, the
// customer. On success the cart is cleared after the configured delay.
func (s *Service) Submit(ctx context.Context, details model.CustomerDetails) (*Receipt, error) {
	summary := s.cart.Summary()
	if len(summary.Lines) == 0 {
		return nil, errx.ErrEmptyCart
	}

	// A blank phone means no customer confirmation.
	details.Phone = strings.TrimSpace(details.Phone)
	orderID := uuid.NewString()

	adminMsg, err := AdminMessage(ctx, details, summary)
	if err != nil {
		return nil, errx.Internal(err)
	}
	if _, err := s.notifier.Notify(ctx, model.NotificationRequest{
		RecipientType: model.RecipientAdmin,
		Message:       adminMsg,
	}); err != nil {
		logx.Error().Err(err).Str("order_id", orderID).Msg("error processing order: admin notification failed")
		return nil, err
	}

	receipt := &Receipt{
		OrderID:    orderID,
		TotalPrice: summary.TotalPrice,
		TotalItems: summary.TotalItems,
	}

	if details.Phone != "" {
		customerMsg, err := CustomerMessage(ctx, s.storeName, details, summary)
		if err != nil {
			return nil, errx.Internal(err)
		}
		if _, err := s.notifier.Notify(ctx, model.NotificationRequest{
			RecipientType: model.RecipientCustomer,
			PhoneNumber:   details.Phone,
			Message:       customerMsg,
		}); err != nil {
			logx.Error().Err(err).Str("order_id", orderID).Msg("error processing order: customer confirmation failed")
			return nil, err
		}
		receipt.CustomerNotified = true
	}

	receipt.ClearsAt = s.scheduleClear()
	logx.Info().
		Str("order_id", orderID).
		Int("total", summary.TotalPrice).
		Bool("customer_notified", receipt.CustomerNotified).
		Msg("order submitted")
	return receipt, nil
}

func (s *Service) scheduleClear() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pending != nil {
		s.pending.Stop()
		s.pending = nil
	}
	if s.clearDelay == 0 {
		s.cart.ClearCart(context.Background())
		return time.Now()
	}

	var t *time.Timer
	t = time.AfterFunc(s.clearDelay, func() {
		s.mu.Lock()
		if s.pending != t {
			s.mu.Unlock()
			return
		}
		s.pending = nil
		s.mu.Unlock()
		s.cart.ClearCart(context.Background())
	})
	s.pending = t
	return time.Now().Add(s.clearDelay)
}

// Close cancels a pending post-checkout clear.
func (s *Service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending != nil {
		s.pending.Stop()
		s.pending = nil
	}
}
