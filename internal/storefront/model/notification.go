package model

import "context"

// RecipientType selects who receives an order notification.
type RecipientType string

const (
	RecipientAdmin    RecipientType = "admin"
	RecipientCustomer RecipientType = "customer"
)

// NotificationRequest is the payload accepted by the order notification boundary.
type NotificationRequest struct {
	RecipientType RecipientType `json:"recipientType"`
	PhoneNumber   string        `json:"phoneNumber,omitempty"`
	Message       string        `json:"message"`
}

// NotificationResponse is returned by the boundary for both outcomes.
type NotificationResponse struct {
	Success   bool   `json:"success"`
	Recipient string `json:"recipient,omitempty"`
	Message   string `json:"message,omitempty"`
	Error     string `json:"error,omitempty"`
}

// Notifier delivers one order notification.
type Notifier interface {
	Notify(ctx context.Context, req NotificationRequest) (*NotificationResponse, error)
}

// CustomerDetails is what the checkout form collects.
type CustomerDetails struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}
