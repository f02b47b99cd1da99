package errx

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	// SystemErrorMessage is a user-facing fallback when internal errors occur.
	SystemErrorMessage = "internal server error"

	// Storefront validation messages. The notification ones are part of the
	// order-notification wire contract and must not change.
	MissingMessageMessage   = "Message is required"
	InvalidRecipientMessage = "Invalid recipient type or missing phone number"
	NotificationFailMessage = "Failed to send notification"
	InvalidQuantityMessage  = "quantity must be a positive integer"
	ProductNotFoundMessage  = "product not found"
	EmptyCartMessage        = "cart is empty"
	InvalidRequestMessage   = "invalid request body"
	MissingProductIDMessage = "product id is required"
	ToolCallLimitMessage    = "too many tool calls in one request"
)

var (
	// ErrMissingMessage is returned when a notification has no message body.
	ErrMissingMessage = New(nil, http.StatusBadRequest, MissingMessageMessage)
	// ErrInvalidRecipient is returned for an unknown recipient type or a
	// customer notification without a phone number.
	ErrInvalidRecipient = New(nil, http.StatusBadRequest, InvalidRecipientMessage)
	// ErrInvalidQuantity is returned when a cart addition carries a quantity below one.
	ErrInvalidQuantity = New(nil, http.StatusBadRequest, InvalidQuantityMessage)
	// ErrMissingProductID is returned when a state-manager call has no product identifier.
	ErrMissingProductID = New(nil, http.StatusBadRequest, MissingProductIDMessage)
	// ErrProductNotFound is returned when an identifier is not in the catalog.
	ErrProductNotFound = New(nil, http.StatusNotFound, ProductNotFoundMessage)
	// ErrEmptyCart is returned when checkout is attempted without cart lines.
	ErrEmptyCart = New(nil, http.StatusBadRequest, EmptyCartMessage)
	// ErrInvalidRequest is returned when a request body or query cannot be decoded.
	ErrInvalidRequest = New(nil, http.StatusBadRequest, InvalidRequestMessage)
	// ErrToolCallLimit is returned when an assistant request carries more tool calls than allowed.
	ErrToolCallLimit = New(nil, http.StatusBadRequest, ToolCallLimitMessage)
)

// AppError wraps an underlying error with an HTTP status and safe message.
type AppError struct {
	Err     error
	Status  int
	Message string
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

// Unwrap exposes the underlying error for errors.Is / errors.As support.
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is matches another AppError carrying the same status and message, so the
// package sentinels work with errors.Is even when wrapped with a cause.
func (e *AppError) Is(target error) bool {
	var t *AppError
	if errors.As(target, &t) {
		return t.Status == e.Status && t.Message == e.Message
	}
	return false
}

// New creates a new AppError with the provided information.
func New(err error, status int, message string) *AppError {
	return &AppError{
		Err:     err,
		Status:  status,
		Message: message,
	}
}

// Wrap attaches a cause to one of the package sentinels.
func Wrap(sentinel *AppError, err error) *AppError {
	return New(err, sentinel.Status, sentinel.Message)
}

// Internal wraps an unexpected failure with a 500 status.
func Internal(err error) error {
	if err == nil {
		return nil
	}
	return New(err, http.StatusInternalServerError, SystemErrorMessage)
}

// StatusOf returns the HTTP status carried by err, or 500 when err is not an AppError.
func StatusOf(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Status
	}
	return http.StatusInternalServerError
}

// MessageOf returns the safe message carried by err, or the system fallback.
func MessageOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return SystemErrorMessage
}
