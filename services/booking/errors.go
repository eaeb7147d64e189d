package booking

import (
	"errors"
	"fmt"
)

// Rejection codes for a booking attempt. Nothing here is fatal; every
// failure resolves to a rejected booking with an explanatory reason.
const (
	CodeInvalidSlot   = "invalid_slot"
	CodeSlotTaken     = "slot_taken"
	CodeProviderError = "provider_error"
)

// BookingError carries a machine-readable rejection code alongside a
// user-facing message.
type BookingError struct {
	Code    string
	Message string
}

func (e *BookingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewInvalidSlotError(msg string) error {
	return &BookingError{Code: CodeInvalidSlot, Message: msg}
}

func NewSlotTakenError() error {
	return &BookingError{
		Code:    CodeSlotTaken,
		Message: "That slot was taken while you were deciding. Pick another time.",
	}
}

func NewProviderError(err error) error {
	return &BookingError{
		Code:    CodeProviderError,
		Message: fmt.Sprintf("calendar provider failure: %v", err),
	}
}

// ErrorCode extracts the rejection code, or "" for non-booking errors.
func ErrorCode(err error) string {
	var be *BookingError
	if errors.As(err, &be) {
		return be.Code
	}
	return ""
}
