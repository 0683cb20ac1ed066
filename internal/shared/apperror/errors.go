// Package apperror defines the error kinds services return and how they map to HTTP statuses.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindAuthorization
	KindNotFound
	KindQuotaExceeded
	KindPersistence
)

// Error carries a client-safe message. Cause is logged server-side and never serialized.
type Error struct {
	Kind    Kind
	Message string
	Cause   error

	sentinel error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func (e *Error) Is(target error) bool {
	return e.sentinel != nil && target == e.sentinel
}

func Validation(format string, args ...interface{}) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func Unauthorized(message string) *Error {
	return &Error{Kind: KindAuthorization, Message: message}
}

func NotFound(entity string) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf("%s not found", entity)}
}

func QuotaExceeded(message string) *Error {
	return &Error{Kind: KindQuotaExceeded, Message: message}
}

// Persistence wraps a storage failure behind a generic message.
func Persistence(message string, cause error) *Error {
	return &Error{Kind: KindPersistence, Message: message, Cause: cause}
}

// ErrSaleCreation is the single failure the sale engine reports for any storage step.
var ErrSaleCreation = errors.New("Failed to create sale")

func SaleCreation(cause error) *Error {
	return &Error{Kind: KindPersistence, Message: ErrSaleCreation.Error(), Cause: cause, sentinel: ErrSaleCreation}
}

func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

func Is(err error, kind Kind) bool {
	return KindOf(err) == kind
}

func StatusCode(err error) int {
	switch KindOf(err) {
	case KindValidation:
		return http.StatusBadRequest
	case KindAuthorization:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	case KindQuotaExceeded:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage is what the client sees; unknown errors never leak their text.
func PublicMessage(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return "Internal server error"
}
