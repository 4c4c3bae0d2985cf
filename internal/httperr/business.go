package httperr

import (
	"errors"
	"fmt"
)

type Kind int

const (
	KindValidation Kind = iota + 1
	KindNotFound
	KindConflict
	KindUnauthorized
	KindUnavailable
	KindTooLarge
)

// BusinessError is an expected failure the caller can act on.
type BusinessError struct {
	Kind    Kind
	Code    string
	Message string
	Details map[string]string
}

func (e BusinessError) Error() string {
	if e.Message == "" {
		return e.Code
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func ErrValidation(code, message string) error {
	return BusinessError{Kind: KindValidation, Code: code, Message: message}
}

// ErrInvalidFields carries field-level detail, keyed by JSON field path.
func ErrInvalidFields(details map[string]string) error {
	return BusinessError{
		Kind:    KindValidation,
		Code:    "invalid_request",
		Message: "Request validation failed.",
		Details: details,
	}
}

func ErrNotFound(code, message string) error {
	return BusinessError{Kind: KindNotFound, Code: code, Message: message}
}

func ErrConflict(code, message string) error {
	return BusinessError{Kind: KindConflict, Code: code, Message: message}
}

func ErrUnauthorized(code, message string) error {
	return BusinessError{Kind: KindUnauthorized, Code: code, Message: message}
}

func ErrUnavailable(code, message string) error {
	return BusinessError{Kind: KindUnavailable, Code: code, Message: message}
}

func ErrTooLarge(code, message string) error {
	return BusinessError{Kind: KindTooLarge, Code: code, Message: message}
}

func AsBusiness(err error) (BusinessError, bool) {
	var be BusinessError
	if errors.As(err, &be) {
		return be, true
	}
	return BusinessError{}, false
}

func IsBusiness(err error, code string) bool {
	be, ok := AsBusiness(err)
	return ok && be.Code == code
}

func IsKind(err error, kind Kind) bool {
	be, ok := AsBusiness(err)
	return ok && be.Kind == kind
}
