package common

import (
	"errors"
	"fmt"
)

// Business logic errors
var (
	// General errors
	ErrNotFound  = errors.New("resource not found")
	ErrForbidden = errors.New("forbidden")

	// Auth errors
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")

	// Content errors
	ErrPostNotFound     = errors.New("post not found")
	ErrPageNotFound     = errors.New("page not found")
	ErrProductNotFound  = errors.New("product not found")
	ErrRevisionNotFound = errors.New("revision not found")

	// Scheduling errors
	ErrInvalidSchedule = errors.New("scheduled time must be in the future")

	// Validation errors
	ErrInvalidInput = errors.New("invalid input")
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("expired token")
)

// UnknownContentTypeError names the offending content type. Hitting this is
// a programming or input error, never silently ignored.
type UnknownContentTypeError struct {
	ContentType string
}

func (e *UnknownContentTypeError) Error() string {
	return fmt.Sprintf("unknown content type: %q", e.ContentType)
}

// NewUnknownContentType creates an UnknownContentTypeError
func NewUnknownContentType(contentType string) error {
	return &UnknownContentTypeError{ContentType: contentType}
}

// IsUnknownContentType reports whether err is an UnknownContentTypeError
func IsUnknownContentType(err error) bool {
	var target *UnknownContentTypeError
	return errors.As(err, &target)
}
