package errors

import (
	stderr "errors"
	"fmt"

	"github.com/gofrs/uuid"
)

// UUIDNotFoundError is a service domain error for a missing session.
type UUIDNotFoundError struct {
	UUID uuid.UUID
}

// Error is an implementation of the error interface.
func (n *UUIDNotFoundError) Error() string {
	return fmt.Sprintf("session %q not found", n.UUID)
}

// Code returns the machine-readable code for this error.
func (n *UUIDNotFoundError) Code() Code {
	return CodeSessionNotFound
}

// NotFoundUUID returns the UUID and true if UUIDNotFoundError is part of the
// error chain.
func NotFoundUUID(e error) (_ uuid.UUID, ok bool) {
	var nf *UUIDNotFoundError
	if !stderr.As(e, &nf) {
		return uuid.Nil, false
	}
	return nf.UUID, true
}

// NoSessionFoundError indicates that a session cannot be found within the context.
type NoSessionFoundError struct{}

// Error is an implementation of the error interface.
func (n *NoSessionFoundError) Error() string {
	return "no session found in context"
}

// Code returns the machine-readable code for this error.
func (n *NoSessionFoundError) Code() Code {
	return CodeSessionNotFound
}

// SessionCreateError wraps a failure during session creation.
type SessionCreateError struct {
	FilePath string
	Err      error
}

// Error is an implementation of the error interface.
func (s *SessionCreateError) Error() string {
	return fmt.Sprintf("creating session for %q: %v", s.FilePath, s.Err)
}

// Unwrap exposes the underlying cause.
func (s *SessionCreateError) Unwrap() error {
	return s.Err
}

// Code returns the machine-readable code for this error.
func (s *SessionCreateError) Code() Code {
	return CodeSessionCreateFailure
}
