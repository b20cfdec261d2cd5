package errors

import (
	"fmt"

	"go.lsp.dev/protocol"
)

// NotInitializedError indicates a language server call before the handshake completed.
type NotInitializedError struct {
	Language protocol.LanguageIdentifier
}

// Error is an implementation of the error interface.
func (n *NotInitializedError) Error() string {
	return fmt.Sprintf("language server for %q is not initialized", n.Language)
}

// Code returns the machine-readable code for this error.
func (n *NotInitializedError) Code() Code {
	return CodeNotInitialized
}

// StartupError indicates that a language server subprocess could not be
// spawned or that its handshake failed.
type StartupError struct {
	Language protocol.LanguageIdentifier
	Err      error
}

// Error is an implementation of the error interface.
func (s *StartupError) Error() string {
	return fmt.Sprintf("starting language server for %q: %v", s.Language, s.Err)
}

// Unwrap exposes the underlying cause.
func (s *StartupError) Unwrap() error {
	return s.Err
}

// Code returns the machine-readable code for this error.
func (s *StartupError) Code() Code {
	return CodeStartupFailure
}

// RequestError wraps a failed language server request with its method.
type RequestError struct {
	Method string
	Err    error
}

// Error is an implementation of the error interface.
func (r *RequestError) Error() string {
	return fmt.Sprintf("language server request %q: %v", r.Method, r.Err)
}

// Unwrap exposes the underlying cause.
func (r *RequestError) Unwrap() error {
	return r.Err
}

// Code returns the machine-readable code for this error.
func (r *RequestError) Code() Code {
	return CodeRequestFailure
}

// AlreadyRunningError indicates a duplicate start for a language id.
type AlreadyRunningError struct {
	Language protocol.LanguageIdentifier
}

// Error is an implementation of the error interface.
func (a *AlreadyRunningError) Error() string {
	return fmt.Sprintf("language server for %q is already running", a.Language)
}

// Code returns the machine-readable code for this error.
func (a *AlreadyRunningError) Code() Code {
	return CodeAlreadyRunning
}

// ConfigNotFoundError indicates a language id with no configured server command.
type ConfigNotFoundError struct {
	Language protocol.LanguageIdentifier
}

// Error is an implementation of the error interface.
func (c *ConfigNotFoundError) Error() string {
	return fmt.Sprintf("no language server configured for %q", c.Language)
}

// Code returns the machine-readable code for this error.
func (c *ConfigNotFoundError) Code() Code {
	return CodeConfigNotFound
}
