package errors

import stderr "errors"

// New returns an error that formats as the given text.
// Each call to New returns a distinct error value even if the text is identical.
func New(msg string) error {
	return stderr.New(msg)
}

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool {
	return stderr.As(err, target)
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return stderr.Is(err, target)
}

// Code is a stable machine-readable identifier for an error kind.
// Callers branch on codes, never on message text.
type Code string

const (
	// CodePathNotAllowed indicates a path outside the configured allowed roots.
	CodePathNotAllowed Code = "PathNotAllowed"
	// CodeFileNotFound indicates a missing file.
	CodeFileNotFound Code = "FileNotFound"
	// CodeReadWriteFailure indicates a low-level storage read or write failure.
	CodeReadWriteFailure Code = "ReadWriteFailure"
	// CodeSessionNotFound indicates an unknown or already closed session id.
	CodeSessionNotFound Code = "SessionNotFound"
	// CodeSessionCreateFailure indicates that session creation failed.
	CodeSessionCreateFailure Code = "SessionCreateFailure"
	// CodeInvalidOperationShape indicates an edit operation missing required fields.
	CodeInvalidOperationShape Code = "InvalidOperationShape"
	// CodeUnsupportedOperationType indicates an edit operation of unknown type.
	CodeUnsupportedOperationType Code = "UnsupportedOperationType"
	// CodeOutOfBoundsPosition indicates a position beyond the document extents.
	CodeOutOfBoundsPosition Code = "OutOfBoundsPosition"
	// CodeInvalidRange indicates a range whose end precedes its start.
	CodeInvalidRange Code = "InvalidRange"
	// CodeNotInitialized indicates a language server call before the handshake completed.
	CodeNotInitialized Code = "NotInitialized"
	// CodeStartupFailure indicates that a language server subprocess could not be started.
	CodeStartupFailure Code = "StartupFailure"
	// CodeRequestFailure indicates a failed language server request.
	CodeRequestFailure Code = "RequestFailure"
	// CodeAlreadyRunning indicates a duplicate language server start.
	CodeAlreadyRunning Code = "AlreadyRunning"
	// CodeConfigNotFound indicates a language id with no configured server.
	CodeConfigNotFound Code = "ConfigNotFound"
	// CodeDocumentNotFound indicates a document that is not open.
	CodeDocumentNotFound Code = "DocumentNotFound"
	// CodeAlreadyOpen indicates a document that is already open.
	CodeAlreadyOpen Code = "AlreadyOpen"
	// CodeDocumentSizeLimit indicates content exceeding the configured size limit.
	CodeDocumentSizeLimit Code = "DocumentSizeLimit"
	// CodeDocumentConflict indicates a commit against a snapshot that changed mid-flight.
	CodeDocumentConflict Code = "DocumentConflict"
	// CodeInternal is the fallback for errors that carry no code of their own.
	CodeInternal Code = "Internal"
)

// Coder is implemented by all typed errors in this package.
type Coder interface {
	error
	Code() Code
}

// CodeOf extracts the machine-readable code from an error chain.
// Errors that never received a code report CodeInternal.
func CodeOf(err error) Code {
	var c Coder
	if stderr.As(err, &c) {
		return c.Code()
	}
	return CodeInternal
}
