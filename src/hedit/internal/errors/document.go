package errors

import (
	"fmt"

	"go.lsp.dev/uri"
)

// DocumentNotFoundError indicates that a document is not open.
type DocumentNotFoundError struct {
	URI uri.URI
}

// Error is an implementation of the error interface.
func (n *DocumentNotFoundError) Error() string {
	return fmt.Sprintf("document %q not found", n.URI)
}

// Code returns the machine-readable code for this error.
func (n *DocumentNotFoundError) Code() Code {
	return CodeDocumentNotFound
}

// DocumentAlreadyOpenError indicates a duplicate open of the same document.
type DocumentAlreadyOpenError struct {
	URI uri.URI
}

// Error is an implementation of the error interface.
func (a *DocumentAlreadyOpenError) Error() string {
	return fmt.Sprintf("document %q is already open", a.URI)
}

// Code returns the machine-readable code for this error.
func (a *DocumentAlreadyOpenError) Code() Code {
	return CodeAlreadyOpen
}

// DocumentSizeLimitError indicates content that exceeds the configured size limit.
type DocumentSizeLimitError struct {
	Size  int64
	Limit int64
}

// Error is an implementation of the error interface.
func (n *DocumentSizeLimitError) Error() string {
	return fmt.Sprintf("size of %d bytes exceeds permitted limit of %d", n.Size, n.Limit)
}

// Code returns the machine-readable code for this error.
func (n *DocumentSizeLimitError) Code() Code {
	return CodeDocumentSizeLimit
}

// DocumentConflictError indicates that the document changed while an edit was
// being validated, so the edit was not committed.
type DocumentConflictError struct {
	URI uri.URI
}

// Error is an implementation of the error interface.
func (c *DocumentConflictError) Error() string {
	return fmt.Sprintf("document %q changed during validation", c.URI)
}

// Code returns the machine-readable code for this error.
func (c *DocumentConflictError) Code() Code {
	return CodeDocumentConflict
}
