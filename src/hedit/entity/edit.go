package entity

import (
	"go.lsp.dev/protocol"

	"github.com/oakenai/hedit/src/hedit/internal/errors"
)

// EditType identifies the kind of structural edit requested by a caller.
type EditType string

const (
	// EditTypeInsert inserts content at a position without replacing anything.
	EditTypeInsert EditType = "insert"
	// EditTypeDelete removes the text covered by a range.
	EditTypeDelete EditType = "delete"
	// EditTypeReplace substitutes the text covered by a range with new content.
	EditTypeReplace EditType = "replace"
)

// EditOperation is a single structural edit requested against a session's document.
// Exactly one of Position or Range locates the edit depending on Type.
type EditOperation struct {
	Type     EditType           `json:"type"`
	Content  *string            `json:"content,omitempty"`
	Position *protocol.Position `json:"position,omitempty"`
	Range    *protocol.Range    `json:"range,omitempty"`
}

// Validate checks that the operation's fields match the shape required by its type.
// Insert requires content and a location, delete requires a range and no content,
// replace requires both a range and content.
func (op *EditOperation) Validate() error {
	switch op.Type {
	case EditTypeInsert:
		if op.Content == nil {
			return &errors.OperationShapeError{Type: string(op.Type), Reason: "insert requires content"}
		}
		if op.Position == nil && op.Range == nil {
			return &errors.OperationShapeError{Type: string(op.Type), Reason: "insert requires a position or range"}
		}
	case EditTypeDelete:
		if op.Range == nil {
			return &errors.OperationShapeError{Type: string(op.Type), Reason: "delete requires a range"}
		}
		if op.Content != nil {
			return &errors.OperationShapeError{Type: string(op.Type), Reason: "delete does not accept content"}
		}
	case EditTypeReplace:
		if op.Range == nil {
			return &errors.OperationShapeError{Type: string(op.Type), Reason: "replace requires a range"}
		}
		if op.Content == nil {
			return &errors.OperationShapeError{Type: string(op.Type), Reason: "replace requires content"}
		}
	default:
		return &errors.UnsupportedOperationError{Type: string(op.Type)}
	}
	return nil
}
