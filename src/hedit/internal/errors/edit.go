package errors

import (
	"fmt"

	"go.lsp.dev/protocol"
)

// OperationShapeError indicates an edit operation missing fields required by its type.
type OperationShapeError struct {
	Type   string
	Reason string
}

// Error is an implementation of the error interface.
func (o *OperationShapeError) Error() string {
	return fmt.Sprintf("invalid %q operation: %s", o.Type, o.Reason)
}

// Code returns the machine-readable code for this error.
func (o *OperationShapeError) Code() Code {
	return CodeInvalidOperationShape
}

// UnsupportedOperationError indicates an edit operation of unknown type.
type UnsupportedOperationError struct {
	Type string
}

// Error is an implementation of the error interface.
func (u *UnsupportedOperationError) Error() string {
	return fmt.Sprintf("unsupported operation type %q", u.Type)
}

// Code returns the machine-readable code for this error.
func (u *UnsupportedOperationError) Code() Code {
	return CodeUnsupportedOperationType
}

// OutOfBoundsError indicates a position beyond the document's line or character extents.
type OutOfBoundsError struct {
	Position protocol.Position
	Lines    int
}

// Error is an implementation of the error interface.
func (o *OutOfBoundsError) Error() string {
	return fmt.Sprintf("position %d:%d is outside a document of %d lines", o.Position.Line, o.Position.Character, o.Lines)
}

// Code returns the machine-readable code for this error.
func (o *OutOfBoundsError) Code() Code {
	return CodeOutOfBoundsPosition
}

// InvalidRangeError indicates a range whose end precedes its start.
type InvalidRangeError struct {
	Range protocol.Range
}

// Error is an implementation of the error interface.
func (i *InvalidRangeError) Error() string {
	return fmt.Sprintf("range end %d:%d precedes start %d:%d",
		i.Range.End.Line, i.Range.End.Character, i.Range.Start.Line, i.Range.Start.Character)
}

// Code returns the machine-readable code for this error.
func (i *InvalidRangeError) Code() Code {
	return CodeInvalidRange
}
