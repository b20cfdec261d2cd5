package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.lsp.dev/protocol"

	"github.com/oakenai/hedit/src/hedit/internal/errors"
)

func strPtr(s string) *string { return &s }

func TestEditOperationValidate(t *testing.T) {
	pos := &protocol.Position{Line: 1, Character: 2}
	rng := &protocol.Range{Start: protocol.Position{Line: 0}, End: protocol.Position{Line: 1}}

	tests := []struct {
		name     string
		op       EditOperation
		wantCode errors.Code
	}{
		{
			name: "insert with content and position",
			op:   EditOperation{Type: EditTypeInsert, Content: strPtr("x"), Position: pos},
		},
		{
			name: "insert with content and range",
			op:   EditOperation{Type: EditTypeInsert, Content: strPtr("x"), Range: rng},
		},
		{
			name:     "insert without content",
			op:       EditOperation{Type: EditTypeInsert, Position: pos},
			wantCode: errors.CodeInvalidOperationShape,
		},
		{
			name:     "insert without location",
			op:       EditOperation{Type: EditTypeInsert, Content: strPtr("x")},
			wantCode: errors.CodeInvalidOperationShape,
		},
		{
			name: "delete with range",
			op:   EditOperation{Type: EditTypeDelete, Range: rng},
		},
		{
			name:     "delete without range",
			op:       EditOperation{Type: EditTypeDelete},
			wantCode: errors.CodeInvalidOperationShape,
		},
		{
			name:     "delete with content",
			op:       EditOperation{Type: EditTypeDelete, Range: rng, Content: strPtr("x")},
			wantCode: errors.CodeInvalidOperationShape,
		},
		{
			name: "replace with range and content",
			op:   EditOperation{Type: EditTypeReplace, Range: rng, Content: strPtr("x")},
		},
		{
			name:     "replace without content",
			op:       EditOperation{Type: EditTypeReplace, Range: rng},
			wantCode: errors.CodeInvalidOperationShape,
		},
		{
			name:     "replace without range",
			op:       EditOperation{Type: EditTypeReplace, Content: strPtr("x")},
			wantCode: errors.CodeInvalidOperationShape,
		},
		{
			name:     "unknown type",
			op:       EditOperation{Type: "move", Range: rng},
			wantCode: errors.CodeUnsupportedOperationType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.op.Validate()
			if tt.wantCode == "" {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			assert.Equal(t, tt.wantCode, errors.CodeOf(err))
		})
	}
}
