package entity

import (
	"github.com/gofrs/uuid"
	"go.lsp.dev/protocol"
)

// CreateSessionParams are the caller supplied parameters for session/create.
type CreateSessionParams struct {
	FilePath string `json:"filePath"`
	// LanguageID overrides extension based detection when set.
	LanguageID string `json:"languageId,omitempty"`
}

// CreateSessionResult describes a newly created session.
type CreateSessionResult struct {
	SessionID   uuid.UUID                   `json:"sessionId"`
	FilePath    string                      `json:"filePath"`
	LanguageID  protocol.LanguageIdentifier `json:"languageId"`
	Version     int32                       `json:"version"`
	Diagnostics []protocol.Diagnostic       `json:"diagnostics"`
}

// SessionParams identify an existing session for operations that need nothing else.
type SessionParams struct {
	SessionID uuid.UUID `json:"sessionId"`
}

// EditParams are the caller supplied parameters for session/edit.
type EditParams struct {
	SessionID uuid.UUID     `json:"sessionId"`
	Operation EditOperation `json:"operation"`
}

// EditResult reports the outcome of an applied, undone, or redone edit.
// Success is false when gating severity diagnostics remain or the
// diagnostics wait timed out.
type EditResult struct {
	Success     bool                  `json:"success"`
	Version     int32                 `json:"version"`
	AppliedEdit protocol.TextEdit     `json:"appliedEdit"`
	Diagnostics []protocol.Diagnostic `json:"diagnostics"`
	Warnings    []string              `json:"warnings,omitempty"`
	TimedOut    bool                  `json:"timedOut,omitempty"`
}

// ValidateResult reports diagnostics from a validation pass without mutation.
type ValidateResult struct {
	Success     bool                  `json:"success"`
	Diagnostics []protocol.Diagnostic `json:"diagnostics"`
	TimedOut    bool                  `json:"timedOut,omitempty"`
}

// SaveResult reports whether a save reached storage.
type SaveResult struct {
	Saved   bool  `json:"saved"`
	Version int32 `json:"version"`
}

// CloseSessionResult reports the final flush performed while closing.
type CloseSessionResult struct {
	Saved bool `json:"saved"`
}

// FormatResult reports the edits applied by a formatting pass.
type FormatResult struct {
	Version int32               `json:"version"`
	Edits   []protocol.TextEdit `json:"edits"`
}

// FormatParams are the caller supplied parameters for document/format.
type FormatParams struct {
	SessionID uuid.UUID                  `json:"sessionId"`
	Options   protocol.FormattingOptions `json:"options,omitempty"`
}

// DefinitionParams are the caller supplied parameters for document/definition.
type DefinitionParams struct {
	SessionID uuid.UUID         `json:"sessionId"`
	Position  protocol.Position `json:"position"`
}
