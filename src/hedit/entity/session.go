// Package entity contains the domain logic for the hedit-daemon service.
package entity

import (
	"time"

	"github.com/gofrs/uuid"
	"go.lsp.dev/protocol"
)

type keyType string

// SessionContextKey indicates the key to be used to identify the session UUID in the context.
const SessionContextKey keyType = "SessionUUID"

// SessionState describes where a session is in its lifecycle.
type SessionState string

const (
	// SessionStateCreated indicates the session exists but has not seen an edit or validation yet.
	SessionStateCreated SessionState = "created"
	// SessionStateActive indicates the session's document is open and accepting edits.
	SessionStateActive SessionState = "active"
	// SessionStateClosed indicates the session has been closed and can no longer be used.
	SessionStateClosed SessionState = "closed"
)

// Session entity representing a single editing session over one file.
type Session struct {
	UUID         uuid.UUID                   `json:"uuid" zap:"uuid"`
	FilePath     string                      `json:"filePath" zap:"filePath"`
	LanguageID   protocol.LanguageIdentifier `json:"languageId" zap:"languageId"`
	State        SessionState                `json:"state" zap:"state"`
	CreatedAt    time.Time                   `json:"createdAt" zap:"createdAt"`
	LastActivity time.Time                   `json:"lastActivity" zap:"lastActivity"`
	History      *EditHistory                `json:"-" zap:"-"`
}

// Touch records activity on the session, deferring idle cleanup.
func (s *Session) Touch(now time.Time) {
	s.LastActivity = now
}
