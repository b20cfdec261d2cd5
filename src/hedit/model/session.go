// Package model contains the repository layer models for the hedit-daemon service.
package model

import (
	"time"

	"github.com/gofrs/uuid"

	"github.com/oakenai/hedit/src/hedit/entity"
)

// Session is the repository layer model for an individual editing session.
// History is shared with the entity so undo state survives round trips
// through the store.
type Session struct {
	UUID         uuid.UUID
	FilePath     string
	LanguageID   string
	State        string
	CreatedAt    time.Time
	LastActivity time.Time
	History      *entity.EditHistory
}
