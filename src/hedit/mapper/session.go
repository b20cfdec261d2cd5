// Package mapper converts between entities, models, and wire level types.
package mapper

import (
	"context"
	"time"

	"github.com/gofrs/uuid"
	"go.lsp.dev/protocol"

	"github.com/oakenai/hedit/src/hedit/entity"
	"github.com/oakenai/hedit/src/hedit/internal/errors"
	"github.com/oakenai/hedit/src/hedit/model"
)

// SessionToModel maps a Session entity to its model equivalent.
func SessionToModel(s *entity.Session) *model.Session {
	return &model.Session{
		UUID:         s.UUID,
		FilePath:     s.FilePath,
		LanguageID:   string(s.LanguageID),
		State:        string(s.State),
		CreatedAt:    s.CreatedAt,
		LastActivity: s.LastActivity,
		History:      s.History,
	}
}

// ModelToSession maps a model Session to its entity equivalent.
func ModelToSession(s *model.Session) (*entity.Session, error) {
	return &entity.Session{
		UUID:         s.UUID,
		FilePath:     s.FilePath,
		LanguageID:   protocol.LanguageIdentifier(s.LanguageID),
		State:        entity.SessionState(s.State),
		CreatedAt:    s.CreatedAt,
		LastActivity: s.LastActivity,
		History:      s.History,
	}, nil
}

// UUIDToSession initializes a new Session entity with the assigned uuid.
func UUIDToSession(u uuid.UUID, filePath string, languageID protocol.LanguageIdentifier, now time.Time) *entity.Session {
	return &entity.Session{
		UUID:         u,
		FilePath:     filePath,
		LanguageID:   languageID,
		State:        entity.SessionStateCreated,
		CreatedAt:    now,
		LastActivity: now,
		History:      entity.NewEditHistory(entity.DefaultHistoryLimit),
	}
}

// ContextToSessionUUID extracts the UUID from a context.
func ContextToSessionUUID(c context.Context) (uuid.UUID, error) {
	s, ok := c.Value(entity.SessionContextKey).(uuid.UUID)
	if !ok {
		return uuid.Nil, &errors.NoSessionFoundError{}
	}
	return s, nil
}
