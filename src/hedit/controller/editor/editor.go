// Package editor orchestrates editing sessions: session lifecycle, the edit
// pipeline with undo and redo, and language server backed validation.
package editor

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gofrs/uuid"
	"github.com/uber-go/tally"
	"go.lsp.dev/protocol"
	"go.lsp.dev/uri"
	"go.uber.org/config"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/oakenai/hedit/src/hedit/controller/document"
	"github.com/oakenai/hedit/src/hedit/entity"
	"github.com/oakenai/hedit/src/hedit/gateway/langserver"
	"github.com/oakenai/hedit/src/hedit/internal/clock"
	"github.com/oakenai/hedit/src/hedit/internal/errors"
	"github.com/oakenai/hedit/src/hedit/mapper"
	"github.com/oakenai/hedit/src/hedit/repository/session"
)

const (
	_nameKey = "editor"

	_configKeyFailOnWarnings = "editor.failOnWarnings"
	_configKeyMaxFileSize    = "editor.maxFileSizeBytes"
	_configKeySweepInterval  = "session.sweepIntervalMs"
	_configKeyIdleTimeout    = "session.idleTimeoutMs"

	_defaultSweepInterval = 5 * time.Minute
	_defaultIdleTimeout   = 30 * time.Minute
)

// _languagesByExtension detects a language id from the file extension when
// the caller does not provide one.
var _languagesByExtension = map[string]protocol.LanguageIdentifier{
	".go":   "go",
	".ts":   "typescript",
	".tsx":  "typescriptreact",
	".js":   "javascript",
	".jsx":  "javascriptreact",
	".py":   "python",
	".rs":   "rust",
	".java": "java",
	".c":    "c",
	".cpp":  "cpp",
	".rb":   "ruby",
	".json": "json",
	".yaml": "yaml",
	".yml":  "yaml",
	".md":   "markdown",
}

// Controller defines the editing session surface exposed to callers.
type Controller interface {
	// CreateSession opens the file and returns a new session over it.
	CreateSession(ctx context.Context, params *entity.CreateSessionParams) (*entity.CreateSessionResult, error)
	// ApplyEdit runs one structural edit through the pipeline.
	ApplyEdit(ctx context.Context, sessionID uuid.UUID, op *entity.EditOperation) (*entity.EditResult, error)
	// Undo reverts the session's most recent edit exactly.
	Undo(ctx context.Context, sessionID uuid.UUID) (*entity.EditResult, error)
	// Redo replays the most recently undone edit.
	Redo(ctx context.Context, sessionID uuid.UUID) (*entity.EditResult, error)
	// Validate re-runs diagnostics without mutating the document.
	Validate(ctx context.Context, sessionID uuid.UUID) (*entity.ValidateResult, error)
	// Save flushes the session's document to storage.
	Save(ctx context.Context, sessionID uuid.UUID) (*entity.SaveResult, error)
	// CloseSession flushes and tears the session down. Closing twice fails.
	CloseSession(ctx context.Context, sessionID uuid.UUID) (*entity.CloseSessionResult, error)
	// Format applies language server formatting to the session's document.
	Format(ctx context.Context, sessionID uuid.UUID, options protocol.FormattingOptions) (*entity.FormatResult, error)
	// Definition resolves definition locations for a position in the document.
	Definition(ctx context.Context, sessionID uuid.UUID, position protocol.Position) ([]protocol.Location, error)
}

// Params are inbound parameters to initialize the editor controller.
type Params struct {
	fx.In

	Config    config.Provider
	Lifecycle fx.Lifecycle
	Logger    *zap.SugaredLogger
	Stats     tally.Scope
	Sessions  session.Repository
	Documents document.Controller
	Clock     clock.Clock
}

type controller struct {
	logger    *zap.SugaredLogger
	stats     tally.Scope
	sessions  session.Repository
	documents document.Controller
	clock     clock.Clock

	failOnWarnings   bool
	maxFileSizeBytes int64
	sweepInterval    time.Duration
	idleTimeout      time.Duration

	// locks holds one mutation mutex per session so edits on the same
	// session serialize while distinct sessions proceed in parallel.
	locks sync.Map

	done chan struct{}
}

// New creates the editor controller and starts the idle session sweeper.
func New(p Params) (Controller, error) {
	c := &controller{
		logger:        p.Logger.With("controller", _nameKey),
		stats:         p.Stats.SubScope(_nameKey),
		sessions:      p.Sessions,
		documents:     p.Documents,
		clock:         p.Clock,
		sweepInterval: _defaultSweepInterval,
		idleTimeout:   _defaultIdleTimeout,
		done:          make(chan struct{}),
	}

	if err := c.processConfig(p.Config); err != nil {
		return nil, err
	}

	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go c.sweepIdleSessions()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			close(c.done)
			return nil
		},
	})

	return c, nil
}

func (c *controller) processConfig(cfg config.Provider) error {
	if err := cfg.Get(_configKeyFailOnWarnings).Populate(&c.failOnWarnings); err != nil {
		return fmt.Errorf("getting config field %q: %w", _configKeyFailOnWarnings, err)
	}
	if err := cfg.Get(_configKeyMaxFileSize).Populate(&c.maxFileSizeBytes); err != nil {
		return fmt.Errorf("getting config field %q: %w", _configKeyMaxFileSize, err)
	}

	var sweepMs int
	if err := cfg.Get(_configKeySweepInterval).Populate(&sweepMs); err == nil && sweepMs > 0 {
		c.sweepInterval = time.Duration(sweepMs) * time.Millisecond
	}
	var idleMs int
	if err := cfg.Get(_configKeyIdleTimeout).Populate(&idleMs); err == nil && idleMs > 0 {
		c.idleTimeout = time.Duration(idleMs) * time.Millisecond
	}
	return nil
}

// sessionLock returns the mutation mutex for the given session.
func (c *controller) sessionLock(id uuid.UUID) *sync.Mutex {
	lock, _ := c.locks.LoadOrStore(id, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

// detectLanguage resolves the language id for a file, preferring the caller's
// override over extension based detection.
func detectLanguage(filePath, override string) protocol.LanguageIdentifier {
	if override != "" {
		return protocol.LanguageIdentifier(override)
	}
	ext := strings.ToLower(filepath.Ext(filePath))
	if languageID, ok := _languagesByExtension[ext]; ok {
		return languageID
	}
	return "plaintext"
}

func (c *controller) CreateSession(ctx context.Context, params *entity.CreateSessionParams) (*entity.CreateSessionResult, error) {
	languageID := detectLanguage(params.FilePath, params.LanguageID)

	doc, validation, err := c.documents.Open(ctx, params.FilePath, languageID)
	if err != nil {
		return nil, err
	}

	id, err := uuid.NewV4()
	if err != nil {
		return nil, &errors.SessionCreateError{FilePath: doc.Path, Err: err}
	}

	sess := mapper.UUIDToSession(id, doc.Path, languageID, c.clock.Now())
	if err := c.sessions.Set(ctx, sess); err != nil {
		c.documents.Close(ctx, doc.URI)
		return nil, &errors.SessionCreateError{FilePath: doc.Path, Err: err}
	}

	c.stats.Counter("sessions_created").Inc(1)
	c.logger.Infow("created session",
		zap.Stringer("uuid", id),
		zap.String("filePath", doc.Path),
		zap.String("language", string(languageID)))

	return &entity.CreateSessionResult{
		SessionID:   id,
		FilePath:    doc.Path,
		LanguageID:  languageID,
		Version:     doc.Version,
		Diagnostics: validation.Diagnostics,
	}, nil
}

func (c *controller) ApplyEdit(ctx context.Context, sessionID uuid.UUID, op *entity.EditOperation) (*entity.EditResult, error) {
	lock := c.sessionLock(sessionID)
	lock.Lock()
	defer lock.Unlock()

	sess, err := c.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if err := op.Validate(); err != nil {
		return nil, err
	}

	docURI := uri.File(sess.FilePath)
	doc, err := c.documents.Get(ctx, docURI)
	if err != nil {
		return nil, err
	}

	edit, err := mapper.OperationToTextEdit(op, []byte(doc.Text))
	if err != nil {
		return nil, err
	}
	inverse, err := mapper.InverseTextEdit(doc.Text, edit)
	if err != nil {
		return nil, err
	}

	updated, validation, err := c.documents.ApplyEdits(ctx, docURI, []protocol.TextEdit{edit})
	if err != nil {
		return nil, err
	}

	sess.History.Append(entity.HistoryEntry{Forward: edit, Inverse: inverse, Version: updated.Version})
	c.touchSession(ctx, sess)

	c.stats.Counter("edits_applied").Inc(1)
	return c.editResult(edit, updated, validation), nil
}

func (c *controller) Undo(ctx context.Context, sessionID uuid.UUID) (*entity.EditResult, error) {
	lock := c.sessionLock(sessionID)
	lock.Lock()
	defer lock.Unlock()

	sess, err := c.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	entry, ok := sess.History.Undo()
	if !ok {
		return nil, errors.New("nothing to undo")
	}

	updated, validation, err := c.documents.ApplyEdits(ctx, uri.File(sess.FilePath), []protocol.TextEdit{entry.Inverse})
	if err != nil {
		// Restore the cursor so the entry stays undoable.
		sess.History.Redo()
		c.touchSession(ctx, sess)
		return nil, err
	}
	c.touchSession(ctx, sess)

	c.stats.Counter("edits_undone").Inc(1)
	return c.editResult(entry.Inverse, updated, validation), nil
}

func (c *controller) Redo(ctx context.Context, sessionID uuid.UUID) (*entity.EditResult, error) {
	lock := c.sessionLock(sessionID)
	lock.Lock()
	defer lock.Unlock()

	sess, err := c.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	entry, ok := sess.History.Redo()
	if !ok {
		return nil, errors.New("nothing to redo")
	}

	updated, validation, err := c.documents.ApplyEdits(ctx, uri.File(sess.FilePath), []protocol.TextEdit{entry.Forward})
	if err != nil {
		sess.History.Undo()
		c.touchSession(ctx, sess)
		return nil, err
	}
	c.touchSession(ctx, sess)

	c.stats.Counter("edits_redone").Inc(1)
	return c.editResult(entry.Forward, updated, validation), nil
}

func (c *controller) Validate(ctx context.Context, sessionID uuid.UUID) (*entity.ValidateResult, error) {
	sess, err := c.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	validation, err := c.documents.Validate(ctx, uri.File(sess.FilePath))
	if err != nil {
		return nil, err
	}
	c.touchSession(ctx, sess)

	return &entity.ValidateResult{
		Success:     !validation.TimedOut && !c.hasGatingDiagnostics(validation.Diagnostics),
		Diagnostics: validation.Diagnostics,
		TimedOut:    validation.TimedOut,
	}, nil
}

func (c *controller) Save(ctx context.Context, sessionID uuid.UUID) (*entity.SaveResult, error) {
	lock := c.sessionLock(sessionID)
	lock.Lock()
	defer lock.Unlock()

	sess, err := c.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	docURI := uri.File(sess.FilePath)
	saved, err := c.documents.Save(ctx, docURI)
	if err != nil {
		return nil, err
	}
	doc, err := c.documents.Get(ctx, docURI)
	if err != nil {
		return nil, err
	}
	c.touchSession(ctx, sess)

	return &entity.SaveResult{Saved: saved, Version: doc.Version}, nil
}

func (c *controller) CloseSession(ctx context.Context, sessionID uuid.UUID) (*entity.CloseSessionResult, error) {
	lock := c.sessionLock(sessionID)
	lock.Lock()
	defer lock.Unlock()

	sess, err := c.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	saved, err := c.documents.Close(ctx, uri.File(sess.FilePath))
	if err != nil {
		return nil, err
	}

	if err := c.sessions.Delete(ctx, sessionID); err != nil {
		return nil, err
	}
	c.locks.Delete(sessionID)

	c.stats.Counter("sessions_closed").Inc(1)
	c.logger.Infow("closed session", zap.Stringer("uuid", sessionID))
	return &entity.CloseSessionResult{Saved: saved}, nil
}

func (c *controller) Format(ctx context.Context, sessionID uuid.UUID, options protocol.FormattingOptions) (*entity.FormatResult, error) {
	lock := c.sessionLock(sessionID)
	lock.Lock()
	defer lock.Unlock()

	sess, err := c.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	doc, edits, err := c.documents.Format(ctx, uri.File(sess.FilePath), options)
	if err != nil {
		return nil, err
	}
	c.touchSession(ctx, sess)

	return &entity.FormatResult{Version: doc.Version, Edits: edits}, nil
}

func (c *controller) Definition(ctx context.Context, sessionID uuid.UUID, position protocol.Position) ([]protocol.Location, error) {
	sess, err := c.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return c.documents.Definition(ctx, uri.File(sess.FilePath), position)
}

// touchSession records activity and promotes a freshly created session to active.
func (c *controller) touchSession(ctx context.Context, sess *entity.Session) {
	sess.Touch(c.clock.Now())
	if sess.State == entity.SessionStateCreated {
		sess.State = entity.SessionStateActive
	}
	if err := c.sessions.Set(ctx, sess); err != nil {
		c.logger.Warnw("updating session activity", zap.Stringer("uuid", sess.UUID), zap.Error(err))
	}
}

func (c *controller) editResult(edit protocol.TextEdit, doc *document.Document, validation langserver.ValidationResult) *entity.EditResult {
	return &entity.EditResult{
		Success:     !validation.TimedOut && !c.hasGatingDiagnostics(validation.Diagnostics),
		Version:     doc.Version,
		AppliedEdit: edit,
		Diagnostics: validation.Diagnostics,
		Warnings:    c.advisoryWarnings(doc.Text),
		TimedOut:    validation.TimedOut,
	}
}

// hasGatingDiagnostics reports whether any diagnostic is severe enough to fail
// the edit under the configured policy.
func (c *controller) hasGatingDiagnostics(diagnostics []protocol.Diagnostic) bool {
	gating := protocol.DiagnosticSeverityError
	if c.failOnWarnings {
		gating = protocol.DiagnosticSeverityWarning
	}
	for _, d := range diagnostics {
		if d.Severity != 0 && d.Severity <= gating {
			return true
		}
	}
	return false
}

// advisoryWarnings runs lightweight content checks that never fail an edit.
func (c *controller) advisoryWarnings(text string) []string {
	var warnings []string
	if c.maxFileSizeBytes > 0 && int64(len(text)) > c.maxFileSizeBytes {
		warnings = append(warnings, fmt.Sprintf("content size %d exceeds configured limit %d", len(text), c.maxFileSizeBytes))
	}
	if strings.Contains(text, "\r\n") && strings.Contains(strings.ReplaceAll(text, "\r\n", ""), "\n") {
		warnings = append(warnings, "mixed line endings")
	}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if trimmed := strings.TrimRight(line, " \t"); trimmed != line {
			warnings = append(warnings, "trailing whitespace")
			break
		}
	}
	return warnings
}

// sweepIdleSessions closes sessions with no recent activity.
func (c *controller) sweepIdleSessions() {
	ticker := time.NewTicker(c.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-c.done:
			return
		case <-ticker.C:
			cutoff := c.clock.Now().Add(-c.idleTimeout)
			ids, err := c.sessions.IdleSessions(context.Background(), cutoff)
			if err != nil {
				c.logger.Warnw("listing idle sessions", zap.Error(err))
				continue
			}
			for _, id := range ids {
				if _, err := c.CloseSession(context.Background(), id); err != nil {
					c.logger.Warnw("closing idle session", zap.Stringer("uuid", id), zap.Error(err))
					continue
				}
				c.logger.Infow("closed idle session", zap.Stringer("uuid", id))
			}
		}
	}
}
