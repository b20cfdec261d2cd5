// Package document maintains the in-memory snapshots of open documents and
// keeps the language server's view of each document in sync.
package document

import (
	"context"
	"fmt"
	"sync"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/uber-go/tally"
	"go.lsp.dev/protocol"
	"go.lsp.dev/uri"
	"go.uber.org/config"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/oakenai/hedit/src/hedit/gateway/langserver"
	"github.com/oakenai/hedit/src/hedit/internal/errors"
	"github.com/oakenai/hedit/src/hedit/internal/fs"
	"github.com/oakenai/hedit/src/hedit/internal/watcher"
	"github.com/oakenai/hedit/src/hedit/mapper"
)

const (
	_nameKey        = "document-store"
	_maxFileSizeKey = "editor.maxFileSizeBytes"

	_defaultMaxFileSizeBytes = 10 * 1024 * 1024
)

// Document is an immutable snapshot of an open document. Each committed
// edit replaces the snapshot wholesale.
type Document struct {
	URI         uri.URI
	Path        string
	LanguageID  protocol.LanguageIdentifier
	Version     int32
	Text        string
	Dirty       bool
	Stale       bool
	Diagnostics []protocol.Diagnostic
}

// Item returns the snapshot as an LSP document item.
func (d *Document) Item() protocol.TextDocumentItem {
	return protocol.TextDocumentItem{
		URI:        d.URI,
		LanguageID: d.LanguageID,
		Version:    d.Version,
		Text:       d.Text,
	}
}

// Controller defines the interface for the document store.
type Controller interface {
	// Open loads the file into a version 1 snapshot and syncs it to the
	// language server. Reopening an open document fails with AlreadyOpen.
	Open(ctx context.Context, path string, languageID protocol.LanguageIdentifier) (*Document, langserver.ValidationResult, error)
	// Get returns the current snapshot.
	Get(ctx context.Context, docURI uri.URI) (*Document, error)
	// ApplyEdits commits edits computed against the current snapshot,
	// bumping the version by one and revalidating. A failed edit leaves
	// the snapshot untouched.
	ApplyEdits(ctx context.Context, docURI uri.URI, edits []protocol.TextEdit) (*Document, langserver.ValidationResult, error)
	// Validate re-runs diagnostics for the current snapshot without mutating it.
	Validate(ctx context.Context, docURI uri.URI) (langserver.ValidationResult, error)
	// Save writes the snapshot to storage when it has unsaved changes.
	Save(ctx context.Context, docURI uri.URI) (bool, error)
	// Close flushes unsaved changes and discards the snapshot. Closing a
	// document that is not open fails.
	Close(ctx context.Context, docURI uri.URI) (bool, error)
	// Diagnostics returns the cached diagnostics from the last validation.
	Diagnostics(ctx context.Context, docURI uri.URI) ([]protocol.Diagnostic, error)
	// Format applies the language server's formatting edits through the
	// regular commit path.
	Format(ctx context.Context, docURI uri.URI, options protocol.FormattingOptions) (*Document, []protocol.TextEdit, error)
	// Definition resolves the definition locations for a position.
	Definition(ctx context.Context, docURI uri.URI, position protocol.Position) ([]protocol.Location, error)
}

// Params are inbound parameters to initialize the document store.
type Params struct {
	fx.In

	Config  config.Provider
	Logger  *zap.SugaredLogger
	Stats   tally.Scope
	FS      fs.Storage
	Servers langserver.Registry
	Watcher watcher.Watcher
}

type documentEntry struct {
	doc Document
	// watched is set once the file is registered with the change watcher.
	watched bool
	// pendingSaves counts our own writes so their watch events are not
	// mistaken for external changes.
	pendingSaves int
}

type controller struct {
	logger  *zap.SugaredLogger
	stats   tally.Scope
	fs      fs.Storage
	servers langserver.Registry
	watcher watcher.Watcher

	maxFileSizeBytes int64

	mu        sync.Mutex
	documents map[uri.URI]*documentEntry
}

// New creates the document store controller.
func New(p Params) Controller {
	maxFileSizeBytes := int64(_defaultMaxFileSizeBytes)
	if err := p.Config.Get(_maxFileSizeKey).Populate(&maxFileSizeBytes); err != nil {
		panic(fmt.Errorf("unable to get maximum file size from config: %w", err))
	}

	return &controller{
		logger:           p.Logger.With("controller", _nameKey),
		stats:            p.Stats.SubScope("document_store"),
		fs:               p.FS,
		servers:          p.Servers,
		watcher:          p.Watcher,
		maxFileSizeBytes: maxFileSizeBytes,
		documents:        make(map[uri.URI]*documentEntry),
	}
}

func (c *controller) Open(ctx context.Context, path string, languageID protocol.LanguageIdentifier) (*Document, langserver.ValidationResult, error) {
	validated, err := c.fs.ValidatePath(path)
	if err != nil {
		return nil, langserver.ValidationResult{}, err
	}
	docURI := uri.File(validated)

	c.mu.Lock()
	if _, open := c.documents[docURI]; open {
		c.mu.Unlock()
		return nil, langserver.ValidationResult{}, &errors.DocumentAlreadyOpenError{URI: docURI}
	}
	c.mu.Unlock()

	text, err := c.fs.ReadFile(validated)
	if err != nil {
		return nil, langserver.ValidationResult{}, err
	}
	if int64(len(text)) > c.maxFileSizeBytes {
		return nil, langserver.ValidationResult{}, &errors.DocumentSizeLimitError{Size: int64(len(text)), Limit: c.maxFileSizeBytes}
	}

	doc := Document{
		URI:        docURI,
		Path:       validated,
		LanguageID: languageID,
		Version:    1,
		Text:       text,
	}

	client, err := c.servers.GetServer(ctx, languageID)
	if err != nil {
		return nil, langserver.ValidationResult{}, err
	}
	validation, err := client.ValidateDocument(ctx, doc.Item())
	if err != nil {
		return nil, langserver.ValidationResult{}, err
	}
	doc.Diagnostics = validation.Diagnostics

	entry := &documentEntry{doc: doc}
	c.mu.Lock()
	if _, open := c.documents[docURI]; open {
		c.mu.Unlock()
		return nil, langserver.ValidationResult{}, &errors.DocumentAlreadyOpenError{URI: docURI}
	}
	c.documents[docURI] = entry
	c.watchLocked(entry)
	count := len(c.documents)
	c.mu.Unlock()

	c.stats.Gauge("open_documents").Update(float64(count))
	c.logger.Infow("opened document", zap.String("uri", string(docURI)), zap.String("language", string(languageID)))
	snapshot := doc
	return &snapshot, validation, nil
}

// watchLocked registers the document's file for external change detection.
// Callers must hold c.mu.
func (c *controller) watchLocked(entry *documentEntry) {
	if entry.watched {
		return
	}
	path := entry.doc.Path
	err := c.watcher.Watch(path, func(string) {
		c.markStale(path)
	})
	if err != nil {
		c.logger.Warnw("unable to watch document", zap.String("path", path), zap.Error(err))
		return
	}
	entry.watched = true
}

// markStale flags the document when its file changes outside the daemon.
func (c *controller) markStale(path string) {
	docURI := uri.File(path)

	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.documents[docURI]
	if !ok {
		return
	}
	if entry.pendingSaves > 0 {
		entry.pendingSaves--
		return
	}
	entry.doc.Stale = true
	c.stats.Counter("external_changes").Inc(1)
	c.logger.Infow("document changed on disk", zap.String("uri", string(docURI)))
}

func (c *controller) Get(ctx context.Context, docURI uri.URI) (*Document, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.documents[docURI]
	if !ok {
		return nil, &errors.DocumentNotFoundError{URI: docURI}
	}
	snapshot := entry.doc
	return &snapshot, nil
}

func (c *controller) ApplyEdits(ctx context.Context, docURI uri.URI, edits []protocol.TextEdit) (*Document, langserver.ValidationResult, error) {
	c.mu.Lock()
	entry, ok := c.documents[docURI]
	if !ok {
		c.mu.Unlock()
		return nil, langserver.ValidationResult{}, &errors.DocumentNotFoundError{URI: docURI}
	}
	base := entry.doc
	c.mu.Unlock()

	newText, err := mapper.ApplyTextEdits(base.Text, edits)
	if err != nil {
		return nil, langserver.ValidationResult{}, err
	}

	doc := base
	doc.Text = newText
	doc.Version++
	doc.Dirty = true

	// The candidate is committed only after revalidation succeeds, so a
	// language server failure leaves the stored snapshot untouched.
	client, err := c.servers.GetServer(ctx, doc.LanguageID)
	if err != nil {
		return nil, langserver.ValidationResult{}, err
	}
	validation, err := client.ValidateDocument(ctx, doc.Item())
	if err != nil {
		return nil, langserver.ValidationResult{}, err
	}
	doc.Diagnostics = validation.Diagnostics

	c.mu.Lock()
	entry, ok = c.documents[docURI]
	if !ok {
		c.mu.Unlock()
		return nil, langserver.ValidationResult{}, &errors.DocumentNotFoundError{URI: docURI}
	}
	if entry.doc.Version != base.Version {
		c.mu.Unlock()
		return nil, langserver.ValidationResult{}, &errors.DocumentConflictError{URI: docURI}
	}
	doc.Stale = entry.doc.Stale
	entry.doc = doc
	c.mu.Unlock()

	return &doc, validation, nil
}

func (c *controller) Validate(ctx context.Context, docURI uri.URI) (langserver.ValidationResult, error) {
	doc, err := c.Get(ctx, docURI)
	if err != nil {
		return langserver.ValidationResult{}, err
	}

	client, err := c.servers.GetServer(ctx, doc.LanguageID)
	if err != nil {
		return langserver.ValidationResult{}, err
	}
	validation, err := client.ValidateDocument(ctx, doc.Item())
	if err != nil {
		return langserver.ValidationResult{}, err
	}

	c.mu.Lock()
	if entry, ok := c.documents[docURI]; ok && entry.doc.Version == doc.Version {
		entry.doc.Diagnostics = validation.Diagnostics
	}
	c.mu.Unlock()

	return validation, nil
}

func (c *controller) Save(ctx context.Context, docURI uri.URI) (bool, error) {
	c.mu.Lock()
	entry, ok := c.documents[docURI]
	if !ok {
		c.mu.Unlock()
		return false, &errors.DocumentNotFoundError{URI: docURI}
	}
	if !entry.doc.Dirty {
		c.mu.Unlock()
		return false, nil
	}
	path := entry.doc.Path
	text := entry.doc.Text
	entry.pendingSaves++
	c.mu.Unlock()

	if err := c.fs.WriteFile(path, text); err != nil {
		c.mu.Lock()
		if entry, ok := c.documents[docURI]; ok && entry.pendingSaves > 0 {
			entry.pendingSaves--
		}
		c.mu.Unlock()
		return false, err
	}

	c.mu.Lock()
	entry.doc.Dirty = false
	entry.doc.Stale = false
	c.watchLocked(entry)
	c.mu.Unlock()

	c.logger.Infow("saved document", zap.String("uri", string(docURI)))
	return true, nil
}

func (c *controller) Close(ctx context.Context, docURI uri.URI) (bool, error) {
	c.mu.Lock()
	entry, ok := c.documents[docURI]
	if !ok {
		c.mu.Unlock()
		return false, &errors.DocumentNotFoundError{URI: docURI}
	}
	doc := entry.doc
	c.mu.Unlock()

	saved := false
	if doc.Dirty {
		var err error
		if saved, err = c.Save(ctx, docURI); err != nil {
			return false, err
		}
	}

	if client, err := c.servers.GetServer(ctx, doc.LanguageID); err == nil {
		if err := client.DidClose(ctx, docURI); err != nil {
			c.logger.Warnw("closing document with language server", zap.String("uri", string(docURI)), zap.Error(err))
		}
	}

	c.mu.Lock()
	if entry.watched {
		if err := c.watcher.Unwatch(doc.Path); err != nil {
			c.logger.Warnw("unwatching document", zap.String("path", doc.Path), zap.Error(err))
		}
	}
	delete(c.documents, docURI)
	count := len(c.documents)
	c.mu.Unlock()

	c.stats.Gauge("open_documents").Update(float64(count))
	c.logger.Infow("closed document", zap.String("uri", string(docURI)))
	return saved, nil
}

func (c *controller) Diagnostics(ctx context.Context, docURI uri.URI) ([]protocol.Diagnostic, error) {
	doc, err := c.Get(ctx, docURI)
	if err != nil {
		return nil, err
	}
	return doc.Diagnostics, nil
}

func (c *controller) Format(ctx context.Context, docURI uri.URI, options protocol.FormattingOptions) (*Document, []protocol.TextEdit, error) {
	doc, err := c.Get(ctx, docURI)
	if err != nil {
		return nil, nil, err
	}

	client, err := c.servers.GetServer(ctx, doc.LanguageID)
	if err != nil {
		return nil, nil, err
	}
	edits, err := client.FormatDocument(ctx, docURI, options)
	if err != nil {
		return nil, nil, err
	}
	if len(edits) == 0 {
		return doc, nil, nil
	}

	updated, _, err := c.ApplyEdits(ctx, docURI, edits)
	if err != nil {
		return nil, nil, err
	}

	// Servers differ in the edit shapes they return, some send one
	// whole-document replacement. Report minimal edits computed from the
	// actual text change instead.
	dmp := diffmatchpatch.New()
	applied, err := mapper.DiffsToTextEdits(dmp.DiffMain(doc.Text, updated.Text, false))
	if err != nil {
		return nil, nil, err
	}
	return updated, applied, nil
}

func (c *controller) Definition(ctx context.Context, docURI uri.URI, position protocol.Position) ([]protocol.Location, error) {
	doc, err := c.Get(ctx, docURI)
	if err != nil {
		return nil, err
	}

	client, err := c.servers.GetServer(ctx, doc.LanguageID)
	if err != nil {
		return nil, err
	}
	return client.GetDefinition(ctx, docURI, position)
}
