// Package langserver manages language server subprocesses and the
// document sync and diagnostics traffic exchanged with them.
package langserver

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"os/exec"
	"strings"
	"sync"
	"time"

	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
	"go.lsp.dev/uri"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/oakenai/hedit/src/hedit/internal/errors"
	"github.com/oakenai/hedit/src/hedit/internal/executor"
)

const (
	_defaultStartupTimeout     = 10 * time.Second
	_defaultDiagnosticsTimeout = 2500 * time.Millisecond
	_shutdownTimeout           = 2 * time.Second
)

// State describes the lifecycle of a language server connection.
type State string

const (
	// StateStopped indicates no running subprocess.
	StateStopped State = "stopped"
	// StateStarting indicates the subprocess is launching or mid-handshake.
	StateStarting State = "starting"
	// StateReady indicates the handshake completed and requests may be sent.
	StateReady State = "ready"
	// StateError indicates a failed launch or handshake.
	StateError State = "error"
)

// ServerConfig describes how to launch a language server for one language.
type ServerConfig struct {
	Command               string                 `yaml:"command"`
	Args                  []string               `yaml:"args"`
	InitializationOptions map[string]interface{} `yaml:"initializationOptions"`
}

// ValidationResult carries the diagnostics produced by a validation pass.
// TimedOut is set when the server produced nothing within the configured bound.
type ValidationResult struct {
	Diagnostics []protocol.Diagnostic
	TimedOut    bool
}

// Client is a connection to a single language server subprocess,
// shared by all sessions editing documents of its language.
type Client interface {
	// Initialize launches the subprocess and performs the LSP handshake.
	Initialize(ctx context.Context) error
	DidOpen(ctx context.Context, item protocol.TextDocumentItem) error
	DidChange(ctx context.Context, docURI uri.URI, version int32, text string) error
	DidClose(ctx context.Context, docURI uri.URI) error
	// ValidateDocument pushes the document's current text and waits for the
	// correlated diagnostics. A quiet server yields TimedOut, not an error.
	ValidateDocument(ctx context.Context, item protocol.TextDocumentItem) (ValidationResult, error)
	FormatDocument(ctx context.Context, docURI uri.URI, options protocol.FormattingOptions) ([]protocol.TextEdit, error)
	GetDefinition(ctx context.Context, docURI uri.URI, position protocol.Position) ([]protocol.Location, error)
	// Shutdown stops the subprocess. Safe to call more than once.
	Shutdown(ctx context.Context) error
	State() State
}

type client struct {
	languageID protocol.LanguageIdentifier
	cfg        ServerConfig
	launcher   executor.Launcher
	logger     *zap.SugaredLogger

	startupTimeout     time.Duration
	diagnosticsTimeout time.Duration

	mu       sync.Mutex
	state    State
	proc     executor.Process
	conn     jsonrpc2.Conn
	server   protocol.Server
	openDocs map[uri.URI]int32

	waitersMu sync.Mutex
	waiters   map[uri.URI][]chan []protocol.Diagnostic

	canonical sync.Map
}

// ClientOption customizes a language server client.
type ClientOption func(*client)

// WithStartupTimeout bounds the launch and handshake duration.
func WithStartupTimeout(d time.Duration) ClientOption {
	return func(c *client) {
		c.startupTimeout = d
	}
}

// WithDiagnosticsTimeout bounds each diagnostics wait.
func WithDiagnosticsTimeout(d time.Duration) ClientOption {
	return func(c *client) {
		c.diagnosticsTimeout = d
	}
}

// NewClient returns a client for the given language and launch configuration.
func NewClient(languageID protocol.LanguageIdentifier, cfg ServerConfig, launcher executor.Launcher, logger *zap.SugaredLogger, opts ...ClientOption) Client {
	c := &client{
		languageID:         languageID,
		cfg:                cfg,
		launcher:           launcher,
		logger:             logger,
		startupTimeout:     _defaultStartupTimeout,
		diagnosticsTimeout: _defaultDiagnosticsTimeout,
		state:              StateStopped,
		openDocs:           make(map[uri.URI]int32),
		waiters:            make(map[uri.URI][]chan []protocol.Diagnostic),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// stdioPipe joins a subprocess's stdin and stdout into a single stream
// suitable for jsonrpc2 framing.
type stdioPipe struct {
	in  io.WriteCloser
	out io.ReadCloser
}

func (p stdioPipe) Read(b []byte) (int, error)  { return p.out.Read(b) }
func (p stdioPipe) Write(b []byte) (int, error) { return p.in.Write(b) }
func (p stdioPipe) Close() error                { return multierr.Append(p.in.Close(), p.out.Close()) }

func (c *client) Initialize(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch c.state {
	case StateStarting, StateReady:
		return &errors.AlreadyRunningError{Language: c.languageID}
	}
	c.state = StateStarting

	proc, err := c.launcher.Launch(exec.Command(c.cfg.Command, c.cfg.Args...))
	if err != nil {
		c.state = StateError
		return &errors.StartupError{Language: c.languageID, Err: err}
	}

	conn := jsonrpc2.NewConn(jsonrpc2.NewStream(stdioPipe{in: proc.Stdin(), out: proc.Stdout()}))
	conn.Go(context.Background(), c.handleServerRequest)
	server := protocol.ServerDispatcher(conn, c.logger.Desugar())

	initCtx, cancel := context.WithTimeout(ctx, c.startupTimeout)
	defer cancel()

	if err := c.handshake(initCtx, server); err != nil {
		conn.Close()
		proc.Kill()
		c.state = StateError
		c.logger.Errorw("language server handshake failed",
			zap.String("language", string(c.languageID)),
			zap.String("stderr", proc.StderrContents()),
			zap.Error(err))
		return &errors.StartupError{Language: c.languageID, Err: err}
	}

	c.proc = proc
	c.conn = conn
	c.server = server
	c.state = StateReady
	c.logger.Infow("language server ready", zap.String("language", string(c.languageID)), zap.Int("pid", proc.Pid()))
	return nil
}

func (c *client) handshake(ctx context.Context, server protocol.Server) error {
	params := &protocol.InitializeParams{
		ProcessID: int32(os.Getpid()),
		Capabilities: protocol.ClientCapabilities{
			TextDocument: &protocol.TextDocumentClientCapabilities{
				PublishDiagnostics: &protocol.PublishDiagnosticsClientCapabilities{},
				Synchronization:    &protocol.TextDocumentSyncClientCapabilities{},
			},
		},
		InitializationOptions: c.cfg.InitializationOptions,
	}
	if _, err := server.Initialize(ctx, params); err != nil {
		return err
	}
	return server.Initialized(ctx, &protocol.InitializedParams{})
}

// handleServerRequest routes inbound traffic from the subprocess. Diagnostics
// notifications fulfill pending waiters, everything else is acknowledged and dropped.
func (c *client) handleServerRequest(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	switch req.Method() {
	case protocol.MethodTextDocumentPublishDiagnostics:
		params := protocol.PublishDiagnosticsParams{}
		if err := json.Unmarshal(req.Params(), &params); err != nil {
			return reply(ctx, nil, err)
		}
		c.publishDiagnostics(&params)
		return reply(ctx, nil, nil)
	case protocol.MethodWorkspaceConfiguration:
		// Some servers request configuration before settling. Answer with nulls.
		params := protocol.ConfigurationParams{}
		if err := json.Unmarshal(req.Params(), &params); err != nil {
			return reply(ctx, nil, err)
		}
		return reply(ctx, make([]interface{}, len(params.Items)), nil)
	default:
		if strings.HasPrefix(req.Method(), "window/") || strings.HasPrefix(req.Method(), "$/") {
			return reply(ctx, nil, nil)
		}
		return jsonrpc2.MethodNotFoundHandler(ctx, reply, req)
	}
}

func (c *client) publishDiagnostics(params *protocol.PublishDiagnosticsParams) {
	docURI := c.CanonicalURI(string(params.URI))

	c.waitersMu.Lock()
	queue := c.waiters[docURI]
	var waiter chan []protocol.Diagnostic
	if len(queue) > 0 {
		waiter = queue[0]
		c.waiters[docURI] = queue[1:]
	}
	c.waitersMu.Unlock()

	if waiter != nil {
		waiter <- params.Diagnostics
	}
}

// CanonicalURI resolves raw paths and file scheme strings to a single canonical form.
// Results are memoized, callers pass the same documents repeatedly.
func (c *client) CanonicalURI(raw string) uri.URI {
	if cached, ok := c.canonical.Load(raw); ok {
		return cached.(uri.URI)
	}

	var canonical uri.URI
	if strings.HasPrefix(raw, "file://") {
		canonical = uri.File(uri.URI(raw).Filename())
	} else {
		canonical = uri.File(raw)
	}
	c.canonical.Store(raw, canonical)
	return canonical
}

func (c *client) ready() (protocol.Server, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateReady {
		return nil, &errors.NotInitializedError{Language: c.languageID}
	}
	return c.server, nil
}

func (c *client) DidOpen(ctx context.Context, item protocol.TextDocumentItem) error {
	server, err := c.ready()
	if err != nil {
		return err
	}

	docURI := c.CanonicalURI(string(item.URI))
	c.mu.Lock()
	if _, open := c.openDocs[docURI]; open {
		c.mu.Unlock()
		return nil
	}
	c.openDocs[docURI] = item.Version
	c.mu.Unlock()

	item.URI = docURI
	err = server.DidOpen(ctx, &protocol.DidOpenTextDocumentParams{TextDocument: item})
	if err != nil {
		c.mu.Lock()
		delete(c.openDocs, docURI)
		c.mu.Unlock()
		return &errors.RequestError{Method: protocol.MethodTextDocumentDidOpen, Err: err}
	}
	return nil
}

func (c *client) DidChange(ctx context.Context, docURI uri.URI, version int32, text string) error {
	server, err := c.ready()
	if err != nil {
		return err
	}

	docURI = c.CanonicalURI(string(docURI))
	c.mu.Lock()
	c.openDocs[docURI] = version
	c.mu.Unlock()

	params := &protocol.DidChangeTextDocumentParams{
		TextDocument: protocol.VersionedTextDocumentIdentifier{
			TextDocumentIdentifier: protocol.TextDocumentIdentifier{URI: docURI},
			Version:                version,
		},
		ContentChanges: []protocol.TextDocumentContentChangeEvent{{Text: text}},
	}
	if err := server.DidChange(ctx, params); err != nil {
		return &errors.RequestError{Method: protocol.MethodTextDocumentDidChange, Err: err}
	}
	return nil
}

func (c *client) DidClose(ctx context.Context, docURI uri.URI) error {
	server, err := c.ready()
	if err != nil {
		return err
	}

	docURI = c.CanonicalURI(string(docURI))
	c.mu.Lock()
	delete(c.openDocs, docURI)
	c.mu.Unlock()

	params := &protocol.DidCloseTextDocumentParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: docURI},
	}
	if err := server.DidClose(ctx, params); err != nil {
		return &errors.RequestError{Method: protocol.MethodTextDocumentDidClose, Err: err}
	}
	return nil
}

func (c *client) ValidateDocument(ctx context.Context, item protocol.TextDocumentItem) (ValidationResult, error) {
	if _, err := c.ready(); err != nil {
		return ValidationResult{}, err
	}

	docURI := c.CanonicalURI(string(item.URI))
	item.URI = docURI

	waiter := make(chan []protocol.Diagnostic, 1)
	c.waitersMu.Lock()
	c.waiters[docURI] = append(c.waiters[docURI], waiter)
	c.waitersMu.Unlock()

	var err error
	c.mu.Lock()
	_, open := c.openDocs[docURI]
	c.mu.Unlock()
	if !open {
		err = c.DidOpen(ctx, item)
	} else {
		err = c.DidChange(ctx, docURI, item.Version, item.Text)
	}
	if err != nil {
		c.removeWaiter(docURI, waiter)
		return ValidationResult{}, err
	}

	select {
	case diagnostics := <-waiter:
		return ValidationResult{Diagnostics: diagnostics}, nil
	case <-time.After(c.diagnosticsTimeout):
		c.removeWaiter(docURI, waiter)
		c.logger.Debugw("diagnostics wait timed out",
			zap.String("uri", string(docURI)),
			zap.Duration("timeout", c.diagnosticsTimeout))
		return ValidationResult{TimedOut: true}, nil
	case <-ctx.Done():
		c.removeWaiter(docURI, waiter)
		return ValidationResult{}, ctx.Err()
	}
}

// removeWaiter drops an unfulfilled waiter, draining it if a publish
// raced with the timeout.
func (c *client) removeWaiter(docURI uri.URI, waiter chan []protocol.Diagnostic) {
	c.waitersMu.Lock()
	defer c.waitersMu.Unlock()
	queue := c.waiters[docURI]
	for i, w := range queue {
		if w == waiter {
			c.waiters[docURI] = append(queue[:i], queue[i+1:]...)
			return
		}
	}
	select {
	case <-waiter:
	default:
	}
}

func (c *client) FormatDocument(ctx context.Context, docURI uri.URI, options protocol.FormattingOptions) ([]protocol.TextEdit, error) {
	server, err := c.ready()
	if err != nil {
		return nil, err
	}

	params := &protocol.DocumentFormattingParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: c.CanonicalURI(string(docURI))},
		Options:      options,
	}
	edits, err := server.Formatting(ctx, params)
	if err != nil {
		return nil, &errors.RequestError{Method: protocol.MethodTextDocumentFormatting, Err: err}
	}
	return edits, nil
}

func (c *client) GetDefinition(ctx context.Context, docURI uri.URI, position protocol.Position) ([]protocol.Location, error) {
	server, err := c.ready()
	if err != nil {
		return nil, err
	}

	params := &protocol.DefinitionParams{
		TextDocumentPositionParams: protocol.TextDocumentPositionParams{
			TextDocument: protocol.TextDocumentIdentifier{URI: c.CanonicalURI(string(docURI))},
			Position:     position,
		},
	}
	locations, err := server.Definition(ctx, params)
	if err != nil {
		return nil, &errors.RequestError{Method: protocol.MethodTextDocumentDefinition, Err: err}
	}
	return locations, nil
}

func (c *client) Shutdown(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == StateStopped || c.proc == nil {
		c.state = StateStopped
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, _shutdownTimeout)
	defer cancel()
	if err := c.server.Shutdown(shutdownCtx); err == nil {
		c.server.Exit(shutdownCtx)
	}

	c.conn.Close()
	err := c.proc.Kill()

	c.proc = nil
	c.conn = nil
	c.server = nil
	c.openDocs = make(map[uri.URI]int32)
	c.state = StateStopped
	c.logger.Infow("language server stopped", zap.String("language", string(c.languageID)))
	return err
}

func (c *client) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}
