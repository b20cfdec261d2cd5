package langserver

import (
	"context"
	"encoding/json"
	"io"
	"os/exec"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
	"go.lsp.dev/uri"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/oakenai/hedit/src/hedit/factory"
	"github.com/oakenai/hedit/src/hedit/internal/errors"
	"github.com/oakenai/hedit/src/hedit/internal/executor"
)

type testPipe struct {
	reader io.ReadCloser
	writer io.WriteCloser
}

func (p testPipe) Read(b []byte) (int, error)  { return p.reader.Read(b) }
func (p testPipe) Write(b []byte) (int, error) { return p.writer.Write(b) }
func (p testPipe) Close() error                { return multierr.Append(p.reader.Close(), p.writer.Close()) }

type fakeProcess struct {
	stdin  io.WriteCloser
	stdout io.ReadCloser

	mu     sync.Mutex
	killed bool
}

func (p *fakeProcess) Stdin() io.WriteCloser   { return p.stdin }
func (p *fakeProcess) Stdout() io.ReadCloser   { return p.stdout }
func (p *fakeProcess) StderrContents() string  { return "fake stderr" }
func (p *fakeProcess) Pid() int                { return 42 }
func (p *fakeProcess) Wait() error             { return nil }
func (p *fakeProcess) Kill() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.killed = true
	return nil
}

func (p *fakeProcess) wasKilled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.killed
}

type fakeLauncher struct {
	proc executor.Process
	err  error
}

func (l *fakeLauncher) Launch(cmd *exec.Cmd) (executor.Process, error) {
	return l.proc, l.err
}

// fakeServer is an in-process language server speaking real jsonrpc2 framing
// over the subprocess pipes.
type fakeServer struct {
	conn        jsonrpc2.Conn
	diagnostics []protocol.Diagnostic
	// publish controls whether document sync triggers a diagnostics notification.
	publish bool
	// respond controls whether the handshake is answered at all.
	respond bool

	mu      sync.Mutex
	methods []string
}

func (s *fakeServer) seenMethods() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string{}, s.methods...)
}

func (s *fakeServer) handle(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	s.mu.Lock()
	s.methods = append(s.methods, req.Method())
	s.mu.Unlock()

	if !s.respond {
		return nil
	}

	switch req.Method() {
	case protocol.MethodInitialize:
		return reply(ctx, protocol.InitializeResult{}, nil)
	case protocol.MethodTextDocumentDidOpen:
		if s.publish {
			params := protocol.DidOpenTextDocumentParams{}
			if err := json.Unmarshal(req.Params(), &params); err != nil {
				return reply(ctx, nil, err)
			}
			go s.conn.Notify(context.Background(), protocol.MethodTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
				URI:         params.TextDocument.URI,
				Diagnostics: s.diagnostics,
			})
		}
		return reply(ctx, nil, nil)
	case protocol.MethodTextDocumentDidChange:
		if s.publish {
			params := protocol.DidChangeTextDocumentParams{}
			if err := json.Unmarshal(req.Params(), &params); err != nil {
				return reply(ctx, nil, err)
			}
			go s.conn.Notify(context.Background(), protocol.MethodTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
				URI:         params.TextDocument.URI,
				Diagnostics: s.diagnostics,
			})
		}
		return reply(ctx, nil, nil)
	case protocol.MethodTextDocumentFormatting:
		return reply(ctx, []protocol.TextEdit{{NewText: "formatted"}}, nil)
	case protocol.MethodTextDocumentDefinition:
		return reply(ctx, []protocol.Location{{URI: uri.File("/workspace/def.go")}}, nil)
	default:
		return reply(ctx, nil, nil)
	}
}

// newFakeServerClient wires a client to a fakeServer over in-memory pipes.
func newFakeServerClient(t *testing.T, server *fakeServer, opts ...ClientOption) (Client, *fakeProcess) {
	t.Helper()

	clientOut, serverIn := io.Pipe()
	serverOut, clientIn := io.Pipe()

	proc := &fakeProcess{stdin: clientIn, stdout: clientOut}
	serverConn := jsonrpc2.NewConn(jsonrpc2.NewStream(testPipe{reader: serverOut, writer: serverIn}))
	server.conn = serverConn
	serverConn.Go(context.Background(), server.handle)
	t.Cleanup(func() { serverConn.Close() })

	c := NewClient("go", ServerConfig{Command: "fake-ls"}, &fakeLauncher{proc: proc}, zap.NewNop().Sugar(), opts...)
	return c, proc
}

func TestInitialize(t *testing.T) {
	server := &fakeServer{respond: true}
	c, _ := newFakeServerClient(t, server)
	defer c.Shutdown(context.Background())

	require.NoError(t, c.Initialize(context.Background()))
	assert.Equal(t, StateReady, c.State())
	assert.Contains(t, server.seenMethods(), protocol.MethodInitialize)
	// initialized is a fire-and-forget notification; poll until the fake
	// server's handler goroutine has recorded it.
	assert.Eventually(t, func() bool {
		for _, method := range server.seenMethods() {
			if method == protocol.MethodInitialized {
				return true
			}
		}
		return false
	}, time.Second, 10*time.Millisecond)

	err := c.Initialize(context.Background())
	require.Error(t, err)
	assert.Equal(t, errors.CodeAlreadyRunning, errors.CodeOf(err))
}

func TestInitializeLaunchFailure(t *testing.T) {
	c := NewClient("go", ServerConfig{Command: "missing-ls"}, &fakeLauncher{err: errors.New("no such binary")}, zap.NewNop().Sugar())

	err := c.Initialize(context.Background())
	require.Error(t, err)
	assert.Equal(t, errors.CodeStartupFailure, errors.CodeOf(err))
	assert.Equal(t, StateError, c.State())
}

func TestInitializeHandshakeTimeout(t *testing.T) {
	server := &fakeServer{respond: false}
	c, proc := newFakeServerClient(t, server, WithStartupTimeout(100*time.Millisecond))

	err := c.Initialize(context.Background())
	require.Error(t, err)
	assert.Equal(t, errors.CodeStartupFailure, errors.CodeOf(err))
	assert.Equal(t, StateError, c.State())
	assert.True(t, proc.wasKilled())
}

func TestCallsBeforeInitialize(t *testing.T) {
	c := NewClient("go", ServerConfig{Command: "fake-ls"}, &fakeLauncher{}, zap.NewNop().Sugar())
	ctx := context.Background()
	item := factory.TextDocumentItem("/workspace/main.go", "package main\n")

	assert.Equal(t, errors.CodeNotInitialized, errors.CodeOf(c.DidOpen(ctx, item)))
	assert.Equal(t, errors.CodeNotInitialized, errors.CodeOf(c.DidChange(ctx, item.URI, 2, "x")))
	assert.Equal(t, errors.CodeNotInitialized, errors.CodeOf(c.DidClose(ctx, item.URI)))

	_, err := c.ValidateDocument(ctx, item)
	assert.Equal(t, errors.CodeNotInitialized, errors.CodeOf(err))
	_, err = c.FormatDocument(ctx, item.URI, protocol.FormattingOptions{})
	assert.Equal(t, errors.CodeNotInitialized, errors.CodeOf(err))
	_, err = c.GetDefinition(ctx, item.URI, protocol.Position{})
	assert.Equal(t, errors.CodeNotInitialized, errors.CodeOf(err))
}

func TestValidateDocument(t *testing.T) {
	diagnostics := []protocol.Diagnostic{factory.Diagnostic(protocol.DiagnosticSeverityError, "undefined: x")}
	server := &fakeServer{respond: true, publish: true, diagnostics: diagnostics}
	c, _ := newFakeServerClient(t, server)
	defer c.Shutdown(context.Background())
	require.NoError(t, c.Initialize(context.Background()))

	item := factory.TextDocumentItem("/workspace/main.go", "package main\n")
	result, err := c.ValidateDocument(context.Background(), item)
	require.NoError(t, err)
	assert.False(t, result.TimedOut)
	assert.Equal(t, diagnostics, result.Diagnostics)
	assert.Contains(t, server.seenMethods(), protocol.MethodTextDocumentDidOpen)

	// The document is open now, so revalidation syncs via didChange.
	item.Version = 2
	result, err = c.ValidateDocument(context.Background(), item)
	require.NoError(t, err)
	assert.False(t, result.TimedOut)
	assert.Contains(t, server.seenMethods(), protocol.MethodTextDocumentDidChange)
}

func TestValidateDocumentTimeout(t *testing.T) {
	server := &fakeServer{respond: true, publish: false}
	c, _ := newFakeServerClient(t, server, WithDiagnosticsTimeout(100*time.Millisecond))
	defer c.Shutdown(context.Background())
	require.NoError(t, c.Initialize(context.Background()))

	item := factory.TextDocumentItem("/workspace/main.go", "package main\n")
	result, err := c.ValidateDocument(context.Background(), item)
	require.NoError(t, err)
	assert.True(t, result.TimedOut)
	assert.Empty(t, result.Diagnostics)
}

func TestDidOpenSuppressed(t *testing.T) {
	server := &fakeServer{respond: true}
	c, _ := newFakeServerClient(t, server)
	defer c.Shutdown(context.Background())
	require.NoError(t, c.Initialize(context.Background()))

	item := factory.TextDocumentItem("/workspace/main.go", "package main\n")
	require.NoError(t, c.DidOpen(context.Background(), item))
	require.NoError(t, c.DidOpen(context.Background(), item))

	countOpens := func() int {
		opens := 0
		for _, method := range server.seenMethods() {
			if method == protocol.MethodTextDocumentDidOpen {
				opens++
			}
		}
		return opens
	}
	// didOpen is a fire-and-forget notification; poll until the fake
	// server's handler goroutine has recorded the first one.
	require.Eventually(t, func() bool { return countOpens() >= 1 }, time.Second, 10*time.Millisecond)
	assert.Equal(t, 1, countOpens())
}

func TestFormatAndDefinition(t *testing.T) {
	server := &fakeServer{respond: true}
	c, _ := newFakeServerClient(t, server)
	defer c.Shutdown(context.Background())
	require.NoError(t, c.Initialize(context.Background()))

	edits, err := c.FormatDocument(context.Background(), uri.File("/workspace/main.go"), protocol.FormattingOptions{})
	require.NoError(t, err)
	require.Len(t, edits, 1)
	assert.Equal(t, "formatted", edits[0].NewText)

	locations, err := c.GetDefinition(context.Background(), uri.File("/workspace/main.go"), protocol.Position{Line: 3})
	require.NoError(t, err)
	require.Len(t, locations, 1)
	assert.Equal(t, uri.File("/workspace/def.go"), locations[0].URI)
}

func TestShutdown(t *testing.T) {
	server := &fakeServer{respond: true}
	c, proc := newFakeServerClient(t, server)
	require.NoError(t, c.Initialize(context.Background()))

	require.NoError(t, c.Shutdown(context.Background()))
	assert.Equal(t, StateStopped, c.State())
	assert.True(t, proc.wasKilled())

	// Repeat shutdowns are a no-op.
	require.NoError(t, c.Shutdown(context.Background()))
	assert.Equal(t, errors.CodeNotInitialized, errors.CodeOf(c.DidClose(context.Background(), uri.File("/workspace/main.go"))))
}

func TestCanonicalURI(t *testing.T) {
	c := NewClient("go", ServerConfig{}, &fakeLauncher{}, zap.NewNop().Sugar()).(*client)

	fromPath := c.CanonicalURI("/workspace/main.go")
	fromURI := c.CanonicalURI("file:///workspace/main.go")
	assert.Equal(t, fromPath, fromURI)

	// Memoized lookups return the same value.
	assert.Equal(t, fromPath, c.CanonicalURI("/workspace/main.go"))
}
