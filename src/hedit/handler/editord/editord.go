// Package editord exposes the editing session API over JSON-RPC connections.
package editord

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid"
	"github.com/uber-go/tally"
	"go.lsp.dev/jsonrpc2"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/oakenai/hedit/src/hedit/controller/editor"
	"github.com/oakenai/hedit/src/hedit/internal/jsonrpcfx"
)

// Handler marks the editord handler as registered with the JSON-RPC module.
type Handler interface{}

type handler struct {
	editor            editor.Controller
	connectionManager jsonrpcfx.ConnectionManager
}

// New constructs the editord handler and registers it for incoming connections.
func New(ctrl editor.Controller, jsonrpcmod jsonrpcfx.JSONRPCModule, shutdowner fx.Shutdowner, logger *zap.SugaredLogger, stats tally.Scope) (Handler, error) {
	c := jsonRPCConnectionManager{
		editor:     ctrl,
		shutdowner: shutdowner,
		logger:     logger.With("handler", "editord"),
		stats:      stats.SubScope("json_rpc"),
	}
	if err := jsonrpcmod.RegisterConnectionManager(&c); err != nil {
		return nil, fmt.Errorf("registering connection manager: %w", err)
	}

	return &handler{
		editor:            ctrl,
		connectionManager: &c,
	}, nil
}

type jsonRPCConnectionManager struct {
	editor     editor.Controller
	shutdowner fx.Shutdowner
	logger     *zap.SugaredLogger
	stats      tally.Scope
}

// NewConnection returns a router scoped to the new connection's UUID.
func (c *jsonRPCConnectionManager) NewConnection(ctx context.Context, conn *jsonrpc2.Conn) (jsonrpcfx.Router, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return nil, fmt.Errorf("assigning connection id: %w", err)
	}

	c.logger.Infow("new connection", zap.Stringer("uuid", id))
	r := jsonRPCRouter{
		editor:     c.editor,
		shutdowner: c.shutdowner,
		uuid:       id,
		logger:     c.logger.With("connection", id.String()),
		stats:      c.stats,
	}
	return &r, nil
}

// RemoveConnection cleans up a closed connection.
func (c *jsonRPCConnectionManager) RemoveConnection(ctx context.Context, id uuid.UUID) {
	c.logger.Infow("connection closed", zap.Stringer("uuid", id))
}
