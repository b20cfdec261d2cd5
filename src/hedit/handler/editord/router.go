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
	"github.com/oakenai/hedit/src/hedit/internal/errors"
)

// JSON-RPC methods served to editing clients.
const (
	MethodSessionCreate   = "session/create"
	MethodSessionEdit     = "session/edit"
	MethodSessionUndo     = "session/undo"
	MethodSessionRedo     = "session/redo"
	MethodSessionValidate = "session/validate"
	MethodSessionSave     = "session/save"
	MethodSessionClose    = "session/close"

	MethodDocumentFormat     = "document/format"
	MethodDocumentDefinition = "document/definition"

	// MethodDaemonShutdown directs the whole daemon to exit.
	MethodDaemonShutdown = "daemon/shutdown"
)

type jsonRPCRouter struct {
	editor     editor.Controller
	shutdowner fx.Shutdowner
	uuid       uuid.UUID
	logger     *zap.SugaredLogger
	stats      tally.Scope
}

// HandleReq handles routing for a single request.
func (r *jsonRPCRouter) HandleReq(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	r.stats.Tagged(map[string]string{"method": req.Method()}).Counter("requests").Inc(1)

	switch req.Method() {
	// Session lifecycle and editing methods.
	case MethodSessionCreate:
		return r.CreateSession(ctx, reply, req)

	case MethodSessionEdit:
		return r.Edit(ctx, reply, req)

	case MethodSessionUndo:
		return r.Undo(ctx, reply, req)

	case MethodSessionRedo:
		return r.Redo(ctx, reply, req)

	case MethodSessionValidate:
		return r.Validate(ctx, reply, req)

	case MethodSessionSave:
		return r.Save(ctx, reply, req)

	case MethodSessionClose:
		return r.CloseSession(ctx, reply, req)

	// Document related methods.
	case MethodDocumentFormat:
		return r.Format(ctx, reply, req)

	case MethodDocumentDefinition:
		return r.Definition(ctx, reply, req)

	// Daemon lifecycle methods.
	case MethodDaemonShutdown:
		return r.Shutdown(ctx, reply, req)

	default:
		return jsonrpc2.MethodNotFoundHandler(ctx, reply, req)
	}
}

func (r *jsonRPCRouter) UUID() uuid.UUID {
	return r.uuid
}

// replyError maps a controller error onto a JSON-RPC error response carrying
// the machine readable code in the message. Request failures never take the
// connection or the daemon down.
func (r *jsonRPCRouter) replyError(ctx context.Context, reply jsonrpc2.Replier, err error) error {
	code := errors.CodeOf(err)
	rpcCode := jsonrpc2.InternalError
	switch code {
	case errors.CodeInvalidOperationShape,
		errors.CodeUnsupportedOperationType,
		errors.CodeOutOfBoundsPosition,
		errors.CodeInvalidRange:
		rpcCode = jsonrpc2.InvalidParams
	}
	r.stats.Tagged(map[string]string{"code": string(code)}).Counter("request_errors").Inc(1)
	return reply(ctx, nil, jsonrpc2.NewError(rpcCode, fmt.Sprintf("%s: %v", code, err)))
}
