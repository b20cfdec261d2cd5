package editord

import (
	"context"

	"go.lsp.dev/jsonrpc2"
	"go.uber.org/zap"

	"github.com/oakenai/hedit/src/hedit/mapper"
)

func (r *jsonRPCRouter) CreateSession(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToCreateSessionParams(req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	result, err := r.editor.CreateSession(ctx, params)
	if err != nil {
		r.logger.Warnw("session create failed", zap.String("filePath", params.FilePath), zap.Error(err))
		return r.replyError(ctx, reply, err)
	}
	return reply(ctx, result, nil)
}

func (r *jsonRPCRouter) Edit(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToEditParams(req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	result, err := r.editor.ApplyEdit(ctx, params.SessionID, &params.Operation)
	if err != nil {
		return r.replyError(ctx, reply, err)
	}
	return reply(ctx, result, nil)
}

func (r *jsonRPCRouter) Undo(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToSessionParams(req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	result, err := r.editor.Undo(ctx, params.SessionID)
	if err != nil {
		return r.replyError(ctx, reply, err)
	}
	return reply(ctx, result, nil)
}

func (r *jsonRPCRouter) Redo(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToSessionParams(req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	result, err := r.editor.Redo(ctx, params.SessionID)
	if err != nil {
		return r.replyError(ctx, reply, err)
	}
	return reply(ctx, result, nil)
}

func (r *jsonRPCRouter) Validate(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToSessionParams(req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	result, err := r.editor.Validate(ctx, params.SessionID)
	if err != nil {
		return r.replyError(ctx, reply, err)
	}
	return reply(ctx, result, nil)
}

func (r *jsonRPCRouter) Save(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToSessionParams(req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	result, err := r.editor.Save(ctx, params.SessionID)
	if err != nil {
		return r.replyError(ctx, reply, err)
	}
	return reply(ctx, result, nil)
}

func (r *jsonRPCRouter) CloseSession(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToSessionParams(req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	result, err := r.editor.CloseSession(ctx, params.SessionID)
	if err != nil {
		return r.replyError(ctx, reply, err)
	}
	return reply(ctx, result, nil)
}
