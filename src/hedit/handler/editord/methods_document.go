package editord

import (
	"context"

	"go.lsp.dev/jsonrpc2"

	"github.com/oakenai/hedit/src/hedit/mapper"
)

func (r *jsonRPCRouter) Format(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToFormatParams(req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	result, err := r.editor.Format(ctx, params.SessionID, params.Options)
	if err != nil {
		return r.replyError(ctx, reply, err)
	}
	return reply(ctx, result, nil)
}

func (r *jsonRPCRouter) Definition(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToDefinitionParams(req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	locations, err := r.editor.Definition(ctx, params.SessionID, params.Position)
	if err != nil {
		return r.replyError(ctx, reply, err)
	}
	return reply(ctx, locations, nil)
}
