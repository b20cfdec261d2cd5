package editord

import (
	"context"

	"go.lsp.dev/jsonrpc2"
	"go.uber.org/zap"
)

// Shutdown acknowledges the request, then stops the daemon so open sessions
// get flushed by the lifecycle hooks rather than torn down mid-reply.
func (r *jsonRPCRouter) Shutdown(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	err := reply(ctx, nil, nil)

	r.logger.Infow("shutdown requested", zap.Stringer("uuid", r.uuid))
	if shutdownErr := r.shutdowner.Shutdown(); shutdownErr != nil {
		r.logger.Errorw("shutdown failed", zap.Error(shutdownErr))
	}
	return err
}
