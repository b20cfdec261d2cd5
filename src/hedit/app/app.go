package app

import (
	"context"
	"time"

	"github.com/oakenai/hedit/src/hedit/gateway/langserver"
	"github.com/oakenai/hedit/src/hedit/handler"
	"github.com/oakenai/hedit/src/hedit/internal/clock"
	"github.com/oakenai/hedit/src/hedit/internal/core"
	"github.com/oakenai/hedit/src/hedit/internal/executor"
	"github.com/oakenai/hedit/src/hedit/internal/fs"
	"github.com/oakenai/hedit/src/hedit/internal/jsonrpcfx"
	"github.com/oakenai/hedit/src/hedit/internal/serverinfofile"
	"github.com/oakenai/hedit/src/hedit/internal/watcher"
	"github.com/uber-go/tally"
	"go.uber.org/fx"
)

// Module defines the hedit-daemon application module.
var Module = fx.Options(
	langserver.Module, // outbounds
	handler.Module,    // inbounds
	jsonrpcfx.Module,
	fs.Module,
	executor.Module,
	watcher.Module,
	serverinfofile.Module,
	core.ConfigModule,
	core.LoggerModule,
	fx.Provide(clock.New),
	fx.Provide(func(lc fx.Lifecycle) tally.Scope {
		rs, closer := tally.NewRootScope(tally.ScopeOptions{
			Tags: map[string]string{
				"service": "hedit-daemon",
			},
		}, 1*time.Second)

		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				return closer.Close()
			},
		})

		return rs
	}),
	fx.Decorate(decorateEnvContext),
	fx.Decorate(decorateConfigProvider),
	fx.Provide(func() Context {
		return Context{
			Environment:        "local",
			RuntimeEnvironment: "local",
		}
	}),
)
