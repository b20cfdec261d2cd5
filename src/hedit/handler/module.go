package handler

import (
	"os"
	"strconv"

	controller "github.com/oakenai/hedit/src/hedit/controller"
	"github.com/oakenai/hedit/src/hedit/controller/editor"
	"github.com/oakenai/hedit/src/hedit/handler/editord"
	"github.com/oakenai/hedit/src/hedit/internal/serverinfofile"
	"github.com/oakenai/hedit/src/hedit/repository/session"
	"go.uber.org/fx"
)

// Module provides the hedit-daemon server into an Fx application.
var Module = fx.Options(
	controller.Module,
	fx.Provide(session.New),
	fx.Provide(editord.New),
	fx.Invoke(outputProcessInfo),
	fx.Invoke(func(h editord.Handler) {}),
	fx.Invoke(func(c editor.Controller) {}),
)

// Output the daemon's pid so callers can check liveness from the Server Info file.
// The JSON-RPC inbound independently adds its address field once listening.
func outputProcessInfo(infofile serverinfofile.ServerInfoFile) error {
	return infofile.UpdateField("pid", strconv.Itoa(os.Getpid()))
}
