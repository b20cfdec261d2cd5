package controller

import (
	"github.com/oakenai/hedit/src/hedit/controller/document"
	"github.com/oakenai/hedit/src/hedit/controller/editor"
	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(document.New),
	fx.Provide(editor.New),
)
