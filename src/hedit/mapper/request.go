package mapper

import (
	"encoding/json"
	"fmt"

	"go.lsp.dev/jsonrpc2"

	"github.com/oakenai/hedit/src/hedit/entity"
)

// RequestToCreateSessionParams maps the parameters from a jsonrpc2.Request into entity.CreateSessionParams.
func RequestToCreateSessionParams(req jsonrpc2.Request) (*entity.CreateSessionParams, error) {
	params := entity.CreateSessionParams{}
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return nil, wrapErrParse(err)
	}
	return &params, nil
}

// RequestToSessionParams maps the parameters from a jsonrpc2.Request into entity.SessionParams.
func RequestToSessionParams(req jsonrpc2.Request) (*entity.SessionParams, error) {
	params := entity.SessionParams{}
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return nil, wrapErrParse(err)
	}
	return &params, nil
}

// RequestToEditParams maps the parameters from a jsonrpc2.Request into entity.EditParams.
func RequestToEditParams(req jsonrpc2.Request) (*entity.EditParams, error) {
	params := entity.EditParams{}
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return nil, wrapErrParse(err)
	}
	return &params, nil
}

// RequestToFormatParams maps the parameters from a jsonrpc2.Request into entity.FormatParams.
func RequestToFormatParams(req jsonrpc2.Request) (*entity.FormatParams, error) {
	params := entity.FormatParams{}
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return nil, wrapErrParse(err)
	}
	return &params, nil
}

// RequestToDefinitionParams maps the parameters from a jsonrpc2.Request into entity.DefinitionParams.
func RequestToDefinitionParams(req jsonrpc2.Request) (*entity.DefinitionParams, error) {
	params := entity.DefinitionParams{}
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return nil, wrapErrParse(err)
	}
	return &params, nil
}

func wrapErrParse(err error) error {
	return fmt.Errorf("%s: %w", jsonrpc2.ErrParse, err)
}
