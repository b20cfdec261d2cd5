// Package factory provides simple test data factories.
package factory

import (
	"time"

	"github.com/gofrs/uuid"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
	"go.lsp.dev/uri"

	"github.com/oakenai/hedit/src/hedit/entity"
)

// UUID is a user-defined factory for a random uuid.UUID.
func UUID() uuid.UUID {
	return uuid.Must(uuid.NewV4())
}

// JSONRPCRequest is a user-defined factory for a JSON-RPC request containing the specified method and parameters.
func JSONRPCRequest(method string, params interface{}) jsonrpc2.Request {
	req, _ := jsonrpc2.NewCall(jsonrpc2.NewNumberID(5), method, params)
	return req
}

// Session is a factory for a session entity over the given file.
func Session(filePath string) *entity.Session {
	now := time.Now()
	return &entity.Session{
		UUID:         UUID(),
		FilePath:     filePath,
		LanguageID:   "go",
		State:        entity.SessionStateActive,
		CreatedAt:    now,
		LastActivity: now,
		History:      entity.NewEditHistory(entity.DefaultHistoryLimit),
	}
}

// TextDocumentItem is a factory for a document item with the given path and contents.
func TextDocumentItem(path, text string) protocol.TextDocumentItem {
	return protocol.TextDocumentItem{
		URI:        uri.File(path),
		LanguageID: "go",
		Version:    1,
		Text:       text,
	}
}
