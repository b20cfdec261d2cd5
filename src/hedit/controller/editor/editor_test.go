package editor

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uber-go/tally"
	"go.lsp.dev/protocol"
	"go.lsp.dev/uri"
	"go.uber.org/config"
	"go.uber.org/fx/fxtest"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/oakenai/hedit/src/hedit/controller/document"
	"github.com/oakenai/hedit/src/hedit/controller/document/documentmock"
	"github.com/oakenai/hedit/src/hedit/entity"
	"github.com/oakenai/hedit/src/hedit/factory"
	"github.com/oakenai/hedit/src/hedit/gateway/langserver"
	"github.com/oakenai/hedit/src/hedit/internal/clock"
	"github.com/oakenai/hedit/src/hedit/internal/errors"
	"github.com/oakenai/hedit/src/hedit/repository/session/repositorymock"
)

type testFixture struct {
	controller Controller
	sessions   *repositorymock.MockRepository
	documents  *documentmock.MockController
	clock      *clock.Fake
	lifecycle  *fxtest.Lifecycle
}

func newTestFixture(t *testing.T, overrides map[string]interface{}) *testFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	settings := map[string]interface{}{
		"editor":  map[string]interface{}{"maxFileSizeBytes": 1000},
		"session": map[string]interface{}{},
	}
	for key, value := range overrides {
		settings[key] = value
	}
	cfg, err := config.NewStaticProvider(settings)
	require.NoError(t, err)

	f := &testFixture{
		sessions:  repositorymock.NewMockRepository(ctrl),
		documents: documentmock.NewMockController(ctrl),
		clock:     clock.NewFake(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)),
		lifecycle: fxtest.NewLifecycle(t),
	}
	f.controller, err = New(Params{
		Config:    cfg,
		Lifecycle: f.lifecycle,
		Logger:    zap.NewNop().Sugar(),
		Stats:     tally.NewTestScope("testing", make(map[string]string, 0)),
		Sessions:  f.sessions,
		Documents: f.documents,
		Clock:     f.clock,
	})
	require.NoError(t, err)
	return f
}

// seedSession registers a session in the mock repository and returns it.
func (f *testFixture) seedSession(filePath string) *entity.Session {
	sess := factory.Session(filePath)
	f.sessions.EXPECT().Get(gomock.Any(), sess.UUID).Return(sess, nil).AnyTimes()
	f.sessions.EXPECT().Set(gomock.Any(), sess).Return(nil).AnyTimes()
	return sess
}

func strPtr(s string) *string { return &s }

func posPtr(line, character uint32) *protocol.Position {
	return &protocol.Position{Line: line, Character: character}
}

func TestCreateSession(t *testing.T) {
	f := newTestFixture(t, nil)

	doc := &document.Document{
		URI:        uri.File("/workspace/main.go"),
		Path:       "/workspace/main.go",
		LanguageID: "go",
		Version:    1,
		Text:       "package main\n",
	}
	f.documents.EXPECT().
		Open(gomock.Any(), "/workspace/main.go", protocol.LanguageIdentifier("go")).
		Return(doc, langserver.ValidationResult{Diagnostics: []protocol.Diagnostic{factory.Diagnostic(protocol.DiagnosticSeverityWarning, "unused")}}, nil)
	f.sessions.EXPECT().Set(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, sess *entity.Session) error {
		assert.Equal(t, entity.SessionStateCreated, sess.State)
		assert.Equal(t, "/workspace/main.go", sess.FilePath)
		return nil
	})

	result, err := f.controller.CreateSession(context.Background(), &entity.CreateSessionParams{FilePath: "/workspace/main.go"})
	require.NoError(t, err)
	assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", result.SessionID.String())
	assert.Equal(t, protocol.LanguageIdentifier("go"), result.LanguageID)
	assert.Equal(t, int32(1), result.Version)
	assert.Len(t, result.Diagnostics, 1)
}

func TestCreateSessionLanguageOverride(t *testing.T) {
	f := newTestFixture(t, nil)

	doc := &document.Document{Path: "/workspace/notes.txt", LanguageID: "markdown", Version: 1}
	f.documents.EXPECT().
		Open(gomock.Any(), "/workspace/notes.txt", protocol.LanguageIdentifier("markdown")).
		Return(doc, langserver.ValidationResult{}, nil)
	f.sessions.EXPECT().Set(gomock.Any(), gomock.Any()).Return(nil)

	result, err := f.controller.CreateSession(context.Background(), &entity.CreateSessionParams{
		FilePath:   "/workspace/notes.txt",
		LanguageID: "markdown",
	})
	require.NoError(t, err)
	assert.Equal(t, protocol.LanguageIdentifier("markdown"), result.LanguageID)
}

func TestCreateSessionOpenFailure(t *testing.T) {
	f := newTestFixture(t, nil)

	f.documents.EXPECT().
		Open(gomock.Any(), "/outside/secret.go", protocol.LanguageIdentifier("go")).
		Return(nil, langserver.ValidationResult{}, &errors.PathNotAllowedError{Path: "/outside/secret.go"})

	_, err := f.controller.CreateSession(context.Background(), &entity.CreateSessionParams{FilePath: "/outside/secret.go"})
	require.Error(t, err)
	assert.Equal(t, errors.CodePathNotAllowed, errors.CodeOf(err))
}

func TestDetectLanguage(t *testing.T) {
	assert.Equal(t, protocol.LanguageIdentifier("go"), detectLanguage("/a/main.go", ""))
	assert.Equal(t, protocol.LanguageIdentifier("typescript"), detectLanguage("/a/app.TS", ""))
	assert.Equal(t, protocol.LanguageIdentifier("plaintext"), detectLanguage("/a/readme", ""))
	assert.Equal(t, protocol.LanguageIdentifier("rust"), detectLanguage("/a/main.go", "rust"))
}

func TestApplyEdit(t *testing.T) {
	f := newTestFixture(t, nil)
	sess := f.seedSession("/workspace/main.go")
	docURI := uri.File(sess.FilePath)

	before := &document.Document{URI: docURI, Path: sess.FilePath, Version: 1, Text: "package main\n"}
	after := &document.Document{URI: docURI, Path: sess.FilePath, Version: 2, Text: "// hi\npackage main\n"}
	f.documents.EXPECT().Get(gomock.Any(), docURI).Return(before, nil)
	f.documents.EXPECT().ApplyEdits(gomock.Any(), docURI, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uri.URI, edits []protocol.TextEdit) (*document.Document, langserver.ValidationResult, error) {
			require.Len(t, edits, 1)
			assert.Equal(t, "// hi\n", edits[0].NewText)
			return after, langserver.ValidationResult{}, nil
		})

	op := &entity.EditOperation{Type: entity.EditTypeInsert, Content: strPtr("// hi\n"), Position: posPtr(0, 0)}
	result, err := f.controller.ApplyEdit(context.Background(), sess.UUID, op)
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, int32(2), result.Version)
	assert.False(t, result.TimedOut)
	assert.Equal(t, 1, sess.History.UndoDepth())
	assert.Equal(t, entity.SessionStateActive, sess.State)
}

func TestApplyEditGatesOnErrorDiagnostic(t *testing.T) {
	f := newTestFixture(t, nil)
	sess := f.seedSession("/workspace/main.go")
	docURI := uri.File(sess.FilePath)

	f.documents.EXPECT().Get(gomock.Any(), docURI).Return(&document.Document{URI: docURI, Version: 1, Text: "package main\n"}, nil)
	f.documents.EXPECT().ApplyEdits(gomock.Any(), docURI, gomock.Any()).Return(
		&document.Document{URI: docURI, Version: 2, Text: "xpackage main\n"},
		langserver.ValidationResult{Diagnostics: []protocol.Diagnostic{factory.Diagnostic(protocol.DiagnosticSeverityError, "expected package")}},
		nil)

	op := &entity.EditOperation{Type: entity.EditTypeInsert, Content: strPtr("x"), Position: posPtr(0, 0)}
	result, err := f.controller.ApplyEdit(context.Background(), sess.UUID, op)
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, int32(2), result.Version)
	assert.Len(t, result.Diagnostics, 1)
}

func TestApplyEditWarningPolicy(t *testing.T) {
	warning := langserver.ValidationResult{Diagnostics: []protocol.Diagnostic{factory.Diagnostic(protocol.DiagnosticSeverityWarning, "unused")}}
	op := &entity.EditOperation{Type: entity.EditTypeInsert, Content: strPtr("x"), Position: posPtr(0, 0)}

	run := func(t *testing.T, overrides map[string]interface{}) *entity.EditResult {
		f := newTestFixture(t, overrides)
		sess := f.seedSession("/workspace/main.go")
		docURI := uri.File(sess.FilePath)
		f.documents.EXPECT().Get(gomock.Any(), docURI).Return(&document.Document{URI: docURI, Version: 1, Text: "package main\n"}, nil)
		f.documents.EXPECT().ApplyEdits(gomock.Any(), docURI, gomock.Any()).
			Return(&document.Document{URI: docURI, Version: 2, Text: "xpackage main\n"}, warning, nil)

		result, err := f.controller.ApplyEdit(context.Background(), sess.UUID, op)
		require.NoError(t, err)
		return result
	}

	t.Run("warnings pass by default", func(t *testing.T) {
		result := run(t, nil)
		assert.True(t, result.Success)
	})

	t.Run("failOnWarnings gates warnings", func(t *testing.T) {
		result := run(t, map[string]interface{}{
			"editor": map[string]interface{}{"maxFileSizeBytes": 1000, "failOnWarnings": true},
		})
		assert.False(t, result.Success)
	})
}

func TestApplyEditValidationTimeout(t *testing.T) {
	f := newTestFixture(t, nil)
	sess := f.seedSession("/workspace/main.go")
	docURI := uri.File(sess.FilePath)

	f.documents.EXPECT().Get(gomock.Any(), docURI).Return(&document.Document{URI: docURI, Version: 1, Text: "package main\n"}, nil)
	f.documents.EXPECT().ApplyEdits(gomock.Any(), docURI, gomock.Any()).
		Return(&document.Document{URI: docURI, Version: 2, Text: "xpackage main\n"}, langserver.ValidationResult{TimedOut: true}, nil)

	op := &entity.EditOperation{Type: entity.EditTypeInsert, Content: strPtr("x"), Position: posPtr(0, 0)}
	result, err := f.controller.ApplyEdit(context.Background(), sess.UUID, op)
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.True(t, result.TimedOut)
}

func TestApplyEditOutOfBounds(t *testing.T) {
	f := newTestFixture(t, nil)
	sess := f.seedSession("/workspace/main.go")
	docURI := uri.File(sess.FilePath)

	f.documents.EXPECT().Get(gomock.Any(), docURI).Return(&document.Document{URI: docURI, Version: 1, Text: "package main\n"}, nil)

	op := &entity.EditOperation{Type: entity.EditTypeInsert, Content: strPtr("x"), Position: posPtr(99, 0)}
	_, err := f.controller.ApplyEdit(context.Background(), sess.UUID, op)
	require.Error(t, err)
	assert.Equal(t, errors.CodeOutOfBoundsPosition, errors.CodeOf(err))
	assert.Equal(t, 0, sess.History.UndoDepth())
}

func TestApplyEditCommitFailure(t *testing.T) {
	f := newTestFixture(t, nil)
	sess := f.seedSession("/workspace/main.go")
	docURI := uri.File(sess.FilePath)

	f.documents.EXPECT().Get(gomock.Any(), docURI).Return(&document.Document{URI: docURI, Version: 1, Text: "package main\n"}, nil)
	f.documents.EXPECT().ApplyEdits(gomock.Any(), docURI, gomock.Any()).
		Return(nil, langserver.ValidationResult{}, &errors.NotInitializedError{Language: "go"})

	op := &entity.EditOperation{Type: entity.EditTypeInsert, Content: strPtr("// hi\n"), Position: posPtr(0, 0)}
	_, err := f.controller.ApplyEdit(context.Background(), sess.UUID, op)
	require.Error(t, err)
	assert.Equal(t, errors.CodeNotInitialized, errors.CodeOf(err))

	// Nothing was committed, so nothing is undoable.
	assert.Equal(t, 0, sess.History.UndoDepth())
}

func TestApplyEditUnknownSession(t *testing.T) {
	f := newTestFixture(t, nil)
	id := factory.UUID()
	f.sessions.EXPECT().Get(gomock.Any(), id).Return(nil, &errors.UUIDNotFoundError{UUID: id})

	op := &entity.EditOperation{Type: entity.EditTypeInsert, Content: strPtr("x"), Position: posPtr(0, 0)}
	_, err := f.controller.ApplyEdit(context.Background(), id, op)
	require.Error(t, err)
	assert.Equal(t, errors.CodeSessionNotFound, errors.CodeOf(err))
}

func TestApplyEditAdvisoryWarnings(t *testing.T) {
	f := newTestFixture(t, map[string]interface{}{
		"editor": map[string]interface{}{"maxFileSizeBytes": 10},
	})
	sess := f.seedSession("/workspace/main.go")
	docURI := uri.File(sess.FilePath)

	after := "line one \r\nline two\nlong enough to exceed the limit\n"
	f.documents.EXPECT().Get(gomock.Any(), docURI).Return(&document.Document{URI: docURI, Version: 1, Text: "line two\n"}, nil)
	f.documents.EXPECT().ApplyEdits(gomock.Any(), docURI, gomock.Any()).
		Return(&document.Document{URI: docURI, Version: 2, Text: after}, langserver.ValidationResult{}, nil)

	op := &entity.EditOperation{Type: entity.EditTypeInsert, Content: strPtr("line one \r\n"), Position: posPtr(0, 0)}
	result, err := f.controller.ApplyEdit(context.Background(), sess.UUID, op)
	require.NoError(t, err)
	assert.True(t, result.Success, "advisory warnings never gate")
	require.Len(t, result.Warnings, 3)
	assert.Contains(t, result.Warnings[0], "exceeds configured limit")
	assert.Equal(t, "mixed line endings", result.Warnings[1])
	assert.Equal(t, "trailing whitespace", result.Warnings[2])
}

func TestUndoRedo(t *testing.T) {
	f := newTestFixture(t, nil)
	sess := f.seedSession("/workspace/main.go")
	docURI := uri.File(sess.FilePath)

	forward := protocol.TextEdit{Range: protocol.Range{}, NewText: "// hi\n"}
	inverse := protocol.TextEdit{Range: protocol.Range{End: protocol.Position{Line: 1}}, NewText: ""}
	sess.History.Append(entity.HistoryEntry{Forward: forward, Inverse: inverse, Version: 2})

	f.documents.EXPECT().ApplyEdits(gomock.Any(), docURI, []protocol.TextEdit{inverse}).
		Return(&document.Document{URI: docURI, Version: 3, Text: "package main\n"}, langserver.ValidationResult{}, nil)
	result, err := f.controller.Undo(context.Background(), sess.UUID)
	require.NoError(t, err)
	assert.Equal(t, inverse, result.AppliedEdit)
	assert.Equal(t, int32(3), result.Version)
	assert.Equal(t, 1, sess.History.RedoDepth())

	f.documents.EXPECT().ApplyEdits(gomock.Any(), docURI, []protocol.TextEdit{forward}).
		Return(&document.Document{URI: docURI, Version: 4, Text: "// hi\npackage main\n"}, langserver.ValidationResult{}, nil)
	result, err = f.controller.Redo(context.Background(), sess.UUID)
	require.NoError(t, err)
	assert.Equal(t, forward, result.AppliedEdit)
	assert.Equal(t, 0, sess.History.RedoDepth())
}

func TestUndoEmptyHistory(t *testing.T) {
	f := newTestFixture(t, nil)
	sess := f.seedSession("/workspace/main.go")

	_, err := f.controller.Undo(context.Background(), sess.UUID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nothing to undo")

	_, err = f.controller.Redo(context.Background(), sess.UUID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nothing to redo")
}

func TestUndoApplyFailureRestoresCursor(t *testing.T) {
	f := newTestFixture(t, nil)
	sess := f.seedSession("/workspace/main.go")
	docURI := uri.File(sess.FilePath)

	sess.History.Append(entity.HistoryEntry{Forward: protocol.TextEdit{NewText: "x"}, Inverse: protocol.TextEdit{}, Version: 2})

	f.documents.EXPECT().ApplyEdits(gomock.Any(), docURI, gomock.Any()).
		Return(nil, langserver.ValidationResult{}, &errors.DocumentNotFoundError{URI: docURI})
	_, err := f.controller.Undo(context.Background(), sess.UUID)
	require.Error(t, err)
	assert.Equal(t, 1, sess.History.UndoDepth(), "failed undo stays undoable")
}

func TestValidate(t *testing.T) {
	f := newTestFixture(t, nil)
	sess := f.seedSession("/workspace/main.go")
	sess.State = entity.SessionStateCreated

	f.documents.EXPECT().Validate(gomock.Any(), uri.File(sess.FilePath)).
		Return(langserver.ValidationResult{Diagnostics: []protocol.Diagnostic{factory.Diagnostic(protocol.DiagnosticSeverityHint, "style")}}, nil)

	result, err := f.controller.Validate(context.Background(), sess.UUID)
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Len(t, result.Diagnostics, 1)
	assert.Equal(t, entity.SessionStateActive, sess.State)
}

func TestSave(t *testing.T) {
	f := newTestFixture(t, nil)
	sess := f.seedSession("/workspace/main.go")
	docURI := uri.File(sess.FilePath)

	f.documents.EXPECT().Save(gomock.Any(), docURI).Return(true, nil)
	f.documents.EXPECT().Get(gomock.Any(), docURI).Return(&document.Document{URI: docURI, Version: 3}, nil)

	result, err := f.controller.Save(context.Background(), sess.UUID)
	require.NoError(t, err)
	assert.True(t, result.Saved)
	assert.Equal(t, int32(3), result.Version)
}

func TestCloseSession(t *testing.T) {
	f := newTestFixture(t, nil)

	sess := factory.Session("/workspace/main.go")
	f.sessions.EXPECT().Get(gomock.Any(), sess.UUID).Return(sess, nil)
	f.documents.EXPECT().Close(gomock.Any(), uri.File(sess.FilePath)).Return(true, nil)
	f.sessions.EXPECT().Delete(gomock.Any(), sess.UUID).Return(nil)

	result, err := f.controller.CloseSession(context.Background(), sess.UUID)
	require.NoError(t, err)
	assert.True(t, result.Saved)

	f.sessions.EXPECT().Get(gomock.Any(), sess.UUID).Return(nil, &errors.UUIDNotFoundError{UUID: sess.UUID})
	_, err = f.controller.CloseSession(context.Background(), sess.UUID)
	require.Error(t, err)
	assert.Equal(t, errors.CodeSessionNotFound, errors.CodeOf(err))
}

func TestFormat(t *testing.T) {
	f := newTestFixture(t, nil)
	sess := f.seedSession("/workspace/main.go")
	docURI := uri.File(sess.FilePath)

	edits := []protocol.TextEdit{{NewText: "formatted"}}
	f.documents.EXPECT().Format(gomock.Any(), docURI, protocol.FormattingOptions{TabSize: 4}).
		Return(&document.Document{URI: docURI, Version: 2}, edits, nil)

	result, err := f.controller.Format(context.Background(), sess.UUID, protocol.FormattingOptions{TabSize: 4})
	require.NoError(t, err)
	assert.Equal(t, int32(2), result.Version)
	assert.Equal(t, edits, result.Edits)
}

func TestDefinition(t *testing.T) {
	f := newTestFixture(t, nil)
	sess := f.seedSession("/workspace/main.go")

	locations := []protocol.Location{{URI: uri.File("/workspace/def.go")}}
	f.documents.EXPECT().Definition(gomock.Any(), uri.File(sess.FilePath), protocol.Position{Line: 2, Character: 4}).
		Return(locations, nil)

	got, err := f.controller.Definition(context.Background(), sess.UUID, protocol.Position{Line: 2, Character: 4})
	require.NoError(t, err)
	assert.Equal(t, locations, got)
}

func TestIdleSessionSweep(t *testing.T) {
	f := newTestFixture(t, map[string]interface{}{
		"session": map[string]interface{}{"sweepIntervalMs": 10, "idleTimeoutMs": 1000},
	})

	sess := factory.Session("/workspace/idle.go")
	swept := make(chan struct{})

	f.sessions.EXPECT().IdleSessions(gomock.Any(), gomock.Any()).Return([]uuid.UUID{sess.UUID}, nil)
	f.sessions.EXPECT().IdleSessions(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	f.sessions.EXPECT().Get(gomock.Any(), sess.UUID).Return(sess, nil)
	f.documents.EXPECT().Close(gomock.Any(), uri.File(sess.FilePath)).Return(false, nil)
	f.sessions.EXPECT().Delete(gomock.Any(), sess.UUID).DoAndReturn(func(context.Context, uuid.UUID) error {
		close(swept)
		return nil
	})

	f.lifecycle.RequireStart()
	select {
	case <-swept:
	case <-time.After(5 * time.Second):
		t.Fatal("idle session was not swept")
	}
	f.lifecycle.RequireStop()
}

func TestConcurrentEditsSerialize(t *testing.T) {
	f := newTestFixture(t, nil)
	sess := f.seedSession("/workspace/main.go")
	docURI := uri.File(sess.FilePath)

	version := int32(1)
	text := "package main\n"
	f.documents.EXPECT().Get(gomock.Any(), docURI).DoAndReturn(func(context.Context, uri.URI) (*document.Document, error) {
		return &document.Document{URI: docURI, Version: version, Text: text}, nil
	}).Times(8)
	f.documents.EXPECT().ApplyEdits(gomock.Any(), docURI, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uri.URI, edits []protocol.TextEdit) (*document.Document, langserver.ValidationResult, error) {
			version++
			text = edits[0].NewText + text
			return &document.Document{URI: docURI, Version: version, Text: text}, langserver.ValidationResult{}, nil
		}).Times(8)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			op := &entity.EditOperation{Type: entity.EditTypeInsert, Content: strPtr("// a\n"), Position: posPtr(0, 0)}
			_, err := f.controller.ApplyEdit(context.Background(), sess.UUID, op)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(9), version)
	assert.Equal(t, strings.Repeat("// a\n", 8)+"package main\n", text)
	assert.Equal(t, 8, sess.History.UndoDepth())
}
