package mapper

import (
	"bytes"
	"sort"

	"github.com/sergi/go-diff/diffmatchpatch"
	"go.lsp.dev/protocol"

	"github.com/oakenai/hedit/src/hedit/entity"
	"github.com/oakenai/hedit/src/hedit/internal/errors"
	protocolmapper "github.com/oakenai/hedit/src/hedit/internal/protocol"
)

// EditOffset stores a string modification based on character offset in the string.
type EditOffset struct {
	start int
	end   int
	text  string
}

// OperationToTextEdit resolves a structural edit operation into a concrete TextEdit
// against the given document snapshot. Positions are checked against the snapshot's
// extents, and a range whose end precedes its start is rejected.
func OperationToTextEdit(op *entity.EditOperation, content []byte) (protocol.TextEdit, error) {
	if err := op.Validate(); err != nil {
		return protocol.TextEdit{}, err
	}

	var editRange protocol.Range
	var newText string
	switch op.Type {
	case entity.EditTypeInsert:
		point := op.Position
		if point == nil {
			point = &op.Range.Start
		}
		editRange = protocol.Range{Start: *point, End: *point}
		newText = *op.Content
	case entity.EditTypeDelete:
		editRange = *op.Range
	case entity.EditTypeReplace:
		editRange = *op.Range
		newText = *op.Content
	}

	m := protocolmapper.NewTextOffsetMapper(content)
	start, err := m.PositionOffset(editRange.Start)
	if err != nil {
		return protocol.TextEdit{}, &errors.OutOfBoundsError{Position: editRange.Start, Lines: m.LineCount()}
	}
	end, err := m.PositionOffset(editRange.End)
	if err != nil {
		return protocol.TextEdit{}, &errors.OutOfBoundsError{Position: editRange.End, Lines: m.LineCount()}
	}
	if end < start {
		return protocol.TextEdit{}, &errors.InvalidRangeError{Range: editRange}
	}

	return protocol.TextEdit{Range: editRange, NewText: newText}, nil
}

// ApplyTextEdits applies a set of edits to a document snapshot. All ranges are
// resolved against the unmodified snapshot, then applied back to front so that
// earlier applications do not shift later offsets.
func ApplyTextEdits(text string, edits []protocol.TextEdit) (string, error) {
	content := []byte(text)
	m := protocolmapper.NewTextOffsetMapper(content)

	resolved := make([]EditOffset, 0, len(edits))
	for _, edit := range edits {
		start, err := m.PositionOffset(edit.Range.Start)
		if err != nil {
			return "", &errors.OutOfBoundsError{Position: edit.Range.Start, Lines: m.LineCount()}
		}
		end, err := m.PositionOffset(edit.Range.End)
		if err != nil {
			return "", &errors.OutOfBoundsError{Position: edit.Range.End, Lines: m.LineCount()}
		}
		if end < start {
			return "", &errors.InvalidRangeError{Range: edit.Range}
		}
		resolved = append(resolved, EditOffset{start: start, end: end, text: edit.NewText})
	}

	sort.SliceStable(resolved, func(i, j int) bool {
		return resolved[i].start > resolved[j].start
	})

	for _, edit := range resolved {
		var buf bytes.Buffer
		buf.Write(content[:edit.start])
		buf.WriteString(edit.text)
		buf.Write(content[edit.end:])
		content = buf.Bytes()
	}

	return string(content), nil
}

// InverseTextEdit computes the exact edit that reverts the given edit once it has
// been applied to the before snapshot. The inverse restores the replaced text at
// the range the new text occupies in the resulting document.
func InverseTextEdit(before string, edit protocol.TextEdit) (protocol.TextEdit, error) {
	content := []byte(before)
	m := protocolmapper.NewTextOffsetMapper(content)

	start, err := m.PositionOffset(edit.Range.Start)
	if err != nil {
		return protocol.TextEdit{}, &errors.OutOfBoundsError{Position: edit.Range.Start, Lines: m.LineCount()}
	}
	end, err := m.PositionOffset(edit.Range.End)
	if err != nil {
		return protocol.TextEdit{}, &errors.OutOfBoundsError{Position: edit.Range.End, Lines: m.LineCount()}
	}
	if end < start {
		return protocol.TextEdit{}, &errors.InvalidRangeError{Range: edit.Range}
	}
	replaced := string(content[start:end])

	var buf bytes.Buffer
	buf.Write(content[:start])
	buf.WriteString(edit.NewText)
	buf.Write(content[end:])

	after := protocolmapper.NewTextOffsetMapper(buf.Bytes())
	endPosition, err := after.OffsetPosition(start + len(edit.NewText))
	if err != nil {
		return protocol.TextEdit{}, err
	}

	return protocol.TextEdit{
		Range:   PositionsToRange(edit.Range.Start, endPosition),
		NewText: replaced,
	}, nil
}

// DiffsToEditOffsets converts diffs into a list of text edits based on offsets within the initial text.
func DiffsToEditOffsets(diffs []diffmatchpatch.Diff) (initialText bytes.Buffer, offsets []EditOffset) {
	edits := make([]EditOffset, 0, len(diffs))
	offset := 0
	for _, d := range diffs {
		start := offset
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			initialText.Write([]byte(d.Text))
			offset += len(d.Text)
			edits = append(edits, EditOffset{start: start, end: offset, text: ""})
		case diffmatchpatch.DiffEqual:
			initialText.Write([]byte(d.Text))
			offset += len(d.Text)
		case diffmatchpatch.DiffInsert:
			edits = append(edits, EditOffset{start: start, end: start, text: d.Text})
		}
	}
	return initialText, edits
}

// EditOffsetsToTextEdits converts a list of offset based edits to TextEdits formatted for LSP protocol.
func EditOffsetsToTextEdits(initialText bytes.Buffer, edits []EditOffset) ([]protocol.TextEdit, error) {
	protocolTextEdits := make([]protocol.TextEdit, 0, len(edits))
	m := protocolmapper.NewTextOffsetMapper(initialText.Bytes())
	for _, edit := range edits {
		startPosition, err := m.OffsetPosition(edit.start)
		if err != nil {
			return nil, err
		}
		endPosition, err := m.OffsetPosition(edit.end)
		if err != nil {
			return nil, err
		}
		protocolTextEdits = append(protocolTextEdits, rangeToTextEdit(PositionsToRange(startPosition, endPosition), edit.text))
	}
	return protocolTextEdits, nil
}

// DiffsToTextEdits converts diffs into a list of text edits that can be applied to a document.
func DiffsToTextEdits(diffs []diffmatchpatch.Diff) ([]protocol.TextEdit, error) {
	foundText, edits := DiffsToEditOffsets(diffs)
	return EditOffsetsToTextEdits(foundText, edits)
}

// PositionsToRange converts two positions into a range.
func PositionsToRange(start, end protocol.Position) protocol.Range {
	return protocol.Range{
		Start: start,
		End:   end,
	}
}

func rangeToTextEdit(r protocol.Range, text string) protocol.TextEdit {
	return protocol.TextEdit{
		Range:   r,
		NewText: text,
	}
}
