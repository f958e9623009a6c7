package core

import (
	"github.com/bethropolis/tidejump/internal/event"
	"github.com/bethropolis/tidejump/internal/jump"
	"github.com/bethropolis/tidejump/internal/logger"
	"github.com/bethropolis/tidejump/internal/types"
)

// ApplyJump resolves m.Input against the last tagging pass. On a miss it
// returns false and leaves the input alone so more characters can be typed.
// On a hit it moves the cursor, extends the selection carried by
// m.SelectMode and clears the input.
func (e *Editor) ApplyJump(m *jump.Mode) bool {
	pos, ok := m.MapTag(m.Input)
	if !ok {
		return false
	}
	tag := m.Input
	m.Input = ""

	e.SetCursor(pos)
	logger.DebugTagf("jump", "Jumped via %q to %v", tag, e.cursor)
	e.dispatch(event.TypeJumpResolved, event.JumpResolvedData{Tag: tag, Position: e.cursor})

	if start, end, ok := e.extendSelection(m.SelectMode); ok {
		e.dispatch(event.TypeSelectionChanged, event.SelectionChangedData{Start: start, End: end})
	}
	return true
}

// extendSelection moves the head of the composed selection to the cursor.
func (e *Editor) extendSelection(opt jump.SelectOption) (start, end types.Position, ok bool) {
	switch sel := opt.(type) {
	case jump.ExtendSelection:
		if sel.Range == nil {
			return start, end, false
		}
		sel.Range.Extend(e.cursor)
		return sel.Range.Bounds()
	case jump.ExtendLineSelection:
		if sel.Lines == nil {
			return start, end, false
		}
		sel.Lines.Extend(e.cursor.Line)
		start, end = sel.Lines.Span()
		return start, end, true
	}
	return start, end, false
}

// SelectionText returns the text covered by the selection in opt.
func (e *Editor) SelectionText(opt jump.SelectOption) (string, bool) {
	var start, end types.Position
	switch sel := opt.(type) {
	case jump.ExtendSelection:
		if sel.Range == nil {
			return "", false
		}
		var ok bool
		if start, end, ok = sel.Range.Bounds(); !ok {
			return "", false
		}
	case jump.ExtendLineSelection:
		if sel.Lines == nil {
			return "", false
		}
		start, end = sel.Lines.Span()
	default:
		return "", false
	}
	return e.buffer.Text(start, end), true
}

// YankSelection copies the selection in opt to the clipboard.
func (e *Editor) YankSelection(opt jump.SelectOption) bool {
	text, ok := e.SelectionText(opt)
	if !ok || e.clipboard == nil {
		return false
	}
	e.clipboard.Yank(text)
	return true
}
