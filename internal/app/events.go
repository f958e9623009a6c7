package app

import (
	"unicode/utf8"

	"github.com/bethropolis/tidejump/internal/event"
	"github.com/bethropolis/tidejump/internal/input"
	"github.com/bethropolis/tidejump/internal/logger"
	"github.com/gdamore/tcell/v2"
)

// subscribe wires app-level reactions to editor events.
func (a *App) subscribe() {
	a.eventManager.Subscribe(event.TypeCursorMoved, a.handleCursorMovedForStatus)
	a.eventManager.Subscribe(event.TypeJumpResolved, a.handleJumpResolved)
	a.eventManager.Subscribe(event.TypeSelectionChanged, a.handleSelectionChanged)
}

func (a *App) handleCursorMovedForStatus(e event.Event) bool {
	if data, ok := e.Data.(event.CursorMovedData); ok {
		a.statusBar.SetCursorInfo(data.NewPosition)
	}
	return false
}

func (a *App) handleJumpResolved(e event.Event) bool {
	if data, ok := e.Data.(event.JumpResolvedData); ok {
		a.result.Jumped = true
		a.result.Tag = data.Tag
		a.result.Position = data.Position
	}
	return false
}

// handleSelectionChanged yanks the selection a jump just extended.
func (a *App) handleSelectionChanged(e event.Event) bool {
	if text, ok := a.editor.SelectionText(a.mode.SelectMode); ok {
		a.editor.Clipboard().Yank(text)
		a.result.Yanked = text
	}
	return false
}

// HandleEvent applies one terminal event and reports whether the screen
// needs a redraw. Tags typed here resolve against the last drawn pass.
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch eventData := ev.(type) {
	case *tcell.EventResize:
		a.tuiManager.GetScreen().Sync()
		return true
	case *tcell.EventKey:
		return a.handleKey(a.inputProcessor.ProcessEvent(eventData))
	}
	return false
}

func (a *App) handleKey(actionEvent input.ActionEvent) bool {
	m := a.mode
	switch actionEvent.Action {
	case input.ActionTagRune:
		candidate := m.Input + string(actionEvent.Rune)
		if !m.HasPrefix(candidate) {
			a.statusBar.SetTemporaryMessage("No tag starts with %q", candidate)
			return true
		}
		m.Input = candidate
		if a.editor.ApplyJump(m) {
			a.signalQuit()
		}
		return true

	case input.ActionDeleteTagChar:
		if m.Input != "" {
			_, size := utf8.DecodeLastRuneInString(m.Input)
			m.Input = m.Input[:len(m.Input)-size]
		}
		return true

	case input.ActionCancel:
		if m.Input != "" {
			m.Input = ""
			return true
		}
		a.signalQuit()
		return false

	case input.ActionQuit:
		a.signalQuit()
		return false

	case input.ActionToggleLineMode:
		m.LineMode = !m.LineMode
		m.Input = ""
		return true

	case input.ActionMoveUp:
		a.moveCursor(-1)
		return true
	case input.ActionMoveDown:
		a.moveCursor(1)
		return true
	case input.ActionMovePageUp:
		m.Input = ""
		a.editor.PageMove(-1)
		return true
	case input.ActionMovePageDown:
		m.Input = ""
		a.editor.PageMove(1)
		return true
	}

	logger.DebugTagf("app", "Ignoring action %v", actionEvent.Action)
	return false
}

// moveCursor moves the line cursor; tags are reissued on the next draw so
// any partial input is dropped.
func (a *App) moveCursor(deltaLine int) {
	a.mode.Input = ""
	a.editor.MoveCursor(deltaLine, 0)
}
