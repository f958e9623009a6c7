package core

import (
	"github.com/bethropolis/tidejump/internal/event"
	"github.com/bethropolis/tidejump/internal/utils"
)

// MoveCursor moves the cursor by the given deltas, clamps it to the buffer
// and adjusts the viewport.
func (e *Editor) MoveCursor(deltaLine, deltaCol int) {
	e.moveTo(e.cursor.Line+deltaLine, e.cursor.Offset+deltaCol)
}

// moveTo clamps the target to the buffer, moves there, and dispatches
// TypeCursorMoved when the cursor actually changed position.
func (e *Editor) moveTo(targetLine, targetCol int) {
	lineCount := e.buffer.LineCount()

	// Clamp targetLine vertically
	if targetLine >= lineCount {
		targetLine = lineCount - 1
	}
	if targetLine < 0 {
		targetLine = 0
	}

	// Clamp targetCol to the target line's content
	if targetCol < 0 {
		targetCol = 0
	}
	if lineBytes, err := e.buffer.Line(targetLine); err == nil {
		if maxCol := utils.RuneCount(lineBytes); targetCol > maxCol {
			targetCol = maxCol
		}
	} else {
		targetCol = 0
	}

	previous := e.cursor
	e.cursor.Line = targetLine
	e.cursor.Offset = targetCol
	e.ScrollToCursor()

	if e.cursor != previous {
		e.dispatch(event.TypeCursorMoved, event.CursorMovedData{NewPosition: e.cursor})
	}
}

// ScrollToCursor adjusts the viewport so the cursor stays ScrollOff lines
// away from either edge.
func (e *Editor) ScrollToCursor() {
	if e.viewHeight <= 0 {
		return // Cannot scroll if view has no dimensions
	}

	// Effective scrolloff (cannot be larger than half the view height)
	effectiveScrollOff := e.ScrollOff
	if effectiveScrollOff*2 >= e.viewHeight {
		effectiveScrollOff = (e.viewHeight - 1) / 2
	}

	if e.cursor.Line < e.ViewportY+effectiveScrollOff {
		e.ViewportY = e.cursor.Line - effectiveScrollOff
	} else if e.cursor.Line >= e.ViewportY+e.viewHeight-effectiveScrollOff {
		e.ViewportY = e.cursor.Line - e.viewHeight + 1 + effectiveScrollOff
	}

	// Clamp viewport origin
	maxViewportY := e.buffer.LineCount() - e.viewHeight
	if maxViewportY < 0 {
		maxViewportY = 0
	}
	if e.ViewportY > maxViewportY {
		e.ViewportY = maxViewportY
	}
	if e.ViewportY < 0 {
		e.ViewportY = 0
	}
}

// PageMove moves the cursor and viewport up or down by one page height.
// 'deltaPages' is typically +1 (PageDown) or -1 (PageUp).
func (e *Editor) PageMove(deltaPages int) {
	if e.viewHeight <= 0 {
		return // Cannot page if view has no height
	}

	// Explicitly move viewport - ScrollToCursor might not jump a full page
	e.ViewportY += e.viewHeight * deltaPages
	e.MoveCursor(e.viewHeight*deltaPages, 0)
}
