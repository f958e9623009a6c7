// internal/core/editor.go
package core

import (
	"context"
	"fmt"

	"github.com/bethropolis/tidejump/internal/buffer"
	"github.com/bethropolis/tidejump/internal/config"
	"github.com/bethropolis/tidejump/internal/core/clipboard"
	"github.com/bethropolis/tidejump/internal/event"
	hl "github.com/bethropolis/tidejump/internal/highlighter"
	"github.com/bethropolis/tidejump/internal/highlighter/lang"
	"github.com/bethropolis/tidejump/internal/logger"
	"github.com/bethropolis/tidejump/internal/types"
)

// Editor owns the buffer, its token stream, the cursor and the viewport.
// It is the buffer a jump pass reads and the consumer of resolved jumps.
type Editor struct {
	buffer     buffer.Buffer
	tokens     []types.Token
	cursor     types.Position
	ViewportY  int // Top visible line index (0-based)
	viewWidth  int // Cached terminal width
	viewHeight int // Cached terminal height (excluding status bar)
	ScrollOff  int // Number of lines to keep visible above/below cursor

	clipboard    *clipboard.Manager
	eventManager *event.Manager
}

// NewEditor creates a new Editor instance with a given buffer.
func NewEditor(buf buffer.Buffer) *Editor {
	return &Editor{
		buffer:    buf,
		ScrollOff: config.DefaultScrollOff,
		clipboard: clipboard.NewManager(false),
	}
}

// SetEventManager sets the event manager for dispatching events
func (e *Editor) SetEventManager(mgr *event.Manager) {
	e.eventManager = mgr
}

// SetClipboard replaces the clipboard used by YankSelection.
func (e *Editor) SetClipboard(c *clipboard.Manager) {
	e.clipboard = c
}

// Clipboard returns the clipboard used by YankSelection.
func (e *Editor) Clipboard() *clipboard.Manager {
	return e.clipboard
}

func (e *Editor) dispatch(eventType event.Type, data interface{}) {
	if e.eventManager != nil {
		e.eventManager.Dispatch(eventType, data)
	}
}

// GetBuffer returns the editor's buffer.
func (e *Editor) GetBuffer() buffer.Buffer {
	return e.buffer
}

// Tokens returns the lexical stream of the whole buffer.
func (e *Editor) Tokens() []types.Token {
	return e.tokens
}

// SetTokens replaces the token stream. The lexemes must concatenate to the
// buffer content.
func (e *Editor) SetTokens(tokens []types.Token) {
	e.tokens = tokens
}

// Retokenize rebuilds the token stream from the buffer through the cache,
// picking the grammar from the buffer's file extension.
func (e *Editor) Retokenize(ctx context.Context, cache *hl.Cache) error {
	path := e.buffer.FilePath()
	tokens, err := cache.Tokens(ctx, path, e.buffer.Bytes(), lang.GetForFile(path))
	if err != nil {
		return fmt.Errorf("tokenizing %s: %w", path, err)
	}
	e.tokens = tokens
	logger.DebugTagf("editor", "Retokenized %s: %d tokens", path, len(tokens))
	return nil
}

// Cursor returns the current cursor position.
func (e *Editor) Cursor() types.Position {
	return e.cursor
}

// SetCursor moves the cursor to pos, clamped to the buffer.
func (e *Editor) SetCursor(pos types.Position) {
	e.moveTo(pos.Line, pos.Offset)
}

// SetViewSize updates the cached view dimensions. Called on resize or before drawing.
func (e *Editor) SetViewSize(width, height int) {
	e.viewWidth = width
	if height > config.StatusBarHeight {
		e.viewHeight = height - config.StatusBarHeight
	} else {
		e.viewHeight = 0 // No space to draw buffer
	}
	e.ScrollToCursor()
}

// ViewHeight returns the number of buffer lines that fit on screen.
func (e *Editor) ViewHeight() int {
	return e.viewHeight
}

// VisibleRange returns the half-open range of lines on screen.
func (e *Editor) VisibleRange() types.LineRange {
	return types.NewLineRange(e.ViewportY, e.ViewportY+e.viewHeight)
}
