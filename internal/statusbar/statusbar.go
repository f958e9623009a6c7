// internal/statusbar/statusbar.go
package statusbar

import (
	"fmt"
	"sync"
	"time"

	"github.com/bethropolis/tidejump/internal/types"
)

const DefaultMessageTimeout = 4 * time.Second

// StatusBar composes the status line shown while jumping.
type StatusBar struct {
	mu             sync.RWMutex
	messageTimeout time.Duration
	now            func() time.Time

	filePath  string
	cursorPos types.Position
	jumpMode  string // "word" or "line"
	selecting string // "", "select" or "select-line"
	input     string
	tagCount  int

	tempMessage     string
	tempMessageTime time.Time
}

// New creates a StatusBar whose temporary messages last messageTimeout.
func New(messageTimeout time.Duration) *StatusBar {
	return &StatusBar{messageTimeout: messageTimeout, now: time.Now}
}

// SetFileInfo updates the file path shown in the status bar.
func (sb *StatusBar) SetFileInfo(path string) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.filePath = path
}

// SetCursorInfo updates the cursor position shown.
func (sb *StatusBar) SetCursorInfo(pos types.Position) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.cursorPos = pos
}

// SetJumpInfo updates the jump strategy, the selection kind, the typed
// input and the number of tags on screen.
func (sb *StatusBar) SetJumpInfo(mode, selecting, input string, tagCount int) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.jumpMode = mode
	sb.selecting = selecting
	sb.input = input
	sb.tagCount = tagCount
}

// SetTemporaryMessage displays a message for the configured duration.
func (sb *StatusBar) SetTemporaryMessage(format string, args ...interface{}) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tempMessage = fmt.Sprintf(format, args...)
	sb.tempMessageTime = sb.now()
}

// Text returns the current status line: a live temporary message, or the
// jump summary.
func (sb *StatusBar) Text() string {
	sb.mu.RLock()
	defer sb.mu.RUnlock()

	if sb.tempMessage != "" && sb.now().Sub(sb.tempMessageTime) < sb.messageTimeout {
		return sb.tempMessage
	}

	fPath := sb.filePath
	if fPath == "" {
		fPath = "[No Name]"
	}
	mode := "JUMP " + sb.jumpMode
	if sb.selecting != "" {
		mode += " +" + sb.selecting
	}
	return fmt.Sprintf("%s -- %s -- Line: %d, Col: %d -- %d tags -- %s_",
		mode, fPath, sb.cursorPos.Line+1, sb.cursorPos.Offset+1, sb.tagCount, sb.input)
}
