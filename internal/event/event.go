// internal/event/event.go
package event

import (
	"github.com/bethropolis/tidejump/internal/types"
)

// Type identifies the kind of event.
type Type int

// Define specific event types.
const (
	TypeUnknown Type = iota

	// Jump Events
	TypeTagsAssigned // Fired after a tagging pass over the visible lines
	TypeJumpResolved // Fired when the typed input names a tag

	// Core Editor Events
	TypeCursorMoved      // Fired when the cursor position changes
	TypeSelectionChanged // Fired when a jump extends a selection

	// Application Lifecycle Events
	TypeAppReady // Fired when the application is fully initialized
	TypeAppQuit  // Fired just before application termination begins
)

var typeNames = [...]string{
	TypeUnknown:          "Unknown",
	TypeTagsAssigned:     "TagsAssigned",
	TypeJumpResolved:     "JumpResolved",
	TypeCursorMoved:      "CursorMoved",
	TypeSelectionChanged: "SelectionChanged",
	TypeAppReady:         "AppReady",
	TypeAppQuit:          "AppQuit",
}

func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return typeNames[TypeUnknown]
	}
	return typeNames[t]
}

// Event is the structure passed through the event bus.
type Event struct {
	Type Type        // The kind of event
	Data interface{} // Payload carrying event-specific data
}

// --- Specific Event Data Structures ---

// TagsAssignedData summarises a tagging pass.
type TagsAssignedData struct {
	Count    int
	LineMode bool
	Visible  types.LineRange
}

// JumpResolvedData carries the tag the user typed and where it led.
type JumpResolvedData struct {
	Tag      string
	Position types.Position
}

// CursorMovedData contains the new cursor position.
type CursorMovedData struct {
	NewPosition types.Position
}

// SelectionChangedData holds the normalized selection after a jump.
// End is exclusive.
type SelectionChangedData struct {
	Start types.Position
	End   types.Position
}

// AppQuitData could contain exit code or reason later.
type AppQuitData struct{}

// AppReadyData could contain initial config or state later.
type AppReadyData struct{}
