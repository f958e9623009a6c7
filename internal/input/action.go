// internal/input/action.go
package input

// Action represents an operation requested while jump mode is active.
type Action int

const (
	ActionUnknown Action = iota // Default/invalid action
	ActionQuit                  // Leave without jumping
	ActionCancel                // Clear typed input, or quit when there is none

	// --- Jump Input ---
	ActionTagRune        // Requires Rune argument
	ActionDeleteTagChar  // Backspace
	ActionToggleLineMode // Switch between word and line tags

	// --- Viewport ---
	ActionMoveUp
	ActionMoveDown
	ActionMovePageUp
	ActionMovePageDown
)

var actionNames = map[Action]string{
	ActionUnknown:        "Unknown",
	ActionQuit:           "Quit",
	ActionCancel:         "Cancel",
	ActionTagRune:        "TagRune",
	ActionDeleteTagChar:  "DeleteTagChar",
	ActionToggleLineMode: "ToggleLineMode",
	ActionMoveUp:         "MoveUp",
	ActionMoveDown:       "MoveDown",
	ActionMovePageUp:     "MovePageUp",
	ActionMovePageDown:   "MovePageDown",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return actionNames[ActionUnknown]
}

// ActionEvent represents a decoded input event resulting in an action.
type ActionEvent struct {
	Action Action
	Rune   rune // Used for ActionTagRune
}
