// Package selection holds the selection states that jump navigation can
// extend: a character-wise range and a line-wise span.
package selection

import (
	"github.com/bethropolis/tidejump/internal/logger"
	"github.com/bethropolis/tidejump/internal/types"
)

// Range is a character-wise selection. The anchor stays where the
// selection started; the head follows the cursor.
type Range struct {
	anchor types.Position
	head   types.Position
}

// NewRange starts a range selection anchored at pos.
func NewRange(anchor types.Position) *Range {
	logger.DebugTagf("selection", "Range selection started at %v", anchor)
	return &Range{anchor: anchor, head: anchor}
}

// Extend moves the head of the selection to pos.
func (r *Range) Extend(pos types.Position) {
	r.head = pos
	logger.DebugTagf("selection", "Range selection head moved to %v", pos)
}

// Bounds returns the normalized range [start, end). ok is false while the
// selection is still empty.
func (r *Range) Bounds() (start, end types.Position, ok bool) {
	start, end = r.anchor, r.head
	if end.Before(start) {
		start, end = end, start
	}
	return start, end, start != end
}

// Lines is a line-wise selection covering whole lines between the anchor
// line and the head line, both inclusive.
type Lines struct {
	anchor int
	head   int
}

// NewLines starts a line selection anchored at line.
func NewLines(anchor int) *Lines {
	logger.DebugTagf("selection", "Line selection started at line %d", anchor)
	return &Lines{anchor: anchor, head: anchor}
}

// Extend moves the head of the selection to line.
func (l *Lines) Extend(line int) {
	l.head = line
	logger.DebugTagf("selection", "Line selection head moved to line %d", line)
}

// Bounds returns the first and last selected lines.
func (l *Lines) Bounds() (first, last int) {
	if l.head < l.anchor {
		return l.head, l.anchor
	}
	return l.anchor, l.head
}

// Span converts the selected lines into a half-open position range that
// ends at the start of the line after the last one.
func (l *Lines) Span() (start, end types.Position) {
	first, last := l.Bounds()
	return types.Position{Line: first}, types.Position{Line: last + 1}
}
