// internal/types/position.go
package types

import "unicode/utf8"

// Position represents a cursor or text position within the buffer.
// Line is the 0-based line index.
// Offset is the 0-based rune index within the line.
type Position struct {
	Line   int
	Offset int // Rune index
}

// Before reports whether p sorts strictly before other.
func (p Position) Before(other Position) bool {
	return p.Line < other.Line || (p.Line == other.Line && p.Offset < other.Offset)
}

// Add advances the position past a span measured by d.
// Crossing a newline resets the offset before the trailing run is added.
func (p *Position) Add(d Distance) {
	if d.Lines > 0 {
		p.Line += d.Lines
		p.Offset = 0
	}
	p.Offset += d.Offset
}

// Distance is a line/offset delta covering a span of text.
type Distance struct {
	Lines  int // Newlines in the span
	Offset int // Runes after the final newline (or the whole span if none)
}

// DistanceOf measures text in Distance terms.
func DistanceOf(text string) Distance {
	var d Distance
	for _, r := range text {
		if r == '\n' {
			d.Lines++
			d.Offset = 0
			continue
		}
		d.Offset++
	}
	return d
}

// LineRange is a half-open span of lines [Start, End), typically the viewport.
type LineRange struct {
	Start int
	End   int
}

// NewLineRange builds a range, swapping the bounds if they are reversed.
func NewLineRange(start, end int) LineRange {
	if end < start {
		start, end = end, start
	}
	return LineRange{Start: start, End: end}
}

// Includes reports whether line falls within the range.
func (r LineRange) Includes(line int) bool {
	return line >= r.Start && line < r.End
}

// Len returns the number of lines covered.
func (r LineRange) Len() int {
	return r.End - r.Start
}

// RuneLen is shorthand for the rune length of a lexeme.
func RuneLen(s string) int {
	return utf8.RuneCountInString(s)
}
