// internal/buffer/slice_buffer.go
package buffer

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/bethropolis/tidejump/internal/types"
	"github.com/bethropolis/tidejump/internal/utils"
)

// SliceBuffer stores the file as a slice of lines without their newlines.
type SliceBuffer struct {
	lines    [][]byte
	filePath string
}

// NewSliceBuffer creates an empty SliceBuffer.
func NewSliceBuffer() *SliceBuffer {
	return &SliceBuffer{
		// Start with a single empty line, common for new files
		lines: [][]byte{[]byte("")},
	}
}

// Load reads a file into the buffer. Replaces existing content.
func (sb *SliceBuffer) Load(filePath string) error {
	file, err := os.Open(filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			sb.lines = [][]byte{[]byte("")}
			sb.filePath = filePath
			return nil
		}
		return fmt.Errorf("failed to open file '%s': %w", filePath, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	newLines := [][]byte{}
	for scanner.Scan() {
		line := scanner.Bytes()
		lineCopy := make([]byte, len(line))
		copy(lineCopy, line)
		newLines = append(newLines, lineCopy)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading file '%s': %w", filePath, err)
	}
	if len(newLines) == 0 {
		newLines = append(newLines, []byte(""))
	}
	sb.lines = newLines
	sb.filePath = filePath
	return nil
}

// SetContent replaces the buffer with content split on '\n'.
// A trailing newline does not produce an extra empty line.
func (sb *SliceBuffer) SetContent(content []byte) {
	content = bytes.TrimSuffix(content, []byte("\n"))
	parts := bytes.Split(content, []byte("\n"))
	sb.lines = make([][]byte, len(parts))
	for i, part := range parts {
		sb.lines[i] = bytes.TrimSuffix(append([]byte(nil), part...), []byte("\r"))
	}
}

func (sb *SliceBuffer) Lines() [][]byte {
	return sb.lines
}

func (sb *SliceBuffer) LineCount() int {
	return len(sb.lines)
}

// Line returns the bytes of a single line.
func (sb *SliceBuffer) Line(index int) ([]byte, error) {
	if index < 0 || index >= len(sb.lines) {
		return nil, fmt.Errorf("%w: %d (0-%d)", ErrLineOutOfRange, index, len(sb.lines)-1)
	}
	return sb.lines[index], nil
}

// Bytes joins all lines with '\n'.
func (sb *SliceBuffer) Bytes() []byte {
	var buffer bytes.Buffer
	for i, line := range sb.lines {
		buffer.Write(line)
		if i < len(sb.lines)-1 {
			buffer.WriteByte('\n')
		}
	}
	return buffer.Bytes()
}

func (sb *SliceBuffer) FilePath() string {
	return sb.filePath
}

// Text returns the half-open span [start, end). Positions are clamped to the
// buffer and swapped if reversed.
func (sb *SliceBuffer) Text(start, end types.Position) string {
	if end.Before(start) {
		start, end = end, start
	}
	start = sb.clamp(start)
	end = sb.clamp(end)

	if start.Line == end.Line {
		line := sb.lines[start.Line]
		from := utils.RuneIndexToByteOffset(line, start.Offset)
		to := utils.RuneIndexToByteOffset(line, end.Offset)
		return string(line[from:to])
	}

	var text strings.Builder
	first := sb.lines[start.Line]
	text.Write(first[utils.RuneIndexToByteOffset(first, start.Offset):])
	for i := start.Line + 1; i < end.Line; i++ {
		text.WriteByte('\n')
		text.Write(sb.lines[i])
	}
	last := sb.lines[end.Line]
	text.WriteByte('\n')
	text.Write(last[:utils.RuneIndexToByteOffset(last, end.Offset)])
	return text.String()
}

// clamp moves pos inside the buffer. Positions past the last line map to the
// end of the last line.
func (sb *SliceBuffer) clamp(pos types.Position) types.Position {
	if pos.Line < 0 {
		return types.Position{}
	}
	if pos.Line >= len(sb.lines) {
		lastLine := len(sb.lines) - 1
		return types.Position{Line: lastLine, Offset: utils.RuneCount(sb.lines[lastLine])}
	}
	if pos.Offset < 0 {
		pos.Offset = 0
	}
	if n := utils.RuneCount(sb.lines[pos.Line]); pos.Offset > n {
		pos.Offset = n
	}
	return pos
}
