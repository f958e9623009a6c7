// internal/buffer/buffer.go
package buffer

import (
	"errors"

	"github.com/bethropolis/tidejump/internal/types"
)

// ErrLineOutOfRange is returned when a line index falls outside the buffer.
var ErrLineOutOfRange = errors.New("line index out of range")

// Buffer defines the read-only text operations jump navigation needs.
type Buffer interface {
	Load(filePath string) error
	SetContent(content []byte)
	Lines() [][]byte
	Line(index int) ([]byte, error)
	LineCount() int
	Bytes() []byte
	FilePath() string
	Text(start, end types.Position) string
}
