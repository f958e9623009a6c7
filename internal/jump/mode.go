// Package jump assigns short tags to on-screen jump targets, tracks the
// buffer position each tag denotes, and produces the display token stream
// that shows the tags in place of the targets' leading characters.
package jump

import (
	"sort"

	"github.com/bethropolis/tidejump/internal/core/selection"
	"github.com/bethropolis/tidejump/internal/lexer"
	"github.com/bethropolis/tidejump/internal/logger"
	"github.com/bethropolis/tidejump/internal/types"
)

// Buffer is what a tagging pass reads from the text buffer.
type Buffer interface {
	Tokens() []types.Token // Whole-buffer lexical stream
	Cursor() types.Position
}

// SelectOption records what a resolved jump is used for. The tagging pass
// ignores it; only the consumer that resolves a tag branches on it.
type SelectOption interface {
	isSelectOption()
}

// NoSelection is plain cursor navigation.
type NoSelection struct{}

// ExtendSelection extends a character-wise selection to the jump target.
type ExtendSelection struct {
	Range *selection.Range
}

// ExtendLineSelection extends a line-wise selection to the target's line.
type ExtendLineSelection struct {
	Lines *selection.Lines
}

func (NoSelection) isSelectOption() {}
func (ExtendSelection) isSelectOption() {}
func (ExtendLineSelection) isSelectOption() {}

// Options configures the tag alphabets used by a Mode.
type Options struct {
	Alphabet     string // Multi-character tags
	LineAlphabet string // Single-character tags in line mode
	LineMode     bool   // Initial strategy
}

// Target is a tag and the position it resolves to.
type Target struct {
	Tag      string
	Position types.Position
}

// Mode is the jump state kept while jump mode is active.
type Mode struct {
	// Input is the partially typed tag. The input layer owns its contents.
	Input string
	// LineMode selects single-character, one-per-line tagging instead of
	// multi-character tags on any word.
	LineMode bool
	// SelectMode composes the jump with an active selection.
	SelectMode SelectOption

	alphabet     string
	lineAlphabet string
	tagPositions map[string]types.Position
	order        []string // Tags in issue order, for Targets
}

// New creates a Mode in anywhere mode with the default alphabets.
func New() *Mode {
	return NewWithOptions(Options{})
}

// NewWithOptions creates a Mode with the given alphabets; empty alphabets
// use the defaults.
func NewWithOptions(opts Options) *Mode {
	return &Mode{
		LineMode:     opts.LineMode,
		SelectMode:   NoSelection{},
		alphabet:     opts.Alphabet,
		lineAlphabet: opts.LineAlphabet,
		tagPositions: make(map[string]types.Position),
	}
}

func (m *Mode) newTagGenerator() *TagGenerator {
	if m.alphabet == "" {
		return NewTagGenerator()
	}
	return NewTagGeneratorWithAlphabet(m.alphabet)
}

func (m *Mode) newLineTagGenerator() *SingleCharacterTagGenerator {
	if m.lineAlphabet == "" {
		return NewSingleCharacterTagGenerator()
	}
	return NewSingleCharacterTagGeneratorWithAlphabet(m.lineAlphabet)
}

// Tag runs one tagging pass over the buffer's tokens. Every sub-token on a
// visible line that qualifies gets a tag overlaid on its leading runes;
// the tag is emitted as a Keyword token followed by the rest of the
// sub-token as Text. Untagged sub-tokens keep their parent's category.
// Positions from earlier passes are discarded.
func (m *Mode) Tag(buf Buffer, visible types.LineRange) []types.Token {
	clear(m.tagPositions)
	m.order = m.order[:0]

	tags := m.newTagGenerator()
	lineTags := m.newLineTagGenerator()
	cursorLine := buf.Cursor().Line
	lastTaggedLine := -1

	var out []types.Token
	current := types.Position{}

	for _, token := range buf.Tokens() {
		// Comments and strings contain whitespace; split them so the
		// words inside are reachable too.
		for _, sub := range lexer.Split(token.Lexeme) {
			if sub.Category == types.CategoryWhitespace {
				current.Add(types.DistanceOf(sub.Lexeme))
				out = append(out, sub)
				continue
			}

			length := types.RuneLen(sub.Lexeme)
			var tag string
			var ok bool
			switch {
			case !visible.Includes(current.Line):
				// Off-screen.
			case m.LineMode:
				if current.Line >= cursorLine && current.Line != lastTaggedLine && lineTags.Remaining() > 0 {
					tag, ok = lineTags.Next()
				}
			case length > 1 && length >= types.RuneLen(tags.Peek()):
				tag, ok = tags.Next()
			}

			if ok {
				out = append(out,
					types.Token{Lexeme: tag, Category: types.CategoryKeyword},
					types.Token{Lexeme: skipRunes(sub.Lexeme, types.RuneLen(tag)), Category: types.CategoryText},
				)
				m.tagPositions[tag] = current
				m.order = append(m.order, tag)
				lastTaggedLine = current.Line
			} else {
				out = append(out, types.Token{Lexeme: sub.Lexeme, Category: token.Category})
			}

			current.Offset += length
		}
	}

	logger.DebugTagf("jump", "Tagging pass assigned %d tags over lines %d-%d (line mode %v)",
		len(m.tagPositions), visible.Start, visible.End, m.LineMode)
	return out
}

// skipRunes drops the first n runes of s.
func skipRunes(s string, n int) string {
	for i := range s {
		if n == 0 {
			return s[i:]
		}
		n--
	}
	return ""
}

// MapTag resolves a tag from the last pass. Unknown, empty and partially
// typed tags report false; callers use that to wait for more input.
func (m *Mode) MapTag(tag string) (types.Position, bool) {
	pos, ok := m.tagPositions[tag]
	return pos, ok
}

// HasPrefix reports whether any tag from the last pass starts with input,
// letting the input layer reject dead-end keystrokes.
func (m *Mode) HasPrefix(input string) bool {
	for _, tag := range m.order {
		if len(tag) >= len(input) && tag[:len(input)] == input {
			return true
		}
	}
	return false
}

// Len returns the number of tags assigned by the last pass.
func (m *Mode) Len() int {
	return len(m.tagPositions)
}

// Targets lists the last pass's tags sorted by tag.
func (m *Mode) Targets() []Target {
	targets := make([]Target, 0, len(m.tagPositions))
	for tag, pos := range m.tagPositions {
		targets = append(targets, Target{Tag: tag, Position: pos})
	}
	sort.Slice(targets, func(i, j int) bool { return targets[i].Tag < targets[j].Tag })
	return targets
}

// Reset clears typed input and any tags, keeping strategy and selection.
func (m *Mode) Reset() {
	m.Input = ""
	clear(m.tagPositions)
	m.order = m.order[:0]
}
