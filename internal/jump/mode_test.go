package jump

import (
	"strings"
	"testing"

	"github.com/bethropolis/tidejump/internal/core/selection"
	"github.com/bethropolis/tidejump/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

type stubBuffer struct {
	tokens []types.Token
	cursor types.Position
}

func (b stubBuffer) Tokens() []types.Token  { return b.tokens }
func (b stubBuffer) Cursor() types.Position { return b.cursor }

func tokens(toks ...types.Token) stubBuffer {
	return stubBuffer{tokens: toks}
}

func kw(s string) types.Token      { return types.Token{Lexeme: s, Category: types.CategoryKeyword} }
func ident(s string) types.Token   { return types.Token{Lexeme: s, Category: types.CategoryIdentifier} }
func text(s string) types.Token    { return types.Token{Lexeme: s, Category: types.CategoryText} }
func space(s string) types.Token   { return types.Token{Lexeme: s, Category: types.CategoryWhitespace} }
func comment(s string) types.Token { return types.Token{Lexeme: s, Category: types.CategoryComment} }
func allLines() types.LineRange    { return types.NewLineRange(0, 100) }

func TestTag_ReturnsTheCorrectTokens(t *testing.T) {
	m := New()
	got := m.Tag(tokens(kw("class"), space(" "), ident("Amp")), allLines())

	require.Equal(t, []types.Token{
		kw("aa"), text("ass"),
		space(" "),
		kw("ab"), text("p"),
	}, got)

	pos, ok := m.MapTag("ab")
	require.True(t, ok)
	assert.Equal(t, types.Position{Line: 0, Offset: 6}, pos)
}

func TestTag_SplitsTokensOnWhitespace(t *testing.T) {
	m := New()
	got := m.Tag(tokens(comment("# comment string")), allLines())

	require.Equal(t, []types.Token{
		comment("#"),
		space(" "),
		kw("aa"), text("mment"),
		space(" "),
		kw("ab"), text("ring"),
	}, got)
}

func TestTag_TracksThePositionOfEachTag(t *testing.T) {
	m := New()
	// Leading whitespace exercises sub-token offsets; the trailing newline
	// on a non-whitespace token must still roll the line forward.
	m.Tag(tokens(
		kw("  start"),
		text("another\n"),
		kw("class"),
		space(" "),
		ident("Amp"),
	), allLines())

	want := map[string]types.Position{
		"aa": {Line: 0, Offset: 2},
		"ab": {Line: 0, Offset: 7},
		"ac": {Line: 1, Offset: 0},
		"ad": {Line: 1, Offset: 6},
	}
	for tag, pos := range want {
		got, ok := m.MapTag(tag)
		require.True(t, ok, "tag %q", tag)
		assert.Equal(t, pos, got, "tag %q", tag)
	}
	assert.Equal(t, 4, m.Len())
}

func TestTag_RestartsTagsOnEachInvocation(t *testing.T) {
	m := New()
	buf := tokens(kw("class"))
	m.Tag(buf, allLines())
	got := m.Tag(buf, allLines())
	assert.Equal(t, "aa", got[0].Lexeme)
}

func TestTag_ClearsTrackedPositionsOnEachInvocation(t *testing.T) {
	m := New()
	m.Tag(tokens(kw("class"), space("\n  "), ident("Amp")), allLines())
	require.Equal(t, 2, m.Len())

	got := m.Tag(tokens(), allLines())
	assert.Empty(t, got)
	assert.Equal(t, 0, m.Len())
	_, ok := m.MapTag("aa")
	assert.False(t, ok)
}

func TestTag_OnlyAddsTagsToVisibleRange(t *testing.T) {
	m := New()
	m.Tag(tokens(
		kw("class"),
		space("\n  "),
		ident("Amp\n"),
		ident("data"),
	), types.NewLineRange(1, 2))

	require.Equal(t, 1, m.Len())
	pos, ok := m.MapTag("aa")
	require.True(t, ok)
	assert.Equal(t, types.Position{Line: 1, Offset: 2}, pos)
}

func TestTag_FullyOffscreenStreamYieldsNoTags(t *testing.T) {
	m := New()
	got := m.Tag(tokens(kw("class"), space(" "), ident("Amp")), types.NewLineRange(5, 10))
	assert.Equal(t, 0, m.Len())
	assert.Equal(t, []types.Token{kw("class"), space(" "), ident("Amp")}, got)
}

func TestTag_CanHandleUnicodeData(t *testing.T) {
	m := New()
	// The multi-byte rune in second place would be cut by byte slicing.
	got := m.Tag(tokens(text("eéditor")), allLines())
	require.Equal(t, []types.Token{kw("aa"), text("ditor")}, got)
}

func TestTag_RepeatedAlphabetLettersStillGiveUniqueTags(t *testing.T) {
	m := NewWithOptions(Options{Alphabet: "aab", LineAlphabet: "aa"})
	got := m.Tag(tokens(ident("one"), space(" "), ident("two")), allLines())
	require.Equal(t, []types.Token{kw("aa"), text("e"), space(" "), kw("ab"), text("o")}, got)
	assert.Equal(t, 2, m.Len())

	m.LineMode = true
	m.Tag(tokens(ident("one"), space("\n"), ident("two")), allLines())
	assert.Equal(t, 1, m.Len(), "line alphabet has a single distinct letter")
}

func TestTag_SkipsSingleCharacterWordsInAnywhereMode(t *testing.T) {
	m := New()
	got := m.Tag(tokens(ident("x"), space(" "), ident("yz")), allLines())
	require.Equal(t, []types.Token{ident("x"), space(" "), kw("aa"), text("")}, got)
}

func TestTag_LineModeUsesSingleCharacterTags(t *testing.T) {
	m := New()
	m.LineMode = true
	got := m.Tag(tokens(kw("class")), allLines())

	require.Equal(t, []types.Token{kw("a"), text("lass")}, got)
	pos, ok := m.MapTag("a")
	require.True(t, ok)
	assert.Equal(t, types.Position{}, pos)
}

func TestTag_LineModeTagsOncePerLineFromCursor(t *testing.T) {
	m := NewWithOptions(Options{LineMode: true})
	buf := stubBuffer{
		tokens: []types.Token{
			kw("first"), space(" "), ident("line\n"),
			kw("second"), space(" "), ident("line\n"),
			space("  "), kw("third"), space(" "), ident("line"),
		},
		cursor: types.Position{Line: 1, Offset: 3},
	}
	got := m.Tag(buf, allLines())

	require.Equal(t, 2, m.Len())
	pos, _ := m.MapTag("a")
	assert.Equal(t, types.Position{Line: 1, Offset: 0}, pos)
	pos, _ = m.MapTag("s")
	assert.Equal(t, types.Position{Line: 2, Offset: 2}, pos)
	assert.Equal(t, kw("first"), got[0], "lines above the cursor stay untagged")
}

func TestTag_LineModeStopsWhenAlphabetExhausted(t *testing.T) {
	m := NewWithOptions(Options{LineMode: true, LineAlphabet: "ab"})
	m.Tag(tokens(ident("one\n"), ident("two\n"), ident("three\n"), ident("four")), allLines())

	assert.Equal(t, 2, m.Len())
	targets := m.Targets()
	require.Len(t, targets, 2)
	assert.Equal(t, Target{Tag: "a", Position: types.Position{Line: 0}}, targets[0])
	assert.Equal(t, Target{Tag: "b", Position: types.Position{Line: 1}}, targets[1])
}

func TestTag_IgnoresSelectMode(t *testing.T) {
	buf := tokens(kw("class"), space(" "), ident("Amp"))
	plain := New().Tag(buf, allLines())

	m := New()
	m.SelectMode = ExtendSelection{Range: selection.NewRange(types.Position{})}
	assert.Equal(t, plain, m.Tag(buf, allLines()))

	m.SelectMode = ExtendLineSelection{Lines: selection.NewLines(0)}
	assert.Equal(t, plain, m.Tag(buf, allLines()))
}

func TestMapTag_ReturnsPositionWhenAvailable(t *testing.T) {
	m := New()
	m.Tag(tokens(kw("class"), space("\n  "), ident("Amp")), allLines())

	pos, ok := m.MapTag("ab")
	require.True(t, ok)
	assert.Equal(t, types.Position{Line: 1, Offset: 2}, pos)

	_, ok = m.MapTag("none")
	assert.False(t, ok)
	_, ok = m.MapTag("")
	assert.False(t, ok)
	_, ok = m.MapTag("a")
	assert.False(t, ok, "partial tags do not resolve")
}

func TestHasPrefix(t *testing.T) {
	m := New()
	m.Tag(tokens(kw("class"), space(" "), ident("Amp")), allLines())
	assert.True(t, m.HasPrefix(""))
	assert.True(t, m.HasPrefix("a"))
	assert.True(t, m.HasPrefix("ab"))
	assert.False(t, m.HasPrefix("b"))
	assert.False(t, m.HasPrefix("abc"))
}

func TestReset(t *testing.T) {
	m := New()
	m.Input = "a"
	m.Tag(tokens(kw("class")), allLines())
	m.Reset()
	assert.Empty(t, m.Input)
	assert.Equal(t, 0, m.Len())
}

// genTokens draws a token stream mixing words, punctuation, multi-byte
// text and whitespace with embedded newlines.
func genTokens(rt *rapid.T) []types.Token {
	// Keyword is left out: in the display stream it marks tags.
	categories := []types.Category{
		types.CategoryText, types.CategoryIdentifier, types.CategoryComment,
		types.CategoryString, types.CategoryBrace, types.CategoryWhitespace,
	}
	n := rapid.IntRange(0, 30).Draw(rt, "n")
	toks := make([]types.Token, n)
	for i := range toks {
		toks[i] = types.Token{
			Lexeme:   rapid.StringMatching(`[a-zé日{}#]{0,6}( |\n|\t){0,2}[a-z]{0,4}`).Draw(rt, "lexeme"),
			Category: rapid.SampledFrom(categories).Draw(rt, "category"),
		}
	}
	return toks
}

// overlay reapplies the original runes under each tag so the display
// stream can be compared against the buffer text.
func overlay(input []types.Token, display []types.Token) (string, string) {
	var shown strings.Builder
	var masked []rune
	for _, tok := range display {
		for range tok.Lexeme {
			if tok.Category == types.CategoryKeyword {
				masked = append(masked, 1)
			} else {
				masked = append(masked, 0)
			}
		}
		shown.WriteString(tok.Lexeme)
	}
	orig := []rune(types.Concat(input))
	got := []rune(shown.String())
	if len(orig) != len(got) {
		return string(orig), string(got)
	}
	for i := range got {
		if masked[i] == 1 {
			got[i] = orig[i]
		}
	}
	return string(orig), string(got)
}

func TestTag_Properties(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		input := genTokens(rt)
		start := rapid.IntRange(0, 5).Draw(rt, "start")
		visible := types.NewLineRange(start, start+rapid.IntRange(0, 5).Draw(rt, "height"))
		lineMode := rapid.Bool().Draw(rt, "lineMode")
		cursor := types.Position{Line: rapid.IntRange(0, 6).Draw(rt, "cursorLine")}
		buf := stubBuffer{tokens: input, cursor: cursor}

		m := New()
		m.LineMode = lineMode
		display := m.Tag(buf, visible)

		// Round trip: only the runes under tags differ from the buffer.
		orig, got := overlay(input, display)
		if orig != got {
			rt.Fatalf("display text %q does not overlay %q", got, orig)
		}

		// Every emitted tag has exactly one position and vice versa.
		seen := map[string]bool{}
		for _, tok := range display {
			if tok.Category != types.CategoryKeyword {
				continue
			}
			if seen[tok.Lexeme] {
				rt.Fatalf("tag %q emitted twice", tok.Lexeme)
			}
			seen[tok.Lexeme] = true
			pos, ok := m.MapTag(tok.Lexeme)
			if !ok {
				rt.Fatalf("tag %q has no position", tok.Lexeme)
			}
			if !visible.Includes(pos.Line) {
				rt.Fatalf("tag %q at line %d outside %v", tok.Lexeme, pos.Line, visible)
			}
			if lineMode && pos.Line < cursor.Line {
				rt.Fatalf("line-mode tag %q above cursor", tok.Lexeme)
			}
		}
		if len(seen) != m.Len() {
			rt.Fatalf("%d visible tags but %d positions", len(seen), m.Len())
		}

		// Each tag's position points at the rune the tag covers.
		lines := strings.Split(types.Concat(input), "\n")
		for _, target := range m.Targets() {
			line := []rune(lines[target.Position.Line])
			if target.Position.Offset >= len(line) {
				rt.Fatalf("tag %q offset %d past end of line %q", target.Tag, target.Position.Offset, string(line))
			}
		}

		// Determinism: a fresh pass reproduces the same stream.
		again := New()
		again.LineMode = lineMode
		if !assert.ObjectsAreEqual(display, again.Tag(buf, visible)) {
			rt.Fatalf("tagging is not deterministic")
		}
	})
}
