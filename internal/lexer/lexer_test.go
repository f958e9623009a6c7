package lexer

import (
	"strings"
	"testing"

	"github.com/bethropolis/tidejump/internal/types"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestSplit_CommentWithSpaces(t *testing.T) {
	got := Split("# comment string")
	require.Equal(t, []types.Token{
		{Lexeme: "#", Category: types.CategoryText},
		{Lexeme: " ", Category: types.CategoryWhitespace},
		{Lexeme: "comment", Category: types.CategoryText},
		{Lexeme: " ", Category: types.CategoryWhitespace},
		{Lexeme: "string", Category: types.CategoryText},
	}, got)
}

func TestSplit_LeadingAndTrailingWhitespace(t *testing.T) {
	got := Split("  start\n")
	require.Equal(t, []types.Token{
		{Lexeme: "  ", Category: types.CategoryWhitespace},
		{Lexeme: "start", Category: types.CategoryText},
		{Lexeme: "\n", Category: types.CategoryWhitespace},
	}, got)
}

func TestSplit_MixedWhitespaceRunIsOneToken(t *testing.T) {
	got := Split("a \t\n  b")
	require.Len(t, got, 3)
	require.Equal(t, " \t\n  ", got[1].Lexeme)
	require.Equal(t, types.CategoryWhitespace, got[1].Category)
}

func TestSplit_Empty(t *testing.T) {
	require.Empty(t, Split(""))
}

func TestSplit_MultiByte(t *testing.T) {
	got := Split("eéditor ünïcode")
	require.Equal(t, "eéditor", got[0].Lexeme)
	require.Equal(t, "ünïcode", got[2].Lexeme)

	// A combining mark after a space stays attached to its cluster.
	got = Split("a ́b")
	require.Equal(t, "a ́b", types.Concat(got))
}

func TestSplit_RoundTripProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		s := rapid.StringMatching(`[a-zé日 \t\n]{0,40}`).Draw(rt, "lexeme")
		tokens := Split(s)
		if types.Concat(tokens) != s {
			rt.Fatalf("round trip mismatch: %q -> %q", s, types.Concat(tokens))
		}
		for i, tok := range tokens {
			if tok.Lexeme == "" {
				rt.Fatalf("empty sub-token at %d", i)
			}
			isSpace := strings.TrimSpace(tok.Lexeme) == ""
			if isSpace != (tok.Category == types.CategoryWhitespace) {
				rt.Fatalf("sub-token %q has category %v", tok.Lexeme, tok.Category)
			}
			if i > 0 && tokens[i-1].Category == tok.Category {
				rt.Fatalf("adjacent sub-tokens share category at %d", i)
			}
		}
	})
}
