// Package lexer splits lexical tokens into whitespace-delimited sub-tokens,
// the unit of jump tag eligibility.
package lexer

import (
	"unicode"
	"unicode/utf8"

	"github.com/bethropolis/tidejump/internal/types"
	"github.com/rivo/uniseg"
)

// Split breaks lexeme into maximal runs of whitespace and non-whitespace.
// Whitespace runs are categorized as Whitespace; other runs carry
// CategoryText and are recategorized by the caller. Boundaries fall on
// grapheme clusters, so a multi-byte character is never divided, and the
// concatenated lexemes always equal the input.
func Split(lexeme string) []types.Token {
	if lexeme == "" {
		return nil
	}

	var tokens []types.Token
	start := 0
	inSpace := false

	gr := uniseg.NewGraphemes(lexeme)
	for gr.Next() {
		from, _ := gr.Positions()
		space := isSpaceCluster(gr.Str())
		if from > start && space != inSpace {
			tokens = append(tokens, subToken(lexeme[start:from], inSpace))
			start = from
		}
		inSpace = space
	}
	tokens = append(tokens, subToken(lexeme[start:], inSpace))
	return tokens
}

func isSpaceCluster(cluster string) bool {
	r, _ := utf8.DecodeRuneInString(cluster)
	return unicode.IsSpace(r)
}

func subToken(text string, space bool) types.Token {
	if space {
		return types.Token{Lexeme: text, Category: types.CategoryWhitespace}
	}
	return types.Token{Lexeme: text, Category: types.CategoryText}
}
