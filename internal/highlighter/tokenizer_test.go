package highlighter

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/bethropolis/tidejump/internal/highlighter/lang"
	"github.com/bethropolis/tidejump/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokenize(t *testing.T, name, src string) []types.Token {
	t.Helper()
	RegisterLanguages()
	language := lang.GetByName(name)
	require.NotNil(t, language, name)

	tokens, err := NewTokenizer().Tokenize(context.Background(), []byte(src), language)
	require.NoError(t, err)
	require.Equal(t, src, types.Concat(tokens), "token stream must be lossless")
	return tokens
}

func categoryOf(tokens []types.Token, lexeme string) (types.Category, bool) {
	for _, tok := range tokens {
		if tok.Lexeme == lexeme {
			return tok.Category, true
		}
	}
	return types.CategoryText, false
}

func assertCategory(t *testing.T, tokens []types.Token, lexeme string, want types.Category) {
	t.Helper()
	got, ok := categoryOf(tokens, lexeme)
	require.True(t, ok, "no token %q in %v", lexeme, tokens)
	assert.Equal(t, want, got, lexeme)
}

func TestTokenize_Go(t *testing.T) {
	src := "package main\n\n// greet says hi\nfunc greet() string {\n\tx := 42\n\treturn \"hi\"\n}\n"
	tokens := tokenize(t, "go", src)

	assertCategory(t, tokens, "package", types.CategoryKeyword)
	assertCategory(t, tokens, "func", types.CategoryKeyword)
	assertCategory(t, tokens, "return", types.CategoryKeyword)
	assertCategory(t, tokens, "main", types.CategoryIdentifier)
	assertCategory(t, tokens, "greet", types.CategoryIdentifier)
	assertCategory(t, tokens, "// greet says hi", types.CategoryComment)
	assertCategory(t, tokens, "\"hi\"", types.CategoryString)
	assertCategory(t, tokens, "42", types.CategoryLiteral)
	assertCategory(t, tokens, "{", types.CategoryBrace)
	assertCategory(t, tokens, ":=", types.CategoryOperator)
}

func TestTokenize_Python(t *testing.T) {
	src := "def f():\n    return 1  # done\n"
	tokens := tokenize(t, "python", src)

	assertCategory(t, tokens, "def", types.CategoryKeyword)
	assertCategory(t, tokens, "f", types.CategoryIdentifier)
	assertCategory(t, tokens, "# done", types.CategoryComment)
	assertCategory(t, tokens, "1", types.CategoryLiteral)
}

func TestTokenize_Lossless(t *testing.T) {
	sample, err := os.ReadFile(filepath.Join("testdata", "example.go"))
	require.NoError(t, err)
	tokenize(t, "go", string(sample))

	tokenize(t, "rust", "fn main() {\n    let s = \"日本\"; // ünïcode\n}\n")
	tokenize(t, "javascript", "const a = `x ${y}`;\nif (a) { b(); }\n")
	tokenize(t, "json", "{\"a\": [1, 2, true]}\n")
	tokenize(t, "go", "func broken( {\n")
}

func TestTokenize_NoLanguage(t *testing.T) {
	tokens, err := NewTokenizer().Tokenize(context.Background(), []byte("plain text\n"), nil)
	require.NoError(t, err)
	assert.Equal(t, []types.Token{{Lexeme: "plain text\n", Category: types.CategoryText}}, tokens)

	tokens, err = NewTokenizer().Tokenize(context.Background(), nil, nil)
	require.NoError(t, err)
	assert.Empty(t, tokens)
}

func TestRegistry_Lookup(t *testing.T) {
	RegisterLanguages()
	RegisterLanguages()

	require.NotNil(t, lang.GetForFile("main.GO"))
	assert.Equal(t, "Go", lang.GetForFile("/tmp/x/main.go").Name)
	assert.Equal(t, "Python", lang.GetForFile("a.py").Name)
	assert.Equal(t, "Rust", lang.GetForFile("lib.rs").Name)
	assert.Nil(t, lang.GetForFile("notes.txt"))
	assert.Equal(t, "JSON", lang.GetByName("json").Name)
	assert.Len(t, lang.GetAll(), 5)
}

func TestLeafCategory(t *testing.T) {
	assert.Equal(t, types.CategoryKeyword, leafCategory("if", false, "if"))
	assert.Equal(t, types.CategoryLiteral, leafCategory("true", false, "true"))
	assert.Equal(t, types.CategoryBrace, leafCategory("(", false, "("))
	assert.Equal(t, types.CategoryOperator, leafCategory("+=", false, "+="))
	assert.Equal(t, types.CategoryWhitespace, leafCategory("\n", false, "\n"))
	assert.Equal(t, types.CategoryIdentifier, leafCategory("field_identifier", true, "Name"))
	assert.Equal(t, types.CategoryLiteral, leafCategory("float_literal", true, "1.5"))
	assert.Equal(t, types.CategoryText, leafCategory("escape_sequence", true, "\\n"))
}
