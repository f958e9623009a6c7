package types

// Category classifies a lexical token. The set is closed; extend it here.
type Category int

const (
	CategoryText Category = iota
	CategoryWhitespace
	CategoryKeyword
	CategoryIdentifier
	CategoryComment
	CategoryString
	CategoryBrace
	CategoryLiteral
	CategoryOperator
)

var categoryNames = [...]string{
	CategoryText:       "Text",
	CategoryWhitespace: "Whitespace",
	CategoryKeyword:    "Keyword",
	CategoryIdentifier: "Identifier",
	CategoryComment:    "Comment",
	CategoryString:     "String",
	CategoryBrace:      "Brace",
	CategoryLiteral:    "Literal",
	CategoryOperator:   "Operator",
}

func (c Category) String() string {
	if c >= 0 && int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return "Unknown"
}

// Token is an immutable lexeme with its category.
type Token struct {
	Lexeme   string
	Category Category
}

// Concat joins the lexemes of a token stream.
func Concat(tokens []Token) string {
	n := 0
	for _, t := range tokens {
		n += len(t.Lexeme)
	}
	b := make([]byte, 0, n)
	for _, t := range tokens {
		b = append(b, t.Lexeme...)
	}
	return string(b)
}
