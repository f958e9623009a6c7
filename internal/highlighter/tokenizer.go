package highlighter

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"unicode"

	"fortio.org/safecast"
	"github.com/bethropolis/tidejump/internal/highlighter/lang"
	"github.com/bethropolis/tidejump/internal/logger"
	"github.com/bethropolis/tidejump/internal/types"
	sitter "github.com/smacker/go-tree-sitter"
)

// Tokenizer turns source into a lossless token stream using tree-sitter.
// Concatenating the lexemes of the result always yields the input.
type Tokenizer struct {
	mu     sync.Mutex // Parser is not safe for concurrent use
	parser *sitter.Parser
}

// NewTokenizer creates a new tokenizer instance.
func NewTokenizer() *Tokenizer {
	return &Tokenizer{parser: sitter.NewParser()}
}

// Tokenize parses src with language. A nil language yields a single Text token.
func (t *Tokenizer) Tokenize(ctx context.Context, src []byte, language *lang.Language) ([]types.Token, error) {
	if len(src) == 0 {
		return nil, nil
	}
	if language == nil || language.TreeSitterLang == nil {
		return []types.Token{{Lexeme: string(src), Category: types.CategoryText}}, nil
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.parser.SetLanguage(language.TreeSitterLang)
	tree, err := t.parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("parsing %s source failed: %w", language.Name, err)
	}
	defer tree.Close()

	w := walker{src: src}
	if err := w.visit(tree.RootNode()); err != nil {
		return nil, err
	}
	w.gap(len(src))

	logger.DebugTagf("highlighter", "Tokenized %d bytes of %s into %d tokens", len(src), language.Name, len(w.tokens))
	return w.tokens, nil
}

// walker emits tokens in source order. pos is the byte offset consumed so far.
type walker struct {
	src    []byte
	pos    int
	tokens []types.Token
}

func (w *walker) visit(n *sitter.Node) error {
	if n == nil {
		return nil
	}
	start, err := safecast.Conv[int](n.StartByte())
	if err != nil {
		return fmt.Errorf("node start offset: %w", err)
	}
	end, err := safecast.Conv[int](n.EndByte())
	if err != nil {
		return fmt.Errorf("node end offset: %w", err)
	}
	if end > len(w.src) {
		end = len(w.src)
	}

	if category, atomic := atomicCategory(n.Type()); atomic || n.ChildCount() == 0 {
		if end <= w.pos || start == end {
			return nil
		}
		if start < w.pos {
			start = w.pos
		}
		w.gap(start)
		lexeme := string(w.src[start:end])
		if !atomic {
			category = leafCategory(n.Type(), n.IsNamed(), lexeme)
		}
		w.emit(lexeme, category)
		w.pos = end
		return nil
	}

	count, err := safecast.Conv[int](n.ChildCount())
	if err != nil {
		return fmt.Errorf("node child count: %w", err)
	}
	for i := 0; i < count; i++ {
		if err := w.visit(n.Child(i)); err != nil {
			return err
		}
	}
	return nil
}

// gap emits the unparsed text between the last token and upto.
func (w *walker) gap(upto int) {
	if upto <= w.pos {
		return
	}
	lexeme := string(w.src[w.pos:upto])
	category := types.CategoryText
	if isBlank(lexeme) {
		category = types.CategoryWhitespace
	}
	w.emit(lexeme, category)
	w.pos = upto
}

func (w *walker) emit(lexeme string, category types.Category) {
	w.tokens = append(w.tokens, types.Token{Lexeme: lexeme, Category: category})
}

// atomicCategory reports node types that are emitted whole, children and all.
func atomicCategory(nodeType string) (types.Category, bool) {
	switch {
	case strings.Contains(nodeType, "comment"):
		return types.CategoryComment, true
	case strings.Contains(nodeType, "string"),
		nodeType == "rune_literal",
		nodeType == "char_literal":
		return types.CategoryString, true
	}
	return types.CategoryText, false
}

func leafCategory(nodeType string, named bool, lexeme string) types.Category {
	if isBlank(lexeme) {
		return types.CategoryWhitespace
	}
	if !named {
		switch {
		case isWord(lexeme):
			switch lexeme {
			case "true", "false", "nil", "null", "None", "True", "False", "undefined":
				return types.CategoryLiteral
			}
			return types.CategoryKeyword
		case strings.ContainsAny(lexeme, "(){}[]"):
			return types.CategoryBrace
		default:
			return types.CategoryOperator
		}
	}

	switch {
	case strings.Contains(nodeType, "identifier"):
		return types.CategoryIdentifier
	case nodeType == "primitive_type", nodeType == "self":
		return types.CategoryKeyword
	case strings.Contains(nodeType, "literal"),
		strings.Contains(nodeType, "number"),
		nodeType == "integer", nodeType == "float",
		nodeType == "true", nodeType == "false",
		nodeType == "nil", nodeType == "null", nodeType == "none", nodeType == "iota":
		return types.CategoryLiteral
	}
	return types.CategoryText
}

func isBlank(s string) bool {
	return strings.TrimFunc(s, unicode.IsSpace) == ""
}

func isWord(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) && r != '_' {
			return false
		}
	}
	return s != ""
}
