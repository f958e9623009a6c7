package jump

import "strings"

// DefaultAlphabet is the ordered alphabet for multi-character tags.
const DefaultAlphabet = "abcdefghijklmnopqrstuvwxyz"

// TagGenerator produces an unbounded, strictly increasing sequence of
// prefix-free tags of two or more characters: "aa", "ab", ... "yz", then
// "zaa" ... "zyz", "zzaa" and so on. The alphabet's last letter only ever
// appears as a level prefix, which keeps every tag from being a prefix of
// a later one. A generator is single-use; construct a fresh one per pass.
type TagGenerator struct {
	alphabet []rune
	level    int // Number of leading escape letters
	first    int
	second   int
}

// NewTagGenerator creates a generator over DefaultAlphabet.
func NewTagGenerator() *TagGenerator {
	return NewTagGeneratorWithAlphabet(DefaultAlphabet)
}

// NewTagGeneratorWithAlphabet creates a generator over an ordered alphabet.
// Repeated letters are dropped; fewer than two distinct letters fall back to
// the default.
func NewTagGeneratorWithAlphabet(alphabet string) *TagGenerator {
	letters := distinctLetters(alphabet)
	if len(letters) < 2 {
		letters = []rune(DefaultAlphabet)
	}
	return &TagGenerator{alphabet: letters}
}

// distinctLetters keeps the first occurrence of each rune, in order.
func distinctLetters(alphabet string) []rune {
	seen := make(map[rune]bool, len(alphabet))
	letters := make([]rune, 0, len(alphabet))
	for _, r := range alphabet {
		if !seen[r] {
			seen[r] = true
			letters = append(letters, r)
		}
	}
	return letters
}

// Peek returns the tag the next call to Next will produce.
func (g *TagGenerator) Peek() string {
	escape := g.alphabet[len(g.alphabet)-1]
	var b strings.Builder
	for i := 0; i < g.level; i++ {
		b.WriteRune(escape)
	}
	b.WriteRune(g.alphabet[g.first])
	b.WriteRune(g.alphabet[g.second])
	return b.String()
}

// Next returns the next tag. The sequence never runs out, so ok is always true.
func (g *TagGenerator) Next() (tag string, ok bool) {
	tag = g.Peek()
	g.advance()
	return tag, true
}

func (g *TagGenerator) advance() {
	g.second++
	if g.second < len(g.alphabet) {
		return
	}
	g.second = 0
	g.first++
	// The last letter is reserved for the next level's prefix.
	if g.first < len(g.alphabet)-1 {
		return
	}
	g.first = 0
	g.level++
}
