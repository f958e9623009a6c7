package jump

// DefaultLineAlphabet orders single-character tags home row first.
const DefaultLineAlphabet = "asdfghjklqwertyuiopzxcvbnm"

// SingleCharacterTagGenerator hands out one-letter tags from a fixed
// alphabet until it is exhausted. It is single-use per tagging pass.
type SingleCharacterTagGenerator struct {
	alphabet []rune
	index    int
}

// NewSingleCharacterTagGenerator creates a generator over DefaultLineAlphabet.
func NewSingleCharacterTagGenerator() *SingleCharacterTagGenerator {
	return NewSingleCharacterTagGeneratorWithAlphabet(DefaultLineAlphabet)
}

// NewSingleCharacterTagGeneratorWithAlphabet creates a generator over the
// given alphabet without its repeated letters; an empty alphabet falls back
// to the default.
func NewSingleCharacterTagGeneratorWithAlphabet(alphabet string) *SingleCharacterTagGenerator {
	letters := distinctLetters(alphabet)
	if len(letters) == 0 {
		letters = []rune(DefaultLineAlphabet)
	}
	return &SingleCharacterTagGenerator{alphabet: letters}
}

// Next returns the next tag, or ok == false once the alphabet is used up.
// Exhaustion is a capacity limit, not an error.
func (g *SingleCharacterTagGenerator) Next() (tag string, ok bool) {
	if g.index >= len(g.alphabet) {
		return "", false
	}
	tag = string(g.alphabet[g.index])
	g.index++
	return tag, true
}

// Remaining reports how many tags are still available.
func (g *SingleCharacterTagGenerator) Remaining() int {
	return len(g.alphabet) - g.index
}
