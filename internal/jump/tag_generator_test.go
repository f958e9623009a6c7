package jump

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestTagGenerator_StartsAtAA(t *testing.T) {
	g := NewTagGenerator()
	var got []string
	for i := 0; i < 3; i++ {
		tag, ok := g.Next()
		require.True(t, ok)
		got = append(got, tag)
	}
	assert.Equal(t, []string{"aa", "ab", "ac"}, got)
}

func TestTagGenerator_RollsOverFirstLetter(t *testing.T) {
	g := NewTagGenerator()
	for i := 0; i < 26; i++ {
		g.Next()
	}
	tag, _ := g.Next()
	assert.Equal(t, "ba", tag)
}

func TestTagGenerator_EscapesIntoLongerTags(t *testing.T) {
	g := NewTagGenerator()
	var last string
	for i := 0; i < 25*26; i++ {
		last, _ = g.Next()
	}
	assert.Equal(t, "yz", last)

	next, _ := g.Next()
	assert.Equal(t, "zaa", next)
}

func TestTagGenerator_PeekDoesNotAdvance(t *testing.T) {
	g := NewTagGenerator()
	assert.Equal(t, "aa", g.Peek())
	assert.Equal(t, "aa", g.Peek())
	tag, _ := g.Next()
	assert.Equal(t, "aa", tag)
	assert.Equal(t, "ab", g.Peek())
}

func TestTagGenerator_CustomAlphabet(t *testing.T) {
	g := NewTagGeneratorWithAlphabet("xyz")
	var got []string
	for i := 0; i < 7; i++ {
		tag, _ := g.Next()
		got = append(got, tag)
	}
	assert.Equal(t, []string{"xx", "xy", "xz", "yx", "yy", "yz", "zxx"}, got)
}

func TestTagGenerator_ShortAlphabetFallsBack(t *testing.T) {
	g := NewTagGeneratorWithAlphabet("q")
	assert.Equal(t, "aa", g.Peek())
}

func TestTagGenerator_RepeatedLettersAreDropped(t *testing.T) {
	g := NewTagGeneratorWithAlphabet("aab")
	var got []string
	for i := 0; i < 4; i++ {
		tag, _ := g.Next()
		got = append(got, tag)
	}
	assert.Equal(t, []string{"aa", "ab", "baa", "bab"}, got)

	assert.Equal(t, "aa", NewTagGeneratorWithAlphabet("qq").Peek(), "one distinct letter falls back")
}

func TestSingleCharacterTagGenerator_RepeatedLettersAreDropped(t *testing.T) {
	g := NewSingleCharacterTagGeneratorWithAlphabet("abab")
	assert.Equal(t, 2, g.Remaining())
}

func TestTagGenerator_IncreasingAndPrefixFree(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		alphabet := rapid.SampledFrom([]string{DefaultAlphabet, "ab", "adfs", "xyz"}).Draw(rt, "alphabet")
		n := rapid.IntRange(2, 1500).Draw(rt, "n")

		g := NewTagGeneratorWithAlphabet(alphabet)
		tags := make([]string, 0, n)
		for i := 0; i < n; i++ {
			tag, ok := g.Next()
			if !ok {
				rt.Fatalf("generator exhausted at %d", i)
			}
			if len([]rune(tag)) < 2 {
				rt.Fatalf("tag %q shorter than two characters", tag)
			}
			if i > 0 && tag <= tags[i-1] {
				rt.Fatalf("tag %q does not follow %q", tag, tags[i-1])
			}
			tags = append(tags, tag)
		}
		for i := 0; i < len(tags); i++ {
			for j := i + 1; j < len(tags) && j < i+60; j++ {
				if strings.HasPrefix(tags[j], tags[i]) {
					rt.Fatalf("tag %q is a prefix of %q", tags[i], tags[j])
				}
			}
		}
	})
}

func TestSingleCharacterTagGenerator_ExhaustsAlphabet(t *testing.T) {
	g := NewSingleCharacterTagGeneratorWithAlphabet("ab")
	require.Equal(t, 2, g.Remaining())

	tag, ok := g.Next()
	require.True(t, ok)
	assert.Equal(t, "a", tag)

	tag, ok = g.Next()
	require.True(t, ok)
	assert.Equal(t, "b", tag)

	tag, ok = g.Next()
	assert.False(t, ok)
	assert.Empty(t, tag)
	assert.Equal(t, 0, g.Remaining())

	_, ok = g.Next()
	assert.False(t, ok, "exhaustion is sticky")
}

func TestSingleCharacterTagGenerator_DefaultAlphabet(t *testing.T) {
	g := NewSingleCharacterTagGenerator()
	seen := map[string]bool{}
	for {
		tag, ok := g.Next()
		if !ok {
			break
		}
		require.Len(t, tag, 1)
		require.False(t, seen[tag], "duplicate tag %q", tag)
		seen[tag] = true
	}
	assert.Len(t, seen, len(DefaultLineAlphabet))

	assert.Equal(t, 26, NewSingleCharacterTagGeneratorWithAlphabet("").Remaining())
}
