package jumble

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

type wordSet map[string]bool

func (s wordSet) Contains(word string) bool {
	return s[word]
}

func newWordSet(words ...string) wordSet {
	s := make(wordSet, len(words))
	for _, w := range words {
		s[w] = true
	}

	return s
}

// countingLookup records every probe.
type countingLookup struct {
	probes map[string]int
}

func (c *countingLookup) Contains(word string) bool {
	c.probes[word]++
	return false
}

func TestUnjumble(t *testing.T) {
	tests := []struct {
		name    string
		jumbled string
		dict    wordSet
		want    []string
	}{
		{
			name:    "rearrangements and prefixes",
			jumbled: "tac",
			dict:    newWordSet("cat", "act", "at"),
			want:    []string{"act", "at", "cat"},
		},
		{
			name:    "single rearrangement",
			jumbled: "god",
			dict:    newWordSet("dog"),
			want:    []string{"dog"},
		},
		{
			name:    "empty dictionary",
			jumbled: "xyz",
			dict:    newWordSet(),
			want:    []string{},
		},
		{
			name:    "input is a word",
			jumbled: "ab",
			dict:    newWordSet("ab", "ba"),
			want:    []string{"ab", "ba"},
		},
		{
			name:    "prefix of the input",
			jumbled: "tac",
			dict:    newWordSet("ta"),
			want:    []string{"ta"},
		},
		{
			name:    "repeated letters",
			jumbled: "loop",
			dict:    newWordSet("pool", "polo", "loo", "lo", "op", "pol", "oops"),
			want:    []string{"lo", "loo", "op", "pol", "polo", "pool"},
		},
		{
			name:    "empty jumble not in dictionary",
			jumbled: "",
			dict:    newWordSet("cat"),
			want:    []string{},
		},
		{
			name:    "empty jumble in dictionary",
			jumbled: "",
			dict:    newWordSet(""),
			want:    []string{""},
		},
		{
			name:    "single letter not in dictionary",
			jumbled: "a",
			dict:    newWordSet("at"),
			want:    []string{},
		},
		{
			name:    "single letter in dictionary",
			jumbled: "a",
			dict:    newWordSet("a"),
			want:    []string{"a"},
		},
		{
			name:    "byte comparison",
			jumbled: "Tac",
			dict:    newWordSet("cat", "act", "caT"),
			want:    []string{"caT"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Unjumble(tt.jumbled, tt.dict)

			if diff := cmp.Diff(tt.want, got.Sorted()); diff != "" {
				t.Fatalf("Unjumble(%q) mismatch (-want +got):\n%s", tt.jumbled, diff)
			}
		})
	}
}

func TestUnjumbleIdempotent(t *testing.T) {
	dict := newWordSet("stop", "pots", "tops", "spot", "post", "opts", "to", "so", "top", "pot")

	first := Unjumble("tops", dict)
	second := Unjumble("tops", dict)

	assert.Equal(t, first, second)
	assert.Equal(t, 10, first.Len())
}

func TestUnjumbleDegenerateSkipsEngine(t *testing.T) {
	for _, jumbled := range []string{"", "a"} {
		lookup := &countingLookup{probes: make(map[string]int)}

		words := Unjumble(jumbled, lookup)

		assert.Zero(t, words.Len())
		assert.Equal(t, map[string]int{jumbled: 1}, lookup.probes)
	}
}

func TestUnjumbleProbesPrefixesOnce(t *testing.T) {
	lookup := &countingLookup{probes: make(map[string]int)}

	Unjumble("abcd", lookup)

	// the full word is probed once up front and once as the first arrangement
	assert.Equal(t, 2, lookup.probes["abcd"])

	for word, count := range lookup.probes {
		if word == "abcd" {
			continue
		}

		assert.Equal(t, 1, count, "probe count for %q", word)
	}

	// 24 arrangements and 40 distinct prefixes
	assert.Len(t, lookup.probes, 64)
}

func TestHandle(t *testing.T) {
	var h Handle = New(newWordSet("dog", "god", "go", "do"))

	words := h.Unjumble("odg")

	assert.True(t, words.Has("dog"))
	assert.True(t, words.Has("god"))
	assert.True(t, words.Has("go"))
	assert.True(t, words.Has("do"))
	assert.False(t, words.Has("odg"))
	assert.Equal(t, 4, words.Len())
}

func TestWordsSorted(t *testing.T) {
	words := make(Words)
	words.Add("cat")
	words.Add("act")
	words.Add("at")
	words.Add("cat")

	assert.Equal(t, []string{"act", "at", "cat"}, words.Sorted())
}
