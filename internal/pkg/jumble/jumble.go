package jumble

import (
	"sort"

	"github.com/samber/lo"
)

// Lookup is a read-only membership test over a fixed vocabulary.
type Lookup interface {
	Contains(word string) bool
}

// Words is the set of matches found for a jumble.
type Words map[string]struct{}

func (w Words) Add(word string) {
	w[word] = struct{}{}
}

func (w Words) Has(word string) bool {
	_, ok := w[word]
	return ok
}

func (w Words) Len() int {
	return len(w)
}

// Sorted returns the words in byte order.
func (w Words) Sorted() []string {
	res := lo.Keys(map[string]struct{}(w))
	sort.Strings(res)

	return res
}

type Handle interface {
	Unjumble(jumbled string) Words
}

type HandleImplementor struct {
	dict Lookup
}

var _ Handle = &HandleImplementor{}

// New returns a handle answering jumbles against dict.
// The handle can be shared between goroutines as long as dict is not modified.
func New(dict Lookup) *HandleImplementor {
	return &HandleImplementor{dict: dict}
}

func (h *HandleImplementor) Unjumble(jumbled string) Words {
	return Unjumble(jumbled, h.dict)
}

// Unjumble returns the words of dict that can be made from the letters of
// jumbled: the jumble itself, its rearrangements and the prefixes of any
// rearrangement.
func Unjumble(jumbled string, dict Lookup) Words {
	words := make(Words)

	if dict.Contains(jumbled) {
		words.Add(jumbled)
	}

	if len(jumbled) < 2 {
		return words
	}

	Permute([]byte(jumbled), func(arrangement []byte, prefixFrom int) {
		if w := string(arrangement); dict.Contains(w) {
			words.Add(w)
		}

		for x := prefixFrom; x < len(arrangement); x++ {
			if w := string(arrangement[:x]); dict.Contains(w) {
				words.Add(w)
			}
		}
	})

	return words
}
