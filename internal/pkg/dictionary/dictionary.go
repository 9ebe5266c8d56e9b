// Package dictionary loads line-delimited word lists into immutable lookup
// sets used to answer jumbles.
package dictionary

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/karthick18/jumble/internal/pkg/jumble"
)

// Index selects the lookup structure a dictionary is loaded into.
type Index string

const (
	IndexSet  Index = "set"
	IndexTrie Index = "trie"

	// DefaultMinLen drops single letter words.
	DefaultMinLen = 2
)

var (
	ErrUnreadable   = errors.New("dictionary unreadable")
	ErrUnknownIndex = errors.New("unknown dictionary index")
)

// Dictionary is a loaded word list.
type Dictionary interface {
	jumble.Lookup
	Len() int
}

type Options struct {
	// MinLen is the shortest word kept. Zero means DefaultMinLen.
	MinLen int
}

func (o Options) minLen() int {
	if o.MinLen <= 0 {
		return DefaultMinLen
	}

	return o.MinLen
}

// Set is a hash set of dictionary words.
type Set struct {
	words map[string]struct{}
}

var _ Dictionary = &Set{}

func NewSet(words ...string) *Set {
	s := &Set{words: make(map[string]struct{}, len(words))}

	for _, word := range words {
		s.words[word] = struct{}{}
	}

	return s
}

func (s *Set) Contains(word string) bool {
	_, ok := s.words[word]
	return ok
}

func (s *Set) Len() int {
	return len(s.words)
}

// ParseIndex validates an index name.
func ParseIndex(name string) (Index, error) {
	switch index := Index(strings.ToLower(strings.TrimSpace(name))); index {
	case IndexSet, IndexTrie:
		return index, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownIndex, name)
	}
}

// Words reads one word per line, trimming surrounding whitespace and
// skipping words shorter than the configured minimum.
func Words(r io.Reader, opts Options) ([]string, error) {
	minLen := opts.minLen()
	scanner := bufio.NewScanner(r)

	var words []string

	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if len(word) < minLen {
			continue
		}

		words = append(words, word)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}

	return words, nil
}

// Load reads a word list into the requested index.
func Load(r io.Reader, index Index, opts Options) (Dictionary, error) {
	words, err := Words(r, opts)
	if err != nil {
		return nil, err
	}

	switch index {
	case IndexSet, "":
		return NewSet(words...), nil
	case IndexTrie:
		return NewTrie(words...), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownIndex, index)
	}
}

// LoadFile opens path and loads it with Load.
func LoadFile(path string, index Index, opts Options) (Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}

	defer f.Close()

	dict, err := Load(f, index, opts)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	return dict, nil
}
