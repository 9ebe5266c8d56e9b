package dictionary

import "github.com/karthick18/jumble/internal/pkg/jumble"

// Trie is a byte trie of dictionary words.
type Trie struct {
	root  *node
	words int
}

type node struct {
	children map[byte]*node
	word     bool
}

var _ jumble.Lookup = &Trie{}

func NewTrie(words ...string) *Trie {
	t := &Trie{root: newNode()}

	for _, word := range words {
		t.insert(word)
	}

	return t
}

func newNode() *node {
	return &node{children: make(map[byte]*node)}
}

func (t *Trie) insert(word string) {
	nodeRef := t.root

	for i := 0; i < len(word); i++ {
		if nodeRef.children[word[i]] == nil {
			nodeRef.children[word[i]] = newNode()
		}

		nodeRef = nodeRef.children[word[i]]
	}

	if !nodeRef.word {
		t.words++
	}

	nodeRef.word = true
}

func (t *Trie) Contains(word string) bool {
	nodeRef := t.root

	for i := 0; i < len(word); i++ {
		nodeRef = nodeRef.children[word[i]]
		if nodeRef == nil {
			return false
		}
	}

	return nodeRef.word
}

func (t *Trie) Len() int {
	return t.words
}
