// Package trie implements a compact, case-folded longest-prefix trie.
//
// Keys are always matched case-insensitively (the caller lowercases keys on
// insert; FindLongestPrefix case-folds the input on the fly). Each node
// stores its children as a slice sorted by rune, scanned linearly below a
// small-node threshold and with binary search above it — a cache-locality
// optimisation, not a semantic difference.
package trie

import (
	"sort"
	"unicode"
)

// smallNodeThreshold is the child-count at and above which lookups switch
// from a linear scan to binary search.
const smallNodeThreshold = 16

type child struct {
	r     rune
	index int32
}

type node struct {
	children    []child // sorted by r
	replacement string
	hasValue    bool
}

// Trie is a longest-prefix map with lowercase-folded keys.
type Trie struct {
	nodes []node
}

// New returns an empty Trie with only the root node (index 0).
func New() *Trie {
	t := &Trie{nodes: make([]node, 1, 64)}
	return t
}

// IsEmpty reports whether the root has no children, i.e. nothing has been
// inserted.
func (t *Trie) IsEmpty() bool {
	return len(t.nodes[0].children) == 0
}

// Insert stores value under key. The caller is responsible for lowercasing
// key, since trie keys are always stored lowercase; Insert does
// not lowercase on your behalf so that dictionary loaders can apply their
// own apostrophe-canonicalisation before folding case.
func (t *Trie) Insert(key string, value string) {
	cur := int32(0)
	for _, r := range key {
		cur = t.childOrCreate(cur, r)
	}
	t.nodes[cur].replacement = value
	t.nodes[cur].hasValue = true
}

// childOrCreate returns the child index of r under node ni, creating it
// (and keeping the children slice sorted) if it doesn't already exist.
func (t *Trie) childOrCreate(ni int32, r rune) int32 {
	children := t.nodes[ni].children
	pos := sort.Search(len(children), func(i int) bool { return children[i].r >= r })
	if pos < len(children) && children[pos].r == r {
		return children[pos].index
	}
	t.nodes = append(t.nodes, node{})
	newIdx := int32(len(t.nodes) - 1)
	children = append(children, child{})
	copy(children[pos+1:], children[pos:])
	children[pos] = child{r: r, index: newIdx}
	t.nodes[ni].children = children
	return newIdx
}

// childOf looks up the child of node ni for rune r, using linear scan below
// smallNodeThreshold children and binary search above it. Both must agree:
// children are always kept sorted by r.
func (t *Trie) childOf(ni int32, r rune) (int32, bool) {
	children := t.nodes[ni].children
	if len(children) < smallNodeThreshold {
		for i := range children {
			if children[i].r == r {
				return children[i].index, true
			}
		}
		return 0, false
	}
	pos := sort.Search(len(children), func(i int) bool { return children[i].r >= r })
	if pos < len(children) && children[pos].r == r {
		return children[pos].index, true
	}
	return 0, false
}

// Match is the result of FindLongestPrefix: the byte length of the matched
// original (not lowercased) slice, and the stored replacement value.
type Match struct {
	ByteLen int
	Value   string
}

// lowerFold folds r the same way dictionary loaders fold insert keys: plain
// Unicode lowercase. Uzbek orthography has no dotless-i-style ambiguity, so
// a direct unicode.ToLower suffices.
func lowerFold(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	if r < 0x80 {
		return r
	}
	return unicode.ToLower(r)
}

// FindLongestPrefix walks text from the start, case-folding each rune to
// match trie keys, and returns the deepest terminal node reached along the
// way — i.e. the longest prefix of text that is a key in the trie. Returns
// ok=false if no prefix of text (not even a single rune) matches.
func (t *Trie) FindLongestPrefix(text string) (m Match, ok bool) {
	cur := int32(0)
	bestLen := -1
	var bestVal string

	byteLen := 0
	for _, r := range text {
		folded := lowerFold(r)
		next, found := t.childOf(cur, folded)
		if !found {
			break
		}
		cur = next
		byteLen += runeLen(r)
		if t.nodes[cur].hasValue {
			bestLen = byteLen
			bestVal = t.nodes[cur].replacement
		}
	}
	if bestLen < 0 {
		return Match{}, false
	}
	return Match{ByteLen: bestLen, Value: bestVal}, true
}

func runeLen(r rune) int {
	switch {
	case r < 0x80:
		return 1
	case r < 0x800:
		return 2
	case r < 0x10000:
		return 3
	default:
		return 4
	}
}
