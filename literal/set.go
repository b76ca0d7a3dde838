// Package literal orders sets of literal words for use as a regex
// alternation.
//
// Regex engines in the Perl tradition try alternatives left to right and
// stop at the first that matches. In (?:cat|category) the second word can
// never match at a position where "cat" already did: it is shadowed by an
// earlier alternative that is its strict prefix. Set finds such words with
// Aho-Corasick automata and reorders the set so every word is tried
// before its prefixes.
//
// Example:
//
//	set := literal.NewSet("cat", "category", "dog")
//	set.Order()
//	fmt.Println(set.Words()) // [category cat dog]
package literal

import (
	"cmp"
	"errors"
	"slices"

	"github.com/coregx/ahocorasick"
)

// Set is an ordered collection of distinct, non-empty words.
type Set struct {
	words []string
}

// NewSet creates a set from words. Empty words are dropped and repeated
// words keep their first position.
//
// Example:
//
//	set := literal.NewSet("a", "", "b", "a")
//	fmt.Println(set.Len()) // Output: 2
func NewSet(words ...string) *Set {
	seen := make(map[string]struct{}, len(words))
	kept := make([]string, 0, len(words))
	for _, w := range words {
		if w == "" {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		kept = append(kept, w)
	}
	return &Set{words: kept}
}

// Len returns the number of words in the set.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.words)
}

// Get returns the word at index i.
// Panics if index is out of bounds.
func (s *Set) Get(i int) string {
	return s.words[i]
}

// IsEmpty returns true if the set has no words.
func (s *Set) IsEmpty() bool {
	return s == nil || len(s.words) == 0
}

// Words returns a copy of the words in their current order.
func (s *Set) Words() []string {
	if s == nil {
		return nil
	}
	return slices.Clone(s.words)
}

// ErrNoSentinel is returned by Shadowed when every byte value occurs in
// some word, so no byte is left to anchor the search at the start of a
// word.
var ErrNoSentinel = errors.New("literal: no free sentinel byte in set")

// Shadowed returns the indexes of words that an earlier word in the set
// shadows under leftmost-first alternation, in ascending order.
//
// Word i is searched against an automaton of words[:i]. Every pattern and
// the searched word are prefixed with a sentinel byte that occurs in no
// word, so any match starts at the beginning of the word: it is an
// earlier word that is a strict prefix.
//
// Time complexity: O(n * total length of all words).
func (s *Set) Shadowed() ([]int, error) {
	if s.Len() < 2 {
		return nil, nil
	}

	sentinel, ok := s.sentinel()
	if !ok {
		return nil, ErrNoSentinel
	}

	var shadowed []int
	for i := 1; i < len(s.words); i++ {
		builder := ahocorasick.NewBuilder()
		for _, w := range s.words[:i] {
			builder.AddPattern(anchored(sentinel, w))
		}
		auto, err := builder.Build()
		if err != nil {
			return nil, err
		}
		if auto.Find(anchored(sentinel, s.words[i]), 0) != nil {
			shadowed = append(shadowed, i)
		}
	}
	return shadowed, nil
}

// sentinel returns the smallest byte value that occurs in no word.
func (s *Set) sentinel() (byte, bool) {
	var used [256]bool
	for _, w := range s.words {
		for i := 0; i < len(w); i++ {
			used[w[i]] = true
		}
	}
	for c, u := range used {
		if !u {
			return byte(c), true
		}
	}
	return 0, false
}

func anchored(sentinel byte, w string) []byte {
	buf := make([]byte, 0, 1+len(w))
	buf = append(buf, sentinel)
	return append(buf, w...)
}

// Order reorders the set so that no word is shadowed. When nothing is
// shadowed the order is left alone; otherwise words are stable-sorted
// longest first, which puts every word ahead of its prefixes.
//
// If Shadowed fails the set is sorted as well, so the result is always
// safe to emit.
//
// Example:
//
//	set := literal.NewSet("in", "int", "interface")
//	set.Order()
//	fmt.Println(set.Words()) // [interface int in]
func (s *Set) Order() {
	shadowed, err := s.Shadowed()
	if err == nil && len(shadowed) == 0 {
		return
	}
	slices.SortStableFunc(s.words, func(a, b string) int {
		return cmp.Compare(len(b), len(a))
	})
}
