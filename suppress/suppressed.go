// SPDX-License-Identifier: MIT
package suppress

import "math/bits"

// Suppressed is an immutable set of vertex indices.
type Suppressed interface {
	// Contains reports membership in O(1).
	Contains(i int) bool

	// Count returns the cardinality.
	Count() int

	// Indices returns the members in ascending order. Callers must not modify it.
	Indices() []int
}

type none struct{}

func (none) Contains(int) bool { return false }
func (none) Count() int        { return 0 }
func (none) Indices() []int    { return nil }

// None returns the empty set.
func None() Suppressed { return none{} }

// bitSet stores membership in 64-bit words; count and indices are cached at
// construction.
type bitSet struct {
	words   []uint64
	indices []int
}

// Of returns a bitset-backed set over 0..n-1 containing the given indices.
// Indices outside [0, n) and duplicates are ignored. An empty result is None().
// Complexity: O(n/64 + k).
func Of(n int, indices ...int) Suppressed {
	if n <= 0 {
		return none{}
	}
	words := make([]uint64, (n+63)/64)
	for _, i := range indices {
		if i < 0 || i >= n {
			continue
		}
		words[i/64] |= 1 << (uint(i) % 64)
	}

	var members []int
	for w, word := range words {
		for word != 0 {
			b := bits.TrailingZeros64(word)
			members = append(members, w*64+b)
			word &= word - 1
		}
	}
	if len(members) == 0 {
		return none{}
	}

	return &bitSet{words: words, indices: members}
}

func (s *bitSet) Contains(i int) bool {
	if i < 0 || i/64 >= len(s.words) {
		return false
	}
	return s.words[i/64]&(1<<(uint(i)%64)) != 0
}

func (s *bitSet) Count() int { return len(s.indices) }

func (s *bitSet) Indices() []int { return s.indices }
