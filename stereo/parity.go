// SPDX-License-Identifier: MIT
package stereo

// PermutationParity computes the parity of a neighbor permutation from the
// current invariants: +1 even, -1 odd, 0 when invariants tie.
type PermutationParity interface {
	Parity(current []int64) int
}

// GeometricParity is the declared spatial parity: +1, -1, or 0 for unspecified.
type GeometricParity interface {
	Parity() int
}

// BasicPermutationParity ranks the invariants at the given indices.
type BasicPermutationParity struct {
	indices []int
}

// NewBasicPermutationParity returns the parity over indices, in order.
func NewBasicPermutationParity(indices ...int) *BasicPermutationParity {
	return &BasicPermutationParity{indices: append([]int(nil), indices...)}
}

// Parity counts inversions among current[indices]; any tie yields 0.
// Complexity: O(k²) for k indices (k ≤ 4 in practice).
func (p *BasicPermutationParity) Parity(current []int64) int {
	count := 0
	for i := 0; i < len(p.indices); i++ {
		for j := i + 1; j < len(p.indices); j++ {
			a, b := current[p.indices[i]], current[p.indices[j]]
			if a == b {
				return 0
			}
			if a > b {
				count++
			}
		}
	}
	if count&1 == 1 {
		return -1
	}
	return 1
}

// CombinedPermutationParity multiplies two parities.
type CombinedPermutationParity struct {
	left, right PermutationParity
}

// NewCombinedPermutationParity returns left × right.
func NewCombinedPermutationParity(left, right PermutationParity) *CombinedPermutationParity {
	return &CombinedPermutationParity{left: left, right: right}
}

// Parity returns left.Parity × right.Parity.
func (p *CombinedPermutationParity) Parity(current []int64) int {
	return p.left.Parity(current) * p.right.Parity(current)
}

// PredefinedParity is a fixed geometric parity.
type PredefinedParity int

// Parity returns the fixed value.
func (p PredefinedParity) Parity() int { return int(p) }
