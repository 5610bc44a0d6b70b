// SPDX-License-Identifier: MIT
// File: methods_clone.go
// Role: Deep copies and atom reordering.
package core

import "fmt"

// Clone returns a deep copy: same flags, atoms, bonds (IDs preserved),
// stereo elements and bond-ID counter.
// Complexity: O(n + b + s).
func (m *Molecule) Clone() *Molecule {
	m.mu.RLock()
	defer m.mu.RUnlock()

	order := make([]int, len(m.atoms))
	for i := range order {
		order[i] = i
	}

	return m.rebuildLocked(order)
}

// Permute returns a copy whose atom at index i is the receiver's atom at
// index order[i]. Atom IDs, bonds and stereo elements are carried over, so
// the result describes the same molecule with a different atom order.
//
// Errors:
//   - ErrBadPermutation if order is not a permutation of 0..n-1.
func (m *Molecule) Permute(order []int) (*Molecule, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if len(order) != len(m.atoms) {
		return nil, fmt.Errorf("Permute: len(order)=%d, atoms=%d: %w", len(order), len(m.atoms), ErrBadPermutation)
	}
	seen := make([]bool, len(order))
	for _, o := range order {
		if o < 0 || o >= len(order) || seen[o] {
			return nil, fmt.Errorf("Permute: index %d: %w", o, ErrBadPermutation)
		}
		seen[o] = true
	}

	return m.rebuildLocked(order), nil
}

func (m *Molecule) rebuildLocked(order []int) *Molecule {
	out := &Molecule{
		title:        m.title,
		allowMulti:   m.allowMulti,
		allowLoops:   m.allowLoops,
		nextBondID:   m.nextBondID,
		atoms:        make([]*Atom, len(order)),
		index:        make(map[string]int, len(order)),
		bonds:        make([]*Bond, len(m.bonds)),
		neighbors:    make(map[string]map[string]int, len(order)),
		tetrahedrals: append([]Tetrahedral(nil), m.tetrahedrals...),
		doubleBonds:  append([]DoubleBondStereo(nil), m.doubleBonds...),
	}
	for i, o := range order {
		a := *m.atoms[o]
		out.atoms[i] = &a
		out.index[a.ID] = i
	}
	for id, nbs := range m.neighbors {
		cp := make(map[string]int, len(nbs))
		for nb, k := range nbs {
			cp[nb] = k
		}
		out.neighbors[id] = cp
	}
	for i, b := range m.bonds {
		cp := *b
		out.bonds[i] = &cp
	}

	return out
}
