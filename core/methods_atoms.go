// SPDX-License-Identifier: MIT
// File: methods_atoms.go
// Role: Atom lifecycle & queries.
//
// Determinism:
//   - Atoms() and the Container index follow insertion order.
//
// Concurrency:
//   - Every method takes m.mu; readers share, writers exclude.
package core

import "fmt"

// AddAtom inserts a new atom with the given ID and element symbol.
//
// Implementation:
//   - Stage 1: Validate non-empty ID (ErrEmptyAtomID) and resolve the symbol
//     to an atomic number (ErrUnknownElement).
//   - Stage 2: Apply AtomOptions to a fresh Atom.
//   - Stage 3: Under the write lock reject duplicates (ErrDuplicateAtom),
//     append to the dense index and bootstrap the neighbor bucket.
//
// Inputs:
//   - id: atom identifier; must be non-empty and unique.
//   - symbol: element symbol or pseudo-atom label.
//
// Errors:
//   - ErrEmptyAtomID, ErrUnknownElement, ErrDuplicateAtom.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (m *Molecule) AddAtom(id, symbol string, opts ...AtomOption) error {
	if id == "" {
		return ErrEmptyAtomID
	}
	z, ok := AtomicNumber(symbol)
	if !ok {
		return fmt.Errorf("AddAtom(%s): symbol %q: %w", id, symbol, ErrUnknownElement)
	}

	a := &Atom{ID: id, Symbol: symbol, AtomicNumber: z}
	for _, opt := range opts {
		opt(a)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.index[id]; exists {
		return fmt.Errorf("AddAtom(%s): %w", id, ErrDuplicateAtom)
	}
	m.index[id] = len(m.atoms)
	m.atoms = append(m.atoms, a)
	m.neighbors[id] = make(map[string]int)

	return nil
}

// HasAtom reports whether the atom ID exists (empty ID ⇒ false).
func (m *Molecule) HasAtom(id string) bool {
	if id == "" {
		return false
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.index[id]

	return ok
}

// AtomByID returns the atom with the given ID.
func (m *Molecule) AtomByID(id string) (*Atom, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	i, ok := m.index[id]
	if !ok {
		return nil, ErrAtomNotFound
	}

	return m.atoms[i], nil
}

// Atoms returns the atoms in index order. The slice is a fresh copy.
func (m *Molecule) Atoms() []*Atom {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*Atom, len(m.atoms))
	copy(out, m.atoms)

	return out
}

// SetImplicitH replaces the implicit hydrogen count of an atom.
//
// The stored *Atom is swapped for a modified copy, so pointers handed out
// earlier keep their old value.
func (m *Molecule) SetImplicitH(id string, h int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	i, ok := m.index[id]
	if !ok {
		return fmt.Errorf("SetImplicitH(%s): %w", id, ErrAtomNotFound)
	}
	a := *m.atoms[i]
	a.ImplicitH = h
	m.atoms[i] = &a

	return nil
}

// RemoveAtom deletes an atom, its incident bonds and every stereo element
// that references it. Indices of later atoms shift down by one.
//
// Errors:
//   - ErrEmptyAtomID, ErrAtomNotFound.
//
// Complexity:
//   - Time O(n + b + s), Space O(1) amortized.
func (m *Molecule) RemoveAtom(id string) error {
	if id == "" {
		return ErrEmptyAtomID
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	idx, ok := m.index[id]
	if !ok {
		return fmt.Errorf("RemoveAtom(%s): %w", id, ErrAtomNotFound)
	}

	// Drop incident bonds.
	kept := m.bonds[:0]
	for _, b := range m.bonds {
		if b.Begin == id || b.End == id {
			continue
		}
		kept = append(kept, b)
	}
	clear(m.bonds[len(kept):])
	m.bonds = kept

	for nb := range m.neighbors[id] {
		delete(m.neighbors[nb], id)
	}
	delete(m.neighbors, id)

	// Compact the dense index.
	m.atoms = append(m.atoms[:idx], m.atoms[idx+1:]...)
	delete(m.index, id)
	for i := idx; i < len(m.atoms); i++ {
		m.index[m.atoms[i].ID] = i
	}

	m.dropStereoLocked(id)

	return nil
}
