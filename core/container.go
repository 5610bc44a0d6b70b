// SPDX-License-Identifier: MIT
// File: container.go
// Role: Read-only Container view consumed by encoders, suppression and the hash engine.
package core

// Container is the read-only molecule surface the hashing packages depend on.
//
// Atom indices are dense (0..AtomCount()-1) and follow the container's atom
// order. Implementations must return the same answers for the duration of a
// hashing call.
type Container interface {
	// AtomCount returns n.
	AtomCount() int

	// Atom returns the atom at dense index i. Callers must not mutate it.
	Atom(i int) *Atom

	// IndexOf returns the dense index of the atom ID, or -1 when absent.
	IndexOf(id string) int

	// Bonds returns all bonds in a stable order.
	Bonds() []*Bond

	// Degree returns the number of explicit bonds incident to the atom.
	Degree(id string) int

	// BondOrderSum returns the sum of explicit bond orders of the atom, a
	// self-bond counted twice; ok is false when any incident bond has an
	// undefined order.
	BondOrderSum(id string) (sum int, ok bool)

	// Tetrahedrals returns the declared tetrahedral stereo elements.
	Tetrahedrals() []Tetrahedral

	// DoubleBondStereos returns the declared double-bond stereo elements.
	DoubleBondStereos() []DoubleBondStereo
}

var _ Container = (*Molecule)(nil)

// AtomCount returns the number of atoms.
func (m *Molecule) AtomCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.atoms)
}

// Atom returns the atom at dense index i, or nil when i is out of range.
func (m *Molecule) Atom(i int) *Atom {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if i < 0 || i >= len(m.atoms) {
		return nil
	}

	return m.atoms[i]
}

// IndexOf returns the dense index of id, or -1.
func (m *Molecule) IndexOf(id string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if i, ok := m.index[id]; ok {
		return i
	}

	return -1
}

// Bonds returns the bonds in insertion order. The slice is a fresh copy.
func (m *Molecule) Bonds() []*Bond {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*Bond, len(m.bonds))
	copy(out, m.bonds)

	return out
}

// Degree returns the number of explicit bonds incident to id, counting
// parallel bonds individually and a self-bond twice.
// Complexity: O(deg).
func (m *Molecule) Degree(id string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	deg := 0
	for nb, k := range m.neighbors[id] {
		deg += k
		if nb == id {
			deg += k
		}
	}

	return deg
}

// BondOrderSum sums the explicit bond orders of id. A self-bond counts
// twice, as in Degree.
// Complexity: O(b).
func (m *Molecule) BondOrderSum(id string) (int, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	sum := 0
	for _, b := range m.bonds {
		if b.Begin != id && b.End != id {
			continue
		}
		if b.Order == OrderUnset {
			return 0, false
		}
		sum += int(b.Order)
		if b.Begin == b.End {
			sum += int(b.Order)
		}
	}

	return sum, true
}

// Tetrahedrals returns a copy of the declared tetrahedral elements.
func (m *Molecule) Tetrahedrals() []Tetrahedral {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]Tetrahedral, len(m.tetrahedrals))
	copy(out, m.tetrahedrals)

	return out
}

// DoubleBondStereos returns a copy of the declared double-bond elements.
func (m *Molecule) DoubleBondStereos() []DoubleBondStereo {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]DoubleBondStereo, len(m.doubleBonds))
	copy(out, m.doubleBonds)

	return out
}
