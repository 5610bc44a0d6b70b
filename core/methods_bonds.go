// SPDX-License-Identifier: MIT
// File: methods_bonds.go
// Role: Bond lifecycle & queries.
//
// Determinism:
//   - Bonds() returns bonds in insertion order; IDs are "b1", "b2", … in that order.
//   - Neighbors() returns neighbor IDs in atom index order.
package core

import (
	"fmt"
	"sort"
	"strconv"
	"sync/atomic"
)

// AddBond connects atoms a and b and returns the generated bond ID.
//
// Implementation:
//   - Stage 1: Validate both endpoints exist (ErrAtomNotFound).
//   - Stage 2: Enforce loop and multi-bond policy.
//   - Stage 3: Allocate "b<N>" from the atomic counter and record the bond.
//
// Errors:
//   - ErrEmptyAtomID, ErrAtomNotFound, ErrLoopNotAllowed, ErrMultiBondNotAllowed.
//
// Complexity:
//   - Time O(1) amortized, Space O(1).
func (m *Molecule) AddBond(a, b string, order BondOrder, opts ...BondOption) (string, error) {
	if a == "" || b == "" {
		return "", ErrEmptyAtomID
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.index[a]; !ok {
		return "", fmt.Errorf("AddBond(%s,%s): %s: %w", a, b, a, ErrAtomNotFound)
	}
	if _, ok := m.index[b]; !ok {
		return "", fmt.Errorf("AddBond(%s,%s): %s: %w", a, b, b, ErrAtomNotFound)
	}
	if a == b && !m.allowLoops {
		return "", fmt.Errorf("AddBond(%s,%s): %w", a, b, ErrLoopNotAllowed)
	}
	if m.neighbors[a][b] > 0 && !m.allowMulti {
		return "", fmt.Errorf("AddBond(%s,%s): %w", a, b, ErrMultiBondNotAllowed)
	}

	id := "b" + strconv.FormatUint(atomic.AddUint64(&m.nextBondID, 1), 10)
	bond := &Bond{ID: id, Begin: a, End: b, Order: order}
	for _, opt := range opts {
		opt(bond)
	}
	m.bonds = append(m.bonds, bond)
	m.neighbors[a][b]++
	if a != b {
		m.neighbors[b][a]++
	}

	return id, nil
}

// RemoveBond deletes a bond by ID and any double-bond stereo element on it.
//
// Errors:
//   - ErrBondNotFound.
func (m *Molecule) RemoveBond(bondID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, b := range m.bonds {
		if b.ID != bondID {
			continue
		}
		m.bonds = append(m.bonds[:i], m.bonds[i+1:]...)
		m.unlinkLocked(b.Begin, b.End)
		if b.Begin != b.End {
			m.unlinkLocked(b.End, b.Begin)
		}
		if m.neighbors[b.Begin][b.End] == 0 {
			m.dropDoubleBondLocked(b.Begin, b.End)
		}

		return nil
	}

	return fmt.Errorf("RemoveBond(%s): %w", bondID, ErrBondNotFound)
}

func (m *Molecule) unlinkLocked(a, b string) {
	if m.neighbors[a][b] <= 1 {
		delete(m.neighbors[a], b)
		return
	}
	m.neighbors[a][b]--
}

// HasBond reports whether at least one bond joins a and b.
func (m *Molecule) HasBond(a, b string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.neighbors[a][b] > 0
}

// BondCount returns the number of bonds.
func (m *Molecule) BondCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.bonds)
}

// Neighbors returns the IDs of atoms bonded to id, sorted by atom index.
// Parallel bonds yield a single entry.
func (m *Molecule) Neighbors(id string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	nbs, ok := m.neighbors[id]
	if !ok {
		return nil, fmt.Errorf("Neighbors(%s): %w", id, ErrAtomNotFound)
	}
	out := make([]string, 0, len(nbs))
	for nb := range nbs {
		out = append(out, nb)
	}
	sort.Slice(out, func(i, j int) bool { return m.index[out[i]] < m.index[out[j]] })

	return out, nil
}
