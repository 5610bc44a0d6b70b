// SPDX-License-Identifier: MIT
// File: stereo.go
// Role: Declared stereo elements (tetrahedral centres, double-bond configurations).
//
// Only declared configurations are stored; nothing is perceived from coordinates.
package core

import "fmt"

// Winding is the rotation of the last three tetrahedral ligands when viewed
// from the first one.
type Winding int8

// Tetrahedral windings. The numeric value doubles as the geometric parity.
const (
	Clockwise     Winding = -1
	Anticlockwise Winding = 1
)

// Conformation is the relative placement of the two double-bond ligands.
type Conformation int8

// Double-bond conformations. The numeric value doubles as the geometric parity.
const (
	Together Conformation = -1 // cis / Z
	Opposite Conformation = 1  // trans / E
)

// Tetrahedral declares the configuration of a tetrahedral centre.
//
// A ligand equal to Focus stands for an implicit hydrogen or lone pair; at
// most one ligand may do so.
type Tetrahedral struct {
	Focus   string
	Ligands [4]string
	Winding Winding
}

// DoubleBondStereo declares the configuration around the bond Begin=End.
// Ligands[0] is bonded to Begin, Ligands[1] to End.
type DoubleBondStereo struct {
	Begin        string
	End          string
	Ligands      [2]string
	Conformation Conformation
}

// AddTetrahedral records a tetrahedral stereo element.
//
// Errors:
//   - ErrAtomNotFound if the focus is absent.
//   - ErrBadStereo if a ligand is not bonded to the focus, a ligand repeats,
//     more than one ligand is implicit, or the winding is not ±1.
func (m *Molecule) AddTetrahedral(t Tetrahedral) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.index[t.Focus]; !ok {
		return fmt.Errorf("AddTetrahedral(%s): %w", t.Focus, ErrAtomNotFound)
	}
	if t.Winding != Clockwise && t.Winding != Anticlockwise {
		return fmt.Errorf("AddTetrahedral(%s): winding %d: %w", t.Focus, t.Winding, ErrBadStereo)
	}
	seen := make(map[string]struct{}, 4)
	for _, l := range t.Ligands {
		if _, dup := seen[l]; dup {
			return fmt.Errorf("AddTetrahedral(%s): ligand %q repeats: %w", t.Focus, l, ErrBadStereo)
		}
		seen[l] = struct{}{}
		if l != t.Focus && m.neighbors[t.Focus][l] == 0 {
			return fmt.Errorf("AddTetrahedral(%s): ligand %q not bonded: %w", t.Focus, l, ErrBadStereo)
		}
	}
	m.tetrahedrals = append(m.tetrahedrals, t)

	return nil
}

// AddDoubleBondStereo records a double-bond stereo element.
//
// Errors:
//   - ErrBadStereo if Begin and End are not bonded, a ligand is not bonded to
//     its side, a ligand is the opposite double-bond atom, or the
//     conformation is not ±1.
func (m *Molecule) AddDoubleBondStereo(d DoubleBondStereo) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if d.Conformation != Together && d.Conformation != Opposite {
		return fmt.Errorf("AddDoubleBondStereo(%s=%s): conformation %d: %w", d.Begin, d.End, d.Conformation, ErrBadStereo)
	}
	if m.neighbors[d.Begin][d.End] == 0 {
		return fmt.Errorf("AddDoubleBondStereo(%s=%s): not bonded: %w", d.Begin, d.End, ErrBadStereo)
	}
	if d.Ligands[0] == d.End || m.neighbors[d.Begin][d.Ligands[0]] == 0 {
		return fmt.Errorf("AddDoubleBondStereo(%s=%s): ligand %q: %w", d.Begin, d.End, d.Ligands[0], ErrBadStereo)
	}
	if d.Ligands[1] == d.Begin || m.neighbors[d.End][d.Ligands[1]] == 0 {
		return fmt.Errorf("AddDoubleBondStereo(%s=%s): ligand %q: %w", d.Begin, d.End, d.Ligands[1], ErrBadStereo)
	}
	m.doubleBonds = append(m.doubleBonds, d)

	return nil
}

// dropStereoLocked removes every stereo element that mentions id.
func (m *Molecule) dropStereoLocked(id string) {
	keptT := m.tetrahedrals[:0]
	for _, t := range m.tetrahedrals {
		if t.Focus == id || t.Ligands[0] == id || t.Ligands[1] == id || t.Ligands[2] == id || t.Ligands[3] == id {
			continue
		}
		keptT = append(keptT, t)
	}
	m.tetrahedrals = keptT

	keptD := m.doubleBonds[:0]
	for _, d := range m.doubleBonds {
		if d.Begin == id || d.End == id || d.Ligands[0] == id || d.Ligands[1] == id {
			continue
		}
		keptD = append(keptD, d)
	}
	m.doubleBonds = keptD
}

// dropDoubleBondLocked removes configurations on the bond a–b and the
// tetrahedral elements that listed a or b as a ligand of the other.
func (m *Molecule) dropDoubleBondLocked(a, b string) {
	keptD := m.doubleBonds[:0]
	for _, d := range m.doubleBonds {
		onBond := (d.Begin == a && d.End == b) || (d.Begin == b && d.End == a)
		onLigand := (d.Begin == a && d.Ligands[0] == b) || (d.Begin == b && d.Ligands[0] == a) ||
			(d.End == a && d.Ligands[1] == b) || (d.End == b && d.Ligands[1] == a)
		if onBond || onLigand {
			continue
		}
		keptD = append(keptD, d)
	}
	m.doubleBonds = keptD

	keptT := m.tetrahedrals[:0]
	for _, t := range m.tetrahedrals {
		if (t.Focus == a && hasLigand(t, b)) || (t.Focus == b && hasLigand(t, a)) {
			continue
		}
		keptT = append(keptT, t)
	}
	m.tetrahedrals = keptT
}

func hasLigand(t Tetrahedral, id string) bool {
	for _, l := range t.Ligands {
		if l == id {
			return true
		}
	}
	return false
}
