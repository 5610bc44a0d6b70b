// SPDX-License-Identifier: MIT
// File: hydrogens.go
// Role: Implicit hydrogen assignment from default valences.
package core

// Hydrogenate sets ImplicitH on every atom with a known default valence to
// valence - bond order sum - radicals (never below zero). Atoms without a
// default valence (pseudo atoms, metals, noble gases) keep their count.
//
// Charge adjusts the valence: boron gains one per negative charge, the
// carbon group loses one per unit of charge either way, every other element
// gains one per positive charge. A bond with an unset order counts as 1,
// plus 1 once per atom that has any, which gives aromatic CH one hydrogen.
//
// Complexity: O(n · b).
func (m *Molecule) Hydrogenate() {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, a := range m.atoms {
		valence := DefaultValence(a.Symbol)
		if valence == 0 {
			continue
		}
		switch a.AtomicNumber {
		case 5:
			valence -= a.FormalCharge
		case 6, 14, 32, 50, 82:
			valence -= abs(a.FormalCharge)
		default:
			valence += a.FormalCharge
		}

		sum, unset := 0, false
		for _, b := range m.bonds {
			if b.Begin != a.ID && b.End != a.ID {
				continue
			}
			if b.Order == OrderUnset {
				sum++
				unset = true
				continue
			}
			sum += int(b.Order)
		}
		if unset {
			sum++
		}

		cp := *a
		cp.ImplicitH = max(0, valence-sum-a.Radicals)
		m.atoms[i] = &cp
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
