// SPDX-License-Identifier: MIT
// Package: molhash/builder
//
// impl_hydrogens.go - implicit and explicit hydrogen constructors.
package builder

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/molhash/core"
)

const methodExplicitH = "ExplicitHydrogens"

// Hydrogenate returns a Constructor that fills implicit hydrogen counts
// from default valences (see core.Molecule.Hydrogenate). Place it after the
// constructors that shape the heavy-atom skeleton.
func Hydrogenate() Constructor {
	return func(m *core.Molecule, _ builderConfig) error {
		m.Hydrogenate()
		return nil
	}
}

// ExplicitHydrogens returns a Constructor that replaces every implicit
// hydrogen with an H atom "<atomID>h<k>" bonded to its parent. The new atoms
// are appended after all existing ones, parents in atom order.
func ExplicitHydrogens() Constructor {
	return func(m *core.Molecule, _ builderConfig) error {
		for _, a := range m.Atoms() {
			for k := 0; k < a.ImplicitH; k++ {
				id := a.ID + "h" + strconv.Itoa(k)
				if err := m.AddAtom(id, "H"); err != nil {
					return fmt.Errorf("%s: AddAtom(%s): %w", methodExplicitH, id, err)
				}
				if _, err := m.AddBond(a.ID, id, core.OrderSingle); err != nil {
					return fmt.Errorf("%s: AddBond(%s,%s): %w", methodExplicitH, a.ID, id, err)
				}
			}
			if a.ImplicitH > 0 {
				if err := m.SetImplicitH(a.ID, 0); err != nil {
					return fmt.Errorf("%s: %w", methodExplicitH, err)
				}
			}
		}
		return nil
	}
}
