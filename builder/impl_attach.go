// SPDX-License-Identifier: MIT
// Package: molhash/builder
//
// impl_attach.go - substituents, extra bonds and stereo elements on existing atoms.
package builder

import (
	"fmt"

	"github.com/katalvlaran/molhash/core"
)

const (
	methodAttach      = "Attach"
	methodLink        = "Link"
	methodTetrahedral = "Tetrahedral"
	methodDoubleBond  = "DoubleBond"
)

// Attach adds atom id of symbol bonded to the existing atom at.
func Attach(at, id, symbol string, order core.BondOrder, opts ...core.AtomOption) Constructor {
	return func(m *core.Molecule, _ builderConfig) error {
		if err := m.AddAtom(id, symbol, opts...); err != nil {
			return fmt.Errorf("%s: AddAtom(%s): %w", methodAttach, id, err)
		}
		if _, err := m.AddBond(at, id, order); err != nil {
			return fmt.Errorf("%s: AddBond(%s,%s): %w", methodAttach, at, id, err)
		}
		return nil
	}
}

// Link bonds two existing atoms (ring fusion, bridges).
func Link(a, b string, order core.BondOrder) Constructor {
	return func(m *core.Molecule, _ builderConfig) error {
		if _, err := m.AddBond(a, b, order); err != nil {
			return fmt.Errorf("%s: AddBond(%s,%s): %w", methodLink, a, b, err)
		}
		return nil
	}
}

// Tetrahedral declares a tetrahedral centre. A ligand equal to focus
// stands for the implicit hydrogen.
func Tetrahedral(focus string, ligands [4]string, w core.Winding) Constructor {
	return func(m *core.Molecule, _ builderConfig) error {
		t := core.Tetrahedral{Focus: focus, Ligands: ligands, Winding: w}
		if err := m.AddTetrahedral(t); err != nil {
			return fmt.Errorf("%s: %w", methodTetrahedral, err)
		}
		return nil
	}
}

// DoubleBond declares the configuration of begin=end with ligands on
// begin and end respectively.
func DoubleBond(begin, end, beginLigand, endLigand string, c core.Conformation) Constructor {
	return func(m *core.Molecule, _ builderConfig) error {
		d := core.DoubleBondStereo{Begin: begin, End: end, Ligands: [2]string{beginLigand, endLigand}, Conformation: c}
		if err := m.AddDoubleBondStereo(d); err != nil {
			return fmt.Errorf("%s: %w", methodDoubleBond, err)
		}
		return nil
	}
}
