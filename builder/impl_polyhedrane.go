// SPDX-License-Identifier: MIT
// Package: molhash/builder
//
// impl_polyhedrane.go - Polyhedrane constructor.
package builder

import (
	"fmt"

	"github.com/katalvlaran/molhash/core"
)

const methodPolyhedrane = "Polyhedrane"

// Polyhedrane returns a Constructor for the cage p with every vertex an
// atom of symbol and every edge a single bond. Every cage is
// vertex-transitive, so all its atoms are automorphic.
//
// Errors:
//   - ErrUnknownPolyhedron for an unsupported p.
//
// Complexity: O(V + E), V ≤ 20, E ≤ 30.
func Polyhedrane(prefix, symbol string, p Polyhedron) Constructor {
	return func(m *core.Molecule, cfg builderConfig) error {
		c, ok := cages[p]
		if !ok {
			return fmt.Errorf("%s: %d: %w", methodPolyhedrane, int(p), ErrUnknownPolyhedron)
		}
		if err := addAtoms(m, cfg, methodPolyhedrane, prefix, symbol, c.atoms); err != nil {
			return err
		}
		for _, e := range c.bonds {
			u, v := cfg.atomID(prefix, e[0]), cfg.atomID(prefix, e[1])
			if _, err := m.AddBond(u, v, core.OrderSingle); err != nil {
				return fmt.Errorf("%s(%s): AddBond(%s,%s): %w", methodPolyhedrane, c.name, u, v, err)
			}
		}
		return nil
	}
}
