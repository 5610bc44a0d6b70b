// SPDX-License-Identifier: MIT
// Package: molhash/builder
//
// impl_ring.go - Ring and Kekule constructors.
//
// Contract:
//   - Ring bonds are emitted i→i+1 for i=0..n-2, then the closure (n-1)→0.
//   - Kekule alternates double (even i) and single (odd i) bonds.
package builder

import (
	"fmt"

	"github.com/katalvlaran/molhash/core"
)

const (
	methodRing   = "Ring"
	methodKekule = "Kekule"

	minRingAtoms = 3
)

// Ring returns a Constructor for an n-membered ring of symbol with single bonds.
//
// Errors:
//   - ErrTooFewAtoms if n < 3.
func Ring(prefix, symbol string, n int) Constructor {
	return func(m *core.Molecule, cfg builderConfig) error {
		if n < minRingAtoms {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRing, n, minRingAtoms, ErrTooFewAtoms)
		}
		if err := addAtoms(m, cfg, methodRing, prefix, symbol, n); err != nil {
			return err
		}
		return closeRing(m, cfg, methodRing, prefix, n, func(int) core.BondOrder { return core.OrderSingle })
	}
}

// Kekule returns a Constructor for an even ring with alternating double and
// single bonds (benzene for n=6, symbol "C"). Atoms and bonds are flagged
// aromatic unless WithoutAromaticFlags is set.
//
// Errors:
//   - ErrTooFewAtoms if n < 4; ErrOddRing if n is odd.
func Kekule(prefix, symbol string, n int) Constructor {
	return func(m *core.Molecule, cfg builderConfig) error {
		if n < minRingAtoms+1 {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodKekule, n, minRingAtoms+1, ErrTooFewAtoms)
		}
		if n%2 != 0 {
			return fmt.Errorf("%s: n=%d: %w", methodKekule, n, ErrOddRing)
		}
		var atomOpts []core.AtomOption
		var bondOpts []core.BondOption
		if cfg.aromaticAtoms {
			atomOpts = append(atomOpts, core.WithAromatic())
			bondOpts = append(bondOpts, core.WithAromaticBond())
		}
		if err := addAtoms(m, cfg, methodKekule, prefix, symbol, n, atomOpts...); err != nil {
			return err
		}
		return closeRing(m, cfg, methodKekule, prefix, n, func(i int) core.BondOrder {
			if i%2 == 0 {
				return core.OrderDouble
			}
			return core.OrderSingle
		}, bondOpts...)
	}
}

func closeRing(m *core.Molecule, cfg builderConfig, method, prefix string, n int, order func(int) core.BondOrder, opts ...core.BondOption) error {
	for i := 0; i < n; i++ {
		u, v := cfg.atomID(prefix, i), cfg.atomID(prefix, (i+1)%n)
		if _, err := m.AddBond(u, v, order(i), opts...); err != nil {
			return fmt.Errorf("%s: AddBond(%s,%s): %w", method, u, v, err)
		}
	}
	return nil
}
