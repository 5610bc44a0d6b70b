// SPDX-License-Identifier: MIT
// Package: molhash/builder
//
// impl_chain.go - Chain and Star constructors.
//
// Contract:
//   - Atoms are added in ascending local index; bonds in ascending order.
//   - IDs are prefix + cfg.idFn(i).
package builder

import (
	"fmt"

	"github.com/katalvlaran/molhash/core"
)

const (
	methodChain = "Chain"
	methodStar  = "Star"

	minChainAtoms = 1
	minStarLeaves = 1
)

// Chain returns a Constructor that adds n atoms of symbol joined by single
// bonds: prefix0-prefix1-…-prefix(n-1).
//
// Complexity: O(n).
func Chain(prefix, symbol string, n int) Constructor {
	return func(m *core.Molecule, cfg builderConfig) error {
		if n < minChainAtoms {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodChain, n, minChainAtoms, ErrTooFewAtoms)
		}
		if err := addAtoms(m, cfg, methodChain, prefix, symbol, n); err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			u, v := cfg.atomID(prefix, i), cfg.atomID(prefix, i+1)
			if _, err := m.AddBond(u, v, core.OrderSingle); err != nil {
				return fmt.Errorf("%s: AddBond(%s,%s): %w", methodChain, u, v, err)
			}
		}
		return nil
	}
}

// Star returns a Constructor that adds a centre atom prefix0 of symbol
// centre bonded to k leaf atoms prefix1..prefixk of symbol leaf.
//
// Complexity: O(k).
func Star(prefix, centre, leaf string, k int) Constructor {
	return func(m *core.Molecule, cfg builderConfig) error {
		if k < minStarLeaves {
			return fmt.Errorf("%s: k=%d < min=%d: %w", methodStar, k, minStarLeaves, ErrTooFewAtoms)
		}
		hub := cfg.atomID(prefix, 0)
		if err := m.AddAtom(hub, centre); err != nil {
			return fmt.Errorf("%s: AddAtom(%s): %w", methodStar, hub, err)
		}
		for i := 1; i <= k; i++ {
			id := cfg.atomID(prefix, i)
			if err := m.AddAtom(id, leaf); err != nil {
				return fmt.Errorf("%s: AddAtom(%s): %w", methodStar, id, err)
			}
			if _, err := m.AddBond(hub, id, core.OrderSingle); err != nil {
				return fmt.Errorf("%s: AddBond(%s,%s): %w", methodStar, hub, id, err)
			}
		}
		return nil
	}
}

// addAtoms adds prefix0..prefix(n-1) of the given symbol.
func addAtoms(m *core.Molecule, cfg builderConfig, method, prefix, symbol string, n int, opts ...core.AtomOption) error {
	for i := 0; i < n; i++ {
		id := cfg.atomID(prefix, i)
		if err := m.AddAtom(id, symbol, opts...); err != nil {
			return fmt.Errorf("%s: AddAtom(%s): %w", method, id, err)
		}
	}
	return nil
}
