// SPDX-License-Identifier: MIT
// Package: molhash/builder
//
// api.go - entry point for the builder package.
//
// Design contract:
//   - One orchestrator: BuildMolecule(mopts, bopts, cons...). Creates m,
//     resolves cfg, runs cons in order.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig.
//   - Determinism: same inputs and constructor order ⇒ identical molecules.
package builder

import (
	"fmt"

	"github.com/katalvlaran/molhash/core"
)

// Constructor applies a deterministic molecule mutation using the resolved
// builderConfig. Constructors validate parameters early and return
// sentinel errors.
type Constructor func(m *core.Molecule, cfg builderConfig) error

// BuildMolecule creates a new core.Molecule with options mopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with "BuildMolecule: %w" and returned
// immediately; the partial molecule is discarded.
//
// Errors:
//   - ErrConstructFailed for a nil constructor.
//   - Constructor errors; branch with errors.Is against builder and core sentinels.
func BuildMolecule(mopts []core.MoleculeOption, bopts []BuilderOption, cons ...Constructor) (*core.Molecule, error) {
	m := core.NewMolecule(mopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildMolecule: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(m, cfg); err != nil {
			return nil, fmt.Errorf("BuildMolecule: %w", err)
		}
	}

	return m, nil
}

// Must panics on error. Intended for tests and examples only.
func Must(m *core.Molecule, err error) *core.Molecule {
	if err != nil {
		panic(err)
	}
	return m
}
