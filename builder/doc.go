// SPDX-License-Identifier: MIT

// Package builder assembles deterministic core.Molecule fixtures from small
// topology constructors, in the functional-options style of the core package.
//
// Entry point:
//
//	m, err := builder.BuildMolecule(
//	    []core.MoleculeOption{core.WithTitle("toluene")},
//	    nil,
//	    builder.Kekule("r", "C", 6),
//	    builder.Attach("r0", "me", "C", core.OrderSingle),
//	    builder.Hydrogenate(),
//	)
//
// Constructors (Constructor func(m *core.Molecule, cfg builderConfig) error):
//   - Chain(prefix, symbol, n)        linear chain, single bonds.
//   - Ring(prefix, symbol, n)         n-membered ring, single bonds.
//   - Kekule(prefix, symbol, n)       even ring with alternating single/double
//     bonds and aromatic flags.
//   - Star(prefix, centre, leaf, k)   centre atom with k leaves.
//   - Polyhedrane(prefix, symbol, p)  Platonic cage (cubane, dodecahedrane, …).
//   - Attach(at, id, symbol, order)   one substituent on an existing atom.
//   - Link(a, b, order)               bond between existing atoms.
//   - Tetrahedral / DoubleBond        declared stereo elements.
//   - Hydrogenate()                   implicit H from default valences.
//   - ExplicitHydrogens()             implicit H turned into H atoms.
//
// Atom IDs are prefix + cfg.idFn(i); WithIDScheme changes the suffix scheme.
// Named fixtures (Propane, Benzene, Cubane, …) live in fixtures.go, and
// Shuffle reorders atoms with a seeded RNG for permutation tests.
//
// Guarantees:
//   - Determinism: same constructors, options and order ⇒ identical molecules.
//   - Constructors never panic; they return sentinel errors wrapped with the
//     method name. Option constructors panic on nil.
package builder
