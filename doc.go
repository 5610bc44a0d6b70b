// SPDX-License-Identifier: MIT

// Package molhash computes hash codes for the atoms and molecules of a
// molecular graph.
//
// An atom hash starts as a seed built from atom attributes and is refined
// by repeatedly mixing in the values of bonded neighbors (a generalized
// Morgan algorithm). Declared stereo configurations are folded in between
// rounds. An optional perturbation pass breaks symmetry that refinement
// alone cannot resolve, such as one six-membered ring versus two
// three-membered rings. Atoms can be suppressed: they stay in the topology
// but hash to zero.
//
// Packages:
//
//	core/     - Molecule, Atom, Bond, stereo elements and the Container view
//	mix/      - xorshift mixing (Rotate, RotateN, Distribute)
//	encoder/  - attribute encoders, conjugation and the seed generator
//	suppress/ - suppressed-atom sets and policies
//	stereo/   - stereo encoders, parities and element factories
//	equiv/    - ring detection and equivalent-set finders
//	atomhash/ - basic, perturbed and molecule generators, batch hashing
//	builder/  - deterministic molecule constructors and fixtures
//	molfile/  - MDL V2000 molfile and SD reader
//	catalog/  - probable-duplicate catalog keyed by molecule hash
//	config/   - YAML configuration mapped onto atomhash options
//	cmd/      - the molhash command
//
// Equal hashes do not prove identity. Hashes are not canonical labels and
// are stable only for a fixed generator configuration.
package molhash
