// SPDX-License-Identifier: MIT

// Package core provides a thread-safe in-memory Molecule model with a minimal,
// composable API surface, and the read-only Container view consumed by the
// hashing packages.
//
// A Molecule M = (A,B) holds:
//
//   - Atoms in insertion order, addressed by a unique string ID and by a dense
//     index 0..n-1 (the only identity the hashing engine uses internally).
//   - Bonds in insertion order with collision-free atomic IDs ("b1", "b2", …).
//   - Declared stereo elements: tetrahedral centres and double-bond
//     configurations. Perception from coordinates is not done here.
//
// Configuration Options (MoleculeOption):
//
//	– WithTitle(title string)
//	    Free-form name carried through Clone/Permute (molfile header line 1).
//
//	– WithMultiBonds()
//	    Allows parallel bonds between the same atoms.
//	    Otherwise a second AddBond(a,b) → ErrMultiBondNotAllowed.
//
//	– WithLoops()
//	    Permits self-bonds (a == b); otherwise AddBond(a,a) → ErrLoopNotAllowed.
//
// Atom options (AtomOption) set the encoded attributes: WithMassNumber,
// WithCharge, WithUnknownCharge, WithImplicitH, WithRadicals,
// WithHybridization, WithAromatic. Undefined attributes are represented by
// their zero value (mass 0, HybridUnset, AtomicNumber 0 for pseudo atoms).
//
// Core Methods:
//
//	// Atom lifecycle
//	AddAtom(id, symbol string, opts ...AtomOption) error  // O(1)
//	HasAtom(id string) bool                               // O(1)
//	RemoveAtom(id string) error                           // O(n+b)
//	SetImplicitH(id string, h int) error                  // O(1), copy-on-write
//
//	// Bond lifecycle
//	AddBond(a, b string, order BondOrder, opts ...BondOption) (bondID string, err error)
//	RemoveBond(bondID string) error
//	HasBond(a, b string) bool
//
//	// Stereo
//	AddTetrahedral(t Tetrahedral) error
//	AddDoubleBondStereo(d DoubleBondStereo) error
//
//	// Cloning and reordering
//	Clone() *Molecule
//	Permute(order []int) (*Molecule, error)
//
// Container view (implemented by *Molecule):
//
//	AtomCount() int
//	Atom(i int) *Atom
//	IndexOf(id string) int
//	Bonds() []*Bond
//	Degree(id string) int
//	BondOrderSum(id string) (int, bool)
//	Tetrahedrals() []Tetrahedral
//	DoubleBondStereos() []DoubleBondStereo
//
// Concurrency:
//
//	All methods take the molecule's RWMutex. *Atom and *Bond values returned
//	by queries are never mutated in place; SetImplicitH installs a fresh copy,
//	so a pointer obtained earlier keeps describing the old state.
//
// Errors:
//
//	ErrEmptyAtomID, ErrDuplicateAtom, ErrAtomNotFound, ErrBondNotFound,
//	ErrLoopNotAllowed, ErrMultiBondNotAllowed, ErrUnknownElement,
//	ErrBadStereo, ErrBadPermutation.
package core
