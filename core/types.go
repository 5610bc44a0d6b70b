// SPDX-License-Identifier: MIT
// Package core defines the Molecule, Atom and Bond types, declared stereo
// elements, and the Container view used by the hashing packages.
//
// This file declares Atom, Bond, Molecule, MoleculeOption, AtomOption,
// BondOption, sentinel errors, and the NewMolecule constructor.
//
// Errors:
//
//	ErrEmptyAtomID         - atom ID is the empty string.
//	ErrDuplicateAtom       - an atom with the same ID already exists.
//	ErrAtomNotFound        - requested atom does not exist.
//	ErrBondNotFound        - requested bond does not exist.
//	ErrLoopNotAllowed      - self-bond when loops are disabled.
//	ErrMultiBondNotAllowed - parallel bond when multi-bonds are disabled.
//	ErrUnknownElement      - symbol is not in the element table.
//	ErrBadStereo           - a stereo element references atoms or bonds inconsistently.
//	ErrBadPermutation      - Permute order is not a permutation of 0..n-1.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core molecule operations.
var (
	// ErrEmptyAtomID indicates that the provided atom ID is empty.
	ErrEmptyAtomID = errors.New("core: atom ID is empty")

	// ErrDuplicateAtom indicates an attempt to add an atom whose ID is taken.
	ErrDuplicateAtom = errors.New("core: duplicate atom ID")

	// ErrAtomNotFound indicates an operation referenced a non-existent atom.
	ErrAtomNotFound = errors.New("core: atom not found")

	// ErrBondNotFound indicates an operation referenced a non-existent bond.
	ErrBondNotFound = errors.New("core: bond not found")

	// ErrLoopNotAllowed indicates a self-bond was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-bond not allowed")

	// ErrMultiBondNotAllowed indicates a parallel bond was attempted when multi-bonds are disabled.
	ErrMultiBondNotAllowed = errors.New("core: multi-bonds not allowed")

	// ErrUnknownElement indicates an element symbol missing from the element table.
	ErrUnknownElement = errors.New("core: unknown element symbol")

	// ErrBadStereo indicates a stereo element inconsistent with the bond graph.
	ErrBadStereo = errors.New("core: inconsistent stereo element")

	// ErrBadPermutation indicates an atom order that is not a permutation of 0..n-1.
	ErrBadPermutation = errors.New("core: invalid atom permutation")
)

// Hybridization is the orbital hybridization of an atom. HybridUnset is the
// zero value and means "undefined".
type Hybridization uint8

// Hybridization states, ordinals are stable and feed the hybridization encoder.
const (
	HybridUnset Hybridization = iota
	HybridS
	HybridSP
	HybridSP2
	HybridSP3
	HybridPlanar3
	HybridSP3D1
	HybridSP3D2
	HybridSP3D3
	HybridSP3D4
	HybridSP3D5
)

var hybridNames = [...]string{"unset", "s", "sp", "sp2", "sp3", "planar3", "sp3d1", "sp3d2", "sp3d3", "sp3d4", "sp3d5"}

// String returns the lowercase name of the hybridization state.
func (h Hybridization) String() string {
	if int(h) < len(hybridNames) {
		return hybridNames[h]
	}
	return "unknown"
}

// BondOrder is the multiplicity of a bond. OrderUnset means undefined
// (e.g. an aromatic bond without a Kekulé assignment).
type BondOrder uint8

// Bond orders; the numeric value of Single..Quadruple equals the multiplicity.
const (
	OrderUnset BondOrder = iota
	OrderSingle
	OrderDouble
	OrderTriple
	OrderQuadruple
)

// Atom is one vertex of a Molecule.
//
// Atom values are immutable once stored; queries hand out pointers that are
// never written through.
type Atom struct {
	// ID uniquely identifies this atom within its Molecule.
	ID string

	// Symbol is the element symbol ("C", "Cl") or a pseudo-atom label ("R", "*").
	Symbol string

	// AtomicNumber is Z; 0 marks a pseudo atom (undefined).
	AtomicNumber int

	// MassNumber is the isotope mass number; 0 means undefined.
	MassNumber int

	// FormalCharge is the formal charge. It is meaningless when ChargeUnknown is set.
	FormalCharge int

	// ChargeUnknown marks the formal charge as undefined.
	ChargeUnknown bool

	// ImplicitH is the number of hydrogens not present as explicit atoms.
	ImplicitH int

	// Radicals is the number of unpaired electrons.
	Radicals int

	// Hybridization is the orbital hybridization; HybridUnset means undefined.
	Hybridization Hybridization

	// Aromatic flags aromatic ring membership.
	Aromatic bool
}

// Bond connects two atoms of a Molecule.
type Bond struct {
	// ID uniquely identifies this bond ("b1", "b2", …).
	ID string

	// Begin and End are the atom IDs of the endpoints.
	Begin string
	End   string

	// Order is the bond multiplicity.
	Order BondOrder

	// Aromatic flags an aromatic bond.
	Aromatic bool
}

// Other returns the endpoint opposite to id, or "" if id is not an endpoint.
func (b *Bond) Other(id string) string {
	switch id {
	case b.Begin:
		return b.End
	case b.End:
		return b.Begin
	}
	return ""
}

// MoleculeOption configures behavior of a Molecule before creation.
type MoleculeOption func(m *Molecule)

// WithTitle sets the molecule title.
func WithTitle(title string) MoleculeOption {
	return func(m *Molecule) { m.title = title }
}

// WithMultiBonds permits parallel bonds between the same atoms.
func WithMultiBonds() MoleculeOption {
	return func(m *Molecule) { m.allowMulti = true }
}

// WithLoops permits self-bonds.
func WithLoops() MoleculeOption {
	return func(m *Molecule) { m.allowLoops = true }
}

// AtomOption configures attributes of an atom when added.
type AtomOption func(a *Atom)

// WithMassNumber sets the isotope mass number.
func WithMassNumber(mass int) AtomOption {
	return func(a *Atom) { a.MassNumber = mass }
}

// WithCharge sets a defined formal charge.
func WithCharge(charge int) AtomOption {
	return func(a *Atom) { a.FormalCharge, a.ChargeUnknown = charge, false }
}

// WithUnknownCharge marks the formal charge as undefined.
func WithUnknownCharge() AtomOption {
	return func(a *Atom) { a.FormalCharge, a.ChargeUnknown = 0, true }
}

// WithImplicitH sets the implicit hydrogen count.
func WithImplicitH(h int) AtomOption {
	return func(a *Atom) { a.ImplicitH = h }
}

// WithRadicals sets the number of unpaired electrons.
func WithRadicals(r int) AtomOption {
	return func(a *Atom) { a.Radicals = r }
}

// WithHybridization sets the hybridization state.
func WithHybridization(h Hybridization) AtomOption {
	return func(a *Atom) { a.Hybridization = h }
}

// WithAromatic flags the atom as aromatic.
func WithAromatic() AtomOption {
	return func(a *Atom) { a.Aromatic = true }
}

// BondOption configures properties of individual bonds when added.
type BondOption func(b *Bond)

// WithAromaticBond flags the bond as aromatic.
func WithAromaticBond() BondOption {
	return func(b *Bond) { b.Aromatic = true }
}

// Molecule is the core in-memory molecular graph.
//
// mu guards every field below it. nextBondID is an atomic counter for
// unique Bond.ID generation.
type Molecule struct {
	mu sync.RWMutex

	// Configuration flags
	title      string
	allowMulti bool
	allowLoops bool

	// Storage
	nextBondID uint64
	atoms      []*Atom        // dense index → Atom
	index      map[string]int // atom ID → dense index
	bonds      []*Bond        // insertion order

	// neighbors[atomID][neighborID] = number of bonds between them
	neighbors map[string]map[string]int

	tetrahedrals []Tetrahedral
	doubleBonds  []DoubleBondStereo
}

// NewMolecule creates an empty Molecule with the given options.
// By default there are no loops and no multi-bonds.
// Complexity: O(1)
func NewMolecule(opts ...MoleculeOption) *Molecule {
	m := &Molecule{
		index:     make(map[string]int),
		neighbors: make(map[string]map[string]int),
	}
	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Title returns the molecule title.
func (m *Molecule) Title() string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.title
}
