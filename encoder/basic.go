// SPDX-License-Identifier: MIT
// File: basic.go
// Role: Fixed registry of attribute encoders.
//
// Ordinals and sentinels are part of the hash contract: changing either
// changes every hash computed with the encoder.
package encoder

import (
	"fmt"

	"github.com/katalvlaran/molhash/core"
)

// Basic identifies a built-in attribute encoder. Values are stable ordinals.
type Basic uint8

// Built-in encoders in registry order.
const (
	AtomicNumber Basic = iota
	MassNumber
	FormalCharge
	ConnectedAtoms
	BondOrderSum
	Hybridization
	FreeRadicals

	basicCount
)

// Sentinels returned when the encoded attribute is undefined.
const (
	UnknownAtomicNumber  int32 = 32451179
	UnknownMassNumber    int32 = 32451193
	UnknownFormalCharge  int32 = 32451301
	UnknownHybridization int32 = 32451341
	UnknownBondOrderSum  int32 = 32451367
)

var basicNames = [basicCount]string{
	AtomicNumber:   "atomic-number",
	MassNumber:     "mass-number",
	FormalCharge:   "formal-charge",
	ConnectedAtoms: "connected-atoms",
	BondOrderSum:   "bond-order-sum",
	Hybridization:  "hybridization",
	FreeRadicals:   "free-radicals",
}

// Basics returns every built-in encoder in registry order.
func Basics() []Basic {
	out := make([]Basic, basicCount)
	for i := range out {
		out[i] = Basic(i)
	}
	return out
}

// String returns the stable configuration name.
func (b Basic) String() string {
	if b < basicCount {
		return basicNames[b]
	}
	return fmt.Sprintf("basic(%d)", uint8(b))
}

// ParseBasic resolves a configuration name such as "atomic-number".
func ParseBasic(name string) (Basic, error) {
	for i, n := range basicNames {
		if n == name {
			return Basic(i), nil
		}
	}
	return 0, fmt.Errorf("ParseBasic(%q): %w", name, ErrUnknownEncoder)
}

// Encode implements AtomEncoder.
//
// ConnectedAtoms and BondOrderSum count implicit hydrogens as single-bonded
// neighbors, so a molecule encodes the same with hydrogens implicit or
// explicit-and-suppressed.
func (b Basic) Encode(atom *core.Atom, c core.Container) int32 {
	switch b {
	case AtomicNumber:
		if atom.AtomicNumber == 0 {
			return UnknownAtomicNumber
		}
		return int32(atom.AtomicNumber)
	case MassNumber:
		if atom.MassNumber == 0 {
			return UnknownMassNumber
		}
		return int32(atom.MassNumber)
	case FormalCharge:
		if atom.ChargeUnknown {
			return UnknownFormalCharge
		}
		return int32(atom.FormalCharge)
	case ConnectedAtoms:
		return int32(c.Degree(atom.ID) + atom.ImplicitH)
	case BondOrderSum:
		sum, ok := c.BondOrderSum(atom.ID)
		if !ok {
			return UnknownBondOrderSum
		}
		return int32(sum + atom.ImplicitH)
	case Hybridization:
		if atom.Hybridization == core.HybridUnset {
			return UnknownHybridization
		}
		return int32(atom.Hybridization)
	case FreeRadicals:
		return int32(atom.Radicals)
	}
	return 0
}
