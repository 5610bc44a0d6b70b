// SPDX-License-Identifier: MIT
// Package: molhash/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   - Only sentinel variables are exposed; callers use errors.Is.
//   - Implementations attach context as "<Method>: ...: %w".
package builder

import "errors"

// ErrTooFewAtoms indicates a size parameter below the constructor minimum.
var ErrTooFewAtoms = errors.New("builder: parameter too small")

// ErrOddRing indicates a Kekulé ring with an odd number of atoms.
var ErrOddRing = errors.New("builder: Kekulé ring needs an even size")

// ErrUnknownPolyhedron indicates an unsupported Polyhedron value.
var ErrUnknownPolyhedron = errors.New("builder: unknown polyhedron")

// ErrConstructFailed indicates a constructor could not complete, e.g. a nil
// constructor passed to BuildMolecule.
var ErrConstructFailed = errors.New("builder: construction failed")
