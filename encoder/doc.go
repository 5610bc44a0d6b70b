// SPDX-License-Identifier: MIT

// Package encoder turns atom attributes into integer invariants and builds
// the initial (seed) invariant array of a molecule.
//
// Building blocks:
//   - AtomEncoder: Encode(atom, container) int32.
//   - Basic: fixed registry of attribute encoders (AtomicNumber, MassNumber,
//     FormalCharge, ConnectedAtoms, BondOrderSum, Hybridization,
//     FreeRadicals). Undefined attributes encode to large per-encoder
//     sentinels so "unknown" cannot alias a real value.
//   - Func: adapter for custom encoders.
//   - Conjugated: folds an ordered list of encoders with h = 31*h + e.
//     Order is part of the result.
//   - SeedGenerator: Distribute(seed*31 + encode(atom)) per atom, with the
//     seed derived from the number of unsuppressed atoms.
//
// Errors:
//
//	ErrNilEncoder      - a nil AtomEncoder was supplied.
//	ErrUnknownEncoder  - ParseBasic received an unregistered name.
package encoder
