// SPDX-License-Identifier: MIT

// Package stereo injects declared stereo configuration into the invariant
// arrays of the hash engine.
//
// Protocol:
//
//	Encoder.Encode(current, next) bool
//	    Writes stereo-adjusted values into next for the centres it owns and
//	    reports whether anything was configured. The engine copies next into
//	    current and calls again until Encode reports false.
//	Encoder.Reset()
//	    Forgets configuration so the encoder can run on a fresh pass.
//	Factory.Create(container, graph) Encoder
//	    Builds a per-call encoder; encoders are stateful, factories are not.
//
// Implementations:
//   - Empty / EmptyFactory: never configures.
//   - Multi: a set of encoders each configuring at most once until Reset.
//   - GeometryEncoder: combines a PermutationParity over the current
//     invariants with a GeometricParity; positive product multiplies the
//     centres by the anticlockwise constant, negative by the clockwise one.
//   - TetrahedralFactory / DoubleBondFactory: encoders for declared
//     core.Tetrahedral and core.DoubleBondStereo elements.
//   - Conjugate: several factories merged into one.
package stereo
