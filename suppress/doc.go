// SPDX-License-Identifier: MIT

// Package suppress marks vertices that stay in the molecular topology but
// are not independently distinguished by the hash engine.
//
// A suppressed vertex keeps its seed (it is never mixed), still contributes
// its value to neighbors, and is zeroed in the final hash array. Hydrogens
// are the usual candidates: they take part in connectivity without adding
// symmetry the perturbation pass would have to break.
//
// Variants:
//   - None(): constant empty set, Contains always false.
//   - Of(n, indices...): bitset-backed set with cached count and index view.
//
// Policies (AtomSuppression): Unsuppressed, AnyHydrogens, AnyPseudoAtoms.
package suppress
