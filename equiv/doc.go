// SPDX-License-Identifier: MIT

// Package equiv proposes vertices whose converged invariants collided and
// which therefore become perturbation candidates.
//
// Only cyclic vertices are considered: acyclic symmetry found by the
// refinement is taken to be genuine, while uniform ring environments are
// where the refinement is known to merge distinguishable atoms.
//
// Finders:
//   - MinimumCyclicSet: the smallest class (size > 1) of cyclic vertices
//     sharing an invariant; ties go to the smallest invariant value.
//   - MinimumCyclicSetUnion: the union of every class of that minimum size.
//   - AllCyclicSet: the union of every class of size > 1.
//
// Output is always sorted ascending. Classes are kept in a
// github.com/emirpasic/gods treemap keyed by invariant value, so the
// result does not depend on atom order.
//
// Complexity:
//   - Ring detection O(V + E) with an explicit stack; grouping O(C log C)
//     for C cyclic vertices.
package equiv
